package handlers

// pageScript renders snapshots and forwards user input. It holds no state
// of its own beyond the last snapshot received.
const pageScript = `
(function () {
	var csrf = document.querySelector('meta[name="csrf-token"]').content;
	var stageEl = document.getElementById('stage');
	var snap = null;
	var socket = null;
	var inflight = false;

	function api(method, path, body) {
		var opts = { method: method, headers: { 'X-CSRF-Token': csrf } };
		if (body !== undefined) {
			opts.headers['Content-Type'] = 'application/json';
			opts.body = JSON.stringify(body);
		}
		return fetch(path, opts).then(function (r) {
			return r.json().then(function (data) {
				if (!r.ok) {
					if (data.workspace) { render(data.workspace); }
					throw new Error(data.error || 'Request failed');
				}
				return data;
			});
		});
	}

	function refresh() {
		return api('GET', '/api/workspace').then(render);
	}

	function shapeURL(type, base, v) {
		return '/render/' + type + '.svg?base=' + encodeURIComponent(base) +
			'&highlight=' + encodeURIComponent(v.highlight) +
			'&shadow=' + encodeURIComponent(v.shadow);
	}

	function variation(color, i) {
		if (!color.variations || color.variations.length === 0) {
			return { label: 'Default', highlight: '#ffffff', shadow: '#000000' };
		}
		return color.variations[i] || color.variations[0];
	}

	function el(tag, attrs, text) {
		var e = document.createElement(tag);
		Object.keys(attrs || {}).forEach(function (k) { e.setAttribute(k, attrs[k]); });
		if (text !== undefined) { e.textContent = text; }
		return e;
	}

	function button(label, onClick, cls) {
		var b = el('button', cls ? { type: 'button', 'class': cls } : { type: 'button' }, label);
		b.addEventListener('click', onClick);
		return b;
	}

	function copy(hex, b) {
		navigator.clipboard.writeText(hex).then(function () {
			var old = b.textContent;
			b.textContent = 'Copied';
			setTimeout(function () { b.textContent = old; }, 1200);
		});
	}

	function setBusy() {
		var busy = inflight || (snap !== null && snap.pending);
		document.getElementById('keyword').disabled = busy;
		document.getElementById('generate').disabled = busy;
	}

	function showError(err) {
		var status = document.getElementById('status');
		status.className = 'error';
		status.textContent = err.message;
	}

	function renderSwatches(s) {
		var box = document.getElementById('swatches');
		box.textContent = '';
		var colors = s.theme ? s.theme.colors.slice(0, s.visibleCount) : [];
		colors.forEach(function (c, i) {
			var row = el('div', { 'class': 'swatch' });
			var chip = el('div', { 'class': 'chip' });
			chip.style.background = c.base;
			row.appendChild(chip);
			var info = el('div');
			info.appendChild(el('strong', {}, c.name + ' '));
			info.appendChild(el('small', {}, c.base));
			info.appendChild(el('div', {}, c.reason));
			var actions = el('div', { 'class': 'actions' });
			actions.appendChild(button('Copy', function (e) { copy(c.base, e.target); }));
			actions.appendChild(button('+ Sphere', function () { addObject(i, 'sphere'); }));
			actions.appendChild(button('+ Cube', function () { addObject(i, 'cube'); }));
			actions.appendChild(button('Save', function () {
				api('POST', '/api/collections/' + encodeURIComponent(s.activeCollectionId) + '/colors', { hex: c.base }).then(refresh, showError);
			}));
			info.appendChild(actions);
			row.appendChild(info);
			box.appendChild(row);
		});
		document.getElementById('show-more').hidden = !s.canShowMore;
	}

	function renderStage(s) {
		stageEl.textContent = '';
		s.objects.forEach(function (o) {
			var v = variation(o.color, o.activeVariationIndex);
			var wrap = el('div', { 'class': 'stage-object', 'data-id': o.id });
			if (s.interaction.selectedId === o.id) { wrap.classList.add('selected'); }
			wrap.style.left = o.x + '%';
			wrap.style.top = o.y + '%';
			wrap.style.width = o.size + 'px';
			wrap.style.height = o.size + 'px';
			wrap.appendChild(el('img', { src: shapeURL(o.type, o.color.base, v), alt: o.color.name }));
			wrap.appendChild(el('div', { 'class': 'handle', 'data-id': o.id }));
			stageEl.appendChild(wrap);
		});

		var sel = document.getElementById('selection');
		sel.textContent = '';
		var selected = s.objects.filter(function (o) { return o.id === s.interaction.selectedId; })[0];
		if (selected) {
			sel.appendChild(el('strong', {}, selected.color.name + ' '));
			(selected.color.variations || []).forEach(function (v, i) {
				var b = button(v.label, function () {
					api('POST', '/api/stage/objects/' + selected.id + '/variation', { index: i }).then(render, showError);
				}, i === selected.activeVariationIndex ? 'primary' : '');
				sel.appendChild(b);
			});
			sel.appendChild(button('Remove', function () {
				api('DELETE', '/api/stage/objects/' + selected.id).then(render, showError);
			}, 'danger'));
		}

		var bg = document.getElementById('background');
		bg.textContent = '';
		bg.appendChild(el('option', { value: '-1' }, 'White'));
		(s.theme ? s.theme.colors : []).forEach(function (c, i) {
			bg.appendChild(el('option', { value: String(i) }, c.name));
		});
		bg.value = String(s.backgroundIndex);
	}

	function renderCollections(s) {
		var box = document.getElementById('collections');
		box.textContent = '';
		s.collections.forEach(function (p) {
			var div = el('div', { 'class': 'collection' + (p.id === s.activeCollectionId ? ' active' : '') });
			div.appendChild(el('h2', {}, p.name));
			var colors = el('div', { 'class': 'colors' });
			p.colors.forEach(function (hex) {
				var chip = el('div', { 'class': 'color', title: hex + ' (click to copy, right-click to remove)' });
				chip.style.background = hex;
				chip.addEventListener('click', function () { navigator.clipboard.writeText(hex); });
				chip.addEventListener('contextmenu', function (e) {
					e.preventDefault();
					api('DELETE', '/api/collections/' + encodeURIComponent(p.id) + '/colors/' + encodeURIComponent(hex.replace('#', ''))).then(refresh, showError);
				});
				colors.appendChild(chip);
			});
			div.appendChild(colors);
			if (p.id !== s.activeCollectionId) {
				div.appendChild(button('Use', function () {
					api('POST', '/api/collections/' + encodeURIComponent(p.id) + '/activate').then(refresh, showError);
				}));
			}
			if (s.collections.length > 1) {
				div.appendChild(button('Delete', function () {
					api('DELETE', '/api/collections/' + encodeURIComponent(p.id)).then(refresh, showError);
				}, 'danger'));
			}
			box.appendChild(div);
		});
	}

	function render(s) {
		var backdropChanged = !snap || snap.background.base !== s.background.base;
		snap = s;
		document.getElementById('theme-name').textContent = s.theme ? s.theme.themeName : 'colorpick';
		var status = document.getElementById('status');
		status.className = s.error ? 'error' : 'pending';
		status.textContent = s.error || (s.pending ? 'Generating palette...' : '');
		renderSwatches(s);
		renderStage(s);
		renderCollections(s);
		if (backdropChanged) {
			document.getElementById('stage-css').href = '/stage.css?v=' + s.version;
		}
		setBusy();
	}

	function addObject(index, type) {
		api('POST', '/api/stage/objects', { colorIndex: index, type: type }).then(function (data) {
			render(data.workspace);
		}, showError);
	}

	function pointer(kind, e) {
		var t = e.target;
		var target = 'stage';
		var id = '';
		if (t.classList && t.classList.contains('handle')) {
			target = 'handle';
			id = t.getAttribute('data-id');
		} else if (t.closest && t.closest('.stage-object')) {
			target = 'object';
			id = t.closest('.stage-object').getAttribute('data-id');
		}
		var r = stageEl.getBoundingClientRect();
		var ev = {
			kind: kind,
			target: target,
			objectId: id,
			pointer: { x: e.clientX, y: e.clientY },
			stage: { x: r.left, y: r.top, width: r.width, height: r.height }
		};
		if (socket && socket.readyState === WebSocket.OPEN) {
			socket.send(JSON.stringify(ev));
		} else {
			api('POST', '/api/stage/pointer', ev).then(render, function () {});
		}
	}

	stageEl.addEventListener('pointerdown', function (e) {
		// capture on the pressed element so its click still reaches it
		e.target.setPointerCapture(e.pointerId);
		pointer('down', e);
	});
	stageEl.addEventListener('pointermove', function (e) { if (e.buttons) { pointer('move', e); } });
	stageEl.addEventListener('pointerup', function (e) { pointer('up', e); });
	stageEl.addEventListener('pointerleave', function (e) { pointer('leave', e); });
	stageEl.addEventListener('click', function (e) { pointer('click', e); });

	function connect() {
		var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
		socket = new WebSocket(proto + location.host + '/ws');
		socket.onmessage = function (m) { render(JSON.parse(m.data)); };
		socket.onclose = function () {
			socket = null;
			setTimeout(connect, 2000);
		};
	}

	document.getElementById('generate-form').addEventListener('submit', function (e) {
		e.preventDefault();
		var keyword = document.getElementById('keyword').value;
		if (!keyword.trim() || inflight) { return; }
		inflight = true;
		setBusy();
		api('POST', '/api/generate', { keyword: keyword }).then(render, showError).then(function () {
			inflight = false;
			setBusy();
		});
	});

	document.getElementById('show-more').addEventListener('click', function () {
		api('POST', '/api/palette/more').then(render, showError);
	});

	document.getElementById('background').addEventListener('change', function (e) {
		api('POST', '/api/stage/background', { colorIndex: parseInt(e.target.value, 10) }).then(render, showError);
	});

	document.getElementById('collection-form').addEventListener('submit', function (e) {
		e.preventDefault();
		var input = document.getElementById('collection-name');
		api('POST', '/api/collections', { name: input.value }).then(function () {
			input.value = '';
			return refresh();
		}, showError);
	});

	refresh().then(connect, showError);
})();
`
