package handlers

const (
	// Page chrome; the stage itself is colored by /stage.css
	ColorBgPrimary   = "#F7F7F5" // Off-white page
	ColorBgPanel     = "#FFFFFF" // Panels
	ColorTextPrimary = "#1F2023" // Near black
	ColorTextSecond  = "#6B7280" // Gray
	ColorAccent      = "#4F46E5" // Indigo
	ColorDanger      = "#DC2626" // Remove / delete
	ColorBorder      = "#E4E4E1" // Subtle border
)

// GetDesignSystemCSS returns the page stylesheet
func GetDesignSystemCSS() string {
	return `
:root {
	--color-bg-primary: ` + ColorBgPrimary + `;
	--color-bg-panel: ` + ColorBgPanel + `;
	--color-text-primary: ` + ColorTextPrimary + `;
	--color-text-secondary: ` + ColorTextSecond + `;
	--color-accent: ` + ColorAccent + `;
	--color-danger: ` + ColorDanger + `;
	--color-border: ` + ColorBorder + `;
	--font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
	--spacing-sm: 8px;
	--spacing-base: 16px;
	--spacing-lg: 32px;
	--radius-sm: 4px;
	--radius-base: 8px;
	--shadow-sm: 0 1px 3px rgba(0, 0, 0, 0.1);
	--transition: 200ms ease;
}

* { box-sizing: border-box; }

body {
	font-family: var(--font-family);
	background: var(--color-bg-primary);
	color: var(--color-text-primary);
	margin: 0;
	line-height: 1.5;
}

h1 { font-size: 24px; font-weight: 700; margin: 0; }
h2 { font-size: 16px; font-weight: 600; margin: 0 0 var(--spacing-sm); }
small { font-size: 12px; color: var(--color-text-secondary); }

button {
	font-family: inherit;
	font-size: 13px;
	font-weight: 600;
	border: 1px solid var(--color-border);
	border-radius: var(--radius-sm);
	background: var(--color-bg-panel);
	padding: 4px 10px;
	cursor: pointer;
	transition: opacity var(--transition);
}

button:hover { opacity: 0.85; }
button:disabled { opacity: 0.5; cursor: default; }
button.primary { background: var(--color-accent); border-color: var(--color-accent); color: white; }
button.danger { color: var(--color-danger); }

input {
	font-family: inherit;
	font-size: 15px;
	padding: var(--spacing-sm);
	border: 1px solid var(--color-border);
	border-radius: var(--radius-sm);
}

.layout {
	display: grid;
	grid-template-columns: 360px 1fr 280px;
	gap: var(--spacing-base);
	padding: var(--spacing-base);
	min-height: 100vh;
}

.panel {
	background: var(--color-bg-panel);
	border: 1px solid var(--color-border);
	border-radius: var(--radius-base);
	padding: var(--spacing-base);
	box-shadow: var(--shadow-sm);
	overflow-y: auto;
}

.generate-form { display: flex; gap: var(--spacing-sm); margin: var(--spacing-base) 0; }
.generate-form input { flex: 1; }
.error { color: var(--color-danger); font-size: 14px; }
.pending { color: var(--color-text-secondary); font-size: 14px; }

.swatch {
	display: grid;
	grid-template-columns: 48px 1fr;
	gap: var(--spacing-sm);
	padding: var(--spacing-sm) 0;
	border-bottom: 1px solid var(--color-border);
}

.swatch .chip { width: 48px; height: 48px; border-radius: var(--radius-sm); border: 1px solid var(--color-border); }
.swatch .actions { display: flex; flex-wrap: wrap; gap: 4px; margin-top: 4px; }

.stage {
	position: relative;
	border-radius: var(--radius-base);
	overflow: hidden;
	touch-action: none;
	user-select: none;
	min-height: 480px;
}

.stage-object { position: absolute; transform: translate(-50%, -50%); cursor: grab; }
.stage-object img { width: 100%; height: 100%; pointer-events: none; display: block; }
.stage-object .handle {
	position: absolute;
	right: -6px;
	bottom: -6px;
	width: 14px;
	height: 14px;
	border-radius: 50%;
	cursor: nwse-resize;
	display: none;
}
.stage-object.selected .handle { display: block; }

.collection { padding: var(--spacing-sm) 0; border-bottom: 1px solid var(--color-border); }
.collection.active h2 { color: var(--color-accent); }
.collection .colors { display: flex; flex-wrap: wrap; gap: 4px; }
.collection .color {
	width: 28px;
	height: 28px;
	border-radius: var(--radius-sm);
	border: 1px solid var(--color-border);
	cursor: pointer;
}

@media (max-width: 1000px) {
	.layout { grid-template-columns: 1fr; }
}
`
}
