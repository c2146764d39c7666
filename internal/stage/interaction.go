package stage

import "fmt"

// Mode is the pointer interaction currently in progress
type Mode int

const (
	Idle Mode = iota
	Dragging
	Resizing
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// MarshalText lets snapshots carry the mode by name
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// EventKind is the kind of pointer event
type EventKind string

const (
	PointerDown  EventKind = "down"
	PointerMove  EventKind = "move"
	PointerUp    EventKind = "up"
	PointerLeave EventKind = "leave"
	Click        EventKind = "click"
)

// Target is what the pointer was over when the event fired
type Target string

const (
	TargetObject Target = "object"
	TargetHandle Target = "handle"
	TargetStage  Target = "stage"
)

// Event is a raw pointer event over the stage. Pointer and Stage are in
// screen pixels; Stage is the stage's bounding rect at the time of the event.
type Event struct {
	Kind     EventKind `json:"kind" binding:"required,oneof=down move up leave click"`
	Target   Target    `json:"target"`
	ObjectID string    `json:"objectId"`
	Pointer  Point     `json:"pointer"`
	Stage    Rect      `json:"stage"`
}

// State is a read-only view of the interaction
type State struct {
	Mode       Mode   `json:"mode"`
	TargetID   string `json:"targetId,omitempty"`
	SelectedID string `json:"selectedId,omitempty"`
}

// Interaction routes pointer events to mutations of a Store. Selection is
// tracked independently of the drag/resize mode.
type Interaction struct {
	mode     Mode
	target   string
	offset   Point
	selected string
}

// NewInteraction returns an idle interaction with nothing selected
func NewInteraction() *Interaction {
	return &Interaction{}
}

// Handle applies ev to store. It reports whether any stage or selection
// state changed.
func (in *Interaction) Handle(store *Store, ev Event) bool {
	switch ev.Kind {
	case PointerDown:
		return in.pointerDown(store, ev)
	case PointerMove:
		return in.pointerMove(store, ev)
	case PointerUp, PointerLeave:
		changed := in.mode != Idle
		in.mode = Idle
		in.target = ""
		in.offset = Point{}
		return changed
	case Click:
		if ev.Target != TargetStage || in.selected == "" {
			return false
		}
		in.selected = ""
		return true
	}
	return false
}

func (in *Interaction) pointerDown(store *Store, ev Event) bool {
	obj := store.Get(ev.ObjectID)
	if obj == nil {
		return false
	}

	switch ev.Target {
	case TargetHandle:
		in.mode = Resizing
		in.target = obj.ID
		in.offset = Point{}
	case TargetObject:
		center := ev.Stage.ToScreen(obj.Center())
		in.mode = Dragging
		in.target = obj.ID
		in.offset = ev.Pointer.Sub(center)
		in.selected = obj.ID
		store.BringToFront(obj.ID)
	default:
		return false
	}
	return true
}

func (in *Interaction) pointerMove(store *Store, ev Event) bool {
	if ev.Stage.Width <= 0 || ev.Stage.Height <= 0 {
		return false
	}

	switch in.mode {
	case Dragging:
		pos := ev.Stage.ToStage(ev.Pointer.Sub(in.offset))
		return store.Update(in.target, func(o *Object) {
			o.X = pos.X
			o.Y = pos.Y
		})
	case Resizing:
		obj := store.Get(in.target)
		if obj == nil {
			return false
		}
		center := ev.Stage.ToScreen(obj.Center())
		size := SizeFromDistance(Dist(ev.Pointer, center))
		return store.Update(in.target, func(o *Object) {
			o.Size = size
		})
	}
	return false
}

// Select marks id as the selected object
func (in *Interaction) Select(id string) {
	in.selected = id
}

// Selected returns the selected object id, or ""
func (in *Interaction) Selected() string { return in.selected }

// Reset returns to idle and clears the selection
func (in *Interaction) Reset() {
	*in = Interaction{}
}

// State returns a snapshot of the interaction
func (in *Interaction) State() State {
	return State{Mode: in.mode, TargetID: in.target, SelectedID: in.selected}
}
