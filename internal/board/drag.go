package board

import "github.com/idilsaglam/dailytodo/internal/model"

// Drag tracks a card being dragged toward the drop zone.
type Drag struct {
	dragging bool
	hovering bool
	id       int64
}

// Start marks the card id as dragged.
func (d *Drag) Start(id int64) {
	d.dragging = true
	d.hovering = false
	d.id = id
}

// End stops dragging without deleting anything.
func (d *Drag) End() {
	d.dragging = false
	d.hovering = false
}

// Enter marks the drop zone as hovered. Ignored when nothing is dragged.
func (d *Drag) Enter() {
	if d.dragging {
		d.hovering = true
	}
}

// Leave clears the hover mark.
func (d *Drag) Leave() { d.hovering = false }

func (d *Drag) Dragging() bool { return d.dragging }
func (d *Drag) Hovering() bool { return d.hovering }

// ID returns the dragged card id while dragging.
func (d *Drag) ID() (int64, bool) {
	if !d.dragging {
		return 0, false
	}
	return d.id, true
}

// Drop deletes the dragged card from l when it is still listed, then
// clears the drag. An unknown id leaves both l and the drag untouched.
func (d *Drag) Drop(l *List) (model.Item, bool) {
	if !d.dragging {
		return model.Item{}, false
	}
	removed, ok := l.RemoveByID(d.id)
	if !ok {
		return model.Item{}, false
	}
	d.End()
	return removed, true
}
