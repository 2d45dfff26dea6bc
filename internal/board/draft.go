package board

import (
	"fmt"
	"slices"

	"github.com/idilsaglam/dailytodo/internal/model"
)

// Editor accumulates edits into a single pending card.
type Editor struct {
	draft model.Draft
	ids   IDGenerator
	taken func(int64) bool
}

// NewEditor returns an Editor with an empty draft. taken is consulted when
// an id is assigned.
func NewEditor(ids IDGenerator, taken func(int64) bool) *Editor {
	if ids == nil {
		ids = NewRandomIDs(nil)
	}
	return &Editor{ids: ids, taken: taken}
}

// Draft returns a copy of the current draft.
func (e *Editor) Draft() model.Draft {
	d := e.draft
	if d.Tags != nil {
		d.Tags = slices.Clone(d.Tags)
	}
	return d
}

// Apply dispatches one edit.
func (e *Editor) Apply(ed Edit) error {
	switch ed := ed.(type) {
	case FieldSet:
		return e.SetField(ed.Field, ed.Value)
	case TagToggle:
		e.ToggleTag(ed.Text)
		return nil
	}
	return fmt.Errorf("unsupported edit %T", ed)
}

// SetField sets one text field and assigns an id if the draft has none.
func (e *Editor) SetField(f Field, value string) error {
	switch f {
	case FieldTitle:
		e.draft.Title = &value
	case FieldContent:
		e.draft.Content = &value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, f)
	}
	e.ensureID()
	return nil
}

// ToggleTag removes the first occurrence of text or appends it. It reports
// whether the tag ended up present.
func (e *Editor) ToggleTag(text string) bool {
	tags := e.draft.Tags
	if tags == nil {
		tags = []string{}
	}
	added := false
	if i := slices.Index(tags, text); i >= 0 {
		tags = slices.Delete(tags, i, i+1)
	} else {
		tags = append(tags, text)
		added = true
	}
	e.draft.Tags = tags
	e.ensureID()
	return added
}

// Reset empties the draft.
func (e *Editor) Reset() { e.draft = model.Draft{} }

// ensureID keeps the first id ever assigned to the draft.
func (e *Editor) ensureID() {
	if e.draft.ID != nil {
		return
	}
	id := e.ids.Next(e.taken)
	e.draft.ID = &id
}

// take turns the draft into a card and empties the draft.
func (e *Editor) take() model.Item {
	e.ensureID()
	it := e.draft.Item()
	e.Reset()
	return it
}
