// Package board holds the state of one board session: the card list, the
// draft being edited and the drag-to-delete gesture.
package board

import (
	"errors"
	"slices"

	"github.com/idilsaglam/dailytodo/internal/logging"
	"github.com/idilsaglam/dailytodo/internal/model"
)

// Options tune a Session.
type Options struct {
	IDs                IDGenerator
	ClearDraftOnCancel bool
	Logger             *logging.Logger
}

// Session owns all mutable board state for one run. Every mutation goes
// through its methods; the view only reads.
type Session struct {
	list          *List
	editor        *Editor
	drag          Drag
	tags          []string
	clearOnCancel bool
	log           *logging.Logger
}

// NewSession seeds a session with items and the tag vocabulary.
func NewSession(items []model.Item, tags []string, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	s := &Session{
		list:          NewList(items),
		tags:          slices.Clone(tags),
		clearOnCancel: opts.ClearDraftOnCancel,
		log:           opts.Logger,
	}
	s.editor = NewEditor(opts.IDs, s.list.Has)
	return s
}

// Items returns the cards in display order.
func (s *Session) Items() []model.Item { return s.list.Items() }

// Len returns the number of cards.
func (s *Session) Len() int { return s.list.Len() }

// At returns the card at position i.
func (s *Session) At(i int) (model.Item, bool) { return s.list.At(i) }

// Tags returns the tag vocabulary offered by the form.
func (s *Session) Tags() []string { return slices.Clone(s.tags) }

// Draft returns the card under construction.
func (s *Session) Draft() model.Draft { return s.editor.Draft() }

// FormVisible reports whether the creation form is open.
func (s *Session) FormVisible() bool { return s.list.FormVisible() }

// OpenForm shows the creation form. It reports whether the form was hidden
// before, which is when the view scrolls the new form into sight.
func (s *Session) OpenForm() bool {
	if s.list.FormVisible() {
		return false
	}
	s.list.ShowForm()
	s.log.Debug("form opened")
	return true
}

// Apply feeds one edit to the draft. Edits naming unknown fields are dropped.
func (s *Session) Apply(ed Edit) {
	if err := s.editor.Apply(ed); err != nil {
		if errors.Is(err, ErrUnknownField) {
			s.log.Debug("edit ignored", "err", err)
			return
		}
		s.log.Warn("edit failed", "err", err)
		return
	}
	if t, ok := ed.(TagToggle); ok {
		s.log.Debug("tag toggled", "tag", t.Text, "tags", s.editor.draft.TagsText())
	}
}

// SetField sets the draft field called name.
func (s *Session) SetField(name, value string) {
	f, err := ParseField(name)
	if err != nil {
		s.log.Debug("edit ignored", "err", err)
		return
	}
	s.Apply(FieldSet{Field: f, Value: value})
}

// ToggleTag toggles text on the draft.
func (s *Session) ToggleTag(text string) { s.Apply(TagToggle{Text: text}) }

// Commit appends the draft to the list, empties the draft and hides the
// form. It does nothing while the form is hidden.
func (s *Session) Commit() (model.Item, bool) {
	if !s.list.FormVisible() {
		return model.Item{}, false
	}
	it := s.editor.take()
	s.list.Append(it)
	s.list.HideForm()
	s.log.Debug("card appended", "id", it.ID, "title", it.Title, "len", s.list.Len())
	return it, true
}

// Cancel hides the form. The draft survives unless the session clears
// drafts on cancel.
func (s *Session) Cancel() {
	s.list.HideForm()
	if s.clearOnCancel {
		s.editor.Reset()
	}
	s.log.Debug("form cancelled", "draft_kept", !s.clearOnCancel)
}

// Remove deletes the card with id. An unknown id is a no-op.
func (s *Session) Remove(id int64) bool {
	if _, ok := s.list.RemoveByID(id); !ok {
		s.log.Debug("remove: id not found", "id", id)
		return false
	}
	s.log.Debug("card removed", "id", id, "len", s.list.Len())
	return true
}

// DragStart begins dragging the card with id.
func (s *Session) DragStart(id int64) {
	s.drag.Start(id)
	s.log.Debug("drag start", "id", id)
}

// DragEnd stops dragging.
func (s *Session) DragEnd() {
	if s.drag.Dragging() {
		s.log.Debug("drag end")
	}
	s.drag.End()
}

func (s *Session) DragEnter() { s.drag.Enter() }
func (s *Session) DragLeave() { s.drag.Leave() }

func (s *Session) Dragging() bool { return s.drag.Dragging() }
func (s *Session) Hovering() bool { return s.drag.Hovering() }

// DraggedID returns the id of the card being dragged.
func (s *Session) DraggedID() (int64, bool) { return s.drag.ID() }

// Drop completes a drag on the drop zone, deleting the dragged card.
func (s *Session) Drop() (model.Item, bool) {
	id, _ := s.drag.ID()
	removed, ok := s.drag.Drop(s.list)
	if !ok {
		s.log.Debug("drop ignored", "id", id, "dragging", s.drag.Dragging())
		return model.Item{}, false
	}
	s.log.Debug("card dropped", "id", removed.ID, "len", s.list.Len())
	return removed, true
}
