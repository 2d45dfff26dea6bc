package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned when an edit names a field the draft doesn't have.
var ErrUnknownField = errors.New("unknown field")

// Field names an editable text field of a draft.
type Field int

const (
	FieldTitle Field = iota + 1
	FieldContent
)

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldContent:
		return "content"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// ParseField maps a form input name to a Field.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "title":
		return FieldTitle, nil
	case "content":
		return FieldContent, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Edit is one change to the draft. It is either a FieldSet or a TagToggle.
type Edit interface {
	isEdit()
}

// FieldSet replaces the value of one text field.
type FieldSet struct {
	Field Field
	Value string
}

// TagToggle adds Text to the tags, or removes its first occurrence.
type TagToggle struct {
	Text string
}

func (FieldSet) isEdit()  {}
func (TagToggle) isEdit() {}
