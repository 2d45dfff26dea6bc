package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/dailytodo/internal/model"
)

func TestCommitBuyMilk(t *testing.T) {
	assert := assert.New(t)

	s := NewSession(nil, []string{"home", "work"}, Options{IDs: NewCounterIDs(1)})
	assert.True(s.OpenForm())
	s.SetField("title", "Buy milk")
	s.SetField("content", "2%")
	s.ToggleTag("home")

	it, ok := s.Commit()
	require.True(t, ok)
	assert.Equal(model.Item{ID: 1, Title: "Buy milk", Content: "2%", Tags: []string{"home"}}, it)
	assert.Equal([]model.Item{it}, s.Items())
	assert.True(s.Draft().Empty())
	assert.False(s.FormVisible())
}

func TestCommitWhileHiddenIsNoop(t *testing.T) {
	s := NewSession(nil, nil, Options{})
	s.SetField("title", "x")

	_, ok := s.Commit()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "x", s.Draft().TitleText())
}

func TestCommitUntouchedDraftGetsID(t *testing.T) {
	s := NewSession([]model.Item{{ID: 1}}, nil, Options{IDs: NewCounterIDs(1)})
	s.OpenForm()

	it, ok := s.Commit()
	require.True(t, ok)
	assert.Equal(t, int64(2), it.ID)
	assert.Equal(t, 2, s.Len())
}

func TestOpenFormTwice(t *testing.T) {
	s := NewSession(nil, nil, Options{})
	assert.True(t, s.OpenForm())
	assert.False(t, s.OpenForm())
}

func TestCancelKeepsStaleDraft(t *testing.T) {
	s := NewSession(nil, nil, Options{})
	s.OpenForm()
	s.SetField("title", "half typed")
	s.Cancel()

	assert.False(t, s.FormVisible())
	assert.Equal(t, "half typed", s.Draft().TitleText())
	assert.Equal(t, 0, s.Len())
}

func TestCancelClearsDraftWhenConfigured(t *testing.T) {
	s := NewSession(nil, nil, Options{ClearDraftOnCancel: true})
	s.OpenForm()
	s.SetField("title", "half typed")
	s.Cancel()

	assert.True(t, s.Draft().Empty())
}

func TestSetFieldUnknownNameIsAbsorbed(t *testing.T) {
	s := NewSession(nil, nil, Options{})
	s.SetField("tags", "a,b")

	assert.True(t, s.Draft().Empty())
}

func TestDragDeleteExample(t *testing.T) {
	assert := assert.New(t)

	s := NewSession([]model.Item{{ID: 1}, {ID: 42, Title: "walk dog"}}, nil, Options{})
	s.DragStart(42)
	assert.True(s.Dragging())
	s.DragEnter()

	removed, ok := s.Drop()
	require.True(t, ok)
	assert.Equal(int64(42), removed.ID)
	assert.Equal([]model.Item{{ID: 1}}, s.Items())
	assert.False(s.Dragging())
}

func TestDragEndWithoutDrop(t *testing.T) {
	s := NewSession([]model.Item{{ID: 1}}, nil, Options{})
	s.DragStart(1)
	s.DragEnd()

	assert.False(t, s.Dragging())
	assert.Equal(t, 1, s.Len())
}

func TestRemove(t *testing.T) {
	s := NewSession([]model.Item{{ID: 1}, {ID: 2}}, nil, Options{})

	assert.False(t, s.Remove(3))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Remove(1))
	assert.Equal(t, []model.Item{{ID: 2}}, s.Items())
}

func TestNewIDsAvoidListedCards(t *testing.T) {
	s := NewSession([]model.Item{{ID: 1}, {ID: 2}}, nil, Options{IDs: NewCounterIDs(1)})
	s.OpenForm()
	s.SetField("title", "t")

	id := s.Draft().ID
	require.NotNil(t, id)
	assert.Equal(t, int64(3), *id)
}

func TestSessionDefaultsToDiscardLogger(t *testing.T) {
	s := NewSession(nil, nil, Options{})
	require.NotNil(t, s.log)
	s.SetField("nope", "x")
	assert.True(t, s.Draft().Empty())
}
