package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/dailytodo/internal/model"
)

func TestAppendKeepsOrder(t *testing.T) {
	assert := assert.New(t)

	l := NewList(nil)
	want := []model.Item{
		{ID: 1, Title: "first"},
		{ID: 2, Title: "second"},
		{ID: 3, Title: "third"},
	}
	for _, it := range want {
		l.Append(it)
	}

	assert.Equal(want, l.Items())
	assert.Equal(3, l.Len())
}

func TestAppendAcceptsPartialItem(t *testing.T) {
	l := NewList(nil)
	l.Append(model.Item{ID: 9})

	it, ok := l.At(0)
	assert.True(t, ok)
	assert.Equal(t, "", it.Title)
	assert.Equal(t, "", it.Content)
}

func TestRemoveByIDMissing(t *testing.T) {
	assert := assert.New(t)

	l := NewList([]model.Item{{ID: 1}, {ID: 2}})
	_, ok := l.RemoveByID(3)

	assert.False(ok)
	assert.Equal(2, l.Len())
	assert.Equal([]model.Item{{ID: 1}, {ID: 2}}, l.Items())
}

func TestRemoveByIDPresent(t *testing.T) {
	assert := assert.New(t)

	l := NewList([]model.Item{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}, {ID: 3, Title: "c"}})
	removed, ok := l.RemoveByID(2)

	assert.True(ok)
	assert.Equal("b", removed.Title)
	assert.Equal(2, l.Len())
	assert.False(l.Has(2))
	assert.Equal([]model.Item{{ID: 1, Title: "a"}, {ID: 3, Title: "c"}}, l.Items())
}

func TestRemoveByIDFirstMatchOnly(t *testing.T) {
	l := NewList([]model.Item{{ID: 5, Title: "x"}, {ID: 5, Title: "y"}})
	_, ok := l.RemoveByID(5)

	assert.True(t, ok)
	assert.Equal(t, []model.Item{{ID: 5, Title: "y"}}, l.Items())
}

func TestItemsIsACopy(t *testing.T) {
	seed := []model.Item{{ID: 1, Title: "a"}}
	l := NewList(seed)
	seed[0].Title = "changed"

	items := l.Items()
	items[0].Title = "also changed"

	it, _ := l.At(0)
	assert.Equal(t, "a", it.Title)
}

func TestFormVisibility(t *testing.T) {
	l := NewList(nil)
	assert.False(t, l.FormVisible())
	l.ShowForm()
	assert.True(t, l.FormVisible())
	l.HideForm()
	assert.False(t, l.FormVisible())
}
