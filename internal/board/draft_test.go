package board

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/dailytodo/internal/model"
)

func TestSetFieldAssignsIDOnce(t *testing.T) {
	assert := assert.New(t)

	e := NewEditor(NewCounterIDs(100), nil)
	require.NoError(t, e.SetField(FieldTitle, "B"))
	require.NoError(t, e.SetField(FieldTitle, "Bu"))
	require.NoError(t, e.SetField(FieldContent, "2%"))

	d := e.Draft()
	require.NotNil(t, d.ID)
	assert.Equal(int64(100), *d.ID)
	assert.Equal("Bu", d.TitleText())
	assert.Equal("2%", d.ContentText())
}

func TestSetFieldUnknown(t *testing.T) {
	e := NewEditor(nil, nil)
	err := e.SetField(Field(42), "x")

	assert.ErrorIs(t, err, ErrUnknownField)
	assert.True(t, e.Draft().Empty())
}

func TestToggleTagTwiceRestores(t *testing.T) {
	assert := assert.New(t)

	e := NewEditor(nil, nil)
	e.ToggleTag("home")
	e.ToggleTag("work")
	before := e.Draft().Tags

	assert.True(e.ToggleTag("health"))
	assert.False(e.ToggleTag("health"))
	assert.Equal(before, e.Draft().Tags)
	assert.NotNil(e.Draft().ID)
}

func TestToggleTagRemovesFirstOccurrence(t *testing.T) {
	e := NewEditor(nil, nil)
	e.ToggleTag("a")
	e.ToggleTag("b")
	e.ToggleTag("a")

	assert.Equal(t, []string{"b"}, e.Draft().Tags)
}

func TestApplyDispatchesVariants(t *testing.T) {
	assert := assert.New(t)

	e := NewEditor(nil, nil)
	require.NoError(t, e.Apply(FieldSet{Field: FieldTitle, Value: "Buy milk"}))
	require.NoError(t, e.Apply(TagToggle{Text: "home"}))
	assert.ErrorIs(e.Apply(FieldSet{Field: 0, Value: "x"}), ErrUnknownField)

	d := e.Draft()
	assert.Equal("Buy milk", d.TitleText())
	assert.Equal([]string{"home"}, d.Tags)
}

func TestDraftReturnsCopy(t *testing.T) {
	e := NewEditor(nil, nil)
	e.ToggleTag("a")
	d := e.Draft()
	d.Tags[0] = "z"

	assert.Equal(t, []string{"a"}, e.Draft().Tags)
}

func TestParseField(t *testing.T) {
	f, err := ParseField(" Title ")
	require.NoError(t, err)
	assert.Equal(t, FieldTitle, f)

	f, err = ParseField("content")
	require.NoError(t, err)
	assert.Equal(t, FieldContent, f)

	_, err = ParseField("tags")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRandomIDsSkipTaken(t *testing.T) {
	gen := NewRandomIDs(rand.New(rand.NewPCG(1, 2)))
	first := NewRandomIDs(rand.New(rand.NewPCG(1, 2))).Next(nil)

	id := gen.Next(func(id int64) bool { return id == first })
	assert.NotEqual(t, first, id)
	assert.GreaterOrEqual(t, id, int64(0))
	assert.Less(t, id, MaxRandomID)
}

func TestCounterIDsSkipTaken(t *testing.T) {
	gen := NewCounterIDs(1)
	taken := map[int64]bool{1: true, 2: true}

	assert.Equal(t, int64(3), gen.Next(func(id int64) bool { return taken[id] }))
	assert.Equal(t, int64(4), gen.Next(nil))
}

func TestNewIDGenerator(t *testing.T) {
	gen, err := NewIDGenerator("counter", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen.Next(nil))

	_, err = NewIDGenerator("uuid", nil)
	assert.ErrorIs(t, err, ErrUnknownIDStrategy)

	gen, err = NewIDGenerator("", nil)
	require.NoError(t, err)
	assert.IsType(t, &RandomIDs{}, gen)

	gen, err = NewIDGenerator("counter", []model.Item{{ID: 3}, {ID: 9}, {ID: 5}})
	require.NoError(t, err)
	assert.Equal(t, int64(10), gen.Next(nil))
}

func TestCounterAtMaxIDFallsBackToRandom(t *testing.T) {
	seeded := []model.Item{{ID: math.MaxInt64}}
	gen, err := NewIDGenerator("counter", seeded)
	require.NoError(t, err)
	assert.IsType(t, &RandomIDs{}, gen)

	id := gen.Next(func(id int64) bool { return id == math.MaxInt64 })
	assert.GreaterOrEqual(t, id, int64(0))
	assert.Less(t, id, MaxRandomID)
}
