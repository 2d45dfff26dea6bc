package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/idilsaglam/dailytodo/internal/model"
)

// Read-only JSON seed for the board: the initial cards and the tag
// vocabulary. Nothing is ever written back.

// Seed is what the board starts from.
type Seed struct {
	Items []model.Item `json:"items"`
	Tags  []string     `json:"tags"`
}

var defaultItems = []model.Item{
	{ID: 1, Title: "Take dog out on walk", Content: "Around the park, at least thirty minutes.", Tags: []string{"home", "health"}},
	{ID: 2, Title: "Review pull requests", Content: "Two are waiting since yesterday.", Tags: []string{"work"}},
	{ID: 3, Title: "Buy groceries", Content: "Milk, eggs, bread, coffee.", Tags: []string{"home", "errand"}},
}

var defaultTags = []string{"work", "home", "health", "study", "errand"}

// Defaults returns the built-in cards and tags.
func Defaults() Seed {
	items := make([]model.Item, 0, len(defaultItems))
	for _, it := range defaultItems {
		it.Tags = slices.Clone(it.Tags)
		items = append(items, it)
	}
	return Seed{Items: items, Tags: slices.Clone(defaultTags)}
}

// Load reads the seed at path. An empty path or a missing file yields the
// defaults; a file without "tags" keeps the default vocabulary.
func Load(path string) (Seed, error) {
	if strings.TrimSpace(path) == "" {
		return Defaults(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Seed{}, fmt.Errorf("read file: %w", err)
	}
	var s Seed
	if err := json.Unmarshal(b, &s); err != nil {
		return Seed{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if s.Items == nil {
		s.Items = []model.Item{}
	}
	for i := range s.Items {
		if s.Items[i].Tags == nil {
			s.Items[i].Tags = []string{}
		}
	}
	if s.Tags == nil {
		s.Tags = slices.Clone(defaultTags)
	}
	return s, nil
}
