package model

import "strings"

// Item is the domain model for a todo card.
// Tags keep insertion order; that is also display order.
type Item struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// Draft is a card under construction. A nil field has not been set yet.
type Draft struct {
	ID      *int64
	Title   *string
	Content *string
	Tags    []string
}

// Empty reports whether no field has been set.
func (d Draft) Empty() bool {
	return d.ID == nil && d.Title == nil && d.Content == nil && d.Tags == nil
}

// Item returns the card the draft commits to. Unset fields render as empty.
func (d Draft) Item() Item {
	it := Item{Tags: []string{}}
	if d.ID != nil {
		it.ID = *d.ID
	}
	if d.Title != nil {
		it.Title = *d.Title
	}
	if d.Content != nil {
		it.Content = *d.Content
	}
	if d.Tags != nil {
		it.Tags = append(it.Tags, d.Tags...)
	}
	return it
}

// TitleText returns the title or "" when unset.
func (d Draft) TitleText() string {
	if d.Title == nil {
		return ""
	}
	return *d.Title
}

// ContentText returns the content or "" when unset.
func (d Draft) ContentText() string {
	if d.Content == nil {
		return ""
	}
	return *d.Content
}

// TagsText is the comma-joined tag line shown in the form.
func (d Draft) TagsText() string { return strings.Join(d.Tags, ",") }
