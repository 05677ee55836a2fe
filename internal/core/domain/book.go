package domain

import "errors"

var ErrBookNotFound = errors.New("book not found")
var ErrBooksNotFound = errors.New("books not found")
var ErrEmptyUpdate = errors.New("empty update")

// Book is a global catalog entry. Books have no owner: read access is public
// and write access is gated purely by role.
type Book struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Title       string  `json:"title" bson:"title"`
	Author      string  `json:"author" bson:"author"`
	Price       float64 `json:"price" bson:"price"`
	Description string  `json:"description" bson:"description"`
}

// BookPatch carries the optional fields of a partial update. A patch where
// every field is nil is rejected before any lookup.
type BookPatch struct {
	Title       *string
	Author      *string
	Price       *float64
	Description *string
}

// Empty reports whether the patch carries no fields at all.
func (p BookPatch) Empty() bool {
	return p.Title == nil && p.Author == nil && p.Price == nil && p.Description == nil
}

// Apply overwrites the non-nil fields onto the book.
func (p BookPatch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
}
