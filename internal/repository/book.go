package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/model"
)

var ErrBookNotFound = errors.New("book not found")

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id string) (*model.Book, error)
	List(ctx context.Context, filter BookFilter) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// BookFilter narrows List. Zero-valued fields are ignored; every set field
// must match.
type BookFilter struct {
	Name     string
	Reading  *bool
	Finished *bool
}

func (f BookFilter) Matches(b *model.Book) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Reading != nil && b.Reading != *f.Reading {
		return false
	}
	if f.Finished != nil && b.Finished != *f.Finished {
		return false
	}
	return true
}
