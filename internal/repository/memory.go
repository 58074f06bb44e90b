package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/model"
)

const maxIDAttempts = 5

var errIDExhausted = errors.New("could not generate a unique book id")

// MemoryBookRepository keeps books in insertion order for the lifetime of
// the process. Stored records are never handed out directly.
type MemoryBookRepository struct {
	mu    sync.RWMutex
	books []model.Book
	seq   uint64
}

func NewMemoryBookRepository() *MemoryBookRepository {
	return &MemoryBookRepository{}
}

func (r *MemoryBookRepository) Create(ctx context.Context, book *model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for attempt := 0; ; attempt++ {
		if attempt == maxIDAttempts {
			return errIDExhausted
		}
		if err := book.EnsureID(); err != nil {
			return err
		}
		if r.indexOf(book.ID) == -1 {
			break
		}
		book.ID = ""
	}

	book.FoldName()
	r.seq++
	book.Seq = r.seq
	r.books = append(r.books, *book)
	return nil
}

func (r *MemoryBookRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i == -1 {
		return nil, ErrBookNotFound
	}
	book := r.books[i]
	return &book, nil
}

func (r *MemoryBookRepository) List(ctx context.Context, filter BookFilter) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]model.Book, 0, len(r.books))
	for i := range r.books {
		if filter.Matches(&r.books[i]) {
			books = append(books, r.books[i])
		}
	}
	return books, nil
}

func (r *MemoryBookRepository) Update(ctx context.Context, book *model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(book.ID)
	if i == -1 {
		return ErrBookNotFound
	}

	stored := &r.books[i]
	stored.Name = book.Name
	stored.FoldName()
	stored.Year = book.Year
	stored.Author = book.Author
	stored.Summary = book.Summary
	stored.Publisher = book.Publisher
	stored.PageCount = book.PageCount
	stored.ReadPage = book.ReadPage
	stored.Reading = book.Reading
	stored.Finished = book.Finished
	stored.UpdatedAt = book.UpdatedAt

	*book = *stored
	return nil
}

func (r *MemoryBookRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return ErrBookNotFound
	}
	r.books = append(r.books[:i], r.books[i+1:]...)
	return nil
}

func (r *MemoryBookRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

// indexOf expects r.mu to be held.
func (r *MemoryBookRepository) indexOf(id string) int {
	for i := range r.books {
		if r.books[i].ID == id {
			return i
		}
	}
	return -1
}
