package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/repository"
)

// parseBookFilter honors exactly one query dimension, in the order name,
// reading, finished. It reports false when the chosen flag cannot be read
// as 0/1, in which case nothing can match.
func parseBookFilter(c *gin.Context) (repository.BookFilter, bool) {
	if name := c.Query("name"); name != "" {
		return repository.BookFilter{Name: name}, true
	}

	if reading := c.Query("reading"); reading != "" {
		v, ok := parseFlag(reading)
		if !ok {
			return repository.BookFilter{}, false
		}
		return repository.BookFilter{Reading: &v}, true
	}

	if finished := c.Query("finished"); finished != "" {
		v, ok := parseFlag(finished)
		if !ok {
			return repository.BookFilter{}, false
		}
		return repository.BookFilter{Finished: &v}, true
	}

	return repository.BookFilter{}, true
}

func parseFlag(s string) (bool, bool) {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, false
	}
	return v, true
}

func (r BookRequest) toModel() model.Book {
	book := model.Book{
		Name:      r.Name,
		Year:      r.Year.Value,
		Author:    r.Author,
		Summary:   r.Summary,
		Publisher: r.Publisher,
		PageCount: r.PageCount.Value,
		ReadPage:  r.ReadPage.Value,
		Reading:   r.Reading,
	}
	book.ComputeFinished()
	return book
}

func toBookResponse(b model.Book) BookResponse {
	return BookResponse{
		Status: statusSuccess,
		Data: BookData{
			Book: Book{
				ID:         b.ID,
				Name:       b.Name,
				Year:       b.Year,
				Author:     b.Author,
				Summary:    b.Summary,
				Publisher:  b.Publisher,
				PageCount:  b.PageCount,
				ReadPage:   b.ReadPage,
				Finished:   b.Finished,
				Reading:    b.Reading,
				InsertedAt: model.NewTimestamp(b.InsertedAt),
				UpdatedAt:  model.NewTimestamp(b.UpdatedAt),
			},
		},
	}
}

func toListBooksResponse(books []model.Book) ListBooksResponse {
	summaries := make([]BookSummary, 0, len(books))
	for _, b := range books {
		summaries = append(summaries, BookSummary{
			ID:        b.ID,
			Name:      b.Name,
			Publisher: b.Publisher,
		})
	}

	return ListBooksResponse{
		Status: statusSuccess,
		Data:   BookList{Books: summaries},
	}
}
