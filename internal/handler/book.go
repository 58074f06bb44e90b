package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/validation"
)

const (
	createFailPrefix = "Gagal menambahkan buku"
	updateFailPrefix = "Gagal memperbarui buku"
	deleteFailPrefix = "Gagal menghapus buku"
)

var bookRules = []validation.Rule{
	{
		Field:  "name",
		Tag:    "required",
		Code:   "BOOK_NAME_REQUIRED",
		Reason: "Mohon isi nama buku",
	},
	{
		Field:  "readPage",
		Tag:    "ltefield",
		Code:   "READ_PAGE_EXCEEDS_PAGE_COUNT",
		Reason: "readPage tidak boleh lebih besar dari pageCount",
	},
}

type BookHandler struct {
	repo repository.BookRepository
	now  func() time.Time
}

func NewBookHandler(repo repository.BookRepository) *BookHandler {
	return &BookHandler{repo: repo, now: time.Now}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.POST("", h.CreateBook)
		books.GET("", h.ListBooks)
		books.GET("/:bookId", h.GetBookByID)
		books.PUT("/:bookId", h.UpdateBook)
		books.DELETE("/:bookId", h.DeleteBook)
	}
}

// timestamp is millisecond precision so stored values equal what clients see.
func (h *BookHandler) timestamp() time.Time {
	return h.now().UTC().Truncate(time.Millisecond)
}

// CreateBook godoc
// @Summary      Add a book
// @Description  Add a book to the shelf. finished is derived from readPage and pageCount.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      BookRequest                true  "Book to add"
// @Success      201      {object}  CreateBookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req BookRequest
	if !validation.BindAndValidateJSON(c, &req, createFailPrefix, bookRules...) {
		return
	}

	now := h.timestamp()
	book := req.toModel()
	book.InsertedAt = now
	book.UpdatedAt = now

	ctx := c.Request.Context()

	if err := h.repo.Create(ctx, &book); err != nil {
		writeInternalError(c, http.StatusInternalServerError, err,
			codeBookCreateFailed,
			"Buku gagal ditambahkan",
		)
		return
	}

	if _, err := h.repo.FindByID(ctx, book.ID); err != nil {
		writeInternalError(c, http.StatusInternalServerError, err,
			codeBookCreateFailed,
			"Buku gagal ditambahkan",
		)
		return
	}

	c.JSON(http.StatusCreated, CreateBookResponse{
		Status:  statusSuccess,
		Message: "Buku berhasil ditambahkan",
		Data:    CreatedBook{BookID: book.ID},
	})
}

// ListBooks godoc
// @Summary      List books
// @Description  List books as {id, name, publisher}. Only one filter applies, in the order name, reading, finished.
// @Tags         books
// @Produce      json
// @Param        name      query     string  false  "Case-insensitive substring of the book name"
// @Param        reading   query     string  false  "1/true for books being read, 0/false otherwise"
// @Param        finished  query     string  false  "1/true for finished books, 0/false otherwise"
// @Success      200       {object}  ListBooksResponse
// @Failure      500       {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	filter, ok := parseBookFilter(c)
	if !ok {
		c.JSON(http.StatusOK, toListBooksResponse(nil))
		return
	}

	books, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		writeInternalError(c, http.StatusInternalServerError, err,
			codeBookListFailed,
			"Gagal mengambil daftar buku",
		)
		return
	}

	c.JSON(http.StatusOK, toListBooksResponse(books))
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Description  Get the full record of a single book
// @Tags         books
// @Produce      json
// @Param        bookId  path      string  true  "Book ID"
// @Success      200     {object}  BookResponse
// @Failure      404     {object}  validation.ErrorResponse   "Book not found"
// @Failure      500     {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{bookId} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	book, err := h.repo.FindByID(c.Request.Context(), c.Param("bookId"))
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			writeError(c, http.StatusNotFound,
				codeBookNotFound,
				"Buku tidak ditemukan",
			)
			return
		}

		writeInternalError(c, http.StatusInternalServerError, err,
			codeBookFetchFailed,
			"Gagal mengambil buku",
		)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Replace every mutable field of a book. id and insertedAt are kept.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        bookId   path      string        true  "Book ID"
// @Param        payload  body      BookRequest   true  "New book data"
// @Success      200      {object}  MessageResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{bookId} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req BookRequest
	if !validation.BindAndValidateJSON(c, &req, updateFailPrefix, bookRules...) {
		return
	}

	book := req.toModel()
	book.ID = c.Param("bookId")
	book.UpdatedAt = h.timestamp()

	if err := h.repo.Update(c.Request.Context(), &book); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			writeError(c, http.StatusNotFound,
				codeBookNotFound,
				updateFailPrefix+". Id tidak ditemukan",
			)
			return
		}

		writeInternalError(c, http.StatusInternalServerError, err,
			codeBookUpdateFailed,
			updateFailPrefix,
		)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Status:  statusSuccess,
		Message: "Buku berhasil diperbarui",
	})
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Remove a book from the shelf
// @Tags         books
// @Produce      json
// @Param        bookId  path      string  true  "Book ID"
// @Success      200     {object}  MessageResponse
// @Failure      404     {object}  validation.ErrorResponse   "Book not found"
// @Failure      500     {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{bookId} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("bookId")); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			writeError(c, http.StatusNotFound,
				codeBookNotFound,
				"Buku gagal dihapus. Id tidak ditemukan",
			)
			return
		}

		writeInternalError(c, http.StatusInternalServerError, err,
			codeBookDeleteFailed,
			deleteFailPrefix,
		)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Status:  statusSuccess,
		Message: "Buku berhasil dihapus",
	})
}
