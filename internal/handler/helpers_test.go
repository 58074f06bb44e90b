package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/validation"
)

type fakeBookRepo struct {
	CreateFn   func(ctx context.Context, b *model.Book) error
	FindByIDFn func(ctx context.Context, id string) (*model.Book, error)
	ListFn     func(ctx context.Context, filter repository.BookFilter) ([]model.Book, error)
	UpdateFn   func(ctx context.Context, b *model.Book) error
	DeleteFn   func(ctx context.Context, id string) error
	PingFn     func(ctx context.Context) error
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id string) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, repository.ErrBookNotFound
}

func (f *fakeBookRepo) List(ctx context.Context, filter repository.BookFilter) ([]model.Book, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, filter)
	}
	return []model.Book{}, nil
}

func (f *fakeBookRepo) Update(ctx context.Context, b *model.Book) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id string) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeBookRepo) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func (c *fixedClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type testRouter struct {
	*gin.Engine
}

func setupBookRouterWithRepo(repo repository.BookRepository, clock *fixedClock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewBookHandler(repo)
	if clock != nil {
		h.now = clock.Now
	}
	h.RegisterRoutes(r.Group(""))

	return r
}

func setupTestRouter(t *testing.T) (*gin.Engine, *repository.MemoryBookRepository, *fixedClock) {
	t.Helper()

	repo := repository.NewMemoryBookRepository()
	clock := &fixedClock{now: time.Date(2024, 1, 2, 3, 4, 5, 6_789_000, time.UTC)}
	return setupBookRouterWithRepo(repo, clock), repo, clock
}

func validPayload() map[string]any {
	return map[string]any{
		"name":      "Buku A",
		"year":      2010,
		"author":    "John Doe",
		"summary":   "Lorem ipsum dolor sit amet",
		"publisher": "Dicoding Indonesia",
		"pageCount": 100,
		"readPage":  25,
		"reading":   false,
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body=%s", err, w.Body.String())
	}
	return v
}

func expectFail(t *testing.T, w *httptest.ResponseRecorder, status int, code, message string) {
	t.Helper()

	if w.Code != status {
		t.Fatalf("expected status %d, got %d, body=%s", status, w.Code, w.Body.String())
	}

	resp := decodeBody[validation.ErrorResponse](t, w)
	if resp.Status != "fail" {
		t.Errorf("expected status %q, got %q", "fail", resp.Status)
	}
	if code != "" && resp.Code != code {
		t.Errorf("expected error code %q, got %q", code, resp.Code)
	}
	if resp.Message != message {
		t.Errorf("expected message %q, got %q", message, resp.Message)
	}
}

func createBook(t *testing.T, router *gin.Engine, payload map[string]any) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/books", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201 when creating book, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decodeBody[CreateBookResponse](t, w)
	if resp.Data.BookID == "" {
		t.Fatalf("expected bookId in response, body=%s", w.Body.String())
	}
	return resp.Data.BookID
}

func withFields(base map[string]any, kv ...any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i].(string)] = kv[i+1]
	}
	return out
}
