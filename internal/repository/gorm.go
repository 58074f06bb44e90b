package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/model"
	"gorm.io/gorm"
)

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *GormBookRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (r *GormBookRepository) List(ctx context.Context, filter BookFilter) ([]model.Book, error) {
	q := r.db.WithContext(ctx).Model(&model.Book{})

	if filter.Name != "" {
		q = q.Where(`name_lower LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(filter.Name))+"%")
	}
	if filter.Reading != nil {
		q = q.Where("reading = ?", *filter.Reading)
	}
	if filter.Finished != nil {
		q = q.Where("finished = ?", *filter.Finished)
	}

	books := make([]model.Book, 0)
	if err := q.Order("seq ASC").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *GormBookRepository) Update(ctx context.Context, book *model.Book) error {
	book.FoldName()

	result := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"name":       book.Name,
			"name_lower": book.NameLower,
			"year":       book.Year,
			"author":     book.Author,
			"summary":    book.Summary,
			"publisher":  book.Publisher,
			"page_count": book.PageCount,
			"read_page":  book.ReadPage,
			"reading":    book.Reading,
			"finished":   book.Finished,
			"updated_at": book.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookNotFound
	}

	stored, err := r.FindByID(ctx, book.ID)
	if err != nil {
		return err
	}
	*book = *stored
	return nil
}

func (r *GormBookRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Book{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookNotFound
	}
	return nil
}

func (r *GormBookRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
