// Package catalog provides database operations for book records.
//
// Book.Status is owned by the circulation service: Create always stores a
// book as Available and Update never rewrites the status column.
package catalog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/smartlib/library/internal/entities"
)

var (
	// ErrNotFound is returned when no book exists for the given identifier.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicateID is returned when creating a book whose identifier is taken.
	ErrDuplicateID = errors.New("book identifier already exists")
	// ErrReferenced is returned when deleting a book that still has borrow
	// records. The ledger is append-only, so such deletes are always blocked.
	ErrReferenced = errors.New("book is referenced by borrow records")
)

// Repository handles all book catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a book by its identifier.
func (r *Repository) GetByID(id string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, "book_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAll retrieves all books ordered by identifier.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("book_id ASC").Find(&books).Error
	return books, err
}

// Search finds books by title or author (case-insensitive partial match).
func (r *Repository) Search(query string) ([]entities.Book, error) {
	var books []entities.Book
	searchPattern := "%" + query + "%"
	err := r.db.
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?)", searchPattern, searchPattern).
		Order("book_id ASC").
		Find(&books).Error
	return books, err
}

// Create inserts a new book. The stored status is always Available; whatever
// the caller put in the Status field is ignored.
func (r *Repository) Create(book *entities.Book) error {
	var count int64
	if err := r.db.Model(&entities.Book{}).Where("book_id = ?", book.BookID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, book.BookID)
	}

	book.Status = entities.BookStatusAvailable
	return r.db.Create(book).Error
}

// Update rewrites the editable fields of a book. Status is deliberately not
// part of the update set.
func (r *Repository) Update(id string, book *entities.Book) error {
	result := r.db.Model(&entities.Book{}).Where("book_id = ?", id).Updates(map[string]any{
		"title":        book.Title,
		"author":       book.Author,
		"category":     book.Category,
		"publish_year": book.PublishYear,
		"description":  book.Description,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Delete removes a book. Books referenced by any borrow record, open or
// closed, cannot be deleted.
func (r *Repository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&entities.BorrowRecord{}).Where("book_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return fmt.Errorf("%w: %s", ErrReferenced, id)
		}

		result := tx.Delete(&entities.Book{}, "book_id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil
	})
}

// Count returns the number of books in the catalog.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}
