// Package ledger provides read access to the borrow-record ledger and the
// sqlite-backed implementation of the circulation store.
//
// # Interface Implementation
//
//	var _ circulation.Store = (*Repository)(nil)
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/smartlib/library/internal/circulation"
	"github.com/smartlib/library/internal/entities"
)

// Repository handles borrow-record database operations. Writes go through
// Transact only, so every circulation change is one sqlite transaction.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new ledger repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

var _ circulation.Store = (*Repository)(nil)

// GetAll retrieves the full ledger, newest loans first.
func (r *Repository) GetAll() ([]entities.BorrowRecord, error) {
	var records []entities.BorrowRecord
	err := r.db.Order("borrow_date DESC, created_at DESC").Find(&records).Error
	return records, err
}

// GetForMember retrieves all borrow records of one member, newest first.
func (r *Repository) GetForMember(userID string) ([]entities.BorrowRecord, error) {
	var records []entities.BorrowRecord
	err := r.db.Where("user_id = ?", userID).
		Order("borrow_date DESC, created_at DESC").Find(&records).Error
	return records, err
}

// OpenOverdue retrieves open loans whose due date lies before now.
func (r *Repository) OpenOverdue(now time.Time) ([]entities.BorrowRecord, error) {
	var records []entities.BorrowRecord
	err := r.db.Where("return_date IS NULL AND due_date < ?", now).
		Order("due_date ASC").Find(&records).Error
	return records, err
}

// Transact implements circulation.Store on top of a gorm transaction.
func (r *Repository) Transact(ctx context.Context, fn func(tx circulation.Tx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) GetMember(id string) (*entities.Member, error) {
	var member entities.Member
	err := t.db.First(&member, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", circulation.ErrMemberNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (t *gormTx) GetBook(id string) (*entities.Book, error) {
	var book entities.Book
	err := t.db.First(&book, "book_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", circulation.ErrBookNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (t *gormTx) OpenLoans(bookID string) ([]entities.BorrowRecord, error) {
	var records []entities.BorrowRecord
	err := t.db.Where("book_id = ? AND return_date IS NULL", bookID).
		Order("borrow_date DESC, created_at DESC").Find(&records).Error
	return records, err
}

func (t *gormTx) InsertLoan(rec *entities.BorrowRecord) error {
	return t.db.Create(rec).Error
}

func (t *gormTx) CloseLoan(recordID string, at time.Time) error {
	result := t.db.Model(&entities.BorrowRecord{}).
		Where("record_id = ? AND return_date IS NULL", recordID).
		Update("return_date", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: record %s", circulation.ErrNoOpenLoan, recordID)
	}
	return nil
}

func (t *gormTx) SetBookStatus(bookID string, status entities.BookStatus) error {
	result := t.db.Model(&entities.Book{}).
		Where("book_id = ?", bookID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", circulation.ErrBookNotFound, bookID)
	}
	return nil
}
