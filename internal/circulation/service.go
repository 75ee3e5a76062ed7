// Package circulation implements the borrowing workflow: the single writer
// for book statuses and borrow records, keeping both in agreement through
// every call.
package circulation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartlib/library/internal/entities"
)

// DefaultLoanPeriodMonths is the loan length when no override is configured.
const DefaultLoanPeriodMonths = 1

// Service exposes borrow and return. Both operations run inside a single
// store transaction so that the book status and the ledger can never
// disagree, even under interleaved calls.
type Service struct {
	store       Store
	now         func() time.Time
	loanMonths  int
	newRecordID func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source, mainly for deterministic due dates in
// tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLoanPeriodMonths overrides the loan length in calendar months.
func WithLoanPeriodMonths(months int) Option {
	return func(s *Service) {
		if months > 0 {
			s.loanMonths = months
		}
	}
}

// NewService creates a circulation service on top of the given store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:       store,
		now:         time.Now,
		loanMonths:  DefaultLoanPeriodMonths,
		newRecordID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Borrow lends a book to a member. It inserts an open borrow record with a
// server-computed due date (borrow date advanced by the loan period) and
// flips the book to Borrowed, all in one transaction. Availability is
// checked inside the transaction, so of two interleaved borrow attempts on
// the same book exactly one succeeds and the other observes
// ErrBookUnavailable.
func (s *Service) Borrow(ctx context.Context, userID, bookID string) (*entities.BorrowRecord, error) {
	var rec *entities.BorrowRecord
	err := s.store.Transact(ctx, func(tx Tx) error {
		if _, err := tx.GetMember(userID); err != nil {
			return err
		}
		book, err := tx.GetBook(bookID)
		if err != nil {
			return err
		}
		if book.Status != entities.BookStatusAvailable {
			return fmt.Errorf("%w: %s has status %s", ErrBookUnavailable, bookID, book.Status)
		}
		open, err := tx.OpenLoans(bookID)
		if err != nil {
			return err
		}
		if len(open) > 0 {
			return fmt.Errorf("%w: %s already has an open loan", ErrBookUnavailable, bookID)
		}

		now := s.now()
		rec = &entities.BorrowRecord{
			RecordID:   s.newRecordID(),
			UserID:     userID,
			BookID:     bookID,
			BorrowDate: now,
			DueDate:    now.AddDate(0, s.loanMonths, 0),
		}
		if err := tx.InsertLoan(rec); err != nil {
			return err
		}
		return tx.SetBookStatus(bookID, entities.BookStatusBorrowed)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Return closes the most recently opened loan for a book and flips the book
// back to Available, in one transaction. If the ledger somehow holds more
// than one open loan for the book, only the newest is closed, the book stays
// Borrowed, and the committed result is reported alongside
// ErrLedgerInconsistent.
func (s *Service) Return(ctx context.Context, bookID string) (*entities.BorrowRecord, error) {
	var rec *entities.BorrowRecord
	var inconsistent bool
	err := s.store.Transact(ctx, func(tx Tx) error {
		if _, err := tx.GetBook(bookID); err != nil {
			return err
		}
		open, err := tx.OpenLoans(bookID)
		if err != nil {
			return err
		}
		if len(open) == 0 {
			return fmt.Errorf("%w: %s", ErrNoOpenLoan, bookID)
		}

		now := s.now()
		newest := open[0]
		if err := tx.CloseLoan(newest.RecordID, now); err != nil {
			return err
		}
		newest.ReturnDate = &now
		rec = &newest

		if len(open) > 1 {
			// Invariant violation: another loan is still open, so the
			// book remains Borrowed and the caller is told.
			inconsistent = true
			return tx.SetBookStatus(bookID, entities.BookStatusBorrowed)
		}
		return tx.SetBookStatus(bookID, entities.BookStatusAvailable)
	})
	if err != nil {
		return nil, err
	}
	if inconsistent {
		return rec, fmt.Errorf("%w: %s", ErrLedgerInconsistent, bookID)
	}
	return rec, nil
}
