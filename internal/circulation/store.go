package circulation

import (
	"context"
	"time"

	"github.com/smartlib/library/internal/entities"
)

// Store is the storage abstraction the circulation service writes through.
// Transact runs fn as one atomic unit: either every write fn performs is
// committed, or none are. The service is the only component allowed to use
// these write operations.
type Store interface {
	Transact(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the set of operations available inside a circulation transaction.
type Tx interface {
	// GetMember returns the member or ErrMemberNotFound.
	GetMember(id string) (*entities.Member, error)
	// GetBook returns the book or ErrBookNotFound.
	GetBook(id string) (*entities.Book, error)
	// OpenLoans returns the book's open borrow records, most recently
	// opened first.
	OpenLoans(bookID string) ([]entities.BorrowRecord, error)
	// InsertLoan appends a new borrow record to the ledger.
	InsertLoan(rec *entities.BorrowRecord) error
	// CloseLoan sets the return date on an open record. Closing a record
	// that is missing or already closed is an error.
	CloseLoan(recordID string, at time.Time) error
	// SetBookStatus updates the catalog status of a book.
	SetBookStatus(bookID string, status entities.BookStatus) error
}
