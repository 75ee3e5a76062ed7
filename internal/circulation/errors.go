package circulation

import "errors"

var (
	// ErrMemberNotFound is returned when the borrowing member does not exist.
	ErrMemberNotFound = errors.New("member not found")
	// ErrBookNotFound is returned when the requested book does not exist.
	ErrBookNotFound = errors.New("book not found")
	// ErrBookUnavailable is returned when borrowing a book that is not
	// currently Available.
	ErrBookUnavailable = errors.New("book is not available")
	// ErrNoOpenLoan is returned when returning a book with no open loan.
	ErrNoOpenLoan = errors.New("book has no open loan")
	// ErrLedgerInconsistent is returned when a return finds more than one
	// open loan for a book. The newest is closed, the rest are left for
	// inspection rather than silently repaired.
	ErrLedgerInconsistent = errors.New("ledger holds multiple open loans for book")
)
