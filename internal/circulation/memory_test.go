package circulation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartlib/library/internal/entities"
)

func TestMemoryStore_TransactRollsBackOnError(t *testing.T) {
	store := NewMemoryStore()
	store.AddBook(entities.Book{BookID: "B001", Title: "Clean Code"})

	failure := errors.New("boom")
	err := store.Transact(context.Background(), func(tx Tx) error {
		if err := tx.InsertLoan(&entities.BorrowRecord{RecordID: "R1", BookID: "B001", UserID: "U001", BorrowDate: time.Now()}); err != nil {
			return err
		}
		if err := tx.SetBookStatus("B001", entities.BookStatusBorrowed); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)

	// Nothing from the failed transaction may survive.
	assert.Empty(t, store.Records())
	book, ok := store.Book("B001")
	require.True(t, ok)
	assert.Equal(t, entities.BookStatusAvailable, book.Status)
}

func TestMemoryStore_OpenLoansNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	store.AddBook(entities.Book{BookID: "B001", Title: "Clean Code"})
	store.AddRecord(entities.BorrowRecord{RecordID: "old", BookID: "B001", BorrowDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)})
	store.AddRecord(entities.BorrowRecord{RecordID: "new", BookID: "B001", BorrowDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)})

	err := store.Transact(context.Background(), func(tx Tx) error {
		open, err := tx.OpenLoans("B001")
		require.NoError(t, err)
		require.Len(t, open, 2)
		assert.Equal(t, "new", open[0].RecordID)
		assert.Equal(t, "old", open[1].RecordID)
		return nil
	})
	require.NoError(t, err)
}

func TestMemoryStore_CloseLoanTwiceFails(t *testing.T) {
	store := NewMemoryStore()
	store.AddRecord(entities.BorrowRecord{RecordID: "R1", BookID: "B001", BorrowDate: time.Now()})

	err := store.Transact(context.Background(), func(tx Tx) error {
		return tx.CloseLoan("R1", time.Now())
	})
	require.NoError(t, err)

	err = store.Transact(context.Background(), func(tx Tx) error {
		return tx.CloseLoan("R1", time.Now())
	})
	assert.ErrorIs(t, err, ErrNoOpenLoan)
}
