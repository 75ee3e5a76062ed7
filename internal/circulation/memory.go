package circulation

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/smartlib/library/internal/entities"
)

// MemoryStore is an in-memory Store. It backs the service tests and the demo
// tooling, and keeps the same all-or-nothing transaction semantics as the
// sqlite store: a failed Transact leaves no trace.
type MemoryStore struct {
	mu      sync.Mutex
	books   map[string]entities.Book
	members map[string]entities.Member
	records []entities.BorrowRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		books:   make(map[string]entities.Book),
		members: make(map[string]entities.Member),
	}
}

// AddBook seeds a book.
func (s *MemoryStore) AddBook(book entities.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if book.Status == "" {
		book.Status = entities.BookStatusAvailable
	}
	s.books[book.BookID] = book
}

// AddMember seeds a member.
func (s *MemoryStore) AddMember(member entities.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[member.UserID] = member
}

// AddRecord seeds a borrow record directly, bypassing the service. Useful
// for constructing ledger states that the service itself would never create.
func (s *MemoryStore) AddRecord(rec entities.BorrowRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// Book returns a copy of the stored book, if present.
func (s *MemoryStore) Book(id string) (entities.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[id]
	return book, ok
}

// Records returns a copy of the ledger.
func (s *MemoryStore) Records() []entities.BorrowRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.BorrowRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Transact runs fn under the store lock. State is snapshotted first and
// restored when fn fails, so partial writes never survive.
func (s *MemoryStore) Transact(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booksBefore := make(map[string]entities.Book, len(s.books))
	for k, v := range s.books {
		booksBefore[k] = v
	}
	recordsBefore := make([]entities.BorrowRecord, len(s.records))
	copy(recordsBefore, s.records)

	if err := fn(&memoryTx{store: s}); err != nil {
		s.books = booksBefore
		s.records = recordsBefore
		return err
	}
	return nil
}

type memoryTx struct {
	store *MemoryStore
}

func (t *memoryTx) GetMember(id string) (*entities.Member, error) {
	member, ok := t.store.members[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, id)
	}
	return &member, nil
}

func (t *memoryTx) GetBook(id string) (*entities.Book, error) {
	book, ok := t.store.books[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBookNotFound, id)
	}
	return &book, nil
}

func (t *memoryTx) OpenLoans(bookID string) ([]entities.BorrowRecord, error) {
	var open []entities.BorrowRecord
	for i := len(t.store.records) - 1; i >= 0; i-- {
		rec := t.store.records[i]
		if rec.BookID == bookID && rec.Open() {
			open = append(open, rec)
		}
	}
	// Newest first; same-instant loans fall back to ledger insertion order.
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].BorrowDate.After(open[j].BorrowDate)
	})
	return open, nil
}

func (t *memoryTx) InsertLoan(rec *entities.BorrowRecord) error {
	t.store.records = append(t.store.records, *rec)
	return nil
}

func (t *memoryTx) CloseLoan(recordID string, at time.Time) error {
	for i := range t.store.records {
		if t.store.records[i].RecordID == recordID && t.store.records[i].Open() {
			closed := at
			t.store.records[i].ReturnDate = &closed
			return nil
		}
	}
	return fmt.Errorf("%w: record %s", ErrNoOpenLoan, recordID)
}

func (t *memoryTx) SetBookStatus(bookID string, status entities.BookStatus) error {
	book, ok := t.store.books[bookID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrBookNotFound, bookID)
	}
	book.Status = status
	t.store.books[bookID] = book
	return nil
}
