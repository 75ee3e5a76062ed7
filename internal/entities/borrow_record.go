package entities

import "time"

// BorrowRecord links a member to a book over an interval. A nil ReturnDate
// means the loan is still open. Records are created only by a successful
// borrow, mutated exactly once (ReturnDate) by a successful return, and
// never deleted.
type BorrowRecord struct {
	RecordID   string     `gorm:"primaryKey;size:64" json:"RecordID"`
	UserID     string     `gorm:"index;size:32" json:"UserID"`
	BookID     string     `gorm:"index;size:32" json:"BookID"`
	BorrowDate time.Time  `json:"BorrowDate"`
	DueDate    time.Time  `json:"DueDate"`
	ReturnDate *time.Time `gorm:"index" json:"ReturnDate"`
	CreatedAt  time.Time  `json:"-"`
	UpdatedAt  time.Time  `json:"-"`
}

// Open reports whether the loan has not been returned yet.
func (r BorrowRecord) Open() bool {
	return r.ReturnDate == nil
}
