package entities

import "time"

type BookStatus string

const (
	BookStatusAvailable BookStatus = "Available"
	BookStatusBorrowed  BookStatus = "Borrowed"
	BookStatusLost      BookStatus = "Lost" // set out-of-band, never by the circulation service
)

// Book is a catalog entry. Status is derived state owned by the circulation
// service: it must always agree with the loan ledger and is never settable
// through catalog CRUD.
type Book struct {
	BookID      string     `gorm:"primaryKey;size:32" json:"BookID"`
	Title       string     `gorm:"index;size:512" json:"Title"`
	Author      string     `gorm:"index;size:256" json:"Author"`
	Category    string     `gorm:"index;size:128" json:"Category"`
	PublishYear int        `json:"PublishYear"`
	Status      BookStatus `gorm:"size:16;default:'Available'" json:"Status"`
	Description string     `gorm:"type:text" json:"Description,omitempty"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   time.Time  `json:"-"`
}
