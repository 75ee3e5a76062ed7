package entities

import "time"

// Member is a registered library user. Members are independent of loans
// except by reference from BorrowRecord rows.
type Member struct {
	UserID       string    `gorm:"primaryKey;size:32" json:"UserID"`
	Name         string    `gorm:"index;size:256" json:"Name"`
	Email        string    `gorm:"size:255" json:"Email"`
	Phone        string    `gorm:"size:32" json:"Phone"`
	RegisterDate time.Time `json:"RegisterDate"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
