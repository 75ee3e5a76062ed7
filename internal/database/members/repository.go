// Package members provides database operations for library member records.
package members

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/smartlib/library/internal/entities"
)

var (
	// ErrNotFound is returned when no member exists for the given identifier.
	ErrNotFound = errors.New("member not found")
	// ErrDuplicateID is returned when creating a member whose identifier is taken.
	ErrDuplicateID = errors.New("member identifier already exists")
	// ErrReferenced is returned when deleting a member that still has borrow
	// records. Same policy as book deletes: always blocked.
	ErrReferenced = errors.New("member is referenced by borrow records")
)

// Repository handles all member database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new members repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a member by identifier.
func (r *Repository) GetByID(id string) (*entities.Member, error) {
	var member entities.Member
	err := r.db.First(&member, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetAll retrieves all members ordered by identifier.
func (r *Repository) GetAll() ([]entities.Member, error) {
	var members []entities.Member
	err := r.db.Order("user_id ASC").Find(&members).Error
	return members, err
}

// Create inserts a new member. RegisterDate defaults to now when unset.
func (r *Repository) Create(member *entities.Member) error {
	var count int64
	if err := r.db.Model(&entities.Member{}).Where("user_id = ?", member.UserID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, member.UserID)
	}

	if member.RegisterDate.IsZero() {
		member.RegisterDate = time.Now()
	}
	return r.db.Create(member).Error
}

// Update rewrites the editable fields of a member. RegisterDate is part of
// the member's identity history and is not editable.
func (r *Repository) Update(id string, member *entities.Member) error {
	result := r.db.Model(&entities.Member{}).Where("user_id = ?", id).Updates(map[string]any{
		"name":  member.Name,
		"email": member.Email,
		"phone": member.Phone,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Delete removes a member. Members referenced by any borrow record, open or
// closed, cannot be deleted.
func (r *Repository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&entities.BorrowRecord{}).Where("user_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return fmt.Errorf("%w: %s", ErrReferenced, id)
		}

		result := tx.Delete(&entities.Member{}, "user_id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil
	})
}

// Count returns the number of registered members.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Member{}).Count(&count).Error
	return count, err
}
