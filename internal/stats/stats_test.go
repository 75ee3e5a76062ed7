package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/smartlib/library/internal/entities"
)

func TestCompute(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	returned := now.AddDate(0, -1, 0)

	books := []entities.Book{
		{BookID: "B001", Category: "Computer Science"},
		{BookID: "B002", Category: "Computer Science"},
		{BookID: "B003", Category: "Literature"},
	}
	members := []entities.Member{
		{UserID: "U001"},
		{UserID: "U002"},
	}
	records := []entities.BorrowRecord{
		// Open and overdue
		{RecordID: "R1", BookID: "B001", DueDate: now.AddDate(0, -1, 0)},
		// Open, not yet due
		{RecordID: "R2", BookID: "B002", DueDate: now.AddDate(0, 1, 0)},
		// Closed, even though the due date has passed
		{RecordID: "R3", BookID: "B003", DueDate: now.AddDate(0, -2, 0), ReturnDate: &returned},
	}

	got := Compute(books, members, records, now)

	assert.Equal(t, 3, got.TotalBooks)
	assert.Equal(t, 2, got.TotalMembers)
	assert.Equal(t, 2, got.ActiveBorrows)
	assert.Equal(t, 1, got.OverdueBooks)
	assert.Equal(t, []CategoryCount{
		{Name: "Computer Science", Value: 2},
		{Name: "Literature", Value: 1},
	}, got.CategoryDistribution)
}

func TestCompute_Empty(t *testing.T) {
	got := Compute(nil, nil, nil, time.Now())
	assert.Zero(t, got.TotalBooks)
	assert.Zero(t, got.TotalMembers)
	assert.Zero(t, got.ActiveBorrows)
	assert.Zero(t, got.OverdueBooks)
	assert.Empty(t, got.CategoryDistribution)
}
