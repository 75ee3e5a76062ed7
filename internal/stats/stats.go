// Package stats computes dashboard aggregates as pure read-side projections
// over store snapshots. Nothing in here mutates state.
package stats

import (
	"sort"
	"time"

	"github.com/smartlib/library/internal/entities"
)

// CategoryCount is one slice of the category distribution chart.
type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Statistics is the dashboard projection.
type Statistics struct {
	TotalBooks           int             `json:"totalBooks"`
	TotalMembers         int             `json:"totalUsers"`
	ActiveBorrows        int             `json:"activeBorrows"`
	OverdueBooks         int             `json:"overdueBooks"`
	CategoryDistribution []CategoryCount `json:"categoryDistribution"`
}

// Compute derives statistics from a snapshot of the three stores. Overdue
// means an open loan whose due date lies before now.
func Compute(books []entities.Book, members []entities.Member, records []entities.BorrowRecord, now time.Time) Statistics {
	active := 0
	overdue := 0
	for _, rec := range records {
		if !rec.Open() {
			continue
		}
		active++
		if rec.DueDate.Before(now) {
			overdue++
		}
	}

	byCategory := make(map[string]int)
	for _, book := range books {
		byCategory[book.Category]++
	}
	distribution := make([]CategoryCount, 0, len(byCategory))
	for name, value := range byCategory {
		distribution = append(distribution, CategoryCount{Name: name, Value: value})
	}
	sort.Slice(distribution, func(i, j int) bool {
		return distribution[i].Name < distribution[j].Name
	})

	return Statistics{
		TotalBooks:           len(books),
		TotalMembers:         len(members),
		ActiveBorrows:        active,
		OverdueBooks:         overdue,
		CategoryDistribution: distribution,
	}
}
