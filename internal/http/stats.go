package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartlib/library/internal/entities"
	"github.com/smartlib/library/internal/stats"
)

// SnapshotReader provides the store snapshots the dashboard aggregates over.
type SnapshotReader interface {
	Books() ([]entities.Book, error)
	Members() ([]entities.Member, error)
	Records() ([]entities.BorrowRecord, error)
}

type StatsController struct {
	reader SnapshotReader
}

func NewStatsController(reader SnapshotReader) *StatsController {
	return &StatsController{reader: reader}
}

// GetStatistics computes the dashboard projection from a fresh snapshot.
func (controller *StatsController) GetStatistics(c *gin.Context) {
	books, err := controller.reader.Books()
	if err != nil {
		respondInternalError(c, err, "stats: books snapshot")
		return
	}
	membersList, err := controller.reader.Members()
	if err != nil {
		respondInternalError(c, err, "stats: members snapshot")
		return
	}
	records, err := controller.reader.Records()
	if err != nil {
		respondInternalError(c, err, "stats: ledger snapshot")
		return
	}

	c.JSON(http.StatusOK, stats.Compute(books, membersList, records, time.Now()))
}
