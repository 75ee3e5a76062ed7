package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartlib/library/internal/entities"
)

// Circulator is the circulation service surface this controller talks to.
type Circulator interface {
	Borrow(ctx context.Context, userID, bookID string) (*entities.BorrowRecord, error)
	Return(ctx context.Context, bookID string) (*entities.BorrowRecord, error)
}

// LedgerReader lists the full ledger for display.
type LedgerReader interface {
	GetAll() ([]entities.BorrowRecord, error)
}

type CirculationController struct {
	service Circulator
	ledger  LedgerReader
}

func NewCirculationController(service Circulator, ledger LedgerReader) *CirculationController {
	return &CirculationController{service: service, ledger: ledger}
}

type borrowRequest struct {
	UserID string `json:"userId" binding:"required"`
	BookID string `json:"bookId" binding:"required"`
}

type returnRequest struct {
	BookID string `json:"bookId" binding:"required"`
}

type borrowResponse struct {
	Message string                 `json:"message"`
	DueDate string                 `json:"dueDate"`
	Record  *entities.BorrowRecord `json:"record"`
}

type returnResponse struct {
	Message string                 `json:"message"`
	Record  *entities.BorrowRecord `json:"record"`
}

// GetAllRecords lists every borrow record, open and closed.
func (controller *CirculationController) GetAllRecords(c *gin.Context) {
	records, err := controller.ledger.GetAll()
	if err != nil {
		respondInternalError(c, err, "list borrow records")
		return
	}
	c.JSON(http.StatusOK, records)
}

// Borrow lends a book to a member and returns the created record with its
// server-computed due date.
func (controller *CirculationController) Borrow(c *gin.Context) {
	var req borrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "userId and bookId are required")
		return
	}

	record, err := controller.service.Borrow(c.Request.Context(), req.UserID, req.BookID)
	if err != nil {
		respondDomainError(c, err, "borrow")
		return
	}

	c.JSON(http.StatusCreated, borrowResponse{
		Message: "Borrow successful",
		DueDate: record.DueDate.Format(time.DateOnly),
		Record:  record,
	})
}

// Return closes the book's open loan and makes the book available again.
func (controller *CirculationController) Return(c *gin.Context) {
	var req returnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "bookId is required")
		return
	}

	record, err := controller.service.Return(c.Request.Context(), req.BookID)
	if err != nil {
		respondDomainError(c, err, "return")
		return
	}

	c.JSON(http.StatusOK, returnResponse{
		Message: "Returned",
		Record:  record,
	})
}
