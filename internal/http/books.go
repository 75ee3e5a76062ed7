package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartlib/library/internal/entities"
)

// CatalogStore is the slice of the catalog repository the books controller
// needs. Note there is no way to write Status through it.
type CatalogStore interface {
	GetAll() ([]entities.Book, error)
	Search(query string) ([]entities.Book, error)
	Create(book *entities.Book) error
	Update(id string, book *entities.Book) error
	Delete(id string) error
}

type BooksController struct {
	store CatalogStore
}

func NewBooksController(store CatalogStore) *BooksController {
	return &BooksController{store: store}
}

type createBookRequest struct {
	BookID      string `json:"BookID" binding:"required"`
	Title       string `json:"Title" binding:"required"`
	Author      string `json:"Author"`
	Category    string `json:"Category"`
	PublishYear int    `json:"PublishYear"`
	Description string `json:"Description"`
}

type updateBookRequest struct {
	Title       string `json:"Title" binding:"required"`
	Author      string `json:"Author"`
	Category    string `json:"Category"`
	PublishYear int    `json:"PublishYear"`
	Description string `json:"Description"`
}

// GetAllBooks lists the catalog; ?q= filters by title/author substring.
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	var (
		books []entities.Book
		err   error
	)
	if query := c.Query("q"); query != "" {
		books, err = controller.store.Search(query)
	} else {
		books, err = controller.store.GetAll()
	}
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// CreateBook adds a new book to the catalog. The book always starts out
// Available regardless of the request body.
func (controller *BooksController) CreateBook(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "BookID and Title are required")
		return
	}

	book := entities.Book{
		BookID:      req.BookID,
		Title:       req.Title,
		Author:      req.Author,
		Category:    req.Category,
		PublishYear: req.PublishYear,
		Description: req.Description,
	}
	if err := controller.store.Create(&book); err != nil {
		respondDomainError(c, err, "create book")
		return
	}
	respondCreated(c, book)
}

// UpdateBook edits the book's descriptive fields. Status is not editable
// here; only the circulation service may change it.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	id := c.Param("id")

	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Title is required")
		return
	}

	book := entities.Book{
		Title:       req.Title,
		Author:      req.Author,
		Category:    req.Category,
		PublishYear: req.PublishYear,
		Description: req.Description,
	}
	if err := controller.store.Update(id, &book); err != nil {
		respondDomainError(c, err, "update book")
		return
	}
	respondSuccess(c, "Book updated")
}

// DeleteBook removes a book. Deletes of books with any borrow history are
// blocked with a conflict.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id := c.Param("id")
	if err := controller.store.Delete(id); err != nil {
		respondDomainError(c, err, "delete book")
		return
	}
	respondSuccess(c, "Book deleted")
}
