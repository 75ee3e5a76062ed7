package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartlib/library/internal/database"
	"github.com/smartlib/library/internal/database/catalog"
	"github.com/smartlib/library/internal/entities"
)

func booksRouter(db *database.Database) *gin.Engine {
	controller := NewBooksController(catalog.NewRepository(db.DB))
	router := gin.New()
	router.GET("/api/books", controller.GetAllBooks)
	router.POST("/api/books", controller.CreateBook)
	router.PUT("/api/books/:id", controller.UpdateBook)
	router.DELETE("/api/books/:id", controller.DeleteBook)
	return router
}

func TestBooksController_CreateBook(t *testing.T) {
	t.Run("creates a book as Available", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		router := booksRouter(db)

		body := bytes.NewBufferString(`{"BookID": "B001", "Title": "Clean Code", "Author": "Robert C. Martin", "Category": "Computer Science", "PublishYear": 2008}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books", body)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var book entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.Equal(t, "B001", book.BookID)
		assert.Equal(t, entities.BookStatusAvailable, book.Status)
	})

	t.Run("rejects a duplicate identifier with a conflict", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		router := booksRouter(db)

		payload := `{"BookID": "B001", "Title": "Clean Code"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.NewRecorder()
		req, _ = http.NewRequest("POST", "/api/books", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("rejects a missing title", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		router := booksRouter(db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books", bytes.NewBufferString(`{"BookID": "B001"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBooksController_GetAllBooks(t *testing.T) {
	t.Run("returns empty list when the catalog is empty", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		router := booksRouter(db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var books []entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
		assert.Empty(t, books)
	})

	t.Run("filters by substring via q", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		repo := catalog.NewRepository(db.DB)
		require.NoError(t, repo.Create(&entities.Book{BookID: "B001", Title: "Clean Code", Author: "Robert C. Martin"}))
		require.NoError(t, repo.Create(&entities.Book{BookID: "B002", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald"}))
		router := booksRouter(db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books?q=gatsby", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var books []entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
		require.Len(t, books, 1)
		assert.Equal(t, "B002", books[0].BookID)
	})
}

func TestBooksController_UpdateBook(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := catalog.NewRepository(db.DB)
	require.NoError(t, repo.Create(&entities.Book{BookID: "B001", Title: "Clean Code"}))
	router := booksRouter(db)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/books/B001", bytes.NewBufferString(`{"Title": "Clean Code (2nd ed)"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("PUT", "/api/books/B404", bytes.NewBufferString(`{"Title": "Ghost"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBooksController_DeleteBook(t *testing.T) {
	t.Run("deletes an unreferenced book", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		repo := catalog.NewRepository(db.DB)
		require.NoError(t, repo.Create(&entities.Book{BookID: "B001", Title: "Clean Code"}))
		router := booksRouter(db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/books/B001", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("blocks deleting a book with borrow history", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		repo := catalog.NewRepository(db.DB)
		require.NoError(t, repo.Create(&entities.Book{BookID: "B001", Title: "Clean Code"}))
		require.NoError(t, db.DB.Create(&entities.BorrowRecord{
			RecordID: "R001", UserID: "U001", BookID: "B001",
			BorrowDate: time.Now(), DueDate: time.Now().AddDate(0, 1, 0),
		}).Error)
		router := booksRouter(db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/books/B001", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
