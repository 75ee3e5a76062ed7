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
	"github.com/smartlib/library/internal/database/members"
	"github.com/smartlib/library/internal/entities"
)

func membersRouter(t *testing.T, db *database.Database) *gin.Engine {
	t.Helper()
	controller := NewMembersController(members.NewRepository(db.DB))
	router := gin.New()
	router.GET("/api/users", controller.GetAllMembers)
	router.POST("/api/users", controller.CreateMember)
	router.PUT("/api/users/:id", controller.UpdateMember)
	router.DELETE("/api/users/:id", controller.DeleteMember)
	return router
}

func TestMembersController_CreateMember(t *testing.T) {
	t.Run("registers a member with a server-set date", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		router := membersRouter(t, db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/users", bytes.NewBufferString(`{"UserID": "U001", "Name": "Alice Johnson", "Email": "alice@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var created entities.Member
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "U001", created.UserID)
		assert.WithinDuration(t, time.Now(), created.RegisterDate, time.Minute)
	})

	t.Run("rejects a duplicate id", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		require.NoError(t, members.NewRepository(db.DB).Create(&entities.Member{UserID: "U001", Name: "Alice Johnson"}))
		router := membersRouter(t, db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/users", bytes.NewBufferString(`{"UserID": "U001", "Name": "Someone Else"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		router := membersRouter(t, db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/users", bytes.NewBufferString(`{"UserID": "U001"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMembersController_UpdateMember(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	require.NoError(t, members.NewRepository(db.DB).Create(&entities.Member{UserID: "U001", Name: "Alice Johnson"}))
	router := membersRouter(t, db)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/users/U001", bytes.NewBufferString(`{"Name": "Alice J.", "Phone": "555-0100"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var member entities.Member
	require.NoError(t, db.DB.First(&member, "user_id = ?", "U001").Error)
	assert.Equal(t, "Alice J.", member.Name)
	assert.Equal(t, "555-0100", member.Phone)

	t.Run("unknown member is not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/users/U999", bytes.NewBufferString(`{"Name": "Nobody"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMembersController_DeleteMember(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := members.NewRepository(db.DB)
	require.NoError(t, repo.Create(&entities.Member{UserID: "U001", Name: "Alice Johnson"}))
	require.NoError(t, repo.Create(&entities.Member{UserID: "U002", Name: "Bob Smith"}))
	require.NoError(t, db.DB.Create(&entities.BorrowRecord{
		RecordID:   "R001",
		UserID:     "U002",
		BookID:     "B001",
		BorrowDate: time.Now(),
		DueDate:    time.Now().AddDate(0, 1, 0),
	}).Error)
	router := membersRouter(t, db)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/users/U001", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	t.Run("member with borrow history is blocked", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/users/U002", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
