package http

import (
	"github.com/gin-gonic/gin"

	"github.com/smartlib/library/internal/assistant"
	"github.com/smartlib/library/internal/auth"
)

// RouterConfig carries all controller dependencies, keeping NewRouter's
// signature stable and the wiring testable.
type RouterConfig struct {
	Catalog       CatalogStore
	Members       MemberStore
	Circulation   Circulator
	Ledger        LedgerReader
	Snapshot      SnapshotReader
	Answerer      assistant.Answerer
	LoginVerifier *auth.Verifier
	DB            Pinger
	Version       string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	healthController := NewHealthController(cfg.DB, cfg.Version)
	router.GET("/health", healthController.Status)

	api := router.Group("/api")

	booksController := NewBooksController(cfg.Catalog)
	api.GET("/books", booksController.GetAllBooks)
	api.POST("/books", booksController.CreateBook)
	api.PUT("/books/:id", booksController.UpdateBook)
	api.DELETE("/books/:id", booksController.DeleteBook)

	membersController := NewMembersController(cfg.Members)
	api.GET("/users", membersController.GetAllMembers)
	api.POST("/users", membersController.CreateMember)
	api.PUT("/users/:id", membersController.UpdateMember)
	api.DELETE("/users/:id", membersController.DeleteMember)

	circulationController := NewCirculationController(cfg.Circulation, cfg.Ledger)
	api.GET("/borrow", circulationController.GetAllRecords)
	api.POST("/borrow", circulationController.Borrow)
	api.POST("/return", circulationController.Return)

	statsController := NewStatsController(cfg.Snapshot)
	api.GET("/stats", statsController.GetStatistics)

	if cfg.Answerer != nil {
		assistantController := NewAssistantController(cfg.Answerer, cfg.Catalog)
		api.POST("/assistant", assistantController.Ask)
	}

	if cfg.LoginVerifier != nil {
		loginController := NewLoginController(cfg.LoginVerifier)
		api.POST("/login", loginController.Login)
	}

	return router
}
