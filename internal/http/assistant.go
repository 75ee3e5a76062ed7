package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/smartlib/library/internal/assistant"
	"github.com/smartlib/library/internal/entities"
)

// CatalogSnapshotter provides the catalog snapshot forwarded to the
// answering feature.
type CatalogSnapshotter interface {
	GetAll() ([]entities.Book, error)
}

type AssistantController struct {
	answerer assistant.Answerer
	catalog  CatalogSnapshotter
}

func NewAssistantController(answerer assistant.Answerer, catalog CatalogSnapshotter) *AssistantController {
	return &AssistantController{answerer: answerer, catalog: catalog}
}

type askRequest struct {
	Question string `json:"question" binding:"required"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

// Ask forwards the question with the current catalog snapshot to the
// answering feature. When the provider is unreachable the fixed fallback
// message is returned with a 200 so the UI shows text rather than an error.
func (controller *AssistantController) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "question is required")
		return
	}

	snapshot, err := controller.catalog.GetAll()
	if err != nil {
		respondInternalError(c, err, "assistant: catalog snapshot")
		return
	}

	answer, err := controller.answerer.Answer(c.Request.Context(), req.Question, snapshot)
	if err != nil {
		if errors.Is(err, assistant.ErrUnavailable) {
			log.Warn().Err(err).Msg("assistant unavailable, serving fallback")
			c.JSON(http.StatusOK, askResponse{Answer: assistant.FallbackMessage})
			return
		}
		respondInternalError(c, err, "assistant")
		return
	}

	c.JSON(http.StatusOK, askResponse{Answer: answer})
}
