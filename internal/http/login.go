package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartlib/library/internal/auth"
)

type LoginController struct {
	verifier *auth.Verifier
}

func NewLoginController(verifier *auth.Verifier) *LoginController {
	return &LoginController{verifier: verifier}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the placeholder admin credentials. No session is created;
// the UI just gates its screens on the acknowledgement.
func (controller *LoginController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	if err := controller.verifier.Verify(req.Username, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"username": controller.verifier.Username(),
	})
}
