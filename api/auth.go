package api

import (
	"net/http"

	"github.com/Domenick1991/flynow/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service auth.AuthUseCase
}

type authoriseRequest struct {
	Key    string `json:"key"`
	Secret string `json:"secret"`
}

func NewAuthHandler(service auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/authorise", h.authorise)
}

func (h *AuthHandler) authorise(c *gin.Context) {
	var req authoriseRequest
	// An absent or malformed body leaves the fields empty; the missing-field
	// guards produce the contract messages.
	_ = c.ShouldBindJSON(&req)

	token, err := h.service.Issue(c.Request.Context(), req.Key, req.Secret)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
