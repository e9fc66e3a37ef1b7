package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/Sameer-B786/portfolio/internal/application/usecase/auth"
	"github.com/Sameer-B786/portfolio/pkg/apperror"
	"github.com/Sameer-B786/portfolio/pkg/logger"
)

type AuthHandler struct {
	loginUseCase *authUC.LoginUseCase
	logger       logger.Logger
}

func NewAuthHandler(uc *authUC.LoginUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{loginUseCase: uc, logger: log}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for login", err))
		return
	}

	input := authUC.LoginInput{Email: req.Email, Password: req.Password}
	output, err := h.loginUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{AccessToken: output.AccessToken})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.loginUseCase.Logout(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
