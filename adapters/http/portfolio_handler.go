package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sameer-B786/portfolio/adapters/persistence"
	"github.com/Sameer-B786/portfolio/internal/domain/portfolio"
	"github.com/Sameer-B786/portfolio/pkg/apperror"
	"github.com/Sameer-B786/portfolio/pkg/logger"
)

// PortfolioHandler serves the read-only consumers: they get the committed
// model and never touch the edit session.
type PortfolioHandler struct {
	store  portfolio.Store
	themes *persistence.ThemeStore
	logger logger.Logger
}

func NewPortfolioHandler(store portfolio.Store, themes *persistence.ThemeStore, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{store: store, themes: themes, logger: log}
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Committed())
}

func (h *PortfolioHandler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": h.themes.Get(c.Request.Context())})
}

func (h *PortfolioHandler) SetTheme(c *gin.Context) {
	var req SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for theme", err))
		return
	}
	if err := h.themes.Set(c.Request.Context(), req.Theme); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
