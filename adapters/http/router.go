package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sameer-B786/portfolio/adapters/persistence"
	"github.com/Sameer-B786/portfolio/pkg/auth"
	"github.com/Sameer-B786/portfolio/pkg/logger"
)

type RouterDeps struct {
	AuthHandler      *AuthHandler
	ContentHandler   *ContentHandler
	MediaHandler     *MediaHandler
	PortfolioHandler *PortfolioHandler
	JWTService       *auth.JWTService
	Sessions         *persistence.SessionStore
	Logger           logger.Logger
}

// NewRouter assembles the public read surface and the gated editing surface.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(deps.Logger))

	authMiddleware := AuthMiddleware(deps.JWTService, deps.Sessions)

	api := router.Group("/api")
	{
		// Rendering consumers: committed state only.
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.GET("/portfolio", deps.PortfolioHandler.GetPortfolio)
		api.GET("/theme", deps.PortfolioHandler.GetTheme)

		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", deps.AuthHandler.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{
				adminPrivate.POST("/auth/logout", deps.AuthHandler.Logout)

				adminPrivate.GET("/content", deps.ContentHandler.GetWorkingState)
				adminPrivate.PUT("/content/fields", deps.ContentHandler.SetField)
				adminPrivate.POST("/content/commit", deps.ContentHandler.Commit)
				adminPrivate.GET("/content/export", deps.ContentHandler.Export)
				adminPrivate.POST("/content/import", deps.ContentHandler.Import)

				skills := adminPrivate.Group("/content/skills")
				{
					skills.POST("", deps.ContentHandler.AddSkillCategory)
					skills.POST("/:cat", deps.ContentHandler.AddSkill)
					skills.PATCH("/:cat", deps.ContentHandler.RenameSkillCategory)
					skills.DELETE("/:cat", deps.ContentHandler.DeleteSkillCategory)
					skills.PATCH("/:cat/:skill", deps.ContentHandler.UpdateSkill)
					skills.DELETE("/:cat/:skill", deps.ContentHandler.DeleteSkill)
				}

				records := adminPrivate.Group("/content/:collection")
				{
					records.POST("", deps.ContentHandler.AddRecord)
					records.PATCH("/:id", deps.ContentHandler.UpdateRecord)
					records.DELETE("/:id", deps.ContentHandler.DeleteRecord)
				}

				adminPrivate.POST("/media", deps.MediaHandler.Ingest)
				adminPrivate.PUT("/theme", deps.PortfolioHandler.SetTheme)
			}
		}
	}

	return router
}
