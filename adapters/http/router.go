package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devlinkhq/devlink/pkg/auth"
	"github.com/devlinkhq/devlink/pkg/logger"
)

// NewRouter mounts the REST surface. Read endpoints for browsing profiles
// and the GitHub relay are public; everything else sits behind the token
// gate.
func NewRouter(
	authHandler *AuthHandler,
	profileHandler *ProfileHandler,
	postHandler *PostHandler,
	jwtSvc *auth.JWTService,
	log logger.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), ErrorMiddleware(log))

	authRequired := AuthMiddleware(jwtSvc)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.POST("/users", authHandler.Register)
		api.POST("/auth", authHandler.Login)
		api.GET("/auth", authRequired, authHandler.CurrentUser)

		profiles := api.Group("/profile")
		{
			profiles.GET("", profileHandler.List)
			profiles.GET("/me", authRequired, profileHandler.Me)
			profiles.GET("/user/:userId", profileHandler.ByUserID)
			profiles.GET("/github/:username", profileHandler.GithubRepos)

			profiles.POST("", authRequired, profileHandler.Upsert)
			profiles.DELETE("", authRequired, profileHandler.DeleteAccount)

			profiles.PUT("/experience", authRequired, profileHandler.AddExperience)
			profiles.DELETE("/experience/:expId", authRequired, profileHandler.RemoveExperience)
			profiles.PUT("/education", authRequired, profileHandler.AddEducation)
			profiles.DELETE("/education/:eduId", authRequired, profileHandler.RemoveEducation)
		}

		posts := api.Group("/posts")
		posts.Use(authRequired)
		{
			posts.POST("", postHandler.Create)
			posts.GET("", postHandler.List)
			posts.GET("/:id", postHandler.Get)
			posts.DELETE("/:id", postHandler.Delete)
			posts.PUT("/like/:id", postHandler.Like)
			posts.PUT("/unlike/:id", postHandler.Unlike)
			posts.POST("/comment/:id", postHandler.AddComment)
			posts.DELETE("/comment/:id/:commentId", postHandler.RemoveComment)
		}
	}

	return router
}
