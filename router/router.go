// Package router builds the gin engine with every API route.
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"mcp-playground/handlers"
	"mcp-playground/helper"
	"mcp-playground/middleware"
	"mcp-playground/services"
)

// Deps is everything the routes need.
type Deps struct {
	Logger  *slog.Logger
	Version string

	Tools         services.ToolService
	Blog          services.BlogService
	Contact       services.ContactService
	Documentation services.DocumentationService
	Playground    services.PlaygroundService

	// ContactLimiter throttles contact submissions; nil disables it.
	ContactLimiter *middleware.RateLimiter
}

func Setup(deps Deps) *gin.Engine {
	httpHelper := helper.NewHTTPHelper(deps.Logger)

	toolHandler := handlers.NewToolHandler(deps.Tools, httpHelper)
	blogHandler := handlers.NewBlogHandler(deps.Blog, httpHelper)
	contactHandler := handlers.NewContactHandler(deps.Contact, httpHelper)
	docHandler := handlers.NewDocumentationHandler(deps.Documentation, httpHelper)
	playgroundHandler := handlers.NewPlaygroundHandler(deps.Playground, httpHelper)
	healthHandler := handlers.NewHealthHandler(deps.Version)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(),
	)

	router.NoRoute(func(c *gin.Context) {
		httpHelper.SendNotFoundError(c, "Route not found")
	})

	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		tools := api.Group("/tools")
		{
			tools.GET("", toolHandler.GetTools)
			tools.GET("/:id", toolHandler.GetTool)
			tools.POST("", toolHandler.CreateTool)
			tools.PUT("/:id", toolHandler.UpdateTool)
			tools.DELETE("/:id", toolHandler.DeleteTool)
		}

		blog := api.Group("/blog")
		{
			blog.GET("", blogHandler.GetPosts)
			blog.GET("/:slug", blogHandler.GetPost)
			blog.POST("", blogHandler.CreatePost)
		}

		contact := api.Group("/contact")
		{
			submit := []gin.HandlerFunc{contactHandler.SubmitMessage}
			if deps.ContactLimiter != nil {
				submit = append([]gin.HandlerFunc{middleware.RateLimit(deps.ContactLimiter)}, submit...)
			}
			contact.POST("", submit...)
			contact.GET("", contactHandler.GetMessages)
			contact.PUT("/:id", contactHandler.UpdateStatus)
		}

		docs := api.Group("/documentation")
		{
			docs.GET("", docHandler.GetSections)
			docs.GET("/meta/categories", docHandler.GetCategories)
			docs.GET("/:id", docHandler.GetSection)
		}

		playground := api.Group("/playground")
		{
			playground.GET("/prompts", playgroundHandler.GetStarterPrompts)
			playground.POST("/sessions", playgroundHandler.CreateSession)
			playground.GET("/sessions/:id", playgroundHandler.GetSession)
			playground.PUT("/sessions/:id/config", playgroundHandler.UpdateConfig)
			playground.POST("/sessions/:id/messages", playgroundHandler.SendMessage)
			playground.GET("/sessions/:id/tasks/:task_id", playgroundHandler.GetTask)
		}
	}

	return router
}
