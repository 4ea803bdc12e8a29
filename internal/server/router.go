package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"back2me/internal/handler"
	"back2me/internal/hub"
	"back2me/internal/middleware"
	"back2me/internal/session"
	"back2me/internal/store"
)

type Deps struct {
	Store    *store.Store
	Sessions *session.Registry
	Hub      *hub.Hub
	Logger   *zap.Logger
}

func NewRouter(deps Deps) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.String("request_id", middleware.RequestIDFromContext(c)),
			zap.Any("panic", recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprint(recovered),
		})
	}))
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	authHandler := &handler.AuthHandler{Store: deps.Store, Sessions: deps.Sessions}
	postHandler := &handler.PostHandler{Store: deps.Store}
	messageHandler := &handler.MessageHandler{Store: deps.Store, Hub: deps.Hub}

	api := r.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/forgot-password", authHandler.ForgotPassword)

	api.GET("/posts", postHandler.List)
	api.GET("/posts/search", postHandler.Search)
	api.GET("/posts/:id", postHandler.Get)
	api.GET("/messages/:conversation_id", messageHandler.ListForConversation)

	protected := api.Group("")
	protected.Use(middleware.RequireSession(deps.Sessions))
	protected.POST("/posts", postHandler.Create)
	protected.POST("/messages", messageHandler.Send)
	protected.GET("/conversations", messageHandler.Conversations)

	if deps.Hub != nil {
		wsHandler := &handler.WebSocketHandler{Hub: deps.Hub, Sessions: deps.Sessions}
		r.GET("/ws", wsHandler.Serve)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Not found"})
	})

	return r
}
