package server

import (
	"github.com/gin-gonic/gin"

	"pitchmate/internal/auth"
	"pitchmate/internal/gateway/handler"
	"pitchmate/internal/gateway/middleware"
	"pitchmate/internal/gateway/progress"
)

func NewRouter(
	tokens auth.TokenService,
	authHandler *handler.AuthHandler,
	deckHandler *handler.DeckHandler,
	enrichHandler *handler.EnrichHandler,
	hub *progress.Hub,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())

	r.GET("/health", handler.Health)
	r.GET("/palette", enrichHandler.Palette)
	r.POST("/enrich_section", enrichHandler.Section)
	r.GET("/ws/progress/:id", progress.WSHandler(hub))

	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)

	authed := r.Group("/", auth.Middleware(tokens))
	authed.GET("/auth/me", authHandler.Me)
	authed.POST("/generate_slides", deckHandler.Generate)
	authed.POST("/enrich_problem", enrichHandler.Problem)
	authed.POST("/save_deck", deckHandler.Save)
	authed.GET("/my_decks", deckHandler.List)
	authed.GET("/decks/:id", deckHandler.Get)

	return r
}
