package ws

import (
	"support-srv/internal/middleware"
	"support-srv/internal/session"
	"support-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the session websocket handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc session.UseCase
}

// New - Factory
func New(l log.Logger, uc session.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
