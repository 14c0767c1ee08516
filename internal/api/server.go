// Package api exposes the wizard, the preview derivation and the export
// pipeline over a JSON HTTP surface. The browser is a thin client; all
// derivation logic stays server-side.
package api

import (
	"github.com/dpereira/travel-assistant/internal/authgate"
	"github.com/dpereira/travel-assistant/internal/estimate"
	"github.com/dpereira/travel-assistant/internal/export"
	"github.com/dpereira/travel-assistant/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server wires the HTTP handlers to their dependencies.
type Server struct {
	sessions    *SessionStore
	profileRepo *repository.ProfileRepository
	notifRepo   *repository.NotificationRepository
	gate        *authgate.Gate
	filler      *export.Filler
	rates       estimate.Rates
	logger      *zap.Logger
}

// NewServer creates the API server.
func NewServer(
	sessions *SessionStore,
	profileRepo *repository.ProfileRepository,
	notifRepo *repository.NotificationRepository,
	gate *authgate.Gate,
	filler *export.Filler,
	rates estimate.Rates,
	logger *zap.Logger,
) *Server {
	return &Server{
		sessions:    sessions,
		profileRepo: profileRepo,
		notifRepo:   notifRepo,
		gate:        gate,
		filler:      filler,
		rates:       rates,
		logger:      logger,
	}
}

// Register mounts all routes on the router group.
func (s *Server) Register(r *gin.RouterGroup) {
	r.GET("/gate", s.handleGateStatus)
	r.POST("/gate", s.handleGateSubmit)

	r.POST("/sessions", s.handleCreateSession)
	r.GET("/sessions/:id", s.handleGetSession)
	r.DELETE("/sessions/:id", s.handleDeleteSession)
	r.PATCH("/sessions/:id/trip", s.handleUpdateTrip)
	r.POST("/sessions/:id/next", s.handleNext)
	r.POST("/sessions/:id/previous", s.handlePrevious)
	r.POST("/sessions/:id/goto", s.handleGoTo)
	r.GET("/sessions/:id/preview", s.handlePreview)
	r.PUT("/sessions/:id/preview/body", s.handleEditPreview)
	r.GET("/sessions/:id/mailto", s.handleMailto)
	r.POST("/sessions/:id/export", s.handleExport)

	r.GET("/notifications", s.handleNotifications)
}
