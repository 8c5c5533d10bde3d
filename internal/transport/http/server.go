package http

import (
	"fmt"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kmorozov/caseboard-server/internal/config"
	"github.com/kmorozov/caseboard-server/internal/core"
	"github.com/kmorozov/caseboard-server/internal/store"
)

// NewServer builds the HTTP server: health, the session websocket, and the
// upload surface.
func NewServer(hub *core.Hub, st store.Store, cfg config.Config, logger *zerolog.Logger) (*stdhttp.Server, error) {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))

	router.GET("/health", healthHandler)
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))

	upload, err := NewUploadHandler(cfg.UploadDir, cfg.PublicBaseURL, st, cfg.UploadsPerMinute, logger)
	if err != nil {
		return nil, fmt.Errorf("upload handler: %w", err)
	}
	router.POST("/api/upload", upload.Upload)
	router.Static("/files", upload.Dir())

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}, nil
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
