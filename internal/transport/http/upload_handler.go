package http

import (
	"fmt"
	"io"
	stdhttp "net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kmorozov/caseboard-server/internal/store"
)

// maxUploadBytes caps a single upload body.
const maxUploadBytes = 64 << 20

// UploadHandler accepts one-shot raw-body uploads, independent of any session
// state. The file lands on disk under dir; metadata goes to the store.
type UploadHandler struct {
	dir     string
	baseURL string
	store   store.Store
	limiter *rateLimiter
	log     *zerolog.Logger
}

// NewUploadHandler builds the handler and ensures the upload directory exists.
func NewUploadHandler(dir, baseURL string, st store.Store, limit int, logger *zerolog.Logger) (*UploadHandler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadHandler{
		dir:     dir,
		baseURL: baseURL,
		store:   st,
		limiter: newRateLimiter(limit),
		log:     logger,
	}, nil
}

// Dir returns the directory uploaded files are stored in.
func (h *UploadHandler) Dir() string {
	return h.dir
}

// Upload handles POST with a raw byte stream body. The original file name
// comes from the X-File-Name header; the stored file is keyed by a fresh id.
// Responds with {"url": "..."} pointing at the served file.
func (h *UploadHandler) Upload(c *gin.Context) {
	if !h.limiter.allow() {
		c.JSON(stdhttp.StatusTooManyRequests, gin.H{"error": "too many uploads"})
		return
	}

	id := uuid.NewString()
	name := c.GetHeader("X-File-Name")
	if name == "" {
		name = "file.zip"
	}

	body := stdhttp.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		h.log.Warn().Err(err).Msg("read upload body")
		c.JSON(stdhttp.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	path := filepath.Join(h.dir, id+".zip")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		h.log.Error().Err(err).Str("path", path).Msg("write upload")
		c.JSON(stdhttp.StatusInternalServerError, gin.H{"error": "store failed"})
		return
	}

	rec := store.Upload{
		ID:        id,
		Name:      name,
		Size:      int64(len(data)),
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.CreateUpload(c.Request.Context(), rec); err != nil {
		h.log.Error().Err(err).Str("upload_id", id).Msg("record upload")
		c.JSON(stdhttp.StatusInternalServerError, gin.H{"error": "store failed"})
		return
	}

	base := h.baseURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + c.Request.Host
	}

	h.log.Info().
		Str("upload_id", id).
		Str("name", name).
		Int64("size", rec.Size).
		Msg("file uploaded")

	c.JSON(stdhttp.StatusOK, gin.H{"url": fmt.Sprintf("%s/files/%s.zip", base, id)})
}
