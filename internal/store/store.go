package store

import (
	"context"
	"time"
)

// Upload is the record kept for one uploaded file. File bytes live on disk;
// the store only tracks metadata.
type Upload struct {
	ID        string
	Name      string
	Size      int64
	CreatedAt time.Time
}

// Store persists upload records. Session state is deliberately not persisted
// anywhere; this store serves only the one-shot upload endpoint.
type Store interface {
	CreateUpload(ctx context.Context, up Upload) error
	GetUpload(ctx context.Context, id string) (*Upload, error)
	ListUploads(ctx context.Context, limit int) ([]Upload, error)
	Close() error
}
