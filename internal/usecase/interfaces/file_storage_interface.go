package interfaces

import (
	"context"
	"io"
)

// IFileStorage abstracts the object store holding listing images.
//
// Upload writes the object and returns its public URL.
type IFileStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
