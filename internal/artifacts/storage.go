package artifacts

import (
	"context"
	"io"
)

// StorageDriver defines how artifact bytes are read and written. Keys are
// slash-separated paths relative to the storage root; drivers own the
// mapping onto their backing store.
type StorageDriver interface {
	// Save writes the content under key, overwriting any existing object.
	Save(ctx context.Context, key string, body io.Reader) error

	// Open returns a ReadCloser streaming the object back. A missing key
	// is reported with an error matching fs.ErrNotExist.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Location returns the externally meaningful stored location for a key
	// (an absolute path for local disk, an s3:// URL for S3).
	Location(key string) string
}
