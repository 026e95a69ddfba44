// Package storage keeps uploaded profile files outside the database. Records
// only ever hold the generated object name.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// ErrObjectNotFound is returned by Get when no object exists under the name.
var ErrObjectNotFound = errors.New("storage: object not found")

// Object is a stored upload opened for reading.
type Object struct {
	Content     io.ReadSeekCloser
	Size        int64
	ModTime     time.Time
	ContentType string
}

// Store persists and retrieves uploads by flat name.
type Store interface {
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, name string) (*Object, error)
}

// GenerateName builds the stored name for an upload: the upload time in unix
// milliseconds followed by the client's base file name. Two uploads of the
// same file name in the same millisecond collide.
func GenerateName(now time.Time, original string) string {
	base := path.Base(strings.ReplaceAll(original, "\\", "/"))
	if base == "." || base == "/" || base == ".." {
		base = "upload"
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), base)
}

// ValidName reports whether name can address a stored object. Names are flat.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\\x00")
}
