package storage

import (
	"strings"

	"github.com/google/uuid"
)

// NewObjectKey generates a collision-free object key like
// "replays/3f1c....hlt". The extension may be given with or without
// the leading dot.
func NewObjectKey(prefix, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	key := uuid.NewString() + ext
	if prefix == "" {
		return key
	}
	return strings.TrimSuffix(prefix, "/") + "/" + key
}
