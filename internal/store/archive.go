package store

import (
	"context"

	"github.com/samber/do"
)

type ArchiveParams struct {
	Name     string
	Data     []byte
	Metadata map[string]string
}

// Archiver keeps a copy of the raw bytes and returns where it put them.
type Archiver interface {
	Archive(context.Context, ArchiveParams) (string, error)
}

// NewArchiver returns an S3Archiver, or a NopArchiver when no bucket is set.
// The S3 client is only resolved in the first case.
func NewArchiver(i *do.Injector) (Archiver, error) {
	bucket := do.MustInvokeNamed[string](i, "archive_bucket")
	if bucket == "" {
		return NopArchiver{}, nil
	}
	return NewS3Archiver(i)
}

type NopArchiver struct{}

func (NopArchiver) Archive(context.Context, ArchiveParams) (string, error) {
	return "", nil
}
