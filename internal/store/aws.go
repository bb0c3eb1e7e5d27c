package store

import (
	"bytes"
	"context"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmorgan81/imageupload/internal/log"
	"github.com/google/uuid"
	"github.com/samber/do"
	"github.com/samber/lo"
)

type S3Archiver struct {
	Client *s3.Client
	Bucket string
	Prefix string
}

func NewS3Archiver(i *do.Injector) (Archiver, error) {
	return &S3Archiver{
		Client: do.MustInvoke[*s3.Client](i),
		Bucket: do.MustInvokeNamed[string](i, "archive_bucket"),
		Prefix: do.MustInvokeNamed[string](i, "archive_prefix"),
	}, nil
}

// Archive stores the bytes under <prefix>/<uuid>/<name> so repeated uploads
// of the same name never overwrite each other.
func (a *S3Archiver) Archive(ctx context.Context, params ArchiveParams) (string, error) {
	key := path.Join(a.Prefix, uuid.NewString(), params.Name)
	metadata := lo.OmitByValues(params.Metadata, []string{""})

	log := log.FromContextOrDiscard(ctx).WithGroup("s3").With(
		"bucket", a.Bucket,
		"key", key,
		"metadata", metadata,
	)
	log.Info("archiving to s3", "size", len(params.Data))

	_, err := a.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String("application/octet-stream"),
		Body:        bytes.NewReader(params.Data),
		Metadata:    metadata,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}
