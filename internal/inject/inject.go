package inject

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmorgan81/imageupload/internal/config"
	"github.com/dmorgan81/imageupload/internal/handler"
	"github.com/dmorgan81/imageupload/internal/log"
	"github.com/dmorgan81/imageupload/internal/store"
	"github.com/samber/do"
)

func Setup(ctx context.Context, cfg config.Config) *do.Injector {
	log := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			log.Debug(fmt.Sprintf(format, args...))
		},
	})
	do.Provide[aws.Config](injector, func(i *do.Injector) (aws.Config, error) {
		return awsconfig.LoadDefaultConfig(ctx)
	})
	do.Provide[*s3.Client](injector, func(i *do.Injector) (*s3.Client, error) {
		return s3.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide[*http.Client](injector, func(i *do.Injector) (*http.Client, error) {
		return &http.Client{Timeout: cfg.Timeout}, nil
	})

	do.ProvideNamedValue[string](injector, "endpoint", cfg.Endpoint)
	do.ProvideNamedValue[string](injector, "archive_bucket", cfg.ArchiveBucket)
	do.ProvideNamedValue[string](injector, "archive_prefix", cfg.ArchivePrefix)

	do.Provide[store.Uploader](injector, store.NewAPIUploader)
	do.Provide[store.Archiver](injector, store.NewArchiver)

	do.Provide[*handler.Handler](injector, handler.NewHandler)

	return injector
}
