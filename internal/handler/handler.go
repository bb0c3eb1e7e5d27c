package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmorgan81/imageupload/internal/image"
	"github.com/dmorgan81/imageupload/internal/log"
	"github.com/dmorgan81/imageupload/internal/store"
	"github.com/samber/do"
)

var ErrMissingPath = errors.New("missing file path")

type Input struct {
	Path     string `json:"path"`
	Token    string `json:"-"`
	ParentID string `json:"parentId"`
}

func (i Input) toMetadata(name string) map[string]string {
	return map[string]string{
		"name":      name,
		"parent-id": i.ParentID,
	}
}

type Output struct {
	Status     int             `json:"status"`
	Response   json.RawMessage `json:"response"`
	ArchiveKey string          `json:"archiveKey,omitempty"`
}

type Handler struct {
	uploader store.Uploader
	archiver store.Archiver
}

func NewHandler(i *do.Injector) (*Handler, error) {
	return &Handler{
		uploader: do.MustInvoke[store.Uploader](i),
		archiver: do.MustInvoke[store.Archiver](i),
	}, nil
}

// Handle reads the image at input.Path and posts it to the files API. Nothing
// goes over the network until the file has been read, and the archive copy is
// only made once the files API has accepted the upload.
func (h *Handler) Handle(ctx context.Context, input Input) (Output, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("Handler").With("input", input)
	log.Info("handling upload")

	if input.Path == "" {
		return Output{}, ErrMissingPath
	}

	file, err := image.Load(input.Path)
	if err != nil {
		return Output{}, fmt.Errorf("reading image: %w", err)
	}
	req := store.NewImageRequest(file.Name, file.Base64(), input.ParentID)

	resp, err := h.uploader.Upload(ctx, input.Token, req)
	if err != nil {
		return Output{}, err
	}
	out := Output{Status: resp.StatusCode, Response: resp.Body}
	if out.Status < 200 || out.Status >= 300 {
		log.Warn("files api did not accept upload", "status", out.Status)
		return out, nil
	}

	// The files API already holds the file, so an archive failure must not
	// hide its response.
	key, err := h.archiver.Archive(ctx, store.ArchiveParams{
		Name:     file.Name,
		Data:     file.Data,
		Metadata: input.toMetadata(file.Name),
	})
	if err != nil {
		log.Warn("archiving image failed", "error", err)
		return out, nil
	}
	out.ArchiveKey = key
	log.Info("uploaded", "status", out.Status, "archiveKey", out.ArchiveKey)
	return out, nil
}
