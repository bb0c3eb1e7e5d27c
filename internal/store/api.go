package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/dmorgan81/imageupload/internal/log"
	"github.com/samber/do"
	"github.com/samber/lo"
)

const TokenHeader = "X-Token"

type APIUploader struct {
	Client    *http.Client
	Endpoint  string
	UserAgent string
}

func NewAPIUploader(i *do.Injector) (Uploader, error) {
	return &APIUploader{
		Client:    do.MustInvoke[*http.Client](i),
		Endpoint:  do.MustInvokeNamed[string](i, "endpoint"),
		UserAgent: userAgent(),
	}, nil
}

func userAgent() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "imageupload"
	}
	setting := lo.FindOrElse(info.Settings, debug.BuildSetting{Value: "unknown"}, func(s debug.BuildSetting) bool {
		return s.Key == "vcs.revision"
	})
	return "imageupload/" + setting.Value
}

func (u *APIUploader) Upload(ctx context.Context, token string, req FileRequest) (*Response, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("api").With(
		"endpoint", u.Endpoint,
		"name", req.Name,
		"parentId", req.ParentID,
	)
	log.Info("posting file", "encodedSize", len(req.Data), "tokenLength", len(token))

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(TokenHeader, token)
	if u.UserAgent != "" {
		httpReq.Header.Set("User-Agent", u.UserAgent)
	}

	resp, err := u.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("posting to %s: %w", u.Endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	log.Info("received response", "status", resp.StatusCode, "size", len(data))

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w (status %d)", ErrInvalidResponse, resp.StatusCode)
	}
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}
