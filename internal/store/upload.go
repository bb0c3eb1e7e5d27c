package store

import (
	"context"
	"encoding/json"
	"errors"
)

const TypeImage = "image"

// ErrInvalidResponse is returned when the files API answers with a body that
// is not JSON.
var ErrInvalidResponse = errors.New("files api returned non-json body")

// FileRequest is the JSON body of POST /files.
type FileRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	Data     string `json:"data"`
	ParentID string `json:"parentId"`
}

// NewImageRequest builds a public image request from already encoded data.
func NewImageRequest(name, data, parentID string) FileRequest {
	return FileRequest{
		Name:     name,
		Type:     TypeImage,
		IsPublic: true,
		Data:     data,
		ParentID: parentID,
	}
}

// Response is the files API answer. Body is always valid JSON.
type Response struct {
	StatusCode int
	Body       json.RawMessage
}

type Uploader interface {
	Upload(ctx context.Context, token string, req FileRequest) (*Response, error)
}
