package image

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ErrInvalidName is returned for file names that are not valid UTF-8. JSON
// encoding would replace the bad bytes and the server would store another name.
var ErrInvalidName = errors.New("file name is not valid utf-8")

// File is an image read from local disk.
type File struct {
	Name string
	Data []byte
}

// Load reads the whole file at path. Name is the final path segment.
func Load(path string) (File, error) {
	name := filepath.Base(path)
	if !utf8.ValidString(name) {
		return File{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	return File{Name: name, Data: data}, nil
}

func (f File) Base64() string {
	return base64.StdEncoding.EncodeToString(f.Data)
}
