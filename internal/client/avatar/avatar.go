// Package avatar turns a local image file into a profile picture value.
package avatar

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/socialhub/internal/common"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// MaxSize is the largest accepted image, in bytes.
const MaxSize = 5 << 20

// Default is the avatar assigned to new users and restored by a reset.
const Default = common.DefaultAvatar

var (
	ErrNotAnImage = errors.New("file is not an image")
	ErrTooLarge   = errors.New("image exceeds 5 MiB")
)

// FromFile reads path from fs and returns it as a data URI.
func FromFile(fs afero.Fs, path string) (string, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrNotAnImage, path)
	}
	if info.Size() > MaxSize {
		return "", fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, info.Size())
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return FromBytes(data)
}

// FromBytes sniffs data and encodes it as a base64 data URI.
func FromBytes(data []byte) (string, error) {
	if len(data) > MaxSize {
		return "", ErrTooLarge
	}

	mt := mimetype.Detect(data)
	kind, _, _ := strings.Cut(mt.String(), ";")
	if !strings.HasPrefix(kind, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotAnImage, kind)
	}
	return "data:" + kind + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
