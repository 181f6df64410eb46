package plot

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/willbeason/chaos-game/pkg/errors"
)

// Format is an image file format.
type Format string

const (
	FormatBMP Format = "bmp"
	FormatPNG Format = "png"
)

// ParseFormat resolves an explicit format name, falling back to the extension
// of path when name is empty.
func ParseFormat(name, path string) (Format, error) {
	if name == "" {
		name = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if name == "" {
			return FormatBMP, nil
		}
	}

	switch Format(strings.ToLower(name)) {
	case FormatBMP:
		return FormatBMP, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unsupported image format %q (want bmp or png)", name)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	}
	return errors.New(errors.ErrCodeInvalidInput, "unsupported image format %q", f)
}

// Save writes img to path, creating parent directories as needed.
func Save(path string, img image.Image, f Format) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "creating %s", dir)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "creating %s", path)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeIO, cerr, "closing %s", path)
		}
	}()

	if err := Encode(out, img, f); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encoding %s", path)
	}
	return nil
}
