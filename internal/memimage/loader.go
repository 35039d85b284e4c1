package memimage

import (
	"fmt"
	"io"
	"os"

	"github.com/firmtools/gohexdump/internal/detector"
)

// LoadBinary reads all bytes of the reader into an image mapped at the given
// base address.
func LoadBinary(r io.Reader, base uint32) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading binary data: %w", err)
	}
	img := &Image{}
	img.add(base, data)
	return img, nil
}

// Load opens and parses an image file in the given format.
func Load(path string, format detector.Format, base uint32) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	var img *Image
	switch format {
	case detector.FormatIntelHex:
		img, err = LoadIntelHex(file)
	default:
		img, err = LoadBinary(file, base)
	}
	if err != nil {
		return nil, fmt.Errorf("loading image %s: %w", path, err)
	}
	return img, nil
}
