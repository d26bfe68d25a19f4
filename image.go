package artstub

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"image"
	_ "image/png"
	"io"
	"os"

	"github.com/corona10/goimagehash"
	"github.com/k1LoW/errors"
)

// Image is an encoded PNG together with lazily computed fingerprints.
type Image struct {
	i        image.Image
	b        []byte // Raw encoded data
	checksum uint32
	pHash    *goimagehash.ImageHash
}

// NewImageFromFile reads and validates an encoded PNG from disk.
func NewImageFromFile(path string) (_ *Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer f.Close()
	return newImageFromBuffer(f)
}

func newImageFromBuffer(r io.Reader) (_ *Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if format != "png" {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	return &Image{
		b: b,
	}, nil
}

func (i *Image) Bytes() []byte {
	if i == nil {
		return nil
	}
	return i.b
}

func (i *Image) Checksum() uint32 {
	if i == nil {
		return 0
	}
	if i.checksum == 0 {
		i.checksum = crc32.ChecksumIEEE(i.b)
	}
	return i.checksum
}

// Image returns the decoded pixel content, decoding it on first use.
func (i *Image) Image() (image.Image, error) {
	if i == nil {
		return nil, fmt.Errorf("image is nil")
	}
	if i.i == nil {
		img, _, err := image.Decode(bytes.NewReader(i.b))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		i.i = img
	}
	return i.i, nil
}

func (i *Image) PHash() (_ *goimagehash.ImageHash, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if i == nil {
		return nil, fmt.Errorf("image is nil")
	}
	if i.pHash == nil {
		img, err := i.Image()
		if err != nil {
			return nil, err
		}
		pHash, err := goimagehash.PerceptionHash(img)
		if err != nil {
			return nil, fmt.Errorf("failed to compute perceptual hash: %w", err)
		}
		i.pHash = pHash
	}
	return i.pHash, nil
}

// Bounds returns the pixel dimensions of the decoded image.
func (i *Image) Bounds() (width, height int, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	img, err := i.Image()
	if err != nil {
		return 0, 0, err
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}
