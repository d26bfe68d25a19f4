package artstub

import (
	"fmt"
	"os"
	"strings"

	"github.com/k1LoW/errors"
)

// Info describes a PNG on disk.
type Info struct {
	Path     string
	Width    int
	Height   int
	Size     int64
	Checksum uint32
	PHash    string
}

// Inspect reads a PNG and collects its dimensions, byte size and
// fingerprints.
func Inspect(path string) (_ *Info, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	img, err := NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	w, h, err := img.Bounds()
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	pHash, err := img.PHash()
	if err != nil {
		return nil, err
	}
	return &Info{
		Path:     path,
		Width:    w,
		Height:   h,
		Size:     fi.Size(),
		Checksum: img.Checksum(),
		PHash:    pHash.ToString(),
	}, nil
}

func (in *Info) String() string {
	if in == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "path: %s\n", in.Path)
	fmt.Fprintf(&b, "dimensions: %dx%d\n", in.Width, in.Height)
	fmt.Fprintf(&b, "size: %.1fKB\n", float64(in.Size)/1024)
	fmt.Fprintf(&b, "checksum: %08x\n", in.Checksum)
	fmt.Fprintf(&b, "phash: %s\n", in.PHash)
	return b.String()
}
