package artstub

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/k1LoW/errors"
	"github.com/nfnt/resize"
	"golang.org/x/sync/errgroup"
)

// VariantPath returns the output path for a square size variant of base,
// keeping the extension: public/img/p.png -> public/img/p@64x64.png.
func VariantPath(base string, size int) string {
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s@%dx%d%s", strings.TrimSuffix(base, ext), size, size, ext)
}

// SaveVariants scales the rendered image to each requested square size and
// writes the results next to base. Variants are written concurrently; the
// first error cancels the rest.
func (g *Generator) SaveVariants(ctx context.Context, img *Image, base string, sizes []int) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if len(sizes) == 0 {
		return nil
	}
	src, err := img.Image()
	if err != nil {
		return err
	}
	eg, ctx := errgroup.WithContext(ctx)
	for _, size := range sizes {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if size <= 0 {
				return fmt.Errorf("invalid variant size: %d", size)
			}
			scaled := resize.Resize(uint(size), uint(size), src, resize.Lanczos3)
			var buf bytes.Buffer
			enc := &png.Encoder{CompressionLevel: png.BestCompression}
			if err := enc.Encode(&buf, scaled); err != nil {
				return fmt.Errorf("failed to encode %dx%d variant: %w", size, size, err)
			}
			v, err := newImageFromBuffer(&buf)
			if err != nil {
				return err
			}
			path := VariantPath(base, size)
			if err := g.Save(v, path); err != nil {
				return err
			}
			g.logger.Debug("saved variant", slog.String("path", path), slog.Int("size", size))
			return nil
		})
	}
	return eg.Wait()
}
