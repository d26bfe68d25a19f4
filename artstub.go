package artstub

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/k1LoW/errors"
)

// Geometry of the stylized music note and caption, in coordinates of the
// stock 300x300 canvas. Scaled proportionally for other sizes.
const (
	baseSize = 300

	noteHeadX0, noteHeadY0 = 120.0, 140.0
	noteHeadX1, noteHeadY1 = 180.0, 200.0
	noteHeadStroke         = 2.0
	noteStemX              = 175.0
	noteStemY0, noteStemY1 = 150.0, 100.0
	noteStemStroke         = 3.0
	noteFlagX0, noteFlagY0 = 165.0, 95.0
	noteFlagX1, noteFlagY1 = 185.0, 115.0
	captionX, captionY     = 150.0, 230.0
)

// Generator renders placeholder artwork from a Theme. It holds only
// constants, so Generate is deterministic and safe to call repeatedly.
type Generator struct {
	theme  *Theme
	width  int
	height int
	logger *slog.Logger
}

type Option func(*Generator) error

func WithTheme(t *Theme) Option {
	return func(g *Generator) error {
		if t == nil {
			return fmt.Errorf("theme is nil")
		}
		g.theme = t
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		g.logger = logger
		return nil
	}
}

// WithSize overrides the theme canvas size.
func WithSize(w, h int) Option {
	return func(g *Generator) error {
		if w <= 0 || h <= 0 {
			return fmt.Errorf("invalid canvas size: %dx%d", w, h)
		}
		g.width = w
		g.height = h
		return nil
	}
}

// New creates a new Generator.
func New(opts ...Option) (_ *Generator, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	g := &Generator{
		theme: DefaultTheme(),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if g.width == 0 {
		g.width = g.theme.Width
	}
	if g.height == 0 {
		g.height = g.theme.Height
	}
	if g.width <= 0 || g.height <= 0 {
		return nil, fmt.Errorf("invalid canvas size: %dx%d", g.width, g.height)
	}
	for _, hex := range []string{g.theme.Background, g.theme.GradientFrom, g.theme.GradientTo, g.theme.Accent} {
		if _, err := parseHexColor(hex); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Generate renders the placeholder and returns it as an encoded PNG.
func (g *Generator) Generate(ctx context.Context) (_ *Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := g.theme
	c, err := NewCanvas(g.width, g.height, g.logger)
	if err != nil {
		return nil, err
	}
	if err := c.FillBackground(t.Background); err != nil {
		return nil, err
	}
	if err := c.HorizontalGradient(t.GradientFrom, t.GradientTo); err != nil {
		return nil, err
	}
	if err := g.drawNoteIcon(c); err != nil {
		return nil, err
	}
	sx := float64(g.width) / baseSize
	sy := float64(g.height) / baseSize
	points := t.FontPoints * sx
	if err := c.Caption(t.Caption, captionX*sx, captionY*sy, t.Accent, t.FontPath, points); err != nil {
		return nil, err
	}
	g.logger.Debug("rendered placeholder", slog.Int("width", g.width), slog.Int("height", g.height))
	var buf bytes.Buffer
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, c.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return newImageFromBuffer(&buf)
}

func (g *Generator) drawNoteIcon(c *Canvas) error {
	sx := float64(g.width) / baseSize
	sy := float64(g.height) / baseSize
	accent := g.theme.Accent
	if err := c.StrokeEllipse(noteHeadX0*sx, noteHeadY0*sy, noteHeadX1*sx, noteHeadY1*sy, noteHeadStroke*sx, accent); err != nil {
		return err
	}
	if err := c.StrokeLine(noteStemX*sx, noteStemY0*sy, noteStemX*sx, noteStemY1*sy, noteStemStroke*sx, accent); err != nil {
		return err
	}
	return c.FillEllipse(noteFlagX0*sx, noteFlagY0*sy, noteFlagX1*sx, noteFlagY1*sy, accent)
}

// Save writes the encoded image to path, fully overwriting any existing
// file. A missing parent directory is an error; no cleanup is attempted for
// partial writes.
func (g *Generator) Save(img *Image, path string) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if img == nil {
		return fmt.Errorf("image is nil")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := f.Write(img.Bytes()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	g.logger.Debug("saved placeholder", slog.String("path", path), slog.Int("bytes", len(img.Bytes())))
	return nil
}
