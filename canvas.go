package artstub

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/fogleman/gg"
	"github.com/k1LoW/errors"
	"golang.org/x/image/font/basicfont"
)

// Canvas is a fixed-size drawing surface. Its dimensions never change after
// creation and every drawing operation stays within [0,w)x[0,h).
type Canvas struct {
	dc     *gg.Context
	w      int
	h      int
	logger *slog.Logger
}

func NewCanvas(w, h int, logger *slog.Logger) (_ *Canvas, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid canvas size: %dx%d", w, h)
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Canvas{
		dc:     gg.NewContext(w, h),
		w:      w,
		h:      h,
		logger: logger,
	}, nil
}

// FillBackground floods the whole canvas with a single color.
func (c *Canvas) FillBackground(hex string) error {
	if _, err := parseHexColor(hex); err != nil {
		return errors.WithStack(err)
	}
	c.dc.SetHexColor(hex)
	c.dc.Clear()
	return nil
}

// HorizontalGradient fills the canvas with 1px vertical strips interpolated
// per channel from the left edge color to the right edge color. The strip at
// column i covers [i, i+1), so the last strip ends exactly at the canvas
// width.
func (c *Canvas) HorizontalGradient(fromHex, toHex string) error {
	from, err := parseHexColor(fromHex)
	if err != nil {
		return errors.WithStack(err)
	}
	to, err := parseHexColor(toHex)
	if err != nil {
		return errors.WithStack(err)
	}
	for i := 0; i < c.w; i++ {
		r := from.r + i*(to.r-from.r)/c.w
		g := from.g + i*(to.g-from.g)/c.w
		b := from.b + i*(to.b-from.b)/c.w
		c.dc.SetRGB255(r, g, b)
		c.dc.DrawRectangle(float64(i), 0, 1, float64(c.h))
		c.dc.Fill()
	}
	return nil
}

// StrokeEllipse outlines the ellipse inscribed in the bounding box
// (x0,y0)-(x1,y1).
func (c *Canvas) StrokeEllipse(x0, y0, x1, y1, width float64, hex string) error {
	if _, err := parseHexColor(hex); err != nil {
		return errors.WithStack(err)
	}
	c.dc.SetHexColor(hex)
	c.dc.SetLineWidth(width)
	c.dc.DrawEllipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2)
	c.dc.Stroke()
	return nil
}

// FillEllipse fills the ellipse inscribed in the bounding box (x0,y0)-(x1,y1).
func (c *Canvas) FillEllipse(x0, y0, x1, y1 float64, hex string) error {
	if _, err := parseHexColor(hex); err != nil {
		return errors.WithStack(err)
	}
	c.dc.SetHexColor(hex)
	c.dc.DrawEllipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2)
	c.dc.Fill()
	return nil
}

// StrokeLine draws a straight line from (x0,y0) to (x1,y1).
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, hex string) error {
	if _, err := parseHexColor(hex); err != nil {
		return errors.WithStack(err)
	}
	c.dc.SetHexColor(hex)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x0, y0, x1, y1)
	c.dc.Stroke()
	return nil
}

// Caption draws text centered on (x,y). Font loading problems are not fatal:
// the built-in bitmap face is used instead and the miss is logged.
func (c *Canvas) Caption(text string, x, y float64, hex, fontPath string, points float64) error {
	if _, err := parseHexColor(hex); err != nil {
		return errors.WithStack(err)
	}
	if fontPath != "" {
		if err := c.dc.LoadFontFace(fontPath, points); err != nil {
			c.logger.Warn("failed to load font face, using built-in face", slog.String("font", fontPath), slog.String("error", err.Error()))
			c.dc.SetFontFace(basicfont.Face7x13)
		}
	}
	c.dc.SetHexColor(hex)
	c.dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
	return nil
}

// Image returns the current pixel content.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

type rgbColor struct {
	r, g, b int
}

// parseHexColor accepts "#rgb" and "#rrggbb".
func parseHexColor(s string) (rgbColor, error) {
	var c rgbColor
	if len(s) == 0 || s[0] != '#' {
		return c, fmt.Errorf("invalid hex color: %q", s)
	}
	hexVal := func(b byte) (int, bool) {
		switch {
		case b >= '0' && b <= '9':
			return int(b - '0'), true
		case b >= 'a' && b <= 'f':
			return int(b-'a') + 10, true
		case b >= 'A' && b <= 'F':
			return int(b-'A') + 10, true
		}
		return 0, false
	}
	switch len(s) {
	case 4:
		vals := make([]int, 3)
		for i := 0; i < 3; i++ {
			v, ok := hexVal(s[i+1])
			if !ok {
				return c, fmt.Errorf("invalid hex color: %q", s)
			}
			vals[i] = v * 17
		}
		c.r, c.g, c.b = vals[0], vals[1], vals[2]
	case 7:
		vals := make([]int, 3)
		for i := 0; i < 3; i++ {
			hi, ok := hexVal(s[1+i*2])
			if !ok {
				return c, fmt.Errorf("invalid hex color: %q", s)
			}
			lo, ok := hexVal(s[2+i*2])
			if !ok {
				return c, fmt.Errorf("invalid hex color: %q", s)
			}
			vals[i] = hi*16 + lo
		}
		c.r, c.g, c.b = vals[0], vals[1], vals[2]
	default:
		return c, fmt.Errorf("invalid hex color: %q", s)
	}
	return c, nil
}
