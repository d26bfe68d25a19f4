package artstub

import (
	"bytes"
	"context"
	"hash/crc32"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func renderPlaceholder(t *testing.T) *Image {
	t.Helper()
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}
	img, err := g.Generate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return img
}

// renderContrastPattern draws something structurally unrelated to the
// placeholder, for negative equivalence cases.
func renderContrastPattern(t *testing.T) *Image {
	t.Helper()
	c, err := NewCanvas(300, 300, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.FillBackground("#ffffff"); err != nil {
		t.Fatal(err)
	}
	if err := c.FillEllipse(0, 0, 150, 300, "#000000"); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.Image()); err != nil {
		t.Fatal(err)
	}
	img, err := newImageFromBuffer(&buf)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestChecksum(t *testing.T) {
	img := renderPlaceholder(t)
	want := crc32.ChecksumIEEE(img.Bytes())
	if got := img.Checksum(); got != want {
		t.Errorf("Checksum() = %08x, want %08x", got, want)
	}
	// lazily cached value stays stable
	if got := img.Checksum(); got != want {
		t.Errorf("second Checksum() = %08x, want %08x", got, want)
	}
	var nilImg *Image
	if got := nilImg.Checksum(); got != 0 {
		t.Errorf("nil Checksum() = %08x, want 0", got)
	}
}

func TestEquivalent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	img := renderPlaceholder(t)
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "placeholder-new.png")
	if err := g.Save(img, path); err != nil {
		t.Fatal(err)
	}
	saved, err := NewImageFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SaveVariants(ctx, img, path, []int{64}); err != nil {
		t.Fatal(err)
	}
	variant, err := NewImageFromFile(VariantPath(path, 64))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		a, b *Image
		want bool
	}{
		{"identical bytes", img, saved, true},
		{"scaled copy falls back to perceptual hash", img, variant, true},
		{"unrelated content", img, renderContrastPattern(t), false},
		{"nil other", img, nil, false},
		{"nil receiver", nil, img, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equivalent(tt.b); got != tt.want {
				t.Errorf("Equivalent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistanceSelf(t *testing.T) {
	img := renderPlaceholder(t)
	d, err := img.Distance(img)
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Errorf("Distance(self) = %d, want 0", d)
	}
}

func TestNewImageFromFileErrors(t *testing.T) {
	dir := t.TempDir()
	notPNG := filepath.Join(dir, "not-an-image.txt")
	if err := os.WriteFile(notPNG, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.png")},
		{"not a png", notPNG},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewImageFromFile(tt.path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
