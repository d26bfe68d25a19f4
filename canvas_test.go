package artstub

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    rgbColor
		wantErr bool
	}{
		{"background color", "#17181c", rgbColor{23, 24, 28}, false},
		{"accent color", "#62f5a9", rgbColor{98, 245, 169}, false},
		{"short form", "#fff", rgbColor{255, 255, 255}, false},
		{"short form black", "#000", rgbColor{0, 0, 0}, false},
		{"uppercase", "#62F5A9", rgbColor{98, 245, 169}, false},
		{"missing hash", "62f5a9", rgbColor{}, true},
		{"too short", "#62f5a", rgbColor{}, true},
		{"too long", "#62f5a9ff", rgbColor{}, true},
		{"invalid digit", "#62g5a9", rgbColor{}, true},
		{"empty", "", rgbColor{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewCanvasInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 300},
		{"zero height", 300, 0},
		{"negative width", -1, 300},
		{"negative height", 300, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCanvas(tt.w, tt.h, nil); err == nil {
				t.Errorf("NewCanvas(%d, %d) expected error", tt.w, tt.h)
			}
		})
	}
}

func TestHorizontalGradientEndpoints(t *testing.T) {
	c, err := NewCanvas(300, 300, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.FillBackground("#17181c"); err != nil {
		t.Fatal(err)
	}
	if err := c.HorizontalGradient("#17171b", "#242428"); err != nil {
		t.Fatal(err)
	}
	img := c.Image()

	for _, y := range []int{0, 150, 299} {
		got := color.RGBAModel.Convert(img.At(0, y)).(color.RGBA)
		if got.R != 23 || got.G != 23 || got.B != 27 {
			t.Errorf("pixel (0,%d) = (%d,%d,%d), want (23,23,27)", y, got.R, got.G, got.B)
		}
	}
	// The interpolation floors, so the last column may land one step short
	// of the target color.
	for _, y := range []int{0, 150, 299} {
		got := color.RGBAModel.Convert(img.At(299, y)).(color.RGBA)
		if got.R < 35 || got.R > 36 || got.G < 35 || got.G > 36 || got.B < 39 || got.B > 40 {
			t.Errorf("pixel (299,%d) = (%d,%d,%d), want approx (36,36,40)", y, got.R, got.G, got.B)
		}
	}
}

func TestHorizontalGradientInvalidColor(t *testing.T) {
	c, err := NewCanvas(10, 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.HorizontalGradient("nope", "#242428"); err == nil {
		t.Error("expected error for invalid from color")
	}
	if err := c.HorizontalGradient("#17171b", "nope"); err == nil {
		t.Error("expected error for invalid to color")
	}
}
