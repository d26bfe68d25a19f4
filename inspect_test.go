package artstub

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/tenntenn/golden"
)

var update = flag.Bool("update", false, "update golden files")

func TestInfoString(t *testing.T) {
	in := &Info{
		Path:     "public/img/placeholder-new.png",
		Width:    300,
		Height:   300,
		Size:     1843,
		Checksum: 0xdeadbeef,
		PHash:    "p:c5a9938b87838180",
	}
	got := in.String()
	if *update {
		golden.Update(t, "testdata", "info", got)
		return
	}
	if diff := golden.Diff(t, "testdata", "info", got); diff != "" {
		t.Error(diff)
	}
}

func TestInspect(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "placeholder-new.png")
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}
	img, err := g.Generate(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Save(img, path); err != nil {
		t.Fatal(err)
	}
	in, err := Inspect(path)
	if err != nil {
		t.Fatal(err)
	}
	if in.Width != 300 || in.Height != 300 {
		t.Errorf("dimensions = %dx%d, want 300x300", in.Width, in.Height)
	}
	if in.Size != int64(len(img.Bytes())) {
		t.Errorf("size = %d, want %d", in.Size, len(img.Bytes()))
	}
	if in.Checksum == 0 {
		t.Error("checksum is zero")
	}
	if in.PHash == "" {
		t.Error("phash is empty")
	}
}

func TestInspectMissingFile(t *testing.T) {
	if _, err := Inspect(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error")
	}
}
