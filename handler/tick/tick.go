package tick

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/k1LoW/errors"
	"github.com/mattn/go-colorable"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	gray  = color.New(color.FgHiBlack).SprintFunc()
)

var _ slog.Handler = (*tickHandler)(nil)

// tickHandler renders watch-mode progress as short colored lines and shows a
// spinner while waiting for the next change. Records it does not recognize
// are rendered only when they are warnings or worse.
type tickHandler struct {
	handler slog.Handler
	spinner *spinner.Spinner
	stdout  io.Writer
}

func New(h slog.Handler) (_ *tickHandler, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	stdout := colorable.NewColorableStdout()
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(stdout))
	if err := s.Color("cyan"); err != nil {
		return nil, err
	}
	s.Start()
	s.Disable()
	return &tickHandler{
		handler: h,
		spinner: s,
		stdout:  stdout,
	}, nil
}

func (h *tickHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *tickHandler) Handle(ctx context.Context, r slog.Record) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	if r.Message == "waiting for change" {
		if !h.spinner.Enabled() {
			h.spinner.Enable()
		}
		return nil
	}
	if h.spinner.Enabled() {
		h.spinner.Disable()
	}
	if r.Message == "regenerated placeholder" {
		var path string
		r.Attrs(func(attr slog.Attr) bool {
			if attr.Key == "path" {
				path = attr.Value.String()
			}
			return true
		})
		return h.write(green("✓") + " regenerated " + path + "\n")
	}
	switch {
	case r.Level >= slog.LevelError:
		return h.write(red("✗") + " " + r.Message + "\n")
	case r.Level >= slog.LevelWarn:
		return h.write(gray("!") + " " + r.Message + "\n")
	}
	return nil
}

func (h *tickHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &tickHandler{handler: h.handler.WithAttrs(attrs), spinner: h.spinner, stdout: h.stdout}
}

func (h *tickHandler) WithGroup(name string) slog.Handler {
	return &tickHandler{handler: h.handler.WithGroup(name), spinner: h.spinner, stdout: h.stdout}
}

func (h *tickHandler) write(s string) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	_, err = h.stdout.Write([]byte(s))
	return err
}
