/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/k1LoW/artstub"
	"github.com/k1LoW/artstub/config"
	"github.com/k1LoW/errors"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var (
	openAfter bool
	watchMode bool
	sizeList  string

	green = color.New(color.FgGreen).SprintFunc()
)

var genCmd = &cobra.Command{
	Use:   "gen [OUT_FILE]",
	Short: "generate the placeholder image",
	Long: `generate the placeholder image.

If OUT_FILE is omitted, the configured output path is used. With --open and
no OUT_FILE, the image is rendered to a temporary file and opened with the
default viewer.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := config.Load(configPath, profile)
		if err != nil {
			return err
		}
		sizes := cfg.Sizes
		if sizeList != "" {
			sizes, err = parseSizes(sizeList)
			if err != nil {
				return err
			}
		}
		out := cfg.Output
		if len(args) == 1 {
			out = args[0]
		} else if openAfter {
			out = filepath.Join(os.TempDir(), fmt.Sprintf("artstub-%s.png", uuid.New().String()))
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		run := func(ctx context.Context, cfg *config.Config) error {
			g, err := artstub.New(artstub.WithTheme(themeFromConfig(cfg)), artstub.WithLogger(logger))
			if err != nil {
				return err
			}
			img, err := g.Generate(ctx)
			if err != nil {
				return err
			}
			if err := g.Save(img, out); err != nil {
				return err
			}
			return g.SaveVariants(ctx, img, out, sizes)
		}
		if err := run(ctx, cfg); err != nil {
			return err
		}
		fi, err := os.Stat(out)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", green("✓"), artstub.CreatedLine(out))
		fmt.Printf("%s %s\n", green("✓"), artstub.SizeLine(fi.Size(), cfg.Was))
		if openAfter {
			if err := browser.OpenFile(out); err != nil {
				return err
			}
		}
		if !watchMode {
			return nil
		}
		if cfg.Loaded == "" {
			return fmt.Errorf("--watch requires a config file")
		}
		loadedPath := cfg.Loaded
		logger.Info("waiting for change")
		err = artstub.Watch(ctx, loadedPath, func(ctx context.Context) error {
			reloaded, err := config.Load(loadedPath, profile)
			if err != nil {
				return err
			}
			if err := run(ctx, reloaded); err != nil {
				return err
			}
			logger.Info("regenerated placeholder", slog.String("path", out))
			logger.Info("waiting for change")
			return nil
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().BoolVarP(&openAfter, "open", "", false, "open the generated image with the default viewer")
	genCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "watch the config file and regenerate on change")
	genCmd.Flags().StringVarP(&sizeList, "size", "s", "", "comma-separated square variant sizes (e.g. 64,128)")
}

// parseSizes parses a comma-separated size list like "64,128".
func parseSizes(s string) ([]int, error) {
	var result []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid size: %q", part)
		}
		if n <= 0 {
			return nil, fmt.Errorf("invalid size: %d", n)
		}
		result = append(result, n)
	}
	return result, nil
}

func themeFromConfig(cfg *config.Config) *artstub.Theme {
	t := artstub.DefaultTheme()
	t.Width = cfg.Width
	t.Height = cfg.Height
	t.Background = cfg.Background
	t.GradientFrom = cfg.GradientFrom
	t.GradientTo = cfg.GradientTo
	t.Accent = cfg.Accent
	t.Caption = cfg.Caption
	t.FontPath = cfg.Font
	t.Was = cfg.Was
	return t
}
