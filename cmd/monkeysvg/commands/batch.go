package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/forkmonkey/dna"
	"github.com/benoitkugler/forkmonkey/monkey"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	batchOut  string
	batchJobs int
)

// BatchCmd renders many DNA records concurrently
var BatchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "Render a set of DNA records",
	Long: `Render every DNA record given as argument into the output directory:
<name>.<format> at full size and <name>_thumb.<format> as thumbnail,
with the sizes and format of the configuration.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jobs := cfg.Jobs
		if cmd.Flags().Changed("jobs") {
			jobs = batchJobs
		}
		if err := os.MkdirAll(batchOut, 0o755); err != nil {
			return err
		}
		return renderBatch(cmd.Context(), args, batchOut, jobs, cfg)
	},
}

func init() {
	BatchCmd.Flags().StringVar(&batchOut, "out", ".", "output directory")
	BatchCmd.Flags().IntVar(&batchJobs, "jobs", 0, "number of concurrent renders (default from config, then 4)")
}

// renderBatch stops at the first failing file. Inputs whose outputs
// would collide are rejected before anything is written.
func renderBatch(ctx context.Context, files []string, outDir string, jobs int, c Config) error {
	seen := make(map[string]string, len(files))
	for _, file := range files {
		name := outputName(file)
		if other, ok := seen[name]; ok {
			return fmt.Errorf("%s and %s would both be rendered as %s.%s", other, file, name, c.Format)
		}
		seen[name] = file
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return renderFile(file, outDir, c)
		})
	}
	return g.Wait()
}

func renderFile(file, outDir string, c Config) error {
	d, err := dna.Load(file) // the error carries the path
	if err != nil {
		return err
	}
	name := outputName(file)

	full := filepath.Join(outDir, name+"."+c.Format)
	if err := writeDrawing(monkey.Render(d, c.Width, c.Height), full, c.Format, nil); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	thumb := filepath.Join(outDir, name+"_thumb."+c.Format)
	if err := writeDrawing(monkey.RenderThumbnail(d, c.ThumbnailSize), thumb, c.Format, nil); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	slog.Debug("rendered", "dna", file, "image", full, "thumbnail", thumb)
	return nil
}

// outputName is the base of the files rendered for a DNA record.
func outputName(file string) string {
	return strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
}
