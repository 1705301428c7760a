package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/forkmonkey/dna"
	"github.com/benoitkugler/forkmonkey/monkey"
	"github.com/benoitkugler/forkmonkey/svgpdf"
	"github.com/benoitkugler/forkmonkey/svgraster"
	"github.com/benoitkugler/forkmonkey/svgscene"
	"github.com/spf13/cobra"
)

var (
	renderDNA    string
	renderOut    string
	renderFormat string
	renderWidth  int
	renderHeight int

	thumbDNA    string
	thumbOut    string
	thumbFormat string
	thumbSize   int
)

// RenderCmd renders one DNA record at full size
var RenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a monkey",
	Long: `Render the monkey described by a DNA record (YAML or JSON).
The output format is taken from --format, then from the extension of --out,
then from the configuration. Without --out, SVG and PNG are written to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := dna.Load(renderDNA)
		if err != nil {
			return err
		}
		width, height := cfg.Width, cfg.Height
		if cmd.Flags().Changed("width") {
			width = renderWidth
		}
		if cmd.Flags().Changed("height") {
			height = renderHeight
		}
		format, err := outputFormat(cmd.Flags().Changed("format"), renderFormat, renderOut)
		if err != nil {
			return err
		}
		return writeDrawing(monkey.Render(d, width, height), renderOut, format, cmd.OutOrStdout())
	},
}

// ThumbnailCmd renders one DNA record as a square thumbnail
var ThumbnailCmd = &cobra.Command{
	Use:   "thumbnail",
	Short: "Render a square monkey thumbnail",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := dna.Load(thumbDNA)
		if err != nil {
			return err
		}
		size := cfg.ThumbnailSize
		if cmd.Flags().Changed("size") {
			size = thumbSize
		}
		format, err := outputFormat(cmd.Flags().Changed("format"), thumbFormat, thumbOut)
		if err != nil {
			return err
		}
		return writeDrawing(monkey.RenderThumbnail(d, size), thumbOut, format, cmd.OutOrStdout())
	},
}

func init() {
	RenderCmd.Flags().StringVar(&renderDNA, "dna", "", "DNA record file (YAML or JSON)")
	RenderCmd.Flags().StringVar(&renderOut, "out", "", "output file (default: stdout)")
	RenderCmd.Flags().StringVar(&renderFormat, "format", "", "svg, png or pdf")
	RenderCmd.Flags().IntVar(&renderWidth, "width", 0, "canvas width (default from config, then 400)")
	RenderCmd.Flags().IntVar(&renderHeight, "height", 0, "canvas height (default from config, then 400)")
	RenderCmd.MarkFlagRequired("dna")

	ThumbnailCmd.Flags().StringVar(&thumbDNA, "dna", "", "DNA record file (YAML or JSON)")
	ThumbnailCmd.Flags().StringVar(&thumbOut, "out", "", "output file (default: stdout)")
	ThumbnailCmd.Flags().StringVar(&thumbFormat, "format", "", "svg, png or pdf")
	ThumbnailCmd.Flags().IntVar(&thumbSize, "size", 0, "thumbnail side (default from config, then 100)")
	ThumbnailCmd.MarkFlagRequired("dna")
}

func validFormat(format string) bool {
	switch format {
	case "svg", "png", "pdf":
		return true
	}
	return false
}

// outputFormat resolves the format of an output file.
func outputFormat(explicit bool, format, out string) (string, error) {
	if !explicit {
		format = strings.TrimPrefix(filepath.Ext(out), ".")
		if !validFormat(strings.ToLower(format)) {
			format = cfg.Format
		}
	}
	format = strings.ToLower(format)
	if !validFormat(format) {
		return "", fmt.Errorf("unsupported format %q", format)
	}
	return format, nil
}

var errPDFStdout = errors.New("pdf output requires --out")

// writeDrawing encodes d in the given format, to the file `out`
// or to stdout when out is empty.
func writeDrawing(d *svgscene.Drawing, out, format string, stdout io.Writer) (err error) {
	if format == "pdf" {
		if out == "" {
			return errPDFStdout
		}
		return svgpdf.RenderToFile(d, out)
	}

	w := stdout
	if out != "" {
		f, ferr := os.Create(out)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	switch format {
	case "png":
		return svgraster.EncodePNG(w, d)
	default:
		_, err = d.WriteTo(w)
		return err
	}
}
