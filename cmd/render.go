package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/xrandroll/internal/output"
	"github.com/mj1618/xrandroll/internal/render"
)

// RenderResult is the output of a successful render.
type RenderResult struct {
	File   string `yaml:"file"   json:"file"`
	Width  int    `yaml:"width"  json:"width"`
	Height int    `yaml:"height" json:"height"`
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the display layout as a PNG",
	Long: `Draw each enabled output as a labeled rectangle, scaled to fit the image
width. The primary output is drawn in green; mirrored outputs get an amber
outline. Edit flags preview a layout before applying it.`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addEditFlags(renderCmd)
	renderCmd.Flags().StringP("out", "o", "layout.png", "PNG file to write (- for stdout)")
	renderCmd.Flags().Int("width", render.DefaultWidth, "Image width in pixels")
}

func runRender(cmd *cobra.Command, args []string) error {
	sess, _, err := loadEditedSession(cmd)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("out")
	width, _ := cmd.Flags().GetInt("width")

	img, err := render.Layout(sess.Screen, width)
	if err != nil {
		return err
	}

	if path == "-" {
		return render.WritePNG(os.Stdout, img)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := render.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	b := img.Bounds()
	return output.Print(RenderResult{File: path, Width: b.Dx(), Height: b.Dy()})
}
