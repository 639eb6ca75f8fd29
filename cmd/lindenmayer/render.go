package main

import (
	"fmt"

	"github.com/pflow-xyz/go-lindenmayer/render"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the drawing as an SVG file",
	Example: `  # Render a built-in preset
  lindenmayer render --preset koch-snowflake --output koch.svg

  # Render an explicit system
  lindenmayer render --axiom F --rule "F -> F+F--F+F" --iterations 4 \
    --angle 60 --output out.svg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)

		p, err := resolveInputs(cmd)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			return fmt.Errorf("--output required")
		}

		sc, sequence, err := buildScene(p)
		if err != nil {
			return err
		}

		width, _ := cmd.Flags().GetFloat64("width")
		height, _ := cmd.Flags().GetFloat64("height")
		renderer := render.NewSVGRenderer(width, height)
		if err := renderer.SaveSVG(sc, output); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}

		log.Info("rendered",
			"output", output,
			"sequence", len(sequence),
			"segments", len(sc.Segments),
			"dots", len(sc.Dots),
			"polygons", len(sc.FilledPolygons))
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d segments)\n", output, len(sc.Segments))
		return nil
	},
}

func init() {
	addSystemFlags(renderCmd)
	renderCmd.Flags().String("output", "", "Output SVG file (required)")
	renderCmd.Flags().Float64("width", 800, "Canvas width in pixels")
	renderCmd.Flags().Float64("height", 600, "Canvas height in pixels")
	rootCmd.AddCommand(renderCmd)
}
