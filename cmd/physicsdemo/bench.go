package main

import (
	"fmt"

	physics "github.com/BAVDE1/2d-physics"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var sceneName string
	var steps int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a scene headless for N steps and plot its tracked body's height",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := physics.NewStdLogger("physicsdemo")
			w, err := buildWorld(sceneName, logger)
			if err != nil {
				return err
			}
			if len(w.Bodies) == 0 {
				return fmt.Errorf("scene %q has no bodies", sceneName)
			}

			tracked := w.Bodies[len(w.Bodies)-1]
			heights := make([]float64, 0, steps)

			for i := 0; i < steps; i++ {
				w.Step()
				heights = append(heights, tracked.Transform.Pos.Y)
			}

			plot := asciigraph.Plot(heights,
				asciigraph.Height(12),
				asciigraph.Caption(fmt.Sprintf("%s: tracked body Y over %d steps", sceneName, steps)))
			fmt.Println(plot)
			return nil
		},
	}

	cmd.Flags().StringVar(&sceneName, "scene", "drop", "scene to load")
	cmd.Flags().IntVar(&steps, "steps", 240, "number of fixed steps to run")
	return cmd
}
