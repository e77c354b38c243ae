// Command physicsdemo drives a scripted World from the command line: it is
// the external collaborator the core package stays ignorant of (§6 — no CLI
// belongs to the core itself).
package main

import (
	"fmt"
	"os"

	"github.com/BAVDE1/2d-physics/cmd/physicsdemo/scene"
	physics "github.com/BAVDE1/2d-physics"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "physicsdemo",
		Short: "Drives the 2D rigid body engine from scripted scenes",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newBenchCmd())
	return root
}

func buildWorld(name string, logger physics.Logger) (*physics.World, error) {
	build, ok := scene.Registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (known: %v)", name, scene.Names())
	}
	w := physics.NewWorld(physics.WorldConfig{
		Logger:          logger,
		OutOfBoundsFunc: scene.DefaultOutOfBounds,
	})
	build(w)
	return w, nil
}
