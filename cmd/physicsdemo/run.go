package main

import (
	physics "github.com/BAVDE1/2d-physics"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var sceneName string
	var steps int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step a scripted scene live in a terminal renderer",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := physics.NewStdLogger("physicsdemo")
			w, err := buildWorld(sceneName, logger)
			if err != nil {
				return err
			}

			program := tea.NewProgram(newTUIModel(w, steps))
			_, err = program.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&sceneName, "scene", "drop", "scene to load")
	cmd.Flags().IntVar(&steps, "steps", 0, "stop automatically after N steps (0 = run until quit)")
	return cmd
}
