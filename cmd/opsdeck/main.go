package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-opsdeck/pkg/config"
	"github.com/dd0wney/cluso-opsdeck/pkg/logging"
)

var (
	flagConfig string
	flagSeed   int64
)

func main() {
	root := &cobra.Command{
		Use:   "opsdeck",
		Short: "Terminal operations dashboard with a 3D graph explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard()
		},
	}
	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to YAML config")
	root.PersistentFlags().Int64Var(&flagSeed, "seed", 42, "mock data seed")

	snapshot := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the entity graph to a file instead of the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			return runSnapshot(out)
		},
	}
	snapshot.Flags().StringP("out", "o", "graph.svg", "output file (.json, .svg or .png)")
	root.AddCommand(snapshot)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDashboard() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	m := newModel(cfg, flagSeed, logger)
	defer m.shutdown()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
