package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/taskboard/internal/config"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Writes config.yaml to the config directory, or to --config when given.
Flags such as --backend and --data are saved into the new file.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationConfigTarget: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	if err := config.Write(path, a.cfg); err != nil {
		return err
	}
	a.logger.Info("wrote config", "path", path)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Wrote", path)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Pick a storage backend (file, sqlite, redis) in", path)
	fmt.Fprintln(out, "  2. Run: taskboard")
	return nil
}
