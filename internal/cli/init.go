package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/askelund/tjanseauktion/internal/config"
)

const sampleChoresJSON = `[
  {"desc": "Vacuum the common room", "day": "Mandag", "time": "17:00"},
  {"desc": "Take out the trash", "day": "Tirsdag", "time": "19:00"},
  {"desc": "Clean the kitchen", "day": "Onsdag", "time": "18:00"},
  {"desc": "Water the plants", "day": "Torsdag", "time": "16:00"},
  {"desc": "Mop the hallway", "day": "Fredag", "time": "15:00"}
]
`

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config and a sample chore catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.WriteDefault(config.FileName); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", config.FileName)

			cfg, err := config.Load(config.FileName)
			if err != nil {
				return err
			}
			if _, err := os.Stat(cfg.Paths.Chores); err == nil {
				return nil
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(cfg.Paths.Chores), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(cfg.Paths.Chores, []byte(sampleChoresJSON), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote sample catalog %s, replace it with your own chores\n", cfg.Paths.Chores)
			return nil
		},
	}
}
