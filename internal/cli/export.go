package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/askelund/tjanseauktion/internal/config"
	"github.com/askelund/tjanseauktion/internal/export"
	"github.com/askelund/tjanseauktion/internal/msglog"
	"github.com/askelund/tjanseauktion/internal/session"
)

func newExportCmd() *cobra.Command {
	var dateArg string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Re-generate the results markdown from a session snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.FileName)
			if err != nil {
				return err
			}

			date := time.Now()
			if dateArg != "" {
				date, err = time.Parse(msglog.DateFormat, dateArg)
				if err != nil {
					return fmt.Errorf("parse --date %q (want %s): %w", dateArg, msglog.DateFormat, err)
				}
			}

			store, err := session.NewStore(session.StoreConfig{Dir: cfg.Paths.LogDir, Date: date})
			if err != nil {
				return err
			}
			snap, err := store.Load()
			if err != nil {
				return err
			}
			if len(snap.Teams) == 0 {
				return fmt.Errorf("snapshot %s holds no teams", store.Path())
			}

			writer := export.Writer{Dir: ".", Date: date}
			path, err := writer.Write(snap.Teams)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateArg, "date", "", "session date to export, dd-mm-yyyy (default today)")
	return cmd
}
