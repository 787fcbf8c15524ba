// internal/cli/root.go
//
// Command surface: running the binary with no arguments starts the auction
// board; subcommands handle setup and after-the-fact exports.

package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/askelund/tjanseauktion/internal/auction"
	"github.com/askelund/tjanseauktion/internal/chore"
	"github.com/askelund/tjanseauktion/internal/config"
	"github.com/askelund/tjanseauktion/internal/export"
	"github.com/askelund/tjanseauktion/internal/msglog"
	"github.com/askelund/tjanseauktion/internal/session"
	"github.com/askelund/tjanseauktion/internal/team"
	"github.com/askelund/tjanseauktion/internal/tui"
)

// Execute runs the command tree.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tjanseauktion",
		Short: "Run a live chore auction from the terminal",
		Long: "tjanseauktion runs a turn-based auction where teams bid coins on household\n" +
			"chores. State is snapshotted after every action, so a session can be picked\n" +
			"up again any time on the same day.",
		SilenceUsage: true,
		RunE:         runBoard,
	}

	root.AddCommand(
		newInitCmd(),
		newExportCmd(),
		newVersionCmd(),
	)

	return root
}

func runBoard(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		return err
	}

	sess, err := buildSession(cfg, time.Now())
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.NewApp(sess), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	return nil
}

// buildSession restores today's session from its snapshot when a usable one
// exists, and otherwise generates a fresh auction queue from the catalog.
func buildSession(cfg config.Config, date time.Time) (*session.Session, error) {
	chores, err := chore.LoadCatalog(cfg.Paths.Chores)
	if err != nil {
		return nil, err
	}
	if len(chores) == 0 {
		return nil, fmt.Errorf("chore catalog %s is empty", cfg.Paths.Chores)
	}

	store, err := session.NewStore(session.StoreConfig{Dir: cfg.Paths.LogDir, Date: date})
	if err != nil {
		return nil, err
	}
	log, err := msglog.New(cfg.Paths.LogDir, date)
	if err != nil {
		return nil, err
	}

	sessCfg := session.Config{
		MinOverbidFactor: cfg.MinOverbidFactor(),
		ChoresPerTeam:    (len(chores) + cfg.Auction.Teams - 1) / cfg.Auction.Teams,
	}
	exporter := export.Writer{Dir: ".", Date: date}

	if store.Present() {
		return session.Restore(sessCfg, store, log, exporter)
	}

	teams := make([]*team.Team, cfg.Auction.Teams)
	for i := range teams {
		teams[i] = team.New(i)
	}
	queue := auction.CreateAuctions(chores, cfg.Auction.SecretAuctions, cfg.Auction.Teams)

	return session.New(teams, queue, sessCfg, store, log, exporter), nil
}
