package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/hkhosravani/sleepbetter/internal/cli"
	"github.com/hkhosravani/sleepbetter/internal/constants"
	"github.com/hkhosravani/sleepbetter/internal/errors"
	"github.com/hkhosravani/sleepbetter/internal/logger"
	"github.com/hkhosravani/sleepbetter/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store path (.db for SQLite, .json for a plain file) or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use environment variables or .pgpass instead." type:"string" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init      cli.InitCmd      `cmd:"" help:"Initialize sleepbetter storage."`
	Log       cli.LogCmd       `cmd:"" help:"Log a night of sleep."`
	Add       cli.AddCmd       `cmd:"" help:"Add a night interactively."`
	Status    cli.StatusCmd    `cmd:"" help:"Show the sleep status report."`
	Recommend cli.RecommendCmd `cmd:"" help:"Show personalized recommendations."`
	Plan      cli.PlanCmd      `cmd:"" help:"Generate a recovery plan."`
	Catchup   cli.CatchupCmd   `cmd:"" help:"Fill in missing days interactively."`
	History   cli.HistoryCmd   `cmd:"" help:"Show the sleep history chart."`
	Calendar  cli.CalendarCmd  `cmd:"" help:"Show a weekly sleep calendar."`
	Profile   cli.ProfileCmd   `cmd:"" help:"View or update your sleep profile."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Backup    struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

// expandHome resolves a leading ~/ against the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Sleep debt tracker and recovery planner"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	// Select the storage backend from the config format
	var store storage.Provider
	var configDir string
	if strings.HasPrefix(CLI.Config, "postgres://") || strings.HasPrefix(CLI.Config, "postgresql://") {
		if storage.HasEmbeddedCredentials(CLI.Config) {
			fmt.Fprintf(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are NOT allowed.\n")
			fmt.Fprintf(os.Stderr, "       Use one of these secure alternatives:\n")
			fmt.Fprintf(os.Stderr, "       1. Environment:  export PGPASSWORD=...\n")
			fmt.Fprintf(os.Stderr, "       2. .pgpass file: use a connection string without a password, e.g. \"postgresql://user@host:5432/sleepbetter\"\n")
			os.Exit(1)
		}
		store = storage.NewPostgresStore(CLI.Config)
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".config", constants.AppName)
	} else {
		path := expandHome(CLI.Config)
		configDir = filepath.Dir(path)
		if strings.HasSuffix(path, ".json") {
			store = storage.NewJSONStore(path)
		} else {
			store = storage.NewSQLiteStore(path)
		}
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{Store: store}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
