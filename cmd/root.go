package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abhisek/testlens/internal/api"
	"github.com/abhisek/testlens/internal/config"
	"github.com/abhisek/testlens/internal/logger"
	"github.com/abhisek/testlens/internal/render"
	"github.com/abhisek/testlens/internal/store"
)

var (
	settings config.Config
	log      = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "testlens",
	Short: "Classify test item quality from CTT and Rasch statistics",
	Long: "testlens grades test items from their psychometric statistics, " +
		"builds the list of items that need review and keeps a history of past reports.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		cfg, err := config.Load(files...)
		if err != nil {
			return err
		}

		if v, _ := cmd.Flags().GetString("endpoint"); v != "" {
			cfg.Endpoint = v
		}
		if v, _ := cmd.Flags().GetString("token"); v != "" {
			cfg.Token = v
		}
		if v, _ := cmd.Flags().GetString("log-mode"); v != "" {
			cfg.LogMode = v
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		l, err := logger.New(cfg.LogMode)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		settings, log = cfg, l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides TESTLENS_DB env var)")
	pf.String("endpoint", "", "Analysis backend URL (overrides TESTLENS_ENDPOINT)")
	pf.String("token", "", "Bearer token for the analysis backend")
	pf.String("log-mode", "", "Log mode: dev, prod or quiet")
	pf.String("env-file", "", "Load variables from this dotenv file instead of .env")
	pf.Bool("no-color", false, "Disable coloured output")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TESTLENS_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if settings.DBPath != "" {
		return settings.DBPath, store.EnsureDir(settings.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	log.Debug("opened store", "path", dbPath)
	return s, nil
}

func newClient() (*api.Client, error) {
	if err := settings.ValidateEndpoint(); err != nil {
		return nil, err
	}
	return api.New(api.Options{
		Endpoint: settings.Endpoint,
		Token:    settings.Token,
		Timeout:  settings.Timeout,
		RetryMax: 2,
		Log:      log,
	})
}

// printer colours output only when writing to a terminal.
func printer(cmd *cobra.Command) *render.Printer {
	out := cmd.OutOrStdout()
	noColor, _ := cmd.Flags().GetBool("no-color")
	color := !noColor && os.Getenv("NO_COLOR") == ""
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		color = false
	}
	return render.NewPrinter(out, color)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "testlens", version)
	},
}
