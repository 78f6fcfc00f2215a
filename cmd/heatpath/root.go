package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatpath/config"
	"github.com/katalvlaran/heatpath/solver"
)

// rootFlags holds command-line overrides of the configuration file.
type rootFlags struct {
	configPath string
	workers    int
	logLevel   string
	logFormat  string
	showPath   bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "heatpath [file...]",
		Short: "Find the least heat loss route through a digit grid",
		Long: `Find the least heat loss route from the top-left to the bottom-right
cell of a digit grid, where entering a cell loses that much heat and the
crucible is limited in how far it may travel in a straight line.

Each input is solved once per configured variant (by default part1 with
1 to 3 moves in a row and part2 with 4 to 10). With no file the grid is
read from standard input.

Examples:
  heatpath input.txt
  heatpath --path < input.txt
  heatpath --config heatpath.yaml --workers 8 day17/*.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger, err := newLogger(stderr, cfg.Log)
			if err != nil {
				return err
			}
			s, err := solver.New(cfg, logger)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var reports []solver.Report
			if len(args) == 0 {
				rep, err := s.Solve(ctx, "<stdin>", stdin)
				if err != nil {
					return err
				}
				reports = []solver.Report{rep}
			} else {
				if reports, err = s.SolveFiles(ctx, args); err != nil {
					return err
				}
			}

			return writeReports(stdout, reports, len(args) > 1, flags.showPath)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file (defaults apply when omitted)")
	f.IntVarP(&flags.workers, "workers", "w", 0, "inputs solved concurrently (overrides config)")
	f.StringVar(&flags.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	f.StringVar(&flags.logFormat, "log-format", "", "text|json (overrides config)")
	f.BoolVarP(&flags.showPath, "path", "p", false, "draw the optimal route of every variant")

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// loadConfig reads the configuration file, if any, and applies the flags
// that were set explicitly on the command line.
func loadConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.Load(flags.configPath); err != nil {
			return config.Config{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("workers") {
		cfg.Workers = flags.workers
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = flags.logFormat
	}
	if flags.showPath {
		cfg.Search.ReturnPath = true
	}

	return cfg, cfg.Validate()
}
