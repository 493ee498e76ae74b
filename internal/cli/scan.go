package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/klauern/ctxaudit/internal/audit"
	"github.com/klauern/ctxaudit/internal/config"
	"github.com/klauern/ctxaudit/internal/history"
	"github.com/klauern/ctxaudit/internal/logging"
	"github.com/klauern/ctxaudit/internal/ui/tui"
)

func scanFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "json",
			Aliases: []string{"j"},
			Usage:   "Output the report in JSON format for scripting",
		},
		&cli.BoolFlag{
			Name:    "interactive",
			Aliases: []string{"i"},
			Usage:   "Browse scan findings in an interactive view",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to a policy file (default: .ctxaudit.yaml at the root)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose output (info level logging)",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug output (debug level logging, implies verbose)",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	}
}

func scanCommand() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "Scan a project's context layer and report its maturity",
		ArgsUsage: "[project root]",
		Flags:     scanFlags(),
		Action:    scanAction,
	}
}

// scanAction runs one audit. Findings live in the report text; the exit
// code is non-zero only when the invocation itself fails.
func scanAction(ctx context.Context, cmd *cli.Command) error {
	root := cmd.Args().First()
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("cannot resolve root path: %w", err)
	}
	if info, statErr := os.Stat(root); statErr != nil {
		return fmt.Errorf("cannot read project root %q: %w", root, statErr)
	} else if !info.IsDir() {
		return fmt.Errorf("project root %q is not a directory", root)
	}

	pol, err := loadPolicy(cmd, root)
	if err != nil {
		return fmt.Errorf("failed to load policy: %w", err)
	}

	// An interrupt cancels the walk but still yields a partial report.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	provider := history.Detect(ctx, root)
	logging.Info("starting scan", logging.Root(root))

	scan := audit.New(root, pol, provider)
	if err := scan.Run(ctx); err != nil {
		return err
	}

	report := audit.BuildReport(scan)

	if cmd.Bool("json") {
		return report.RenderJSON(os.Stdout)
	}

	if cmd.Bool("interactive") {
		if err := tui.RunArtifactList(report.Records); err != nil {
			logging.Warn("interactive view failed, falling back to text report", logging.Err(err))
		}
	}

	report.Render(os.Stdout)
	return nil
}

func loadPolicy(cmd *cli.Command, root string) (*config.Policy, error) {
	if path := cmd.String("config"); path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load(root)
}
