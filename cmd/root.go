// Package cmd wires the CLI surface: the default interactive run and the
// doctor subcommand.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tmuxify/tmuxify/internal/cli"
	"github.com/tmuxify/tmuxify/internal/config"
	"github.com/tmuxify/tmuxify/internal/exec"
	"github.com/tmuxify/tmuxify/internal/logger"
	"github.com/tmuxify/tmuxify/internal/wizard"
	"github.com/tmuxify/tmuxify/internal/writer"
)

var (
	dryRun         bool
	force          bool
	projectFlag    string
	locationFlag   string
	sessionFlag    string
	startDirFlag   string
	nonInteractive bool
	debugMode      bool
	quietMode      bool

	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "tmuxify",
	Short: "Interactive tmuxp configuration generator",
	Long: `tmuxify generates a tmuxp session layout and a direnv activation script
for a project directory. Run it without arguments for the interactive wizard;
cd into the project afterwards to start or attach the configured tmux session.`,
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print planned files without writing anything")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "Overwrite existing files without creating backups")
	rootCmd.PersistentFlags().StringVar(&projectFlag, "project", "", "Project root directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&locationFlag, "tmuxp-location", "", "Where to store the tmuxp file: home or project")
	rootCmd.PersistentFlags().StringVar(&sessionFlag, "session", "", "Session name (default: project directory name)")
	rootCmd.PersistentFlags().StringVar(&startDirFlag, "start-dir", "", "Override start_directory in the tmuxp config")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")

	rootCmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Build the config from flags and defaults without prompting")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	defer logger.Close()
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("tmuxify %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("tmuxify %s\n", version)
}

// buildRequest resolves flag values into an absolute-path request.
func buildRequest() (config.Request, error) {
	projectDir := projectFlag
	if projectDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return config.Request{}, fmt.Errorf("failed to get current directory: %w", err)
		}
		projectDir = cwd
	}
	projectDir, err := filepath.Abs(projectDir)
	if err != nil {
		return config.Request{}, fmt.Errorf("failed to resolve project directory: %w", err)
	}

	startDir := startDirFlag
	if startDir != "" {
		startDir, err = filepath.Abs(startDir)
		if err != nil {
			return config.Request{}, fmt.Errorf("failed to resolve start directory: %w", err)
		}
	}

	return config.Request{
		ProjectDir:  projectDir,
		SessionName: sessionFlag,
		StartDir:    startDir,
		Location:    locationFlag,
	}, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req, err := buildRequest()
	if err != nil {
		return err
	}

	interactive := !nonInteractive && isatty.IsTerminal(os.Stdin.Fd())

	var cfg *config.Config
	var location config.Location
	if interactive {
		w := wizard.New(wizard.NewPrompter(), cli.FullReport, req)
		cfg, location, err = w.Run()
		if err == wizard.ErrAborted {
			fmt.Println("Aborted.")
			return nil
		}
		if err != nil {
			return err
		}
	} else {
		report := cli.FullReport()
		if err := report.Validate(); err != nil {
			return err
		}
		cfg, location, err = config.FromRequest(req)
		if err != nil {
			return err
		}
	}

	target, err := cfg.ResolveTarget(location, req.ProjectDir)
	if err != nil {
		return err
	}

	document, err := cfg.Render()
	if err != nil {
		return err
	}
	envrc := cfg.Envrc(location)

	result, err := writer.Write(target, document, envrc, writer.Options{DryRun: dryRun, Force: force})
	if err != nil {
		reportPartialWrite(result)
		return err
	}

	if dryRun {
		printDryRun(result)
		return nil
	}

	printSummary(result)
	runDirenvAllow(interactive, req.ProjectDir)
	return nil
}

// reportPartialWrite tells the user exactly which files changed before the
// failure, so nothing is silently half-applied.
func reportPartialWrite(result *writer.Result) {
	if result == nil {
		return
	}
	for _, fr := range []writer.FileResult{result.Config, result.Envrc} {
		switch {
		case fr.Written:
			fmt.Fprintf(os.Stderr, "  %s: replaced with new content\n", fr.Path)
		case fr.BackedUp:
			fmt.Fprintf(os.Stderr, "  %s: unchanged (backup at %s)\n", fr.Path, fr.BackupPath)
		default:
			fmt.Fprintf(os.Stderr, "  %s: unchanged\n", fr.Path)
		}
	}
}

func printDryRun(result *writer.Result) {
	for _, fr := range []writer.FileResult{result.Config, result.Envrc} {
		fmt.Printf("\n[DRY RUN] Would write to: %s\n", fr.Path)
		fmt.Println("---")
		fmt.Print(fr.Content)
		fmt.Println("---")
	}
}

func printSummary(result *writer.Result) {
	fmt.Println("\nFiles generated:")
	for _, fr := range []writer.FileResult{result.Config, result.Envrc} {
		if fr.BackedUp {
			fmt.Printf("  %s (previous version backed up to %s)\n", fr.Path, fr.BackupPath)
		} else {
			fmt.Printf("  %s\n", fr.Path)
		}
	}
}

// runDirenvAllow activates the new .envrc. Interactive runs ask first;
// scripted runs just do it. Failure is a warning: the files are already
// safely written.
func runDirenvAllow(interactive bool, projectDir string) {
	if interactive {
		ok, err := wizard.NewPrompter().Confirm("Run 'direnv allow' now?", true)
		if err != nil || !ok {
			fmt.Println("Skipped 'direnv allow'. Run it manually to activate the session.")
			return
		}
	}

	if err := writer.Allow(context.Background(), exec.NewRealExecutor(), projectDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	fmt.Println("\nAll done! cd into this directory to attach to your session.")
}
