package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/xlgrid/internal/app"
	"github.com/dshills/xlgrid/internal/config"
	"github.com/dshills/xlgrid/internal/renderer/backend"
)

var errNotTerminal = errors.New("stdin is not a terminal")

type rootOptions struct {
	configPath        string
	logLevel          string
	logFile           string
	noSystemClipboard bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "xlgrid [file.xlsx]",
		Short: "Edit XLSX workbooks in the terminal",
		Long: `xlgrid opens an .xlsx workbook in a keyboard-driven grid editor.
A path that does not exist starts a new workbook that is written on save.`,
		Example: `
xlgrid budget.xlsx
xlgrid --log-level debug budget.xlsx
xlgrid info budget.xlsx
`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runEditor(cmd, opts, path)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error, off)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flags.BoolVar(&opts.noSystemClipboard, "no-system-clipboard", false, "Do not mirror copies to the system clipboard")

	cmd.AddCommand(newInfoCmd())
	return cmd
}

// loadConfig reads the config layers and applies flags set on the command
// line on top.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(config.Options{Path: opts.configPath})
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if opts.noSystemClipboard {
		cfg.Clipboard.System = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runEditor(cmd *cobra.Command, opts *rootOptions, path string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, logFile, err := app.OpenLogFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer closeQuietly(logFile)
	}
	if cfg.Source != "" {
		logger.Debug("config loaded from %s", cfg.Source)
	}

	screen, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}

	application, err := app.New(app.Options{
		Config:  cfg,
		Path:    path,
		Backend: screen,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	defer closeQuietly(application)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
