package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	logFile    string
	snapshot   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:          "affinelab",
		Short:        "Interactive 2D transformation demo",
		Long:         `affinelab draws a polygon and lets you translate, scale, rotate, reflect and shear it from a toolbar, animating each change.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/affinelab/config.toml)")
	flags.StringVar(&opts.logFile, "log-file", "", "write debug log to this file")
	flags.StringVar(&opts.snapshot, "snapshot", "", "render the starting scene to a PNG file and exit")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

func run(ctx context.Context, opts options) error {
	sink, closeSink, err := openLogSink(opts.logFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeSink()

	level := log.InfoLevel
	if opts.verbose {
		level = log.DebugLevel
	}
	logger := newLogger(sink, level)

	configPath, explicit := opts.configPath, opts.configPath != ""
	if !explicit {
		configPath = defaultConfigPath()
	}
	config, err := loadConfig(configPath, explicit)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "path", configPath, "frames", config.AnimationFrames, "delay", config.FrameDelay())

	m := initialModel(config, logger)

	if opts.snapshot != "" {
		if err := renderPNG(m.snapshot(), opts.snapshot); err != nil {
			return err
		}
		logger.Info("snapshot written", "path", opts.snapshot)
		return nil
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return err
	}
	logger.Debug("exit")
	return nil
}

func initialModel(config *Config, logger *log.Logger) model {
	original := config.Polygon()
	return model{
		original: original,
		current:  original.Clone(),
		mode:     ModeIdle,
		toolbar:  NewToolbar(),
		config:   config,
		logger:   logger,
	}
}
