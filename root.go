package main

import (
	"github.com/spf13/cobra"

	"github.com/datolytix/oneimage/config"
	"github.com/datolytix/oneimage/imageops"
	"github.com/datolytix/oneimage/logger"
)

var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var (
	cfg     *config.Config
	console *logger.Console
	proc    *imageops.Processor

	flagLogging  bool
	flagLogLevel string
	flagLogFile  string
	flagNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "oneimage",
	Short: "Command-line tool for image format conversion and manipulation",
	Long: `oneimage converts images between PNG, JPEG, WebP and AVIF, and can
resize, rotate, watermark and inspect them. Operations are logged to a
rotating log file; use --logging for verbose console output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setup()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagLogging, "logging", "l", false,
		"enable verbose console logging (debug level)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "",
		"log file path (empty uses "+config.DefaultLogFile+")")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false,
		"disable colored output")
}

// setup builds the shared config, console and processor. Flags win over
// ONEIMAGE_* environment overrides.
func setup() {
	cfg = config.Load()
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}

	console = logger.NewConsole(&logger.Options{
		Level:         logger.ParseLevel(cfg.LogLevel),
		Verbose:       flagLogging,
		NoColor:       flagNoColor,
		FilePath:      cfg.LogFile,
		FileMaxSizeMB: cfg.LogSizeMB,
	})
	proc = imageops.NewProcessor(cfg, console)
}
