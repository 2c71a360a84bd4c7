package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"assertkit/internal/config"
	"assertkit/internal/logging"
)

var (
	configPath string
	logLevel   string
	logFile    string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "fieldvalues",
	Short: "Extract field values and render assertion failure messages",
	Long: `fieldvalues extracts values by dotted field path from YAML or JSON
documents and renders the failure messages of string assertions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

// failure is an assertion failure: its message is the command output, not a usage error.
type failure struct {
	message string
}

func (f *failure) Error() string {
	return f.message
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		red := color.New(color.FgRed).SprintFunc()

		var f *failure
		if errors.As(err, &f) {
			fmt.Fprintln(os.Stderr, red(f.message))
			return 1
		}

		fmt.Fprintln(os.Stderr, red("Error: "+err.Error()))

		return 2
	}

	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to a rotating file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(onceCmd)
}

// loadConfig reads the configuration file, applies flag overrides and sets up logging.
func loadConfig() (*config.Config, func() error, error) {
	cfg := config.Default()

	if configPath != "" {
		var err error

		cfg, err = config.LoadFile(configPath)
		if err != nil {
			return nil, nil, err
		}
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	if logFile != "" {
		cfg.Log.File = logFile
	}

	_, cleanup, err := logging.Setup(cfg.Logging(), os.Stderr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return cfg, cleanup, nil
}
