package main

import (
	"errors"
	"os"

	"github.com/giltho/CompCert/tailcall"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "rtltail",
	Short:         "rtltail - tail call conversion for RTL programs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", tailcall.DefaultConfigFile, "Configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable development logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(transformCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadConfig returns the configuration in cfgFile,
// or the default configuration if the file does not exist.
func loadConfig() (tailcall.Config, error) {
	cfg, err := tailcall.LoadConfig(cfgFile)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("No configuration file, using defaults", zap.String("config", cfgFile))
		return tailcall.DefaultConfig(), nil
	}
	if err != nil {
		return tailcall.Config{}, err
	}
	logger.Debug("Loaded configuration",
		zap.String("config", cfgFile),
		zap.Int("bound", cfg.Bound),
		zap.Int("max_reg_args", cfg.MaxRegArgs),
		zap.Int("workers", cfg.Workers))
	return cfg, nil
}
