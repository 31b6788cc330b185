package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/giltho/CompCert/rtl"
	"github.com/giltho/CompCert/tailcall"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outPath string
	trace   bool
	timeout time.Duration
)

const defaultTimeout = time.Minute

// transformCmd: rtltail transform file.rtl
var transformCmd = &cobra.Command{
	Use:   "transform [file]",
	Short: "Convert calls in tail position into tail calls",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			logger.Error("Error loading config", zap.Error(err))
			return err
		}
		p, err := rtl.ParseFile(args[0])
		if err != nil {
			logger.Error("Error parsing program", zap.String("file", args[0]), zap.Error(err))
			return err
		}
		if trace {
			cfg.Trace = os.Stderr
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		start := time.Now()
		tp, err := tailcall.TransformConcurrent(ctx, p, cfg)
		if err != nil {
			logger.Error("Error transforming program", zap.String("file", args[0]), zap.Error(err))
			return err
		}
		stats := tailcall.Rewritten(p, tp)
		logger.Info("Transformed program",
			zap.String("file", args[0]),
			zap.Int("functions", len(p.Funcs)),
			zap.Int("tailcalls", stats.Count()),
			zap.Stringer("rewritten", stats),
			zap.Duration("elapsed", time.Since(start)))

		return writeProgram(tp, outPath)
	},
}

func init() {
	transformCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (default standard output)")
	transformCmd.Flags().BoolVar(&trace, "trace", false, "Print a line for each call considered")
	transformCmd.Flags().DurationVar(&timeout, "timeout", defaultTimeout, "Set a timeout for the transformation")
}

func writeProgram(p *rtl.Program, path string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			logger.Error("Error creating output file", zap.Error(err))
			return err
		}
		defer f.Close()
		w = f
	}
	if _, err := fmt.Fprint(w, p); err != nil {
		logger.Error("Error writing program", zap.Error(err))
		return err
	}
	return nil
}
