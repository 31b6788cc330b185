package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/giltho/CompCert/rtl"
	"github.com/giltho/CompCert/rtl/interp"
	"github.com/giltho/CompCert/tailcall"
	"github.com/giltho/CompCert/tailcall/check"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	externals  map[string]int64
	maxSteps   int
	traceSteps bool
)

var (
	passStyle = color.New(color.FgGreen, color.Bold)
	failStyle = color.New(color.FgRed, color.Bold)
	noteStyle = color.New(color.FgYellow)
)

// checkCmd: rtltail check orig.rtl [transformed.rtl]
var checkCmd = &cobra.Command{
	Use:   "check [file] [transformed]",
	Short: "Run a program beside its transformation and compare them step by step",
	Long: `Run a program beside its transformation and compare them step by step.

With one file, the program is transformed with the current configuration.
With two files, the second is taken as the transformation of the first.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			logger.Error("Error loading config", zap.Error(err))
			return err
		}
		orig, err := rtl.ParseFile(args[0])
		if err != nil {
			logger.Error("Error parsing program", zap.String("file", args[0]), zap.Error(err))
			return err
		}
		var transformed *rtl.Program
		if len(args) == 2 {
			transformed, err = rtl.ParseFile(args[1])
		} else {
			transformed, err = tailcall.Transform(orig, cfg)
		}
		if err != nil {
			logger.Error("Error reading transformed program", zap.Error(err))
			return err
		}

		in := check.Inputs{
			Externals: make(map[string]interp.External),
			MaxSteps:  maxSteps,
		}
		for name, k := range externals {
			in.Externals[name] = constantPlusArgs(k)
		}
		if traceSteps {
			in.Trace = os.Stderr
		}
		res, err := check.Correspondence(orig, transformed, cfg, in)
		var div *check.Divergence
		switch {
		case errors.As(err, &div):
			failStyle.Print("FAIL")
			fmt.Printf(" %s\n%s\n", args[0], div)
			return err
		case err != nil:
			logger.Error("Error checking program", zap.String("file", args[0]), zap.Error(err))
			return err
		}
		logger.Debug("Checked program",
			zap.String("file", args[0]),
			zap.Int("steps", res.Steps),
			zap.Int("stutters", res.Stutters),
			zap.Int("max_stutter_run", res.MaxStutterRun),
			zap.Int("events", len(res.Events)))

		passStyle.Print("PASS")
		fmt.Printf(" %s: %d steps, %d skipped by the target", args[0], res.Steps, res.Stutters)
		switch {
		case res.SourceStuck:
			noteStyle.Print(" (source went wrong)")
		case res.Truncated:
			noteStyle.Print(" (step limit reached)")
		default:
			fmt.Printf(", result %s, target %s", res.Value, res.TargetValue)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	checkCmd.Flags().StringToInt64Var(&externals, "ext", nil,
		"External functions as name=k; each returns k plus the sum of its integer arguments")
	checkCmd.Flags().IntVar(&maxSteps, "max-steps", check.DefaultMaxSteps, "Maximum number of source steps")
	checkCmd.Flags().BoolVar(&traceSteps, "trace", false, "Print each source state")
}

// constantPlusArgs returns an external returning k
// plus the sum of its arguments, which must all be ints.
func constantPlusArgs(k int64) interp.External {
	return func(args []interp.Val) interp.Val {
		sum := interp.Int(k)
		for _, a := range args {
			x, ok := a.(interp.Int)
			if !ok {
				return interp.Undef{}
			}
			sum += x
		}
		return sum
	}
}
