// Package check runs a program and its tail-call transformed version
// side by side, checking at every step that the two behave alike.
//
// The target may skip source steps:
// the epilogue after a call it made as a tail call,
// and the return into the caller's frame that it never pushed.
// Each such stuttering source step must decrease StateMeasure.
// All other source steps are matched by exactly one target step,
// and the two must produce the same events.
package check

import (
	"errors"
	"fmt"
	"io"

	"github.com/giltho/CompCert/rtl"
	"github.com/giltho/CompCert/rtl/interp"
	"github.com/giltho/CompCert/tailcall"
)

// DefaultMaxSteps is the number of source steps run
// when Inputs.MaxSteps is 0.
const DefaultMaxSteps = 100000

type Inputs struct {
	// Externals implement functions the programs call but do not define.
	// Both programs use the same externals.
	Externals map[string]interp.External
	// MaxSteps limits the number of source steps.
	// Reaching the limit ends the check without a divergence.
	MaxSteps int
	// Trace, if non-nil, receives a line for each source step.
	Trace io.Writer
}

type Result struct {
	// Steps is the number of source steps taken.
	Steps int
	// Stutters is the number of source steps
	// with no corresponding target step.
	Stutters int
	// MaxStutterRun is the longest run of consecutive stuttering steps.
	MaxStutterRun int
	// Events are the external calls made by the source.
	Events []interp.Event
	// Value and TargetValue are the results of the two programs.
	// They are nil unless the source returned.
	Value, TargetValue interp.Val
	// SourceStuck is set if the source program went wrong.
	// Nothing is required of the target after that.
	SourceStuck bool
	// Truncated is set if the check stopped at MaxSteps.
	Truncated bool
}

// A Divergence reports a step after which the programs no longer correspond.
type Divergence struct {
	// Step is the number of source steps taken.
	Step   int
	Reason string
	// Source and Target describe the two states.
	Source, Target string
}

func (d *Divergence) Error() string {
	return fmt.Sprintf("step %d: %s\n\tsource: %s\n\ttarget: %s", d.Step, d.Reason, d.Source, d.Target)
}

// StateMeasure returns the measure of a source state
// under the given epilogue bound.
// A stuttering step always decreases the measure,
// so the target can only fall finitely far behind.
//
// The bound must be no larger than the longest function's code
// for the measure to fit in an int; see MeasureBound.
func StateMeasure(s interp.State, bound int) int {
	depth := len(interp.Stack(s)) * (bound + 2)
	switch s := s.(type) {
	case *interp.Running:
		return depth + tailcall.Measure(s.Func.Code, s.PC, bound) + 1
	case *interp.ReturningTo:
		return depth
	default:
		return 0
	}
}

// MeasureBound returns the smallest bound
// giving p's states the same StateMeasure ordering as bound:
// bound itself, or the length of p's longest code if that is smaller.
// Measure never counts past the end of the code,
// so a larger bound only inflates the stack depth term.
func MeasureBound(p *rtl.Program, bound int) int {
	var n int
	for _, f := range p.Funcs {
		if len(f.Code) > n {
			n = len(f.Code)
		}
	}
	if bound > n {
		return n
	}
	return bound
}

type checker struct {
	bound int
	w     witness
}

// Correspondence runs orig and transformed together
// and returns a *Divergence error if they fail to correspond.
// A source program that goes wrong, or that runs for in.MaxSteps steps,
// ends the check without error.
//
// The programs are validated first;
// a malformed program is reported with an *rtl.MalformedError.
func Correspondence(orig, transformed *rtl.Program, cfg tailcall.Config, in Inputs) (Result, error) {
	if err := rtl.Validate(orig); err != nil {
		return Result{}, err
	}
	if err := rtl.Validate(transformed); err != nil {
		return Result{}, err
	}
	maxSteps := in.MaxSteps
	if maxSteps == 0 {
		maxSteps = DefaultMaxSteps
	}
	src, tgt := interp.New(orig), interp.New(transformed)
	for name, ext := range in.Externals {
		src.Externals[name] = ext
		tgt.Externals[name] = ext
	}

	c := &checker{bound: MeasureBound(orig, cfg.Bound)}
	var res Result
	s, t := src.Initial(), tgt.Initial()
	diverge := func(format string, args ...interface{}) (Result, error) {
		return res, &Divergence{
			Step:   res.Steps,
			Reason: fmt.Sprintf(format, args...),
			Source: s.String(),
			Target: t.String(),
		}
	}
	if err := c.match(s, t); err != nil {
		return diverge("initial states: %v", err)
	}

	var run, runStart int
	for {
		if v, ok := interp.Final(s); ok {
			tv, ok := interp.Final(t)
			if !ok {
				return diverge("source returned, target has not")
			}
			res.Value, res.TargetValue = v, tv
			return res, nil
		}
		if res.Steps >= maxSteps {
			res.Truncated = true
			return res, nil
		}
		if in.Trace != nil {
			fmt.Fprintf(in.Trace, "%d: %s\n", res.Steps, s)
		}

		stutter := c.stuttering(s, t)
		before := StateMeasure(s, c.bound)
		srcDepth, tgtDepth := len(interp.Stack(s)), len(interp.Stack(t))
		if stutter {
			// Step mutates s, so read the witness update first.
			c.stutterWitness(s)
		}
		next, ev, err := src.Step(s)
		if err != nil {
			var stuck *interp.StuckError
			if errors.As(err, &stuck) {
				res.SourceStuck = true
				return res, nil
			}
			return res, err
		}
		res.Steps++
		if ev != nil {
			res.Events = append(res.Events, *ev)
		}
		s = next

		if stutter {
			if ev != nil {
				return diverge("event %s on a step the target skips", ev)
			}
			after := StateMeasure(s, c.bound)
			if after >= before {
				return diverge("skipped step does not decrease the measure: %d to %d", before, after)
			}
			if run == 0 {
				runStart = before
			}
			run++
			res.Stutters++
			if run > runStart {
				return diverge("%d skipped steps from measure %d", run, runStart)
			}
			if run > res.MaxStutterRun {
				res.MaxStutterRun = run
			}
		} else {
			run = 0
			tnext, tev, err := tgt.Step(t)
			if err != nil {
				return diverge("target: %v", err)
			}
			t = tnext
			if err := matchEvents(ev, tev); err != nil {
				return diverge("%v", err)
			}
			c.matchedWitness(srcDepth, len(interp.Stack(s)), tgtDepth, len(interp.Stack(t)))
		}
		if err := c.match(s, t); err != nil {
			return diverge("%v", err)
		}
	}
}

// stuttering returns whether the next source step has no target step:
// the source is returning into a frame the target never pushed,
// or it is running an epilogue the target skipped by returning.
func (c *checker) stuttering(s, t interp.State) bool {
	switch s := s.(type) {
	case *interp.ReturningTo:
		n := len(s.Stack)
		return n > 0 && c.w.elided[n-1]
	case *interp.Running:
		_, ok := t.(*interp.ReturningTo)
		return ok
	}
	return false
}

// stutterWitness updates the witness for a stuttering step from s.
func (c *checker) stutterWitness(s interp.State) {
	switch s := s.(type) {
	case *interp.ReturningTo:
		top := s.Stack[len(s.Stack)-1]
		c.w.elided = c.w.elided[:len(c.w.elided)-1]
		c.w.expect = top.Res
	case *interp.Running:
		op, ok := s.Func.Code.At(s.PC).(*rtl.Op)
		if !ok {
			return
		}
		if src, ok := op.MoveSource(); ok && src == c.w.expect {
			c.w.expect = op.Dest
		}
	}
}

// matchedWitness updates the witness for a pair of matched steps
// from the stack depths before and after each.
func (c *checker) matchedWitness(srcBefore, srcAfter, tgtBefore, tgtAfter int) {
	switch {
	case srcAfter > srcBefore:
		// A call. The target pushed too unless it made a tail call.
		c.w.elided = append(c.w.elided, tgtAfter == tgtBefore)
	case srcAfter < srcBefore:
		c.w.elided = c.w.elided[:len(c.w.elided)-1]
	}
}
