package check

import (
	"fmt"

	"github.com/giltho/CompCert/rtl"
	"github.com/giltho/CompCert/rtl/interp"
	"github.com/giltho/CompCert/tailcall"
)

// witness records how the source stack corresponds to the target stack.
type witness struct {
	// elided[i] is whether source frame i has no target frame:
	// it was pushed by a call that the target made as a tail call.
	elided []bool
	// expect is the register holding the value being returned
	// while the source runs an epilogue that the target skipped.
	expect rtl.Reg
}

// match returns nil if source state s corresponds to target state t.
func (c *checker) match(s, t interp.State) error {
	if len(c.w.elided) != len(interp.Stack(s)) {
		panic(fmt.Sprintf("impossible: %d witness frames for %d source frames",
			len(c.w.elided), len(interp.Stack(s))))
	}
	if err := interp.Extends(interp.MemOf(s), interp.MemOf(t)); err != nil {
		return fmt.Errorf("memory: %v", err)
	}
	if err := StackOK(s); err != nil {
		return fmt.Errorf("source frame: %v", err)
	}
	if err := StackOK(t); err != nil {
		return fmt.Errorf("target frame: %v", err)
	}
	if err := c.matchStacks(interp.Stack(s), interp.Stack(t)); err != nil {
		return err
	}
	switch s := s.(type) {
	case *interp.Running:
		switch t := t.(type) {
		case *interp.Running:
			switch {
			case s.Func.Name != t.Func.Name || s.PC != t.PC:
				return fmt.Errorf("source at %s:%d, target at %s:%d", s.Func.Name, s.PC, t.Func.Name, t.PC)
			case s.SP != t.SP:
				return fmt.Errorf("source frame b%d, target frame b%d", s.SP, t.SP)
			case !interp.RegsLessdef(s.Regs, t.Regs):
				return fmt.Errorf("registers %s not less defined than %s", s.Regs, t.Regs)
			}
			return nil
		case *interp.ReturningTo:
			// The target has returned, and the source is running
			// the epilogue that followed a call the target made as a tail call.
			switch {
			case s.Func.StackSize != 0:
				return fmt.Errorf("epilogue in %s with stack size %d", s.Func.Name, s.Func.StackSize)
			case !tailcall.IsReturn(s.Func.Code, s.PC, c.w.expect, c.bound):
				return fmt.Errorf("%s:%d is not an epilogue returning %s", s.Func.Name, s.PC, c.w.expect)
			case !interp.Lessdef(s.Regs.Get(c.w.expect), t.Value):
				return fmt.Errorf("epilogue value %s not less defined than %s", s.Regs.Get(c.w.expect), t.Value)
			}
			return nil
		}
	case *interp.Calling:
		if t, ok := t.(*interp.Calling); ok {
			switch {
			case s.Callee != t.Callee:
				return fmt.Errorf("source calling %s, target calling %s", s.Callee, t.Callee)
			case !interp.ListLessdef(s.Args, t.Args):
				return fmt.Errorf("arguments %v not less defined than %v", s.Args, t.Args)
			}
			return nil
		}
	case *interp.ReturningTo:
		if t, ok := t.(*interp.ReturningTo); ok {
			if !interp.Lessdef(s.Value, t.Value) {
				return fmt.Errorf("return value %s not less defined than %s", s.Value, t.Value)
			}
			return nil
		}
	}
	return fmt.Errorf("source %T, target %T", s, t)
}

// matchStacks returns nil if every non-elided source frame
// corresponds, in order, to a target frame, with none left over,
// and every elided frame is suspended at an epilogue
// of a function with no stack.
func (c *checker) matchStacks(ss, ts []interp.Frame) error {
	var j int
	for i, fr := range ss {
		if c.w.elided[i] {
			if fr.Func.StackSize != 0 {
				return fmt.Errorf("elided frame %d of %s has stack size %d", i, fr.Func.Name, fr.Func.StackSize)
			}
			if !tailcall.IsReturn(fr.Func.Code, fr.PC, fr.Res, c.bound) {
				return fmt.Errorf("elided frame %d resumes %s:%d, not an epilogue returning %s",
					i, fr.Func.Name, fr.PC, fr.Res)
			}
			continue
		}
		if j >= len(ts) {
			return fmt.Errorf("source frame %d (%s) has no target frame", i, fr.Func.Name)
		}
		tf := ts[j]
		j++
		switch {
		case fr.Func.Name != tf.Func.Name || fr.PC != tf.PC || fr.Res != tf.Res:
			return fmt.Errorf("source frame %d resumes %s:%d into %s, target frame resumes %s:%d into %s",
				i, fr.Func.Name, fr.PC, fr.Res, tf.Func.Name, tf.PC, tf.Res)
		case fr.SP != tf.SP:
			return fmt.Errorf("source frame %d block b%d, target block b%d", i, fr.SP, tf.SP)
		case !interp.RegsLessdef(fr.Regs, tf.Regs):
			return fmt.Errorf("source frame %d registers %s not less defined than %s", i, fr.Regs, tf.Regs)
		}
	}
	if j != len(ts) {
		return fmt.Errorf("target has %d frames, source has %d corresponding frames", len(ts), j)
	}
	return nil
}

func matchEvents(e, f *interp.Event) error {
	switch {
	case e == nil && f == nil:
		return nil
	case e == nil:
		return fmt.Errorf("target event %s, source has none", f)
	case f == nil:
		return fmt.Errorf("source event %s, target has none", e)
	case e.Name != f.Name || !interp.ListLessdef(e.Args, f.Args) || !interp.Lessdef(e.Result, f.Result):
		return fmt.Errorf("source event %s, target event %s", e, f)
	}
	return nil
}
