// Package interp is a small-step interpreter for rtl programs.
package interp

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/giltho/CompCert/rtl"
)

// An External implements a function that is not defined by the program.
// It must be deterministic, and it must be monotone:
// less defined arguments must give a less defined result.
type External func(args []Val) Val

// An Event is an observable call of an external function.
type Event struct {
	Name   string
	Args   []Val
	Result Val
}

func (e Event) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "%s(", e.Name)
	for i, a := range e.Args {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(a.String())
	}
	fmt.Fprintf(&s, ") = %s", e.Result)
	return s.String()
}

// A Frame is a suspended caller, waiting for its callee to return.
type Frame struct {
	// Res is the register receiving the callee's result.
	Res  rtl.Reg
	Func *rtl.Function
	SP   Block
	// PC is the point at which the caller resumes.
	PC   rtl.Point
	Regs Regs
}

// A State is one of *Running, *Calling, or *ReturningTo.
// Stacks hold their innermost frame last.
type State interface {
	String() string
	stack() []Frame
}

// Running is executing the instruction at PC of Func.
type Running struct {
	Stack []Frame
	Func  *rtl.Function
	SP    Block
	PC    rtl.Point
	Regs  Regs
	Mem   *Mem
}

// Calling is about to enter the function named Callee.
type Calling struct {
	Stack  []Frame
	Callee string
	Args   []Val
	Mem    *Mem
}

// ReturningTo is returning Value to the innermost frame of Stack.
type ReturningTo struct {
	Stack []Frame
	Value Val
	Mem   *Mem
}

func (s *Running) stack() []Frame     { return s.Stack }
func (s *Calling) stack() []Frame     { return s.Stack }
func (s *ReturningTo) stack() []Frame { return s.Stack }

// Stack returns the suspended frames of a state.
func Stack(s State) []Frame { return s.stack() }

// MemOf returns the memory of a state.
func MemOf(s State) *Mem {
	switch s := s.(type) {
	case *Running:
		return s.Mem
	case *Calling:
		return s.Mem
	case *ReturningTo:
		return s.Mem
	default:
		panic(fmt.Sprintf("impossible state type %T", s))
	}
}

func (s *Running) String() string {
	return fmt.Sprintf("running %s:%d sp=b%d depth=%d regs=%s",
		s.Func.Name, s.PC, s.SP, len(s.Stack), s.Regs)
}

func (s *Calling) String() string {
	return fmt.Sprintf("calling %s%v depth=%d", s.Callee, s.Args, len(s.Stack))
}

func (s *ReturningTo) String() string {
	return fmt.Sprintf("returning %s depth=%d", s.Value, len(s.Stack))
}

// Final returns the program's result if s is a final state:
// returning with no frames left.
func Final(s State) (Val, bool) {
	r, ok := s.(*ReturningTo)
	if !ok || len(r.Stack) > 0 {
		return nil, false
	}
	return r.Value, true
}

// A StuckError is returned when a state has no successor:
// the program's behavior is undefined.
type StuckError struct {
	State State
	Msg   string
}

func (err *StuckError) Error() string {
	return fmt.Sprintf("stuck: %s: %s", err.State, err.Msg)
}

type Interp struct {
	Prog      *rtl.Program
	Externals map[string]External
	// Out receives trace output if Trace is set.
	Out   io.Writer
	Trace bool
	n     int
}

func New(p *rtl.Program) *Interp {
	return &Interp{
		Prog:      p,
		Externals: make(map[string]External),
		Out:       os.Stdout,
	}
}

// Initial returns the initial state:
// calling the main function with no arguments.
func (interp *Interp) Initial() State {
	return &Calling{Callee: interp.Prog.Main, Mem: NewMem()}
}

// Eval runs the program for at most maxSteps steps.
// It returns the program's result and the events it produced.
// If the step limit is reached, the result is nil.
func (interp *Interp) Eval(maxSteps int) (Val, []Event, error) {
	var events []Event
	s := interp.Initial()
	for i := 0; i < maxSteps; i++ {
		if v, ok := Final(s); ok {
			return v, events, nil
		}
		next, ev, err := interp.Step(s)
		if err != nil {
			return nil, events, err
		}
		if ev != nil {
			events = append(events, *ev)
		}
		s = next
	}
	if v, ok := Final(s); ok {
		return v, events, nil
	}
	return nil, events, nil
}

// Step returns the successor of a non-final state,
// and the event produced by the step, if any.
// The register file and memory of s are updated in place;
// s must not be used after Step returns.
func (interp *Interp) Step(s State) (State, *Event, error) {
	defer func() { interp.n++ }()
	if interp.Trace {
		fmt.Fprintf(interp.Out, "--- step %03d: %s\n", interp.n, s)
	}
	switch s := s.(type) {
	case *Running:
		return interp.stepRunning(s)
	case *Calling:
		return interp.stepCalling(s)
	case *ReturningTo:
		n := len(s.Stack)
		if n == 0 {
			return nil, nil, &StuckError{State: s, Msg: "final state"}
		}
		fr := s.Stack[n-1]
		fr.Regs.Set(fr.Res, s.Value)
		return &Running{
			Stack: s.Stack[:n-1:n-1],
			Func:  fr.Func,
			SP:    fr.SP,
			PC:    fr.PC,
			Regs:  fr.Regs,
			Mem:   s.Mem,
		}, nil, nil
	default:
		panic(fmt.Sprintf("impossible state type %T", s))
	}
}

func (interp *Interp) stepCalling(s *Calling) (State, *Event, error) {
	if f, ok := interp.Prog.Funcs[s.Callee]; ok {
		sp := s.Mem.Alloc(0, f.StackSize)
		regs := make(Regs)
		for i := 0; i < len(f.Params) && i < len(s.Args); i++ {
			regs.Set(f.Params[i], s.Args[i])
		}
		return &Running{Stack: s.Stack, Func: f, SP: sp, PC: f.Entry, Regs: regs, Mem: s.Mem}, nil, nil
	}
	ext, ok := interp.Externals[s.Callee]
	if !ok {
		return nil, nil, &StuckError{State: s, Msg: fmt.Sprintf("undefined function %s", s.Callee)}
	}
	res := ext(s.Args)
	if res == nil {
		res = Undef{}
	}
	ev := &Event{Name: s.Callee, Args: s.Args, Result: res}
	if interp.Trace {
		fmt.Fprintf(interp.Out, "external %s\n", ev)
	}
	return &ReturningTo{Stack: s.Stack, Value: res, Mem: s.Mem}, ev, nil
}

func (interp *Interp) stepRunning(s *Running) (State, *Event, error) {
	stuck := func(format string, args ...interface{}) (State, *Event, error) {
		return nil, nil, &StuckError{State: s, Msg: fmt.Sprintf(format, args...)}
	}
	instr := s.Func.Code.At(s.PC)
	if interp.Trace && instr != nil {
		fmt.Fprintf(interp.Out, "%s:%d: %s\n", s.Func.Name, s.PC, instr)
	}
	switch instr := instr.(type) {
	case nil:
		return stuck("no instruction at %d", s.PC)
	case *rtl.Nop:
		s.PC = instr.Succ
		return s, nil, nil
	case *rtl.Op:
		v, ok := evalOp(instr.Op, s.Regs.List(instr.Args))
		if !ok {
			return stuck("bad operation: %s", instr)
		}
		s.Regs.Set(instr.Dest, v)
		s.PC = instr.Succ
		return s, nil, nil
	case *rtl.Load:
		ptr, ok := evalAddr(instr.Addr, s.SP, s.Regs.List(instr.Args))
		if !ok {
			return stuck("bad address: %s", instr)
		}
		v, err := s.Mem.Load(instr.Chunk, ptr.Block, ptr.Ofs)
		if err != nil {
			return stuck("%s", err)
		}
		s.Regs.Set(instr.Dest, v)
		s.PC = instr.Succ
		return s, nil, nil
	case *rtl.Store:
		ptr, ok := evalAddr(instr.Addr, s.SP, s.Regs.List(instr.Args))
		if !ok {
			return stuck("bad address: %s", instr)
		}
		if err := s.Mem.Store(instr.Chunk, ptr.Block, ptr.Ofs, s.Regs.Get(instr.Src)); err != nil {
			return stuck("%s", err)
		}
		s.PC = instr.Succ
		return s, nil, nil
	case *rtl.Call:
		name, err := interp.findFunction(instr.Callee, instr.Sig, s.Regs)
		if err != nil {
			return stuck("%s", err)
		}
		fr := Frame{Res: instr.Dest, Func: s.Func, SP: s.SP, PC: instr.Succ, Regs: s.Regs}
		stack := append(s.Stack[:len(s.Stack):len(s.Stack)], fr)
		return &Calling{Stack: stack, Callee: name, Args: s.Regs.List(instr.Args), Mem: s.Mem}, nil, nil
	case *rtl.Tailcall:
		name, err := interp.findFunction(instr.Callee, instr.Sig, s.Regs)
		if err != nil {
			return stuck("%s", err)
		}
		args := s.Regs.List(instr.Args)
		if err := s.Mem.Free(s.SP); err != nil {
			return stuck("%s", err)
		}
		return &Calling{Stack: s.Stack, Callee: name, Args: args, Mem: s.Mem}, nil, nil
	case *rtl.Cond:
		b, ok := evalCond(instr.Cond, s.Regs.List(instr.Args))
		if !ok {
			return stuck("undefined condition: %s", instr)
		}
		if b {
			s.PC = instr.IfTrue
		} else {
			s.PC = instr.IfFalse
		}
		return s, nil, nil
	case *rtl.Return:
		var v Val = Undef{}
		if instr.Arg != nil {
			v = s.Regs.Get(*instr.Arg)
		}
		if err := s.Mem.Free(s.SP); err != nil {
			return stuck("%s", err)
		}
		return &ReturningTo{Stack: s.Stack, Value: v, Mem: s.Mem}, nil, nil
	default:
		panic(fmt.Sprintf("impossible instruction type %T", instr))
	}
}

func (interp *Interp) findFunction(c rtl.Callee, sig rtl.Signature, regs Regs) (string, error) {
	name := c.Symbol
	if name == "" {
		f, ok := regs.Get(c.Reg).(Func)
		if !ok {
			return "", fmt.Errorf("indirect call through non-function %s", regs.Get(c.Reg))
		}
		name = f.Name
	}
	if f, ok := interp.Prog.Funcs[name]; ok && !f.Sig.Eq(sig) {
		return "", fmt.Errorf("call of %s with signature %s, expected %s", name, sig, f.Sig)
	}
	return name, nil
}
