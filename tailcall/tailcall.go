// Package tailcall turns calls whose results are immediately returned
// into tail calls.
//
// A call in a function with no stack frame is rewritten
// when the code following the call does nothing but
// return the call's result, possibly after nops and register moves,
// and the ABI allows the callee to reuse the caller's frame.
// The code following a rewritten call is left in place;
// it is unreachable unless other instructions branch to it.
package tailcall

import (
	"bytes"
	"context"
	"fmt"

	"github.com/giltho/CompCert/rtl"
	"golang.org/x/sync/errgroup"
)

// Transform returns a copy of p with eligible calls turned into tail calls.
// p is not modified.
// A malformed program is rejected with an *rtl.MalformedError.
func Transform(p *rtl.Program, cfg Config) (*rtl.Program, error) {
	if err := prepare(p, cfg); err != nil {
		return nil, err
	}
	out := &rtl.Program{Funcs: make(map[string]*rtl.Function, len(p.Funcs)), Main: p.Main}
	for _, name := range p.Names() {
		out.Funcs[name] = TransformFunction(p.Funcs[name], cfg)
	}
	return out, nil
}

// TransformConcurrent is like Transform,
// but transforms up to cfg.Workers functions at a time.
// The result is the same as Transform's.
func TransformConcurrent(ctx context.Context, p *rtl.Program, cfg Config) (*rtl.Program, error) {
	if err := prepare(p, cfg); err != nil {
		return nil, err
	}
	names := p.Names()
	funcs := make([]*rtl.Function, len(names))
	traces := make([]bytes.Buffer, len(names))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, name := range names {
		i, f := i, p.Funcs[name]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fcfg := cfg
			if cfg.Trace != nil {
				fcfg.Trace = &traces[i]
			}
			funcs[i] = TransformFunction(f, fcfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := &rtl.Program{Funcs: make(map[string]*rtl.Function, len(names)), Main: p.Main}
	for i, name := range names {
		out.Funcs[name] = funcs[i]
		if cfg.Trace != nil {
			if _, err := traces[i].WriteTo(cfg.Trace); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func prepare(p *rtl.Program, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	return rtl.Validate(p)
}

// TransformFunction returns a copy of f with eligible calls
// turned into tail calls. f is not modified.
func TransformFunction(f *rtl.Function, cfg Config) *rtl.Function {
	out := *f
	if f.Params != nil {
		out.Params = make([]rtl.Reg, len(f.Params))
		copy(out.Params, f.Params)
	}
	if f.Sig.Args != nil {
		out.Sig.Args = make([]rtl.Type, len(f.Sig.Args))
		copy(out.Sig.Args, f.Sig.Args)
	}
	out.Code = make(rtl.Code, len(f.Code))
	for pc, r := range f.Code {
		if r == nil {
			continue
		}
		out.Code[pc] = transformInstr(f, rtl.Point(pc), r, cfg)
	}
	return &out
}

func transformInstr(f *rtl.Function, pc rtl.Point, r rtl.Instruction, cfg Config) rtl.Instruction {
	call, ok := r.(*rtl.Call)
	if !ok {
		return rtl.Clone(r)
	}
	why := ineligible(f, call, cfg)
	if cfg.Trace != nil {
		if why == "" {
			fmt.Fprintf(cfg.Trace, "%s:%d: tail call: %s\n", f.Name, pc, call)
		} else {
			fmt.Fprintf(cfg.Trace, "%s:%d: not a tail call (%s): %s\n", f.Name, pc, why, call)
		}
	}
	if why != "" {
		return rtl.Clone(r)
	}
	return rtl.Clone(&rtl.Tailcall{Sig: call.Sig, Callee: call.Callee, Args: call.Args})
}

// ineligible returns why a call cannot become a tail call,
// or the empty string if it can.
func ineligible(f *rtl.Function, call *rtl.Call, cfg Config) string {
	switch {
	case f.StackSize != 0:
		return fmt.Sprintf("stack size %d", f.StackSize)
	case !cfg.abi().TailcallSafe(call.Sig, f.Sig):
		return "signature"
	case !IsReturn(f.Code, call.Succ, call.Dest, cfg.Bound):
		return "no epilogue"
	}
	return ""
}

// Eligible returns whether the call at pc of f
// would be turned into a tail call.
func Eligible(f *rtl.Function, pc rtl.Point, cfg Config) bool {
	call, ok := f.Code.At(pc).(*rtl.Call)
	return ok && ineligible(f, call, cfg) == ""
}
