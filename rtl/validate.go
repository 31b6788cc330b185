package rtl

import "fmt"

// A MalformedError reports a program that is not well formed.
type MalformedError struct {
	Func  string
	Point Point
	Msg   string
}

func (err *MalformedError) Error() string {
	switch {
	case err.Func == "":
		return err.Msg
	case err.Point == 0:
		return fmt.Sprintf("%s: %s", err.Func, err.Msg)
	default:
		return fmt.Sprintf("%s:%d: %s", err.Func, err.Point, err.Msg)
	}
}

// Validate returns a *MalformedError for the first defect found in p:
// a missing main function, a nil function, a missing entry point,
// a successor that names no instruction,
// or an instruction with the wrong number of arguments.
// Functions are checked in name order.
func Validate(p *Program) error {
	if _, ok := p.Funcs[p.Main]; !ok {
		return &MalformedError{Msg: fmt.Sprintf("main function %q is not defined", p.Main)}
	}
	for _, name := range p.Names() {
		f := p.Funcs[name]
		if f == nil {
			return &MalformedError{Func: name, Msg: "function has no definition"}
		}
		if f.Name != name {
			return &MalformedError{Func: name, Msg: fmt.Sprintf("function is named %q", f.Name)}
		}
		if err := ValidateFunction(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFunction is like Validate, but for a single function.
func ValidateFunction(f *Function) error {
	bad := func(pc Point, format string, args ...interface{}) error {
		return &MalformedError{Func: f.Name, Point: pc, Msg: fmt.Sprintf(format, args...)}
	}
	if f.StackSize < 0 {
		return bad(0, "negative stack size %d", f.StackSize)
	}
	if len(f.Params) != len(f.Sig.Args) {
		return bad(0, "%d parameters, but signature has %d arguments", len(f.Params), len(f.Sig.Args))
	}
	if f.Code.At(f.Entry) == nil {
		return bad(0, "entry point %d has no instruction", f.Entry)
	}
	for _, pc := range f.Code.Points() {
		r := f.Code[pc]
		for _, s := range r.Succs() {
			if f.Code.At(s) == nil {
				return bad(pc, "successor %d has no instruction", s)
			}
		}
		var got, want int
		switch r := r.(type) {
		case *Nop:
		case *Op:
			got, want = len(r.Args), r.Op.Arity()
			if want < 0 {
				return bad(pc, "unknown operation %d", int(r.Op.Kind))
			}
		case *Load:
			got, want = len(r.Args), r.Addr.Arity()
		case *Store:
			got, want = len(r.Args), r.Addr.Arity()
		case *Call:
			got, want = len(r.Args), len(r.Sig.Args)
			if r.Sig.Varargs && got >= want {
				want = got
			}
		case *Tailcall:
			got, want = len(r.Args), len(r.Sig.Args)
			if r.Sig.Varargs && got >= want {
				want = got
			}
		case *Cond:
			got, want = len(r.Args), r.Cond.Arity()
		case *Return:
		default:
			panic(fmt.Sprintf("impossible instruction type %T", r))
		}
		if got != want {
			return bad(pc, "%d arguments, expected %d: %s", got, want, r)
		}
	}
	return nil
}
