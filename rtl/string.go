package rtl

import (
	"fmt"
	"strings"
)

func (p *Program) String() string   { return p.buildString(new(strings.Builder)).String() }
func (f *Function) String() string  { return f.buildString(new(strings.Builder)).String() }
func (s Signature) String() string  { return s.buildString(new(strings.Builder)).String() }
func (r *Nop) String() string       { return r.buildString(new(strings.Builder)).String() }
func (r *Op) String() string        { return r.buildString(new(strings.Builder)).String() }
func (r *Load) String() string      { return r.buildString(new(strings.Builder)).String() }
func (r *Store) String() string     { return r.buildString(new(strings.Builder)).String() }
func (r *Call) String() string      { return r.buildString(new(strings.Builder)).String() }
func (r *Tailcall) String() string  { return r.buildString(new(strings.Builder)).String() }
func (r *Cond) String() string      { return r.buildString(new(strings.Builder)).String() }
func (r *Return) String() string    { return r.buildString(new(strings.Builder)).String() }
func (r Reg) String() string        { return fmt.Sprintf("x%d", uint32(r)) }
func (c Callee) String() string     { return c.buildString(new(strings.Builder)).String() }
func (a Addressing) String() string { return a.buildString(new(strings.Builder)).String() }

func (p *Program) buildString(s *strings.Builder) *strings.Builder {
	if p.Main != "" {
		fmt.Fprintf(s, "main %s\n", p.Main)
	}
	for _, name := range p.Names() {
		s.WriteRune('\n')
		p.Funcs[name].buildString(s)
	}
	return s
}

func (f *Function) buildString(s *strings.Builder) *strings.Builder {
	fmt.Fprintf(s, "func %s(", f.Name)
	buildRegs(f.Params, s)
	s.WriteString(") ")
	f.Sig.buildString(s)
	fmt.Fprintf(s, " stack %d entry %d {\n", f.StackSize, f.Entry)
	for _, pc := range f.Code.Points() {
		fmt.Fprintf(s, "\t%d: ", pc)
		f.Code[pc].buildString(s)
		s.WriteRune('\n')
	}
	s.WriteString("}\n")
	return s
}

func (t Type) String() string {
	switch t {
	case Void:
		return "void"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Any:
		return "any"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func (sig Signature) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString("sig(")
	for i, t := range sig.Args {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(t.String())
	}
	if sig.Varargs {
		if len(sig.Args) > 0 {
			s.WriteString(", ")
		}
		s.WriteString("...")
	}
	s.WriteString("):")
	s.WriteString(sig.Res.String())
	return s
}

func (r *Nop) buildString(s *strings.Builder) *strings.Builder {
	fmt.Fprintf(s, "nop -> %d", r.Succ)
	return s
}

func (k OpKind) String() string {
	switch k {
	case Move:
		return "move"
	case IntConst:
		return "int"
	case LongConst:
		return "long"
	case FuncAddr:
		return "funcaddr"
	case Add, AddImm:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

func (r *Op) buildString(s *strings.Builder) *strings.Builder {
	fmt.Fprintf(s, "%s = %s", r.Dest, r.Op.Kind)
	switch r.Op.Kind {
	case IntConst, LongConst, AddImm:
		fmt.Fprintf(s, "[%d]", r.Op.Imm)
	case FuncAddr:
		fmt.Fprintf(s, "[%s]", r.Op.Symbol)
	}
	s.WriteRune('(')
	buildRegs(r.Args, s)
	fmt.Fprintf(s, ") -> %d", r.Succ)
	return s
}

func (c Chunk) String() string {
	switch c {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Any64:
		return "any64"
	default:
		return fmt.Sprintf("Chunk(%d)", int(c))
	}
}

func (a Addressing) buildString(s *strings.Builder) *strings.Builder {
	switch a.Kind {
	case Indexed:
		fmt.Fprintf(s, "indexed[%d]", a.Ofs)
	case Stack:
		fmt.Fprintf(s, "stack[%d]", a.Ofs)
	default:
		fmt.Fprintf(s, "AddrKind(%d)[%d]", int(a.Kind), a.Ofs)
	}
	return s
}

func (r *Load) buildString(s *strings.Builder) *strings.Builder {
	fmt.Fprintf(s, "%s = load %s ", r.Dest, r.Chunk)
	r.Addr.buildString(s)
	s.WriteRune('(')
	buildRegs(r.Args, s)
	fmt.Fprintf(s, ") -> %d", r.Succ)
	return s
}

func (r *Store) buildString(s *strings.Builder) *strings.Builder {
	fmt.Fprintf(s, "store %s ", r.Chunk)
	r.Addr.buildString(s)
	s.WriteRune('(')
	buildRegs(r.Args, s)
	fmt.Fprintf(s, "), %s -> %d", r.Src, r.Succ)
	return s
}

func (c Callee) buildString(s *strings.Builder) *strings.Builder {
	if c.Symbol != "" {
		s.WriteString(c.Symbol)
	} else {
		s.WriteString(c.Reg.String())
	}
	return s
}

func (r *Call) buildString(s *strings.Builder) *strings.Builder {
	fmt.Fprintf(s, "%s = call ", r.Dest)
	r.Callee.buildString(s)
	s.WriteRune('(')
	buildRegs(r.Args, s)
	s.WriteString(") ")
	r.Sig.buildString(s)
	fmt.Fprintf(s, " -> %d", r.Succ)
	return s
}

func (r *Tailcall) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString("tailcall ")
	r.Callee.buildString(s)
	s.WriteRune('(')
	buildRegs(r.Args, s)
	s.WriteString(") ")
	r.Sig.buildString(s)
	return s
}

func (c Comparison) String() string {
	switch c {
	case Eq:
		return "eq"
	case Ne:
		return "ne"
	case Lt:
		return "lt"
	case Le:
		return "le"
	case Gt:
		return "gt"
	case Ge:
		return "ge"
	default:
		return fmt.Sprintf("Comparison(%d)", int(c))
	}
}

func (r *Cond) buildString(s *strings.Builder) *strings.Builder {
	fmt.Fprintf(s, "if %s", r.Cond.Cmp)
	if r.Cond.HasImm {
		fmt.Fprintf(s, "[%d]", r.Cond.Imm)
	}
	s.WriteRune('(')
	buildRegs(r.Args, s)
	fmt.Fprintf(s, ") -> %d, %d", r.IfTrue, r.IfFalse)
	return s
}

func (r *Return) buildString(s *strings.Builder) *strings.Builder {
	s.WriteString("return")
	if r.Arg != nil {
		s.WriteRune(' ')
		s.WriteString(r.Arg.String())
	}
	return s
}

func buildRegs(rs []Reg, s *strings.Builder) {
	for i, r := range rs {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(r.String())
	}
}
