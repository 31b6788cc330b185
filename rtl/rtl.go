// Package rtl defines a register transfer language:
// functions are control-flow graphs of instructions over an unbounded
// set of pseudo-registers, indexed by program point.
package rtl

import (
	"sort"
	"strings"
)

// A Point identifies an instruction within a function's Code.
// Points are small, dense integers; 0 is never a valid point.
type Point uint32

// A Reg is a pseudo-register.
type Reg uint32

type Type int

const (
	Void Type = iota
	Int
	Long
	Float
	Any
)

type Signature struct {
	Args    []Type
	Res     Type
	Varargs bool
}

// Eq returns whether two signatures are identical.
func (s Signature) Eq(o Signature) bool {
	if len(s.Args) != len(o.Args) || s.Res != o.Res || s.Varargs != o.Varargs {
		return false
	}
	for i := range s.Args {
		if s.Args[i] != o.Args[i] {
			return false
		}
	}
	return true
}

type Program struct {
	Funcs map[string]*Function
	// Main is the name of the entry function.
	Main string
}

// Names returns the names of the program's functions in sorted order.
func (p *Program) Names() []string {
	names := make([]string, 0, len(p.Funcs))
	for name := range p.Funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Function struct {
	Name   string
	Sig    Signature
	Params []Reg
	// StackSize is the size in bytes of the function's stack block.
	StackSize int64
	Entry     Point
	Code      Code
}

// Code is an arena of instructions indexed by Point.
// A nil element means there is no instruction at that point.
type Code []Instruction

// At returns the instruction at pc, or nil if there is none.
func (c Code) At(pc Point) Instruction {
	if int(pc) >= len(c) {
		return nil
	}
	return c[pc]
}

// Set stores an instruction at pc, growing the arena as needed.
func (c *Code) Set(pc Point, r Instruction) {
	for int(pc) >= len(*c) {
		*c = append(*c, nil)
	}
	(*c)[pc] = r
}

// Points returns the points that hold an instruction, in increasing order.
func (c Code) Points() []Point {
	var pcs []Point
	for pc, r := range c {
		if r != nil {
			pcs = append(pcs, Point(pc))
		}
	}
	return pcs
}

type Instruction interface {
	String() string
	// Succs returns the successor points of the instruction.
	Succs() []Point
	buildString(*strings.Builder) *strings.Builder
	shallowCopy() Instruction
}

// Clone returns a copy of r that shares no slices with it.
func Clone(r Instruction) Instruction { return r.shallowCopy() }

type Nop struct {
	Succ Point
}

func (r *Nop) Succs() []Point { return []Point{r.Succ} }

type Op struct {
	Op   Operation
	Args []Reg
	Dest Reg
	Succ Point
}

func (r *Op) Succs() []Point { return []Point{r.Succ} }

// MoveSource returns the source register
// if the instruction is a register-to-register move.
func (r *Op) MoveSource() (Reg, bool) {
	if r.Op.Kind != Move || len(r.Args) != 1 {
		return 0, false
	}
	return r.Args[0], true
}

type OpKind int

const (
	Move OpKind = iota + 1
	IntConst
	LongConst
	FuncAddr
	Add
	AddImm
	Sub
	Mul
)

type Operation struct {
	Kind OpKind
	// Imm is the constant of IntConst, LongConst, and AddImm.
	Imm int64
	// Symbol is the function named by FuncAddr.
	Symbol string
}

// Arity returns the number of register arguments of the operation.
func (o Operation) Arity() int {
	switch o.Kind {
	case IntConst, LongConst, FuncAddr:
		return 0
	case Move, AddImm:
		return 1
	case Add, Sub, Mul:
		return 2
	default:
		return -1
	}
}

type Chunk int

const (
	Int32 Chunk = iota + 1
	Int64
	Any64
)

// Size returns the number of bytes accessed by the chunk.
func (c Chunk) Size() int64 {
	if c == Int32 {
		return 4
	}
	return 8
}

type AddrKind int

const (
	// Indexed addresses Ofs bytes past the pointer in its one argument.
	Indexed AddrKind = iota + 1
	// Stack addresses Ofs bytes into the function's stack block.
	Stack
)

type Addressing struct {
	Kind AddrKind
	Ofs  int64
}

func (a Addressing) Arity() int {
	if a.Kind == Indexed {
		return 1
	}
	return 0
}

type Load struct {
	Chunk Chunk
	Addr  Addressing
	Args  []Reg
	Dest  Reg
	Succ  Point
}

func (r *Load) Succs() []Point { return []Point{r.Succ} }

type Store struct {
	Chunk Chunk
	Addr  Addressing
	Args  []Reg
	Src   Reg
	Succ  Point
}

func (r *Store) Succs() []Point { return []Point{r.Succ} }

// A Callee is either a named function or a register
// holding a function value.
type Callee struct {
	// Symbol is the called function's name.
	// If Symbol is empty, the call is indirect through Reg.
	Symbol string
	Reg    Reg
}

type Call struct {
	Sig    Signature
	Callee Callee
	Args   []Reg
	Dest   Reg
	Succ   Point
}

func (r *Call) Succs() []Point { return []Point{r.Succ} }

type Tailcall struct {
	Sig    Signature
	Callee Callee
	Args   []Reg
}

func (*Tailcall) Succs() []Point { return nil }

type Comparison int

const (
	Eq Comparison = iota + 1
	Ne
	Lt
	Le
	Gt
	Ge
)

type Condition struct {
	Cmp Comparison
	// If HasImm, the condition compares its one argument to Imm,
	// otherwise it compares its two arguments.
	HasImm bool
	Imm    int64
}

func (c Condition) Arity() int {
	if c.HasImm {
		return 1
	}
	return 2
}

type Cond struct {
	Cond    Condition
	Args    []Reg
	IfTrue  Point
	IfFalse Point
}

func (r *Cond) Succs() []Point { return []Point{r.IfTrue, r.IfFalse} }

type Return struct {
	// Arg is the returned register, or nil.
	Arg *Reg
}

func (*Return) Succs() []Point { return nil }

func (o Nop) shallowCopy() Instruction { return &o }

func (o Op) shallowCopy() Instruction {
	o.Args = copyRegs(o.Args)
	return &o
}

func (o Load) shallowCopy() Instruction {
	o.Args = copyRegs(o.Args)
	return &o
}

func (o Store) shallowCopy() Instruction {
	o.Args = copyRegs(o.Args)
	return &o
}

func (o Call) shallowCopy() Instruction {
	o.Sig.Args = copyTypes(o.Sig.Args)
	o.Args = copyRegs(o.Args)
	return &o
}

func (o Tailcall) shallowCopy() Instruction {
	o.Sig.Args = copyTypes(o.Sig.Args)
	o.Args = copyRegs(o.Args)
	return &o
}

func (o Cond) shallowCopy() Instruction {
	o.Args = copyRegs(o.Args)
	return &o
}

func (o Return) shallowCopy() Instruction {
	if o.Arg != nil {
		r := *o.Arg
		o.Arg = &r
	}
	return &o
}

func copyRegs(rs []Reg) []Reg {
	if rs == nil {
		return nil
	}
	c := make([]Reg, len(rs))
	copy(c, rs)
	return c
}

func copyTypes(ts []Type) []Type {
	if ts == nil {
		return nil
	}
	c := make([]Type, len(ts))
	copy(c, ts)
	return c
}
