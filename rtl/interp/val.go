package interp

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/giltho/CompCert/rtl"
)

// A Val is a runtime value.
type Val interface {
	String() string
	isVal()
}

// Undef is the undefined value.
// It is less defined than every other value.
type Undef struct{}

type Int int32
type Long int64
type Float float64
type Func struct{ Name string }

// A Block identifies a memory block. Blocks are numbered from 1.
type Block uint32

type Ptr struct {
	Block Block
	Ofs   int64
}

func (Undef) isVal() {}
func (Int) isVal()   {}
func (Long) isVal()  {}
func (Float) isVal() {}
func (Func) isVal()  {}
func (Ptr) isVal()   {}

func (Undef) String() string   { return "undef" }
func (v Int) String() string   { return fmt.Sprintf("%d", int32(v)) }
func (v Long) String() string  { return fmt.Sprintf("%dL", int64(v)) }
func (v Float) String() string { return fmt.Sprintf("%g", float64(v)) }
func (v Func) String() string  { return "&" + v.Name }
func (v Ptr) String() string   { return fmt.Sprintf("b%d+%d", v.Block, v.Ofs) }

// Lessdef returns whether v is less defined than or equal to w.
// Undef is less defined than everything;
// any other value is related only to itself.
func Lessdef(v, w Val) bool {
	switch v := v.(type) {
	case nil, Undef:
		return true
	case Float:
		// Compare bits so that NaN is related to itself.
		w, ok := w.(Float)
		return ok && math.Float64bits(float64(v)) == math.Float64bits(float64(w))
	default:
		return v == w
	}
}

// ListLessdef is Lessdef lifted pointwise to equal-length lists.
func ListLessdef(vs, ws []Val) bool {
	if len(vs) != len(ws) {
		return false
	}
	for i := range vs {
		if !Lessdef(vs[i], ws[i]) {
			return false
		}
	}
	return true
}

// Regs is a register file. Absent registers hold Undef.
type Regs map[rtl.Reg]Val

// Get returns the value of a register.
func (rs Regs) Get(r rtl.Reg) Val {
	if v, ok := rs[r]; ok && v != nil {
		return v
	}
	return Undef{}
}

// Set sets the value of a register in place.
func (rs Regs) Set(r rtl.Reg, v Val) { rs[r] = v }

// List returns the values of a list of registers.
func (rs Regs) List(args []rtl.Reg) []Val {
	vs := make([]Val, len(args))
	for i, r := range args {
		vs[i] = rs.Get(r)
	}
	return vs
}

func (rs Regs) Clone() Regs {
	c := make(Regs, len(rs))
	for r, v := range rs {
		c[r] = v
	}
	return c
}

// RegsLessdef returns whether every register of rs
// is less defined than the same register of ws.
func RegsLessdef(rs, ws Regs) bool {
	for r, v := range rs {
		if !Lessdef(v, ws.Get(r)) {
			return false
		}
	}
	return true
}

func (rs Regs) String() string {
	regs := make([]rtl.Reg, 0, len(rs))
	for r := range rs {
		regs = append(regs, r)
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i] < regs[j] })
	var s strings.Builder
	s.WriteRune('{')
	for i, r := range regs {
		if i > 0 {
			s.WriteString(", ")
		}
		fmt.Fprintf(&s, "%s=%s", r, rs[r])
	}
	s.WriteRune('}')
	return s.String()
}
