package tailcall

import (
	"math"
	"strings"
	"testing"

	"github.com/giltho/CompCert/rtl"
	"github.com/google/go-cmp/cmp"
)

// epilogues holds code for the recognizer tests.
// Point 1 of each function is where recognition starts.
const epilogues = `
func ret() sig():int stack 0 entry 1 {
	1: return x1
}
func retnone() sig():int stack 0 entry 1 {
	1: return
}
func retother() sig():int stack 0 entry 1 {
	1: return x2
}
func nops() sig():int stack 0 entry 1 {
	1: nop -> 2
	2: nop -> 3
	3: return x1
}
func moves() sig():int stack 0 entry 1 {
	1: x2 = move(x1) -> 2
	2: nop -> 3
	3: x3 = move(x2) -> 4
	4: return x3
}
func staleread() sig():int stack 0 entry 1 {
	1: x2 = move(x1) -> 2
	2: return x1
}
func wrongmove() sig():int stack 0 entry 1 {
	1: x3 = move(x2) -> 2
	2: return x3
}
func movenone() sig():int stack 0 entry 1 {
	1: x3 = move(x2) -> 2
	2: return
}
func cycle() sig():int stack 0 entry 1 {
	1: nop -> 2
	2: nop -> 1
}
func self() sig():int stack 0 entry 1 {
	1: nop -> 1
}
func arith() sig():int stack 0 entry 1 {
	1: x2 = add[0](x1) -> 2
	2: return x2
}
func branch() sig():int stack 0 entry 1 {
	1: if eq[0](x1) -> 2, 2
	2: return x1
}
func store() sig():int stack 8 entry 1 {
	1: store int32 stack[0](), x1 -> 2
	2: return x1
}
func long() sig():int stack 0 entry 1 {
	1: nop -> 2
	2: nop -> 3
	3: nop -> 4
	4: nop -> 5
	5: return x1
}
`

func TestIsReturn(t *testing.T) {
	p := parseProgram(t, epilogues)
	tests := []struct {
		fun   string
		reg   rtl.Reg
		bound int
		want  []rtl.Point
	}{
		{fun: "ret", reg: 1, bound: 5, want: []rtl.Point{1}},
		{fun: "ret", reg: 2, bound: 5, want: nil},
		{fun: "ret", reg: 1, bound: 0, want: nil},
		{fun: "retnone", reg: 7, bound: 1, want: []rtl.Point{1}},
		{fun: "retother", reg: 1, bound: 5, want: nil},
		{fun: "nops", reg: 1, bound: 5, want: []rtl.Point{1, 2, 3}},
		{fun: "nops", reg: 1, bound: 3, want: []rtl.Point{1, 2, 3}},
		{fun: "nops", reg: 1, bound: 2, want: nil},
		{fun: "moves", reg: 1, bound: 5, want: []rtl.Point{1, 2, 3, 4}},
		{fun: "moves", reg: 2, bound: 5, want: nil},
		{fun: "staleread", reg: 1, bound: 5, want: nil},
		{fun: "wrongmove", reg: 1, bound: 5, want: nil},
		{fun: "movenone", reg: 1, bound: 5, want: nil},
		{fun: "movenone", reg: 2, bound: 5, want: []rtl.Point{1, 2}},
		{fun: "cycle", reg: 1, bound: 5, want: nil},
		{fun: "cycle", reg: 1, bound: 1000, want: nil},
		{fun: "self", reg: 1, bound: 5, want: nil},
		{fun: "arith", reg: 1, bound: 5, want: nil},
		{fun: "branch", reg: 1, bound: 5, want: nil},
		{fun: "store", reg: 1, bound: 5, want: nil},
		{fun: "long", reg: 1, bound: 5, want: []rtl.Point{1, 2, 3, 4, 5}},
		{fun: "long", reg: 1, bound: 4, want: nil},
	}
	for _, test := range tests {
		code := p.Funcs[test.fun].Code
		got := Epilogue(code, 1, test.reg, test.bound)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Epilogue(%s, 1, %s, %d)=%v, want %v", test.fun, test.reg, test.bound, got, test.want)
		}
		if ok := IsReturn(code, 1, test.reg, test.bound); ok != (test.want != nil) {
			t.Errorf("IsReturn(%s, 1, %s, %d)=%v, want %v", test.fun, test.reg, test.bound, ok, test.want != nil)
		}
	}
}

func TestIsReturnMissingInstruction(t *testing.T) {
	code := rtl.Code{nil, &rtl.Nop{Succ: 9}}
	if IsReturn(code, 1, 1, 5) {
		t.Errorf("IsReturn through a missing point is true")
	}
	if IsReturn(code, 42, 1, 5) {
		t.Errorf("IsReturn at a missing point is true")
	}
}

// A call followed by a nop that loops to itself
// is not a tail call, however large the bound.
func TestIsReturnSelfLoopHugeBound(t *testing.T) {
	p := parseProgram(t, `
		main f
		func f() sig():int stack 0 entry 1 {
			1: x1 = call f() sig():int -> 2
			2: nop -> 2
		}
	`)
	code := p.Funcs["f"].Code
	for _, bound := range []int{1 << 31, math.MaxInt} {
		if IsReturn(code, 2, 1, bound) {
			t.Errorf("IsReturn(f, 2, x1, %d)=true, want false", bound)
		}
		if pcs := Epilogue(code, 2, 1, bound); pcs != nil {
			t.Errorf("Epilogue(f, 2, x1, %d)=%v, want nil", bound, pcs)
		}
		if got := Measure(code, 2, bound); got != len(code) {
			t.Errorf("Measure(f, 2, %d)=%d, want %d", bound, got, len(code))
		}
	}
	cfg := DefaultConfig()
	cfg.Bound = 1 << 31
	got, err := Transform(p, cfg)
	if err != nil {
		t.Fatalf("Transform failed: %s", err)
	}
	if _, ok := got.Funcs["f"].Code[1].(*rtl.Call); !ok {
		t.Errorf("f:1 is %s, want the call kept", got.Funcs["f"].Code[1])
	}
}

func TestMeasure(t *testing.T) {
	p := parseProgram(t, epilogues)
	tests := []struct {
		fun   string
		pc    rtl.Point
		bound int
		want  int
	}{
		{fun: "ret", pc: 1, bound: 5, want: 0},
		{fun: "nops", pc: 1, bound: 5, want: 2},
		{fun: "nops", pc: 2, bound: 5, want: 1},
		{fun: "nops", pc: 3, bound: 5, want: 0},
		{fun: "moves", pc: 1, bound: 5, want: 3},
		{fun: "moves", pc: 1, bound: 2, want: 2},
		{fun: "arith", pc: 1, bound: 5, want: 0},
		{fun: "cycle", pc: 1, bound: 5, want: 3},
		{fun: "cycle", pc: 1, bound: 1 << 31, want: 3},
		{fun: "self", pc: 1, bound: 1, want: 1},
		{fun: "self", pc: 1, bound: 3, want: 2},
		{fun: "long", pc: 1, bound: math.MaxInt, want: 4},
		{fun: "long", pc: 1, bound: 5, want: 4},
	}
	for _, test := range tests {
		code := p.Funcs[test.fun].Code
		if got := Measure(code, test.pc, test.bound); got != test.want {
			t.Errorf("Measure(%s, %d, %d)=%d, want %d", test.fun, test.pc, test.bound, got, test.want)
		}
	}
}

// Every step along an accepted epilogue decreases the measure by one.
func TestMeasureDecreasesAlongEpilogue(t *testing.T) {
	p := parseProgram(t, epilogues)
	for _, name := range p.Names() {
		code := p.Funcs[name].Code
		for bound := 0; bound <= 6; bound++ {
			for r := rtl.Reg(1); r <= 3; r++ {
				pcs := Epilogue(code, 1, r, bound)
				for i, pc := range pcs {
					want := len(pcs) - 1 - i
					if got := Measure(code, pc, bound); got != want {
						t.Errorf("%s: Measure at step %d of epilogue %v, bound %d: got %d, want %d",
							name, i, pcs, bound, got, want)
					}
				}
			}
		}
	}
}

func parseProgram(t *testing.T, src string) *rtl.Program {
	t.Helper()
	p, err := rtl.Parse("", strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	return p
}
