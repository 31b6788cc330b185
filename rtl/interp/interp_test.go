package interp

import (
	"errors"
	"strings"
	"testing"

	"github.com/giltho/CompCert/rtl"
	"github.com/google/go-cmp/cmp"
)

func TestEval(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		want   Val
		events []Event
	}{
		{
			name: "constant",
			src: `func main() sig():int stack 0 entry 1 {
				1: x1 = int[42]() -> 2
				2: return x1
			}`,
			want: Int(42),
		},
		{
			name: "return nothing",
			src: `func main() sig():void stack 0 entry 1 {
				1: return
			}`,
			want: Undef{},
		},
		{
			name: "recursion",
			src: `func fact(x1) sig(int):int stack 0 entry 1 {
				1: if le[1](x1) -> 2, 3
				2: x2 = int[1]() -> 6
				3: x3 = add[-1](x1) -> 4
				4: x4 = call fact(x3) sig(int):int -> 5
				5: x2 = mul(x1, x4) -> 6
				6: return x2
			}
			func main() sig():int stack 0 entry 1 {
				1: x1 = int[5]() -> 2
				2: x2 = call fact(x1) sig(int):int -> 3
				3: return x2
			}`,
			want: Int(120),
		},
		{
			name: "long arithmetic",
			src: `func main() sig():long stack 0 entry 1 {
				1: x1 = long[7]() -> 2
				2: x2 = long[3]() -> 3
				3: x3 = sub(x1, x2) -> 4
				4: x4 = add(x3, x3) -> 5
				5: if ne(x4, x1) -> 6, 7
				6: return x4
				7: return x1
			}`,
			want: Long(8),
		},
		{
			name: "stack memory",
			src: `func main() sig():int stack 8 entry 1 {
				1: x1 = int[7]() -> 2
				2: store int32 stack[4](), x1 -> 3
				3: x2 = load int32 stack[4]() -> 4
				4: x3 = add(x2, x1) -> 5
				5: return x3
			}`,
			want: Int(14),
		},
		{
			name: "mismatched chunks",
			src: `func main() sig():int stack 16 entry 1 {
				1: x1 = int[8]() -> 2
				2: store any64 stack[0](), x1 -> 3
				3: x2 = load int32 stack[0]() -> 4
				4: x3 = load any64 stack[0]() -> 5
				5: if eq[8](x3) -> 6, 7
				6: return x2
				7: return x1
			}`,
			want: Undef{},
		},
		{
			name: "indirect call",
			src: `func double(x1) sig(int):int stack 0 entry 1 {
				1: x2 = add(x1, x1) -> 2
				2: return x2
			}
			func main() sig():int stack 0 entry 1 {
				1: x1 = funcaddr[double]() -> 2
				2: x2 = int[21]() -> 3
				3: x3 = call x1(x2) sig(int):int -> 4
				4: return x3
			}`,
			want: Int(42),
		},
		{
			name: "tail call",
			src: `func g(x1) sig(int):int stack 0 entry 1 {
				1: x2 = add[1](x1) -> 2
				2: return x2
			}
			func f(x1) sig(int):int stack 0 entry 1 {
				1: tailcall g(x1) sig(int):int
			}
			func main() sig():int stack 0 entry 1 {
				1: x1 = int[41]() -> 2
				2: x2 = call f(x1) sig(int):int -> 3
				3: return x2
			}`,
			want: Int(42),
		},
		{
			name: "external",
			src: `func main() sig():int stack 0 entry 1 {
				1: x1 = int[2]() -> 2
				2: x2 = call ext(x1) sig(int):int -> 3
				3: x3 = call ext(x2) sig(int):int -> 4
				4: return x3
			}`,
			want: Int(11),
			events: []Event{
				{Name: "ext", Args: []Val{Int(2)}, Result: Int(5)},
				{Name: "ext", Args: []Val{Int(5)}, Result: Int(11)},
			},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			r := New(parse(t, test.src))
			r.Externals["ext"] = incDouble
			got, events, err := r.Eval(1000)
			if err != nil {
				t.Fatalf("Eval failed: %s", err)
			}
			if got != test.want {
				t.Errorf("Eval()=%v, want %v", got, test.want)
			}
			if diff := cmp.Diff(test.events, events); diff != "" {
				t.Errorf("events %v, want %v\n%s", events, test.events, diff)
			}
		})
	}
}

// incDouble returns 2x+1 of an Int, and Undef otherwise.
func incDouble(args []Val) Val {
	if len(args) != 1 {
		return Undef{}
	}
	x, ok := args[0].(Int)
	if !ok {
		return Undef{}
	}
	return 2*x + 1
}

func TestEvalStuck(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "undefined function",
			src: `func main() sig():int stack 0 entry 1 {
				1: x1 = call nowhere() sig():int -> 2
				2: return x1
			}`,
			want: "undefined function nowhere",
		},
		{
			name: "undefined condition",
			src: `func main() sig():int stack 0 entry 1 {
				1: if eq[0](x1) -> 2, 2
				2: return
			}`,
			want: "undefined condition",
		},
		{
			name: "signature mismatch",
			src: `func f(x1) sig(int):int stack 0 entry 1 {
				1: return x1
			}
			func main() sig():int stack 0 entry 1 {
				1: x1 = call f() sig():int -> 2
				2: return x1
			}`,
			want: "signature",
		},
		{
			name: "indirect call through an integer",
			src: `func main() sig():int stack 0 entry 1 {
				1: x1 = int[0]() -> 2
				2: x2 = call x1() sig():int -> 3
				3: return x2
			}`,
			want: "non-function",
		},
		{
			name: "out of bounds",
			src: `func main() sig():int stack 4 entry 1 {
				1: x1 = load int32 stack[4]() -> 2
				2: return x1
			}`,
			want: "out of bounds",
		},
		{
			name: "indexed through an integer",
			src: `func main() sig():int stack 0 entry 1 {
				1: x1 = int[0]() -> 2
				2: x2 = load int32 indexed[0](x1) -> 3
				3: return x2
			}`,
			want: "bad address",
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			r := New(parse(t, test.src))
			_, _, err := r.Eval(1000)
			var stuck *StuckError
			if !errors.As(err, &stuck) {
				t.Fatalf("Eval error %v, want a StuckError", err)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("Eval error %q, want it to contain %q", err, test.want)
			}
		})
	}
}

func TestEvalTruncated(t *testing.T) {
	r := New(parse(t, `func main() sig():int stack 0 entry 1 { 1: nop -> 1 }`))
	v, events, err := r.Eval(100)
	if v != nil || events != nil || err != nil {
		t.Errorf("Eval(100)=%v, %v, %v, want nil, nil, nil", v, events, err)
	}
}

func TestStepFrames(t *testing.T) {
	r := New(parse(t, `
		func g() sig():int stack 8 entry 1 {
			1: x1 = int[3]() -> 2
			2: return x1
		}
		func main() sig():int stack 0 entry 1 {
			1: x1 = call g() sig():int -> 2
			2: return x1
		}`))
	s := r.Initial()
	var depths []int
	var kinds []string
	for {
		if v, ok := Final(s); ok {
			if v != Int(3) {
				t.Errorf("result %v, want 3", v)
			}
			break
		}
		depths = append(depths, len(Stack(s)))
		kinds = append(kinds, strings.Fields(s.String())[0])
		next, _, err := r.Step(s)
		if err != nil {
			t.Fatalf("Step failed: %s", err)
		}
		s = next
	}
	wantKinds := []string{"calling", "running", "calling", "running", "running", "returning", "running"}
	wantDepths := []int{0, 0, 1, 1, 1, 1, 0}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Errorf("states %v, want %v", kinds, wantKinds)
	}
	if diff := cmp.Diff(wantDepths, depths); diff != "" {
		t.Errorf("depths %v, want %v", depths, wantDepths)
	}
	m := MemOf(s)
	if m.Next() != 3 || m.Live(1) || m.Live(2) {
		t.Errorf("frames not freed: next=%d live(1)=%v live(2)=%v", m.Next(), m.Live(1), m.Live(2))
	}
}

func TestTrace(t *testing.T) {
	r := New(parse(t, `func main() sig():int stack 0 entry 1 {
		1: x1 = int[1]() -> 2
		2: return x1
	}`))
	var out strings.Builder
	r.Out = &out
	r.Trace = true
	if _, _, err := r.Eval(10); err != nil {
		t.Fatalf("Eval failed: %s", err)
	}
	for _, want := range []string{"--- step 000: calling main", "main:1: x1 = int[1]() -> 2", "main:2: return x1"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("trace:\n%s\nwant it to contain %q", out.String(), want)
		}
	}
}

func parse(t *testing.T, src string) *rtl.Program {
	t.Helper()
	p, err := rtl.Parse("", strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	if err := rtl.Validate(p); err != nil {
		t.Fatalf("invalid program: %s", err)
	}
	return p
}
