package check

import (
	"errors"
	"math"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/giltho/CompCert/rtl"
	"github.com/giltho/CompCert/rtl/interp"
	"github.com/giltho/CompCert/tailcall"
	"github.com/google/go-cmp/cmp"
)

func TestCorrespondenceFiles(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "testdata", "*.rtl"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no test files")
	}
	sort.Strings(paths)
	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			t.Parallel()
			p, err := rtl.ParseFile(path)
			if err != nil {
				t.Fatal(err)
			}
			cfg := tailcall.DefaultConfig()
			tp, err := tailcall.Transform(p, cfg)
			if err != nil {
				t.Fatalf("Transform failed: %s", err)
			}
			res, err := Correspondence(p, tp, cfg, Inputs{Externals: externals})
			if err != nil {
				t.Fatalf("Correspondence failed: %s", err)
			}
			if res.SourceStuck || res.Truncated || res.Value == nil {
				t.Fatalf("got %+v, want a returning run", res)
			}
			if !interp.Lessdef(res.Value, res.TargetValue) {
				t.Errorf("target value %s, source value %s", res.TargetValue, res.Value)
			}
			if n := tailcall.Rewritten(p, tp).Count(); n > 0 && res.Stutters == 0 {
				t.Errorf("%d tail calls, but no skipped steps", n)
			}

			// A program always corresponds to itself without skipping steps.
			res, err = Correspondence(p, p, cfg, Inputs{Externals: externals})
			if err != nil {
				t.Fatalf("Correspondence with itself failed: %s", err)
			}
			if res.Stutters != 0 {
				t.Errorf("Correspondence with itself skipped %d steps", res.Stutters)
			}
		})
	}
}

var externals = map[string]interp.External{
	"ext": func(args []interp.Val) interp.Val {
		if len(args) != 1 {
			return interp.Undef{}
		}
		x, ok := args[0].(interp.Int)
		if !ok {
			return interp.Undef{}
		}
		return 2*x + 1
	},
}

const scenario = `
func g(x1) sig(int):int stack 0 entry 1 {
	1: x2 = add[1](x1) -> 2
	2: return x2
}
func f(x1) sig(int):int stack 0 entry 1 {
	1: x2 = call g(x1) sig(int):int -> 2
	2: return x2
}
func main() sig():int stack 0 entry 1 {
	1: x1 = int[41]() -> 2
	2: x2 = call f(x1) sig(int):int -> 3
	3: return x2
}
`

func TestScenario(t *testing.T) {
	p := parse(t, scenario)
	cfg := tailcall.DefaultConfig()
	tp, err := tailcall.Transform(p, cfg)
	if err != nil {
		t.Fatalf("Transform failed: %s", err)
	}
	if _, ok := tp.Funcs["f"].Code.At(1).(*rtl.Tailcall); !ok {
		t.Fatalf("f:1 is %s, want a tail call", tp.Funcs["f"].Code.At(1))
	}
	var trace strings.Builder
	got, err := Correspondence(p, tp, cfg, Inputs{Trace: &trace})
	if err != nil {
		t.Fatalf("Correspondence failed: %s", err)
	}
	want := Result{
		Steps:         12,
		Stutters:      4,
		MaxStutterRun: 4,
		Value:         interp.Int(42),
		TargetValue:   interp.Int(42),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Correspondence=%+v, want %+v\n%s", got, want, diff)
	}
	if n := strings.Count(trace.String(), "\n"); n != 12 {
		t.Errorf("trace has %d lines, want 12:\n%s", n, trace.String())
	}
}

// A frame with a stack block keeps its calls.
func TestScenarioStackFrame(t *testing.T) {
	p := parse(t, strings.Replace(scenario,
		"func f(x1) sig(int):int stack 0", "func f(x1) sig(int):int stack 8", 1))
	cfg := tailcall.DefaultConfig()
	tp, err := tailcall.Transform(p, cfg)
	if err != nil {
		t.Fatalf("Transform failed: %s", err)
	}
	if _, ok := tp.Funcs["f"].Code.At(1).(*rtl.Call); !ok {
		t.Fatalf("f:1 is %s, want a call", tp.Funcs["f"].Code.At(1))
	}
	got, err := Correspondence(p, tp, cfg, Inputs{})
	if err != nil {
		t.Fatalf("Correspondence failed: %s", err)
	}
	if got.Value != interp.Int(42) {
		t.Errorf("value %v, want 42", got.Value)
	}
}

// f calls g, then passes through a nop to return g's result.
const nopScenario = `
main f

func g() sig():int stack 0 entry 1 {
	1: x1 = int[42]() -> 2
	2: return x1
}
func f() sig():int stack 0 entry 1 {
	1: x1 = call g() sig():int -> 2
	2: nop -> 3
	3: return x1
}
`

func TestNopScenario(t *testing.T) {
	p := parse(t, nopScenario)
	cfg := tailcall.DefaultConfig()
	tp, err := tailcall.Transform(p, cfg)
	if err != nil {
		t.Fatalf("Transform failed: %s", err)
	}
	tc, ok := tp.Funcs["f"].Code.At(1).(*rtl.Tailcall)
	if !ok || tc.Callee.Symbol != "g" || len(tc.Args) != 0 {
		t.Fatalf("f:1 is %s, want tailcall g()", tp.Funcs["f"].Code.At(1))
	}
	got, err := Correspondence(p, tp, cfg, Inputs{})
	if err != nil {
		t.Fatalf("Correspondence failed: %s", err)
	}
	if got.Value != interp.Int(42) || got.TargetValue != interp.Int(42) {
		t.Errorf("values %v, %v, want 42, 42", got.Value, got.TargetValue)
	}
	if got.Stutters != 3 {
		t.Errorf("%d skipped steps, want 3", got.Stutters)
	}
}

// A stuttering step must decrease the measure
// even when the bound is too large to multiply by the stack depth.
func TestNopScenarioHugeBound(t *testing.T) {
	p := parse(t, nopScenario)
	for _, bound := range []int{1 << 31, math.MaxInt - 1, math.MaxInt} {
		cfg := tailcall.DefaultConfig()
		cfg.Bound = bound
		tp, err := tailcall.Transform(p, cfg)
		if err != nil {
			t.Fatalf("Transform failed: %s", err)
		}
		got, err := Correspondence(p, tp, cfg, Inputs{})
		if err != nil {
			t.Fatalf("bound %d: Correspondence failed: %s", bound, err)
		}
		if got.TargetValue != interp.Int(42) {
			t.Errorf("bound %d: target value %v, want 42", bound, got.TargetValue)
		}
	}
}

func TestMeasureBound(t *testing.T) {
	p := parse(t, nopScenario)
	tests := []struct {
		bound, want int
	}{
		{bound: 0, want: 0},
		{bound: 2, want: 2},
		{bound: 4, want: 4},
		{bound: 5, want: 4},
		{bound: math.MaxInt, want: 4},
	}
	for _, test := range tests {
		if got := MeasureBound(p, test.bound); got != test.want {
			t.Errorf("MeasureBound(%d)=%d, want %d", test.bound, got, test.want)
		}
	}
}

// A return of no value lets the target return a more defined value.
func TestReturnNothing(t *testing.T) {
	p := parse(t, `
		func g() sig():int stack 0 entry 1 {
			1: x1 = int[9]() -> 2
			2: return x1
		}
		func f() sig():int stack 0 entry 1 {
			1: x1 = call g() sig():int -> 2
			2: x2 = move(x1) -> 3
			3: return
		}
		func main() sig():int stack 0 entry 1 {
			1: x1 = call f() sig():int -> 2
			2: x2 = add[0](x1) -> 3
			3: return x2
		}
	`)
	cfg := tailcall.DefaultConfig()
	tp, err := tailcall.Transform(p, cfg)
	if err != nil {
		t.Fatalf("Transform failed: %s", err)
	}
	got, err := Correspondence(p, tp, cfg, Inputs{})
	if err != nil {
		t.Fatalf("Correspondence failed: %s", err)
	}
	if got.Value != (interp.Undef{}) || got.TargetValue != interp.Int(9) {
		t.Errorf("values %v, %v, want undef, 9", got.Value, got.TargetValue)
	}
}

func TestDivergence(t *testing.T) {
	const orig = `
		func g(x1) sig(int):int stack 0 entry 1 {
			1: x2 = call ext(x1) sig(int):int -> 2
			2: return x2
		}
		func f(x1) sig(int):int stack 0 entry 1 {
			1: x2 = call g(x1) sig(int):int -> 2
			2: x3 = int[7]() -> 3
			3: return x3
		}
		func h(x1) sig(int):int stack 8 entry 1 {
			1: x2 = call g(x1) sig(int):int -> 2
			2: return x2
		}
		func main() sig():int stack 0 entry 1 {
			1: x1 = int[1]() -> 2
			2: x2 = call f(x1) sig(int):int -> 3
			3: x3 = call h(x2) sig(int):int -> 4
			4: x4 = add(x2, x3) -> 5
			5: return x4
		}
	`
	tests := []struct {
		name      string
		old, new  string
		wantError string
	}{
		{
			name:      "epilogue returns another register",
			old:       "1: x2 = call g(x1) sig(int):int -> 2\n\t\t\t2: x3",
			new:       "1: tailcall g(x1) sig(int):int\n\t\t\t2: x3",
			wantError: "not an epilogue returning x2",
		},
		{
			name:      "frame with a stack block",
			old:       "1: x2 = call g(x1) sig(int):int -> 2\n\t\t\t2: return x2",
			new:       "1: tailcall g(x1) sig(int):int\n\t\t\t2: return x2",
			wantError: "live, but freed in target",
		},
		{
			name:      "different value",
			old:       "x1 = int[1]()",
			new:       "x1 = int[2]()",
			wantError: "registers",
		},
		{
			name:      "missing event",
			old:       "x2 = call ext(x1) sig(int):int -> 2",
			new:       "x2 = move(x1) -> 2",
			wantError: "source *interp.Calling, target *interp.Running",
		},
		{
			name:      "different event",
			old:       "x2 = call ext(x1) sig(int):int -> 2",
			new:       "x2 = call ext2(x1) sig(int):int -> 2",
			wantError: "source calling ext, target calling ext2",
		},
		{
			name:      "different frame size",
			old:       "func h(x1) sig(int):int stack 8 entry 1 {\n\t\t\t1:",
			new:       "func h(x1) sig(int):int stack 16 entry 1 {\n\t\t\t1:",
			wantError: "bounds",
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if !strings.Contains(orig, test.old) {
				t.Fatalf("%q not found", test.old)
			}
			p := parse(t, orig)
			tp := parse(t, strings.Replace(orig, test.old, test.new, 1))
			in := Inputs{Externals: map[string]interp.External{
				"ext":  externals["ext"],
				"ext2": externals["ext"],
			}}
			_, err := Correspondence(p, tp, tailcall.DefaultConfig(), in)
			var div *Divergence
			if !errors.As(err, &div) {
				t.Fatalf("Correspondence error %v, want a *Divergence", err)
			}
			if !strings.Contains(div.Reason, test.wantError) {
				t.Errorf("divergence %q, want it to contain %q", div.Reason, test.wantError)
			}
			if !strings.HasPrefix(err.Error(), "step ") {
				t.Errorf("error %q does not begin with the step", err)
			}
		})
	}
}

func TestDivergenceExtraTarget(t *testing.T) {
	p := parse(t, `func main() sig():int stack 0 entry 1 {
		1: x1 = int[1]() -> 2
		2: return x1
	}`)
	tp := parse(t, `func main() sig():int stack 0 entry 1 {
		1: x1 = int[1]() -> 2
		2: nop -> 3
		3: return x1
	}`)
	_, err := Correspondence(p, tp, tailcall.DefaultConfig(), Inputs{})
	var div *Divergence
	if !errors.As(err, &div) {
		t.Fatalf("Correspondence error %v, want a *Divergence", err)
	}
	if div.Step != 3 {
		t.Errorf("divergence at step %d, want 3", div.Step)
	}
}

func TestSourceStuck(t *testing.T) {
	p := parse(t, `func main() sig():int stack 0 entry 1 {
		1: x1 = call nowhere() sig():int -> 2
		2: return x1
	}`)
	res, err := Correspondence(p, p, tailcall.DefaultConfig(), Inputs{})
	if err != nil {
		t.Fatalf("Correspondence failed: %s", err)
	}
	if !res.SourceStuck || res.Value != nil {
		t.Errorf("got %+v, want a stuck source", res)
	}
}

func TestTruncated(t *testing.T) {
	p := parse(t, `func main() sig():int stack 0 entry 1 { 1: nop -> 1 }`)
	res, err := Correspondence(p, p, tailcall.DefaultConfig(), Inputs{MaxSteps: 50})
	if err != nil {
		t.Fatalf("Correspondence failed: %s", err)
	}
	if !res.Truncated || res.Steps != 50 {
		t.Errorf("got %+v, want 50 steps, truncated", res)
	}
}

func TestMalformed(t *testing.T) {
	good := parse(t, `func main() sig():int stack 0 entry 1 { 1: return }`)
	bad := parse(t, `func main() sig():int stack 0 entry 1 { 1: nop -> 2 }`)
	var malformed *rtl.MalformedError
	if _, err := Correspondence(bad, good, tailcall.DefaultConfig(), Inputs{}); !errors.As(err, &malformed) {
		t.Errorf("Correspondence error %v, want *rtl.MalformedError", err)
	}
	if _, err := Correspondence(good, bad, tailcall.DefaultConfig(), Inputs{}); !errors.As(err, &malformed) {
		t.Errorf("Correspondence error %v, want *rtl.MalformedError", err)
	}
}

func TestStateMeasure(t *testing.T) {
	p := parse(t, `func main() sig():int stack 0 entry 1 {
		1: nop -> 2
		2: x2 = move(x1) -> 3
		3: return x2
	}`)
	f := p.Funcs["main"]
	frames := make([]interp.Frame, 2)
	const bound = 5
	tests := []struct {
		s    interp.State
		want int
	}{
		{&interp.Calling{Stack: frames}, 0},
		{&interp.ReturningTo{}, 0},
		{&interp.ReturningTo{Stack: frames}, 2 * (bound + 2)},
		{&interp.Running{Func: f, PC: 1}, 3},
		{&interp.Running{Func: f, PC: 2}, 2},
		{&interp.Running{Func: f, PC: 3}, 1},
		{&interp.Running{Stack: frames, Func: f, PC: 1}, 2*(bound+2) + 3},
	}
	for _, test := range tests {
		if got := StateMeasure(test.s, bound); got != test.want {
			t.Errorf("StateMeasure(%s)=%d, want %d", test.s, got, test.want)
		}
	}
	// Returning into a frame at the start of a longest epilogue
	// still decreases the measure.
	ret := StateMeasure(&interp.ReturningTo{Stack: frames}, bound)
	run := StateMeasure(&interp.Running{Stack: frames[:1], Func: longEpilogue(bound), PC: 1}, bound)
	if run >= ret {
		t.Errorf("measure after return %d, before %d", run, ret)
	}
}

// longEpilogue returns a function whose code at 1
// is a chain of bound nops.
func longEpilogue(bound int) *rtl.Function {
	var code rtl.Code
	for pc := rtl.Point(1); pc <= rtl.Point(bound); pc++ {
		code.Set(pc, &rtl.Nop{Succ: pc + 1})
	}
	code.Set(rtl.Point(bound+1), &rtl.Return{})
	return &rtl.Function{Name: "long", Entry: 1, Code: code}
}

func parse(t *testing.T, src string) *rtl.Program {
	t.Helper()
	p, err := rtl.Parse("", strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	return p
}
