package tailcall

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/giltho/CompCert/rtl"
	"github.com/giltho/CompCert/rtl/interp"
	"github.com/google/go-cmp/cmp"
)

// TestTransformFiles transforms each program in testdata,
// checks the calls that became tail calls,
// and runs both programs.
//
// Each file begins with comments giving the expected results:
//	// tailcalls: f:1 main:2
//	// result: 42
// The tailcalls line lists, in sorted order, the function:point
// of each call that becomes a tail call.
// The result line is the original program's result;
// the transformed program's result must be at least as defined.
func TestTransformFiles(t *testing.T) {
	const subDir = "testdata"
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err.Error())
	}
	dir := filepath.Join(cwd, subDir)
	fileInfos, err := ioutil.ReadDir(dir)
	if err != nil {
		t.Fatal(err.Error())
	}
	sort.Slice(fileInfos, func(i, j int) bool {
		return fileInfos[i].Name() < fileInfos[j].Name()
	})
	for _, fileInfo := range fileInfos {
		fileInfo := fileInfo
		if filepath.Ext(fileInfo.Name()) != ".rtl" {
			continue
		}
		t.Run(fileInfo.Name(), func(t *testing.T) {
			path := filepath.Join(dir, fileInfo.Name())
			p, err := rtl.ParseFile(path)
			if err != nil {
				t.Fatal(err)
			}
			wantTailcalls, wantResult, err := expectations(path)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Transform(p, DefaultConfig())
			if err != nil {
				t.Fatalf("Transform failed: %s", err)
			}
			if tc := tailcalls(p, got); tc != wantTailcalls {
				t.Errorf("%s: tail calls %q, want %q", path, tc, wantTailcalls)
			}
			checkTransform(t, p, got, DefaultConfig())

			v, events, err := run(p)
			if err != nil {
				t.Fatalf("original failed: %s", err)
			}
			if v.String() != wantResult {
				t.Errorf("%s: original result %s, want %s", path, v, wantResult)
			}
			tv, tevents, err := run(got)
			if err != nil {
				t.Fatalf("transformed failed: %s", err)
			}
			if !interp.Lessdef(v, tv) {
				t.Errorf("%s: transformed result %s, original %s", path, tv, v)
			}
			if diff := cmp.Diff(events, tevents); diff != "" {
				t.Errorf("%s: events differ:\n%s", path, diff)
			}
		})
	}
}

func expectations(path string) (tailcalls, result string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()
	var haveTailcalls, haveResult bool
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "//") {
			break
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "//"))
		switch {
		case strings.HasPrefix(line, "tailcalls:"):
			tailcalls = strings.TrimSpace(strings.TrimPrefix(line, "tailcalls:"))
			haveTailcalls = true
		case strings.HasPrefix(line, "result:"):
			result = strings.TrimSpace(strings.TrimPrefix(line, "result:"))
			haveResult = true
		}
	}
	if err := scanner.Err(); err != nil {
		return "", "", err
	}
	if !haveTailcalls || !haveResult {
		return "", "", fmt.Errorf("%s: missing tailcalls or result comment", path)
	}
	return tailcalls, result, nil
}

// tailcalls returns the space-separated function:point
// of each call in orig that is a tail call in transformed.
func tailcalls(orig, transformed *rtl.Program) string {
	return Rewritten(orig, transformed).String()
}

// checkTransform checks that transformed differs from orig
// only by eligible calls turned into tail calls
// with the same signature, callee, and arguments.
func checkTransform(t *testing.T, orig, transformed *rtl.Program, cfg Config) {
	t.Helper()
	if diff := cmp.Diff(orig.Names(), transformed.Names()); diff != "" {
		t.Fatalf("functions differ:\n%s", diff)
	}
	for _, name := range orig.Names() {
		f, g := orig.Funcs[name], transformed.Funcs[name]
		if f.Name != g.Name || !f.Sig.Eq(g.Sig) || f.StackSize != g.StackSize || f.Entry != g.Entry {
			t.Errorf("%s: header changed:\n%s\n%s", name, f, g)
		}
		if diff := cmp.Diff(f.Params, g.Params); diff != "" {
			t.Errorf("%s: parameters changed:\n%s", name, diff)
		}
		if len(f.Code) != len(g.Code) {
			t.Errorf("%s: code length %d, want %d", name, len(g.Code), len(f.Code))
			continue
		}
		for pc := range f.Code {
			want := f.Code[pc]
			if Eligible(f, rtl.Point(pc), cfg) {
				call := want.(*rtl.Call)
				want = &rtl.Tailcall{Sig: call.Sig, Callee: call.Callee, Args: call.Args}
			}
			if diff := cmp.Diff(want, g.Code[pc]); diff != "" {
				t.Errorf("%s:%d: got %v, want %v\n%s", name, pc, g.Code[pc], want, diff)
			}
		}
	}
}

func run(p *rtl.Program) (interp.Val, []interp.Event, error) {
	r := interp.New(p)
	r.Externals["ext"] = func(args []interp.Val) interp.Val {
		if len(args) != 1 {
			return interp.Undef{}
		}
		x, ok := args[0].(interp.Int)
		if !ok {
			return interp.Undef{}
		}
		return 2*x + 1
	}
	v, events, err := r.Eval(1000000)
	if err == nil && v == nil {
		err = errors.New("out of steps")
	}
	return v, events, err
}

func TestTransformDoesNotModifyInput(t *testing.T) {
	p := parseFile(t, "testdata/moves.rtl")
	before := p.String()
	f := p.Funcs["f"]
	code := f.Code
	if _, err := Transform(p, DefaultConfig()); err != nil {
		t.Fatalf("Transform failed: %s", err)
	}
	if after := p.String(); after != before {
		t.Errorf("input changed:\n%s\nwant:\n%s", after, before)
	}
	if p.Funcs["f"] != f || &p.Funcs["f"].Code[0] != &code[0] {
		t.Errorf("input function replaced")
	}
}

func TestTransformShares(t *testing.T) {
	p := parseFile(t, "testdata/moves.rtl")
	got, err := Transform(p, DefaultConfig())
	if err != nil {
		t.Fatalf("Transform failed: %s", err)
	}
	// Modify everything the result refers to.
	for _, f := range got.Funcs {
		if len(f.Params) > 0 {
			f.Params[0] = 99
		}
		for _, r := range f.Code {
			switch r := r.(type) {
			case *rtl.Call:
				r.Args[0] = 99
				r.Sig.Args[0] = rtl.Long
			case *rtl.Tailcall:
				r.Args[0] = 99
				r.Sig.Args[0] = rtl.Long
			case *rtl.Op:
				if len(r.Args) > 0 {
					r.Args[0] = 99
				}
			case *rtl.Return:
				if r.Arg != nil {
					*r.Arg = 99
				}
			}
		}
	}
	if err := rtl.Validate(p); err != nil {
		t.Fatalf("input invalid: %s", err)
	}
	want := parseFile(t, "testdata/moves.rtl")
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("modifying the result changed the input:\n%s", diff)
	}
}

func TestTransformConcurrent(t *testing.T) {
	for _, file := range []string{"moves.rtl", "recursion.rtl", "signature.rtl", "deadcode.rtl"} {
		p := parseFile(t, filepath.Join("testdata", file))
		var seqTrace, conTrace strings.Builder
		cfg := DefaultConfig()
		cfg.Trace = &seqTrace
		want, err := Transform(p, cfg)
		if err != nil {
			t.Fatalf("%s: Transform failed: %s", file, err)
		}
		cfg.Trace = &conTrace
		cfg.Workers = 2
		got, err := TransformConcurrent(context.Background(), p, cfg)
		if err != nil {
			t.Fatalf("%s: TransformConcurrent failed: %s", file, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: concurrent result differs:\n%s", file, diff)
		}
		if seqTrace.String() != conTrace.String() {
			t.Errorf("%s: concurrent trace:\n%s\nwant:\n%s", file, conTrace.String(), seqTrace.String())
		}
	}
}

func TestTransformConcurrentCanceled(t *testing.T) {
	p := parseFile(t, "testdata/moves.rtl")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := TransformConcurrent(ctx, p, DefaultConfig()); !errors.Is(err, context.Canceled) {
		t.Errorf("TransformConcurrent error %v, want %v", err, context.Canceled)
	}
}

func TestTrace(t *testing.T) {
	p := parseProgram(t, `
		func g(x1) sig(int):int stack 0 entry 1 {
			1: return x1
		}
		func main() sig():int stack 8 entry 1 {
			1: x1 = int[1]() -> 2
			2: x2 = call g(x1) sig(int):int -> 3
			3: return x2
		}
		func f() sig():int stack 0 entry 1 {
			1: x1 = int[1]() -> 2
			2: x2 = call g(x1) sig(int):int -> 3
			3: x3 = add(x2, x2) -> 4
			4: x4 = call g(x3) sig(int):int -> 5
			5: return x4
		}
		func h() sig():long stack 0 entry 1 {
			1: x1 = int[1]() -> 2
			2: x2 = call g(x1) sig(int):int -> 3
			3: return x2
		}
	`)
	var trace strings.Builder
	cfg := DefaultConfig()
	cfg.Trace = &trace
	if _, err := Transform(p, cfg); err != nil {
		t.Fatalf("Transform failed: %s", err)
	}
	want := `f:2: not a tail call (no epilogue): x2 = call g(x1) sig(int):int -> 3
f:4: tail call: x4 = call g(x3) sig(int):int -> 5
h:2: not a tail call (signature): x2 = call g(x1) sig(int):int -> 3
main:2: not a tail call (stack size 8): x2 = call g(x1) sig(int):int -> 3
`
	if got := trace.String(); got != want {
		t.Errorf("trace:\n%s\nwant:\n%s", got, want)
	}
}

func TestTransformErrors(t *testing.T) {
	p := parseProgram(t, `func main() sig():int stack 0 entry 1 { 1: nop -> 2 }`)
	_, err := Transform(p, DefaultConfig())
	var malformed *rtl.MalformedError
	if !errors.As(err, &malformed) {
		t.Errorf("Transform error %v, want *rtl.MalformedError", err)
	}
	if _, err := TransformConcurrent(context.Background(), p, DefaultConfig()); !errors.As(err, &malformed) {
		t.Errorf("TransformConcurrent error %v, want *rtl.MalformedError", err)
	}

	p = parseProgram(t, `func main() sig():int stack 0 entry 1 { 1: return }`)
	cfg := DefaultConfig()
	cfg.Bound = -1
	if _, err := Transform(p, cfg); err == nil {
		t.Errorf("Transform with a negative bound succeeded")
	}
}

type noTailcalls struct{}

func (noTailcalls) TailcallSafe(callee, caller rtl.Signature) bool { return false }

func TestConfig(t *testing.T) {
	p := parseFile(t, "testdata/scenario.rtl")
	tests := []struct {
		name string
		cfg  func(*Config)
		want string
	}{
		{name: "default", cfg: func(*Config) {}, want: "f:1 main:2"},
		{name: "zero bound", cfg: func(c *Config) { c.Bound = 0 }, want: ""},
		{name: "bound 1", cfg: func(c *Config) { c.Bound = 1 }, want: "f:1 main:2"},
		{name: "no register arguments", cfg: func(c *Config) { c.MaxRegArgs = 0 }, want: ""},
		{name: "custom ABI", cfg: func(c *Config) { c.ABI = noTailcalls{} }, want: ""},
	}
	for _, test := range tests {
		cfg := DefaultConfig()
		test.cfg(&cfg)
		got, err := Transform(p, cfg)
		if err != nil {
			t.Fatalf("%s: Transform failed: %s", test.name, err)
		}
		if tc := tailcalls(p, got); tc != test.want {
			t.Errorf("%s: tail calls %q, want %q", test.name, tc, test.want)
		}
		checkTransform(t, p, got, cfg)
	}
}

func TestDefaultABI(t *testing.T) {
	abi := DefaultABI{MaxRegArgs: 2}
	sig := func(res rtl.Type, varargs bool, args ...rtl.Type) rtl.Signature {
		return rtl.Signature{Args: args, Res: res, Varargs: varargs}
	}
	caller := sig(rtl.Int, false, rtl.Long)
	tests := []struct {
		callee rtl.Signature
		want   bool
	}{
		{sig(rtl.Int, false), true},
		{sig(rtl.Int, false, rtl.Int, rtl.Int), true},
		{sig(rtl.Int, false, rtl.Int, rtl.Int, rtl.Int), false},
		{sig(rtl.Int, true, rtl.Int), false},
		{sig(rtl.Long, false), false},
		{sig(rtl.Void, false), false},
	}
	for _, test := range tests {
		if got := abi.TailcallSafe(test.callee, caller); got != test.want {
			t.Errorf("TailcallSafe(%s, %s)=%v, want %v", test.callee, caller, got, test.want)
		}
	}
}

func parseFile(t *testing.T, path string) *rtl.Program {
	t.Helper()
	p, err := rtl.ParseFile(path)
	if err != nil {
		t.Fatalf("failed to parse: %s", err)
	}
	return p
}

func TestRewritten(t *testing.T) {
	p := parseFile(t, "testdata/moves.rtl")
	got, err := Transform(p, DefaultConfig())
	if err != nil {
		t.Fatalf("Transform failed: %s", err)
	}
	stats := Rewritten(p, got)
	want := Stats{"f": {2}, "h": {1}}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("Rewritten=%v, want %v\n%s", stats, want, diff)
	}
	if n := stats.Count(); n != 2 {
		t.Errorf("Count()=%d, want 2", n)
	}
	if s := Rewritten(p, p); s.Count() != 0 || s.String() != "" {
		t.Errorf("Rewritten of the same program=%q, want none", s)
	}
}
