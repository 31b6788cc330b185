package check

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/giltho/CompCert/rtl"
	"github.com/giltho/CompCert/rtl/interp"
	"github.com/giltho/CompCert/tailcall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomPrograms checks the correspondence of random programs
// with their transformations under several bounds.
func TestRandomPrograms(t *testing.T) {
	const seeds = 200
	for _, bound := range []int{0, 1, 3, tailcall.DefaultBound} {
		bound := bound
		t.Run(fmt.Sprintf("bound=%d", bound), func(t *testing.T) {
			t.Parallel()
			cfg := tailcall.DefaultConfig()
			cfg.Bound = bound
			var tailcalls, stutters int
			for seed := int64(0); seed < seeds; seed++ {
				p := genProgram(rand.New(rand.NewSource(seed)))
				require.NoError(t, rtl.Validate(p), "seed %d:\n%s", seed, p)

				tp, err := tailcall.Transform(p, cfg)
				require.NoError(t, err, "seed %d", seed)
				tailcalls += tailcall.Rewritten(p, tp).Count()

				res, err := Correspondence(p, tp, cfg, Inputs{Externals: genExternals})
				require.NoError(t, err, "seed %d:\n%s\ntransformed:\n%s", seed, p, tp)
				require.False(t, res.SourceStuck, "seed %d: source stuck\n%s", seed, p)
				require.False(t, res.Truncated, "seed %d: truncated\n%s", seed, p)
				assert.True(t, interp.Lessdef(res.Value, res.TargetValue),
					"seed %d: value %s, target %s", seed, res.Value, res.TargetValue)
				stutters += res.Stutters
			}
			if bound == 0 {
				assert.Zero(t, tailcalls, "tail calls with bound 0")
				assert.Zero(t, stutters, "skipped steps with bound 0")
			} else {
				assert.NotZero(t, tailcalls, "no tail calls in %d programs", seeds)
				assert.NotZero(t, stutters, "no skipped steps in %d programs", seeds)
			}
		})
	}
}

var genExternals = map[string]interp.External{
	"ext": func(args []interp.Val) interp.Val {
		if len(args) != 1 {
			return interp.Undef{}
		}
		if x, ok := args[0].(interp.Int); ok {
			return 3*x + 1
		}
		return interp.Undef{}
	},
}

// genProgram returns a random well-formed program that always returns.
// Functions f0...fn-1 take one int and return an int or nothing;
// fi only calls fj with j > i and the external ext,
// so the call graph is acyclic.
// Calls are followed by random epilogues:
// chains of nops and moves of varying length,
// ending in returns of the call's result, of nothing, or of something else.
func genProgram(rnd *rand.Rand) *rtl.Program {
	n := 1 + rnd.Intn(5)
	p := &rtl.Program{Funcs: make(map[string]*rtl.Function), Main: "main"}
	sigs := make([]rtl.Signature, n)
	for i := range sigs {
		sigs[i] = rtl.Signature{Args: []rtl.Type{rtl.Int}, Res: rtl.Int}
		if rnd.Intn(5) == 0 {
			sigs[i].Res = rtl.Void
		}
	}
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("f%d", i)
		f := &rtl.Function{Name: name, Sig: sigs[i], Params: []rtl.Reg{1}, Entry: 1}
		if rnd.Intn(4) == 0 {
			f.StackSize = 16
		}
		g := &funcGen{rnd: rnd, f: f, sigs: sigs, first: i + 1}
		g.body()
		p.Funcs[name] = f
	}
	main := &rtl.Function{
		Name:  "main",
		Sig:   rtl.Signature{Res: rtl.Int},
		Entry: 1,
	}
	g := &funcGen{rnd: rnd, f: main, sigs: sigs, first: 0}
	g.body()
	p.Funcs["main"] = main
	return p
}

const (
	argReg   rtl.Reg = 1
	constReg rtl.Reg = 2
	loadReg  rtl.Reg = 3
	preReg   rtl.Reg = 4
	destReg  rtl.Reg = 5
	addrReg  rtl.Reg = 9
	chainReg rtl.Reg = 10
)

type funcGen struct {
	rnd  *rand.Rand
	f    *rtl.Function
	sigs []rtl.Signature
	// first is the lowest index of a function that may be called.
	first int
	pc    rtl.Point
}

// emit adds r at the next point and returns that point.
func (g *funcGen) emit(r rtl.Instruction) rtl.Point {
	g.pc++
	g.f.Code.Set(g.pc, r)
	return g.pc
}

func (g *funcGen) body() {
	g.emit(&rtl.Op{Op: rtl.Operation{Kind: rtl.IntConst, Imm: int64(g.rnd.Intn(100) - 50)}, Dest: constReg, Succ: g.pc + 2})
	if len(g.f.Params) == 0 {
		g.emit(&rtl.Op{Op: rtl.Operation{Kind: rtl.IntConst, Imm: int64(g.rnd.Intn(10))}, Dest: argReg, Succ: g.pc + 2})
	}
	if g.f.StackSize > 0 {
		g.emit(&rtl.Store{Chunk: rtl.Int32, Addr: rtl.Addressing{Kind: rtl.Stack, Ofs: 4}, Src: argReg, Succ: g.pc + 2})
		g.emit(&rtl.Store{Chunk: rtl.Any64, Addr: rtl.Addressing{Kind: rtl.Stack, Ofs: 8}, Src: constReg, Succ: g.pc + 2})
		g.emit(&rtl.Load{Chunk: rtl.Int32, Addr: rtl.Addressing{Kind: rtl.Stack, Ofs: 4}, Dest: loadReg, Succ: g.pc + 2})
		g.emit(&rtl.Op{Op: rtl.Operation{Kind: rtl.Add}, Args: []rtl.Reg{constReg, loadReg}, Dest: constReg, Succ: g.pc + 2})
	}
	if g.rnd.Intn(2) == 0 {
		// A call that is not in tail position.
		g.call(preReg)
		g.emit(&rtl.Op{Op: rtl.Operation{Kind: rtl.Add}, Args: []rtl.Reg{constReg, argReg}, Dest: constReg, Succ: g.pc + 2})
	}
	var branch *rtl.Cond
	if g.rnd.Intn(3) == 0 {
		// Branch around the call straight to its epilogue.
		cond := rtl.Condition{Cmp: rtl.Comparison(1 + g.rnd.Intn(6)), HasImm: true, Imm: int64(g.rnd.Intn(10))}
		branch = &rtl.Cond{Cond: cond, Args: []rtl.Reg{argReg}, IfTrue: g.pc + 2}
		g.emit(branch)
	}
	g.call(destReg)
	if branch != nil {
		branch.IfFalse = g.pc + 1
	}
	g.epilogue(destReg)
}

// call emits a call of a random callee
// with the given result register.
func (g *funcGen) call(dest rtl.Reg) {
	var (
		callee rtl.Callee
		sig    rtl.Signature
	)
	if j := g.first + g.rnd.Intn(len(g.sigs)-g.first+1); j < len(g.sigs) {
		callee, sig = rtl.Callee{Symbol: fmt.Sprintf("f%d", j)}, g.sigs[j]
		if g.rnd.Intn(4) == 0 {
			g.emit(&rtl.Op{Op: rtl.Operation{Kind: rtl.FuncAddr, Symbol: callee.Symbol}, Dest: addrReg, Succ: g.pc + 2})
			callee = rtl.Callee{Reg: addrReg}
		}
	} else {
		callee = rtl.Callee{Symbol: "ext"}
		sig = rtl.Signature{Args: []rtl.Type{rtl.Int}, Res: rtl.Int}
	}
	arg := argReg
	if g.rnd.Intn(2) == 0 {
		arg = constReg
	}
	g.emit(&rtl.Call{Sig: sig, Callee: callee, Args: []rtl.Reg{arg}, Dest: dest, Succ: g.pc + 2})
}

// epilogue emits a chain of nops and moves from r, starting at the next point,
// followed by a return.
func (g *funcGen) epilogue(r rtl.Reg) {
	fresh := chainReg
	for k := g.rnd.Intn(8); k > 0; k-- {
		switch g.rnd.Intn(5) {
		case 0, 1:
			g.emit(&rtl.Nop{Succ: g.pc + 2})
		case 2, 3:
			g.emit(&rtl.Op{Op: rtl.Operation{Kind: rtl.Move}, Args: []rtl.Reg{r}, Dest: fresh, Succ: g.pc + 2})
			r = fresh
			fresh++
		default:
			// A move out of some other register.
			g.emit(&rtl.Op{Op: rtl.Operation{Kind: rtl.Move}, Args: []rtl.Reg{constReg}, Dest: fresh, Succ: g.pc + 2})
			fresh++
		}
	}
	switch g.rnd.Intn(5) {
	case 0:
		g.emit(&rtl.Return{})
	case 1:
		other := constReg
		g.emit(&rtl.Return{Arg: &other})
	default:
		g.emit(&rtl.Return{Arg: &r})
	}
}
