package check

import (
	"strings"
	"testing"

	"github.com/giltho/CompCert/rtl"
	"github.com/giltho/CompCert/rtl/interp"
)

func TestFrameOK(t *testing.T) {
	f := &rtl.Function{Name: "f", StackSize: 8}
	tests := []struct {
		name string
		// mem returns a memory, the frame block, and the bound.
		mem func() (*interp.Mem, interp.Block, interp.Block)
		// want is a substring of the error, or "" for no error.
		want string
	}{
		{
			name: "ok",
			mem: func() (*interp.Mem, interp.Block, interp.Block) {
				m := interp.NewMem()
				b := m.Alloc(0, 8)
				return m, b, m.Next()
			},
		},
		{
			name: "store to another block",
			mem: func() (*interp.Mem, interp.Block, interp.Block) {
				m := interp.NewMem()
				b := m.Alloc(0, 8)
				other := m.Alloc(0, 8)
				if err := m.Store(rtl.Int32, other, 0, interp.Int(5)); err != nil {
					t.Fatalf("Store failed: %s", err)
				}
				return m, b, m.Next()
			},
		},
		{
			name: "store to the frame",
			mem: func() (*interp.Mem, interp.Block, interp.Block) {
				m := interp.NewMem()
				b := m.Alloc(0, 8)
				if err := m.Store(rtl.Int64, b, 0, interp.Long(5)); err != nil {
					t.Fatalf("Store failed: %s", err)
				}
				return m, b, m.Next()
			},
		},
		{
			name: "alloc raises the bound",
			mem: func() (*interp.Mem, interp.Block, interp.Block) {
				m := interp.NewMem()
				b := m.Alloc(0, 8)
				m.Alloc(0, 16)
				return m, b, m.Next()
			},
		},
		{
			name: "free the popped block",
			mem: func() (*interp.Mem, interp.Block, interp.Block) {
				m := interp.NewMem()
				b := m.Alloc(0, 8)
				bound := m.Next()
				popped := m.Alloc(0, 4)
				if err := m.Free(popped); err != nil {
					t.Fatalf("Free failed: %s", err)
				}
				return m, b, bound
			},
		},
		{
			name: "block at the bound",
			mem: func() (*interp.Mem, interp.Block, interp.Block) {
				m := interp.NewMem()
				m.Alloc(0, 8)
				b := m.Alloc(0, 8)
				return m, b, b
			},
			want: "is not below",
		},
		{
			name: "block above the bound",
			mem: func() (*interp.Mem, interp.Block, interp.Block) {
				m := interp.NewMem()
				m.Alloc(0, 8)
				return m, 2, 1
			},
			want: "is not below",
		},
		{
			name: "unallocated",
			mem: func() (*interp.Mem, interp.Block, interp.Block) {
				m := interp.NewMem()
				m.Alloc(0, 8)
				return m, 3, 4
			},
			want: "is not allocated",
		},
		{
			name: "freed",
			mem: func() (*interp.Mem, interp.Block, interp.Block) {
				m := interp.NewMem()
				b := m.Alloc(0, 8)
				if err := m.Free(b); err != nil {
					t.Fatalf("Free failed: %s", err)
				}
				return m, b, m.Next()
			},
			want: "is freed",
		},
		{
			name: "size mismatch",
			mem: func() (*interp.Mem, interp.Block, interp.Block) {
				m := interp.NewMem()
				b := m.Alloc(0, 16)
				return m, b, m.Next()
			},
			want: "has size 16, stack size is 8",
		},
		{
			name: "size mismatch with the right hi",
			mem: func() (*interp.Mem, interp.Block, interp.Block) {
				m := interp.NewMem()
				b := m.Alloc(4, 8)
				return m, b, m.Next()
			},
			want: "has size 4, stack size is 8",
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			m, b, bound := test.mem()
			err := FrameOK(m, f, b, bound)
			switch {
			case test.want == "" && err != nil:
				t.Errorf("FrameOK(%d, %d)=%q, want nil", b, bound, err)
			case test.want != "" && err == nil:
				t.Errorf("FrameOK(%d, %d)=nil, want error containing %q", b, bound, test.want)
			case test.want != "" && !strings.Contains(err.Error(), test.want):
				t.Errorf("FrameOK(%d, %d)=%q, want error containing %q", b, bound, err, test.want)
			}
		})
	}
}

func TestStackOK(t *testing.T) {
	caller := &rtl.Function{Name: "caller", StackSize: 8}
	callee := &rtl.Function{Name: "callee", StackSize: 0}
	tests := []struct {
		name  string
		state func() interp.State
		want  string
	}{
		{
			name: "running, no frames",
			state: func() interp.State {
				m := interp.NewMem()
				sp := m.Alloc(0, 8)
				return &interp.Running{Func: caller, SP: sp, Mem: m}
			},
		},
		{
			name: "running above its caller",
			state: func() interp.State {
				m := interp.NewMem()
				sp0 := m.Alloc(0, 8)
				sp1 := m.Alloc(0, 0)
				return &interp.Running{
					Stack: []interp.Frame{{Func: caller, SP: sp0}},
					Func:  callee,
					SP:    sp1,
					Mem:   m,
				}
			},
		},
		{
			name: "returning after the callee freed its frame",
			state: func() interp.State {
				m := interp.NewMem()
				sp0 := m.Alloc(0, 8)
				sp1 := m.Alloc(0, 0)
				if err := m.Free(sp1); err != nil {
					t.Fatalf("Free failed: %s", err)
				}
				return &interp.ReturningTo{Stack: []interp.Frame{{Func: caller, SP: sp0}}, Mem: m}
			},
		},
		{
			name: "calling",
			state: func() interp.State {
				m := interp.NewMem()
				sp0 := m.Alloc(0, 8)
				return &interp.Calling{Stack: []interp.Frame{{Func: caller, SP: sp0}}, Callee: "callee", Mem: m}
			},
		},
		{
			name: "running below its caller",
			state: func() interp.State {
				m := interp.NewMem()
				sp0 := m.Alloc(0, 0)
				sp1 := m.Alloc(0, 8)
				return &interp.Running{
					Stack: []interp.Frame{{Func: caller, SP: sp1}},
					Func:  callee,
					SP:    sp0,
					Mem:   m,
				}
			},
			want: "callee frame block 1 is not above its caller's block 2",
		},
		{
			name: "sharing its caller's block",
			state: func() interp.State {
				m := interp.NewMem()
				sp0 := m.Alloc(0, 8)
				return &interp.Running{
					Stack: []interp.Frame{{Func: caller, SP: sp0}},
					Func:  caller,
					SP:    sp0,
					Mem:   m,
				}
			},
			want: "is not above its caller's block 1",
		},
		{
			name: "frames out of order",
			state: func() interp.State {
				m := interp.NewMem()
				sp0 := m.Alloc(0, 8)
				sp1 := m.Alloc(0, 8)
				return &interp.ReturningTo{
					Stack: []interp.Frame{{Func: caller, SP: sp1}, {Func: caller, SP: sp0}},
					Mem:   m,
				}
			},
			want: "caller frame block 1 is not above its caller's block 2",
		},
		{
			name: "freed caller frame",
			state: func() interp.State {
				m := interp.NewMem()
				sp0 := m.Alloc(0, 8)
				if err := m.Free(sp0); err != nil {
					t.Fatalf("Free failed: %s", err)
				}
				return &interp.ReturningTo{Stack: []interp.Frame{{Func: caller, SP: sp0}}, Mem: m}
			},
			want: "caller frame block 1 is freed",
		},
		{
			name: "caller frame of the wrong size",
			state: func() interp.State {
				m := interp.NewMem()
				sp0 := m.Alloc(0, 4)
				sp1 := m.Alloc(0, 0)
				return &interp.Running{
					Stack: []interp.Frame{{Func: caller, SP: sp0}},
					Func:  callee,
					SP:    sp1,
					Mem:   m,
				}
			},
			want: "caller frame block 1 has size 4, stack size is 8",
		},
		{
			name: "running in an unallocated block",
			state: func() interp.State {
				m := interp.NewMem()
				return &interp.Running{Func: callee, SP: 1, Mem: m}
			},
			want: "callee frame block 1 is not below 1",
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			s := test.state()
			err := StackOK(s)
			switch {
			case test.want == "" && err != nil:
				t.Errorf("StackOK(%s)=%q, want nil", s, err)
			case test.want != "" && err == nil:
				t.Errorf("StackOK(%s)=nil, want error containing %q", s, test.want)
			case test.want != "" && !strings.Contains(err.Error(), test.want):
				t.Errorf("StackOK(%s)=%q, want error containing %q", s, err, test.want)
			}
		})
	}
}
