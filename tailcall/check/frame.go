package check

import (
	"fmt"

	"github.com/giltho/CompCert/rtl"
	"github.com/giltho/CompCert/rtl/interp"
)

// FrameOK returns nil if b is a well-formed frame block of f in m:
// b is below bound, it is allocated and not freed,
// and its size is f's declared stack size.
//
// The bound separates existing frames from blocks allocated later.
// Storing to another block preserves FrameOK;
// so does allocating a new block, with the bound raised to m.Next();
// so does freeing a block at or above the bound.
func FrameOK(m *interp.Mem, f *rtl.Function, b, bound interp.Block) error {
	switch {
	case b >= bound:
		return fmt.Errorf("%s frame block %d is not below %d", f.Name, b, bound)
	case !m.Valid(b):
		return fmt.Errorf("%s frame block %d is not allocated", f.Name, b)
	case !m.Live(b):
		return fmt.Errorf("%s frame block %d is freed", f.Name, b)
	case m.Size(b) != f.StackSize:
		return fmt.Errorf("%s frame block %d has size %d, stack size is %d",
			f.Name, b, m.Size(b), f.StackSize)
	}
	return nil
}

// StackOK returns nil if every frame of a stack, innermost last,
// is well formed in m with bound m.Next(),
// and frame blocks increase toward the innermost frame.
// If s is Running, its current frame is checked as the innermost.
func StackOK(s interp.State) error {
	m := interp.MemOf(s)
	frames := interp.Stack(s)
	var prev interp.Block
	check := func(f *rtl.Function, sp interp.Block) error {
		if err := FrameOK(m, f, sp, m.Next()); err != nil {
			return err
		}
		if sp <= prev {
			return fmt.Errorf("%s frame block %d is not above its caller's block %d", f.Name, sp, prev)
		}
		prev = sp
		return nil
	}
	for _, fr := range frames {
		if err := check(fr.Func, fr.SP); err != nil {
			return err
		}
	}
	if r, ok := s.(*interp.Running); ok {
		return check(r.Func, r.SP)
	}
	return nil
}
