package tailcall

import "github.com/giltho/CompCert/rtl"

// IsReturn returns whether execution starting at pc
// returns the value of register r, following at most bound instructions.
// The path may pass through nops and through moves out of
// the register holding the value; it must end in a return
// of that register or a return of no value.
//
// A path that revisits a point never returns, so it answers false,
// as does a path longer than bound.
func IsReturn(code rtl.Code, pc rtl.Point, r rtl.Reg, bound int) bool {
	return epilogue(code, pc, r, bound, nil)
}

// Epilogue returns the points of the epilogue starting at pc
// that returns r, ending with the return instruction.
// It returns nil if IsReturn(code, pc, r, bound) is false.
func Epilogue(code rtl.Code, pc rtl.Point, r rtl.Reg, bound int) []rtl.Point {
	var pcs []rtl.Point
	if !epilogue(code, pc, r, bound, func(pc rtl.Point) { pcs = append(pcs, pc) }) {
		return nil
	}
	return pcs
}

// epilogue walks the epilogue from pc, calling visit, if non-nil,
// with each point on it.
func epilogue(code rtl.Code, pc rtl.Point, r rtl.Reg, bound int, visit func(rtl.Point)) bool {
	// An acyclic walk visits each point at most once.
	if bound > len(code) {
		bound = len(code)
	}
	for fuel := bound; fuel > 0; fuel-- {
		if visit != nil {
			visit(pc)
		}
		switch instr := code.At(pc).(type) {
		case *rtl.Return:
			return instr.Arg == nil || *instr.Arg == r
		case *rtl.Nop:
			pc = instr.Succ
		case *rtl.Op:
			src, ok := instr.MoveSource()
			if !ok || src != r {
				return false
			}
			r, pc = instr.Dest, instr.Succ
		default:
			return false
		}
	}
	return false
}

// Measure returns the number of nops and moves
// in the straight-line run starting at pc, counting at most bound
// and at most len(code).
// It is 0 if the instruction at pc is neither a nop nor a move.
//
// Each step along an epilogue accepted by IsReturn with the same bound
// decreases the measure by exactly one.
func Measure(code rtl.Code, pc rtl.Point, bound int) int {
	if bound > len(code) {
		bound = len(code)
	}
	var n int
	for ; n < bound; n++ {
		switch instr := code.At(pc).(type) {
		case *rtl.Nop:
			pc = instr.Succ
		case *rtl.Op:
			if _, ok := instr.MoveSource(); !ok {
				return n
			}
			pc = instr.Succ
		default:
			return n
		}
	}
	return n
}
