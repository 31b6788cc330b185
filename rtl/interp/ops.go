package interp

import "github.com/giltho/CompCert/rtl"

// evalOp returns the result of an operation.
// Arithmetic involving Undef or mismatched kinds gives Undef;
// ok is false only for a malformed operation.
func evalOp(op rtl.Operation, args []Val) (Val, bool) {
	if n := op.Arity(); n < 0 || n != len(args) {
		return nil, false
	}
	switch op.Kind {
	case rtl.Move:
		return args[0], true
	case rtl.IntConst:
		return Int(int32(op.Imm)), true
	case rtl.LongConst:
		return Long(op.Imm), true
	case rtl.FuncAddr:
		return Func{Name: op.Symbol}, true
	case rtl.AddImm:
		switch x := args[0].(type) {
		case Int:
			return x + Int(int32(op.Imm)), true
		case Long:
			return x + Long(op.Imm), true
		case Ptr:
			return Ptr{Block: x.Block, Ofs: x.Ofs + op.Imm}, true
		}
		return Undef{}, true
	case rtl.Add:
		return add(args[0], args[1]), true
	case rtl.Sub:
		switch x := args[0].(type) {
		case Int:
			if y, ok := args[1].(Int); ok {
				return x - y, true
			}
		case Long:
			if y, ok := args[1].(Long); ok {
				return x - y, true
			}
		case Ptr:
			if y, ok := args[1].(Int); ok {
				return Ptr{Block: x.Block, Ofs: x.Ofs - int64(y)}, true
			}
		}
		return Undef{}, true
	case rtl.Mul:
		switch x := args[0].(type) {
		case Int:
			if y, ok := args[1].(Int); ok {
				return x * y, true
			}
		case Long:
			if y, ok := args[1].(Long); ok {
				return x * y, true
			}
		}
		return Undef{}, true
	default:
		return nil, false
	}
}

func add(x, y Val) Val {
	switch x := x.(type) {
	case Int:
		if y, ok := y.(Int); ok {
			return x + y
		}
		if y, ok := y.(Ptr); ok {
			return Ptr{Block: y.Block, Ofs: y.Ofs + int64(x)}
		}
	case Long:
		if y, ok := y.(Long); ok {
			return x + y
		}
	case Ptr:
		if y, ok := y.(Int); ok {
			return Ptr{Block: x.Block, Ofs: x.Ofs + int64(y)}
		}
	}
	return Undef{}
}

func evalAddr(a rtl.Addressing, sp Block, args []Val) (Ptr, bool) {
	if len(args) != a.Arity() {
		return Ptr{}, false
	}
	switch a.Kind {
	case rtl.Stack:
		return Ptr{Block: sp, Ofs: a.Ofs}, true
	case rtl.Indexed:
		p, ok := args[0].(Ptr)
		if !ok {
			return Ptr{}, false
		}
		return Ptr{Block: p.Block, Ofs: p.Ofs + a.Ofs}, true
	default:
		return Ptr{}, false
	}
}

// evalCond returns the truth of a condition.
// ok is false if the condition is undefined.
func evalCond(c rtl.Condition, args []Val) (bool, bool) {
	if len(args) != c.Arity() {
		return false, false
	}
	var x, y int64
	switch a := args[0].(type) {
	case Int:
		x = int64(a)
		if c.HasImm {
			y = int64(int32(c.Imm))
		} else if b, ok := args[1].(Int); ok {
			y = int64(b)
		} else {
			return false, false
		}
	case Long:
		x = int64(a)
		if c.HasImm {
			y = c.Imm
		} else if b, ok := args[1].(Long); ok {
			y = int64(b)
		} else {
			return false, false
		}
	default:
		return false, false
	}
	switch c.Cmp {
	case rtl.Eq:
		return x == y, true
	case rtl.Ne:
		return x != y, true
	case rtl.Lt:
		return x < y, true
	case rtl.Le:
		return x <= y, true
	case rtl.Gt:
		return x > y, true
	case rtl.Ge:
		return x >= y, true
	default:
		return false, false
	}
}
