package interp

import (
	"fmt"

	"github.com/giltho/CompCert/rtl"
)

// Mem is a memory of numbered blocks.
// Blocks are never reused: a freed block stays freed.
type Mem struct {
	blocks []*block
}

type block struct {
	lo, hi   int64
	freed    bool
	contents map[int64]memval
}

type memval struct {
	chunk rtl.Chunk
	val   Val
}

func NewMem() *Mem { return &Mem{} }

// Next returns the block that the next Alloc will return.
func (m *Mem) Next() Block { return Block(len(m.blocks) + 1) }

// Alloc allocates a new block with bounds [lo, hi).
func (m *Mem) Alloc(lo, hi int64) Block {
	m.blocks = append(m.blocks, &block{lo: lo, hi: hi, contents: make(map[int64]memval)})
	return Block(len(m.blocks))
}

func (m *Mem) block(b Block) *block {
	if b == 0 || int(b) > len(m.blocks) {
		return nil
	}
	return m.blocks[b-1]
}

// Valid returns whether b has been allocated, freed or not.
func (m *Mem) Valid(b Block) bool { return m.block(b) != nil }

// Live returns whether b has been allocated and not freed.
func (m *Mem) Live(b Block) bool {
	blk := m.block(b)
	return blk != nil && !blk.freed
}

// Bounds returns the bounds of an allocated block.
func (m *Mem) Bounds(b Block) (lo, hi int64, ok bool) {
	blk := m.block(b)
	if blk == nil {
		return 0, 0, false
	}
	return blk.lo, blk.hi, true
}

// Size returns hi-lo of an allocated block.
func (m *Mem) Size(b Block) int64 {
	lo, hi, _ := m.Bounds(b)
	return hi - lo
}

// Free frees a live block.
func (m *Mem) Free(b Block) error {
	blk := m.block(b)
	switch {
	case blk == nil:
		return fmt.Errorf("free of unallocated block %d", b)
	case blk.freed:
		return fmt.Errorf("free of freed block %d", b)
	}
	blk.freed = true
	blk.contents = nil
	return nil
}

func (m *Mem) access(c rtl.Chunk, b Block, ofs int64) (*block, error) {
	blk := m.block(b)
	switch {
	case blk == nil || blk.freed:
		return nil, fmt.Errorf("access to dead block %d", b)
	case ofs < blk.lo || ofs+c.Size() > blk.hi:
		return nil, fmt.Errorf("%s access at b%d+%d out of bounds [%d, %d)", c, b, ofs, blk.lo, blk.hi)
	case ofs%c.Size() != 0:
		return nil, fmt.Errorf("misaligned %s access at b%d+%d", c, b, ofs)
	}
	return blk, nil
}

// Load reads a value of the given chunk.
// Bytes not last written by a store of the same chunk
// at the same offset read as Undef.
func (m *Mem) Load(c rtl.Chunk, b Block, ofs int64) (Val, error) {
	blk, err := m.access(c, b, ofs)
	if err != nil {
		return nil, err
	}
	mv, ok := blk.contents[ofs]
	if !ok || mv.chunk != c {
		return Undef{}, nil
	}
	return mv.val, nil
}

// Store writes a value of the given chunk.
// A value of the wrong kind for the chunk is stored as Undef.
func (m *Mem) Store(c rtl.Chunk, b Block, ofs int64, v Val) error {
	blk, err := m.access(c, b, ofs)
	if err != nil {
		return err
	}
	for o, mv := range blk.contents {
		if o < ofs+c.Size() && ofs < o+mv.chunk.Size() {
			delete(blk.contents, o)
		}
	}
	blk.contents[ofs] = memval{chunk: c, val: normalize(c, v)}
	return nil
}

func normalize(c rtl.Chunk, v Val) Val {
	switch c {
	case rtl.Int32:
		if _, ok := v.(Int); ok {
			return v
		}
	case rtl.Int64:
		if _, ok := v.(Long); ok {
			return v
		}
	case rtl.Any64:
		if v != nil {
			return v
		}
	}
	return Undef{}
}

// Extends returns nil if m2 is at least as defined as m1:
// both have allocated the same blocks;
// every block live in m2 is live in m1 with the same bounds,
// and its contents in m1 are less defined than in m2.
// A block may be live in m1 and freed in m2 only if it has size 0;
// such blocks are the frames of callers that m2's execution
// removed with a tail call.
func Extends(m1, m2 *Mem) error {
	if m1.Next() != m2.Next() {
		return fmt.Errorf("next block %d, target next block %d", m1.Next(), m2.Next())
	}
	for i := range m1.blocks {
		b := Block(i + 1)
		b1, b2 := m1.blocks[i], m2.blocks[i]
		switch {
		case b1.freed && !b2.freed:
			return fmt.Errorf("block %d freed, but live in target", b)
		case !b1.freed && b2.freed:
			if b1.hi != b1.lo {
				return fmt.Errorf("block %d of size %d live, but freed in target", b, b1.hi-b1.lo)
			}
			continue
		case b1.freed:
			continue
		case b1.lo != b2.lo || b1.hi != b2.hi:
			return fmt.Errorf("block %d bounds [%d, %d), target bounds [%d, %d)",
				b, b1.lo, b1.hi, b2.lo, b2.hi)
		}
		for o, mv1 := range b1.contents {
			if _, ok := mv1.val.(Undef); ok {
				continue
			}
			mv2, ok := b2.contents[o]
			if !ok {
				return fmt.Errorf("b%d+%d holds %s %s, target holds nothing", b, o, mv1.chunk, mv1.val)
			}
			if mv1.chunk != mv2.chunk || !Lessdef(mv1.val, mv2.val) {
				return fmt.Errorf("b%d+%d holds %s %s, target holds %s %s",
					b, o, mv1.chunk, mv1.val, mv2.chunk, mv2.val)
			}
		}
	}
	return nil
}
