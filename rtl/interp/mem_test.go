package interp

import (
	"strings"
	"testing"

	"github.com/giltho/CompCert/rtl"
)

func TestLoadStore(t *testing.T) {
	m := NewMem()
	b := m.Alloc(0, 16)
	if b != 1 || m.Next() != 2 {
		t.Fatalf("Alloc=%d, Next=%d, want 1, 2", b, m.Next())
	}
	load := func(c rtl.Chunk, ofs int64) Val {
		t.Helper()
		v, err := m.Load(c, b, ofs)
		if err != nil {
			t.Fatalf("Load(%s, %d) failed: %s", c, ofs, err)
		}
		return v
	}
	store := func(c rtl.Chunk, ofs int64, v Val) {
		t.Helper()
		if err := m.Store(c, b, ofs, v); err != nil {
			t.Fatalf("Store(%s, %d, %s) failed: %s", c, ofs, v, err)
		}
	}

	if v := load(rtl.Int32, 0); v != (Undef{}) {
		t.Errorf("fresh load=%s, want undef", v)
	}
	store(rtl.Int32, 0, Int(5))
	if v := load(rtl.Int32, 0); v != Int(5) {
		t.Errorf("load=%s, want 5", v)
	}
	if v := load(rtl.Int64, 0); v != (Undef{}) {
		t.Errorf("load of a different chunk=%s, want undef", v)
	}

	store(rtl.Int64, 8, Long(9))
	store(rtl.Int32, 12, Int(1))
	if v := load(rtl.Int64, 8); v != (Undef{}) {
		t.Errorf("load of overwritten bytes=%s, want undef", v)
	}
	if v := load(rtl.Int32, 12); v != Int(1) {
		t.Errorf("load=%s, want 1", v)
	}

	store(rtl.Int32, 4, Long(3))
	if v := load(rtl.Int32, 4); v != (Undef{}) {
		t.Errorf("load of a mismatched store=%s, want undef", v)
	}
	store(rtl.Any64, 8, Ptr{Block: b, Ofs: 4})
	if v := load(rtl.Any64, 8); v != (Ptr{Block: b, Ofs: 4}) {
		t.Errorf("load=%s, want b1+4", v)
	}
}

func TestAccessError(t *testing.T) {
	m := NewMem()
	b := m.Alloc(0, 8)
	empty := m.Alloc(0, 0)
	tests := []struct {
		name  string
		chunk rtl.Chunk
		b     Block
		ofs   int64
		want  string
	}{
		{"out of bounds", rtl.Int64, b, 4, "out of bounds"},
		{"negative", rtl.Int32, b, -4, "out of bounds"},
		{"misaligned", rtl.Int32, b, 2, "misaligned"},
		{"empty block", rtl.Int32, empty, 0, "out of bounds"},
		{"unallocated", rtl.Int32, 9, 0, "dead block"},
	}
	for _, test := range tests {
		if _, err := m.Load(test.chunk, test.b, test.ofs); err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: Load error %v, want %q", test.name, err, test.want)
		}
		if err := m.Store(test.chunk, test.b, test.ofs, Int(0)); err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: Store error %v, want %q", test.name, err, test.want)
		}
	}
}

func TestFree(t *testing.T) {
	m := NewMem()
	b := m.Alloc(0, 8)
	if err := m.Free(b); err != nil {
		t.Fatalf("Free failed: %s", err)
	}
	if m.Live(b) || !m.Valid(b) {
		t.Errorf("freed block: Live=%v Valid=%v, want false, true", m.Live(b), m.Valid(b))
	}
	if err := m.Free(b); err == nil {
		t.Errorf("double Free succeeded")
	}
	if err := m.Free(5); err == nil {
		t.Errorf("Free of an unallocated block succeeded")
	}
	if _, err := m.Load(rtl.Int32, b, 0); err == nil {
		t.Errorf("Load from a freed block succeeded")
	}
	if c := m.Alloc(0, 8); c == b {
		t.Errorf("Alloc reused freed block %d", b)
	}
}

func TestExtends(t *testing.T) {
	// Each test builds m1 and m2 with identical allocations
	// and then applies edits.
	tests := []struct {
		name string
		edit func(m1, m2 *Mem)
		ok   bool
	}{
		{
			name: "same",
			edit: func(m1, m2 *Mem) {},
			ok:   true,
		},
		{
			name: "more defined",
			edit: func(m1, m2 *Mem) {
				m1.Store(rtl.Int32, 1, 0, Undef{})
				m2.Store(rtl.Int32, 1, 0, Int(3))
			},
			ok: true,
		},
		{
			name: "less defined",
			edit: func(m1, m2 *Mem) {
				m1.Store(rtl.Int32, 1, 0, Int(3))
			},
			ok: false,
		},
		{
			name: "different",
			edit: func(m1, m2 *Mem) {
				m1.Store(rtl.Int32, 1, 0, Int(3))
				m2.Store(rtl.Int32, 1, 0, Int(4))
			},
			ok: false,
		},
		{
			name: "different chunk",
			edit: func(m1, m2 *Mem) {
				m1.Store(rtl.Any64, 1, 0, Long(3))
				m2.Store(rtl.Int64, 1, 0, Long(3))
			},
			ok: false,
		},
		{
			name: "empty block freed in target",
			edit: func(m1, m2 *Mem) { m2.Free(2) },
			ok:   true,
		},
		{
			name: "block freed in target",
			edit: func(m1, m2 *Mem) { m2.Free(1) },
			ok:   false,
		},
		{
			name: "block freed in source",
			edit: func(m1, m2 *Mem) { m1.Free(2) },
			ok:   false,
		},
		{
			name: "both freed",
			edit: func(m1, m2 *Mem) {
				m1.Store(rtl.Int32, 1, 0, Int(3))
				m1.Free(1)
				m2.Free(1)
			},
			ok: true,
		},
		{
			name: "extra allocation",
			edit: func(m1, m2 *Mem) { m2.Alloc(0, 0) },
			ok:   false,
		},
		{
			name: "different bounds",
			edit: func(m1, m2 *Mem) {
				m1.Alloc(0, 8)
				m2.Alloc(0, 16)
			},
			ok: false,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			m1, m2 := NewMem(), NewMem()
			for _, m := range []*Mem{m1, m2} {
				m.Alloc(0, 8)
				m.Alloc(0, 0)
			}
			test.edit(m1, m2)
			err := Extends(m1, m2)
			if test.ok && err != nil {
				t.Errorf("Extends failed: %s", err)
			}
			if !test.ok && err == nil {
				t.Errorf("Extends succeeded, want error")
			}
		})
	}
}

// Storing less defined values into memories related by Extends
// keeps them related.
func TestExtendsPreservedByStore(t *testing.T) {
	m1, m2 := NewMem(), NewMem()
	m1.Alloc(0, 16)
	m2.Alloc(0, 16)
	stores := []struct {
		chunk  rtl.Chunk
		ofs    int64
		v1, v2 Val
	}{
		{rtl.Int32, 0, Undef{}, Int(1)},
		{rtl.Int64, 8, Long(2), Long(2)},
		{rtl.Int32, 4, Int(3), Int(3)},
		{rtl.Int64, 0, Undef{}, Long(4)},
		{rtl.Any64, 8, Undef{}, Ptr{Block: 1}},
		{rtl.Int32, 8, Int(5), Int(5)},
	}
	for _, s := range stores {
		if err := m1.Store(s.chunk, 1, s.ofs, s.v1); err != nil {
			t.Fatalf("Store failed: %s", err)
		}
		if err := m2.Store(s.chunk, 1, s.ofs, s.v2); err != nil {
			t.Fatalf("Store failed: %s", err)
		}
		if err := Extends(m1, m2); err != nil {
			t.Fatalf("after storing %s at %d: %s", s.v1, s.ofs, err)
		}
	}
}
