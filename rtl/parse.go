package rtl

import (
	"io"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/eaburns/peggy/peg"
)

//go:generate peggy -t=false -o grammar.go grammar.peggy

// Parse parses a program in the format printed by Program.String.
// The first argument is the file path or "" if unspecified.
// The returned program is not validated.
func Parse(path string, r io.Reader) (*Program, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	_p := _NewParser(string(data))
	if pos, perr := _FileAccepts(_p, 0); pos < 0 {
		_, t := _FileFail(_p, 0, perr)
		return nil, parseError{path: path, loc: perr, text: _p.text, fail: t}
	}
	_, f := _FileAction(_p, 0)
	prog, fail := (*f).program()
	if fail != nil {
		t := &peg.Fail{Name: "File", Pos: fail.Pos, Kids: []*peg.Fail{fail}}
		return nil, parseError{path: path, loc: fail.Pos, text: _p.text, fail: t}
	}
	return prog, nil
}

// ParseFile parses a program from a file path.
func ParseFile(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

type parseError struct {
	path string
	loc  int
	text string
	fail *peg.Fail
}

func (err parseError) Tree() *peg.Fail { return err.fail }

func (err parseError) Error() string {
	e := peg.SimpleError(err.text, err.fail)
	e.FilePath = err.path
	return e.Error()
}

type file struct {
	main  string
	funcs []*funcDef
}

type funcDef struct {
	// pos is the byte offset of the func keyword.
	pos   int
	fn    *Function
	lines []*lineDef
}

type lineDef struct {
	// pos is the byte offset of the line's point.
	pos   int
	pc    Point
	instr Instruction
}

// program assembles the parsed functions,
// failing on a redefined function or point.
func (f *file) program() (*Program, *peg.Fail) {
	prog := &Program{Funcs: make(map[string]*Function), Main: f.main}
	if prog.Main == "" {
		prog.Main = "main"
	}
	for _, def := range f.funcs {
		if _, ok := prog.Funcs[def.fn.Name]; ok {
			return nil, &peg.Fail{Pos: def.pos, Want: "a function not already defined"}
		}
		for _, l := range def.lines {
			if def.fn.Code.At(l.pc) != nil {
				return nil, &peg.Fail{Pos: l.pos, Want: "a point not already defined"}
			}
			def.fn.Code.Set(l.pc, l.instr)
		}
		prog.Funcs[def.fn.Name] = def.fn
	}
	return prog, nil
}

var types = map[string]Type{
	"int":   Int,
	"long":  Long,
	"float": Float,
	"any":   Any,
}

var chunks = map[string]Chunk{
	"int32": Int32,
	"int64": Int64,
	"any64": Any64,
}

var comparisons = map[string]Comparison{
	"eq": Eq,
	"ne": Ne,
	"lt": Lt,
	"le": Le,
	"gt": Gt,
	"ge": Ge,
}

// setDest sets the destination register of a load, call, or operation.
func setDest(r Instruction, dest Reg) Instruction {
	switch r := r.(type) {
	case *Load:
		r.Dest = dest
	case *Call:
		r.Dest = dest
	case *Op:
		r.Dest = dest
	}
	return r
}

func isUint32(text string) bool {
	_, err := strconv.ParseUint(text, 10, 32)
	return err == nil
}

func isInt64(text string) bool {
	_, err := strconv.ParseInt(text, 10, 64)
	return err == nil
}
