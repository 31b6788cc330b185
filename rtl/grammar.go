package rtl

import (
	"strconv"

	"github.com/eaburns/peggy/peg"
)

const (
	_File      int = 0
	_Main      int = 1
	_Func      int = 2
	_Line      int = 3
	_Instr     int = 4
	_Nop       int = 5
	_Return    int = 6
	_Store     int = 7
	_Tailcall  int = 8
	_If        int = 9
	_Assign    int = 10
	_Load      int = 11
	_Call      int = 12
	_Op        int = 13
	_Operation int = 14
	_Chunk     int = 15
	_Addr      int = 16
	_Callee    int = 17
	_Cond      int = 18
	_Regs      int = 19
	_Sig       int = 20
	_Args      int = 21
	_Result    int = 22
	_Type      int = 23
	_Succ      int = 24
	_Point     int = 25
	_Reg       int = 26
	_Num       int = 27
	_Ident     int = 28
	_W         int = 29
	_Eof       int = 30
	__         int = 31
	_Space     int = 32
	_Cmnt      int = 33

	_N int = 34
)

type _Parser struct {
	text     string
	deltaPos [][_N]int32
	deltaErr [][_N]int32
	node     map[_key]*peg.Node
	fail     map[_key]*peg.Fail
	act      map[_key]interface{}
	lastFail int
	data     interface{}
}

type _key struct {
	start int
	rule  int
}

func _NewParser(text string) *_Parser {
	return &_Parser{
		text:     text,
		deltaPos: make([][_N]int32, len(text)+1),
		deltaErr: make([][_N]int32, len(text)+1),
		node:     make(map[_key]*peg.Node),
		fail:     make(map[_key]*peg.Fail),
		act:      make(map[_key]interface{}),
	}
}

func _max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func _memoize(parser *_Parser, rule, start, pos, perr int) (int, int) {
	parser.lastFail = perr
	derr := perr - start
	parser.deltaErr[start][rule] = int32(derr + 1)
	if pos >= 0 {
		dpos := pos - start
		parser.deltaPos[start][rule] = int32(dpos + 1)
		return dpos, derr
	}
	parser.deltaPos[start][rule] = -1
	return -1, derr
}

func _memo(parser *_Parser, rule, start int) (int, int, bool) {
	dp := parser.deltaPos[start][rule]
	if dp == 0 {
		return 0, 0, false
	}
	if dp > 0 {
		dp--
	}
	de := parser.deltaErr[start][rule] - 1
	return int(dp), int(de), true
}

func _failMemo(parser *_Parser, rule, start, errPos int) (int, *peg.Fail) {
	if start > parser.lastFail {
		return -1, &peg.Fail{}
	}
	dp := parser.deltaPos[start][rule]
	de := parser.deltaErr[start][rule]
	if start+int(de-1) < errPos {
		if dp > 0 {
			return start + int(dp-1), &peg.Fail{}
		}
		return -1, &peg.Fail{}
	}
	f := parser.fail[_key{start: start, rule: rule}]
	if dp < 0 && f != nil {
		return -1, f
	}
	if dp > 0 && f != nil {
		return start + int(dp-1), f
	}
	return start, nil
}

func _accept(parser *_Parser, f func(*_Parser, int) (int, int), pos, perr *int) bool {
	dp, de := f(parser, *pos)
	*perr = _max(*perr, *pos+de)
	if dp < 0 {
		return false
	}
	*pos += dp
	return true
}

func _node(parser *_Parser, f func(*_Parser, int) (int, *peg.Node), node *peg.Node, pos *int) bool {
	p, kid := f(parser, *pos)
	if kid == nil {
		return false
	}
	node.Kids = append(node.Kids, kid)
	*pos = p
	return true
}

func _fail(parser *_Parser, f func(*_Parser, int, int) (int, *peg.Fail), errPos int, node *peg.Fail, pos *int) bool {
	p, kid := f(parser, *pos, errPos)
	if kid.Want != "" || len(kid.Kids) > 0 {
		node.Kids = append(node.Kids, kid)
	}
	if p < 0 {
		return false
	}
	*pos = p
	return true
}

func _next(parser *_Parser, pos int) (rune, int) {
	r, w := peg.DecodeRuneInString(parser.text[pos:])
	return r, w
}

func _sub(parser *_Parser, start, end int, kids []*peg.Node) *peg.Node {
	node := &peg.Node{
		Text: parser.text[start:end],
		Kids: make([]*peg.Node, len(kids)),
	}
	copy(node.Kids, kids)
	return node
}

func _leaf(parser *_Parser, start, end int) *peg.Node {
	return &peg.Node{Text: parser.text[start:end]}
}

// A no-op function to mark a variable as used.
func use(interface{}) {}

func _FileAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _File, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// main:Main? funcs:Func* Eof
	// main:Main?
	{
		pos1 := pos
		// Main?
		{
			pos3 := pos
			// Main
			if !_accept(parser, _MainAccepts, &pos, &perr) {
				goto fail4
			}
			goto ok5
		fail4:
			pos = pos3
		ok5:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// funcs:Func*
	{
		pos6 := pos
		// Func*
		for {
			pos8 := pos
			// Func
			if !_accept(parser, _FuncAccepts, &pos, &perr) {
				goto fail10
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[1] = parser.text[pos6:pos]
	}
	// Eof
	if !_accept(parser, _EofAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _File, start, pos, perr)
fail:
	return _memoize(parser, _File, start, -1, perr)
}

func _FileFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _File, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "File",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _File}
	// action
	// main:Main? funcs:Func* Eof
	// main:Main?
	{
		pos1 := pos
		// Main?
		{
			pos3 := pos
			// Main
			if !_fail(parser, _MainFail, errPos, failure, &pos) {
				goto fail4
			}
			goto ok5
		fail4:
			pos = pos3
		ok5:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// funcs:Func*
	{
		pos6 := pos
		// Func*
		for {
			pos8 := pos
			// Func
			if !_fail(parser, _FuncFail, errPos, failure, &pos) {
				goto fail10
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[1] = parser.text[pos6:pos]
	}
	// Eof
	if !_fail(parser, _EofFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _FileAction(parser *_Parser, start int) (int, **file) {
	var labels [2]string
	use(labels)
	var label0 string
	var label1 []*funcDef
	dp := parser.deltaPos[start][_File]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _File}
	n := parser.act[key]
	if n != nil {
		n := n.(*file)
		return start + int(dp-1), &n
	}
	var node *file
	pos := start
	// action
	{
		start0 := pos
		// main:Main? funcs:Func* Eof
		// main:Main?
		{
			pos2 := pos
			// Main?
			{
				pos4 := pos
				// Main
				if p, n := _MainAction(parser, pos); n == nil {
					goto fail5
				} else {
					label0 = *n
					pos = p
				}
				goto ok6
			fail5:
				label0 = ""
				pos = pos4
			ok6:
			}
			labels[0] = parser.text[pos2:pos]
		}
		// funcs:Func*
		{
			pos7 := pos
			// Func*
			for {
				pos9 := pos
				var node10 *funcDef
				// Func
				if p, n := _FuncAction(parser, pos); n == nil {
					goto fail11
				} else {
					node10 = *n
					pos = p
				}
				label1 = append(label1, node10)
				continue
			fail11:
				pos = pos9
				break
			}
			labels[1] = parser.text[pos7:pos]
		}
		// Eof
		if p, n := _EofAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, funcs []*funcDef, main string) *file {
			return &file{main: main, funcs: funcs}
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _MainAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Main, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "main" !W name:Ident
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "main"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "main" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 4
	// !W
	{
		pos2 := pos
		perr4 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// name:Ident
	{
		pos5 := pos
		// Ident
		if !_accept(parser, _IdentAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	return _memoize(parser, _Main, start, pos, perr)
fail:
	return _memoize(parser, _Main, start, -1, perr)
}

func _MainFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Main, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Main",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Main}
	// action
	// _ "main" !W name:Ident
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "main"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "main" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"main\"",
			})
		}
		goto fail
	}
	pos += 4
	// !W
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// name:Ident
	{
		pos5 := pos
		// Ident
		if !_fail(parser, _IdentFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _MainAction(parser *_Parser, start int) (int, *string) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Main]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Main}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// action
	{
		start0 := pos
		// _ "main" !W name:Ident
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "main"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "main" {
			goto fail
		}
		pos += 4
		// !W
		{
			pos3 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// name:Ident
		{
			pos6 := pos
			// Ident
			if p, n := _IdentAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		node = func(
			start, end int, name string) string {
			return string(name)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _FuncAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [7]string
	use(labels)
	if dp, de, ok := _memo(parser, _Func, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// ws:_ "func" !W name:Ident params:Regs sig:Sig _ "stack" !W size:Num _ "entry" !W entry:Point _ "{" lines:Line* _ "}"
	// ws:_
	{
		pos1 := pos
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// "func"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "func" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 4
	// !W
	{
		pos3 := pos
		perr5 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok2
		}
		pos = pos3
		perr = _max(perr5, pos)
		goto fail
	ok2:
		pos = pos3
		perr = perr5
	}
	// name:Ident
	{
		pos6 := pos
		// Ident
		if !_accept(parser, _IdentAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// params:Regs
	{
		pos7 := pos
		// Regs
		if !_accept(parser, _RegsAccepts, &pos, &perr) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	// sig:Sig
	{
		pos8 := pos
		// Sig
		if !_accept(parser, _SigAccepts, &pos, &perr) {
			goto fail
		}
		labels[3] = parser.text[pos8:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "stack"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "stack" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 5
	// !W
	{
		pos10 := pos
		perr12 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok9
		}
		pos = pos10
		perr = _max(perr12, pos)
		goto fail
	ok9:
		pos = pos10
		perr = perr12
	}
	// size:Num
	{
		pos13 := pos
		// Num
		if !_accept(parser, _NumAccepts, &pos, &perr) {
			goto fail
		}
		labels[4] = parser.text[pos13:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "entry"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "entry" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 5
	// !W
	{
		pos15 := pos
		perr17 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok14
		}
		pos = pos15
		perr = _max(perr17, pos)
		goto fail
	ok14:
		pos = pos15
		perr = perr17
	}
	// entry:Point
	{
		pos18 := pos
		// Point
		if !_accept(parser, _PointAccepts, &pos, &perr) {
			goto fail
		}
		labels[5] = parser.text[pos18:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// lines:Line*
	{
		pos19 := pos
		// Line*
		for {
			pos21 := pos
			// Line
			if !_accept(parser, _LineAccepts, &pos, &perr) {
				goto fail23
			}
			continue
		fail23:
			pos = pos21
			break
		}
		labels[6] = parser.text[pos19:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Func, start, pos, perr)
fail:
	return _memoize(parser, _Func, start, -1, perr)
}

func _FuncFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [7]string
	use(labels)
	pos, failure := _failMemo(parser, _Func, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Func",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Func}
	// action
	// ws:_ "func" !W name:Ident params:Regs sig:Sig _ "stack" !W size:Num _ "entry" !W entry:Point _ "{" lines:Line* _ "}"
	// ws:_
	{
		pos1 := pos
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// "func"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "func" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"func\"",
			})
		}
		goto fail
	}
	pos += 4
	// !W
	{
		pos3 := pos
		nkids4 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok2
		}
		pos = pos3
		failure.Kids = failure.Kids[:nkids4]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok2:
		pos = pos3
		failure.Kids = failure.Kids[:nkids4]
	}
	// name:Ident
	{
		pos6 := pos
		// Ident
		if !_fail(parser, _IdentFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// params:Regs
	{
		pos7 := pos
		// Regs
		if !_fail(parser, _RegsFail, errPos, failure, &pos) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	// sig:Sig
	{
		pos8 := pos
		// Sig
		if !_fail(parser, _SigFail, errPos, failure, &pos) {
			goto fail
		}
		labels[3] = parser.text[pos8:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "stack"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "stack" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"stack\"",
			})
		}
		goto fail
	}
	pos += 5
	// !W
	{
		pos10 := pos
		nkids11 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok9
		}
		pos = pos10
		failure.Kids = failure.Kids[:nkids11]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok9:
		pos = pos10
		failure.Kids = failure.Kids[:nkids11]
	}
	// size:Num
	{
		pos13 := pos
		// Num
		if !_fail(parser, _NumFail, errPos, failure, &pos) {
			goto fail
		}
		labels[4] = parser.text[pos13:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "entry"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "entry" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"entry\"",
			})
		}
		goto fail
	}
	pos += 5
	// !W
	{
		pos15 := pos
		nkids16 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok14
		}
		pos = pos15
		failure.Kids = failure.Kids[:nkids16]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok14:
		pos = pos15
		failure.Kids = failure.Kids[:nkids16]
	}
	// entry:Point
	{
		pos18 := pos
		// Point
		if !_fail(parser, _PointFail, errPos, failure, &pos) {
			goto fail
		}
		labels[5] = parser.text[pos18:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"{\"",
			})
		}
		goto fail
	}
	pos++
	// lines:Line*
	{
		pos19 := pos
		// Line*
		for {
			pos21 := pos
			// Line
			if !_fail(parser, _LineFail, errPos, failure, &pos) {
				goto fail23
			}
			continue
		fail23:
			pos = pos21
			break
		}
		labels[6] = parser.text[pos19:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"}\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _FuncAction(parser *_Parser, start int) (int, **funcDef) {
	var labels [7]string
	use(labels)
	var label0 string
	var label1 string
	var label2 []Reg
	var label3 Signature
	var label4 int64
	var label5 Point
	var label6 []*lineDef
	dp := parser.deltaPos[start][_Func]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Func}
	n := parser.act[key]
	if n != nil {
		n := n.(*funcDef)
		return start + int(dp-1), &n
	}
	var node *funcDef
	pos := start
	// action
	{
		start0 := pos
		// ws:_ "func" !W name:Ident params:Regs sig:Sig _ "stack" !W size:Num _ "entry" !W entry:Point _ "{" lines:Line* _ "}"
		// ws:_
		{
			pos2 := pos
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// "func"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "func" {
			goto fail
		}
		pos += 4
		// !W
		{
			pos4 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok3
			} else {
				pos = p
			}
			pos = pos4
			goto fail
		ok3:
			pos = pos4
		}
		// name:Ident
		{
			pos7 := pos
			// Ident
			if p, n := _IdentAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos7:pos]
		}
		// params:Regs
		{
			pos8 := pos
			// Regs
			if p, n := _RegsAction(parser, pos); n == nil {
				goto fail
			} else {
				label2 = *n
				pos = p
			}
			labels[2] = parser.text[pos8:pos]
		}
		// sig:Sig
		{
			pos9 := pos
			// Sig
			if p, n := _SigAction(parser, pos); n == nil {
				goto fail
			} else {
				label3 = *n
				pos = p
			}
			labels[3] = parser.text[pos9:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "stack"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "stack" {
			goto fail
		}
		pos += 5
		// !W
		{
			pos11 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok10
			} else {
				pos = p
			}
			pos = pos11
			goto fail
		ok10:
			pos = pos11
		}
		// size:Num
		{
			pos14 := pos
			// Num
			if p, n := _NumAction(parser, pos); n == nil {
				goto fail
			} else {
				label4 = *n
				pos = p
			}
			labels[4] = parser.text[pos14:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "entry"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "entry" {
			goto fail
		}
		pos += 5
		// !W
		{
			pos16 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok15
			} else {
				pos = p
			}
			pos = pos16
			goto fail
		ok15:
			pos = pos16
		}
		// entry:Point
		{
			pos19 := pos
			// Point
			if p, n := _PointAction(parser, pos); n == nil {
				goto fail
			} else {
				label5 = *n
				pos = p
			}
			labels[5] = parser.text[pos19:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "{"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
			goto fail
		}
		pos++
		// lines:Line*
		{
			pos20 := pos
			// Line*
			for {
				pos22 := pos
				var node23 *lineDef
				// Line
				if p, n := _LineAction(parser, pos); n == nil {
					goto fail24
				} else {
					node23 = *n
					pos = p
				}
				label6 = append(label6, node23)
				continue
			fail24:
				pos = pos22
				break
			}
			labels[6] = parser.text[pos20:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "}"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
			goto fail
		}
		pos++
		node = func(
			start, end int, entry Point, lines []*lineDef, name string, params []Reg, sig Signature, size int64, ws string) *funcDef {
			return &funcDef{
				pos:   start + len(ws),
				lines: lines,
				fn: &Function{
					Name:      name,
					Sig:       sig,
					Params:    params,
					StackSize: size,
					Entry:     entry,
				},
			}
		}(
			start0, pos, label5, label6, label1, label2, label3, label4, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _LineAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Line, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// ws:_ pc:Point _ ":" instr:Instr
	// ws:_
	{
		pos1 := pos
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// pc:Point
	{
		pos2 := pos
		// Point
		if !_accept(parser, _PointAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos2:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ":"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// instr:Instr
	{
		pos3 := pos
		// Instr
		if !_accept(parser, _InstrAccepts, &pos, &perr) {
			goto fail
		}
		labels[2] = parser.text[pos3:pos]
	}
	return _memoize(parser, _Line, start, pos, perr)
fail:
	return _memoize(parser, _Line, start, -1, perr)
}

func _LineFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Line, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Line",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Line}
	// action
	// ws:_ pc:Point _ ":" instr:Instr
	// ws:_
	{
		pos1 := pos
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// pc:Point
	{
		pos2 := pos
		// Point
		if !_fail(parser, _PointFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos2:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ":"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\":\"",
			})
		}
		goto fail
	}
	pos++
	// instr:Instr
	{
		pos3 := pos
		// Instr
		if !_fail(parser, _InstrFail, errPos, failure, &pos) {
			goto fail
		}
		labels[2] = parser.text[pos3:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _LineAction(parser *_Parser, start int) (int, **lineDef) {
	var labels [3]string
	use(labels)
	var label0 string
	var label1 Point
	var label2 Instruction
	dp := parser.deltaPos[start][_Line]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Line}
	n := parser.act[key]
	if n != nil {
		n := n.(*lineDef)
		return start + int(dp-1), &n
	}
	var node *lineDef
	pos := start
	// action
	{
		start0 := pos
		// ws:_ pc:Point _ ":" instr:Instr
		// ws:_
		{
			pos2 := pos
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// pc:Point
		{
			pos3 := pos
			// Point
			if p, n := _PointAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos3:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ":"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
			goto fail
		}
		pos++
		// instr:Instr
		{
			pos4 := pos
			// Instr
			if p, n := _InstrAction(parser, pos); n == nil {
				goto fail
			} else {
				label2 = *n
				pos = p
			}
			labels[2] = parser.text[pos4:pos]
		}
		node = func(
			start, end int, instr Instruction, pc Point, ws string) *lineDef {
			return &lineDef{pos: start + len(ws), pc: pc, instr: instr}
		}(
			start0, pos, label2, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _InstrAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Instr, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// Nop/Return/Store/Tailcall/If/Assign
	{
		pos3 := pos
		// Nop
		if !_accept(parser, _NopAccepts, &pos, &perr) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// Return
		if !_accept(parser, _ReturnAccepts, &pos, &perr) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos3
		// Store
		if !_accept(parser, _StoreAccepts, &pos, &perr) {
			goto fail6
		}
		goto ok0
	fail6:
		pos = pos3
		// Tailcall
		if !_accept(parser, _TailcallAccepts, &pos, &perr) {
			goto fail7
		}
		goto ok0
	fail7:
		pos = pos3
		// If
		if !_accept(parser, _IfAccepts, &pos, &perr) {
			goto fail8
		}
		goto ok0
	fail8:
		pos = pos3
		// Assign
		if !_accept(parser, _AssignAccepts, &pos, &perr) {
			goto fail9
		}
		goto ok0
	fail9:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Instr, start, pos, perr)
fail:
	return _memoize(parser, _Instr, start, -1, perr)
}

func _InstrFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Instr, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Instr",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Instr}
	// Nop/Return/Store/Tailcall/If/Assign
	{
		pos3 := pos
		// Nop
		if !_fail(parser, _NopFail, errPos, failure, &pos) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// Return
		if !_fail(parser, _ReturnFail, errPos, failure, &pos) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos3
		// Store
		if !_fail(parser, _StoreFail, errPos, failure, &pos) {
			goto fail6
		}
		goto ok0
	fail6:
		pos = pos3
		// Tailcall
		if !_fail(parser, _TailcallFail, errPos, failure, &pos) {
			goto fail7
		}
		goto ok0
	fail7:
		pos = pos3
		// If
		if !_fail(parser, _IfFail, errPos, failure, &pos) {
			goto fail8
		}
		goto ok0
	fail8:
		pos = pos3
		// Assign
		if !_fail(parser, _AssignFail, errPos, failure, &pos) {
			goto fail9
		}
		goto ok0
	fail9:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _InstrAction(parser *_Parser, start int) (int, *Instruction) {
	dp := parser.deltaPos[start][_Instr]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Instr}
	n := parser.act[key]
	if n != nil {
		n := n.(Instruction)
		return start + int(dp-1), &n
	}
	var node Instruction
	pos := start
	// Nop/Return/Store/Tailcall/If/Assign
	{
		pos3 := pos
		var node2 Instruction
		// Nop
		if p, n := _NopAction(parser, pos); n == nil {
			goto fail4
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// Return
		if p, n := _ReturnAction(parser, pos); n == nil {
			goto fail5
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail5:
		node = node2
		pos = pos3
		// Store
		if p, n := _StoreAction(parser, pos); n == nil {
			goto fail6
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail6:
		node = node2
		pos = pos3
		// Tailcall
		if p, n := _TailcallAction(parser, pos); n == nil {
			goto fail7
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail7:
		node = node2
		pos = pos3
		// If
		if p, n := _IfAction(parser, pos); n == nil {
			goto fail8
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail8:
		node = node2
		pos = pos3
		// Assign
		if p, n := _AssignAction(parser, pos); n == nil {
			goto fail9
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail9:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _NopAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Nop, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "nop" !W succ:Succ
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "nop"
	if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "nop" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 3
	// !W
	{
		pos2 := pos
		perr4 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// succ:Succ
	{
		pos5 := pos
		// Succ
		if !_accept(parser, _SuccAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	return _memoize(parser, _Nop, start, pos, perr)
fail:
	return _memoize(parser, _Nop, start, -1, perr)
}

func _NopFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Nop, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Nop",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Nop}
	// action
	// _ "nop" !W succ:Succ
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "nop"
	if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "nop" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"nop\"",
			})
		}
		goto fail
	}
	pos += 3
	// !W
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// succ:Succ
	{
		pos5 := pos
		// Succ
		if !_fail(parser, _SuccFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _NopAction(parser *_Parser, start int) (int, *Instruction) {
	var labels [1]string
	use(labels)
	var label0 Point
	dp := parser.deltaPos[start][_Nop]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Nop}
	n := parser.act[key]
	if n != nil {
		n := n.(Instruction)
		return start + int(dp-1), &n
	}
	var node Instruction
	pos := start
	// action
	{
		start0 := pos
		// _ "nop" !W succ:Succ
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "nop"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "nop" {
			goto fail
		}
		pos += 3
		// !W
		{
			pos3 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// succ:Succ
		{
			pos6 := pos
			// Succ
			if p, n := _SuccAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		node = func(
			start, end int, succ Point) Instruction {
			return Instruction(&Nop{Succ: succ})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ReturnAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Return, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "return" !W arg:Reg?
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "return"
	if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "return" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 6
	// !W
	{
		pos2 := pos
		perr4 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// arg:Reg?
	{
		pos5 := pos
		// Reg?
		{
			pos7 := pos
			// Reg
			if !_accept(parser, _RegAccepts, &pos, &perr) {
				goto fail8
			}
			goto ok9
		fail8:
			pos = pos7
		ok9:
		}
		labels[0] = parser.text[pos5:pos]
	}
	return _memoize(parser, _Return, start, pos, perr)
fail:
	return _memoize(parser, _Return, start, -1, perr)
}

func _ReturnFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Return, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Return",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Return}
	// action
	// _ "return" !W arg:Reg?
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "return"
	if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "return" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"return\"",
			})
		}
		goto fail
	}
	pos += 6
	// !W
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// arg:Reg?
	{
		pos5 := pos
		// Reg?
		{
			pos7 := pos
			// Reg
			if !_fail(parser, _RegFail, errPos, failure, &pos) {
				goto fail8
			}
			goto ok9
		fail8:
			pos = pos7
		ok9:
		}
		labels[0] = parser.text[pos5:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ReturnAction(parser *_Parser, start int) (int, *Instruction) {
	var labels [1]string
	use(labels)
	var label0 *Reg
	dp := parser.deltaPos[start][_Return]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Return}
	n := parser.act[key]
	if n != nil {
		n := n.(Instruction)
		return start + int(dp-1), &n
	}
	var node Instruction
	pos := start
	// action
	{
		start0 := pos
		// _ "return" !W arg:Reg?
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "return"
		if len(parser.text[pos:]) < 6 || parser.text[pos:pos+6] != "return" {
			goto fail
		}
		pos += 6
		// !W
		{
			pos3 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// arg:Reg?
		{
			pos6 := pos
			// Reg?
			{
				pos8 := pos
				label0 = new(Reg)
				// Reg
				if p, n := _RegAction(parser, pos); n == nil {
					goto fail9
				} else {
					*label0 = *n
					pos = p
				}
				goto ok10
			fail9:
				label0 = nil
				pos = pos8
			ok10:
			}
			labels[0] = parser.text[pos6:pos]
		}
		node = func(
			start, end int, arg *Reg) Instruction {
			return Instruction(&Return{Arg: arg})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _StoreAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [5]string
	use(labels)
	if dp, de, ok := _memo(parser, _Store, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "store" !W chunk:Chunk addr:Addr args:Regs _ "," src:Reg succ:Succ
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "store"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "store" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 5
	// !W
	{
		pos2 := pos
		perr4 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// chunk:Chunk
	{
		pos5 := pos
		// Chunk
		if !_accept(parser, _ChunkAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// addr:Addr
	{
		pos6 := pos
		// Addr
		if !_accept(parser, _AddrAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// args:Regs
	{
		pos7 := pos
		// Regs
		if !_accept(parser, _RegsAccepts, &pos, &perr) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ","
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// src:Reg
	{
		pos8 := pos
		// Reg
		if !_accept(parser, _RegAccepts, &pos, &perr) {
			goto fail
		}
		labels[3] = parser.text[pos8:pos]
	}
	// succ:Succ
	{
		pos9 := pos
		// Succ
		if !_accept(parser, _SuccAccepts, &pos, &perr) {
			goto fail
		}
		labels[4] = parser.text[pos9:pos]
	}
	return _memoize(parser, _Store, start, pos, perr)
fail:
	return _memoize(parser, _Store, start, -1, perr)
}

func _StoreFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [5]string
	use(labels)
	pos, failure := _failMemo(parser, _Store, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Store",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Store}
	// action
	// _ "store" !W chunk:Chunk addr:Addr args:Regs _ "," src:Reg succ:Succ
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "store"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "store" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"store\"",
			})
		}
		goto fail
	}
	pos += 5
	// !W
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// chunk:Chunk
	{
		pos5 := pos
		// Chunk
		if !_fail(parser, _ChunkFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// addr:Addr
	{
		pos6 := pos
		// Addr
		if !_fail(parser, _AddrFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// args:Regs
	{
		pos7 := pos
		// Regs
		if !_fail(parser, _RegsFail, errPos, failure, &pos) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ","
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\",\"",
			})
		}
		goto fail
	}
	pos++
	// src:Reg
	{
		pos8 := pos
		// Reg
		if !_fail(parser, _RegFail, errPos, failure, &pos) {
			goto fail
		}
		labels[3] = parser.text[pos8:pos]
	}
	// succ:Succ
	{
		pos9 := pos
		// Succ
		if !_fail(parser, _SuccFail, errPos, failure, &pos) {
			goto fail
		}
		labels[4] = parser.text[pos9:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _StoreAction(parser *_Parser, start int) (int, *Instruction) {
	var labels [5]string
	use(labels)
	var label0 Chunk
	var label1 Addressing
	var label2 []Reg
	var label3 Reg
	var label4 Point
	dp := parser.deltaPos[start][_Store]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Store}
	n := parser.act[key]
	if n != nil {
		n := n.(Instruction)
		return start + int(dp-1), &n
	}
	var node Instruction
	pos := start
	// action
	{
		start0 := pos
		// _ "store" !W chunk:Chunk addr:Addr args:Regs _ "," src:Reg succ:Succ
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "store"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "store" {
			goto fail
		}
		pos += 5
		// !W
		{
			pos3 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// chunk:Chunk
		{
			pos6 := pos
			// Chunk
			if p, n := _ChunkAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// addr:Addr
		{
			pos7 := pos
			// Addr
			if p, n := _AddrAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos7:pos]
		}
		// args:Regs
		{
			pos8 := pos
			// Regs
			if p, n := _RegsAction(parser, pos); n == nil {
				goto fail
			} else {
				label2 = *n
				pos = p
			}
			labels[2] = parser.text[pos8:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			goto fail
		}
		pos++
		// src:Reg
		{
			pos9 := pos
			// Reg
			if p, n := _RegAction(parser, pos); n == nil {
				goto fail
			} else {
				label3 = *n
				pos = p
			}
			labels[3] = parser.text[pos9:pos]
		}
		// succ:Succ
		{
			pos10 := pos
			// Succ
			if p, n := _SuccAction(parser, pos); n == nil {
				goto fail
			} else {
				label4 = *n
				pos = p
			}
			labels[4] = parser.text[pos10:pos]
		}
		node = func(
			start, end int, addr Addressing, args []Reg, chunk Chunk, src Reg, succ Point) Instruction {
			return Instruction(&Store{Chunk: chunk, Addr: addr, Args: args, Src: src, Succ: succ})
		}(
			start0, pos, label1, label2, label0, label3, label4)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TailcallAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Tailcall, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "tailcall" !W callee:Callee args:Regs sig:Sig
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "tailcall"
	if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "tailcall" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 8
	// !W
	{
		pos2 := pos
		perr4 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// callee:Callee
	{
		pos5 := pos
		// Callee
		if !_accept(parser, _CalleeAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// args:Regs
	{
		pos6 := pos
		// Regs
		if !_accept(parser, _RegsAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// sig:Sig
	{
		pos7 := pos
		// Sig
		if !_accept(parser, _SigAccepts, &pos, &perr) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	return _memoize(parser, _Tailcall, start, pos, perr)
fail:
	return _memoize(parser, _Tailcall, start, -1, perr)
}

func _TailcallFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Tailcall, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Tailcall",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Tailcall}
	// action
	// _ "tailcall" !W callee:Callee args:Regs sig:Sig
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "tailcall"
	if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "tailcall" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"tailcall\"",
			})
		}
		goto fail
	}
	pos += 8
	// !W
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// callee:Callee
	{
		pos5 := pos
		// Callee
		if !_fail(parser, _CalleeFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// args:Regs
	{
		pos6 := pos
		// Regs
		if !_fail(parser, _RegsFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// sig:Sig
	{
		pos7 := pos
		// Sig
		if !_fail(parser, _SigFail, errPos, failure, &pos) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TailcallAction(parser *_Parser, start int) (int, *Instruction) {
	var labels [3]string
	use(labels)
	var label0 Callee
	var label1 []Reg
	var label2 Signature
	dp := parser.deltaPos[start][_Tailcall]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Tailcall}
	n := parser.act[key]
	if n != nil {
		n := n.(Instruction)
		return start + int(dp-1), &n
	}
	var node Instruction
	pos := start
	// action
	{
		start0 := pos
		// _ "tailcall" !W callee:Callee args:Regs sig:Sig
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "tailcall"
		if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "tailcall" {
			goto fail
		}
		pos += 8
		// !W
		{
			pos3 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// callee:Callee
		{
			pos6 := pos
			// Callee
			if p, n := _CalleeAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// args:Regs
		{
			pos7 := pos
			// Regs
			if p, n := _RegsAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos7:pos]
		}
		// sig:Sig
		{
			pos8 := pos
			// Sig
			if p, n := _SigAction(parser, pos); n == nil {
				goto fail
			} else {
				label2 = *n
				pos = p
			}
			labels[2] = parser.text[pos8:pos]
		}
		node = func(
			start, end int, args []Reg, callee Callee, sig Signature) Instruction {
			return Instruction(&Tailcall{Sig: sig, Callee: callee, Args: args})
		}(
			start0, pos, label1, label0, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _IfAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [4]string
	use(labels)
	if dp, de, ok := _memo(parser, _If, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "if" !W cond:Cond args:Regs ifso:Succ _ "," ifnot:Point
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "if"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "if" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 2
	// !W
	{
		pos2 := pos
		perr4 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// cond:Cond
	{
		pos5 := pos
		// Cond
		if !_accept(parser, _CondAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// args:Regs
	{
		pos6 := pos
		// Regs
		if !_accept(parser, _RegsAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// ifso:Succ
	{
		pos7 := pos
		// Succ
		if !_accept(parser, _SuccAccepts, &pos, &perr) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ","
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// ifnot:Point
	{
		pos8 := pos
		// Point
		if !_accept(parser, _PointAccepts, &pos, &perr) {
			goto fail
		}
		labels[3] = parser.text[pos8:pos]
	}
	return _memoize(parser, _If, start, pos, perr)
fail:
	return _memoize(parser, _If, start, -1, perr)
}

func _IfFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [4]string
	use(labels)
	pos, failure := _failMemo(parser, _If, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "If",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _If}
	// action
	// _ "if" !W cond:Cond args:Regs ifso:Succ _ "," ifnot:Point
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "if"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "if" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"if\"",
			})
		}
		goto fail
	}
	pos += 2
	// !W
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// cond:Cond
	{
		pos5 := pos
		// Cond
		if !_fail(parser, _CondFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// args:Regs
	{
		pos6 := pos
		// Regs
		if !_fail(parser, _RegsFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// ifso:Succ
	{
		pos7 := pos
		// Succ
		if !_fail(parser, _SuccFail, errPos, failure, &pos) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ","
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\",\"",
			})
		}
		goto fail
	}
	pos++
	// ifnot:Point
	{
		pos8 := pos
		// Point
		if !_fail(parser, _PointFail, errPos, failure, &pos) {
			goto fail
		}
		labels[3] = parser.text[pos8:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _IfAction(parser *_Parser, start int) (int, *Instruction) {
	var labels [4]string
	use(labels)
	var label0 Condition
	var label1 []Reg
	var label2 Point
	var label3 Point
	dp := parser.deltaPos[start][_If]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _If}
	n := parser.act[key]
	if n != nil {
		n := n.(Instruction)
		return start + int(dp-1), &n
	}
	var node Instruction
	pos := start
	// action
	{
		start0 := pos
		// _ "if" !W cond:Cond args:Regs ifso:Succ _ "," ifnot:Point
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "if"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "if" {
			goto fail
		}
		pos += 2
		// !W
		{
			pos3 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// cond:Cond
		{
			pos6 := pos
			// Cond
			if p, n := _CondAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// args:Regs
		{
			pos7 := pos
			// Regs
			if p, n := _RegsAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos7:pos]
		}
		// ifso:Succ
		{
			pos8 := pos
			// Succ
			if p, n := _SuccAction(parser, pos); n == nil {
				goto fail
			} else {
				label2 = *n
				pos = p
			}
			labels[2] = parser.text[pos8:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ","
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
			goto fail
		}
		pos++
		// ifnot:Point
		{
			pos9 := pos
			// Point
			if p, n := _PointAction(parser, pos); n == nil {
				goto fail
			} else {
				label3 = *n
				pos = p
			}
			labels[3] = parser.text[pos9:pos]
		}
		node = func(
			start, end int, args []Reg, cond Condition, ifnot Point, ifso Point) Instruction {
			return Instruction(&Cond{Cond: cond, Args: args, IfTrue: ifso, IfFalse: ifnot})
		}(
			start0, pos, label1, label0, label3, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _AssignAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Assign, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// dest:Reg _ "=" rhs:(Load/Call/Op)
	// dest:Reg
	{
		pos1 := pos
		// Reg
		if !_accept(parser, _RegAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "="
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "=" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// rhs:(Load/Call/Op)
	{
		pos2 := pos
		// (Load/Call/Op)
		// Load/Call/Op
		{
			pos6 := pos
			// Load
			if !_accept(parser, _LoadAccepts, &pos, &perr) {
				goto fail7
			}
			goto ok3
		fail7:
			pos = pos6
			// Call
			if !_accept(parser, _CallAccepts, &pos, &perr) {
				goto fail8
			}
			goto ok3
		fail8:
			pos = pos6
			// Op
			if !_accept(parser, _OpAccepts, &pos, &perr) {
				goto fail9
			}
			goto ok3
		fail9:
			pos = pos6
			goto fail
		ok3:
		}
		labels[1] = parser.text[pos2:pos]
	}
	return _memoize(parser, _Assign, start, pos, perr)
fail:
	return _memoize(parser, _Assign, start, -1, perr)
}

func _AssignFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Assign, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Assign",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Assign}
	// action
	// dest:Reg _ "=" rhs:(Load/Call/Op)
	// dest:Reg
	{
		pos1 := pos
		// Reg
		if !_fail(parser, _RegFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "="
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "=" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"=\"",
			})
		}
		goto fail
	}
	pos++
	// rhs:(Load/Call/Op)
	{
		pos2 := pos
		// (Load/Call/Op)
		// Load/Call/Op
		{
			pos6 := pos
			// Load
			if !_fail(parser, _LoadFail, errPos, failure, &pos) {
				goto fail7
			}
			goto ok3
		fail7:
			pos = pos6
			// Call
			if !_fail(parser, _CallFail, errPos, failure, &pos) {
				goto fail8
			}
			goto ok3
		fail8:
			pos = pos6
			// Op
			if !_fail(parser, _OpFail, errPos, failure, &pos) {
				goto fail9
			}
			goto ok3
		fail9:
			pos = pos6
			goto fail
		ok3:
		}
		labels[1] = parser.text[pos2:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _AssignAction(parser *_Parser, start int) (int, *Instruction) {
	var labels [2]string
	use(labels)
	var label0 Reg
	var label1 Instruction
	dp := parser.deltaPos[start][_Assign]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Assign}
	n := parser.act[key]
	if n != nil {
		n := n.(Instruction)
		return start + int(dp-1), &n
	}
	var node Instruction
	pos := start
	// action
	{
		start0 := pos
		// dest:Reg _ "=" rhs:(Load/Call/Op)
		// dest:Reg
		{
			pos2 := pos
			// Reg
			if p, n := _RegAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "="
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "=" {
			goto fail
		}
		pos++
		// rhs:(Load/Call/Op)
		{
			pos3 := pos
			// (Load/Call/Op)
			// Load/Call/Op
			{
				pos7 := pos
				var node6 Instruction
				// Load
				if p, n := _LoadAction(parser, pos); n == nil {
					goto fail8
				} else {
					label1 = *n
					pos = p
				}
				goto ok4
			fail8:
				label1 = node6
				pos = pos7
				// Call
				if p, n := _CallAction(parser, pos); n == nil {
					goto fail9
				} else {
					label1 = *n
					pos = p
				}
				goto ok4
			fail9:
				label1 = node6
				pos = pos7
				// Op
				if p, n := _OpAction(parser, pos); n == nil {
					goto fail10
				} else {
					label1 = *n
					pos = p
				}
				goto ok4
			fail10:
				label1 = node6
				pos = pos7
				goto fail
			ok4:
			}
			labels[1] = parser.text[pos3:pos]
		}
		node = func(
			start, end int, dest Reg, rhs Instruction) Instruction {
			return Instruction(setDest(rhs, dest))
		}(
			start0, pos, label0, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _LoadAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [4]string
	use(labels)
	if dp, de, ok := _memo(parser, _Load, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "load" !W chunk:Chunk addr:Addr args:Regs succ:Succ
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "load"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "load" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 4
	// !W
	{
		pos2 := pos
		perr4 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// chunk:Chunk
	{
		pos5 := pos
		// Chunk
		if !_accept(parser, _ChunkAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// addr:Addr
	{
		pos6 := pos
		// Addr
		if !_accept(parser, _AddrAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// args:Regs
	{
		pos7 := pos
		// Regs
		if !_accept(parser, _RegsAccepts, &pos, &perr) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	// succ:Succ
	{
		pos8 := pos
		// Succ
		if !_accept(parser, _SuccAccepts, &pos, &perr) {
			goto fail
		}
		labels[3] = parser.text[pos8:pos]
	}
	return _memoize(parser, _Load, start, pos, perr)
fail:
	return _memoize(parser, _Load, start, -1, perr)
}

func _LoadFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [4]string
	use(labels)
	pos, failure := _failMemo(parser, _Load, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Load",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Load}
	// action
	// _ "load" !W chunk:Chunk addr:Addr args:Regs succ:Succ
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "load"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "load" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"load\"",
			})
		}
		goto fail
	}
	pos += 4
	// !W
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// chunk:Chunk
	{
		pos5 := pos
		// Chunk
		if !_fail(parser, _ChunkFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// addr:Addr
	{
		pos6 := pos
		// Addr
		if !_fail(parser, _AddrFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// args:Regs
	{
		pos7 := pos
		// Regs
		if !_fail(parser, _RegsFail, errPos, failure, &pos) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	// succ:Succ
	{
		pos8 := pos
		// Succ
		if !_fail(parser, _SuccFail, errPos, failure, &pos) {
			goto fail
		}
		labels[3] = parser.text[pos8:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _LoadAction(parser *_Parser, start int) (int, *Instruction) {
	var labels [4]string
	use(labels)
	var label0 Chunk
	var label1 Addressing
	var label2 []Reg
	var label3 Point
	dp := parser.deltaPos[start][_Load]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Load}
	n := parser.act[key]
	if n != nil {
		n := n.(Instruction)
		return start + int(dp-1), &n
	}
	var node Instruction
	pos := start
	// action
	{
		start0 := pos
		// _ "load" !W chunk:Chunk addr:Addr args:Regs succ:Succ
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "load"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "load" {
			goto fail
		}
		pos += 4
		// !W
		{
			pos3 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// chunk:Chunk
		{
			pos6 := pos
			// Chunk
			if p, n := _ChunkAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// addr:Addr
		{
			pos7 := pos
			// Addr
			if p, n := _AddrAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos7:pos]
		}
		// args:Regs
		{
			pos8 := pos
			// Regs
			if p, n := _RegsAction(parser, pos); n == nil {
				goto fail
			} else {
				label2 = *n
				pos = p
			}
			labels[2] = parser.text[pos8:pos]
		}
		// succ:Succ
		{
			pos9 := pos
			// Succ
			if p, n := _SuccAction(parser, pos); n == nil {
				goto fail
			} else {
				label3 = *n
				pos = p
			}
			labels[3] = parser.text[pos9:pos]
		}
		node = func(
			start, end int, addr Addressing, args []Reg, chunk Chunk, succ Point) Instruction {
			return Instruction(&Load{Chunk: chunk, Addr: addr, Args: args, Succ: succ})
		}(
			start0, pos, label1, label2, label0, label3)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _CallAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [4]string
	use(labels)
	if dp, de, ok := _memo(parser, _Call, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "call" !W callee:Callee args:Regs sig:Sig succ:Succ
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "call"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "call" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 4
	// !W
	{
		pos2 := pos
		perr4 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// callee:Callee
	{
		pos5 := pos
		// Callee
		if !_accept(parser, _CalleeAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// args:Regs
	{
		pos6 := pos
		// Regs
		if !_accept(parser, _RegsAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// sig:Sig
	{
		pos7 := pos
		// Sig
		if !_accept(parser, _SigAccepts, &pos, &perr) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	// succ:Succ
	{
		pos8 := pos
		// Succ
		if !_accept(parser, _SuccAccepts, &pos, &perr) {
			goto fail
		}
		labels[3] = parser.text[pos8:pos]
	}
	return _memoize(parser, _Call, start, pos, perr)
fail:
	return _memoize(parser, _Call, start, -1, perr)
}

func _CallFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [4]string
	use(labels)
	pos, failure := _failMemo(parser, _Call, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Call",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Call}
	// action
	// _ "call" !W callee:Callee args:Regs sig:Sig succ:Succ
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "call"
	if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "call" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"call\"",
			})
		}
		goto fail
	}
	pos += 4
	// !W
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// callee:Callee
	{
		pos5 := pos
		// Callee
		if !_fail(parser, _CalleeFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos5:pos]
	}
	// args:Regs
	{
		pos6 := pos
		// Regs
		if !_fail(parser, _RegsFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// sig:Sig
	{
		pos7 := pos
		// Sig
		if !_fail(parser, _SigFail, errPos, failure, &pos) {
			goto fail
		}
		labels[2] = parser.text[pos7:pos]
	}
	// succ:Succ
	{
		pos8 := pos
		// Succ
		if !_fail(parser, _SuccFail, errPos, failure, &pos) {
			goto fail
		}
		labels[3] = parser.text[pos8:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CallAction(parser *_Parser, start int) (int, *Instruction) {
	var labels [4]string
	use(labels)
	var label0 Callee
	var label1 []Reg
	var label2 Signature
	var label3 Point
	dp := parser.deltaPos[start][_Call]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Call}
	n := parser.act[key]
	if n != nil {
		n := n.(Instruction)
		return start + int(dp-1), &n
	}
	var node Instruction
	pos := start
	// action
	{
		start0 := pos
		// _ "call" !W callee:Callee args:Regs sig:Sig succ:Succ
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "call"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "call" {
			goto fail
		}
		pos += 4
		// !W
		{
			pos3 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// callee:Callee
		{
			pos6 := pos
			// Callee
			if p, n := _CalleeAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos6:pos]
		}
		// args:Regs
		{
			pos7 := pos
			// Regs
			if p, n := _RegsAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos7:pos]
		}
		// sig:Sig
		{
			pos8 := pos
			// Sig
			if p, n := _SigAction(parser, pos); n == nil {
				goto fail
			} else {
				label2 = *n
				pos = p
			}
			labels[2] = parser.text[pos8:pos]
		}
		// succ:Succ
		{
			pos9 := pos
			// Succ
			if p, n := _SuccAction(parser, pos); n == nil {
				goto fail
			} else {
				label3 = *n
				pos = p
			}
			labels[3] = parser.text[pos9:pos]
		}
		node = func(
			start, end int, args []Reg, callee Callee, sig Signature, succ Point) Instruction {
			return Instruction(&Call{Sig: sig, Callee: callee, Args: args, Succ: succ})
		}(
			start0, pos, label1, label0, label2, label3)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _OpAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Op, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// op:Operation args:Regs succ:Succ
	// op:Operation
	{
		pos1 := pos
		// Operation
		if !_accept(parser, _OperationAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// args:Regs
	{
		pos2 := pos
		// Regs
		if !_accept(parser, _RegsAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos2:pos]
	}
	// succ:Succ
	{
		pos3 := pos
		// Succ
		if !_accept(parser, _SuccAccepts, &pos, &perr) {
			goto fail
		}
		labels[2] = parser.text[pos3:pos]
	}
	return _memoize(parser, _Op, start, pos, perr)
fail:
	return _memoize(parser, _Op, start, -1, perr)
}

func _OpFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Op, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Op",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Op}
	// action
	// op:Operation args:Regs succ:Succ
	// op:Operation
	{
		pos1 := pos
		// Operation
		if !_fail(parser, _OperationFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// args:Regs
	{
		pos2 := pos
		// Regs
		if !_fail(parser, _RegsFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos2:pos]
	}
	// succ:Succ
	{
		pos3 := pos
		// Succ
		if !_fail(parser, _SuccFail, errPos, failure, &pos) {
			goto fail
		}
		labels[2] = parser.text[pos3:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _OpAction(parser *_Parser, start int) (int, *Instruction) {
	var labels [3]string
	use(labels)
	var label0 Operation
	var label1 []Reg
	var label2 Point
	dp := parser.deltaPos[start][_Op]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Op}
	n := parser.act[key]
	if n != nil {
		n := n.(Instruction)
		return start + int(dp-1), &n
	}
	var node Instruction
	pos := start
	// action
	{
		start0 := pos
		// op:Operation args:Regs succ:Succ
		// op:Operation
		{
			pos2 := pos
			// Operation
			if p, n := _OperationAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// args:Regs
		{
			pos3 := pos
			// Regs
			if p, n := _RegsAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos3:pos]
		}
		// succ:Succ
		{
			pos4 := pos
			// Succ
			if p, n := _SuccAction(parser, pos); n == nil {
				goto fail
			} else {
				label2 = *n
				pos = p
			}
			labels[2] = parser.text[pos4:pos]
		}
		node = func(
			start, end int, args []Reg, op Operation, succ Point) Instruction {
			return Instruction(&Op{Op: op, Args: args, Succ: succ})
		}(
			start0, pos, label1, label0, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _OperationAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [4]string
	use(labels)
	if dp, de, ok := _memo(parser, _Operation, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// _ "move" !W {…}/_ "add" _ "[" addimm:Num _ "]" {…}/_ "add" !W {…}/_ "sub" !W {…}/_ "mul" !W {…}/_ "int" _ "[" intimm:Num _ "]" {…}/_ "long" _ "[" longimm:Num _ "]" {…}/_ "funcaddr" _ "[" sym:Ident _ "]" {…}
	{
		pos3 := pos
		// action
		// _ "move" !W
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "move"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "move" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos += 4
		// !W
		{
			pos7 := pos
			perr9 := perr
			// W
			if !_accept(parser, _WAccepts, &pos, &perr) {
				goto ok6
			}
			pos = pos7
			perr = _max(perr9, pos)
			goto fail4
		ok6:
			pos = pos7
			perr = perr9
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ "add" _ "[" addimm:Num _ "]"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail10
		}
		// "add"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "add" {
			perr = _max(perr, pos)
			goto fail10
		}
		pos += 3
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail10
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			perr = _max(perr, pos)
			goto fail10
		}
		pos++
		// addimm:Num
		{
			pos12 := pos
			// Num
			if !_accept(parser, _NumAccepts, &pos, &perr) {
				goto fail10
			}
			labels[0] = parser.text[pos12:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail10
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			perr = _max(perr, pos)
			goto fail10
		}
		pos++
		goto ok0
	fail10:
		pos = pos3
		// action
		// _ "add" !W
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail13
		}
		// "add"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "add" {
			perr = _max(perr, pos)
			goto fail13
		}
		pos += 3
		// !W
		{
			pos16 := pos
			perr18 := perr
			// W
			if !_accept(parser, _WAccepts, &pos, &perr) {
				goto ok15
			}
			pos = pos16
			perr = _max(perr18, pos)
			goto fail13
		ok15:
			pos = pos16
			perr = perr18
		}
		goto ok0
	fail13:
		pos = pos3
		// action
		// _ "sub" !W
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail19
		}
		// "sub"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "sub" {
			perr = _max(perr, pos)
			goto fail19
		}
		pos += 3
		// !W
		{
			pos22 := pos
			perr24 := perr
			// W
			if !_accept(parser, _WAccepts, &pos, &perr) {
				goto ok21
			}
			pos = pos22
			perr = _max(perr24, pos)
			goto fail19
		ok21:
			pos = pos22
			perr = perr24
		}
		goto ok0
	fail19:
		pos = pos3
		// action
		// _ "mul" !W
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail25
		}
		// "mul"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "mul" {
			perr = _max(perr, pos)
			goto fail25
		}
		pos += 3
		// !W
		{
			pos28 := pos
			perr30 := perr
			// W
			if !_accept(parser, _WAccepts, &pos, &perr) {
				goto ok27
			}
			pos = pos28
			perr = _max(perr30, pos)
			goto fail25
		ok27:
			pos = pos28
			perr = perr30
		}
		goto ok0
	fail25:
		pos = pos3
		// action
		// _ "int" _ "[" intimm:Num _ "]"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail31
		}
		// "int"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "int" {
			perr = _max(perr, pos)
			goto fail31
		}
		pos += 3
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail31
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			perr = _max(perr, pos)
			goto fail31
		}
		pos++
		// intimm:Num
		{
			pos33 := pos
			// Num
			if !_accept(parser, _NumAccepts, &pos, &perr) {
				goto fail31
			}
			labels[1] = parser.text[pos33:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail31
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			perr = _max(perr, pos)
			goto fail31
		}
		pos++
		goto ok0
	fail31:
		pos = pos3
		// action
		// _ "long" _ "[" longimm:Num _ "]"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail34
		}
		// "long"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "long" {
			perr = _max(perr, pos)
			goto fail34
		}
		pos += 4
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail34
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			perr = _max(perr, pos)
			goto fail34
		}
		pos++
		// longimm:Num
		{
			pos36 := pos
			// Num
			if !_accept(parser, _NumAccepts, &pos, &perr) {
				goto fail34
			}
			labels[2] = parser.text[pos36:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail34
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			perr = _max(perr, pos)
			goto fail34
		}
		pos++
		goto ok0
	fail34:
		pos = pos3
		// action
		// _ "funcaddr" _ "[" sym:Ident _ "]"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail37
		}
		// "funcaddr"
		if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "funcaddr" {
			perr = _max(perr, pos)
			goto fail37
		}
		pos += 8
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail37
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			perr = _max(perr, pos)
			goto fail37
		}
		pos++
		// sym:Ident
		{
			pos39 := pos
			// Ident
			if !_accept(parser, _IdentAccepts, &pos, &perr) {
				goto fail37
			}
			labels[3] = parser.text[pos39:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail37
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			perr = _max(perr, pos)
			goto fail37
		}
		pos++
		goto ok0
	fail37:
		pos = pos3
		goto fail
	ok0:
	}
	perr = start
	return _memoize(parser, _Operation, start, pos, perr)
fail:
	return _memoize(parser, _Operation, start, -1, perr)
}

func _OperationFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [4]string
	use(labels)
	pos, failure := _failMemo(parser, _Operation, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Operation",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Operation}
	// _ "move" !W {…}/_ "add" _ "[" addimm:Num _ "]" {…}/_ "add" !W {…}/_ "sub" !W {…}/_ "mul" !W {…}/_ "int" _ "[" intimm:Num _ "]" {…}/_ "long" _ "[" longimm:Num _ "]" {…}/_ "funcaddr" _ "[" sym:Ident _ "]" {…}
	{
		pos3 := pos
		// action
		// _ "move" !W
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "move"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "move" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"move\"",
				})
			}
			goto fail4
		}
		pos += 4
		// !W
		{
			pos7 := pos
			nkids8 := len(failure.Kids)
			// W
			if !_fail(parser, _WFail, errPos, failure, &pos) {
				goto ok6
			}
			pos = pos7
			failure.Kids = failure.Kids[:nkids8]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!W",
				})
			}
			goto fail4
		ok6:
			pos = pos7
			failure.Kids = failure.Kids[:nkids8]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ "add" _ "[" addimm:Num _ "]"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail10
		}
		// "add"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "add" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"add\"",
				})
			}
			goto fail10
		}
		pos += 3
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail10
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"[\"",
				})
			}
			goto fail10
		}
		pos++
		// addimm:Num
		{
			pos12 := pos
			// Num
			if !_fail(parser, _NumFail, errPos, failure, &pos) {
				goto fail10
			}
			labels[0] = parser.text[pos12:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail10
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"]\"",
				})
			}
			goto fail10
		}
		pos++
		goto ok0
	fail10:
		pos = pos3
		// action
		// _ "add" !W
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail13
		}
		// "add"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "add" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"add\"",
				})
			}
			goto fail13
		}
		pos += 3
		// !W
		{
			pos16 := pos
			nkids17 := len(failure.Kids)
			// W
			if !_fail(parser, _WFail, errPos, failure, &pos) {
				goto ok15
			}
			pos = pos16
			failure.Kids = failure.Kids[:nkids17]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!W",
				})
			}
			goto fail13
		ok15:
			pos = pos16
			failure.Kids = failure.Kids[:nkids17]
		}
		goto ok0
	fail13:
		pos = pos3
		// action
		// _ "sub" !W
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail19
		}
		// "sub"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "sub" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"sub\"",
				})
			}
			goto fail19
		}
		pos += 3
		// !W
		{
			pos22 := pos
			nkids23 := len(failure.Kids)
			// W
			if !_fail(parser, _WFail, errPos, failure, &pos) {
				goto ok21
			}
			pos = pos22
			failure.Kids = failure.Kids[:nkids23]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!W",
				})
			}
			goto fail19
		ok21:
			pos = pos22
			failure.Kids = failure.Kids[:nkids23]
		}
		goto ok0
	fail19:
		pos = pos3
		// action
		// _ "mul" !W
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail25
		}
		// "mul"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "mul" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"mul\"",
				})
			}
			goto fail25
		}
		pos += 3
		// !W
		{
			pos28 := pos
			nkids29 := len(failure.Kids)
			// W
			if !_fail(parser, _WFail, errPos, failure, &pos) {
				goto ok27
			}
			pos = pos28
			failure.Kids = failure.Kids[:nkids29]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!W",
				})
			}
			goto fail25
		ok27:
			pos = pos28
			failure.Kids = failure.Kids[:nkids29]
		}
		goto ok0
	fail25:
		pos = pos3
		// action
		// _ "int" _ "[" intimm:Num _ "]"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail31
		}
		// "int"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "int" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"int\"",
				})
			}
			goto fail31
		}
		pos += 3
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail31
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"[\"",
				})
			}
			goto fail31
		}
		pos++
		// intimm:Num
		{
			pos33 := pos
			// Num
			if !_fail(parser, _NumFail, errPos, failure, &pos) {
				goto fail31
			}
			labels[1] = parser.text[pos33:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail31
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"]\"",
				})
			}
			goto fail31
		}
		pos++
		goto ok0
	fail31:
		pos = pos3
		// action
		// _ "long" _ "[" longimm:Num _ "]"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail34
		}
		// "long"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "long" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"long\"",
				})
			}
			goto fail34
		}
		pos += 4
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail34
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"[\"",
				})
			}
			goto fail34
		}
		pos++
		// longimm:Num
		{
			pos36 := pos
			// Num
			if !_fail(parser, _NumFail, errPos, failure, &pos) {
				goto fail34
			}
			labels[2] = parser.text[pos36:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail34
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"]\"",
				})
			}
			goto fail34
		}
		pos++
		goto ok0
	fail34:
		pos = pos3
		// action
		// _ "funcaddr" _ "[" sym:Ident _ "]"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail37
		}
		// "funcaddr"
		if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "funcaddr" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"funcaddr\"",
				})
			}
			goto fail37
		}
		pos += 8
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail37
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"[\"",
				})
			}
			goto fail37
		}
		pos++
		// sym:Ident
		{
			pos39 := pos
			// Ident
			if !_fail(parser, _IdentFail, errPos, failure, &pos) {
				goto fail37
			}
			labels[3] = parser.text[pos39:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail37
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"]\"",
				})
			}
			goto fail37
		}
		pos++
		goto ok0
	fail37:
		pos = pos3
		goto fail
	ok0:
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "an operation"
	parser.fail[key] = failure
	return -1, failure
}

func _OperationAction(parser *_Parser, start int) (int, *Operation) {
	var labels [4]string
	use(labels)
	var label0 int64
	var label1 int64
	var label2 int64
	var label3 string
	dp := parser.deltaPos[start][_Operation]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Operation}
	n := parser.act[key]
	if n != nil {
		n := n.(Operation)
		return start + int(dp-1), &n
	}
	var node Operation
	pos := start
	// _ "move" !W {…}/_ "add" _ "[" addimm:Num _ "]" {…}/_ "add" !W {…}/_ "sub" !W {…}/_ "mul" !W {…}/_ "int" _ "[" intimm:Num _ "]" {…}/_ "long" _ "[" longimm:Num _ "]" {…}/_ "funcaddr" _ "[" sym:Ident _ "]" {…}
	{
		pos3 := pos
		var node2 Operation
		// action
		{
			start5 := pos
			// _ "move" !W
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "move"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "move" {
				goto fail4
			}
			pos += 4
			// !W
			{
				pos8 := pos
				// W
				if p, n := _WAction(parser, pos); n == nil {
					goto ok7
				} else {
					pos = p
				}
				pos = pos8
				goto fail4
			ok7:
				pos = pos8
			}
			node = func(
				start, end int) Operation {
				return Operation{Kind: Move}
			}(
				start5, pos)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start12 := pos
			// _ "add" _ "[" addimm:Num _ "]"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail11
			} else {
				pos = p
			}
			// "add"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "add" {
				goto fail11
			}
			pos += 3
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail11
			} else {
				pos = p
			}
			// "["
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
				goto fail11
			}
			pos++
			// addimm:Num
			{
				pos14 := pos
				// Num
				if p, n := _NumAction(parser, pos); n == nil {
					goto fail11
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos14:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail11
			} else {
				pos = p
			}
			// "]"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
				goto fail11
			}
			pos++
			node = func(
				start, end int, addimm int64) Operation {
				return Operation{Kind: AddImm, Imm: addimm}
			}(
				start12, pos, label0)
		}
		goto ok0
	fail11:
		node = node2
		pos = pos3
		// action
		{
			start16 := pos
			// _ "add" !W
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail15
			} else {
				pos = p
			}
			// "add"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "add" {
				goto fail15
			}
			pos += 3
			// !W
			{
				pos19 := pos
				// W
				if p, n := _WAction(parser, pos); n == nil {
					goto ok18
				} else {
					pos = p
				}
				pos = pos19
				goto fail15
			ok18:
				pos = pos19
			}
			node = func(
				start, end int, addimm int64) Operation {
				return Operation{Kind: Add}
			}(
				start16, pos, label0)
		}
		goto ok0
	fail15:
		node = node2
		pos = pos3
		// action
		{
			start23 := pos
			// _ "sub" !W
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail22
			} else {
				pos = p
			}
			// "sub"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "sub" {
				goto fail22
			}
			pos += 3
			// !W
			{
				pos26 := pos
				// W
				if p, n := _WAction(parser, pos); n == nil {
					goto ok25
				} else {
					pos = p
				}
				pos = pos26
				goto fail22
			ok25:
				pos = pos26
			}
			node = func(
				start, end int, addimm int64) Operation {
				return Operation{Kind: Sub}
			}(
				start23, pos, label0)
		}
		goto ok0
	fail22:
		node = node2
		pos = pos3
		// action
		{
			start30 := pos
			// _ "mul" !W
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail29
			} else {
				pos = p
			}
			// "mul"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "mul" {
				goto fail29
			}
			pos += 3
			// !W
			{
				pos33 := pos
				// W
				if p, n := _WAction(parser, pos); n == nil {
					goto ok32
				} else {
					pos = p
				}
				pos = pos33
				goto fail29
			ok32:
				pos = pos33
			}
			node = func(
				start, end int, addimm int64) Operation {
				return Operation{Kind: Mul}
			}(
				start30, pos, label0)
		}
		goto ok0
	fail29:
		node = node2
		pos = pos3
		// action
		{
			start37 := pos
			// _ "int" _ "[" intimm:Num _ "]"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail36
			} else {
				pos = p
			}
			// "int"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "int" {
				goto fail36
			}
			pos += 3
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail36
			} else {
				pos = p
			}
			// "["
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
				goto fail36
			}
			pos++
			// intimm:Num
			{
				pos39 := pos
				// Num
				if p, n := _NumAction(parser, pos); n == nil {
					goto fail36
				} else {
					label1 = *n
					pos = p
				}
				labels[1] = parser.text[pos39:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail36
			} else {
				pos = p
			}
			// "]"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
				goto fail36
			}
			pos++
			node = func(
				start, end int, addimm int64, intimm int64) Operation {
				return Operation{Kind: IntConst, Imm: intimm}
			}(
				start37, pos, label0, label1)
		}
		goto ok0
	fail36:
		node = node2
		pos = pos3
		// action
		{
			start41 := pos
			// _ "long" _ "[" longimm:Num _ "]"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail40
			} else {
				pos = p
			}
			// "long"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "long" {
				goto fail40
			}
			pos += 4
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail40
			} else {
				pos = p
			}
			// "["
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
				goto fail40
			}
			pos++
			// longimm:Num
			{
				pos43 := pos
				// Num
				if p, n := _NumAction(parser, pos); n == nil {
					goto fail40
				} else {
					label2 = *n
					pos = p
				}
				labels[2] = parser.text[pos43:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail40
			} else {
				pos = p
			}
			// "]"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
				goto fail40
			}
			pos++
			node = func(
				start, end int, addimm int64, intimm int64, longimm int64) Operation {
				return Operation{Kind: LongConst, Imm: longimm}
			}(
				start41, pos, label0, label1, label2)
		}
		goto ok0
	fail40:
		node = node2
		pos = pos3
		// action
		{
			start45 := pos
			// _ "funcaddr" _ "[" sym:Ident _ "]"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail44
			} else {
				pos = p
			}
			// "funcaddr"
			if len(parser.text[pos:]) < 8 || parser.text[pos:pos+8] != "funcaddr" {
				goto fail44
			}
			pos += 8
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail44
			} else {
				pos = p
			}
			// "["
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
				goto fail44
			}
			pos++
			// sym:Ident
			{
				pos47 := pos
				// Ident
				if p, n := _IdentAction(parser, pos); n == nil {
					goto fail44
				} else {
					label3 = *n
					pos = p
				}
				labels[3] = parser.text[pos47:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail44
			} else {
				pos = p
			}
			// "]"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
				goto fail44
			}
			pos++
			node = func(
				start, end int, addimm int64, intimm int64, longimm int64, sym string) Operation {
				return Operation{Kind: FuncAddr, Symbol: sym}
			}(
				start45, pos, label0, label1, label2, label3)
		}
		goto ok0
	fail44:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ChunkAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Chunk, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ name:("int32"/"int64"/"any64") !W
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// name:("int32"/"int64"/"any64")
	{
		pos1 := pos
		// ("int32"/"int64"/"any64")
		// "int32"/"int64"/"any64"
		{
			pos5 := pos
			// "int32"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "int32" {
				perr = _max(perr, pos)
				goto fail6
			}
			pos += 5
			goto ok2
		fail6:
			pos = pos5
			// "int64"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "int64" {
				perr = _max(perr, pos)
				goto fail7
			}
			pos += 5
			goto ok2
		fail7:
			pos = pos5
			// "any64"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "any64" {
				perr = _max(perr, pos)
				goto fail8
			}
			pos += 5
			goto ok2
		fail8:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !W
	{
		pos10 := pos
		perr12 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok9
		}
		pos = pos10
		perr = _max(perr12, pos)
		goto fail
	ok9:
		pos = pos10
		perr = perr12
	}
	perr = start
	return _memoize(parser, _Chunk, start, pos, perr)
fail:
	return _memoize(parser, _Chunk, start, -1, perr)
}

func _ChunkFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Chunk, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Chunk",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Chunk}
	// action
	// _ name:("int32"/"int64"/"any64") !W
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// name:("int32"/"int64"/"any64")
	{
		pos1 := pos
		// ("int32"/"int64"/"any64")
		// "int32"/"int64"/"any64"
		{
			pos5 := pos
			// "int32"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "int32" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"int32\"",
					})
				}
				goto fail6
			}
			pos += 5
			goto ok2
		fail6:
			pos = pos5
			// "int64"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "int64" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"int64\"",
					})
				}
				goto fail7
			}
			pos += 5
			goto ok2
		fail7:
			pos = pos5
			// "any64"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "any64" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"any64\"",
					})
				}
				goto fail8
			}
			pos += 5
			goto ok2
		fail8:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !W
	{
		pos10 := pos
		nkids11 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok9
		}
		pos = pos10
		failure.Kids = failure.Kids[:nkids11]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok9:
		pos = pos10
		failure.Kids = failure.Kids[:nkids11]
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "a memory chunk"
	parser.fail[key] = failure
	return -1, failure
}

func _ChunkAction(parser *_Parser, start int) (int, *Chunk) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Chunk]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Chunk}
	n := parser.act[key]
	if n != nil {
		n := n.(Chunk)
		return start + int(dp-1), &n
	}
	var node Chunk
	pos := start
	// action
	{
		start0 := pos
		// _ name:("int32"/"int64"/"any64") !W
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// name:("int32"/"int64"/"any64")
		{
			pos2 := pos
			// ("int32"/"int64"/"any64")
			// "int32"/"int64"/"any64"
			{
				pos6 := pos
				var node5 string
				// "int32"
				if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "int32" {
					goto fail7
				}
				label0 = parser.text[pos : pos+5]
				pos += 5
				goto ok3
			fail7:
				label0 = node5
				pos = pos6
				// "int64"
				if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "int64" {
					goto fail8
				}
				label0 = parser.text[pos : pos+5]
				pos += 5
				goto ok3
			fail8:
				label0 = node5
				pos = pos6
				// "any64"
				if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "any64" {
					goto fail9
				}
				label0 = parser.text[pos : pos+5]
				pos += 5
				goto ok3
			fail9:
				label0 = node5
				pos = pos6
				goto fail
			ok3:
			}
			labels[0] = parser.text[pos2:pos]
		}
		// !W
		{
			pos11 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok10
			} else {
				pos = p
			}
			pos = pos11
			goto fail
		ok10:
			pos = pos11
		}
		node = func(
			start, end int, name string) Chunk {
			return Chunk(chunks[name])
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _AddrAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Addr, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// _ "indexed" _ "[" iofs:Num _ "]" {…}/_ "stack" _ "[" sofs:Num _ "]" {…}
	{
		pos3 := pos
		// action
		// _ "indexed" _ "[" iofs:Num _ "]"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "indexed"
		if len(parser.text[pos:]) < 7 || parser.text[pos:pos+7] != "indexed" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos += 7
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// iofs:Num
		{
			pos6 := pos
			// Num
			if !_accept(parser, _NumAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ "stack" _ "[" sofs:Num _ "]"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail7
		}
		// "stack"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "stack" {
			perr = _max(perr, pos)
			goto fail7
		}
		pos += 5
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail7
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			perr = _max(perr, pos)
			goto fail7
		}
		pos++
		// sofs:Num
		{
			pos9 := pos
			// Num
			if !_accept(parser, _NumAccepts, &pos, &perr) {
				goto fail7
			}
			labels[1] = parser.text[pos9:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail7
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			perr = _max(perr, pos)
			goto fail7
		}
		pos++
		goto ok0
	fail7:
		pos = pos3
		goto fail
	ok0:
	}
	perr = start
	return _memoize(parser, _Addr, start, pos, perr)
fail:
	return _memoize(parser, _Addr, start, -1, perr)
}

func _AddrFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Addr, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Addr",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Addr}
	// _ "indexed" _ "[" iofs:Num _ "]" {…}/_ "stack" _ "[" sofs:Num _ "]" {…}
	{
		pos3 := pos
		// action
		// _ "indexed" _ "[" iofs:Num _ "]"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "indexed"
		if len(parser.text[pos:]) < 7 || parser.text[pos:pos+7] != "indexed" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"indexed\"",
				})
			}
			goto fail4
		}
		pos += 7
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"[\"",
				})
			}
			goto fail4
		}
		pos++
		// iofs:Num
		{
			pos6 := pos
			// Num
			if !_fail(parser, _NumFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"]\"",
				})
			}
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ "stack" _ "[" sofs:Num _ "]"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail7
		}
		// "stack"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "stack" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"stack\"",
				})
			}
			goto fail7
		}
		pos += 5
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail7
		}
		// "["
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"[\"",
				})
			}
			goto fail7
		}
		pos++
		// sofs:Num
		{
			pos9 := pos
			// Num
			if !_fail(parser, _NumFail, errPos, failure, &pos) {
				goto fail7
			}
			labels[1] = parser.text[pos9:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail7
		}
		// "]"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"]\"",
				})
			}
			goto fail7
		}
		pos++
		goto ok0
	fail7:
		pos = pos3
		goto fail
	ok0:
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "an addressing mode"
	parser.fail[key] = failure
	return -1, failure
}

func _AddrAction(parser *_Parser, start int) (int, *Addressing) {
	var labels [2]string
	use(labels)
	var label0 int64
	var label1 int64
	dp := parser.deltaPos[start][_Addr]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Addr}
	n := parser.act[key]
	if n != nil {
		n := n.(Addressing)
		return start + int(dp-1), &n
	}
	var node Addressing
	pos := start
	// _ "indexed" _ "[" iofs:Num _ "]" {…}/_ "stack" _ "[" sofs:Num _ "]" {…}
	{
		pos3 := pos
		var node2 Addressing
		// action
		{
			start5 := pos
			// _ "indexed" _ "[" iofs:Num _ "]"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "indexed"
			if len(parser.text[pos:]) < 7 || parser.text[pos:pos+7] != "indexed" {
				goto fail4
			}
			pos += 7
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "["
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
				goto fail4
			}
			pos++
			// iofs:Num
			{
				pos7 := pos
				// Num
				if p, n := _NumAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos7:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "]"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
				goto fail4
			}
			pos++
			node = func(
				start, end int, iofs int64) Addressing {
				return Addressing{Kind: Indexed, Ofs: iofs}
			}(
				start5, pos, label0)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start9 := pos
			// _ "stack" _ "[" sofs:Num _ "]"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail8
			} else {
				pos = p
			}
			// "stack"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "stack" {
				goto fail8
			}
			pos += 5
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail8
			} else {
				pos = p
			}
			// "["
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
				goto fail8
			}
			pos++
			// sofs:Num
			{
				pos11 := pos
				// Num
				if p, n := _NumAction(parser, pos); n == nil {
					goto fail8
				} else {
					label1 = *n
					pos = p
				}
				labels[1] = parser.text[pos11:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail8
			} else {
				pos = p
			}
			// "]"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
				goto fail8
			}
			pos++
			node = func(
				start, end int, iofs int64, sofs int64) Addressing {
				return Addressing{Kind: Stack, Ofs: sofs}
			}(
				start9, pos, label0, label1)
		}
		goto ok0
	fail8:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _CalleeAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Callee, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// reg:Reg {…}/sym:Ident {…}
	{
		pos3 := pos
		// action
		// reg:Reg
		{
			pos5 := pos
			// Reg
			if !_accept(parser, _RegAccepts, &pos, &perr) {
				goto fail4
			}
			labels[0] = parser.text[pos5:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// sym:Ident
		{
			pos7 := pos
			// Ident
			if !_accept(parser, _IdentAccepts, &pos, &perr) {
				goto fail6
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Callee, start, pos, perr)
fail:
	return _memoize(parser, _Callee, start, -1, perr)
}

func _CalleeFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Callee, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Callee",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Callee}
	// reg:Reg {…}/sym:Ident {…}
	{
		pos3 := pos
		// action
		// reg:Reg
		{
			pos5 := pos
			// Reg
			if !_fail(parser, _RegFail, errPos, failure, &pos) {
				goto fail4
			}
			labels[0] = parser.text[pos5:pos]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// sym:Ident
		{
			pos7 := pos
			// Ident
			if !_fail(parser, _IdentFail, errPos, failure, &pos) {
				goto fail6
			}
			labels[1] = parser.text[pos7:pos]
		}
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CalleeAction(parser *_Parser, start int) (int, *Callee) {
	var labels [2]string
	use(labels)
	var label0 Reg
	var label1 string
	dp := parser.deltaPos[start][_Callee]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Callee}
	n := parser.act[key]
	if n != nil {
		n := n.(Callee)
		return start + int(dp-1), &n
	}
	var node Callee
	pos := start
	// reg:Reg {…}/sym:Ident {…}
	{
		pos3 := pos
		var node2 Callee
		// action
		{
			start5 := pos
			// reg:Reg
			{
				pos6 := pos
				// Reg
				if p, n := _RegAction(parser, pos); n == nil {
					goto fail4
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos6:pos]
			}
			node = func(
				start, end int, reg Reg) Callee {
				return Callee{Reg: reg}
			}(
				start5, pos, label0)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start8 := pos
			// sym:Ident
			{
				pos9 := pos
				// Ident
				if p, n := _IdentAction(parser, pos); n == nil {
					goto fail7
				} else {
					label1 = *n
					pos = p
				}
				labels[1] = parser.text[pos9:pos]
			}
			node = func(
				start, end int, reg Reg, sym string) Callee {
				return Callee{Symbol: sym}
			}(
				start8, pos, label0, label1)
		}
		goto ok0
	fail7:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _CondAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Cond, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ cmp:("eq"/"ne"/"lt"/"le"/"gt"/"ge") !W imm:(_ "[" n:Num _ "]" {…})?
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// cmp:("eq"/"ne"/"lt"/"le"/"gt"/"ge")
	{
		pos1 := pos
		// ("eq"/"ne"/"lt"/"le"/"gt"/"ge")
		// "eq"/"ne"/"lt"/"le"/"gt"/"ge"
		{
			pos5 := pos
			// "eq"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "eq" {
				perr = _max(perr, pos)
				goto fail6
			}
			pos += 2
			goto ok2
		fail6:
			pos = pos5
			// "ne"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "ne" {
				perr = _max(perr, pos)
				goto fail7
			}
			pos += 2
			goto ok2
		fail7:
			pos = pos5
			// "lt"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "lt" {
				perr = _max(perr, pos)
				goto fail8
			}
			pos += 2
			goto ok2
		fail8:
			pos = pos5
			// "le"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "le" {
				perr = _max(perr, pos)
				goto fail9
			}
			pos += 2
			goto ok2
		fail9:
			pos = pos5
			// "gt"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "gt" {
				perr = _max(perr, pos)
				goto fail10
			}
			pos += 2
			goto ok2
		fail10:
			pos = pos5
			// "ge"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "ge" {
				perr = _max(perr, pos)
				goto fail11
			}
			pos += 2
			goto ok2
		fail11:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !W
	{
		pos13 := pos
		perr15 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok12
		}
		pos = pos13
		perr = _max(perr15, pos)
		goto fail
	ok12:
		pos = pos13
		perr = perr15
	}
	// imm:(_ "[" n:Num _ "]" {…})?
	{
		pos16 := pos
		// (_ "[" n:Num _ "]" {…})?
		{
			pos18 := pos
			// (_ "[" n:Num _ "]" {…})
			// action
			// _ "[" n:Num _ "]"
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail19
			}
			// "["
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
				perr = _max(perr, pos)
				goto fail19
			}
			pos++
			// n:Num
			{
				pos21 := pos
				// Num
				if !_accept(parser, _NumAccepts, &pos, &perr) {
					goto fail19
				}
				labels[1] = parser.text[pos21:pos]
			}
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail19
			}
			// "]"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
				perr = _max(perr, pos)
				goto fail19
			}
			pos++
			goto ok22
		fail19:
			pos = pos18
		ok22:
		}
		labels[2] = parser.text[pos16:pos]
	}
	perr = start
	return _memoize(parser, _Cond, start, pos, perr)
fail:
	return _memoize(parser, _Cond, start, -1, perr)
}

func _CondFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Cond, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Cond",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Cond}
	// action
	// _ cmp:("eq"/"ne"/"lt"/"le"/"gt"/"ge") !W imm:(_ "[" n:Num _ "]" {…})?
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// cmp:("eq"/"ne"/"lt"/"le"/"gt"/"ge")
	{
		pos1 := pos
		// ("eq"/"ne"/"lt"/"le"/"gt"/"ge")
		// "eq"/"ne"/"lt"/"le"/"gt"/"ge"
		{
			pos5 := pos
			// "eq"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "eq" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"eq\"",
					})
				}
				goto fail6
			}
			pos += 2
			goto ok2
		fail6:
			pos = pos5
			// "ne"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "ne" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"ne\"",
					})
				}
				goto fail7
			}
			pos += 2
			goto ok2
		fail7:
			pos = pos5
			// "lt"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "lt" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"lt\"",
					})
				}
				goto fail8
			}
			pos += 2
			goto ok2
		fail8:
			pos = pos5
			// "le"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "le" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"le\"",
					})
				}
				goto fail9
			}
			pos += 2
			goto ok2
		fail9:
			pos = pos5
			// "gt"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "gt" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"gt\"",
					})
				}
				goto fail10
			}
			pos += 2
			goto ok2
		fail10:
			pos = pos5
			// "ge"
			if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "ge" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"ge\"",
					})
				}
				goto fail11
			}
			pos += 2
			goto ok2
		fail11:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !W
	{
		pos13 := pos
		nkids14 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok12
		}
		pos = pos13
		failure.Kids = failure.Kids[:nkids14]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok12:
		pos = pos13
		failure.Kids = failure.Kids[:nkids14]
	}
	// imm:(_ "[" n:Num _ "]" {…})?
	{
		pos16 := pos
		// (_ "[" n:Num _ "]" {…})?
		{
			pos18 := pos
			// (_ "[" n:Num _ "]" {…})
			// action
			// _ "[" n:Num _ "]"
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail19
			}
			// "["
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"[\"",
					})
				}
				goto fail19
			}
			pos++
			// n:Num
			{
				pos21 := pos
				// Num
				if !_fail(parser, _NumFail, errPos, failure, &pos) {
					goto fail19
				}
				labels[1] = parser.text[pos21:pos]
			}
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail19
			}
			// "]"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"]\"",
					})
				}
				goto fail19
			}
			pos++
			goto ok22
		fail19:
			pos = pos18
		ok22:
		}
		labels[2] = parser.text[pos16:pos]
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "a comparison"
	parser.fail[key] = failure
	return -1, failure
}

func _CondAction(parser *_Parser, start int) (int, *Condition) {
	var labels [3]string
	use(labels)
	var label0 string
	var label1 int64
	var label2 *int64
	dp := parser.deltaPos[start][_Cond]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Cond}
	n := parser.act[key]
	if n != nil {
		n := n.(Condition)
		return start + int(dp-1), &n
	}
	var node Condition
	pos := start
	// action
	{
		start0 := pos
		// _ cmp:("eq"/"ne"/"lt"/"le"/"gt"/"ge") !W imm:(_ "[" n:Num _ "]" {…})?
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// cmp:("eq"/"ne"/"lt"/"le"/"gt"/"ge")
		{
			pos2 := pos
			// ("eq"/"ne"/"lt"/"le"/"gt"/"ge")
			// "eq"/"ne"/"lt"/"le"/"gt"/"ge"
			{
				pos6 := pos
				var node5 string
				// "eq"
				if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "eq" {
					goto fail7
				}
				label0 = parser.text[pos : pos+2]
				pos += 2
				goto ok3
			fail7:
				label0 = node5
				pos = pos6
				// "ne"
				if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "ne" {
					goto fail8
				}
				label0 = parser.text[pos : pos+2]
				pos += 2
				goto ok3
			fail8:
				label0 = node5
				pos = pos6
				// "lt"
				if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "lt" {
					goto fail9
				}
				label0 = parser.text[pos : pos+2]
				pos += 2
				goto ok3
			fail9:
				label0 = node5
				pos = pos6
				// "le"
				if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "le" {
					goto fail10
				}
				label0 = parser.text[pos : pos+2]
				pos += 2
				goto ok3
			fail10:
				label0 = node5
				pos = pos6
				// "gt"
				if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "gt" {
					goto fail11
				}
				label0 = parser.text[pos : pos+2]
				pos += 2
				goto ok3
			fail11:
				label0 = node5
				pos = pos6
				// "ge"
				if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "ge" {
					goto fail12
				}
				label0 = parser.text[pos : pos+2]
				pos += 2
				goto ok3
			fail12:
				label0 = node5
				pos = pos6
				goto fail
			ok3:
			}
			labels[0] = parser.text[pos2:pos]
		}
		// !W
		{
			pos14 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok13
			} else {
				pos = p
			}
			pos = pos14
			goto fail
		ok13:
			pos = pos14
		}
		// imm:(_ "[" n:Num _ "]" {…})?
		{
			pos17 := pos
			// (_ "[" n:Num _ "]" {…})?
			{
				pos19 := pos
				label2 = new(int64)
				// (_ "[" n:Num _ "]" {…})
				// action
				{
					start21 := pos
					// _ "[" n:Num _ "]"
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail20
					} else {
						pos = p
					}
					// "["
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "[" {
						goto fail20
					}
					pos++
					// n:Num
					{
						pos23 := pos
						// Num
						if p, n := _NumAction(parser, pos); n == nil {
							goto fail20
						} else {
							label1 = *n
							pos = p
						}
						labels[1] = parser.text[pos23:pos]
					}
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail20
					} else {
						pos = p
					}
					// "]"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "]" {
						goto fail20
					}
					pos++
					*label2 = func(
						start, end int, cmp string, n int64) int64 {
						return int64(n)
					}(
						start21, pos, label0, label1)
				}
				goto ok24
			fail20:
				label2 = nil
				pos = pos19
			ok24:
			}
			labels[2] = parser.text[pos17:pos]
		}
		node = func(
			start, end int, cmp string, imm *int64, n int64) Condition {
			c := Condition{Cmp: comparisons[cmp]}
			if imm != nil {
				c.HasImm, c.Imm = true, *imm
			}
			return Condition(c)
		}(
			start0, pos, label0, label2, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _RegsAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Regs, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// _ "(" _ ")" {…}/_ "(" first:Reg rest:(_ "," r:Reg {…})* _ ")" {…}
	{
		pos3 := pos
		// action
		// _ "(" _ ")"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ "(" first:Reg rest:(_ "," r:Reg {…})* _ ")"
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail6
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			perr = _max(perr, pos)
			goto fail6
		}
		pos++
		// first:Reg
		{
			pos8 := pos
			// Reg
			if !_accept(parser, _RegAccepts, &pos, &perr) {
				goto fail6
			}
			labels[0] = parser.text[pos8:pos]
		}
		// rest:(_ "," r:Reg {…})*
		{
			pos9 := pos
			// (_ "," r:Reg {…})*
			for {
				pos11 := pos
				// (_ "," r:Reg {…})
				// action
				// _ "," r:Reg
				// _
				if !_accept(parser, __Accepts, &pos, &perr) {
					goto fail13
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					perr = _max(perr, pos)
					goto fail13
				}
				pos++
				// r:Reg
				{
					pos15 := pos
					// Reg
					if !_accept(parser, _RegAccepts, &pos, &perr) {
						goto fail13
					}
					labels[1] = parser.text[pos15:pos]
				}
				continue
			fail13:
				pos = pos11
				break
			}
			labels[2] = parser.text[pos9:pos]
		}
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail6
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			perr = _max(perr, pos)
			goto fail6
		}
		pos++
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Regs, start, pos, perr)
fail:
	return _memoize(parser, _Regs, start, -1, perr)
}

func _RegsFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Regs, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Regs",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Regs}
	// _ "(" _ ")" {…}/_ "(" first:Reg rest:(_ "," r:Reg {…})* _ ")" {…}
	{
		pos3 := pos
		// action
		// _ "(" _ ")"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"(\"",
				})
			}
			goto fail4
		}
		pos++
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\")\"",
				})
			}
			goto fail4
		}
		pos++
		goto ok0
	fail4:
		pos = pos3
		// action
		// _ "(" first:Reg rest:(_ "," r:Reg {…})* _ ")"
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail6
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"(\"",
				})
			}
			goto fail6
		}
		pos++
		// first:Reg
		{
			pos8 := pos
			// Reg
			if !_fail(parser, _RegFail, errPos, failure, &pos) {
				goto fail6
			}
			labels[0] = parser.text[pos8:pos]
		}
		// rest:(_ "," r:Reg {…})*
		{
			pos9 := pos
			// (_ "," r:Reg {…})*
			for {
				pos11 := pos
				// (_ "," r:Reg {…})
				// action
				// _ "," r:Reg
				// _
				if !_fail(parser, __Fail, errPos, failure, &pos) {
					goto fail13
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\",\"",
						})
					}
					goto fail13
				}
				pos++
				// r:Reg
				{
					pos15 := pos
					// Reg
					if !_fail(parser, _RegFail, errPos, failure, &pos) {
						goto fail13
					}
					labels[1] = parser.text[pos15:pos]
				}
				continue
			fail13:
				pos = pos11
				break
			}
			labels[2] = parser.text[pos9:pos]
		}
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail6
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\")\"",
				})
			}
			goto fail6
		}
		pos++
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _RegsAction(parser *_Parser, start int) (int, *[]Reg) {
	var labels [3]string
	use(labels)
	var label0 Reg
	var label1 Reg
	var label2 []Reg
	dp := parser.deltaPos[start][_Regs]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Regs}
	n := parser.act[key]
	if n != nil {
		n := n.([]Reg)
		return start + int(dp-1), &n
	}
	var node []Reg
	pos := start
	// _ "(" _ ")" {…}/_ "(" first:Reg rest:(_ "," r:Reg {…})* _ ")" {…}
	{
		pos3 := pos
		var node2 []Reg
		// action
		{
			start5 := pos
			// _ "(" _ ")"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "("
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
				goto fail4
			}
			pos++
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// ")"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
				goto fail4
			}
			pos++
			node = func(
				start, end int) []Reg {
				return []Reg(nil)
			}(
				start5, pos)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start8 := pos
			// _ "(" first:Reg rest:(_ "," r:Reg {…})* _ ")"
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail7
			} else {
				pos = p
			}
			// "("
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
				goto fail7
			}
			pos++
			// first:Reg
			{
				pos10 := pos
				// Reg
				if p, n := _RegAction(parser, pos); n == nil {
					goto fail7
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos10:pos]
			}
			// rest:(_ "," r:Reg {…})*
			{
				pos11 := pos
				// (_ "," r:Reg {…})*
				for {
					pos13 := pos
					var node14 Reg
					// (_ "," r:Reg {…})
					// action
					{
						start16 := pos
						// _ "," r:Reg
						// _
						if p, n := __Action(parser, pos); n == nil {
							goto fail15
						} else {
							pos = p
						}
						// ","
						if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
							goto fail15
						}
						pos++
						// r:Reg
						{
							pos18 := pos
							// Reg
							if p, n := _RegAction(parser, pos); n == nil {
								goto fail15
							} else {
								label1 = *n
								pos = p
							}
							labels[1] = parser.text[pos18:pos]
						}
						node14 = func(
							start, end int, first Reg, r Reg) Reg {
							return Reg(r)
						}(
							start16, pos, label0, label1)
					}
					label2 = append(label2, node14)
					continue
				fail15:
					pos = pos13
					break
				}
				labels[2] = parser.text[pos11:pos]
			}
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail7
			} else {
				pos = p
			}
			// ")"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
				goto fail7
			}
			pos++
			node = func(
				start, end int, first Reg, r Reg, rest []Reg) []Reg {
				return []Reg(append([]Reg{first}, rest...))
			}(
				start8, pos, label0, label1, label2)
		}
		goto ok0
	fail7:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _SigAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Sig, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "sig" !W _ "(" args:Args? _ ")" _ ":" res:Result
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "sig"
	if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "sig" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 3
	// !W
	{
		pos2 := pos
		perr4 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// args:Args?
	{
		pos5 := pos
		// Args?
		{
			pos7 := pos
			// Args
			if !_accept(parser, _ArgsAccepts, &pos, &perr) {
				goto fail8
			}
			goto ok9
		fail8:
			pos = pos7
		ok9:
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ":"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// res:Result
	{
		pos10 := pos
		// Result
		if !_accept(parser, _ResultAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos10:pos]
	}
	return _memoize(parser, _Sig, start, pos, perr)
fail:
	return _memoize(parser, _Sig, start, -1, perr)
}

func _SigFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Sig, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Sig",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Sig}
	// action
	// _ "sig" !W _ "(" args:Args? _ ")" _ ":" res:Result
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "sig"
	if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "sig" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"sig\"",
			})
		}
		goto fail
	}
	pos += 3
	// !W
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"(\"",
			})
		}
		goto fail
	}
	pos++
	// args:Args?
	{
		pos5 := pos
		// Args?
		{
			pos7 := pos
			// Args
			if !_fail(parser, _ArgsFail, errPos, failure, &pos) {
				goto fail8
			}
			goto ok9
		fail8:
			pos = pos7
		ok9:
		}
		labels[0] = parser.text[pos5:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\")\"",
			})
		}
		goto fail
	}
	pos++
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ":"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\":\"",
			})
		}
		goto fail
	}
	pos++
	// res:Result
	{
		pos10 := pos
		// Result
		if !_fail(parser, _ResultFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos10:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SigAction(parser *_Parser, start int) (int, *Signature) {
	var labels [2]string
	use(labels)
	var label0 *Signature
	var label1 Type
	dp := parser.deltaPos[start][_Sig]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Sig}
	n := parser.act[key]
	if n != nil {
		n := n.(Signature)
		return start + int(dp-1), &n
	}
	var node Signature
	pos := start
	// action
	{
		start0 := pos
		// _ "sig" !W _ "(" args:Args? _ ")" _ ":" res:Result
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "sig"
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "sig" {
			goto fail
		}
		pos += 3
		// !W
		{
			pos3 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			goto fail
		}
		pos++
		// args:Args?
		{
			pos6 := pos
			// Args?
			{
				pos8 := pos
				label0 = new(Signature)
				// Args
				if p, n := _ArgsAction(parser, pos); n == nil {
					goto fail9
				} else {
					*label0 = *n
					pos = p
				}
				goto ok10
			fail9:
				label0 = nil
				pos = pos8
			ok10:
			}
			labels[0] = parser.text[pos6:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			goto fail
		}
		pos++
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ":"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ":" {
			goto fail
		}
		pos++
		// res:Result
		{
			pos11 := pos
			// Result
			if p, n := _ResultAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos11:pos]
		}
		node = func(
			start, end int, args *Signature, res Type) Signature {
			var sig Signature
			if args != nil {
				sig = *args
			}
			sig.Res = res
			return Signature(sig)
		}(
			start0, pos, label0, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ArgsAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [4]string
	use(labels)
	if dp, de, ok := _memo(parser, _Args, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// _ "..." {…}/first:Type rest:(_ "," t:Type {…})* va:(_ "," _ "...")? {…}
	{
		pos3 := pos
		// action
		// _ "..."
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "..."
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "..." {
			perr = _max(perr, pos)
			goto fail4
		}
		pos += 3
		goto ok0
	fail4:
		pos = pos3
		// action
		// first:Type rest:(_ "," t:Type {…})* va:(_ "," _ "...")?
		// first:Type
		{
			pos8 := pos
			// Type
			if !_accept(parser, _TypeAccepts, &pos, &perr) {
				goto fail6
			}
			labels[0] = parser.text[pos8:pos]
		}
		// rest:(_ "," t:Type {…})*
		{
			pos9 := pos
			// (_ "," t:Type {…})*
			for {
				pos11 := pos
				// (_ "," t:Type {…})
				// action
				// _ "," t:Type
				// _
				if !_accept(parser, __Accepts, &pos, &perr) {
					goto fail13
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					perr = _max(perr, pos)
					goto fail13
				}
				pos++
				// t:Type
				{
					pos15 := pos
					// Type
					if !_accept(parser, _TypeAccepts, &pos, &perr) {
						goto fail13
					}
					labels[1] = parser.text[pos15:pos]
				}
				continue
			fail13:
				pos = pos11
				break
			}
			labels[2] = parser.text[pos9:pos]
		}
		// va:(_ "," _ "...")?
		{
			pos16 := pos
			// (_ "," _ "...")?
			{
				pos18 := pos
				// (_ "," _ "...")
				// _ "," _ "..."
				// _
				if !_accept(parser, __Accepts, &pos, &perr) {
					goto fail19
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					perr = _max(perr, pos)
					goto fail19
				}
				pos++
				// _
				if !_accept(parser, __Accepts, &pos, &perr) {
					goto fail19
				}
				// "..."
				if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "..." {
					perr = _max(perr, pos)
					goto fail19
				}
				pos += 3
				goto ok21
			fail19:
				pos = pos18
			ok21:
			}
			labels[3] = parser.text[pos16:pos]
		}
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Args, start, pos, perr)
fail:
	return _memoize(parser, _Args, start, -1, perr)
}

func _ArgsFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [4]string
	use(labels)
	pos, failure := _failMemo(parser, _Args, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Args",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Args}
	// _ "..." {…}/first:Type rest:(_ "," t:Type {…})* va:(_ "," _ "...")? {…}
	{
		pos3 := pos
		// action
		// _ "..."
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "..."
		if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "..." {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"...\"",
				})
			}
			goto fail4
		}
		pos += 3
		goto ok0
	fail4:
		pos = pos3
		// action
		// first:Type rest:(_ "," t:Type {…})* va:(_ "," _ "...")?
		// first:Type
		{
			pos8 := pos
			// Type
			if !_fail(parser, _TypeFail, errPos, failure, &pos) {
				goto fail6
			}
			labels[0] = parser.text[pos8:pos]
		}
		// rest:(_ "," t:Type {…})*
		{
			pos9 := pos
			// (_ "," t:Type {…})*
			for {
				pos11 := pos
				// (_ "," t:Type {…})
				// action
				// _ "," t:Type
				// _
				if !_fail(parser, __Fail, errPos, failure, &pos) {
					goto fail13
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\",\"",
						})
					}
					goto fail13
				}
				pos++
				// t:Type
				{
					pos15 := pos
					// Type
					if !_fail(parser, _TypeFail, errPos, failure, &pos) {
						goto fail13
					}
					labels[1] = parser.text[pos15:pos]
				}
				continue
			fail13:
				pos = pos11
				break
			}
			labels[2] = parser.text[pos9:pos]
		}
		// va:(_ "," _ "...")?
		{
			pos16 := pos
			// (_ "," _ "...")?
			{
				pos18 := pos
				// (_ "," _ "...")
				// _ "," _ "..."
				// _
				if !_fail(parser, __Fail, errPos, failure, &pos) {
					goto fail19
				}
				// ","
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\",\"",
						})
					}
					goto fail19
				}
				pos++
				// _
				if !_fail(parser, __Fail, errPos, failure, &pos) {
					goto fail19
				}
				// "..."
				if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "..." {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "\"...\"",
						})
					}
					goto fail19
				}
				pos += 3
				goto ok21
			fail19:
				pos = pos18
			ok21:
			}
			labels[3] = parser.text[pos16:pos]
		}
		goto ok0
	fail6:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _ArgsAction(parser *_Parser, start int) (int, *Signature) {
	var labels [4]string
	use(labels)
	var label0 Type
	var label1 Type
	var label2 []Type
	var label3 string
	dp := parser.deltaPos[start][_Args]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Args}
	n := parser.act[key]
	if n != nil {
		n := n.(Signature)
		return start + int(dp-1), &n
	}
	var node Signature
	pos := start
	// _ "..." {…}/first:Type rest:(_ "," t:Type {…})* va:(_ "," _ "...")? {…}
	{
		pos3 := pos
		var node2 Signature
		// action
		{
			start5 := pos
			// _ "..."
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "..."
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "..." {
				goto fail4
			}
			pos += 3
			node = func(
				start, end int) Signature {
				return Signature{Varargs: true}
			}(
				start5, pos)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start8 := pos
			// first:Type rest:(_ "," t:Type {…})* va:(_ "," _ "...")?
			// first:Type
			{
				pos10 := pos
				// Type
				if p, n := _TypeAction(parser, pos); n == nil {
					goto fail7
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos10:pos]
			}
			// rest:(_ "," t:Type {…})*
			{
				pos11 := pos
				// (_ "," t:Type {…})*
				for {
					pos13 := pos
					var node14 Type
					// (_ "," t:Type {…})
					// action
					{
						start16 := pos
						// _ "," t:Type
						// _
						if p, n := __Action(parser, pos); n == nil {
							goto fail15
						} else {
							pos = p
						}
						// ","
						if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
							goto fail15
						}
						pos++
						// t:Type
						{
							pos18 := pos
							// Type
							if p, n := _TypeAction(parser, pos); n == nil {
								goto fail15
							} else {
								label1 = *n
								pos = p
							}
							labels[1] = parser.text[pos18:pos]
						}
						node14 = func(
							start, end int, first Type, t Type) Type {
							return Type(t)
						}(
							start16, pos, label0, label1)
					}
					label2 = append(label2, node14)
					continue
				fail15:
					pos = pos13
					break
				}
				labels[2] = parser.text[pos11:pos]
			}
			// va:(_ "," _ "...")?
			{
				pos19 := pos
				// (_ "," _ "...")?
				{
					pos21 := pos
					// (_ "," _ "...")
					// _ "," _ "..."
					{
						var node23 string
						// _
						if p, n := __Action(parser, pos); n == nil {
							goto fail22
						} else {
							node23 = *n
							pos = p
						}
						label3, node23 = label3+node23, ""
						// ","
						if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
							goto fail22
						}
						node23 = parser.text[pos : pos+1]
						pos++
						label3, node23 = label3+node23, ""
						// _
						if p, n := __Action(parser, pos); n == nil {
							goto fail22
						} else {
							node23 = *n
							pos = p
						}
						label3, node23 = label3+node23, ""
						// "..."
						if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "..." {
							goto fail22
						}
						node23 = parser.text[pos : pos+3]
						pos += 3
						label3, node23 = label3+node23, ""
					}
					goto ok24
				fail22:
					label3 = ""
					pos = pos21
				ok24:
				}
				labels[3] = parser.text[pos19:pos]
			}
			node = func(
				start, end int, first Type, rest []Type, t Type, va string) Signature {
				return Signature{Args: append([]Type{first}, rest...), Varargs: va != ""}
			}(
				start8, pos, label0, label2, label1, label3)
		}
		goto ok0
	fail7:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _ResultAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Result, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// _ "void" !W {…}/res:Type {…}
	{
		pos3 := pos
		// action
		// _ "void" !W
		// _
		if !_accept(parser, __Accepts, &pos, &perr) {
			goto fail4
		}
		// "void"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "void" {
			perr = _max(perr, pos)
			goto fail4
		}
		pos += 4
		// !W
		{
			pos7 := pos
			perr9 := perr
			// W
			if !_accept(parser, _WAccepts, &pos, &perr) {
				goto ok6
			}
			pos = pos7
			perr = _max(perr9, pos)
			goto fail4
		ok6:
			pos = pos7
			perr = perr9
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// res:Type
		{
			pos11 := pos
			// Type
			if !_accept(parser, _TypeAccepts, &pos, &perr) {
				goto fail10
			}
			labels[0] = parser.text[pos11:pos]
		}
		goto ok0
	fail10:
		pos = pos3
		goto fail
	ok0:
	}
	perr = start
	return _memoize(parser, _Result, start, pos, perr)
fail:
	return _memoize(parser, _Result, start, -1, perr)
}

func _ResultFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Result, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Result",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Result}
	// _ "void" !W {…}/res:Type {…}
	{
		pos3 := pos
		// action
		// _ "void" !W
		// _
		if !_fail(parser, __Fail, errPos, failure, &pos) {
			goto fail4
		}
		// "void"
		if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "void" {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "\"void\"",
				})
			}
			goto fail4
		}
		pos += 4
		// !W
		{
			pos7 := pos
			nkids8 := len(failure.Kids)
			// W
			if !_fail(parser, _WFail, errPos, failure, &pos) {
				goto ok6
			}
			pos = pos7
			failure.Kids = failure.Kids[:nkids8]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!W",
				})
			}
			goto fail4
		ok6:
			pos = pos7
			failure.Kids = failure.Kids[:nkids8]
		}
		goto ok0
	fail4:
		pos = pos3
		// action
		// res:Type
		{
			pos11 := pos
			// Type
			if !_fail(parser, _TypeFail, errPos, failure, &pos) {
				goto fail10
			}
			labels[0] = parser.text[pos11:pos]
		}
		goto ok0
	fail10:
		pos = pos3
		goto fail
	ok0:
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "a result type"
	parser.fail[key] = failure
	return -1, failure
}

func _ResultAction(parser *_Parser, start int) (int, *Type) {
	var labels [1]string
	use(labels)
	var label0 Type
	dp := parser.deltaPos[start][_Result]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Result}
	n := parser.act[key]
	if n != nil {
		n := n.(Type)
		return start + int(dp-1), &n
	}
	var node Type
	pos := start
	// _ "void" !W {…}/res:Type {…}
	{
		pos3 := pos
		var node2 Type
		// action
		{
			start5 := pos
			// _ "void" !W
			// _
			if p, n := __Action(parser, pos); n == nil {
				goto fail4
			} else {
				pos = p
			}
			// "void"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "void" {
				goto fail4
			}
			pos += 4
			// !W
			{
				pos8 := pos
				// W
				if p, n := _WAction(parser, pos); n == nil {
					goto ok7
				} else {
					pos = p
				}
				pos = pos8
				goto fail4
			ok7:
				pos = pos8
			}
			node = func(
				start, end int) Type {
				return Type(Void)
			}(
				start5, pos)
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// action
		{
			start12 := pos
			// res:Type
			{
				pos13 := pos
				// Type
				if p, n := _TypeAction(parser, pos); n == nil {
					goto fail11
				} else {
					label0 = *n
					pos = p
				}
				labels[0] = parser.text[pos13:pos]
			}
			node = func(
				start, end int, res Type) Type {
				return Type(res)
			}(
				start12, pos, label0)
		}
		goto ok0
	fail11:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TypeAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Type, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ name:("int"/"long"/"float"/"any") !W
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// name:("int"/"long"/"float"/"any")
	{
		pos1 := pos
		// ("int"/"long"/"float"/"any")
		// "int"/"long"/"float"/"any"
		{
			pos5 := pos
			// "int"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "int" {
				perr = _max(perr, pos)
				goto fail6
			}
			pos += 3
			goto ok2
		fail6:
			pos = pos5
			// "long"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "long" {
				perr = _max(perr, pos)
				goto fail7
			}
			pos += 4
			goto ok2
		fail7:
			pos = pos5
			// "float"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "float" {
				perr = _max(perr, pos)
				goto fail8
			}
			pos += 5
			goto ok2
		fail8:
			pos = pos5
			// "any"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "any" {
				perr = _max(perr, pos)
				goto fail9
			}
			pos += 3
			goto ok2
		fail9:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !W
	{
		pos11 := pos
		perr13 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok10
		}
		pos = pos11
		perr = _max(perr13, pos)
		goto fail
	ok10:
		pos = pos11
		perr = perr13
	}
	perr = start
	return _memoize(parser, _Type, start, pos, perr)
fail:
	return _memoize(parser, _Type, start, -1, perr)
}

func _TypeFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Type, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Type",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Type}
	// action
	// _ name:("int"/"long"/"float"/"any") !W
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// name:("int"/"long"/"float"/"any")
	{
		pos1 := pos
		// ("int"/"long"/"float"/"any")
		// "int"/"long"/"float"/"any"
		{
			pos5 := pos
			// "int"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "int" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"int\"",
					})
				}
				goto fail6
			}
			pos += 3
			goto ok2
		fail6:
			pos = pos5
			// "long"
			if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "long" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"long\"",
					})
				}
				goto fail7
			}
			pos += 4
			goto ok2
		fail7:
			pos = pos5
			// "float"
			if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "float" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"float\"",
					})
				}
				goto fail8
			}
			pos += 5
			goto ok2
		fail8:
			pos = pos5
			// "any"
			if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "any" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"any\"",
					})
				}
				goto fail9
			}
			pos += 3
			goto ok2
		fail9:
			pos = pos5
			goto fail
		ok2:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !W
	{
		pos11 := pos
		nkids12 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok10
		}
		pos = pos11
		failure.Kids = failure.Kids[:nkids12]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok10:
		pos = pos11
		failure.Kids = failure.Kids[:nkids12]
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "a type"
	parser.fail[key] = failure
	return -1, failure
}

func _TypeAction(parser *_Parser, start int) (int, *Type) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Type]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Type}
	n := parser.act[key]
	if n != nil {
		n := n.(Type)
		return start + int(dp-1), &n
	}
	var node Type
	pos := start
	// action
	{
		start0 := pos
		// _ name:("int"/"long"/"float"/"any") !W
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// name:("int"/"long"/"float"/"any")
		{
			pos2 := pos
			// ("int"/"long"/"float"/"any")
			// "int"/"long"/"float"/"any"
			{
				pos6 := pos
				var node5 string
				// "int"
				if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "int" {
					goto fail7
				}
				label0 = parser.text[pos : pos+3]
				pos += 3
				goto ok3
			fail7:
				label0 = node5
				pos = pos6
				// "long"
				if len(parser.text[pos:]) < 4 || parser.text[pos:pos+4] != "long" {
					goto fail8
				}
				label0 = parser.text[pos : pos+4]
				pos += 4
				goto ok3
			fail8:
				label0 = node5
				pos = pos6
				// "float"
				if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "float" {
					goto fail9
				}
				label0 = parser.text[pos : pos+5]
				pos += 5
				goto ok3
			fail9:
				label0 = node5
				pos = pos6
				// "any"
				if len(parser.text[pos:]) < 3 || parser.text[pos:pos+3] != "any" {
					goto fail10
				}
				label0 = parser.text[pos : pos+3]
				pos += 3
				goto ok3
			fail10:
				label0 = node5
				pos = pos6
				goto fail
			ok3:
			}
			labels[0] = parser.text[pos2:pos]
		}
		// !W
		{
			pos12 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok11
			} else {
				pos = p
			}
			pos = pos12
			goto fail
		ok11:
			pos = pos12
		}
		node = func(
			start, end int, name string) Type {
			return Type(types[name])
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _SuccAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Succ, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "->" pc:Point
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "->"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "->" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 2
	// pc:Point
	{
		pos1 := pos
		// Point
		if !_accept(parser, _PointAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Succ, start, pos, perr)
fail:
	return _memoize(parser, _Succ, start, -1, perr)
}

func _SuccFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Succ, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Succ",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Succ}
	// action
	// _ "->" pc:Point
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "->"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "->" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"->\"",
			})
		}
		goto fail
	}
	pos += 2
	// pc:Point
	{
		pos1 := pos
		// Point
		if !_fail(parser, _PointFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SuccAction(parser *_Parser, start int) (int, *Point) {
	var labels [1]string
	use(labels)
	var label0 Point
	dp := parser.deltaPos[start][_Succ]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Succ}
	n := parser.act[key]
	if n != nil {
		n := n.(Point)
		return start + int(dp-1), &n
	}
	var node Point
	pos := start
	// action
	{
		start0 := pos
		// _ "->" pc:Point
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "->"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "->" {
			goto fail
		}
		pos += 2
		// pc:Point
		{
			pos2 := pos
			// Point
			if p, n := _PointAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, pc Point) Point {
			return Point(pc)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _PointAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Point, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ digits:([0-9]+) !W &{…}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// digits:([0-9]+)
	{
		pos1 := pos
		// ([0-9]+)
		// [0-9]+
		// [0-9]
		if r, w := _next(parser, pos); r < '0' || r > '9' {
			perr = _max(perr, pos)
			goto fail
		} else {
			pos += w
		}
		for {
			pos3 := pos
			// [0-9]
			if r, w := _next(parser, pos); r < '0' || r > '9' {
				perr = _max(perr, pos)
				goto fail5
			} else {
				pos += w
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !W
	{
		pos7 := pos
		perr9 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok6
		}
		pos = pos7
		perr = _max(perr9, pos)
		goto fail
	ok6:
		pos = pos7
		perr = perr9
	}
	// pred code
	if ok := func(digits string) bool { return isUint32(digits) }(labels[0]); !ok {
		perr = _max(perr, pos)
		goto fail
	}
	perr = start
	return _memoize(parser, _Point, start, pos, perr)
fail:
	return _memoize(parser, _Point, start, -1, perr)
}

func _PointFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Point, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Point",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Point}
	// action
	// _ digits:([0-9]+) !W &{…}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// digits:([0-9]+)
	{
		pos1 := pos
		// ([0-9]+)
		// [0-9]+
		// [0-9]
		if r, w := _next(parser, pos); r < '0' || r > '9' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[0-9]",
				})
			}
			goto fail
		} else {
			pos += w
		}
		for {
			pos3 := pos
			// [0-9]
			if r, w := _next(parser, pos); r < '0' || r > '9' {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "[0-9]",
					})
				}
				goto fail5
			} else {
				pos += w
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !W
	{
		pos7 := pos
		nkids8 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok6
		}
		pos = pos7
		failure.Kids = failure.Kids[:nkids8]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok6:
		pos = pos7
		failure.Kids = failure.Kids[:nkids8]
	}
	// pred code
	if ok := func(digits string) bool { return isUint32(digits) }(labels[0]); !ok {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "&{" + " isUint32(digits) " + "}",
			})
		}
		goto fail
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "a program point"
	parser.fail[key] = failure
	return -1, failure
}

func _PointAction(parser *_Parser, start int) (int, *Point) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Point]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Point}
	n := parser.act[key]
	if n != nil {
		n := n.(Point)
		return start + int(dp-1), &n
	}
	var node Point
	pos := start
	// action
	{
		start0 := pos
		// _ digits:([0-9]+) !W &{…}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// digits:([0-9]+)
		{
			pos2 := pos
			// ([0-9]+)
			// [0-9]+
			{
				var node5 string
				// [0-9]
				if r, w := _next(parser, pos); r < '0' || r > '9' {
					goto fail
				} else {
					node5 = parser.text[pos : pos+w]
					pos += w
				}
				label0 += node5
			}
			for {
				pos4 := pos
				var node5 string
				// [0-9]
				if r, w := _next(parser, pos); r < '0' || r > '9' {
					goto fail6
				} else {
					node5 = parser.text[pos : pos+w]
					pos += w
				}
				label0 += node5
				continue
			fail6:
				pos = pos4
				break
			}
			labels[0] = parser.text[pos2:pos]
		}
		// !W
		{
			pos8 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok7
			} else {
				pos = p
			}
			pos = pos8
			goto fail
		ok7:
			pos = pos8
		}
		// pred code
		if ok := func(digits string) bool { return isUint32(digits) }(labels[0]); !ok {
			goto fail
		}
		node = func(
			start, end int, digits string) Point {
			x, _ := strconv.ParseUint(digits, 10, 32)
			return Point(x)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _RegAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Reg, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "x" digits:([0-9]+) !W &{…}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "x"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "x" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// digits:([0-9]+)
	{
		pos1 := pos
		// ([0-9]+)
		// [0-9]+
		// [0-9]
		if r, w := _next(parser, pos); r < '0' || r > '9' {
			perr = _max(perr, pos)
			goto fail
		} else {
			pos += w
		}
		for {
			pos3 := pos
			// [0-9]
			if r, w := _next(parser, pos); r < '0' || r > '9' {
				perr = _max(perr, pos)
				goto fail5
			} else {
				pos += w
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !W
	{
		pos7 := pos
		perr9 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok6
		}
		pos = pos7
		perr = _max(perr9, pos)
		goto fail
	ok6:
		pos = pos7
		perr = perr9
	}
	// pred code
	if ok := func(digits string) bool { return isUint32(digits) }(labels[0]); !ok {
		perr = _max(perr, pos)
		goto fail
	}
	perr = start
	return _memoize(parser, _Reg, start, pos, perr)
fail:
	return _memoize(parser, _Reg, start, -1, perr)
}

func _RegFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Reg, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Reg",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Reg}
	// action
	// _ "x" digits:([0-9]+) !W &{…}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "x"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "x" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"x\"",
			})
		}
		goto fail
	}
	pos++
	// digits:([0-9]+)
	{
		pos1 := pos
		// ([0-9]+)
		// [0-9]+
		// [0-9]
		if r, w := _next(parser, pos); r < '0' || r > '9' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[0-9]",
				})
			}
			goto fail
		} else {
			pos += w
		}
		for {
			pos3 := pos
			// [0-9]
			if r, w := _next(parser, pos); r < '0' || r > '9' {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "[0-9]",
					})
				}
				goto fail5
			} else {
				pos += w
			}
			continue
		fail5:
			pos = pos3
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !W
	{
		pos7 := pos
		nkids8 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok6
		}
		pos = pos7
		failure.Kids = failure.Kids[:nkids8]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok6:
		pos = pos7
		failure.Kids = failure.Kids[:nkids8]
	}
	// pred code
	if ok := func(digits string) bool { return isUint32(digits) }(labels[0]); !ok {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "&{" + " isUint32(digits) " + "}",
			})
		}
		goto fail
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "a register"
	parser.fail[key] = failure
	return -1, failure
}

func _RegAction(parser *_Parser, start int) (int, *Reg) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Reg]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Reg}
	n := parser.act[key]
	if n != nil {
		n := n.(Reg)
		return start + int(dp-1), &n
	}
	var node Reg
	pos := start
	// action
	{
		start0 := pos
		// _ "x" digits:([0-9]+) !W &{…}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "x"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "x" {
			goto fail
		}
		pos++
		// digits:([0-9]+)
		{
			pos2 := pos
			// ([0-9]+)
			// [0-9]+
			{
				var node5 string
				// [0-9]
				if r, w := _next(parser, pos); r < '0' || r > '9' {
					goto fail
				} else {
					node5 = parser.text[pos : pos+w]
					pos += w
				}
				label0 += node5
			}
			for {
				pos4 := pos
				var node5 string
				// [0-9]
				if r, w := _next(parser, pos); r < '0' || r > '9' {
					goto fail6
				} else {
					node5 = parser.text[pos : pos+w]
					pos += w
				}
				label0 += node5
				continue
			fail6:
				pos = pos4
				break
			}
			labels[0] = parser.text[pos2:pos]
		}
		// !W
		{
			pos8 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok7
			} else {
				pos = p
			}
			pos = pos8
			goto fail
		ok7:
			pos = pos8
		}
		// pred code
		if ok := func(digits string) bool { return isUint32(digits) }(labels[0]); !ok {
			goto fail
		}
		node = func(
			start, end int, digits string) Reg {
			x, _ := strconv.ParseUint(digits, 10, 32)
			return Reg(x)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _NumAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Num, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ text:("-"? [0-9]+) !W &{…}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// text:("-"? [0-9]+)
	{
		pos1 := pos
		// ("-"? [0-9]+)
		// "-"? [0-9]+
		// "-"?
		{
			pos4 := pos
			// "-"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "-" {
				perr = _max(perr, pos)
				goto fail5
			}
			pos++
			goto ok6
		fail5:
			pos = pos4
		ok6:
		}
		// [0-9]+
		// [0-9]
		if r, w := _next(parser, pos); r < '0' || r > '9' {
			perr = _max(perr, pos)
			goto fail
		} else {
			pos += w
		}
		for {
			pos8 := pos
			// [0-9]
			if r, w := _next(parser, pos); r < '0' || r > '9' {
				perr = _max(perr, pos)
				goto fail10
			} else {
				pos += w
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !W
	{
		pos12 := pos
		perr14 := perr
		// W
		if !_accept(parser, _WAccepts, &pos, &perr) {
			goto ok11
		}
		pos = pos12
		perr = _max(perr14, pos)
		goto fail
	ok11:
		pos = pos12
		perr = perr14
	}
	// pred code
	if ok := func(text string) bool { return isInt64(text) }(labels[0]); !ok {
		perr = _max(perr, pos)
		goto fail
	}
	perr = start
	return _memoize(parser, _Num, start, pos, perr)
fail:
	return _memoize(parser, _Num, start, -1, perr)
}

func _NumFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Num, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Num",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Num}
	// action
	// _ text:("-"? [0-9]+) !W &{…}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// text:("-"? [0-9]+)
	{
		pos1 := pos
		// ("-"? [0-9]+)
		// "-"? [0-9]+
		// "-"?
		{
			pos4 := pos
			// "-"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "-" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"-\"",
					})
				}
				goto fail5
			}
			pos++
			goto ok6
		fail5:
			pos = pos4
		ok6:
		}
		// [0-9]+
		// [0-9]
		if r, w := _next(parser, pos); r < '0' || r > '9' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[0-9]",
				})
			}
			goto fail
		} else {
			pos += w
		}
		for {
			pos8 := pos
			// [0-9]
			if r, w := _next(parser, pos); r < '0' || r > '9' {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "[0-9]",
					})
				}
				goto fail10
			} else {
				pos += w
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	// !W
	{
		pos12 := pos
		nkids13 := len(failure.Kids)
		// W
		if !_fail(parser, _WFail, errPos, failure, &pos) {
			goto ok11
		}
		pos = pos12
		failure.Kids = failure.Kids[:nkids13]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!W",
			})
		}
		goto fail
	ok11:
		pos = pos12
		failure.Kids = failure.Kids[:nkids13]
	}
	// pred code
	if ok := func(text string) bool { return isInt64(text) }(labels[0]); !ok {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "&{" + " isInt64(text) " + "}",
			})
		}
		goto fail
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "a number"
	parser.fail[key] = failure
	return -1, failure
}

func _NumAction(parser *_Parser, start int) (int, *int64) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Num]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Num}
	n := parser.act[key]
	if n != nil {
		n := n.(int64)
		return start + int(dp-1), &n
	}
	var node int64
	pos := start
	// action
	{
		start0 := pos
		// _ text:("-"? [0-9]+) !W &{…}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// text:("-"? [0-9]+)
		{
			pos2 := pos
			// ("-"? [0-9]+)
			// "-"? [0-9]+
			{
				var node3 string
				// "-"?
				{
					pos5 := pos
					// "-"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "-" {
						goto fail6
					}
					node3 = parser.text[pos : pos+1]
					pos++
					goto ok7
				fail6:
					node3 = ""
					pos = pos5
				ok7:
				}
				label0, node3 = label0+node3, ""
				// [0-9]+
				{
					var node10 string
					// [0-9]
					if r, w := _next(parser, pos); r < '0' || r > '9' {
						goto fail
					} else {
						node10 = parser.text[pos : pos+w]
						pos += w
					}
					node3 += node10
				}
				for {
					pos9 := pos
					var node10 string
					// [0-9]
					if r, w := _next(parser, pos); r < '0' || r > '9' {
						goto fail11
					} else {
						node10 = parser.text[pos : pos+w]
						pos += w
					}
					node3 += node10
					continue
				fail11:
					pos = pos9
					break
				}
				label0, node3 = label0+node3, ""
			}
			labels[0] = parser.text[pos2:pos]
		}
		// !W
		{
			pos13 := pos
			// W
			if p, n := _WAction(parser, pos); n == nil {
				goto ok12
			} else {
				pos = p
			}
			pos = pos13
			goto fail
		ok12:
			pos = pos13
		}
		// pred code
		if ok := func(text string) bool { return isInt64(text) }(labels[0]); !ok {
			goto fail
		}
		node = func(
			start, end int, text string) int64 {
			x, _ := strconv.ParseInt(text, 10, 64)
			return int64(x)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _IdentAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Ident, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ !Reg name:([a-zA-Z_$.] [a-zA-Z0-9_$.]*)
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// !Reg
	{
		pos2 := pos
		perr4 := perr
		// Reg
		if !_accept(parser, _RegAccepts, &pos, &perr) {
			goto ok1
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	// name:([a-zA-Z_$.] [a-zA-Z0-9_$.]*)
	{
		pos5 := pos
		// ([a-zA-Z_$.] [a-zA-Z0-9_$.]*)
		// [a-zA-Z_$.] [a-zA-Z0-9_$.]*
		// [a-zA-Z_$.]
		if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '_' && r != '$' && r != '.' {
			perr = _max(perr, pos)
			goto fail
		} else {
			pos += w
		}
		// [a-zA-Z0-9_$.]*
		for {
			pos8 := pos
			// [a-zA-Z0-9_$.]
			if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' && r != '$' && r != '.' {
				perr = _max(perr, pos)
				goto fail10
			} else {
				pos += w
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[0] = parser.text[pos5:pos]
	}
	perr = start
	return _memoize(parser, _Ident, start, pos, perr)
fail:
	return _memoize(parser, _Ident, start, -1, perr)
}

func _IdentFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Ident, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Ident",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Ident}
	// action
	// _ !Reg name:([a-zA-Z_$.] [a-zA-Z0-9_$.]*)
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// !Reg
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// Reg
		if !_fail(parser, _RegFail, errPos, failure, &pos) {
			goto ok1
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!Reg",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	// name:([a-zA-Z_$.] [a-zA-Z0-9_$.]*)
	{
		pos5 := pos
		// ([a-zA-Z_$.] [a-zA-Z0-9_$.]*)
		// [a-zA-Z_$.] [a-zA-Z0-9_$.]*
		// [a-zA-Z_$.]
		if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '_' && r != '$' && r != '.' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[a-zA-Z_$.]",
				})
			}
			goto fail
		} else {
			pos += w
		}
		// [a-zA-Z0-9_$.]*
		for {
			pos8 := pos
			// [a-zA-Z0-9_$.]
			if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' && r != '$' && r != '.' {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "[a-zA-Z0-9_$.]",
					})
				}
				goto fail10
			} else {
				pos += w
			}
			continue
		fail10:
			pos = pos8
			break
		}
		labels[0] = parser.text[pos5:pos]
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "an identifier"
	parser.fail[key] = failure
	return -1, failure
}

func _IdentAction(parser *_Parser, start int) (int, *string) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Ident]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Ident}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// action
	{
		start0 := pos
		// _ !Reg name:([a-zA-Z_$.] [a-zA-Z0-9_$.]*)
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// !Reg
		{
			pos3 := pos
			// Reg
			if p, n := _RegAction(parser, pos); n == nil {
				goto ok2
			} else {
				pos = p
			}
			pos = pos3
			goto fail
		ok2:
			pos = pos3
		}
		// name:([a-zA-Z_$.] [a-zA-Z0-9_$.]*)
		{
			pos6 := pos
			// ([a-zA-Z_$.] [a-zA-Z0-9_$.]*)
			// [a-zA-Z_$.] [a-zA-Z0-9_$.]*
			{
				var node7 string
				// [a-zA-Z_$.]
				if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '_' && r != '$' && r != '.' {
					goto fail
				} else {
					node7 = parser.text[pos : pos+w]
					pos += w
				}
				label0, node7 = label0+node7, ""
				// [a-zA-Z0-9_$.]*
				for {
					pos9 := pos
					var node10 string
					// [a-zA-Z0-9_$.]
					if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' && r != '$' && r != '.' {
						goto fail11
					} else {
						node10 = parser.text[pos : pos+w]
						pos += w
					}
					node7 += node10
					continue
				fail11:
					pos = pos9
					break
				}
				label0, node7 = label0+node7, ""
			}
			labels[0] = parser.text[pos6:pos]
		}
		node = func(
			start, end int, name string) string {
			return string(name)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _WAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _W, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// [a-zA-Z0-9_$.]
	if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' && r != '$' && r != '.' {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	return _memoize(parser, _W, start, pos, perr)
fail:
	return _memoize(parser, _W, start, -1, perr)
}

func _WFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _W, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "W",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _W}
	// [a-zA-Z0-9_$.]
	if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' && r != '$' && r != '.' {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "[a-zA-Z0-9_$.]",
			})
		}
		goto fail
	} else {
		pos += w
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _WAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_W]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _W}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// [a-zA-Z0-9_$.]
	if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' && r != '$' && r != '.' {
		goto fail
	} else {
		node = parser.text[pos : pos+w]
		pos += w
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _EofAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Eof, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// _ !.
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// !.
	{
		pos2 := pos
		perr4 := perr
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			perr = _max(perr, pos)
			goto ok1
		} else {
			pos += w
		}
		pos = pos2
		perr = _max(perr4, pos)
		goto fail
	ok1:
		pos = pos2
		perr = perr4
	}
	perr = start
	return _memoize(parser, _Eof, start, pos, perr)
fail:
	return _memoize(parser, _Eof, start, -1, perr)
}

func _EofFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Eof, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Eof",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Eof}
	// _ !.
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// !.
	{
		pos2 := pos
		nkids3 := len(failure.Kids)
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: ".",
				})
			}
			goto ok1
		} else {
			pos += w
		}
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!.",
			})
		}
		goto fail
	ok1:
		pos = pos2
		failure.Kids = failure.Kids[:nkids3]
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "end of file"
	parser.fail[key] = failure
	return -1, failure
}

func _EofAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Eof]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Eof}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// _ !.
	{
		var node0 string
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			node0 = *n
			pos = p
		}
		node, node0 = node+node0, ""
		// !.
		{
			pos2 := pos
			// .
			if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
				goto ok1
			} else {
				pos += w
			}
			pos = pos2
			goto fail
		ok1:
			pos = pos2
			node0 = ""
		}
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func __Accepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, __, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// (Space/Cmnt)*
	for {
		pos1 := pos
		// (Space/Cmnt)
		// Space/Cmnt
		{
			pos7 := pos
			// Space
			if !_accept(parser, _SpaceAccepts, &pos, &perr) {
				goto fail8
			}
			goto ok4
		fail8:
			pos = pos7
			// Cmnt
			if !_accept(parser, _CmntAccepts, &pos, &perr) {
				goto fail9
			}
			goto ok4
		fail9:
			pos = pos7
			goto fail3
		ok4:
		}
		continue
	fail3:
		pos = pos1
		break
	}
	perr = start
	return _memoize(parser, __, start, pos, perr)
}

func __Fail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, __, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "_",
		Pos:  int(start),
	}
	key := _key{start: start, rule: __}
	// (Space/Cmnt)*
	for {
		pos1 := pos
		// (Space/Cmnt)
		// Space/Cmnt
		{
			pos7 := pos
			// Space
			if !_fail(parser, _SpaceFail, errPos, failure, &pos) {
				goto fail8
			}
			goto ok4
		fail8:
			pos = pos7
			// Cmnt
			if !_fail(parser, _CmntFail, errPos, failure, &pos) {
				goto fail9
			}
			goto ok4
		fail9:
			pos = pos7
			goto fail3
		ok4:
		}
		continue
	fail3:
		pos = pos1
		break
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
}

func __Action(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][__]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: __}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// (Space/Cmnt)*
	for {
		pos1 := pos
		var node2 string
		// (Space/Cmnt)
		// Space/Cmnt
		{
			pos7 := pos
			var node6 string
			// Space
			if p, n := _SpaceAction(parser, pos); n == nil {
				goto fail8
			} else {
				node2 = *n
				pos = p
			}
			goto ok4
		fail8:
			node2 = node6
			pos = pos7
			// Cmnt
			if p, n := _CmntAction(parser, pos); n == nil {
				goto fail9
			} else {
				node2 = *n
				pos = p
			}
			goto ok4
		fail9:
			node2 = node6
			pos = pos7
			goto fail3
		ok4:
		}
		node += node2
		continue
	fail3:
		pos = pos1
		break
	}
	parser.act[key] = node
	return pos, &node
}

func _SpaceAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Space, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// [ \t\r\n]
	if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' && r != '\n' {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	return _memoize(parser, _Space, start, pos, perr)
fail:
	return _memoize(parser, _Space, start, -1, perr)
}

func _SpaceFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Space, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Space",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Space}
	// [ \t\r\n]
	if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' && r != '\n' {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "[ \\t\\r\\n]",
			})
		}
		goto fail
	} else {
		pos += w
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SpaceAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Space]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Space}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// [ \t\r\n]
	if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' && r != '\n' {
		goto fail
	} else {
		node = parser.text[pos : pos+w]
		pos += w
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _CmntAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Cmnt, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// "//" (!"\n" .)*
	// "//"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "//" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 2
	// (!"\n" .)*
	for {
		pos2 := pos
		// (!"\n" .)
		// !"\n" .
		// !"\n"
		{
			pos7 := pos
			perr9 := perr
			// "\n"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
				perr = _max(perr, pos)
				goto ok6
			}
			pos++
			pos = pos7
			perr = _max(perr9, pos)
			goto fail4
		ok6:
			pos = pos7
			perr = perr9
		}
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			perr = _max(perr, pos)
			goto fail4
		} else {
			pos += w
		}
		continue
	fail4:
		pos = pos2
		break
	}
	return _memoize(parser, _Cmnt, start, pos, perr)
fail:
	return _memoize(parser, _Cmnt, start, -1, perr)
}

func _CmntFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Cmnt, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Cmnt",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Cmnt}
	// "//" (!"\n" .)*
	// "//"
	if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "//" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"//\"",
			})
		}
		goto fail
	}
	pos += 2
	// (!"\n" .)*
	for {
		pos2 := pos
		// (!"\n" .)
		// !"\n" .
		// !"\n"
		{
			pos7 := pos
			nkids8 := len(failure.Kids)
			// "\n"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"\\n\"",
					})
				}
				goto ok6
			}
			pos++
			pos = pos7
			failure.Kids = failure.Kids[:nkids8]
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "!\"\\n\"",
				})
			}
			goto fail4
		ok6:
			pos = pos7
			failure.Kids = failure.Kids[:nkids8]
		}
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: ".",
				})
			}
			goto fail4
		} else {
			pos += w
		}
		continue
	fail4:
		pos = pos2
		break
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CmntAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Cmnt]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Cmnt}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// "//" (!"\n" .)*
	{
		var node0 string
		// "//"
		if len(parser.text[pos:]) < 2 || parser.text[pos:pos+2] != "//" {
			goto fail
		}
		node0 = parser.text[pos : pos+2]
		pos += 2
		node, node0 = node+node0, ""
		// (!"\n" .)*
		for {
			pos2 := pos
			var node3 string
			// (!"\n" .)
			// !"\n" .
			{
				var node5 string
				// !"\n"
				{
					pos7 := pos
					// "\n"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
						goto ok6
					}
					pos++
					pos = pos7
					goto fail4
				ok6:
					pos = pos7
					node5 = ""
				}
				node3, node5 = node3+node5, ""
				// .
				if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
					goto fail4
				} else {
					node5 = parser.text[pos : pos+w]
					pos += w
				}
				node3, node5 = node3+node5, ""
			}
			node0 += node3
			continue
		fail4:
			pos = pos2
			break
		}
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}
