// Copyright © 2024 The hjkls authors

// Package syntax provides the Vim script parse tree: a fault-tolerant,
// line-oriented parser producing an arena-backed tree of typed nodes
// with byte and row/column ranges, plus the text buffer that maps LSP
// positions onto it.
//
// Node kinds follow the vocabulary of the tree-sitter Vim grammar
// (function_definition, scoped_identifier, call_expression, ...) so
// the symbol and lint layers read as ordinary tree walks.
package syntax

import "regexp"

// Kind tags a node with its grammatical role.
type Kind string

const (
	KindScriptFile          Kind = "script_file"
	KindComment             Kind = "comment"
	KindVim9Script          Kind = "vim9script"
	KindFunctionDefinition  Kind = "function_definition"
	KindFunctionDeclaration Kind = "function_declaration"
	KindParameters          Kind = "parameters"
	KindDefaultParameter    Kind = "default_parameter"
	KindSpread              Kind = "spread"
	KindBang                Kind = "bang"
	KindAbort               Kind = "abort"
	KindDict                Kind = "dict"
	KindRange               Kind = "range"
	KindClosure             Kind = "closure"
	KindIfStatement         Kind = "if_statement"
	KindElseifStatement     Kind = "elseif_statement"
	KindElseStatement       Kind = "else_statement"
	KindForLoop             Kind = "for_loop"
	KindWhileLoop           Kind = "while_loop"
	KindTryStatement        Kind = "try_statement"
	KindCatchClause         Kind = "catch_clause"
	KindFinallyClause       Kind = "finally_clause"
	KindAugroupStatement    Kind = "augroup_statement"
	KindAugroupName         Kind = "augroup_name"
	KindAutocmdStatement    Kind = "autocmd_statement"
	KindAuEventList         Kind = "au_event_list"
	KindLetStatement        Kind = "let_statement"
	KindConstStatement      Kind = "const_statement"
	KindUnletStatement      Kind = "unlet_statement"
	KindCallStatement       Kind = "call_statement"
	KindReturnStatement     Kind = "return_statement"
	KindEchoStatement       Kind = "echo_statement"
	KindExecuteStatement    Kind = "execute_statement"
	KindNormalStatement     Kind = "normal_statement"
	KindSetStatement        Kind = "set_statement"
	KindSetItem             Kind = "set_item"
	KindOptionName          Kind = "option_name"
	KindMapStatement        Kind = "map_statement"
	KindMapCommand          Kind = "map_command"
	KindMapArguments        Kind = "map_arguments"
	KindMapSide             Kind = "map_side"
	KindKeycode             Kind = "keycode"
	KindCommandStatement    Kind = "command_statement"
	KindCallExpression      Kind = "call_expression"
	KindBinaryOperation     Kind = "binary_operation"
	KindUnaryOperation      Kind = "unary_operation"
	KindTernaryExpression   Kind = "ternary_expression"
	KindIndexExpression     Kind = "index_expression"
	KindSliceExpression     Kind = "slice_expression"
	KindFieldExpression     Kind = "field_expression"
	KindScopedIdentifier    Kind = "scoped_identifier"
	KindScope               Kind = "scope"
	KindIdentifier          Kind = "identifier"
	KindEnvVariable         Kind = "env_variable"
	KindRegister            Kind = "register"
	KindOptionExpression    Kind = "option_expression"
	KindStringLiteral       Kind = "string_literal"
	KindNumberLiteral       Kind = "number_literal"
	KindFloatLiteral        Kind = "float_literal"
	KindList                Kind = "list"
	KindDictionary          Kind = "dictionary"
	KindDictionaryEntry     Kind = "dictionary_entry"
	KindLambda              Kind = "lambda"
	KindMatchCase           Kind = "match_case"
	KindError               Kind = "ERROR"
)

// Point is a 0-based (row, byte column) source position.
type Point struct {
	Row int
	Col int
}

// Before reports whether p comes before q in document order.
func (p Point) Before(q Point) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Col < q.Col)
}

const (
	flagError uint8 = 1 << iota
	flagSuppressed
)

type nodeData struct {
	kind       Kind
	startByte  int
	endByte    int
	startPoint Point
	endPoint   Point
	parent     int32
	children   []int32
	flags      uint8
}

// Tree is an arena-backed parse tree. Nodes are referenced by stable
// indices so a snapshot can be carried cheaply next to a version
// number.
type Tree struct {
	src   []byte
	nodes []nodeData
}

// Node is a lightweight handle into a Tree. The zero Node is invalid.
type Node struct {
	t   *Tree
	idx int32
}

// Root returns the script_file node spanning the whole source.
func (t *Tree) Root() Node {
	if t == nil || len(t.nodes) == 0 {
		return Node{}
	}
	return Node{t: t, idx: 0}
}

// Source returns the source text the tree was parsed from.
func (t *Tree) Source() []byte { return t.src }

// IsValid reports whether the node handle refers to a real node.
func (n Node) IsValid() bool { return n.t != nil }

func (n Node) data() *nodeData { return &n.t.nodes[n.idx] }

// Kind returns the node's kind tag.
func (n Node) Kind() Kind { return n.data().kind }

// StartByte returns the byte offset where the node begins.
func (n Node) StartByte() int { return n.data().startByte }

// EndByte returns the byte offset just past the node's end.
func (n Node) EndByte() int { return n.data().endByte }

// StartPoint returns the node's starting row/column.
func (n Node) StartPoint() Point { return n.data().startPoint }

// EndPoint returns the node's ending row/column.
func (n Node) EndPoint() Point { return n.data().endPoint }

// Text returns the node's source text.
func (n Node) Text() string {
	d := n.data()
	return string(n.t.src[d.startByte:d.endByte])
}

// Parent returns the parent node, or an invalid node at the root.
func (n Node) Parent() Node {
	p := n.data().parent
	if p < 0 {
		return Node{}
	}
	return Node{t: n.t, idx: p}
}

// ChildCount returns the number of children.
func (n Node) ChildCount() int { return len(n.data().children) }

// Child returns the i'th child, or an invalid node when out of range.
func (n Node) Child(i int) Node {
	ch := n.data().children
	if i < 0 || i >= len(ch) {
		return Node{}
	}
	return Node{t: n.t, idx: ch[i]}
}

// Children returns all child nodes.
func (n Node) Children() []Node {
	ch := n.data().children
	out := make([]Node, len(ch))
	for i, c := range ch {
		out[i] = Node{t: n.t, idx: c}
	}
	return out
}

// ChildOfKind returns the first child with the given kind.
func (n Node) ChildOfKind(k Kind) Node {
	for _, c := range n.data().children {
		if n.t.nodes[c].kind == k {
			return Node{t: n.t, idx: c}
		}
	}
	return Node{}
}

// HasChildOfKind reports whether any direct child has the given kind.
func (n Node) HasChildOfKind(k Kind) bool {
	return n.ChildOfKind(k).IsValid()
}

// IsError reports whether the node is an ERROR node or was flagged as
// malformed during parsing.
func (n Node) IsError() bool {
	d := n.data()
	return d.kind == KindError || d.flags&flagError != 0
}

// IsSuppressed reports whether the node is an ERROR excluded from
// error enumeration by the keycode workaround post-pass.
func (n Node) IsSuppressed() bool { return n.data().flags&flagSuppressed != 0 }

// Contains reports whether the point falls within the node's range.
// The end position is inclusive so a cursor sitting just past the
// last character still hits the node.
func (n Node) Contains(p Point) bool {
	d := n.data()
	if p.Row < d.startPoint.Row || p.Row > d.endPoint.Row {
		return false
	}
	if p.Row == d.startPoint.Row && p.Col < d.startPoint.Col {
		return false
	}
	if p.Row == d.endPoint.Row && p.Col > d.endPoint.Col {
		return false
	}
	return true
}

// Walk visits n and its descendants in pre-order. Returning false
// from the visitor skips the node's children.
func (n Node) Walk(visit func(Node) bool) {
	if !n.IsValid() {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.data().children {
		(Node{t: n.t, idx: c}).Walk(visit)
	}
}

// Walk visits every node of the tree in pre-order.
func (t *Tree) Walk(visit func(Node) bool) {
	t.Root().Walk(visit)
}

// NodeAt returns the innermost node containing the point. Among nodes
// that contain the point, the one with the smallest byte width wins.
func (t *Tree) NodeAt(p Point) Node {
	best := Node{}
	t.Walk(func(n Node) bool {
		if !n.Contains(p) {
			return false
		}
		if !best.IsValid() || n.EndByte()-n.StartByte() <= best.EndByte()-best.StartByte() {
			best = n
		}
		return true
	})
	return best
}

// Ancestors returns the chain from n outward to the root, n first.
func (n Node) Ancestors() []Node {
	var out []Node
	for cur := n; cur.IsValid(); cur = cur.Parent() {
		out = append(out, cur)
	}
	return out
}

// EnclosingOfKind returns the nearest ancestor (including n itself)
// with the given kind.
func (n Node) EnclosingOfKind(k Kind) Node {
	for cur := n; cur.IsValid(); cur = cur.Parent() {
		if cur.Kind() == k {
			return cur
		}
	}
	return Node{}
}

// Errors returns all ERROR nodes except those suppressed by the
// keycode workaround.
func (t *Tree) Errors() []Node {
	var errs []Node
	t.Walk(func(n Node) bool {
		if n.Kind() == KindError && !n.IsSuppressed() {
			errs = append(errs, n)
		}
		return true
	})
	return errs
}

// The grammar greedily consumes <CR> inside command arguments, so
// mapping right-hand sides like <Cmd>call Fn()<CR> surface as bogus
// ERROR nodes. Error text matching these shapes is excluded from
// error enumeration.
var (
	keycodeErrorPat = regexp.MustCompile(`^<\w+>[^<]*<[cC][rR]>$`)
	cmdErrorPat     = regexp.MustCompile(`^<[cC][mM][dD]>.*$`)
)

func (t *Tree) suppressKeycodeErrors() {
	for i := range t.nodes {
		d := &t.nodes[i]
		if d.kind != KindError {
			continue
		}
		text := string(t.src[d.startByte:d.endByte])
		text = trimSpace(text)
		if keycodeErrorPat.MatchString(text) || cmdErrorPat.MatchString(text) {
			d.flags |= flagSuppressed
		}
	}
}

func trimSpace(s string) string {
	start := 0
	for start < len(s) && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	end := len(s)
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t' || s[end-1] == '\n' || s[end-1] == '\r') {
		end--
	}
	return s[start:end]
}
