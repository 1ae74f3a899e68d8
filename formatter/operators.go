// Copyright © 2024 The hjkls authors

package formatter

import (
	"strings"

	"github.com/hjkls/hjkls/syntax"
)

// binaryOperatorKinds are the operator child kinds inside a
// binary_operation node that receive surrounding spaces.
var binaryOperatorKinds = map[syntax.Kind]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"==": true, "!=": true, ">": true, ">=": true, "<": true, "<=": true,
	"=~": true, "!~": true, "is": true, "isnot": true,
	"&&": true, "||": true, ".": true, "..": true,
}

// operatorPass spaces binary operators, the let/const assignment
// operator, and tightens unary operators. The tree decides unary
// versus binary; edits never span line continuations.
func operatorPass(text string, tree *syntax.Tree) string {
	var edits []edit

	tree.Walk(func(n syntax.Node) bool {
		switch n.Kind() {
		case syntax.KindBinaryOperation:
			edits = append(edits, binaryEdits(text, n)...)
		case syntax.KindUnaryOperation:
			edits = append(edits, unaryEdits(text, n)...)
		case syntax.KindLetStatement, syntax.KindConstStatement:
			edits = append(edits, assignmentEdits(text, n)...)
		}
		return true
	})

	return applyEdits(text, edits)
}

// binaryEdits produces "lhs op rhs" spacing for one operation node.
// Children are ordered lhs, operator, optional match_case, rhs.
func binaryEdits(text string, n syntax.Node) []edit {
	children := n.Children()
	if len(children) < 3 {
		return nil
	}
	lhs := children[0]
	op := children[1]
	if !binaryOperatorKinds[op.Kind()] {
		return nil
	}
	opEnd := op.EndByte()
	rhs := children[len(children)-1]
	if children[len(children)-2].Kind() == syntax.KindMatchCase {
		opEnd = children[len(children)-2].EndByte()
	}
	if rhs.Kind() == syntax.KindError {
		return nil
	}

	var edits []edit
	if e := gapEdit(text, lhs.EndByte(), op.StartByte(), " "); e != nil {
		edits = append(edits, *e)
	}
	if e := gapEdit(text, opEnd, rhs.StartByte(), " "); e != nil {
		edits = append(edits, *e)
	}
	return edits
}

// unaryEdits removes space between a unary operator and its operand.
func unaryEdits(text string, n syntax.Node) []edit {
	children := n.Children()
	if len(children) != 2 {
		return nil
	}
	if e := gapEdit(text, children[0].EndByte(), children[1].StartByte(), ""); e != nil {
		return []edit{*e}
	}
	return nil
}

// assignmentEdits spaces the (possibly compound) assignment operator
// between a let/const target and its value.
func assignmentEdits(text string, n syntax.Node) []edit {
	children := n.Children()
	if len(children) < 2 {
		return nil
	}
	target := children[0]
	value := children[1]
	gapStart := target.EndByte()
	gapEnd := value.StartByte()
	if gapStart >= gapEnd || gapEnd > len(text) {
		return nil
	}
	gap := text[gapStart:gapEnd]
	if strings.ContainsAny(gap, "\n\\") {
		return nil
	}
	op := strings.TrimSpace(gap)
	if op == "" || !strings.HasSuffix(op, "=") {
		return nil
	}
	want := " " + op + " "
	if gap == want {
		return nil
	}
	return []edit{{start: gapStart, end: gapEnd, text: want}}
}

// gapEdit normalizes the text between two byte offsets to want,
// unless the gap spans a line continuation.
func gapEdit(text string, start, end int, want string) *edit {
	if start >= end || end > len(text) {
		if start == end && want != "" {
			return &edit{start: start, end: end, text: want}
		}
		return nil
	}
	gap := text[start:end]
	if strings.ContainsAny(gap, "\n\\") {
		return nil
	}
	if gap == want {
		return nil
	}
	return &edit{start: start, end: end, text: want}
}
