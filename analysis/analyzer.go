// Copyright © 2024 The hjkls authors

package analysis

import (
	"strings"

	"github.com/hjkls/hjkls/syntax"
)

// Result is the per-document symbol table produced by one extraction
// pass.
type Result struct {
	Symbols    []*Symbol
	References []*Reference

	// Callables holds the full names of variables known to carry a
	// callable value (lambda, function('name'), funcref, or any
	// dictionary value). The undefined-call checker consults it
	// to avoid false positives on Var() and dict.method() calls.
	Callables map[string]bool

	funcs map[string]*Symbol // full name -> function symbol
	vars  map[string]*Symbol // full name -> variable symbol
}

// Analyze walks the tree bottom-up and produces the symbol table.
func Analyze(tree *syntax.Tree) *Result {
	r := &Result{
		Callables: make(map[string]bool),
		funcs:     make(map[string]*Symbol),
		vars:      make(map[string]*Symbol),
	}
	if tree == nil {
		return r
	}
	r.extract(tree.Root(), nil)
	return r
}

// LookupFunction resolves a function by its full (prefixed or
// autoload-qualified) name.
func (r *Result) LookupFunction(fullName string) *Symbol {
	return r.funcs[fullName]
}

// LookupVariable resolves a variable by its full name.
func (r *Result) LookupVariable(fullName string) *Symbol {
	return r.vars[fullName]
}

// Lookup resolves a symbol by name and scope, functions first.
func (r *Result) Lookup(name string, scope VimScope) *Symbol {
	full := scope.Prefix() + name
	if s := r.funcs[full]; s != nil {
		return s
	}
	return r.vars[full]
}

// FunctionAt returns the function symbol whose definition range
// contains the point, or nil at script level.
func (r *Result) FunctionAt(p syntax.Point) *Symbol {
	var best *Symbol
	for _, s := range r.Symbols {
		if s.Kind != SymFunction && s.Kind != SymAutoloadFunction {
			continue
		}
		if pointWithin(p, s.DefStart, s.DefEnd) {
			if best == nil || s.DefStart.Row >= best.DefStart.Row {
				best = s
			}
		}
	}
	return best
}

// SymbolAt returns the symbol whose name range contains the point.
func (r *Result) SymbolAt(p syntax.Point) *Symbol {
	for _, s := range r.Symbols {
		if pointWithin(p, s.NameStart, s.NameEnd) {
			return s
		}
	}
	return nil
}

// ReferenceAt returns the reference whose range contains the point.
func (r *Result) ReferenceAt(p syntax.Point) *Reference {
	for _, ref := range r.References {
		if pointWithin(p, ref.Start, ref.End) {
			return ref
		}
	}
	return nil
}

func pointWithin(p, start, end syntax.Point) bool {
	if p.Row < start.Row || p.Row > end.Row {
		return false
	}
	if p.Row == start.Row && p.Col < start.Col {
		return false
	}
	if p.Row == end.Row && p.Col > end.Col {
		return false
	}
	return true
}

// extract is the single extraction walk. enclosing is the function
// symbol owning the current subtree.
func (r *Result) extract(n syntax.Node, enclosing *Symbol) {
	switch n.Kind() {
	case syntax.KindFunctionDefinition:
		fn := r.extractFunction(n)
		if fn != nil {
			enclosing = fn
		}
		// Children beneath the declaration were handled; walk only
		// the statement children for nested definitions and refs.
		for _, c := range n.Children() {
			if c.Kind() == syntax.KindFunctionDeclaration || c.Kind() == syntax.KindBang {
				continue
			}
			r.extract(c, enclosing)
		}
		return

	case syntax.KindLetStatement, syntax.KindConstStatement:
		r.extractLet(n, enclosing)
		return

	case syntax.KindScopedIdentifier:
		r.recordReference(n, enclosing)
		return

	case syntax.KindIdentifier:
		// A bare identifier in expression position. Identifiers that
		// are structural (parameter names, augroup names) never reach
		// here because their parents are handled above.
		r.recordReference(n, enclosing)
		return
	}

	for _, c := range n.Children() {
		r.extract(c, enclosing)
	}
}

func (r *Result) extractFunction(n syntax.Node) *Symbol {
	decl := n.ChildOfKind(syntax.KindFunctionDeclaration)
	if !decl.IsValid() {
		return nil
	}

	var name string
	var scope VimScope
	var nameNode syntax.Node
	if scoped := decl.ChildOfKind(syntax.KindScopedIdentifier); scoped.IsValid() {
		scope = ScopeFromPrefix(scoped.ChildOfKind(syntax.KindScope).Text())
		nameNode = scoped.ChildOfKind(syntax.KindIdentifier)
		name = nameNode.Text()
	} else if ident := decl.ChildOfKind(syntax.KindIdentifier); ident.IsValid() {
		nameNode = ident
		name = ident.Text()
	} else {
		return nil
	}

	sig := &Signature{
		Abort: decl.HasChildOfKind(syntax.KindAbort),
		Bang:  n.HasChildOfKind(syntax.KindBang),
	}

	kind := SymFunction
	if strings.Contains(name, "#") {
		kind = SymAutoloadFunction
	}

	fn := &Symbol{
		Name:      name,
		Scope:     scope,
		Kind:      kind,
		NameStart: nameNode.StartPoint(),
		NameEnd:   nameNode.EndPoint(),
		DefStart:  n.StartPoint(),
		DefEnd:    n.EndPoint(),
		Signature: sig,
	}
	r.Symbols = append(r.Symbols, fn)
	r.funcs[fn.FullName()] = fn

	if params := decl.ChildOfKind(syntax.KindParameters); params.IsValid() {
		for _, c := range params.Children() {
			switch c.Kind() {
			case syntax.KindIdentifier:
				sig.Params = append(sig.Params, Param{Name: c.Text()})
				r.addParameter(c, fn)
			case syntax.KindDefaultParameter:
				ident := c.ChildOfKind(syntax.KindIdentifier)
				sig.Params = append(sig.Params, Param{Name: ident.Text(), HasDefault: true})
				r.addParameter(ident, fn)
				// Default value expressions may reference symbols.
				for _, cc := range c.Children() {
					if cc.Kind() != syntax.KindIdentifier {
						r.extract(cc, fn)
					}
				}
			case syntax.KindSpread:
				sig.Params = append(sig.Params, Param{Name: "...", Variadic: true})
			}
		}
	}
	return fn
}

func (r *Result) addParameter(ident syntax.Node, fn *Symbol) {
	p := &Symbol{
		Name:      ident.Text(),
		Scope:     ScopeArgument,
		Kind:      SymParameter,
		NameStart: ident.StartPoint(),
		NameEnd:   ident.EndPoint(),
		DefStart:  ident.StartPoint(),
		DefEnd:    ident.EndPoint(),
		Parent:    fn,
	}
	r.Symbols = append(r.Symbols, p)
	r.vars[p.FullName()] = p
}

func (r *Result) extractLet(n syntax.Node, enclosing *Symbol) {
	children := n.Children()
	if len(children) == 0 {
		return
	}
	target := children[0]
	r.extractTarget(target, n, enclosing)

	// The value expression (and any further targets from list
	// destructuring) contribute references and callable marks.
	for _, c := range children[1:] {
		r.extract(c, enclosing)
	}
	if len(children) >= 2 {
		r.markCallable(target, children[len(children)-1])
	}
}

// extractTarget records the symbol defined by a let/const target.
func (r *Result) extractTarget(target, stmt syntax.Node, enclosing *Symbol) {
	switch target.Kind() {
	case syntax.KindIdentifier:
		r.addVariable(target.Text(), ScopeImplicit, target, enclosing)
	case syntax.KindScopedIdentifier:
		scope := ScopeFromPrefix(target.ChildOfKind(syntax.KindScope).Text())
		ident := target.ChildOfKind(syntax.KindIdentifier)
		r.addVariable(ident.Text(), scope, ident, enclosing)
	case syntax.KindFieldExpression:
		// obj.method assignment: a method symbol keyed by the dotted
		// name, without deep object modelling.
		base := target.Child(0)
		field := target.ChildOfKind(syntax.KindIdentifier)
		if base.IsValid() && field.IsValid() {
			name := baseName(base) + "." + field.Text()
			sym := &Symbol{
				Name:      name,
				Scope:     baseScope(base),
				Kind:      SymFunction,
				NameStart: target.StartPoint(),
				NameEnd:   target.EndPoint(),
				DefStart:  stmt.StartPoint(),
				DefEnd:    stmt.EndPoint(),
			}
			r.Symbols = append(r.Symbols, sym)
			r.funcs[sym.FullName()] = sym
			r.Callables[sym.FullName()] = true
		}
	case syntax.KindList:
		// [a, b] destructuring defines each element.
		for _, c := range target.Children() {
			r.extractTarget(c, stmt, enclosing)
		}
	case syntax.KindIndexExpression, syntax.KindSliceExpression:
		// Subscript assignment mutates an existing value; the base is
		// a reference, not a definition.
		r.extract(target, enclosing)
	}
}

func (r *Result) addVariable(name string, scope VimScope, ident syntax.Node, enclosing *Symbol) {
	sym := &Symbol{
		Name:      name,
		Scope:     scope,
		Kind:      SymVariable,
		NameStart: ident.StartPoint(),
		NameEnd:   ident.EndPoint(),
		DefStart:  ident.StartPoint(),
		DefEnd:    ident.EndPoint(),
	}
	if enclosing != nil && (scope == ScopeLocal || scope == ScopeImplicit) {
		sym.Parent = enclosing
	}
	r.Symbols = append(r.Symbols, sym)
	if _, exists := r.vars[sym.FullName()]; !exists {
		r.vars[sym.FullName()] = sym
	}
}

// markCallable marks a let target as callable-bearing when its value
// is a lambda, function()/funcref() call, or dictionary.
func (r *Result) markCallable(target, value syntax.Node) {
	full := targetFullName(target)
	if full == "" {
		return
	}
	switch value.Kind() {
	case syntax.KindLambda, syntax.KindDictionary:
		r.Callables[full] = true
	case syntax.KindCallExpression:
		callee := value.Child(0)
		if callee.IsValid() {
			switch callee.Text() {
			case "function", "funcref":
				r.Callables[full] = true
			}
		}
	}
}

func targetFullName(target syntax.Node) string {
	switch target.Kind() {
	case syntax.KindIdentifier:
		return target.Text()
	case syntax.KindScopedIdentifier:
		return target.Text()
	}
	return ""
}

func baseName(base syntax.Node) string {
	switch base.Kind() {
	case syntax.KindIdentifier:
		return base.Text()
	case syntax.KindScopedIdentifier:
		return base.ChildOfKind(syntax.KindIdentifier).Text()
	default:
		return base.Text()
	}
}

func baseScope(base syntax.Node) VimScope {
	if base.Kind() == syntax.KindScopedIdentifier {
		return ScopeFromPrefix(base.ChildOfKind(syntax.KindScope).Text())
	}
	return ScopeImplicit
}

// recordReference records an identifier occurrence as a reference.
func (r *Result) recordReference(n syntax.Node, _ *Symbol) {
	var name string
	var scope VimScope
	switch n.Kind() {
	case syntax.KindIdentifier:
		name = n.Text()
	case syntax.KindScopedIdentifier:
		scope = ScopeFromPrefix(n.ChildOfKind(syntax.KindScope).Text())
		name = n.ChildOfKind(syntax.KindIdentifier).Text()
	default:
		return
	}
	if name == "" {
		return
	}

	parent := n.Parent()
	isCall := parent.IsValid() && parent.Kind() == syntax.KindCallExpression &&
		parent.ChildCount() > 0 && parent.Child(0).StartByte() == n.StartByte()

	r.References = append(r.References, &Reference{
		Name:   name,
		Scope:  scope,
		Start:  n.StartPoint(),
		End:    n.EndPoint(),
		IsCall: isCall,
	})
}
