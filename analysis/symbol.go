// Copyright © 2024 The hjkls authors

// Package analysis derives symbol tables from Vim script parse trees
// and maintains the cross-file workspace index. A Result holds the
// per-document view: definitions, references, and callable-bearing
// variables; the Index holds the project-plus-runtime view.
package analysis

import (
	"strings"

	"github.com/hjkls/hjkls/syntax"
)

// VimScope is the storage scope declared by an identifier's prefix.
type VimScope int

const (
	// ScopeImplicit has no prefix: local inside functions, global at
	// script level.
	ScopeImplicit VimScope = iota
	ScopeGlobal            // g:
	ScopeScript            // s:
	ScopeLocal             // l:
	ScopeBuffer            // b:
	ScopeWindow            // w:
	ScopeTab               // t:
	ScopeVim               // v:
	ScopeArgument          // a:
)

// ScopeFromPrefix parses a scope prefix like "s:".
func ScopeFromPrefix(s string) VimScope {
	switch s {
	case "g:":
		return ScopeGlobal
	case "s:":
		return ScopeScript
	case "l:":
		return ScopeLocal
	case "b:":
		return ScopeBuffer
	case "w:":
		return ScopeWindow
	case "t:":
		return ScopeTab
	case "v:":
		return ScopeVim
	case "a:":
		return ScopeArgument
	default:
		return ScopeImplicit
	}
}

// Prefix returns the scope's prefix string ("" for implicit).
func (s VimScope) Prefix() string {
	switch s {
	case ScopeGlobal:
		return "g:"
	case ScopeScript:
		return "s:"
	case ScopeLocal:
		return "l:"
	case ScopeBuffer:
		return "b:"
	case ScopeWindow:
		return "w:"
	case ScopeTab:
		return "t:"
	case ScopeVim:
		return "v:"
	case ScopeArgument:
		return "a:"
	default:
		return ""
	}
}

func (s VimScope) String() string {
	if s == ScopeImplicit {
		return "implicit"
	}
	return s.Prefix()
}

// SymbolKind classifies a symbol definition.
type SymbolKind int

const (
	SymVariable SymbolKind = iota
	SymFunction
	SymParameter
	SymAutoloadFunction
)

func (k SymbolKind) String() string {
	switch k {
	case SymVariable:
		return "variable"
	case SymFunction:
		return "function"
	case SymParameter:
		return "parameter"
	case SymAutoloadFunction:
		return "autoload function"
	default:
		return "unknown"
	}
}

// Param is one declared function parameter.
type Param struct {
	Name       string
	HasDefault bool
	Variadic   bool
}

// Signature describes a function's declared parameters and attributes.
type Signature struct {
	Params []Param
	Abort  bool
	Bang   bool
}

// MinArgs returns the minimum number of call arguments.
func (sig *Signature) MinArgs() int {
	if sig == nil {
		return 0
	}
	n := 0
	for _, p := range sig.Params {
		if !p.HasDefault && !p.Variadic {
			n++
		}
	}
	return n
}

// MaxArgs returns the maximum number of call arguments, -1 when the
// signature is variadic.
func (sig *Signature) MaxArgs() int {
	if sig == nil {
		return -1
	}
	n := 0
	for _, p := range sig.Params {
		if p.Variadic {
			return -1
		}
		n++
	}
	return n
}

// ParamString renders the parameter list: "a, b = 1, ...".
func (sig *Signature) ParamString() string {
	if sig == nil {
		return ""
	}
	parts := make([]string, 0, len(sig.Params))
	for _, p := range sig.Params {
		switch {
		case p.Variadic:
			parts = append(parts, "...")
		case p.HasDefault:
			parts = append(parts, p.Name+" = ...")
		default:
			parts = append(parts, p.Name)
		}
	}
	return strings.Join(parts, ", ")
}

// Symbol is a named entity defined in a document.
type Symbol struct {
	// Name is the identifier without its scope prefix. Autoload
	// functions keep the full qualified name (ns#sub#fn); dict method
	// symbols keep the dotted key (obj.method) — the latter are
	// indexed for workspace search but the behavior is experimental.
	Name  string
	Scope VimScope
	Kind  SymbolKind

	// NameStart/NameEnd span the identifier for go-to-definition.
	NameStart syntax.Point
	NameEnd   syntax.Point
	// DefStart/DefEnd span the whole definition (the function body
	// range for functions).
	DefStart syntax.Point
	DefEnd   syntax.Point

	Signature *Signature // non-nil for functions
	Parent    *Symbol    // parameters point at their function
}

// FullName returns the prefixed name (s:helper, g:count, ...).
func (s *Symbol) FullName() string {
	return s.Scope.Prefix() + s.Name
}

// SignatureString renders a synthesized declaration for hover output.
func (s *Symbol) SignatureString() string {
	if s.Signature == nil {
		return s.FullName()
	}
	var b strings.Builder
	b.WriteString("function")
	if s.Signature.Bang {
		b.WriteString("!")
	}
	b.WriteString(" ")
	b.WriteString(s.FullName())
	b.WriteString("(")
	b.WriteString(s.Signature.ParamString())
	b.WriteString(")")
	if s.Signature.Abort {
		b.WriteString(" abort")
	}
	return b.String()
}

// Reference records one identifier occurrence.
type Reference struct {
	Name   string
	Scope  VimScope
	Start  syntax.Point
	End    syntax.Point
	IsCall bool
}

// FullName returns the prefixed name of the referenced symbol.
func (r *Reference) FullName() string {
	return r.Scope.Prefix() + r.Name
}

// IsAutoload reports whether the reference names an autoload symbol.
func (r *Reference) IsAutoload() bool {
	return strings.Contains(r.Name, "#")
}
