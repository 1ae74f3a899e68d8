// Copyright © 2024 The hjkls authors

package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/hjkls/hjkls/analysis"
	"github.com/hjkls/hjkls/builtins"
)

// completionContext classifies what belongs at the cursor.
type completionContext int

const (
	// ctxCommand is line-start command position: Ex commands.
	ctxCommand completionContext = iota
	// ctxAutocmdEvent follows autocmd: event names.
	ctxAutocmdEvent
	// ctxOption follows set/setlocal/setglobal: option names.
	ctxOption
	// ctxMapArgument is a bare angle bracket after a map command.
	ctxMapArgument
	// ctxHasFeature is inside has('...'): feature names.
	ctxHasFeature
	// ctxExpression is everything else: functions and variables.
	ctxExpression
)

// textDocumentCompletion handles the textDocument/completion request.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	snap := doc.Snapshot()

	line := snap.Buf.Line(int(params.Position.Line))
	col := int(params.Position.Character)
	if col > len(line) {
		col = len(line)
	}

	prefixStart := completionTokenStart(line, col)
	prefix := line[prefixStart:col]

	var items []protocol.CompletionItem
	switch completionContextAt(line, col) {
	case ctxCommand:
		items = commandCompletions(prefix)
	case ctxAutocmdEvent:
		items = eventCompletions(prefix)
	case ctxOption:
		items = optionCompletions(prefix)
	case ctxMapArgument:
		items = mapArgumentCompletions(prefix)
	case ctxHasFeature:
		items = featureCompletions(prefix)
	default:
		items = s.expressionCompletions(snap, prefix)
	}

	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}

// completionTokenStart finds the start of the token being completed,
// including a scope prefix (s:, g:, ...) when present.
func completionTokenStart(line string, col int) int {
	start := col
	for start > 0 {
		c := line[start-1]
		if isWordByte(c) || c == '#' {
			start--
			continue
		}
		break
	}
	// Include a scope prefix directly before the identifier.
	if start >= 2 && line[start-1] == ':' && isScopeByte(line[start-2]) {
		if start < 3 || !isWordByte(line[start-3]) {
			start -= 2
		}
	}
	return start
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isScopeByte(c byte) bool {
	switch c {
	case 's', 'g', 'l', 'a', 'b', 'w', 't', 'v':
		return true
	}
	return false
}

// completionContextAt derives the completion context from the line
// prefix before the cursor.
func completionContextAt(line string, col int) completionContext {
	before := line[:col]
	trimmed := strings.TrimLeft(before, " \t:")

	if trimmed == "" {
		return ctxCommand
	}

	// autocmd [group] Event...
	if rest, ok := cutCommand(trimmed, "autocmd", "au"); ok {
		if len(strings.Fields(rest)) <= 1 {
			return ctxAutocmdEvent
		}
	}

	// set/setlocal/setglobal option...
	for _, cmd := range []string{"setlocal", "setglobal", "setl", "setg", "set", "se"} {
		if rest, ok := cutCommand(trimmed, cmd); ok {
			_ = rest
			return ctxOption
		}
	}

	// map commands typing a bare <...
	if isMapPrefix(trimmed) {
		fields := strings.Fields(trimmed)
		last := fields[len(fields)-1]
		if strings.HasSuffix(before, "<") || (strings.HasPrefix(last, "<") && !strings.Contains(last, ">")) {
			return ctxMapArgument
		}
	}

	// has('... with an unclosed quote.
	if pos := strings.LastIndex(before, "has("); pos >= 0 {
		after := before[pos:]
		if strings.Count(after, "'")%2 == 1 || strings.Count(after, "\"")%2 == 1 {
			return ctxHasFeature
		}
	}

	// First word without any expression markers: command position.
	if !strings.ContainsAny(trimmed, "=(") {
		if firstEnd := strings.IndexAny(trimmed, " \t"); firstEnd < 0 {
			return ctxCommand
		}
	}

	return ctxExpression
}

// cutCommand strips a leading command word (one of names) followed by
// a space or bang from s.
func cutCommand(s string, names ...string) (string, bool) {
	for _, name := range names {
		rest, ok := strings.CutPrefix(s, name)
		if !ok {
			continue
		}
		rest = strings.TrimPrefix(rest, "!")
		if rest == "" {
			continue
		}
		if rest[0] == ' ' || rest[0] == '\t' {
			return strings.TrimLeft(rest, " \t"), true
		}
	}
	return "", false
}

var mapCommandPrefixes = []string{
	"map", "nmap", "vmap", "xmap", "smap", "imap", "cmap", "omap", "lmap", "tmap",
	"noremap", "nnoremap", "vnoremap", "xnoremap", "snoremap", "inoremap",
	"cnoremap", "onoremap", "lnoremap", "tnoremap",
}

func isMapPrefix(trimmed string) bool {
	first := trimmed
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		first = trimmed[:i]
	} else {
		return false
	}
	first = strings.TrimSuffix(first, "!")
	for _, cmd := range mapCommandPrefixes {
		if first == cmd {
			return true
		}
	}
	return false
}

func commandCompletions(prefix string) []protocol.CompletionItem {
	kind := protocol.CompletionItemKindKeyword
	var items []protocol.CompletionItem
	for i := range builtins.Commands {
		cmd := &builtins.Commands[i]
		if !strings.HasPrefix(cmd.Name, prefix) {
			continue
		}
		items = append(items, protocol.CompletionItem{
			Label:  cmd.Name,
			Kind:   &kind,
			Detail: strPtr(cmd.Description),
		})
	}
	return items
}

func eventCompletions(prefix string) []protocol.CompletionItem {
	kind := protocol.CompletionItemKindEvent
	var items []protocol.CompletionItem
	for _, ev := range builtins.Events {
		if !strings.HasPrefix(strings.ToLower(ev), strings.ToLower(prefix)) {
			continue
		}
		items = append(items, protocol.CompletionItem{Label: ev, Kind: &kind})
	}
	return items
}

func optionCompletions(prefix string) []protocol.CompletionItem {
	kind := protocol.CompletionItemKindProperty
	var items []protocol.CompletionItem
	for i := range builtins.Options {
		opt := &builtins.Options[i]
		if !strings.HasPrefix(opt.Name, prefix) && !strings.HasPrefix(opt.Short, prefix) {
			continue
		}
		item := protocol.CompletionItem{
			Label:  opt.Name,
			Kind:   &kind,
			Detail: strPtr(opt.Description),
		}
		if opt.Short != "" {
			item.FilterText = strPtr(opt.Name + " " + opt.Short)
		}
		items = append(items, item)
	}
	return items
}

func mapArgumentCompletions(prefix string) []protocol.CompletionItem {
	kind := protocol.CompletionItemKindKeyword
	var items []protocol.CompletionItem
	for _, arg := range builtins.MapArguments {
		if prefix != "" && !strings.HasPrefix(arg, prefix) && !strings.HasPrefix(arg[1:], prefix) {
			continue
		}
		items = append(items, protocol.CompletionItem{Label: arg, Kind: &kind})
	}
	return items
}

func featureCompletions(prefix string) []protocol.CompletionItem {
	kind := protocol.CompletionItemKindValue
	var items []protocol.CompletionItem
	for _, f := range builtins.Features {
		if !strings.HasPrefix(f, prefix) {
			continue
		}
		items = append(items, protocol.CompletionItem{Label: f, Kind: &kind})
	}
	return items
}

// expressionCompletions offers user symbols, workspace symbols,
// builtin functions, and v: variables. User symbols with an exact
// prefix match sort before builtins.
func (s *Server) expressionCompletions(snap Snapshot, prefix string) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	seen := make(map[string]bool)

	funcKind := protocol.CompletionItemKindFunction
	varKind := protocol.CompletionItemKindVariable

	add := func(label, detail string, kind protocol.CompletionItemKind, sortRank string) {
		if seen[label] {
			return
		}
		seen[label] = true
		item := protocol.CompletionItem{
			Label:    label,
			Kind:     &kind,
			SortText: strPtr(sortRank + label),
		}
		if detail != "" {
			item.Detail = strPtr(detail)
		}
		items = append(items, item)
	}

	// Live document symbols first.
	for _, sym := range snap.Sem.Symbols {
		full := sym.FullName()
		if prefix != "" && !strings.HasPrefix(full, prefix) {
			continue
		}
		kind := varKind
		detail := ""
		if sym.Kind == analysis.SymFunction || sym.Kind == analysis.SymAutoloadFunction {
			kind = funcKind
			detail = sym.SignatureString()
		}
		add(full, detail, kind, "0")
	}

	// Workspace symbols.
	s.ensureWorkspaceIndex()
	for _, hit := range s.index.Search(prefix, 200) {
		sym := hit.Symbol
		if sym.Scope == analysis.ScopeScript || sym.Scope == analysis.ScopeLocal {
			continue // invisible outside their file
		}
		full := sym.FullName()
		if prefix != "" && !strings.HasPrefix(full, prefix) {
			continue
		}
		kind := varKind
		detail := ""
		if sym.Kind == analysis.SymFunction || sym.Kind == analysis.SymAutoloadFunction {
			kind = funcKind
			detail = sym.SignatureString()
		}
		add(full, detail, kind, "1")
	}

	// Builtin functions, filtered by editor mode.
	for i := range builtins.Functions {
		f := &builtins.Functions[i]
		if prefix != "" && !strings.HasPrefix(f.Name, prefix) {
			continue
		}
		if !f.Availability.Compatible(s.editorMode) {
			continue
		}
		add(f.Name, f.Signature+f.Availability.LabelSuffix(), funcKind, "2")
	}

	// v: variables.
	for i := range builtins.Variables {
		v := &builtins.Variables[i]
		if prefix != "" && !strings.HasPrefix(v.Name, prefix) {
			continue
		}
		add(v.Name, v.Description, varKind, "2")
	}

	return items
}
