// Copyright © 2024 The hjkls authors

// Package builtins holds the static Vim data tables consumed by the
// completion, hover, and diagnostic layers: built-in functions with
// signatures, Ex commands, autocmd events, option names, map-command
// arguments, feature names, and v: variables. The tables are derived
// from the Vim runtime documentation and embedded as read-only data.
package builtins

import "strings"

// Availability describes which editors provide a builtin function.
type Availability int

const (
	// AvailCommon is available in both Vim and Neovim.
	AvailCommon Availability = iota
	// AvailVimOnly is Vim-only (ch_*, job_*, popup_*, term_*).
	AvailVimOnly
	// AvailNeovimOnly is Neovim-only (nvim_*, stdpath, ...).
	AvailNeovimOnly
)

// EditorMode filters completions by target editor.
type EditorMode int

const (
	ModeBoth EditorMode = iota
	ModeVim
	ModeNeovim
)

// ParseEditorMode maps a CLI flag value to an EditorMode.
func ParseEditorMode(s string) EditorMode {
	switch strings.ToLower(s) {
	case "vim":
		return ModeVim
	case "nvim", "neovim":
		return ModeNeovim
	default:
		return ModeBoth
	}
}

// LabelSuffix returns the completion label suffix for the availability.
func (a Availability) LabelSuffix() string {
	switch a {
	case AvailVimOnly:
		return " [Vim only]"
	case AvailNeovimOnly:
		return " [Neovim only]"
	default:
		return ""
	}
}

// Compatible reports whether the availability matches the editor mode.
func (a Availability) Compatible(mode EditorMode) bool {
	switch {
	case mode == ModeVim && a == AvailNeovimOnly:
		return false
	case mode == ModeNeovim && a == AvailVimOnly:
		return false
	}
	return true
}

// Function describes one built-in Vim function.
type Function struct {
	Name        string
	Signature   string // Vim help notation: strlen({string})
	Description string
	Availability Availability
}

// Arity returns the [min, max] argument interval declared by the
// signature. Optional arguments appear in help notation as
// "[, {arg}]" groups and variadic tails as "{...}" or "...".
// max is -1 when the signature is variadic.
func (f *Function) Arity() (min, max int) {
	return parseSignatureArity(f.Signature)
}

// parseSignatureArity counts required and optional parameters in a
// help-notation signature string.
func parseSignatureArity(sig string) (min, max int) {
	open := strings.IndexByte(sig, '(')
	close := strings.LastIndexByte(sig, ')')
	if open < 0 || close <= open {
		return 0, 0
	}
	inner := sig[open+1 : close]
	if strings.TrimSpace(inner) == "" {
		return 0, 0
	}

	depth := 0 // bracket depth: inside [...] params are optional
	variadic := false
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '.':
			if strings.HasPrefix(inner[i:], "...") {
				variadic = true
				i += 2
			}
		case '{':
			end := strings.IndexByte(inner[i:], '}')
			if end < 0 {
				return min, max
			}
			name := inner[i+1 : i+end]
			i += end
			if name == "..." || strings.HasSuffix(name, "...") {
				variadic = true
				continue
			}
			max++
			if depth == 0 {
				min++
			}
		}
	}
	if variadic {
		return min, -1
	}
	return min, max
}

var functionIndex map[string]*Function

func init() {
	functionIndex = make(map[string]*Function, len(Functions))
	for i := range Functions {
		functionIndex[Functions[i].Name] = &Functions[i]
	}
}

// LookupFunction returns the builtin function with the given name.
func LookupFunction(name string) (*Function, bool) {
	f, ok := functionIndex[name]
	return f, ok
}

// Functions is the built-in function table.
// Reference: :help function-list
var Functions = []Function{
	// String functions
	{Name: "strlen", Signature: "strlen({string})", Description: "Return the number of bytes in {string}", Availability: AvailCommon},
	{Name: "strchars", Signature: "strchars({string} [, {skipcc}])", Description: "Return the number of characters in {string}", Availability: AvailCommon},
	{Name: "strwidth", Signature: "strwidth({string})", Description: "Return the display width of {string}", Availability: AvailCommon},
	{Name: "strdisplaywidth", Signature: "strdisplaywidth({string} [, {col}])", Description: "Return the display width of {string} starting at {col}", Availability: AvailCommon},
	{Name: "substitute", Signature: "substitute({string}, {pat}, {sub}, {flags})", Description: "Replace {pat} with {sub} in {string}", Availability: AvailCommon},
	{Name: "submatch", Signature: "submatch({nr} [, {list}])", Description: "Return a specific match in substitute", Availability: AvailCommon},
	{Name: "strpart", Signature: "strpart({string}, {start} [, {len} [, {chars}]])", Description: "Return part of a string", Availability: AvailCommon},
	{Name: "stridx", Signature: "stridx({haystack}, {needle} [, {start}])", Description: "Return index of {needle} in {haystack}", Availability: AvailCommon},
	{Name: "strridx", Signature: "strridx({haystack}, {needle} [, {start}])", Description: "Return last index of {needle} in {haystack}", Availability: AvailCommon},
	{Name: "split", Signature: "split({string} [, {pattern} [, {keepempty}]])", Description: "Split {string} into a List", Availability: AvailCommon},
	{Name: "join", Signature: "join({list} [, {sep}])", Description: "Join List items into a string", Availability: AvailCommon},
	{Name: "tolower", Signature: "tolower({string})", Description: "Return {string} lowercased", Availability: AvailCommon},
	{Name: "toupper", Signature: "toupper({string})", Description: "Return {string} uppercased", Availability: AvailCommon},
	{Name: "trim", Signature: "trim({text} [, {mask} [, {dir}]])", Description: "Remove characters from the edges of {text}", Availability: AvailCommon},
	{Name: "printf", Signature: "printf({fmt}, {expr1}...)", Description: "Format text with printf-style specifiers", Availability: AvailCommon},
	{Name: "escape", Signature: "escape({string}, {chars})", Description: "Escape {chars} in {string} with a backslash", Availability: AvailCommon},
	{Name: "shellescape", Signature: "shellescape({string} [, {special}])", Description: "Escape {string} for a shell command", Availability: AvailCommon},
	{Name: "fnameescape", Signature: "fnameescape({string})", Description: "Escape {string} for use as a file name", Availability: AvailCommon},
	{Name: "match", Signature: "match({expr}, {pat} [, {start} [, {count}]])", Description: "Return position where {pat} matches in {expr}", Availability: AvailCommon},
	{Name: "matchend", Signature: "matchend({expr}, {pat} [, {start} [, {count}]])", Description: "Return position where {pat} ends in {expr}", Availability: AvailCommon},
	{Name: "matchstr", Signature: "matchstr({expr}, {pat} [, {start} [, {count}]])", Description: "Return the match of {pat} in {expr}", Availability: AvailCommon},
	{Name: "matchlist", Signature: "matchlist({expr}, {pat} [, {start} [, {count}]])", Description: "Return the match and submatches of {pat}", Availability: AvailCommon},
	{Name: "str2nr", Signature: "str2nr({string} [, {base} [, {quoted}]])", Description: "Convert a string to a Number", Availability: AvailCommon},
	{Name: "str2float", Signature: "str2float({string} [, {quoted}])", Description: "Convert a string to a Float", Availability: AvailCommon},
	{Name: "string", Signature: "string({expr})", Description: "Return the string representation of {expr}", Availability: AvailCommon},
	{Name: "nr2char", Signature: "nr2char({expr} [, {utf8}])", Description: "Return the character for a number value", Availability: AvailCommon},
	{Name: "char2nr", Signature: "char2nr({string} [, {utf8}])", Description: "Return the number value of the first char", Availability: AvailCommon},
	{Name: "repeat", Signature: "repeat({expr}, {count})", Description: "Repeat {expr} {count} times", Availability: AvailCommon},
	{Name: "byteidx", Signature: "byteidx({expr}, {nr} [, {utf16}])", Description: "Byte index of character {nr} in {expr}", Availability: AvailCommon},

	// List functions
	{Name: "len", Signature: "len({expr})", Description: "Return the length of {expr}", Availability: AvailCommon},
	{Name: "empty", Signature: "empty({expr})", Description: "Check if {expr} is empty", Availability: AvailCommon},
	{Name: "add", Signature: "add({object}, {expr})", Description: "Append {expr} to {object}", Availability: AvailCommon},
	{Name: "insert", Signature: "insert({object}, {item} [, {idx}])", Description: "Insert {item} in {object}", Availability: AvailCommon},
	{Name: "remove", Signature: "remove({list}, {idx} [, {end}])", Description: "Remove items from a List or Dictionary", Availability: AvailCommon},
	{Name: "copy", Signature: "copy({expr})", Description: "Make a shallow copy of {expr}", Availability: AvailCommon},
	{Name: "deepcopy", Signature: "deepcopy({expr} [, {noref}])", Description: "Make a full copy of {expr}", Availability: AvailCommon},
	{Name: "filter", Signature: "filter({expr1}, {expr2})", Description: "Remove items where {expr2} is false", Availability: AvailCommon},
	{Name: "map", Signature: "map({expr1}, {expr2})", Description: "Replace each item with the result of {expr2}", Availability: AvailCommon},
	{Name: "reduce", Signature: "reduce({object}, {func} [, {initial}])", Description: "Reduce {object} with {func}", Availability: AvailCommon},
	{Name: "sort", Signature: "sort({list} [, {how} [, {dict}]])", Description: "Sort a List in-place", Availability: AvailCommon},
	{Name: "reverse", Signature: "reverse({object})", Description: "Reverse the order of items", Availability: AvailCommon},
	{Name: "uniq", Signature: "uniq({list} [, {how} [, {dict}]])", Description: "Remove adjacent duplicates from a List", Availability: AvailCommon},
	{Name: "index", Signature: "index({object}, {expr} [, {start} [, {ic}]])", Description: "Index of {expr} in {object}", Availability: AvailCommon},
	{Name: "extend", Signature: "extend({expr1}, {expr2} [, {expr3}])", Description: "Append or merge {expr2} into {expr1}", Availability: AvailCommon},
	{Name: "range", Signature: "range({start} [, {end} [, {stride}]])", Description: "Return a List of numbers", Availability: AvailCommon},
	{Name: "count", Signature: "count({comp}, {expr} [, {ic} [, {start}]])", Description: "Count occurrences of {expr}", Availability: AvailCommon},
	{Name: "max", Signature: "max({expr})", Description: "Maximum value in a List or Dictionary", Availability: AvailCommon},
	{Name: "min", Signature: "min({expr})", Description: "Minimum value in a List or Dictionary", Availability: AvailCommon},
	{Name: "flatten", Signature: "flatten({list} [, {maxdepth}])", Description: "Flatten a nested List", Availability: AvailCommon},

	// Dictionary functions
	{Name: "get", Signature: "get({object}, {key} [, {default}])", Description: "Get an item, with a default for missing keys", Availability: AvailCommon},
	{Name: "has_key", Signature: "has_key({dict}, {key})", Description: "Check whether {key} is present in {dict}", Availability: AvailCommon},
	{Name: "keys", Signature: "keys({dict})", Description: "Return the keys of {dict}", Availability: AvailCommon},
	{Name: "values", Signature: "values({dict})", Description: "Return the values of {dict}", Availability: AvailCommon},
	{Name: "items", Signature: "items({dict})", Description: "Return the key-value pairs of {dict}", Availability: AvailCommon},

	// Type functions
	{Name: "type", Signature: "type({expr})", Description: "Return the type number of {expr}", Availability: AvailCommon},
	{Name: "islocked", Signature: "islocked({expr})", Description: "Check whether {expr} is locked", Availability: AvailCommon},
	{Name: "function", Signature: "function({name} [, {arglist}] [, {dict}])", Description: "Return a Funcref to {name}", Availability: AvailCommon},
	{Name: "funcref", Signature: "funcref({name} [, {arglist}] [, {dict}])", Description: "Return a Funcref that stays bound to {name}", Availability: AvailCommon},
	{Name: "call", Signature: "call({func}, {arglist} [, {dict}])", Description: "Call {func} with arguments from {arglist}", Availability: AvailCommon},
	{Name: "eval", Signature: "eval({string})", Description: "Evaluate {string} as an expression", Availability: AvailCommon},
	{Name: "exists", Signature: "exists({expr})", Description: "Check whether a variable, function or option exists", Availability: AvailCommon},

	// Buffer / window functions
	{Name: "bufnr", Signature: "bufnr([{buf} [, {create}]])", Description: "Return the number of buffer {buf}", Availability: AvailCommon},
	{Name: "bufname", Signature: "bufname([{buf}])", Description: "Return the name of buffer {buf}", Availability: AvailCommon},
	{Name: "bufexists", Signature: "bufexists({buf})", Description: "Check whether buffer {buf} exists", Availability: AvailCommon},
	{Name: "buflisted", Signature: "buflisted({buf})", Description: "Check whether buffer {buf} is listed", Availability: AvailCommon},
	{Name: "bufloaded", Signature: "bufloaded({buf})", Description: "Check whether buffer {buf} is loaded", Availability: AvailCommon},
	{Name: "bufwinnr", Signature: "bufwinnr({buf})", Description: "Window number of buffer {buf}", Availability: AvailCommon},
	{Name: "winnr", Signature: "winnr([{arg}])", Description: "Return the number of the current window", Availability: AvailCommon},
	{Name: "winheight", Signature: "winheight({nr})", Description: "Height of window {nr}", Availability: AvailCommon},
	{Name: "winwidth", Signature: "winwidth({nr})", Description: "Width of window {nr}", Availability: AvailCommon},
	{Name: "tabpagenr", Signature: "tabpagenr([{arg}])", Description: "Return the number of the current tab page", Availability: AvailCommon},
	{Name: "getline", Signature: "getline({lnum} [, {end}])", Description: "Return lines from the current buffer", Availability: AvailCommon},
	{Name: "setline", Signature: "setline({lnum}, {text})", Description: "Set line {lnum} to {text}", Availability: AvailCommon},
	{Name: "append", Signature: "append({lnum}, {text})", Description: "Append {text} below line {lnum}", Availability: AvailCommon},
	{Name: "deletebufline", Signature: "deletebufline({buf}, {first} [, {last}])", Description: "Delete lines from buffer {buf}", Availability: AvailCommon},
	{Name: "line", Signature: "line({expr} [, {winid}])", Description: "Line number of position {expr}", Availability: AvailCommon},
	{Name: "col", Signature: "col({expr} [, {winid}])", Description: "Column number of position {expr}", Availability: AvailCommon},
	{Name: "getpos", Signature: "getpos({expr})", Description: "Return the position of {expr}", Availability: AvailCommon},
	{Name: "setpos", Signature: "setpos({expr}, {list})", Description: "Set the position of {expr}", Availability: AvailCommon},
	{Name: "cursor", Signature: "cursor({lnum}, {col} [, {off}])", Description: "Move the cursor", Availability: AvailCommon},
	{Name: "search", Signature: "search({pattern} [, {flags} [, {stopline} [, {timeout} [, {skip}]]]])", Description: "Search for {pattern}", Availability: AvailCommon},
	{Name: "searchpair", Signature: "searchpair({start}, {middle}, {end} [, {flags} [, {skip} [, {stopline} [, {timeout}]]]])", Description: "Search for matching start/end pairs", Availability: AvailCommon},
	{Name: "indent", Signature: "indent({lnum})", Description: "Indent of line {lnum}", Availability: AvailCommon},
	{Name: "mode", Signature: "mode([{expr}])", Description: "Return the current editing mode", Availability: AvailCommon},
	{Name: "visualmode", Signature: "visualmode([{expr}])", Description: "Return the last visual mode used", Availability: AvailCommon},
	{Name: "expand", Signature: "expand({string} [, {nosuf} [, {list}]])", Description: "Expand special keywords in {string}", Availability: AvailCommon},
	{Name: "input", Signature: "input({prompt} [, {text} [, {completion}]])", Description: "Prompt the user for input", Availability: AvailCommon},
	{Name: "confirm", Signature: "confirm({msg} [, {choices} [, {default} [, {type}]]])", Description: "Show a confirmation dialog", Availability: AvailCommon},

	// File functions
	{Name: "filereadable", Signature: "filereadable({file})", Description: "Check whether {file} can be read", Availability: AvailCommon},
	{Name: "filewritable", Signature: "filewritable({file})", Description: "Check whether {file} can be written", Availability: AvailCommon},
	{Name: "isdirectory", Signature: "isdirectory({directory})", Description: "Check whether {directory} exists", Availability: AvailCommon},
	{Name: "glob", Signature: "glob({expr} [, {nosuf} [, {list} [, {alllinks}]]])", Description: "Expand a file wildcard", Availability: AvailCommon},
	{Name: "globpath", Signature: "globpath({path}, {expr} [, {nosuf} [, {list} [, {alllinks}]]])", Description: "Glob {expr} in all directories of {path}", Availability: AvailCommon},
	{Name: "fnamemodify", Signature: "fnamemodify({fname}, {mods})", Description: "Modify a file name", Availability: AvailCommon},
	{Name: "readfile", Signature: "readfile({fname} [, {type} [, {max}]])", Description: "Read a file into a List of lines", Availability: AvailCommon},
	{Name: "writefile", Signature: "writefile({object}, {fname} [, {flags}])", Description: "Write a List of lines to a file", Availability: AvailCommon},
	{Name: "delete", Signature: "delete({fname} [, {flags}])", Description: "Delete file {fname}", Availability: AvailCommon},
	{Name: "mkdir", Signature: "mkdir({name} [, {flags} [, {prot}]])", Description: "Create directory {name}", Availability: AvailCommon},
	{Name: "getcwd", Signature: "getcwd([{winnr} [, {tabnr}]])", Description: "Return the current working directory", Availability: AvailCommon},
	{Name: "tempname", Signature: "tempname()", Description: "Return the name of a temporary file", Availability: AvailCommon},
	{Name: "resolve", Signature: "resolve({filename})", Description: "Resolve symbolic links in {filename}", Availability: AvailCommon},
	{Name: "simplify", Signature: "simplify({filename})", Description: "Simplify {filename} without changing meaning", Availability: AvailCommon},
	{Name: "executable", Signature: "executable({expr})", Description: "Check whether program {expr} can be run", Availability: AvailCommon},
	{Name: "exepath", Signature: "exepath({expr})", Description: "Full path of program {expr}", Availability: AvailCommon},

	// System functions
	{Name: "system", Signature: "system({cmd} [, {input}])", Description: "Run a shell command and return its output", Availability: AvailCommon},
	{Name: "systemlist", Signature: "systemlist({cmd} [, {input}])", Description: "Run a shell command and return output lines", Availability: AvailCommon},
	{Name: "has", Signature: "has({feature} [, {check}])", Description: "Check for a compiled-in feature", Availability: AvailCommon},
	{Name: "hostname", Signature: "hostname()", Description: "Return the name of the host machine", Availability: AvailCommon},
	{Name: "localtime", Signature: "localtime()", Description: "Return the current time in seconds", Availability: AvailCommon},
	{Name: "strftime", Signature: "strftime({format} [, {time}])", Description: "Format a time value", Availability: AvailCommon},
	{Name: "reltime", Signature: "reltime([{start} [, {end}]])", Description: "Return a time value, possibly a difference", Availability: AvailCommon},
	{Name: "reltimestr", Signature: "reltimestr({time})", Description: "Convert a reltime() value to a string", Availability: AvailCommon},
	{Name: "getenv", Signature: "getenv({name})", Description: "Return environment variable {name}", Availability: AvailCommon},
	{Name: "setenv", Signature: "setenv({name}, {val})", Description: "Set environment variable {name}", Availability: AvailCommon},

	// Interaction / messages
	{Name: "echoraw", Signature: "echoraw({string})", Description: "Output {string} as-is", Availability: AvailVimOnly},
	{Name: "execute", Signature: "execute({command} [, {silent}])", Description: "Execute {command} and return its output", Availability: AvailCommon},
	{Name: "feedkeys", Signature: "feedkeys({string} [, {mode}])", Description: "Add key sequence to the typeahead buffer", Availability: AvailCommon},
	{Name: "getchar", Signature: "getchar([{expr}])", Description: "Get one character from the user", Availability: AvailCommon},
	{Name: "getcharstr", Signature: "getcharstr([{expr}])", Description: "Get one character from the user as a string", Availability: AvailCommon},

	// Registers / marks
	{Name: "getreg", Signature: "getreg([{regname} [, 1 [, {list}]]])", Description: "Return the contents of a register", Availability: AvailCommon},
	{Name: "setreg", Signature: "setreg({regname}, {value} [, {options}])", Description: "Set the contents of a register", Availability: AvailCommon},
	{Name: "getregtype", Signature: "getregtype([{regname}])", Description: "Return the type of a register", Availability: AvailCommon},

	// JSON
	{Name: "json_encode", Signature: "json_encode({expr})", Description: "Encode {expr} as JSON", Availability: AvailCommon},
	{Name: "json_decode", Signature: "json_decode({string})", Description: "Decode a JSON string", Availability: AvailCommon},

	// Timers
	{Name: "timer_start", Signature: "timer_start({time}, {callback} [, {options}])", Description: "Create a timer", Availability: AvailCommon},
	{Name: "timer_stop", Signature: "timer_stop({timer})", Description: "Stop a timer", Availability: AvailCommon},
	{Name: "timer_stopall", Signature: "timer_stopall()", Description: "Stop all timers", Availability: AvailCommon},

	// Vim-only channel/job/popup/terminal API
	{Name: "job_start", Signature: "job_start({command} [, {options}])", Description: "Start a job", Availability: AvailVimOnly},
	{Name: "job_stop", Signature: "job_stop({job} [, {how}])", Description: "Stop a job", Availability: AvailVimOnly},
	{Name: "job_status", Signature: "job_status({job})", Description: "Return the status of a job", Availability: AvailVimOnly},
	{Name: "ch_open", Signature: "ch_open({address} [, {options}])", Description: "Open a channel", Availability: AvailVimOnly},
	{Name: "ch_sendexpr", Signature: "ch_sendexpr({handle}, {expr} [, {options}])", Description: "Send an expression over a channel", Availability: AvailVimOnly},
	{Name: "popup_create", Signature: "popup_create({what}, {options})", Description: "Create a popup window", Availability: AvailVimOnly},
	{Name: "popup_close", Signature: "popup_close({id} [, {result}])", Description: "Close a popup window", Availability: AvailVimOnly},
	{Name: "term_start", Signature: "term_start({cmd} [, {options}])", Description: "Open a terminal window running {cmd}", Availability: AvailVimOnly},

	// Neovim-only API
	{Name: "stdpath", Signature: "stdpath({what})", Description: "Return a standard path for Neovim", Availability: AvailNeovimOnly},
	{Name: "nvim_get_current_buf", Signature: "nvim_get_current_buf()", Description: "Return the current buffer handle", Availability: AvailNeovimOnly},
	{Name: "nvim_buf_set_lines", Signature: "nvim_buf_set_lines({buffer}, {start}, {end}, {strict_indexing}, {replacement})", Description: "Set buffer lines via the Neovim API", Availability: AvailNeovimOnly},
	{Name: "nvim_create_autocmd", Signature: "nvim_create_autocmd({event}, {opts})", Description: "Create an autocommand via the Neovim API", Availability: AvailNeovimOnly},
	{Name: "luaeval", Signature: "luaeval({expr} [, {expr}])", Description: "Evaluate a Lua expression", Availability: AvailNeovimOnly},

	// Misc
	{Name: "maparg", Signature: "maparg({name} [, {mode} [, {abbr} [, {dict}]]])", Description: "Return the rhs of mapping {name}", Availability: AvailCommon},
	{Name: "mapcheck", Signature: "mapcheck({name} [, {mode} [, {abbr}]])", Description: "Check for mappings matching {name}", Availability: AvailCommon},
	{Name: "hlexists", Signature: "hlexists({name})", Description: "Check whether highlight group {name} exists", Availability: AvailCommon},
	{Name: "synID", Signature: "synID({lnum}, {col}, {trans})", Description: "Syntax ID at position", Availability: AvailCommon},
	{Name: "synIDattr", Signature: "synIDattr({synID}, {what} [, {mode}])", Description: "Attribute {what} of syntax ID {synID}", Availability: AvailCommon},
	{Name: "did_filetype", Signature: "did_filetype()", Description: "Check whether a FileType autocommand was used", Availability: AvailCommon},
	{Name: "histadd", Signature: "histadd({history}, {item})", Description: "Add an item to a history", Availability: AvailCommon},
	{Name: "histget", Signature: "histget({history} [, {index}])", Description: "Get an item from a history", Availability: AvailCommon},
	{Name: "abs", Signature: "abs({expr})", Description: "Absolute value of {expr}", Availability: AvailCommon},
	{Name: "ceil", Signature: "ceil({expr})", Description: "Round {expr} up", Availability: AvailCommon},
	{Name: "floor", Signature: "floor({expr})", Description: "Round {expr} down", Availability: AvailCommon},
	{Name: "round", Signature: "round({expr})", Description: "Round {expr} to the nearest integer", Availability: AvailCommon},
	{Name: "fmod", Signature: "fmod({expr1}, {expr2})", Description: "Remainder of {expr1} / {expr2}", Availability: AvailCommon},
	{Name: "pow", Signature: "pow({x}, {y})", Description: "{x} to the power of {y}", Availability: AvailCommon},
	{Name: "sqrt", Signature: "sqrt({expr})", Description: "Square root of {expr}", Availability: AvailCommon},
	{Name: "rand", Signature: "rand([{expr}])", Description: "Return a pseudo-random number", Availability: AvailCommon},
	{Name: "srand", Signature: "srand([{expr}])", Description: "Initialize the pseudo-random seed", Availability: AvailCommon},
}
