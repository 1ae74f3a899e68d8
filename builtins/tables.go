// Copyright © 2024 The hjkls authors

package builtins

// Command describes one Ex command name with an optional short form.
type Command struct {
	Name        string
	Description string
}

// Commands is the Ex command table offered in command-position
// completion. Reference: :help ex-cmd-index
var Commands = []Command{
	{Name: "autocmd", Description: "Define an autocommand"},
	{Name: "augroup", Description: "Start or list autocommand groups"},
	{Name: "buffer", Description: "Edit a buffer by number or name"},
	{Name: "bdelete", Description: "Delete a buffer"},
	{Name: "bnext", Description: "Go to the next buffer"},
	{Name: "bprevious", Description: "Go to the previous buffer"},
	{Name: "call", Description: "Call a function"},
	{Name: "cd", Description: "Change the current directory"},
	{Name: "close", Description: "Close the current window"},
	{Name: "command", Description: "Define a user command"},
	{Name: "const", Description: "Declare a constant"},
	{Name: "copy", Description: "Copy lines"},
	{Name: "delete", Description: "Delete lines"},
	{Name: "delcommand", Description: "Delete a user command"},
	{Name: "delfunction", Description: "Delete a function"},
	{Name: "doautocmd", Description: "Apply autocommands to the current buffer"},
	{Name: "echo", Description: "Echo an expression"},
	{Name: "echohl", Description: "Set highlighting for echo commands"},
	{Name: "echomsg", Description: "Echo a message and save it"},
	{Name: "echoerr", Description: "Echo an error message"},
	{Name: "edit", Description: "Edit a file"},
	{Name: "else", Description: "Take the else branch"},
	{Name: "elseif", Description: "Take the else branch with a condition"},
	{Name: "endfor", Description: "End a for loop"},
	{Name: "endfunction", Description: "End a function definition"},
	{Name: "endif", Description: "End an if block"},
	{Name: "endtry", Description: "End a try block"},
	{Name: "endwhile", Description: "End a while loop"},
	{Name: "execute", Description: "Execute a string as an Ex command"},
	{Name: "exit", Description: "Write the file and close the window"},
	{Name: "file", Description: "Show or set the current file name"},
	{Name: "filetype", Description: "Switch filetype detection on or off"},
	{Name: "finally", Description: "Start the finally clause of a try"},
	{Name: "finish", Description: "Stop sourcing a script"},
	{Name: "for", Description: "Start a for loop"},
	{Name: "function", Description: "Define a function"},
	{Name: "global", Description: "Execute commands on matching lines"},
	{Name: "grep", Description: "Run the grep program and jump to matches"},
	{Name: "help", Description: "Open a help window"},
	{Name: "highlight", Description: "Define highlighting"},
	{Name: "if", Description: "Execute commands when a condition is met"},
	{Name: "join", Description: "Join lines"},
	{Name: "let", Description: "Assign a value to a variable"},
	{Name: "lua", Description: "Execute Lua code"},
	{Name: "make", Description: "Run the make program and jump to errors"},
	{Name: "map", Description: "Define a key mapping"},
	{Name: "mapclear", Description: "Remove all mappings"},
	{Name: "mark", Description: "Set a mark"},
	{Name: "match", Description: "Define a highlight match"},
	{Name: "messages", Description: "Show message history"},
	{Name: "mkdir", Description: "Create a directory"},
	{Name: "move", Description: "Move lines"},
	{Name: "new", Description: "Open a new window with an empty buffer"},
	{Name: "nmap", Description: "Define a Normal mode mapping"},
	{Name: "nnoremap", Description: "Define a non-recursive Normal mode mapping"},
	{Name: "nohlsearch", Description: "Stop search highlighting"},
	{Name: "normal", Description: "Execute Normal mode commands"},
	{Name: "noremap", Description: "Define a non-recursive mapping"},
	{Name: "nunmap", Description: "Remove a Normal mode mapping"},
	{Name: "only", Description: "Close all windows but the current one"},
	{Name: "pwd", Description: "Print the current directory"},
	{Name: "quit", Description: "Quit the current window"},
	{Name: "qall", Description: "Quit all windows"},
	{Name: "read", Description: "Insert file contents"},
	{Name: "redir", Description: "Redirect messages"},
	{Name: "redraw", Description: "Redraw the screen"},
	{Name: "return", Description: "Return from a function"},
	{Name: "runtime", Description: "Source files from the runtime path"},
	{Name: "set", Description: "Show or set options"},
	{Name: "setlocal", Description: "Show or set local options"},
	{Name: "setglobal", Description: "Show or set global option values"},
	{Name: "sign", Description: "Manipulate signs"},
	{Name: "silent", Description: "Run a command silently"},
	{Name: "sleep", Description: "Do nothing for a while"},
	{Name: "sort", Description: "Sort lines"},
	{Name: "source", Description: "Read Vim commands from a file"},
	{Name: "split", Description: "Split the current window"},
	{Name: "substitute", Description: "Search and replace"},
	{Name: "syntax", Description: "Control syntax highlighting"},
	{Name: "tabnew", Description: "Open a new tab page"},
	{Name: "tabnext", Description: "Go to the next tab page"},
	{Name: "tabprevious", Description: "Go to the previous tab page"},
	{Name: "throw", Description: "Throw an exception"},
	{Name: "try", Description: "Start a try block"},
	{Name: "unlet", Description: "Delete a variable"},
	{Name: "unmap", Description: "Remove a mapping"},
	{Name: "update", Description: "Write the file when modified"},
	{Name: "verbose", Description: "Run a command with increased verbosity"},
	{Name: "version", Description: "Print version information"},
	{Name: "vertical", Description: "Make a split vertical"},
	{Name: "vimgrep", Description: "Search for a pattern in files"},
	{Name: "vmap", Description: "Define a Visual mode mapping"},
	{Name: "vnoremap", Description: "Define a non-recursive Visual mode mapping"},
	{Name: "vsplit", Description: "Split the current window vertically"},
	{Name: "while", Description: "Start a while loop"},
	{Name: "wincmd", Description: "Execute a window command"},
	{Name: "write", Description: "Write the file"},
	{Name: "wqall", Description: "Write all files and quit"},
	{Name: "xit", Description: "Write the file if modified and quit"},
	{Name: "yank", Description: "Yank lines into a register"},
}

// Events is the autocmd event name table.
// Reference: :help autocmd-events
var Events = []string{
	"BufAdd", "BufDelete", "BufEnter", "BufFilePost", "BufFilePre",
	"BufHidden", "BufLeave", "BufNew", "BufNewFile", "BufRead",
	"BufReadCmd", "BufReadPost", "BufReadPre", "BufUnload",
	"BufWinEnter", "BufWinLeave", "BufWipeout", "BufWrite",
	"BufWriteCmd", "BufWritePost", "BufWritePre",
	"CmdlineChanged", "CmdlineEnter", "CmdlineLeave",
	"CmdUndefined", "CmdwinEnter", "CmdwinLeave",
	"ColorScheme", "ColorSchemePre",
	"CompleteChanged", "CompleteDone", "CompleteDonePre",
	"CursorHold", "CursorHoldI", "CursorMoved", "CursorMovedI",
	"DiffUpdated", "DirChanged", "DirChangedPre",
	"ExitPre", "FileAppendCmd", "FileAppendPost", "FileAppendPre",
	"FileChangedRO", "FileChangedShell", "FileChangedShellPost",
	"FileReadCmd", "FileReadPost", "FileReadPre", "FileType",
	"FileWriteCmd", "FileWritePost", "FileWritePre",
	"FilterReadPost", "FilterReadPre", "FilterWritePost", "FilterWritePre",
	"FocusGained", "FocusLost", "FuncUndefined", "GUIEnter", "GUIFailed",
	"InsertChange", "InsertCharPre", "InsertEnter", "InsertLeave",
	"InsertLeavePre", "MenuPopup", "ModeChanged",
	"OptionSet", "QuickFixCmdPost", "QuickFixCmdPre", "QuitPre",
	"RemoteReply", "SafeState", "SessionLoadPost",
	"ShellCmdPost", "ShellFilterPost", "SourceCmd", "SourcePost",
	"SourcePre", "SpellFileMissing", "StdinReadPost", "StdinReadPre",
	"SwapExists", "Syntax", "TabClosed", "TabEnter", "TabLeave", "TabNew",
	"TermChanged", "TermOpen", "TermResponse", "TextChanged",
	"TextChangedI", "TextChangedP", "TextYankPost",
	"User", "VimEnter", "VimLeave", "VimLeavePre", "VimResized",
	"WinClosed", "WinEnter", "WinLeave", "WinNew", "WinResized",
	"WinScrolled",
}

var eventIndex map[string]bool

// IsEvent reports whether name is a known autocmd event. Matching is
// case-insensitive because Vim accepts any casing for event names.
func IsEvent(name string) bool {
	return eventIndex[foldName(name)]
}

// Option describes one settable option with an optional short form.
type Option struct {
	Name        string
	Short       string
	Description string
}

// Options is the option name table. Reference: :help option-list
var Options = []Option{
	{Name: "autoindent", Short: "ai", Description: "Take indent for new line from previous line"},
	{Name: "autoread", Short: "ar", Description: "Autom. read file when changed outside of Vim"},
	{Name: "autowrite", Short: "aw", Description: "Automatically write file if changed"},
	{Name: "background", Short: "bg", Description: "Background color brightness"},
	{Name: "backspace", Short: "bs", Description: "How backspace works at start of line"},
	{Name: "backup", Short: "bk", Description: "Keep backup file after overwriting a file"},
	{Name: "belloff", Short: "bo", Description: "Do not ring the bell for these reasons"},
	{Name: "binary", Short: "bin", Description: "Read/write/edit file in binary mode"},
	{Name: "buftype", Short: "bt", Description: "Special type of buffer"},
	{Name: "clipboard", Short: "cb", Description: "Use the clipboard as the unnamed register"},
	{Name: "cmdheight", Short: "ch", Description: "Number of lines for the command-line"},
	{Name: "colorcolumn", Short: "cc", Description: "Columns to highlight"},
	{Name: "columns", Short: "co", Description: "Number of columns in the display"},
	{Name: "compatible", Short: "cp", Description: "Behave Vi-compatible as much as possible"},
	{Name: "completeopt", Short: "cot", Description: "Options for Insert mode completion"},
	{Name: "conceallevel", Short: "cole", Description: "Whether concealable text is shown"},
	{Name: "cursorcolumn", Short: "cuc", Description: "Highlight the screen column of the cursor"},
	{Name: "cursorline", Short: "cul", Description: "Highlight the screen line of the cursor"},
	{Name: "dictionary", Short: "dict", Description: "List of file names used for keyword completion"},
	{Name: "diffopt", Short: "dip", Description: "Options for diff mode"},
	{Name: "encoding", Short: "enc", Description: "Encoding used internally"},
	{Name: "errorformat", Short: "efm", Description: "Description of the lines in the error file"},
	{Name: "expandtab", Short: "et", Description: "Use spaces when <Tab> is inserted"},
	{Name: "fileencoding", Short: "fenc", Description: "File encoding for multibyte text"},
	{Name: "fileformat", Short: "ff", Description: "File format used for file I/O"},
	{Name: "filetype", Short: "ft", Description: "Type of file, used for autocommands"},
	{Name: "foldenable", Short: "fen", Description: "Set to display all folds open"},
	{Name: "foldlevel", Short: "fdl", Description: "Close folds with a level higher than this"},
	{Name: "foldmethod", Short: "fdm", Description: "Folding type"},
	{Name: "formatoptions", Short: "fo", Description: "How automatic formatting is done"},
	{Name: "guifont", Short: "gfn", Description: "Names of fonts to be used in the GUI"},
	{Name: "hidden", Short: "hid", Description: "Do not unload buffer when it is abandoned"},
	{Name: "history", Short: "hi", Description: "Number of command-lines that are remembered"},
	{Name: "hlsearch", Short: "hls", Description: "Highlight matches with last search pattern"},
	{Name: "ignorecase", Short: "ic", Description: "Ignore case in search patterns"},
	{Name: "incsearch", Short: "is", Description: "Highlight match while typing search pattern"},
	{Name: "laststatus", Short: "ls", Description: "Tells when last window has status line"},
	{Name: "lazyredraw", Short: "lz", Description: "Do not redraw while executing macros"},
	{Name: "linebreak", Short: "lbr", Description: "Wrap long lines at a blank"},
	{Name: "lines", Short: "", Description: "Number of lines in the display"},
	{Name: "list", Short: "", Description: "Show <Tab> and <EOL>"},
	{Name: "listchars", Short: "lcs", Description: "Characters for displaying in list mode"},
	{Name: "magic", Short: "", Description: "Changes special characters in search patterns"},
	{Name: "makeprg", Short: "mp", Description: "Program used for the :make command"},
	{Name: "modeline", Short: "ml", Description: "Recognize modelines at start or end of file"},
	{Name: "modifiable", Short: "ma", Description: "Changes to the text are not possible"},
	{Name: "modified", Short: "mod", Description: "Buffer has been modified"},
	{Name: "mouse", Short: "", Description: "Enable the use of mouse clicks"},
	{Name: "number", Short: "nu", Description: "Print the line number in front of each line"},
	{Name: "numberwidth", Short: "nuw", Description: "Number of columns used for the line number"},
	{Name: "omnifunc", Short: "ofu", Description: "Function for filetype-specific completion"},
	{Name: "path", Short: "pa", Description: "List of directories searched with gf et al."},
	{Name: "relativenumber", Short: "rnu", Description: "Show relative line number in front of each line"},
	{Name: "ruler", Short: "ru", Description: "Show cursor line and column in the status line"},
	{Name: "scrolloff", Short: "so", Description: "Minimum nr. of lines above and below cursor"},
	{Name: "shell", Short: "sh", Description: "Name of shell to use for external commands"},
	{Name: "shiftround", Short: "sr", Description: "Round indent to multiple of shiftwidth"},
	{Name: "shiftwidth", Short: "sw", Description: "Number of spaces to use for (auto)indent step"},
	{Name: "shortmess", Short: "shm", Description: "List of flags to make messages shorter"},
	{Name: "showcmd", Short: "sc", Description: "Show (partial) command in status line"},
	{Name: "showmatch", Short: "sm", Description: "Briefly jump to matching bracket if insert one"},
	{Name: "showmode", Short: "smd", Description: "Message on status line to show current mode"},
	{Name: "sidescroll", Short: "ss", Description: "Minimum number of columns to scroll horizontal"},
	{Name: "signcolumn", Short: "scl", Description: "When and how to display the sign column"},
	{Name: "smartcase", Short: "scs", Description: "No ignore case when pattern has uppercase"},
	{Name: "smartindent", Short: "si", Description: "Smart autoindenting for C programs"},
	{Name: "softtabstop", Short: "sts", Description: "Number of spaces that <Tab> uses while editing"},
	{Name: "spell", Short: "", Description: "Enable spell checking"},
	{Name: "spelllang", Short: "spl", Description: "Language(s) to do spell checking for"},
	{Name: "splitbelow", Short: "sb", Description: "New window from split is below the current one"},
	{Name: "splitright", Short: "spr", Description: "New window is put right of the current one"},
	{Name: "statusline", Short: "stl", Description: "Custom format for the status line"},
	{Name: "swapfile", Short: "swf", Description: "Whether to use a swapfile for a buffer"},
	{Name: "synmaxcol", Short: "smc", Description: "Maximum column to look for syntax items"},
	{Name: "tabstop", Short: "ts", Description: "Number of spaces that <Tab> in file uses"},
	{Name: "termguicolors", Short: "tgc", Description: "Use GUI colors for the terminal"},
	{Name: "textwidth", Short: "tw", Description: "Maximum width of text that is being inserted"},
	{Name: "timeoutlen", Short: "tm", Description: "Time out time in milliseconds"},
	{Name: "undodir", Short: "udir", Description: "Where to store undo files"},
	{Name: "undofile", Short: "udf", Description: "Save undo information in a file"},
	{Name: "undolevels", Short: "ul", Description: "Maximum number of changes that can be undone"},
	{Name: "updatetime", Short: "ut", Description: "After this many milliseconds flush swap file"},
	{Name: "virtualedit", Short: "ve", Description: "When to use virtual editing"},
	{Name: "wildmenu", Short: "wmnu", Description: "Use menu for command line completion"},
	{Name: "wildmode", Short: "wim", Description: "Mode for wildchar command-line expansion"},
	{Name: "winheight", Short: "wh", Description: "Minimum number of lines for the current window"},
	{Name: "winwidth", Short: "wiw", Description: "Minimum number of columns for current window"},
	{Name: "wrap", Short: "", Description: "Long lines wrap and continue on the next line"},
	{Name: "wrapscan", Short: "ws", Description: "Searches wrap around the end of the file"},
	{Name: "writebackup", Short: "wb", Description: "Make a backup before overwriting a file"},
}

// MapArguments are the special arguments accepted between a map
// command and its left-hand side. Reference: :help map-arguments
var MapArguments = []string{
	"<buffer>", "<nowait>", "<silent>", "<script>", "<expr>",
	"<unique>", "<special>",
}

// Features is the has() feature name table.
// Reference: :help feature-list
var Features = []string{
	"autocmd", "balloon_eval", "browse", "clientserver", "clipboard",
	"cmdline_compl", "cmdline_hist", "comments", "conceal", "cscope",
	"cursorbind", "diff", "digraphs", "eval", "ex_extra", "extra_search",
	"file_in_path", "float", "folding", "gui", "gui_running", "iconv",
	"insert_expand", "job", "jumplist", "keymap", "lambda", "langmap",
	"linebreak", "lua", "mac", "macunix", "menu", "mksession", "mouse",
	"multi_byte", "multi_lang", "nvim", "packages", "patch",
	"perl", "popupwin", "postscript", "profile", "python", "python3",
	"quickfix", "reltime", "rightleft", "ruby", "scrollbind", "signs",
	"smartindent", "sound", "spell", "startuptime", "statusline",
	"syntax", "tag_binary", "terminal", "termguicolors", "terminfo",
	"textobjects", "textprop", "timers", "title", "unix", "unnamedplus",
	"user_commands", "vartabs", "vcon", "vim9script", "viminfo",
	"virtualedit", "visual", "visualextra", "vreplace", "vtp", "wildignore",
	"wildmenu", "win32", "windows", "writebackup", "xterm_clipboard",
}

// Variable describes one predefined v: variable.
type Variable struct {
	Name        string
	Description string
}

// Variables is the v: variable table. Reference: :help vim-variable
var Variables = []Variable{
	{Name: "v:argv", Description: "Command line arguments Vim was invoked with"},
	{Name: "v:char", Description: "Argument for evaluating 'formatexpr'"},
	{Name: "v:charconvert_from", Description: "Encoding of the file to be converted"},
	{Name: "v:charconvert_to", Description: "Encoding the file is to be converted to"},
	{Name: "v:cmdarg", Description: "Extra arguments given to a file read/write command"},
	{Name: "v:count", Description: "Count given for the last Normal mode command"},
	{Name: "v:count1", Description: "Like v:count but defaults to one"},
	{Name: "v:ctype", Description: "Current locale setting for characters"},
	{Name: "v:dying", Description: "Deadly signal count while exiting"},
	{Name: "v:errmsg", Description: "Last given error message"},
	{Name: "v:errors", Description: "Errors found by assert functions"},
	{Name: "v:event", Description: "Dictionary with data for the current autocommand"},
	{Name: "v:exception", Description: "Most recently caught exception"},
	{Name: "v:false", Description: "Boolean false value"},
	{Name: "v:fname", Description: "File name set by 'includeexpr'"},
	{Name: "v:fname_in", Description: "Name of the input file for conversion"},
	{Name: "v:fname_out", Description: "Name of the output file for conversion"},
	{Name: "v:folddashes", Description: "Dashes indicating the fold level"},
	{Name: "v:foldend", Description: "Last line of a closed fold"},
	{Name: "v:foldlevel", Description: "Fold level of a closed fold"},
	{Name: "v:foldstart", Description: "First line of a closed fold"},
	{Name: "v:hlsearch", Description: "Whether search highlighting is on"},
	{Name: "v:insertmode", Description: "Mode for the InsertEnter/InsertChange events"},
	{Name: "v:key", Description: "Key of the current item in a map() or filter()"},
	{Name: "v:lang", Description: "Current locale setting for messages"},
	{Name: "v:lnum", Description: "Line number for 'foldexpr' and 'indentexpr'"},
	{Name: "v:mouse_col", Description: "Column of a mouse click from getchar()"},
	{Name: "v:mouse_lnum", Description: "Line of a mouse click from getchar()"},
	{Name: "v:mouse_win", Description: "Window of a mouse click from getchar()"},
	{Name: "v:none", Description: "Empty value used by JSON"},
	{Name: "v:null", Description: "Null value used by JSON"},
	{Name: "v:numbermax", Description: "Maximum value of a number"},
	{Name: "v:numbermin", Description: "Minimum value of a number"},
	{Name: "v:oldfiles", Description: "List of file names from viminfo"},
	{Name: "v:operator", Description: "Last operator given in Normal mode"},
	{Name: "v:prevcount", Description: "Count given for the second-last command"},
	{Name: "v:profiling", Description: "Whether :profile start has been used"},
	{Name: "v:progname", Description: "Name by which Vim was invoked"},
	{Name: "v:progpath", Description: "Full path by which Vim was invoked"},
	{Name: "v:register", Description: "Register used for the current command"},
	{Name: "v:shell_error", Description: "Result of the last shell command"},
	{Name: "v:statusmsg", Description: "Last given status message"},
	{Name: "v:swapname", Description: "Name of the swap file found"},
	{Name: "v:t_bool", Description: "Type number of a Boolean"},
	{Name: "v:t_dict", Description: "Type number of a Dictionary"},
	{Name: "v:t_float", Description: "Type number of a Float"},
	{Name: "v:t_func", Description: "Type number of a Funcref"},
	{Name: "v:t_list", Description: "Type number of a List"},
	{Name: "v:t_number", Description: "Type number of a Number"},
	{Name: "v:t_string", Description: "Type number of a String"},
	{Name: "v:this_session", Description: "Full path of the last loaded session file"},
	{Name: "v:throwpoint", Description: "Where the most recent exception was thrown"},
	{Name: "v:true", Description: "Boolean true value"},
	{Name: "v:val", Description: "Value of the current item in a map() or filter()"},
	{Name: "v:version", Description: "Vim version number"},
	{Name: "v:warningmsg", Description: "Last given warning message"},
}

var optionIndex map[string]*Option

func init() {
	eventIndex = make(map[string]bool, len(Events))
	for _, e := range Events {
		eventIndex[foldName(e)] = true
	}
	optionIndex = make(map[string]*Option, len(Options)*2)
	for i := range Options {
		optionIndex[Options[i].Name] = &Options[i]
		if Options[i].Short != "" {
			optionIndex[Options[i].Short] = &Options[i]
		}
	}
}

// LookupOption resolves an option by full or short name.
func LookupOption(name string) (*Option, bool) {
	o, ok := optionIndex[name]
	return o, ok
}

func foldName(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}
