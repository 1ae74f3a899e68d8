// Copyright © 2024 The hjkls authors

package analysis

import (
	"path/filepath"
	"strings"
)

// AutoloadRef is a parsed autoload-qualified name (ns#sub#fn).
type AutoloadRef struct {
	// Segments holds the '#'-separated parts; the last one is the
	// function name, the rest form the file path.
	Segments []string
}

// ParseAutoload parses an autoload-qualified name. Names without a
// '#' separator, or with empty segments, are not autoload names.
func ParseAutoload(name string) (*AutoloadRef, bool) {
	if !strings.Contains(name, "#") {
		return nil, false
	}
	segs := strings.Split(name, "#")
	if len(segs) < 2 {
		return nil, false
	}
	for _, s := range segs {
		if s == "" {
			return nil, false
		}
	}
	return &AutoloadRef{Segments: segs}, true
}

// RelPath derives the defining file path relative to a runtime root:
// myplugin#util#helper -> autoload/myplugin/util.vim.
func (a *AutoloadRef) RelPath() string {
	dirs := a.Segments[:len(a.Segments)-1]
	return filepath.Join(append([]string{"autoload"}, dirs[:len(dirs)-1]...)...) +
		string(filepath.Separator) + dirs[len(dirs)-1] + ".vim"
}

// FuncName returns the bare function segment.
func (a *AutoloadRef) FuncName() string {
	return a.Segments[len(a.Segments)-1]
}

// Qualified returns the full ns#sub#fn name.
func (a *AutoloadRef) Qualified() string {
	return strings.Join(a.Segments, "#")
}
