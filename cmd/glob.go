// Copyright © 2024 The hjkls authors

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// expandVimFiles resolves CLI file arguments: files are taken as-is,
// directories are walked for .vim files (skipping VCS metadata and
// node_modules).
func expandVimFiles(args []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		err = filepath.Walk(arg, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if fi.IsDir() {
				name := fi.Name()
				if path != arg && (name == ".git" || name == ".hg" || name == ".svn" ||
					name == "node_modules" || strings.HasPrefix(name, ".")) {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) == ".vim" {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

// printLineDiff prints a minimal line-based change listing for -d.
func printLineDiff(path, before, after string) {
	oldLines := strings.Split(before, "\n")
	newLines := strings.Split(after, "\n")
	fmt.Printf("--- %s\n", path)
	max := len(oldLines)
	if len(newLines) > max {
		max = len(newLines)
	}
	for i := 0; i < max; i++ {
		var o, n string
		if i < len(oldLines) {
			o = oldLines[i]
		}
		if i < len(newLines) {
			n = newLines[i]
		}
		if o == n {
			continue
		}
		if i < len(oldLines) {
			fmt.Printf("-%d: %s\n", i+1, o)
		}
		if i < len(newLines) {
			fmt.Printf("+%d: %s\n", i+1, n)
		}
	}
}
