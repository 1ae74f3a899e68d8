// Copyright © 2024 The hjkls authors

package main

import "github.com/hjkls/hjkls/cmd"

func main() {
	cmd.Execute()
}
