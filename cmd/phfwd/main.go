// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command phfwd evaluates phone number redirections.
//
//	phfwd run script.txt
//	phfwd get --redirect 12=9 --redirect 123=8 12345
//	phfwd reverse --redirect 12=9 945
//	phfwd bench --redirections 100000
package main

import (
	"os"
)

func main() {
	if err := NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
