// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/kittyd/configuration"
)

// setup command handler
//
// commands that cannot access any internal database or states or the
// configuration file
//
// returns false for anything that is not a command, e.g. block files
func processSetupCommand(program string, arguments []string) bool {

	switch arguments[0] {
	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--version] --config-file=FILE [command|block-file...]\n", program)
		fmt.Printf("\n")
		fmt.Printf("  help                      - display this message\n")
		fmt.Printf("  version                   - display version\n")
		fmt.Printf("  config-test               - just check the configuration file\n")
		fmt.Printf("  block-file...             - execute JSON block files in order\n")
		fmt.Printf("\n")
		return true

	default:
		return false
	}
}

// configuration command handler
//
// commands that just check or print the configuration
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {

	switch arguments[0] {
	case "config-test", "cfg":
		fmt.Printf("\n\nconfiguration:\n\n")
		printJson(options)
		return true

	default:
		return false
	}
}
