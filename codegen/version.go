// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package codegen

import (
	"runtime/debug"
)

// Version contains the version string of the dynamic-proxy library used for code generation.
//
// It is included in generated file headers so stale generated code can be
// traced back to the generator that produced it. If the version cannot be
// determined (e.g. during development), it stays "unknown".
var Version = "unknown"

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Path == "github.com/pk910/dynamic-proxy" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			Version = info.Main.Version
			return
		}
		for _, dep := range info.Deps {
			if dep.Path == "github.com/pk910/dynamic-proxy" {
				Version = dep.Version
				break
			}
		}
	}
}
