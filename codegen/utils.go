// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package codegen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// uniqueName returns name, or name with underscores appended until it is not
// in taken. The returned name is added to taken.
//
// Example:
//
//	taken := map[string]bool{"SuperSize": true}
//	uniqueName("SuperSize", taken) // "SuperSize_"
func uniqueName(name string, taken map[string]bool) string {
	for taken[name] {
		name += "_"
	}
	taken[name] = true
	return name
}

// lowerFirst lowercases the leading upper case run of an identifier, keeping
// the last letter of an acronym upper case when it starts the next word.
//
// Example:
//
//	lowerFirst("CounterProxy") // "counterProxy"
//	lowerFirst("HTTPStoreProxy") // "httpStoreProxy"
func lowerFirst(name string) string {
	runes := []rune(name)
	i := 0
	for i < len(runes) && unicode.IsUpper(runes[i]) {
		i++
	}

	switch {
	case i == 0:
		return name
	case i == 1 || i == len(runes):
		return strings.ToLower(string(runes[:i])) + string(runes[i:])
	default:
		return strings.ToLower(string(runes[:i-1])) + string(runes[i-1:])
	}
}

// isIdentifier reports whether name is a valid exported or unexported Go identifier.
func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

// isExported reports whether name starts with an upper case letter.
func isExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
