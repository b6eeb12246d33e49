// SPDX-License-Identifier: MIT
// Package: builder
//
// id_fn.go - node ID schemes. Each IDFn maps a zero-based index to a stable,
// unique ID; invalid indices panic (programmer error).

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a node index to its ID.
type IDFn func(idx int) string

// DefaultIDFn renders idx in base 10: "0","1","2",...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn maps 0..25 to "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn maps 0→"A", 25→"Z", 26→"AA", ... Panics on negative idx.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns an IDFn producing prefix+decimal index ("N0","N1",...).
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs is shorthand for WithIDScheme(SymbolIDFn).
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs is shorthand for WithIDScheme(ExcelColumnIDFn).
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixIDs is shorthand for WithIDScheme(PrefixIDFn(prefix)).
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
