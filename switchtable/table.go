// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

// Package switchtable builds string dispatch tables. The same bucketing is used
// by the code generator to emit hash-bucketed string switches and by the runtime
// to answer lookups without a generated switch.
package switchtable

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zeebo/xxh3"
)

// NotFound is returned by lookups for keys that are not part of the table.
const NotFound = -1

// maxSeedCandidates bounds the seed search of PlanHash.
const maxSeedCandidates = 64

// Style selects how a string switch is laid out.
type Style uint8

const (
	// StyleHash buckets keys by a seeded xxh3 hash and resolves collisions by
	// string equality.
	StyleHash Style = iota
	// StyleSorted groups keys by length and resolves each group with an
	// ordered string comparison.
	StyleSorted
)

func (s Style) String() string {
	switch s {
	case StyleHash:
		return "hash"
	case StyleSorted:
		return "sorted"
	default:
		return fmt.Sprintf("style(%d)", uint8(s))
	}
}

// Valid reports whether s is a known style.
func (s Style) Valid() bool {
	return s == StyleHash || s == StyleSorted
}

// ParseStyle parses the textual form of a Style.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hash":
		return StyleHash, nil
	case "sorted", "trie":
		return StyleSorted, nil
	default:
		return 0, fmt.Errorf("unknown switch style %q", name)
	}
}

// Bucket returns the bucket index of key for the given seed and mask.
func Bucket(key string, seed uint64, mask uint64) uint64 {
	return xxh3.HashStringSeed(key, seed) & mask
}

// HashPlan describes the bucket layout of a hash switch.
type HashPlan struct {
	Seed    uint64
	Mask    uint64
	Buckets [][]int // key indexes per bucket, in key order
}

// MaxBucket returns the size of the largest bucket.
func (p *HashPlan) MaxBucket() int {
	maxLen := 0
	for _, b := range p.Buckets {
		if len(b) > maxLen {
			maxLen = len(b)
		}
	}
	return maxLen
}

// PlanHash computes a near-perfect bucket layout for keys. The bucket count is
// the next power of two >= len(keys); the seed with the smallest largest bucket
// among the first candidates wins, earlier seeds win ties.
func PlanHash(keys []string) *HashPlan {
	size := nextPow2(len(keys))
	mask := uint64(size - 1)

	var best *HashPlan
	for seed := uint64(0); seed < maxSeedCandidates; seed++ {
		plan := &HashPlan{
			Seed:    seed,
			Mask:    mask,
			Buckets: make([][]int, size),
		}
		for idx, key := range keys {
			b := Bucket(key, seed, mask)
			plan.Buckets[b] = append(plan.Buckets[b], idx)
		}

		if best == nil || plan.MaxBucket() < best.MaxBucket() {
			best = plan
		}
		if best.MaxBucket() <= 1 {
			break
		}
	}

	return best
}

// SortedGroup is one length group of a sorted switch.
type SortedGroup struct {
	Length int
	Keys   []int // key indexes ordered by key
}

// PlanSorted groups keys by length, both levels in ascending order.
func PlanSorted(keys []string) []SortedGroup {
	byLen := map[int][]int{}
	for idx, key := range keys {
		byLen[len(key)] = append(byLen[len(key)], idx)
	}

	groups := make([]SortedGroup, 0, len(byLen))
	for length, idxs := range byLen {
		sort.Slice(idxs, func(i, j int) bool {
			return keys[idxs[i]] < keys[idxs[j]]
		})
		groups = append(groups, SortedGroup{Length: length, Keys: idxs})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Length < groups[j].Length
	})

	return groups
}

// Table resolves keys to their index in the slice the table was built from.
type Table struct {
	style  Style
	keys   []string
	plan   *HashPlan
	sorted []int // key indexes ordered by key
}

// Build creates a lookup table for keys. Duplicate keys are rejected.
func Build(style Style, keys []string) (*Table, error) {
	if !style.Valid() {
		return nil, fmt.Errorf("unknown switch style %v", style)
	}

	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, exists := seen[key]; exists {
			return nil, fmt.Errorf("duplicate switch key %q", key)
		}
		seen[key] = struct{}{}
	}

	t := &Table{
		style: style,
		keys:  append([]string(nil), keys...),
	}

	switch style {
	case StyleHash:
		t.plan = PlanHash(t.keys)
	case StyleSorted:
		t.sorted = make([]int, len(t.keys))
		for i := range t.sorted {
			t.sorted[i] = i
		}
		sort.Slice(t.sorted, func(i, j int) bool {
			return t.keys[t.sorted[i]] < t.keys[t.sorted[j]]
		})
	}

	return t, nil
}

// MustBuild is like Build but panics on error.
func MustBuild(style Style, keys []string) *Table {
	t, err := Build(style, keys)
	if err != nil {
		panic(err)
	}
	return t
}

// Style returns the layout the table was built with.
func (t *Table) Style() Style {
	return t.style
}

// Len returns the number of keys in the table.
func (t *Table) Len() int {
	return len(t.keys)
}

// Plan returns the hash layout, or nil for sorted tables.
func (t *Table) Plan() *HashPlan {
	return t.plan
}

// Lookup returns the index of key or NotFound.
func (t *Table) Lookup(key string) int {
	if len(t.keys) == 0 {
		return NotFound
	}

	switch t.style {
	case StyleHash:
		for _, idx := range t.plan.Buckets[Bucket(key, t.plan.Seed, t.plan.Mask)] {
			if t.keys[idx] == key {
				return idx
			}
		}
	case StyleSorted:
		pos := sort.Search(len(t.sorted), func(i int) bool {
			return t.keys[t.sorted[i]] >= key
		})
		if pos < len(t.sorted) && t.keys[t.sorted[pos]] == key {
			return t.sorted[pos]
		}
	}

	return NotFound
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
