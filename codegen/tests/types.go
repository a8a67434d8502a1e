// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package tests

import (
	"errors"
)

var ErrNotFound = errors.New("item not found")

// Counter is a concrete target: every method has an original implementation.
type Counter struct {
	items  []string
	Clears int
}

func (c *Counter) Size() int {
	return len(c.items)
}

func (c *Counter) Clear() {
	c.items = nil
	c.Clears++
}

func (c *Counter) Add(items ...string) int {
	c.items = append(c.items, items...)
	return len(c.items)
}

func (c *Counter) Get(idx int) (string, error) {
	if idx < 0 || idx >= len(c.items) {
		return "", ErrNotFound
	}
	return c.items[idx], nil
}

func (c *Counter) Total() int64 {
	var total int64
	for _, item := range c.items {
		total += int64(len(item))
	}
	return total
}

func (c *Counter) Fail() {
	panic("counter failure")
}

// Loader provides the abstract methods of Cache.
type Loader interface {
	Load(key string) (string, error)
	Keys() []string
}

// Cache only implements Hits itself, Load and Keys are abstract until a
// Loader is embedded.
type Cache struct {
	Loader
	hits int
}

func (c *Cache) Hits() int {
	return c.hits
}

// Store is an interface target.
type Store interface {
	Get(key string) (string, bool)
	Put(key string, value string) error
	Len() int
}

// MapStore is a Store backed by a map.
type MapStore struct {
	Values map[string]string
}

func NewMapStore() *MapStore {
	return &MapStore{Values: map[string]string{}}
}

func (s *MapStore) Get(key string) (string, bool) {
	value, ok := s.Values[key]
	return value, ok
}

func (s *MapStore) Put(key string, value string) error {
	if key == "" {
		return ErrNotFound
	}
	s.Values[key] = value
	return nil
}

func (s *MapStore) Len() int {
	return len(s.Values)
}

var ErrClosed = errors.New("ledger closed")

// Ledger is a concrete target dispatched through the hash switch, two of its
// descriptors share a bucket.
type Ledger struct {
	entries []int64
	closed  bool
}

func (l *Ledger) Append(amount int64) int {
	l.entries = append(l.entries, amount)
	return len(l.entries)
}

func (l *Ledger) Balance() int64 {
	var balance int64
	for _, amount := range l.entries {
		balance += amount
	}
	return balance
}

func (l *Ledger) Close() error {
	if l.closed {
		return ErrClosed
	}
	l.closed = true
	return nil
}

// Count returns the number of credits.
func (l *Ledger) Count() int {
	count := 0
	for _, amount := range l.entries {
		if amount > 0 {
			count++
		}
	}
	return count
}

func (l *Ledger) Entry(idx int) (int64, error) {
	if idx < 0 || idx >= len(l.entries) {
		return 0, ErrNotFound
	}
	return l.entries[idx], nil
}

func (l *Ledger) Last() (int64, bool) {
	if len(l.entries) == 0 {
		return 0, false
	}
	return l.entries[len(l.entries)-1], true
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

func (l *Ledger) Reset() {
	l.entries = nil
	l.closed = false
}
