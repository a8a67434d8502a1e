// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package dynproxy

import (
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// ClassCache memoizes generated classes by generation key.
//
// Lookups take a read lock. A miss is funnelled through a singleflight group
// keyed by a unique id per generation key, so concurrent first requests for the same key
// run the factory exactly once and all receive the same *Class. A class is only
// stored after its static initialization completed. Failed builds are not
// cached, the next request retries. Entries are never evicted.
type ClassCache struct {
	mutex   sync.RWMutex
	classes map[ClassKey]*Class
	flight  singleflight.Group
	builds  atomic.Uint64

	// distinct types may share a type string, flights are keyed by id
	flightMutex sync.Mutex
	flightIDs   map[ClassKey]string
}

// NewClassCache creates an empty cache.
func NewClassCache() *ClassCache {
	return &ClassCache{
		classes:   make(map[ClassKey]*Class),
		flightIDs: make(map[ClassKey]string),
	}
}

// Get returns the cached class for key.
func (cc *ClassCache) Get(key ClassKey) (*Class, bool) {
	cc.mutex.RLock()
	defer cc.mutex.RUnlock()

	cls, ok := cc.classes[key]
	return cls, ok
}

// GetOrCreate returns the class for key, building it with factory on the first
// request.
func (cc *ClassCache) GetOrCreate(key ClassKey, factory func() (*Class, error)) (*Class, error) {
	if cls, ok := cc.Get(key); ok {
		return cls, nil
	}

	res, err, _ := cc.flight.Do(cc.flightID(key), func() (any, error) {
		// a flight for the same key may have completed between the read above
		// and joining this one
		if cls, ok := cc.Get(key); ok {
			return cls, nil
		}

		cls, err := factory()
		if err != nil {
			return nil, err
		}
		cc.builds.Add(1)

		cc.mutex.Lock()
		cc.classes[key] = cls
		cc.mutex.Unlock()

		return cls, nil
	})
	if err != nil {
		return nil, err
	}

	return res.(*Class), nil
}

// flightID returns the singleflight key of key.
func (cc *ClassCache) flightID(key ClassKey) string {
	cc.flightMutex.Lock()
	defer cc.flightMutex.Unlock()

	id, ok := cc.flightIDs[key]
	if !ok {
		id = strconv.Itoa(len(cc.flightIDs))
		cc.flightIDs[key] = id
	}
	return id
}

// Len returns the number of cached classes.
func (cc *ClassCache) Len() int {
	cc.mutex.RLock()
	defer cc.mutex.RUnlock()

	return len(cc.classes)
}

// Builds returns how often a factory completed successfully.
func (cc *ClassCache) Builds() uint64 {
	return cc.builds.Load()
}

// Keys returns the keys of all cached classes.
func (cc *ClassCache) Keys() []ClassKey {
	cc.mutex.RLock()
	defer cc.mutex.RUnlock()

	keys := make([]ClassKey, 0, len(cc.classes))
	for key := range cc.classes {
		keys = append(keys, key)
	}
	return keys
}
