// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package dynproxy

type DynProxyOption func(*DynProxyOptions)

type DynProxyOptions struct {
	Registry      *Registry
	DefaultConfig *Config
	Verbose       bool
	LogCb         func(format string, args ...any)
}

// WithRegistry makes the engine resolve generated classes from registry instead
// of the default registry.
func WithRegistry(registry *Registry) DynProxyOption {
	return func(opts *DynProxyOptions) {
		opts.Registry = registry
	}
}

// WithDefaultConfig sets the configuration used by NewProxy when none is passed.
func WithDefaultConfig(cfg Config) DynProxyOption {
	return func(opts *DynProxyOptions) {
		opts.DefaultConfig = &cfg
	}
}

func WithVerbose() DynProxyOption {
	return func(opts *DynProxyOptions) {
		opts.Verbose = true
	}
}

func WithLogCb(logCb func(format string, args ...any)) DynProxyOption {
	return func(opts *DynProxyOptions) {
		opts.LogCb = logCb
	}
}
