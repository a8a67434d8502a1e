// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package dynproxy

import (
	"fmt"
	"reflect"

	"github.com/pk910/dynamic-proxy/switchtable"
)

// Config is the configuration part of a generation key. Two proxy requests for
// the same target type and an equal Config share one Class.
type Config struct {
	// SwitchStyle selects the layout of the class' runtime signature dispatcher.
	SwitchStyle switchtable.Style
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		SwitchStyle: switchtable.StyleHash,
	}
}

// Validate rejects malformed configurations.
func (c Config) Validate() error {
	if !c.SwitchStyle.Valid() {
		return fmt.Errorf("%w: unknown switch style %v", ErrInvalidConfig, c.SwitchStyle)
	}
	return nil
}

func (c Config) String() string {
	return "switch=" + c.SwitchStyle.String()
}

// ClassKey identifies a generated class within one engine.
type ClassKey struct {
	Target reflect.Type
	Config Config
}

func (k ClassKey) String() string {
	return TypeString(k.Target) + "|" + k.Config.String()
}
