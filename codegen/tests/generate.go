// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package tests

//go:generate go run ../../dynproxy-gen -package . -types Counter,Cache,Store -switch-style sorted -output gen_proxy.go
//go:generate go run ../../dynproxy-gen -package . -types Ledger -switch-style hash -output gen_proxy_hash.go
