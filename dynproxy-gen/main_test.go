// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestJobFromConfig(t *testing.T) {
	job, err := jobFromConfig(Config{
		PackagePath:  "github.com/x/store",
		TypeNames:    "Counter, Store:RecordingStore ,",
		OutputFile:   "gen_proxy.go",
		SwitchStyle:  "sorted",
		MethodFilter: "error",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(job.Types) != 2 {
		t.Fatalf("expected 2 types, got %d", len(job.Types))
	}
	if job.Types[0].Name != "Counter" || job.Types[0].Proxy != "" {
		t.Errorf("unexpected first type %+v", job.Types[0])
	}
	if job.Types[1].Name != "Store" || job.Types[1].Proxy != "RecordingStore" {
		t.Errorf("unexpected second type %+v", job.Types[1])
	}
	if job.SwitchStyle != "sorted" || job.Filter != "error" {
		t.Errorf("unexpected job %+v", job)
	}
}

func TestJobFromConfig_Errors(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected string
	}{
		{"Missing package", Config{TypeNames: "A", OutputFile: "out.go"}, "package path is required (-package)"},
		{"Missing types", Config{PackagePath: "x", OutputFile: "out.go"}, "type names are required (-types)"},
		{"Missing output", Config{PackagePath: "x", TypeNames: "A"}, "output file is required (-output)"},
		{"Only separators", Config{PackagePath: "x", TypeNames: " , ", OutputFile: "out.go"}, "no types given"},
		{"Unknown style", Config{PackagePath: "x", TypeNames: "A", OutputFile: "out.go", SwitchStyle: "linear"}, "unknown switch style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jobFromConfig(tt.config)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.expected) {
				t.Errorf("expected error containing '%s', got: %s", tt.expected, err.Error())
			}
		})
	}
}

const testJobFile = `jobs:
  - package: github.com/x/store
    output: store/gen_proxy.go
    switch-style: sorted
    filter: "name != 'String'"
    types:
      - name: Counter
      - name: Store
        proxy: RecordingStore
        methods: [Get, Put]
  - package: github.com/x/cache
    package-name: cache_test
    output: cache/gen_proxy_test.go
    types:
      - name: Cache
        filter: abstract
`

func TestParseJobFile(t *testing.T) {
	jobFile, err := ParseJobFile([]byte(testJobFile))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(jobFile.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobFile.Jobs))
	}

	store := jobFile.Jobs[0]
	if store.Package != "github.com/x/store" || store.Output != "store/gen_proxy.go" || store.SwitchStyle != "sorted" {
		t.Errorf("unexpected job %+v", store)
	}
	if store.Filter != "name != 'String'" {
		t.Errorf("unexpected filter %q", store.Filter)
	}
	if len(store.Types) != 2 || store.Types[1].Proxy != "RecordingStore" {
		t.Fatalf("unexpected types %+v", store.Types)
	}
	if strings.Join(store.Types[1].Methods, ",") != "Get,Put" {
		t.Errorf("unexpected methods %v", store.Types[1].Methods)
	}

	cache := jobFile.Jobs[1]
	if cache.PackageName != "cache_test" || cache.Types[0].Filter != "abstract" {
		t.Errorf("unexpected job %+v", cache)
	}
}

func TestParseJobFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"Invalid yaml", "jobs: [", "failed to parse job file"},
		{"No jobs", "jobs: []\n", "job file contains no jobs"},
		{"Missing package", "jobs:\n  - output: a.go\n    types:\n      - name: A\n", "job 0: package path is required"},
		{"Missing output", "jobs:\n  - package: x\n    types:\n      - name: A\n", "job 0: output file is required"},
		{"Missing types", "jobs:\n  - package: x\n    output: a.go\n", "job 0: no types given for x"},
		{"Unnamed type", "jobs:\n  - package: x\n    output: a.go\n    types:\n      - proxy: P\n", "job 0: type without name in x"},
		{"Duplicate output", "jobs:\n  - package: x\n    output: a.go\n    types:\n      - name: A\n  - package: y\n    output: a.go\n    types:\n      - name: B\n", "job 1: output a.go used twice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJobFile([]byte(tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.expected) {
				t.Errorf("expected error containing '%s', got: %s", tt.expected, err.Error())
			}
		})
	}
}

func TestLoadJobFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxies.yaml")
	if err := os.WriteFile(path, []byte(testJobFile), 0644); err != nil {
		t.Fatalf("failed to write job file: %v", err)
	}

	jobFile, err := LoadJobFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobFile.Jobs) != 2 {
		t.Errorf("expected 2 jobs, got %d", len(jobFile.Jobs))
	}

	if _, err := LoadJobFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil || !strings.Contains(err.Error(), "failed to read job file") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestRun_Errors(t *testing.T) {
	if err := run(Config{}); err == nil || !strings.Contains(err.Error(), "package path is required") {
		t.Errorf("expected flag validation error, got %v", err)
	}

	if err := run(Config{JobFile: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("expected error for missing job file")
	}
}
