// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pk910/dynamic-proxy/switchtable"
)

// JobFile is the YAML job file accepted by -config.
//
//	jobs:
//	  - package: github.com/x/store
//	    output: store/gen_proxy.go
//	    switch-style: sorted
//	    filter: "name != 'String'"
//	    types:
//	      - name: Counter
//	      - name: Store
//	        proxy: RecordingStore
//	        methods: [Get, Put]
type JobFile struct {
	Jobs []Job `yaml:"jobs"`
}

// Job describes one generated file.
type Job struct {
	Package     string    `yaml:"package"`
	PackageName string    `yaml:"package-name"`
	Output      string    `yaml:"output"`
	SwitchStyle string    `yaml:"switch-style"`
	Filter      string    `yaml:"filter"`
	Types       []JobType `yaml:"types"`
}

// JobType describes one proxied type of a job.
type JobType struct {
	Name    string   `yaml:"name"`
	Proxy   string   `yaml:"proxy"`
	Methods []string `yaml:"methods"`
	Filter  string   `yaml:"filter"`
}

// LoadJobFile reads and validates a job file.
func LoadJobFile(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	return ParseJobFile(data)
}

// ParseJobFile parses and validates job file content.
func ParseJobFile(data []byte) (*JobFile, error) {
	jobFile := &JobFile{}
	if err := yaml.Unmarshal(data, jobFile); err != nil {
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}

	if len(jobFile.Jobs) == 0 {
		return nil, fmt.Errorf("job file contains no jobs")
	}

	outputs := map[string]bool{}
	for i := range jobFile.Jobs {
		job := &jobFile.Jobs[i]
		if err := job.Validate(); err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
		if outputs[job.Output] {
			return nil, fmt.Errorf("job %d: output %s used twice", i, job.Output)
		}
		outputs[job.Output] = true
	}

	return jobFile, nil
}

// Validate checks a job for missing fields.
func (j *Job) Validate() error {
	if j.Package == "" {
		return fmt.Errorf("package path is required")
	}
	if j.Output == "" {
		return fmt.Errorf("output file is required")
	}
	if len(j.Types) == 0 {
		return fmt.Errorf("no types given for %s", j.Package)
	}
	if _, err := switchtable.ParseStyle(j.SwitchStyle); err != nil {
		return err
	}
	for _, t := range j.Types {
		if t.Name == "" {
			return fmt.Errorf("type without name in %s", j.Package)
		}
	}
	return nil
}
