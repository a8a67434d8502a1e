// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-proxy library.

// Command dynproxy-gen generates interception proxies for Go types.
//
// Usage:
//
//	dynproxy-gen -package github.com/x/store -types Counter,Store:StoreProxy -output store/gen_proxy.go
//	dynproxy-gen -config proxies.yaml
//
// A type entry may carry a proxy name after a colon. The -config flag reads a
// YAML job file describing several output files, see JobFile.
package main

import (
	"flag"
	"fmt"
	"go/types"
	"log"
	"os"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/pk910/dynamic-proxy/codegen"
	"github.com/pk910/dynamic-proxy/switchtable"
)

// Config holds the command line configuration.
type Config struct {
	PackagePath  string
	PackageName  string
	TypeNames    string
	OutputFile   string
	SwitchStyle  string
	MethodFilter string
	JobFile      string
	Verbose      bool
}

func main() {
	config := Config{}
	flag.StringVar(&config.PackagePath, "package", "", "Go package path to analyze")
	flag.StringVar(&config.PackageName, "package-name", "", "Package name of the generated file (default: name of the analyzed package)")
	flag.StringVar(&config.TypeNames, "types", "", "Comma-separated list of type names to generate proxies for (Type or Type:ProxyName)")
	flag.StringVar(&config.OutputFile, "output", "", "Output file path for generated code")
	flag.StringVar(&config.SwitchStyle, "switch-style", "hash", "Signature dispatcher layout (hash or sorted)")
	flag.StringVar(&config.MethodFilter, "filter", "", "Method filter expression (e.g. \"name != 'String'\")")
	flag.StringVar(&config.JobFile, "config", "", "YAML job file (replaces -package, -types and -output)")
	flag.BoolVar(&config.Verbose, "v", false, "Verbose output")
	flag.Parse()

	if err := run(config); err != nil {
		log.Fatal(err)
	}
}

func run(config Config) error {
	var jobs []Job
	if config.JobFile != "" {
		jobFile, err := LoadJobFile(config.JobFile)
		if err != nil {
			return err
		}
		jobs = jobFile.Jobs
	} else {
		job, err := jobFromConfig(config)
		if err != nil {
			return err
		}
		jobs = []Job{job}
	}

	var genOpts []codegen.CodeGeneratorOption
	if config.Verbose {
		genOpts = append(genOpts, codegen.WithVerbose(), codegen.WithLogCb(log.Printf))
	}
	codeGen := codegen.NewCodeGenerator(genOpts...)

	typeCount := 0
	for _, job := range jobs {
		opts, err := buildFileOptions(job, config.Verbose)
		if err != nil {
			return err
		}
		if err := codeGen.BuildFile(job.Output, opts...); err != nil {
			return err
		}
		typeCount += len(job.Types)
	}

	if config.Verbose {
		log.Printf("Generating code...")
	}

	codeMap, err := codeGen.GenerateToMap()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	for fileName, code := range codeMap {
		if config.Verbose {
			log.Printf("Writing output to %s", fileName)
		}
		if err := os.WriteFile(fileName, []byte(code), 0644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", fileName, err)
		}
	}

	if !config.Verbose {
		fmt.Printf("Generated proxies for %d types in %d files\n", typeCount, len(codeMap))
	}
	return nil
}

// jobFromConfig converts the command line flags into a job.
func jobFromConfig(config Config) (Job, error) {
	if config.PackagePath == "" {
		return Job{}, fmt.Errorf("package path is required (-package)")
	}
	if config.TypeNames == "" {
		return Job{}, fmt.Errorf("type names are required (-types)")
	}
	if config.OutputFile == "" {
		return Job{}, fmt.Errorf("output file is required (-output)")
	}

	job := Job{
		Package:     config.PackagePath,
		PackageName: config.PackageName,
		Output:      config.OutputFile,
		SwitchStyle: config.SwitchStyle,
		Filter:      config.MethodFilter,
	}

	for _, entry := range strings.Split(config.TypeNames, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, proxy, _ := strings.Cut(entry, ":")
		job.Types = append(job.Types, JobType{
			Name:  strings.TrimSpace(name),
			Proxy: strings.TrimSpace(proxy),
		})
	}

	return job, job.Validate()
}

// buildFileOptions loads the package of job and resolves its types.
func buildFileOptions(job Job, verbose bool) ([]codegen.CodeGeneratorOption, error) {
	style, err := switchtable.ParseStyle(job.SwitchStyle)
	if err != nil {
		return nil, err
	}

	if verbose {
		log.Printf("Analyzing package: %s", job.Package)
	}

	cfg := &packages.Config{
		Mode: packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, job.Package)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %s: %w", job.Package, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found for %s", job.Package)
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		for _, err := range pkg.Errors {
			log.Printf("Package error: %v", err)
		}
		return nil, fmt.Errorf("package %s has errors", job.Package)
	}

	opts := []codegen.CodeGeneratorOption{
		codegen.WithSwitchStyle(style),
	}
	if job.PackageName != "" {
		opts = append(opts, codegen.WithPackageName(job.PackageName))
	}
	if job.Filter != "" {
		opts = append(opts, codegen.WithMethodFilter(job.Filter))
	}

	scope := pkg.Types.Scope()
	for _, jobType := range job.Types {
		obj := scope.Lookup(jobType.Name)
		if obj == nil {
			return nil, fmt.Errorf("type %s not found in package %s", jobType.Name, job.Package)
		}

		typeObj, ok := obj.(*types.TypeName)
		if !ok {
			return nil, fmt.Errorf("object %s is not a type in package %s", jobType.Name, job.Package)
		}

		var typeOpts []codegen.CodeGeneratorTypeOption
		if jobType.Proxy != "" {
			typeOpts = append(typeOpts, codegen.WithProxyName(jobType.Proxy))
		}
		if len(jobType.Methods) > 0 {
			typeOpts = append(typeOpts, codegen.WithMethods(jobType.Methods...))
		}
		if jobType.Filter != "" {
			typeOpts = append(typeOpts, codegen.WithTypeMethodFilter(jobType.Filter))
		}

		opts = append(opts, codegen.WithGoTypesType(typeObj.Type(), typeOpts...))
		if verbose {
			log.Printf("Found type: %s", jobType.Name)
		}
	}

	return opts, nil
}
