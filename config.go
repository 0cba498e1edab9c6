// Package specrun ties the argument-vector engine to a runnable service: it
// builds a Config from the CLI context, drives runs through the runner
// coordinator, and routes failures to exit codes.
package specrun

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ethereum/go-ethereum/log"

	"github.com/specrun/specrun/args"
	"github.com/specrun/specrun/flags"
	"github.com/specrun/specrun/reporters"
	"github.com/specrun/specrun/runner"
)

// Defaults is the schema of the --defaults YAML file: a token list prepended
// to the legacy argument vector before classification.
type Defaults struct {
	Args []string `yaml:"args"`
}

// Config holds the application configuration
type Config struct {
	Argv        []string             // legacy argument vector, defaults merged in
	Buckets     *args.Buckets        // classified tokens
	Reporters   *reporters.Config    // compiled reporter configuration
	Plan        runner.Plan          // suites, tag filters, runpath
	Properties  map[string]string    // decoded -D properties
	RunInterval time.Duration        // interval between runs
	RunOnce     bool                 // exit after one run
	Executor    runner.SuiteExecutor // optional execution engine; pending placeholder when nil
	Log         log.Logger
}

// NewConfig creates a new Config from the cli context and the legacy
// argument vector. The vector is validated eagerly; any malformed argument
// surfaces here, before anything else happens.
func NewConfig(ctx *cli.Context, logger log.Logger, argv []string) (*Config, error) {
	if argv == nil {
		// The CLI hands over no tokens as a nil slice; that is an empty
		// vector, not the contract violation Classify guards against.
		argv = []string{}
	}

	if path := ctx.String(flags.DefaultsFile.Name); path != "" {
		defaults, err := loadDefaults(path)
		if err != nil {
			return nil, err
		}
		argv = append(append([]string{}, defaults.Args...), argv...)
	}

	if err := args.CheckValidity(argv); err != nil {
		return nil, fmt.Errorf("invalid argument vector: %w", err)
	}

	buckets, err := args.Classify(argv)
	if err != nil {
		return nil, err
	}
	props, err := args.ParseProperties(buckets.Props)
	if err != nil {
		return nil, err
	}
	includes, err := args.SplitCompound(buckets.Includes, "-n")
	if err != nil {
		return nil, err
	}
	excludes, err := args.SplitCompound(buckets.Excludes, "-x")
	if err != nil {
		return nil, err
	}
	reporterCfg, err := reporters.Compile(buckets.Reporters)
	if err != nil {
		return nil, err
	}

	suites := flagValues(buckets.Suites, "-s")
	suites = append(suites, flagValues(buckets.TestNG, "-t")...)

	runInterval := ctx.Duration(flags.RunInterval.Name)

	return &Config{
		Argv:      argv,
		Buckets:   buckets,
		Reporters: reporterCfg,
		Plan: runner.Plan{
			Suites:      suites,
			IncludeTags: includes,
			ExcludeTags: excludes,
			Runpath:     RunpathEntries(buckets.Runpath),
			Concurrent:  len(buckets.Concurrent) > 0,
		},
		Properties:  props,
		RunInterval: runInterval,
		RunOnce:     runInterval == 0,
		Log:         logger,
	}, nil
}

func loadDefaults(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read defaults file %s: %w", path, err)
	}
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse defaults file %s: %w", path, err)
	}
	return &d, nil
}

// flagValues returns the value following each occurrence of flag in a
// classified bucket.
func flagValues(bucket []string, flag string) []string {
	var out []string
	for i := 0; i+1 < len(bucket); i++ {
		if bucket[i] == flag {
			out = append(out, bucket[i+1])
			i++
		}
	}
	return out
}

// RunpathEntries splits each -p value on whitespace into discrete runpath
// entries, trimming the surrounding quotes legacy invocations carry. A
// dangling -p contributes no entries.
func RunpathEntries(bucket []string) []string {
	var out []string
	for _, v := range flagValues(bucket, "-p") {
		if v == "-p" {
			continue
		}
		v = strings.Trim(v, `"`)
		out = append(out, strings.Fields(v)...)
	}
	return out
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}
	if cfg.Reporters == nil {
		return errors.New("reporter configuration is required")
	}
	if cfg.Log == nil {
		cfg.Log = log.Root()
	}
	return nil
}
