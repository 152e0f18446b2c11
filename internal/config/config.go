// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config merges command line flags, environment variables and
// an optional YAML file into the settings of a benchmark invocation.
//
// Sources are layered, lowest precedence first: built-in defaults, the
// config file, the environment (COMPBENCH_* variables, including those
// loaded from a .env file), and explicitly set flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/compbench/compbench/benchdata"
	"github.com/compbench/compbench/benchmulti"
	"github.com/compbench/compbench/benchrun"
)

// EnvPrefix prefixes every environment variable read.
const EnvPrefix = "COMPBENCH"

// Config file searched for in the working directory when no --config
// flag is given.
const (
	DefaultConfigName = "compbench"
	DefaultEnvFile    = ".env"
)

// Config holds the settings of both commands.
type Config struct {
	BuildType   string `mapstructure:"build_type"`
	DebugOnly   bool   `mapstructure:"debug_only"`
	ReleaseOnly bool   `mapstructure:"release_only"`

	OutputFormat      string `mapstructure:"output_format"`
	Clean             bool   `mapstructure:"clean"`
	DisableFTimeTrace bool   `mapstructure:"disable_ftime_trace"`
	NumTypes          int    `mapstructure:"num_types"`

	SourceDir  string `mapstructure:"source_dir"`
	BuildDir   string `mapstructure:"build_dir"`
	ResultsDir string `mapstructure:"results_dir"`

	Runs         int    `mapstructure:"runs"`
	OutputDir    string `mapstructure:"output_dir"`
	NumTypesMode bool   `mapstructure:"num_types_mode"`
	HTML         bool   `mapstructure:"html"`

	Verbose bool `mapstructure:"verbose"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("build_type", "")
	v.SetDefault("debug_only", false)
	v.SetDefault("release_only", false)
	v.SetDefault("output_format", string(benchdata.JSON))
	v.SetDefault("clean", false)
	v.SetDefault("disable_ftime_trace", false)
	v.SetDefault("num_types", benchrun.DefaultNumTypes)
	v.SetDefault("source_dir", ".")
	v.SetDefault("build_dir", "build")
	v.SetDefault("results_dir", "results")
	v.SetDefault("runs", benchmulti.DefaultRuns)
	v.SetDefault("output_dir", "multi_results")
	v.SetDefault("num_types_mode", false)
	v.SetDefault("html", false)
	v.SetDefault("verbose", false)
}

// AddBuildFlags registers the flags shared by both commands on fs.
func AddBuildFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default is ./compbench.yaml if present)")
	fs.String("build-type", "", "single CMake build type to test: "+strings.Join(benchdata.BuildTypes, ", ")+" (default: Debug and Release)")
	fs.Bool("debug-only", false, "run only the Debug build")
	fs.Bool("release-only", false, "run only the Release build")
	fs.String("source-dir", ".", "CMake source directory")
	fs.String("build-dir", "build", "CMake build directory")
	fs.BoolP("verbose", "v", false, "enable debug logging")
}

// AddSingleFlags registers the flags of the single-run command on fs.
func AddSingleFlags(fs *pflag.FlagSet) {
	fs.String("output-format", string(benchdata.JSON), "output format for detailed results: json, yaml, or table")
	fs.Bool("clean", false, "clean the build directory before running")
	fs.Bool("disable-ftime-trace", false, "disable -ftime-trace and Clang Build Analyzer")
	fs.Int("num-types", benchrun.DefaultNumTypes, "number of types to instantiate in the benchmark")
	fs.String("results-dir", "results", "directory for results and summaries")
}

// AddMultiFlags registers the flags of the multi-run command on fs.
func AddMultiFlags(fs *pflag.FlagSet) {
	fs.Int("runs", benchmulti.DefaultRuns, "number of benchmark runs")
	fs.String("output-dir", "multi_results", "output directory for results and graphs")
	fs.Bool("num-types-mode", false, "sweep NUM_TYPES from 25 to 150 in steps of 25 instead of repeating runs")
	fs.Bool("html", false, "also write an HTML summary")
}

// Load merges the configuration sources. flags must have been parsed.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", DefaultEnvFile, err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cfgFile := ""
	if f := flags.Lookup("config"); f != nil {
		cfgFile = f.Value.String()
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	if bindErr != nil {
		return nil, bindErr
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &c, nil
}

// BuildTypes returns the build configurations selected by c, in the
// order they should run.
func (c *Config) BuildTypes() ([]string, error) {
	switch {
	case c.BuildType != "":
		if !benchdata.ValidBuildType(c.BuildType) {
			return nil, fmt.Errorf("invalid build type %q (want one of %s)", c.BuildType, strings.Join(benchdata.BuildTypes, ", "))
		}
		return []string{c.BuildType}, nil
	case c.DebugOnly:
		return []string{"Debug"}, nil
	case c.ReleaseOnly:
		return []string{"Release"}, nil
	}
	return append([]string(nil), benchdata.DefaultBuildTypes...), nil
}

// Format returns the parsed output format.
func (c *Config) Format() (benchdata.Format, error) {
	return benchdata.ParseFormat(c.OutputFormat)
}

// Validate checks numeric settings.
func (c *Config) Validate() error {
	if c.NumTypes <= 0 {
		return fmt.Errorf("num_types must be positive, got %d", c.NumTypes)
	}
	if c.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", c.Runs)
	}
	return nil
}
