// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads the settings of the asm14 command.
//
// Settings are layered: the defaults, then an optional Starlark
// configuration file, then the environment, and finally the command line
// flags. A configuration file assigns globals:
//
//	verbose = False
//	color = "auto"
//	output_dir = "build"
//	keep_expanded = True
//
// Globals starting with '_' are private to the file, and are ignored.
package config

import (
	"log"
	"strings"

	"github.com/xyproto/env/v2"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/asm14/term"
)

const (
	ENV_CONFIG     = "ASM14_CONFIG"     // Path of the configuration file.
	ENV_VERBOSE    = "ASM14_VERBOSE"    // Verbose logging.
	ENV_COLOR      = "ASM14_COLOR"      // Colour mode of diagnostics.
	ENV_OUTPUT_DIR = "ASM14_OUTPUT_DIR" // Directory for the generated files.
	ENV_KEEP       = "ASM14_KEEP"       // Keep the macro expanded sources.
	ENV_NO_COLOR   = "NO_COLOR"         // Disables colour, if set.
)

// Config holds the settings of an assembler run.
type Config struct {
	Verbose      bool           // If set, verbosely logs the assembler actions.
	Color        term.ColorMode // Colour mode of diagnostics.
	OutputDir    string         // Directory for the .am, .ob, .ent and .ext files.
	KeepExpanded bool           // If set, keeps the .am file after the run.
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Color:        term.COLOR_AUTO,
		OutputDir:    ".",
		KeepExpanded: true,
	}
}

// ConfigFile returns the configuration file named by the environment, if any.
func ConfigFile() string {
	env.Load()
	return env.Str(ENV_CONFIG)
}

func typeError(name string, want string, value starlark.Value) error {
	return &ErrConfigType{Name: name, Want: want, Got: value.Type()}
}

func asBool(name string, value starlark.Value) (b bool, err error) {
	st_bool, ok := value.(starlark.Bool)
	if !ok {
		err = typeError(name, "bool", value)
		return
	}
	b = bool(st_bool)
	return
}

func asString(name string, value starlark.Value) (s string, err error) {
	s, ok := starlark.AsString(value)
	if !ok {
		err = typeError(name, "string", value)
	}
	return
}

// set assigns a single configuration global.
func (cfg *Config) set(name string, value starlark.Value) (err error) {
	switch name {
	case "verbose":
		cfg.Verbose, err = asBool(name, value)
	case "keep_expanded":
		cfg.KeepExpanded, err = asBool(name, value)
	case "output_dir":
		cfg.OutputDir, err = asString(name, value)
	case "color":
		var mode string
		mode, err = asString(name, value)
		if err != nil {
			return
		}
		cfg.Color, err = term.ParseColorMode(mode)
		if err != nil {
			err = &ErrConfigValue{Name: name, Err: err}
		}
	default:
		err = ErrConfigUnknown(name)
	}
	return
}

// LoadStarlark executes a Starlark configuration file, and applies its
// globals. If src is nil, the file is read from filename; otherwise src
// is the file contents.
func (cfg *Config) LoadStarlark(filename string, src any) (err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	// Current settings are visible to the file.
	pred := starlark.StringDict{
		"default_output_dir": starlark.String(cfg.OutputDir),
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		return
	}

	for _, name := range globals.Keys() {
		if strings.HasPrefix(name, "_") {
			continue
		}
		err = cfg.set(name, globals[name])
		if err != nil {
			return
		}
	}

	return
}

// LoadEnv applies the settings found in the current environment.
func (cfg *Config) LoadEnv() (err error) {
	// env caches the environment; refresh it.
	env.Load()

	if env.Has(ENV_VERBOSE) {
		cfg.Verbose = env.Bool(ENV_VERBOSE)
	}

	if env.Has(ENV_KEEP) {
		cfg.KeepExpanded = env.Bool(ENV_KEEP)
	}

	cfg.OutputDir = env.Str(ENV_OUTPUT_DIR, cfg.OutputDir)

	if env.Has(ENV_COLOR) {
		cfg.Color, err = term.ParseColorMode(env.Str(ENV_COLOR))
		if err != nil {
			err = &ErrConfigValue{Name: ENV_COLOR, Err: err}
			return
		}
	}

	if env.Has(ENV_NO_COLOR) {
		cfg.Color = term.COLOR_NEVER
	}

	return
}

// Load builds the configuration from the defaults, the configuration file
// (if filename is not empty), and the environment.
func Load(filename string) (cfg Config, err error) {
	cfg = Default()

	if len(filename) != 0 {
		err = cfg.LoadStarlark(filename, nil)
		if err != nil {
			return
		}
	}

	err = cfg.LoadEnv()
	return
}
