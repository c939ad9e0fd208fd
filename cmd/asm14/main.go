// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/asm14/config"
	"github.com/ezrec/asm14/driver"
	"github.com/ezrec/asm14/object"
	"github.com/ezrec/asm14/term"
)

func main() {
	var configFile string
	var outputDir string
	var verbose bool
	var color string
	var keep bool

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] base...\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Assembles each base.as into base.ob, base.ent and base.ext.\n")
		flag.PrintDefaults()
	}

	flag.StringVar(&configFile, "config", config.ConfigFile(), "Starlark configuration file")
	flag.StringVar(&outputDir, "o", "", "Output directory")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&color, "color", "", "Colour diagnostics: auto, always or never")
	flag.BoolVar(&keep, "keep", false, "Keep the macro expanded .am files")

	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatalf("%v: %v", configFile, err)
	}

	// Flags override the configuration file and the environment.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "o":
			cfg.OutputDir = outputDir
		case "v":
			cfg.Verbose = verbose
		case "keep":
			cfg.KeepExpanded = keep
		case "color":
			cfg.Color, err = term.ParseColorMode(color)
			if err != nil {
				log.Fatalf("-color: %v", err)
			}
		}
	})

	filesys := object.DirFS("")

	// Without an output directory, generated files sit next to their source.
	flat := cfg.OutputDir != "" && cfg.OutputDir != "."

	var output object.CreateFS = filesys
	if flat {
		output, err = object.Subdir(filesys, cfg.OutputDir)
		if err != nil {
			log.Fatalf("%v: %v", cfg.OutputDir, err)
		}
	}

	drv := driver.NewDriver(filesys, output)
	drv.Verbose = cfg.Verbose
	drv.Color = cfg.Color.Enabled(os.Stderr.Fd())
	drv.KeepExpanded = cfg.KeepExpanded
	drv.Flat = flat

	failed := drv.RunAll(flag.Args())
	if failed != 0 {
		os.Exit(1)
	}
}
