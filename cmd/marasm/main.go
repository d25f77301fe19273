// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/ezrec/marasm/asm"
	"github.com/ezrec/marasm/config"
	"github.com/ezrec/marasm/file"
)

// override applies command line settings over a configuration.
func override(cfg *config.Config, extended bool, mode string, overflow string) (err error) {
	if extended {
		cfg.Opcodes = asm.OpcodesExtended
	}

	if len(mode) != 0 {
		cfg.Mode, err = asm.ParseMode(mode)
		if err != nil {
			return
		}
	}

	if len(overflow) != 0 {
		cfg.Overflow, err = asm.ParseOverflow(overflow)
		if err != nil {
			return
		}
	}

	return
}

func main() {
	var compile string
	var output string
	var mode string
	var overflow string
	var settings string
	var extended bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".mar file to assemble")
	flag.StringVar(&output, "o", "", "Output file, '-' for stdout (default: source with .txt)")
	flag.StringVar(&mode, "m", "", "Output mode, grouped or columns")
	flag.StringVar(&overflow, "overflow", "", "Overflow policy, reject or truncate")
	flag.StringVar(&settings, "t", "", ".star configuration file")
	flag.BoolVar(&extended, "x", false, "Use the extended opcode table")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() == 1 && len(compile) == 0 {
		// Source passed as a bare argument, as from a file manager.
		compile = flag.Arg(0)
	} else if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if len(settings) != 0 {
		var err error
		cfg, err = config.Load(settings, nil)
		if err != nil {
			log.Fatalf("%v: %v", settings, err)
		}
	}

	err := override(cfg, extended, mode, overflow)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	abs, err := filepath.Abs(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	dir, name := filepath.Split(abs)

	text, err := file.LoadSource(os.DirFS(dir), name)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	assembler := cfg.Assembler()
	assembler.Verbose = verbose

	out, err := assembler.Assemble(text)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if output == "-" {
		_, err = out.WriteTo(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	if len(output) == 0 {
		output = file.OutputName(abs)
	}

	abs, err = filepath.Abs(output)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
	dir, name = filepath.Split(abs)

	err = file.SaveOutput(file.DirFS(dir), name, out)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	if verbose {
		log.Printf("%v: %v records", output, len(out.Streams[0]))
	}
}
