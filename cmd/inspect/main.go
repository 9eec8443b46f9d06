package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/bytefield/field"
	"github.com/wippyai/bytefield/schema"
)

func main() {
	var (
		layoutFile  = flag.String("layout", "", "Path to TOML layout definition")
		dataFile    = flag.String("data", "", "Path to binary file to parse")
		base        = flag.Int64("base", 0, "Address base for printed offsets")
		emitFile    = flag.String("emit", "", "Re-emit parsed structure to this path")
		verbose     = flag.Bool("v", false, "Verbose engine logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *layoutFile == "" || *dataFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -layout <layout.toml> -data <file.bin> [-base addr] [-emit out.bin]")
		fmt.Fprintln(os.Stderr, "       inspect -layout <layout.toml> -data <file.bin> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		field.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(*layoutFile, *dataFile, *emitFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*layoutFile, *dataFile, *emitFile, int(*base)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(layoutFile, dataFile, emitFile string, base int) error {
	s, data, err := load(layoutFile, dataFile)
	if err != nil {
		return err
	}

	end, err := s.Parse(data, 0, false)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	fmt.Printf("Layout: %s\n", layoutFile)
	fmt.Printf("Data:   %s (%d bytes, %d consumed)\n\n", dataFile, len(data), end)

	if err := s.Dump(os.Stdout, base); err != nil {
		return err
	}

	if emitFile != "" {
		out, err := s.Emit()
		if err != nil {
			return fmt.Errorf("emit: %w", err)
		}
		if err := os.WriteFile(emitFile, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", emitFile, err)
		}
		fmt.Printf("\nEmitted %d bytes to %s\n", len(out), emitFile)
	}

	return nil
}

func load(layoutFile, dataFile string) (*field.Struct, []byte, error) {
	l, err := schema.Load(layoutFile)
	if err != nil {
		return nil, nil, err
	}
	s, err := l.Build()
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(dataFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}
	return s, data, nil
}
