package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/gear-tech/scale/dynamic"
	"github.com/gear-tech/scale/types"
)

func main() {
	var (
		hexStr      = flag.String("hex", "", "Hex-encoded input bytes (0x prefix optional)")
		file        = flag.String("file", "", "Read input bytes from a binary file")
		typeName    = flag.String("type", "", "Registered type name to decode as")
		list        = flag.Bool("list", false, "List registered types and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		if logger, err := zap.NewDevelopment(); err == nil {
			dynamic.SetLogger(logger)
		}
	}

	reg := dynamic.NewRegistry()
	if err := types.RegisterAll(reg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(reg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !*list && *typeName == "" {
		fmt.Fprintln(os.Stderr, "Usage: scale-inspect -type <name> -hex <bytes>")
		fmt.Fprintln(os.Stderr, "       scale-inspect -type <name> -file <path>")
		fmt.Fprintln(os.Stderr, "       scale-inspect -list")
		fmt.Fprintln(os.Stderr, "       scale-inspect -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(reg, *hexStr, *file, *typeName, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(reg *dynamic.Registry, hexStr, file, typeName string, listOnly bool) error {
	if listOnly {
		fmt.Println("Registered types:")
		for _, name := range reg.Names() {
			s, _ := reg.Lookup(name)
			fmt.Printf("  %-28s %s\n", name, s.String())
		}
		return nil
	}

	data, err := inputBytes(hexStr, file)
	if err != nil {
		return err
	}

	v, err := reg.DecodeAs(data, typeName)
	if err != nil {
		return fmt.Errorf("decode %d byte(s) as %s: %w", len(data), typeName, err)
	}

	fmt.Printf("%s (%d bytes)\n", typeName, len(data))
	fmt.Println(v.String())
	return nil
}

func inputBytes(hexStr, file string) ([]byte, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return data, nil
	}
	return parseHex(hexStr)
}

func parseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
	if s == "" {
		return nil, fmt.Errorf("no input bytes; use -hex or -file")
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	return data, nil
}
