package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/felekekinfe/AmhaPy-Amharic-based-Programming-Language-Transpiler/amhapy"
)

func emitCommand(args []string) error {
	fs := flag.NewFlagSet("emit", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	outPath := fs.String("o", "", "write the Python source to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("amhapy emit: source path required")
	}

	source, err := readSource(remaining[0])
	if err != nil {
		return err
	}
	python, err := amhapy.Translate(source)
	if err != nil {
		return fmt.Errorf("transpile failed: %w", err)
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(python+"\n"), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	fmt.Println(python)
	return nil
}
