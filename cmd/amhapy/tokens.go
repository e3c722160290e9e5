package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/felekekinfe/AmhaPy-Amharic-based-Programming-Language-Transpiler/amhapy"
)

func tokensCommand(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("amhapy tokens: source path required")
	}

	source, err := readSource(remaining[0])
	if err != nil {
		return err
	}
	tokens, err := amhapy.Lex(source)
	if err != nil {
		return fmt.Errorf("lex failed: %w", err)
	}

	for _, tok := range tokens {
		fmt.Printf("%4d:%-4d %-12s %q\n", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Literal)
	}
	return nil
}
