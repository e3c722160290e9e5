package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/felekekinfe/AmhaPy-Amharic-based-Programming-Language-Transpiler/amhapy"
	"github.com/felekekinfe/AmhaPy-Amharic-based-Programming-Language-Transpiler/pyexec"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "emit":
		return emitCommand(args[2:])
	case "tokens":
		return tokensCommand(args[2:])
	case "fmt":
		return fmtCommand(args[2:])
	case "sample":
		return sampleCommand(args[2:])
	case "repl":
		return runREPL()
	case "lsp":
		return runLSP()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	checkOnly := fs.Bool("check", false, "validate the program without executing")
	quiet := fs.Bool("quiet", false, "print only the program output")
	interpreter := fs.String("python", "", "python interpreter to execute with (default \""+pyexec.DefaultInterpreter+"\")")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("amhapy run: source path required")
	}

	source, err := readSource(remaining[0])
	if err != nil {
		return err
	}
	python, err := amhapy.Translate(source)
	if err != nil {
		return fmt.Errorf("transpile failed: %w", err)
	}
	if err := pyexec.CheckSyntax(python); err != nil {
		return fmt.Errorf("generated code rejected: %w", err)
	}
	if *checkOnly {
		return nil
	}

	runner, err := pyexec.NewRunner(*interpreter)
	if err != nil {
		return err
	}

	if !*quiet {
		fmt.Println("--- Transpiled Python Code ---")
		fmt.Println(python)
		fmt.Println("------------------------------")
		fmt.Println()
		fmt.Println("--- Program Output ---")
	}
	output, err := runner.Run(context.Background(), python)
	fmt.Print(output)
	if output != "" && !strings.HasSuffix(output, "\n") {
		fmt.Println()
	}
	if !*quiet {
		fmt.Println("----------------------")
	}
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	return nil
}

func readSource(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve source path: %w", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [args]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run [-check] [-quiet] [-python bin] <file>  transpile a program and execute it")
	fmt.Fprintln(os.Stderr, "  emit [-o out.py] <file>                     transpile a program and print the Python")
	fmt.Fprintln(os.Stderr, "  tokens <file>                               dump the token stream of a program")
	fmt.Fprintln(os.Stderr, "  fmt [-w] [-check] <path ...>                normalize program formatting")
	fmt.Fprintln(os.Stderr, "  sample [-o file]                            write the bundled demo program")
	fmt.Fprintln(os.Stderr, "  repl                                        start an interactive session")
	fmt.Fprintln(os.Stderr, "  lsp                                         speak the language server protocol on stdio")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
