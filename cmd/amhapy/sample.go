package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/felekekinfe/AmhaPy-Amharic-based-Programming-Language-Transpiler/amhapy"
)

func sampleCommand(args []string) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	outPath := fs.String("o", "sample.amha", "where to write the sample program")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.WriteFile(*outPath, []byte(amhapy.SampleProgram), 0o644); err != nil {
		return fmt.Errorf("write sample program: %w", err)
	}
	fmt.Printf("Sample program written to %s\n", *outPath)
	return nil
}
