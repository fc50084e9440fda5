package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pdl-lex/gridbridge/event"
	"github.com/pdl-lex/gridbridge/internal/processor"
)

func main() {
	outputFile := flag.String("o", "", "Output file (default: stdout)")
	pretty := flag.Bool("pretty", false, "Pretty-print JSON output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gridreplay [flags] <capture-file>\n\n")
		fmt.Fprintf(os.Stderr, "Grid session replay - runs captured grid events through the event adapters\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gridreplay session.jsonl              Replay capture, output to stdout\n")
		fmt.Fprintf(os.Stderr, "  gridreplay -o out.jsonl session.jsonl Replay capture, output to file\n")
		fmt.Fprintf(os.Stderr, "  gridreplay -pretty session.jsonl      Pretty-print output\n")
	}

	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Error: capture file required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	reader, err := event.NewReaderFromFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading capture: %v\n", err)
		os.Exit(1)
	}

	var writer io.Writer = os.Stdout
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		writer = f
	}

	pipeline := processor.NewPipeline(reader, writer, *pretty)
	if err := pipeline.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying events: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Replayed %d events (%d bytes)\n", pipeline.EventCount(), pipeline.OutputBytes())
}
