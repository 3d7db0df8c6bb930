// Command bindc resolves resource bindings for a shader interface
// description.
//
// Usage:
//
//	bindc [options] <description.yaml>
//
// Examples:
//
//	bindc shader.yaml                    # Resolve with default policy
//	bindc -layout pipeline.yaml shader.yaml
//	bindc -o bindings.txt shader.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/iomap"
	"github.com/gogpu/iomap/desc"
	"github.com/gogpu/iomap/layout"
)

var (
	layoutPath = flag.String("layout", "", "pipeline layout config (YAML)")
	output     = flag.String("o", "", "output file (default: stdout)")
	version    = flag.Bool("version", false, "print version")
)

const bindcVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("bindc version %s\n", bindcVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no description file specified")
		usage()
		os.Exit(1)
	}

	module, stage, err := desc.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var resolver iomap.Resolver = layout.NewDefaultResolver()
	if *layoutPath != "" {
		cfg, err := layout.Load(*layoutPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		resolver = cfg.Resolver()
	}

	if ok := iomap.AddStage(stage, module, stderrSink{}, resolver); !ok {
		fmt.Fprintf(os.Stderr, "Error: binding resolution failed for %s stage\n", stage)
		os.Exit(1)
	}

	table := desc.FormatTable(module)
	if *output != "" {
		if err := os.WriteFile(*output, []byte(table), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Print(table)
	}
}

// stderrSink forwards pass diagnostics to standard error.
type stderrSink struct{}

func (stderrSink) Message(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

func usage() {
	fmt.Fprintf(os.Stderr, `bindc - resource binding resolver

Usage:
  bindc [options] <description.yaml>

Options:
`)
	flag.PrintDefaults()
}
