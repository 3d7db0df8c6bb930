// Package snapshot_test provides golden snapshot tests for the binding
// resolution pass.
//
// For each shader interface description in testdata/in/, the test runs
// the pass with a fresh default policy and compares the resolved binding
// table to the golden file in testdata/golden/.
//
// To regenerate golden files after intentional changes:
//
//	UPDATE_GOLDEN=1 go test ./snapshot/...
package snapshot_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/iomap"
	"github.com/gogpu/iomap/desc"
	"github.com/gogpu/iomap/layout"
)

func TestSnapshots(t *testing.T) {
	inputs, err := filepath.Glob(filepath.Join("testdata", "in", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) == 0 {
		t.Fatal("no input descriptions found in testdata/in/")
	}

	for _, input := range inputs {
		name := strings.TrimSuffix(filepath.Base(input), ".yaml")
		t.Run(name, func(t *testing.T) {
			module, stage, err := desc.Load(input)
			if err != nil {
				t.Fatalf("loading %s: %v", input, err)
			}

			var diags []string
			sink := iomap.SinkFunc(func(msg string) { diags = append(diags, msg) })
			if ok := iomap.AddStage(stage, module, sink, layout.NewDefaultResolver()); !ok {
				t.Fatalf("AddStage failed: %v", diags)
			}

			compareGolden(t, filepath.Join("testdata", "golden", name+".txt"), desc.FormatTable(module))
		})
	}
}

func compareGolden(t *testing.T, path, got string) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("updating golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading golden file (run with UPDATE_GOLDEN=1 to create): %v", err)
	}
	if got != string(want) {
		t.Errorf("output does not match %s:\n--- got ---\n%s--- want ---\n%s", path, got, want)
	}
}
