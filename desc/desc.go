// Package desc loads declarative shader interface descriptions.
//
// A description lists the resource globals of one stage, the functions
// that use them, and the call edges between those functions — the part of
// a shader that binding resolution looks at, without requiring a source
// parser:
//
//	stage: fragment
//	entry: main
//	globals:
//	  - {name: uParams, kind: uniform, group: 0, binding: 2}
//	  - {name: uAlbedo, kind: texture}
//	functions:
//	  - {name: main, uses: [uAlbedo], calls: [shade]}
//	  - {name: shade, uses: [uParams]}
//
// The bindc tool and the snapshot tests build IR modules from these
// files.
package desc

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/iomap/ir"
)

// File mirrors the YAML description layout.
type File struct {
	Stage     string     `yaml:"stage"`
	Entry     string     `yaml:"entry"`
	Globals   []Global   `yaml:"globals"`
	Functions []Function `yaml:"functions"`
}

// Global declares one module-scope variable.
type Global struct {
	Name    string  `yaml:"name"`
	Kind    string  `yaml:"kind"`
	Group   *uint32 `yaml:"group"`
	Binding *uint32 `yaml:"binding"`
}

// Function declares one function interface: which globals it uses and
// which functions it calls.
type Function struct {
	Name  string   `yaml:"name"`
	Uses  []string `yaml:"uses"`
	Calls []string `yaml:"calls"`
}

// Parse decodes a YAML description and builds the corresponding module.
func Parse(data []byte) (*ir.Module, ir.ShaderStage, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, 0, fmt.Errorf("desc: parsing description: %w", err)
	}
	return f.Build()
}

// Load reads and parses a description file.
func Load(path string) (*ir.Module, ir.ShaderStage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("desc: %w", err)
	}
	return Parse(data)
}

// Build constructs the IR module the description denotes.
func (f *File) Build() (*ir.Module, ir.ShaderStage, error) {
	stage, err := parseStage(f.Stage)
	if err != nil {
		return nil, 0, err
	}

	m := &ir.Module{}
	typeByKind := make(map[string]kindInfo)
	globalByName := make(map[string]ir.GlobalVariableHandle)

	for _, g := range f.Globals {
		info, err := typeForKind(m, typeByKind, g.Kind)
		if err != nil {
			return nil, 0, fmt.Errorf("desc: global %q: %w", g.Name, err)
		}
		if _, exists := globalByName[g.Name]; exists {
			return nil, 0, fmt.Errorf("desc: duplicate global %q", g.Name)
		}
		globalByName[g.Name] = ir.GlobalVariableHandle(len(m.GlobalVariables))
		m.GlobalVariables = append(m.GlobalVariables, ir.GlobalVariable{
			Name:   g.Name,
			Space:  info.space,
			Layout: ir.ResourceLayout{Group: copyU32(g.Group), Binding: copyU32(g.Binding)},
			Type:   info.handle,
		})
	}

	fnByName := make(map[string]ir.FunctionHandle, len(f.Functions))
	for _, fn := range f.Functions {
		if _, exists := fnByName[fn.Name]; exists {
			return nil, 0, fmt.Errorf("desc: duplicate function %q", fn.Name)
		}
		fnByName[fn.Name] = ir.FunctionHandle(len(fnByName))
	}

	for _, fn := range f.Functions {
		var irFn ir.Function
		irFn.Name = fn.Name
		for _, use := range fn.Uses {
			g, ok := globalByName[use]
			if !ok {
				return nil, 0, fmt.Errorf("desc: function %q uses unknown global %q", fn.Name, use)
			}
			irFn.Expressions = append(irFn.Expressions, ir.Expression{Kind: ir.ExprGlobalVariable{Variable: g}})
		}
		for _, call := range fn.Calls {
			callee, ok := fnByName[call]
			if !ok {
				return nil, 0, fmt.Errorf("desc: function %q calls unknown function %q", fn.Name, call)
			}
			result := ir.ExpressionHandle(len(irFn.Expressions))
			irFn.Expressions = append(irFn.Expressions, ir.Expression{Kind: ir.ExprCallResult{Function: callee}})
			irFn.Body = append(irFn.Body, ir.Statement{Kind: ir.StmtCall{Function: callee, Result: &result}})
		}
		irFn.Body = append(irFn.Body, ir.Statement{Kind: ir.StmtReturn{}})
		m.Functions = append(m.Functions, irFn)
	}

	entry, ok := fnByName[f.Entry]
	if !ok {
		return nil, 0, fmt.Errorf("desc: entry point %q is not a listed function", f.Entry)
	}
	m.EntryPoints = []ir.EntryPoint{{Name: f.Entry, Stage: stage, Function: entry}}

	return m, stage, nil
}

func parseStage(s string) (ir.ShaderStage, error) {
	switch s {
	case "", "vertex":
		return ir.StageVertex, nil
	case "fragment":
		return ir.StageFragment, nil
	case "compute":
		return ir.StageCompute, nil
	default:
		return 0, fmt.Errorf("desc: unknown stage %q", s)
	}
}

// kindInfo caches the type handle and address space built for a kind.
type kindInfo struct {
	handle ir.TypeHandle
	space  ir.AddressSpace
}

// typeForKind returns the cached type for a kind, building it (and any
// base types it needs) on first use.
func typeForKind(m *ir.Module, cache map[string]kindInfo, kind string) (kindInfo, error) {
	if info, ok := cache[kind]; ok {
		return info, nil
	}

	var inner ir.TypeInner
	var space ir.AddressSpace
	switch kind {
	case "uniform", "buffer":
		inner, space = ir.StructType{}, ir.SpaceUniform
	case "storage":
		// Storage buffers are runtime-sized arrays of scalars.
		inner, space = ir.ArrayType{Base: scalarF32(m, cache), Stride: 4}, ir.SpaceStorage
	case "texture":
		inner, space = ir.ImageType{Dim: ir.Dim2D, Class: ir.ImageClassSampled}, ir.SpaceHandle
	case "image":
		inner, space = ir.ImageType{Dim: ir.Dim2D, Class: ir.ImageClassStorage}, ir.SpaceHandle
	case "sampler":
		inner, space = ir.SamplerType{}, ir.SpaceHandle
	case "private":
		inner, space = ir.VectorType{Size: ir.Vec4, Scalar: ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}}, ir.SpacePrivate
	default:
		return kindInfo{}, fmt.Errorf("unknown kind %q", kind)
	}

	info := kindInfo{handle: ir.TypeHandle(len(m.Types)), space: space}
	m.Types = append(m.Types, ir.Type{Name: kind, Inner: inner})
	cache[kind] = info
	return info, nil
}

// scalarF32 returns the module's f32 type, creating it on first use.
// The cache key cannot collide with a kind name.
func scalarF32(m *ir.Module, cache map[string]kindInfo) ir.TypeHandle {
	const key = "$f32"
	if info, ok := cache[key]; ok {
		return info.handle
	}
	info := kindInfo{handle: ir.TypeHandle(len(m.Types))}
	m.Types = append(m.Types, ir.Type{Name: "f32", Inner: ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}})
	cache[key] = info
	return info.handle
}

func copyU32(p *uint32) *uint32 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// FormatTable renders the resource globals of a module as a fixed-width
// table, one line per variable in declaration order. Absent qualifiers
// print as "-".
func FormatTable(m *ir.Module) string {
	width := 0
	for i := range m.GlobalVariables {
		v := &m.GlobalVariables[i]
		if v.Space.IsResource() && len(v.Name) > width {
			width = len(v.Name)
		}
	}

	var b strings.Builder
	for i := range m.GlobalVariables {
		v := &m.GlobalVariables[i]
		if !v.Space.IsResource() {
			continue
		}
		fmt.Fprintf(&b, "%-*s  group=%s binding=%s\n", width, v.Name, formatU32(v.Layout.Group), formatU32(v.Layout.Binding))
	}
	return b.String()
}

func formatU32(p *uint32) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatUint(uint64(*p), 10)
}
