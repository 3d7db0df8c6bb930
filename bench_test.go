package iomap

import (
	"fmt"
	"testing"

	"github.com/gogpu/iomap/ir"
)

// benchModule builds a module with nVars resource globals spread across a
// call chain of nFns functions plus one unreachable function, so the
// benchmark exercises both gather passes, ordering, and resolution.
func benchModule(nVars, nFns int) *ir.Module {
	m := &ir.Module{
		Types: []ir.Type{{Name: "Params", Inner: ir.StructType{Span: 64}}},
	}
	for i := 0; i < nVars; i++ {
		v := ir.GlobalVariable{
			Name:  fmt.Sprintf("uVar%d", i),
			Space: ir.SpaceUniform,
			Type:  0,
		}
		// Every fourth variable carries explicit qualifiers so the
		// priority tiers are all populated.
		if i%4 == 0 {
			g, b := uint32(0), uint32(i)
			v.Layout = ir.ResourceLayout{Group: &g, Binding: &b}
		}
		m.GlobalVariables = append(m.GlobalVariables, v)
	}

	for f := 0; f < nFns; f++ {
		fn := ir.Function{Name: fmt.Sprintf("fn%d", f)}
		for i := f; i < nVars; i += nFns {
			fn.Expressions = append(fn.Expressions,
				ir.Expression{Kind: ir.Literal{Value: ir.LiteralI32(int32(i))}},
				ir.Expression{Kind: ir.ExprGlobalVariable{Variable: ir.GlobalVariableHandle(i)}},
			)
		}
		if f+1 < nFns {
			fn.Body = ir.Block{{Kind: ir.StmtCall{Function: ir.FunctionHandle(f + 1)}}}
		}
		m.Functions = append(m.Functions, fn)
	}
	// Unreachable function referencing the first variable.
	m.Functions = append(m.Functions, ir.Function{
		Name:        "orphan",
		Expressions: []ir.Expression{{Kind: ir.ExprGlobalVariable{Variable: 0}}},
	})

	m.EntryPoints = []ir.EntryPoint{{Name: "fn0", Stage: ir.StageFragment, Function: 0}}
	return m
}

// passThroughResolver validates everything and resolves nothing, so the
// module is never mutated and can be reused across iterations.
type passThroughResolver struct{}

func (passThroughResolver) ValidateBinding(ir.ShaderStage, string, VarType, bool) bool {
	return true
}

func (passThroughResolver) ResolveBinding(ir.ShaderStage, string, VarType, bool) (uint32, bool) {
	return 0, false
}

func (passThroughResolver) ResolveSet(ir.ShaderStage, string, VarType, bool) (uint32, bool) {
	return 0, false
}

func BenchmarkAddStage(b *testing.B) {
	sizes := []struct {
		name      string
		vars, fns int
	}{
		{"small_8vars_2fns", 8, 2},
		{"medium_64vars_8fns", 64, 8},
		{"large_512vars_32fns", 512, 32},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			m := benchModule(size.vars, size.fns)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if ok := AddStage(ir.StageFragment, m, nil, passThroughResolver{}); !ok {
					b.Fatal("AddStage failed")
				}
			}
		})
	}
}

func BenchmarkGather(b *testing.B) {
	m := benchModule(256, 16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var reg Registry
		if err := gather(m, &reg); err != nil {
			b.Fatal(err)
		}
	}
}
