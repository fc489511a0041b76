// Package zeroseed defines an Analyzer that reports rng16 generators seeded
// with a constant zero.
//
// A zero seed is always rejected at run time and leaves the generator
// unseeded, so a call whose seed argument is a constant zero is a bug at the
// call site. The analyzer flags every call into package rng16 whose parameter
// named seed receives a constant expression equal to zero.
package zeroseed

import (
	"go/ast"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const Doc = `report rng16 generators seeded with a constant zero

Seeding an rng16 generator with zero is always rejected and leaves the
generator producing zeros. Calls passing a constant zero as seed are reported.`

// PkgPath is the import path of the package whose calls are checked.
const PkgPath = "github.com/soypat/rng16"

const seedParam = "seed"

var Analyzer = &analysis.Analyzer{
	Name:     "zeroseed",
	Doc:      Doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{(*ast.CallExpr)(nil)}
	inspect.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok || fn.Pkg() == nil || fn.Pkg().Path() != PkgPath {
			return
		}
		params := fn.Type().(*types.Signature).Params()
		for i := 0; i < params.Len() && i < len(call.Args); i++ {
			if params.At(i).Name() != seedParam {
				continue
			}
			arg := call.Args[i]
			if isConstZero(pass.TypesInfo, arg) {
				pass.Reportf(arg.Pos(), "%s: seed is always zero, generators must be seeded with a non-zero value", fn.Name())
			}
		}
	})
	return nil, nil
}

func isConstZero(info *types.Info, expr ast.Expr) bool {
	tv, ok := info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.Int {
		return false
	}
	return constant.Sign(tv.Value) == 0
}
