// Package timeutc reports time.Now() calls whose result is not immediately
// converted with .UTC(). Stored and serialized task timestamps are UTC.
package timeutc

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const message = "time.Now() should be followed by .UTC() for timezone consistency"

// Analyzer is the timeutc analyzer.
var Analyzer = &analysis.Analyzer{
	Name:     "timeutc",
	Doc:      "checks for time.Now() calls without .UTC() to ensure timezone consistency",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	suppressed := nolintLines(pass)

	insp.WithStack([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		call := n.(*ast.CallExpr)
		if !isTimeNow(pass.TypesInfo, call) {
			return true
		}
		if len(stack) >= 2 && isUTCSelector(stack[len(stack)-2], call) {
			return true
		}

		pos := pass.Fset.Position(call.Pos())
		if suppressed[lineKey{pos.Filename, pos.Line}] {
			return true
		}

		pass.Reportf(call.Pos(), message)
		return true
	})

	return nil, nil
}

// isTimeNow resolves the callee through type information, so aliased
// imports of package time are caught too.
func isTimeNow(info *types.Info, call *ast.CallExpr) bool {
	fn, ok := typeutil.Callee(info, call).(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}
	return fn.Pkg().Path() == "time" && fn.Name() == "Now"
}

func isUTCSelector(parent ast.Node, call *ast.CallExpr) bool {
	sel, ok := parent.(*ast.SelectorExpr)
	return ok && sel.X == call && sel.Sel.Name == "UTC"
}

type lineKey struct {
	file string
	line int
}

// nolintLines collects lines covered by //nolint or //nolint:timeutc.
// A directive covers its own line and the line below it.
func nolintLines(pass *analysis.Pass) map[lineKey]bool {
	lines := make(map[lineKey]bool)
	for _, file := range pass.Files {
		for _, cg := range file.Comments {
			for _, c := range cg.List {
				if !suppresses(c.Text) {
					continue
				}
				pos := pass.Fset.Position(c.Pos())
				lines[lineKey{pos.Filename, pos.Line}] = true
				lines[lineKey{pos.Filename, pos.Line + 1}] = true
			}
		}
	}
	return lines
}

func suppresses(comment string) bool {
	text := strings.TrimSpace(strings.TrimPrefix(comment, "//"))
	directive, _, _ := strings.Cut(text, " ")
	if directive == "nolint" {
		return true
	}
	linters, ok := strings.CutPrefix(directive, "nolint:")
	if !ok {
		return false
	}
	for _, name := range strings.Split(linters, ",") {
		if name == Analyzer.Name {
			return true
		}
	}
	return false
}
