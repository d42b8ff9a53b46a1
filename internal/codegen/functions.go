package codegen

import (
	"strings"

	"github.com/sunholo/magc/internal/ast"
)

func (g *Generator) emitFunctionForwardDecl(fn *ast.FnDecl) {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = cppType(p.Type)
	}
	g.writeln("%s %s(%s);", cppFuncReturnType(fn.ReturnType), fn.Name, strings.Join(params, ", "))
}

// emitFunction emits a function body. main is special-cased as `int
// main()`, with an implicit `return 0;` appended when the source body has
// no terminal return.
func (g *Generator) emitFunction(fn *ast.FnDecl) {
	if fn.Name == "main" {
		g.writeln("int main() {")
		g.indent++
		g.emitBlock(fn.Body)
		if !endsInReturn(fn.Body) {
			g.writeln("return 0;")
		}
		g.indent--
		g.writeln("}")
		g.writeln("")
		return
	}

	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = cppType(p.Type) + " " + p.Name
	}
	g.writeln("%s %s(%s) {", cppFuncReturnType(fn.ReturnType), fn.Name, strings.Join(params, ", "))
	g.indent++
	g.emitBlock(fn.Body)
	g.indent--
	g.writeln("}")
	g.writeln("")
}

func endsInReturn(body []ast.Stmt) bool {
	if len(body) == 0 {
		return false
	}
	_, ok := body[len(body)-1].(*ast.ReturnStmt)
	return ok
}
