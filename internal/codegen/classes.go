package codegen

import (
	"strings"

	"github.com/sunholo/magc/internal/ast"
)

func (g *Generator) emitClassForwardDecl(cls *ast.ClassDecl) {
	g.writeln("class %s;", cls.Name)
}

// emitClass emits a class with public/private fields and methods following
// the source's modifiers, an argumented constructor over all fields (a
// default constructor when there are none), and methods as ordinary
// members. The constructor is always public, since it is how external code
// builds the class regardless of its members' own visibility. static
// members become static.
func (g *Generator) emitClass(cls *ast.ClassDecl) {
	g.writeln("class %s {", cls.Name)
	g.indent++
	g.writeln("public:")

	if len(cls.Fields) > 0 {
		params := make([]string, len(cls.Fields))
		inits := make([]string, len(cls.Fields))
		for i, f := range cls.Fields {
			params[i] = cppType(f.Type) + " " + f.Name + "_"
			inits[i] = f.Name + "(" + f.Name + "_)"
		}
		g.writeln("%s(%s) : %s {}", cls.Name, strings.Join(params, ", "), strings.Join(inits, ", "))
	} else {
		g.writeln("%s() {}", cls.Name)
	}

	for _, f := range cls.Fields {
		if f.IsPublic {
			g.emitField(f)
		}
	}
	for _, m := range cls.Methods {
		if m.IsPublic {
			g.emitMethod(cls, m)
		}
	}

	privateFields := make([]*ast.FieldDecl, 0, len(cls.Fields))
	for _, f := range cls.Fields {
		if !f.IsPublic {
			privateFields = append(privateFields, f)
		}
	}
	privateMethods := make([]*ast.FnDecl, 0, len(cls.Methods))
	for _, m := range cls.Methods {
		if !m.IsPublic {
			privateMethods = append(privateMethods, m)
		}
	}
	if len(privateFields) > 0 || len(privateMethods) > 0 {
		g.writeln("private:")
		for _, f := range privateFields {
			g.emitField(f)
		}
		for _, m := range privateMethods {
			g.emitMethod(cls, m)
		}
	}

	g.indent--
	g.writeln("};")
	g.writeln("")
}

func (g *Generator) emitField(f *ast.FieldDecl) {
	storage := ""
	if f.IsStatic {
		storage = "static "
	}
	if f.Init != nil {
		g.writeln("%s%s %s = %s;", storage, cppType(f.Type), f.Name, g.emitExpr(f.Init))
	} else {
		g.writeln("%s%s %s;", storage, cppType(f.Type), f.Name)
	}
}

func (g *Generator) emitMethod(cls *ast.ClassDecl, fn *ast.FnDecl) {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = cppType(p.Type) + " " + p.Name
	}
	storage := ""
	if fn.IsStatic {
		storage = "static "
	}
	g.writeln("%s%s %s(%s) {", storage, cppFuncReturnType(fn.ReturnType), fn.Name, strings.Join(params, ", "))
	g.indent++
	g.emitBlock(fn.Body)
	g.indent--
	g.writeln("}")
}
