package codegen

import "github.com/sunholo/magc/internal/ast"

func (g *Generator) emitBlock(stmts []ast.Stmt) {
	for _, s := range stmts {
		g.emitStmt(s)
	}
}

func (g *Generator) emitStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		typ := "auto"
		if s.Type != nil {
			typ = cppType(s.Type)
		}
		mut := ""
		if !s.IsMut {
			mut = "const "
		}
		g.writeln("%s%s %s = %s;", mut, typ, s.Name, g.emitExpr(s.Init))

	case *ast.ReturnStmt:
		if s.Value == nil {
			g.writeln("return;")
		} else {
			g.writeln("return %s;", g.emitExpr(s.Value))
		}

	case *ast.ExprStmt:
		g.writeln("%s;", g.emitExpr(s.X))

	case *ast.BlockStmt:
		g.writeln("{")
		g.indent++
		g.emitBlock(s.Stmts)
		g.indent--
		g.writeln("}")

	case *ast.NativeStmt:
		g.writeln("// Inline native code:")
		for _, line := range splitLines(s.Code) {
			g.writeln("%s", line)
		}
		g.writeln("// End inline native code")

	case *ast.IfStmt:
		g.writeln("if (%s) {", g.emitExpr(s.Cond))
		g.indent++
		g.emitBlock(s.Then)
		g.indent--
		if len(s.Else) > 0 {
			g.writeln("} else {")
			g.indent++
			g.emitBlock(s.Else)
			g.indent--
		}
		g.writeln("}")

	case *ast.WhileStmt:
		g.writeln("while (%s) {", g.emitExpr(s.Cond))
		g.indent++
		g.emitBlock(s.Body)
		g.indent--
		g.writeln("}")

	case *ast.ForStmt:
		g.writeln("for (auto& %s : %s) {", s.Var, g.emitExpr(s.Iter))
		g.indent++
		g.emitBlock(s.Body)
		g.indent--
		g.writeln("}")

	case *ast.MatchStmt:
		g.emitMatch(s)
	}
}

// emitMatch lowers a match on an optional to an if/else chain that tests
// has_value() and destructures the Some binding via .value() into a
// let-bound copy.
func (g *Generator) emitMatch(s *ast.MatchStmt) {
	subject := g.emitExpr(s.Subject)
	var someArm, noneArm *ast.MatchArm
	for _, arm := range s.Arms {
		switch arm.Pattern {
		case "Some":
			someArm = arm
		case "None":
			noneArm = arm
		}
	}

	g.writeln("if ((%s).has_value()) {", subject)
	g.indent++
	if someArm != nil {
		if someArm.BindName != "" {
			g.writeln("auto %s = (%s).value();", someArm.BindName, subject)
		}
		g.emitBlock(someArm.Body)
	}
	g.indent--
	g.writeln("} else {")
	g.indent++
	if noneArm != nil {
		g.emitBlock(noneArm.Body)
	}
	g.indent--
	g.writeln("}")
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}
