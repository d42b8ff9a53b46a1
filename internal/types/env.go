package types

import "github.com/sunholo/magc/internal/ast"

// Env is a type environment with a parent-chain lookup, mapping names to
// their declared or inferred types.
type Env struct {
	vars   map[string]ast.Type
	parent *Env
}

func NewEnv() *Env {
	return &Env{vars: make(map[string]ast.Type)}
}

func (e *Env) Child() *Env {
	return &Env{vars: make(map[string]ast.Type), parent: e}
}

func (e *Env) Define(name string, t ast.Type) {
	e.vars[name] = t
}

func (e *Env) Lookup(name string) (ast.Type, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if t, ok := cur.vars[name]; ok {
			return t, true
		}
	}
	return nil, false
}
