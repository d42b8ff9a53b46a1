package module

import (
	"fmt"
	"sync"

	"github.com/sunholo/magc/internal/errors"
)

// Registry is the process-wide table of modules participating in a build.
// It is safe for concurrent use: the language server runs analyses for
// several open documents at once, each touching the same registry.
type Registry struct {
	mu      sync.Mutex
	modules map[string]*Module
	names   []string // insertion order, mirrored in modules
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*Module)}
}

// defaultRegistry is a process-wide registry. The build orchestrator does
// not use it: Build and BuildProject each create a fresh Registry.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register adds mod to the registry. Two modules may not share a derived
// name within a build; a collision reports MOD001 and the module is not
// added. A name equal to a builtin module reports MOD002 and is likewise
// rejected, since the builtin namespace is reserved for the standard
// library shipped by codegen.
func (r *Registry) Register(mod *Module, diags *errors.Reporter) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if IsBuiltin(mod.Name) {
		diags.Error(errors.MOD002, fmt.Sprintf("module name '%s' collides with a builtin module", mod.Name), nil, "choose a name outside the Std namespace")
		return false
	}
	if _, exists := r.modules[mod.Name]; exists {
		diags.Error(errors.MOD001, fmt.Sprintf("module name '%s' is already registered", mod.Name), nil, "")
		return false
	}
	r.modules[mod.Name] = mod
	r.names = append(r.names, mod.Name)
	return true
}

// Get looks up a module by its exact derived name.
func (r *Registry) Get(name string) (*Module, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.modules[name]
	return m, ok
}

// Iter calls fn for every registered module in insertion order. fn must not
// call back into the registry; Iter holds the lock for its duration.
func (r *Registry) Iter(fn func(*Module)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range r.names {
		fn(r.modules[name])
	}
}

// Names returns the registered module names in deterministic insertion
// order, the same order Iter visits them in.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Clear empties the registry. Used between independent builds (tests, LSP
// re-analysis of a workspace) so stale modules never leak across them.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules = make(map[string]*Module)
	r.names = nil
}
