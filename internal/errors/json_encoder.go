package errors

import (
	"encoding/json"
	"strings"
)

// EncodeJSON marshals a batch of diagnostics for consumption by an
// out-of-core front end (the language server's transport). The core never
// depends on the result; it only produces it.
func EncodeJSON(reports []Report) ([]byte, error) {
	return json.MarshalIndent(reports, "", "  ")
}

// FilterForLSP drops diagnostics that are spurious in an editor context:
// "cannot call non-function" on a chain that resolves through a known
// method, and "undefined variable" on an identifier that heads a
// top-level module/namespace path. This predicate belongs to the
// language-server front end, not the core reporter — the core always
// returns every diagnostic it finds; only the editor-facing caller
// narrows the view.
func FilterForLSP(reports []Report, knownMethodChains, knownNamespaces map[string]bool) []Report {
	out := make([]Report, 0, len(reports))
	for _, r := range reports {
		if r.Code == NAME001 && isKnownNamespaceDiagnostic(r.Message, knownNamespaces) {
			continue
		}
		if strings.Contains(r.Message, "cannot call non-function") && isKnownMethodChainDiagnostic(r.Message, knownMethodChains) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func isKnownNamespaceDiagnostic(msg string, known map[string]bool) bool {
	for name := range known {
		if strings.Contains(msg, name) {
			return true
		}
	}
	return false
}

func isKnownMethodChainDiagnostic(msg string, known map[string]bool) bool {
	for chain := range known {
		if strings.Contains(msg, chain) {
			return true
		}
	}
	return false
}
