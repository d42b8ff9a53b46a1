// Package codegen lowers a merged, type-checked ast.Program to a single
// C++17 translation unit. The emitted source is not required to match any
// particular formatting, only to compile and preserve the source's
// semantics under a standard host C++ compiler.
package codegen

import (
	"fmt"
	"strings"

	"github.com/sunholo/magc/internal/ast"
)

// Generator accumulates emitted C++ source. Apart from the textual output
// and the current indent depth, its only state is the set of namespace
// roots below; type information comes from the checker's annotations.
type Generator struct {
	sb     strings.Builder
	indent int

	// namespaceRoots holds the chain roots that address a namespace
	// rather than a value: Std plus every aliased native import. Member
	// chains rooted here lower with `::` instead of `.`.
	namespaceRoots map[string]bool
}

// NewGenerator returns an empty Generator.
func NewGenerator() *Generator {
	return &Generator{namespaceRoots: map[string]bool{"Std": true}}
}

// Generate lowers prog to a complete C++17 translation unit.
func Generate(prog *ast.Program) (string, error) {
	g := NewGenerator()
	for _, ni := range prog.NativeImports {
		if ni.AliasNamespace != "" {
			g.namespaceRoots[ni.AliasNamespace] = true
		}
	}
	g.writePrelude()

	for _, cls := range prog.Classes {
		g.emitClassForwardDecl(cls)
	}
	for _, fn := range prog.Functions {
		if fn.Name != "main" {
			g.emitFunctionForwardDecl(fn)
		}
	}
	g.writeln("")

	for _, cls := range prog.Classes {
		g.emitClass(cls)
	}
	for _, fn := range prog.Functions {
		g.emitFunction(fn)
	}

	return g.sb.String(), nil
}

func (g *Generator) writeln(format string, args ...any) {
	g.sb.WriteString(strings.Repeat("    ", g.indent))
	fmt.Fprintf(&g.sb, format, args...)
	g.sb.WriteByte('\n')
}

func (g *Generator) writePrelude() {
	g.sb.WriteString(prelude)
	g.sb.WriteByte('\n')
}

// prelude is the fixed runtime header: standard headers plus a Std
// namespace exposing thin wrappers over the standard library. Its exact
// contents are not load-bearing for any generated program's semantics,
// only its shape (one inline wrapper per submodule named in the source
// language's standard library).
const prelude = `// Generated by magc. Do not edit.
#include <iostream>
#include <sstream>
#include <string>
#include <vector>
#include <optional>
#include <functional>
#include <fstream>
#include <chrono>
#include <cstdlib>
#include <cmath>
#include <random>

template <typename T>
std::string to_string(const T& v) {
    std::ostringstream oss;
    oss << v;
    return oss.str();
}

inline std::string to_string(const std::string& v) { return v; }

namespace Std {
inline void println(const std::string& s) { std::cout << s << "\n"; }
inline void print(const std::string& s) { std::cout << s; }
namespace Parse {
    inline std::optional<int> parseInt(const std::string& s) {
        try { return std::stoi(s); } catch (...) { return std::nullopt; }
    }
    inline std::optional<double> parseFloat(const std::string& s) {
        try { return std::stod(s); } catch (...) { return std::nullopt; }
    }
}
namespace Math {
    inline double sqrt(double x) { return std::sqrt(x); }
    inline double abs(double x) { return std::fabs(x); }
}
namespace String {
    inline int length(const std::string& s) { return static_cast<int>(s.size()); }
}
namespace Array {
    template <typename T>
    int length(const std::vector<T>& v) { return static_cast<int>(v.size()); }
}
namespace File {
    inline std::optional<std::string> read(const std::string& path) {
        std::ifstream f(path);
        if (!f) return std::nullopt;
        std::ostringstream ss;
        ss << f.rdbuf();
        return ss.str();
    }
}
namespace Time {
    inline long long nowMillis() {
        using namespace std::chrono;
        return duration_cast<milliseconds>(system_clock::now().time_since_epoch()).count();
    }
}
namespace Random {
    inline int nextInt(int lo, int hi) {
        static std::mt19937 rng(std::random_device{}());
        std::uniform_int_distribution<int> dist(lo, hi);
        return dist(rng);
    }
}
namespace System {
    inline void exit(int code) { std::exit(code); }
}
} // namespace Std
`
