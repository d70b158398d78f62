package output

import (
	"strings"

	"github.com/drawplan/drawdown-calculator/internal/domain"
)

// Formatter defines a pluggable renderer for projection results.
// Implementations should be pure (no side effects besides
// deterministic formatting).
type Formatter interface {
	FormatProjection(result *domain.FullSimulationResult) ([]byte, error)
	FormatMonteCarlo(summary *domain.MonteCarloSummary) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table": "console",
	"text":  "console",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if resolved, ok := aliasMap[n]; ok {
		return resolved
	}
	return n
}

// GetFormatterByName fetches a registered formatter, or nil.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}
