package rewrite

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/skalene/logshift/internal/configs"
)

// Options tunes how replacement calls are rendered. Zero values are not
// usable; build from DefaultOptions or FromConfig.
type Options struct {
	// DefaultCategory is the symbol used when a print call carries no
	// bracketed tag.
	DefaultCategory string

	// Level is the severity level every rewritten call receives.
	Level string

	// Categories maps lower-cased bracket tags to replacement symbols,
	// overriding the plain lower-cased tag.
	Categories map[string]string
}

// DefaultOptions returns the stock rendering options.
func DefaultOptions() Options {
	return Options{
		DefaultCategory: configs.DefaultCategory,
		Level:           configs.DefaultLevel,
		Categories:      map[string]string{},
	}
}

// FromConfig builds rendering options from a loaded project config.
func FromConfig(config *configs.ProjectConfig) Options {
	return Options{
		DefaultCategory: config.Rewrite.DefaultCategory,
		Level:           config.Rewrite.Level,
		Categories:      config.Rewrite.Categories,
	}
}

// categorySymbol lowers a bracket tag into a category symbol, applying
// any configured override.
func (o Options) categorySymbol(tag string) string {
	symbol := strings.ToLower(tag)
	if override, ok := o.Categories[symbol]; ok {
		return override
	}
	return symbol
}

// Rule is a single regex substitution over file content.
type Rule struct {
	// Name identifies the rule in debug output.
	Name string

	pattern *regexp.Regexp
	replace func(submatches []string) string
}

// apply performs the substitution over the entire content once.
func (r Rule) apply(content string) string {
	return r.pattern.ReplaceAllStringFunc(content, func(match string) string {
		return r.replace(r.pattern.FindStringSubmatch(match))
	})
}

// Rules returns the ordered substitution rules. Order is a behavioral
// contract: each rule operates on the previous rule's output, and the
// tagged form must be consumed before the plain form gets a chance to
// match it.
func Rules(opts Options) []Rule {
	return []Rule{
		{
			// print("[Category] message")
			Name:    "tagged",
			pattern: regexp.MustCompile(`print\("\[([^\]]+)\]\s*([^"]+)"\)`),
			replace: func(m []string) string {
				return fmt.Sprintf(`Logger.shared.log("%s", category: .%s, level: .%s)`,
					m[2], opts.categorySymbol(m[1]), opts.Level)
			},
		},
		{
			// print("message")
			Name:    "plain",
			pattern: regexp.MustCompile(`print\("([^"]+)"\)`),
			replace: func(m []string) string {
				return fmt.Sprintf(`Logger.shared.log("%s", category: .%s, level: .%s)`,
					m[1], opts.DefaultCategory, opts.Level)
			},
		},
		{
			// print("message", expression)
			Name:    "interpolated",
			pattern: regexp.MustCompile(`print\("([^"]+)",\s*([^)]+)\)`),
			replace: func(m []string) string {
				return fmt.Sprintf(`Logger.shared.log("%s: %s", category: .%s, level: .%s)`,
					m[1], m[2], opts.DefaultCategory, opts.Level)
			},
		},
	}
}
