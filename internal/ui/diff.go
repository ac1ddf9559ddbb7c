package ui

import (
	"fmt"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// UnifiedDiff returns a unified diff between the original and rewritten
// content of a file, with added and removed lines colorized when color
// output is enabled.
func UnifiedDiff(path, before, after string) string {
	edits := myers.ComputeEdits(span.URIFromPath(path), before, after)
	unified := fmt.Sprint(gotextdiff.ToUnified(path, path+" (rewritten)", before, edits))
	if noColor() {
		return unified
	}
	return colorizeDiff(unified)
}

func colorizeDiff(unified string) string {
	lines := strings.Split(unified, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = Muted.Sprint(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = Info.Sprint(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = Success.Sprint(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = Error.Sprint(line)
		}
	}
	return strings.Join(lines, "\n")
}
