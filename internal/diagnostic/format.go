package diagnostic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// maxLineDistance bounds how close two labels in the same file must be
// to belong to the same printed group.
const maxLineDistance = 3

func (e *Engine) formatEntry(entry Entry) string {
	var b strings.Builder
	b.WriteString(formatHeader(entry.Header))
	b.WriteString(e.formatLabels(entry.Labels))
	return b.String()
}

// formatHeader renders "<severity>: [<code>] - <key>\n".
func formatHeader(h Header) string {
	return fmt.Sprintf("%s: [%s] - %s\n", h.Severity, Code(h.ID, h.Severity), h.ID)
}

type labelGroup struct {
	fileID FileID
	labels []Label
}

func (e *Engine) formatLabels(labels []Label) string {
	if len(labels) == 0 {
		return ""
	}
	sorted := append([]Label(nil), labels...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.FileID != b.FileID {
			return a.FileID < b.FileID
		}
		if a.Range.Start.Line != b.Range.Start.Line {
			return a.Range.Start.Line < b.Range.Start.Line
		}
		return a.Range.Start.Column < b.Range.Start.Column
	})

	groups := groupLabels(sorted)
	width := lineNumberWidth(sorted)

	var b strings.Builder
	for gi, g := range groups {
		if gi > 0 && groups[gi-1].fileID == g.fileID {
			b.WriteString(wavySeparator())
		}
		b.WriteString(e.formatGroup(g, width))
	}
	return b.String()
}

func groupLabels(sorted []Label) []labelGroup {
	var groups []labelGroup
	for _, l := range sorted {
		if n := len(groups); n > 0 {
			last := &groups[n-1]
			lastLabel := last.labels[len(last.labels)-1]
			if last.fileID == l.FileID && lineDistance(lastLabel, l) <= maxLineDistance {
				last.labels = append(last.labels, l)
				continue
			}
		}
		groups = append(groups, labelGroup{fileID: l.FileID, labels: []Label{l}})
	}
	return groups
}

func lineDistance(a, b Label) uint32 {
	if a.Range.Start.Line > b.Range.Start.Line {
		return a.Range.Start.Line - b.Range.Start.Line
	}
	return b.Range.Start.Line - a.Range.Start.Line
}

func lineNumberWidth(labels []Label) int {
	maxLine := uint32(0)
	for _, l := range labels {
		if l.Range.Start.Line > maxLine {
			maxLine = l.Range.Start.Line
		}
	}
	return len(strconv.Itoa(int(maxLine)))
}

func wavySeparator() string {
	return strings.Repeat("~", 60) + "\n"
}

func (e *Engine) formatGroup(g labelGroup, width int) string {
	var b strings.Builder
	first := g.labels[0]
	name, _ := e.files.Name(g.fileID)
	pad := strings.Repeat(" ", width)
	b.WriteString(fmt.Sprintf("%s--> %s:%d:%d\n", pad, name, first.Range.Start.Line, first.Range.Start.Column))
	b.WriteString(fmt.Sprintf("%s |\n", pad))

	prevLine := uint32(0)
	for i, l := range g.labels {
		if i > 0 {
			for ln := prevLine + 1; ln < l.Range.Start.Line; ln++ {
				b.WriteString(e.formatContextLine(g.fileID, ln, width))
			}
		}
		b.WriteString(e.formatLabelBody(g.fileID, l, width))
		prevLine = l.Range.Start.Line
	}
	return b.String()
}

func (e *Engine) formatContextLine(fileID FileID, lineNo uint32, width int) string {
	src, err := e.files.Line(fileID, int(lineNo))
	if err != nil {
		return ""
	}
	numStr := fmt.Sprintf("%*d", width, lineNo)
	pad := strings.Repeat(" ", width)
	return fmt.Sprintf("%s | %s\n%s |\n", numStr, src, pad)
}

func (e *Engine) formatLabelBody(fileID FileID, l Label, width int) string {
	var b strings.Builder
	lineBytes, _ := e.files.Line(fileID, int(l.Range.Start.Line))
	line := []rune(string(lineBytes))

	numStr := fmt.Sprintf("%*d", width, l.Range.Start.Line)
	pad := strings.Repeat(" ", width)
	b.WriteString(fmt.Sprintf("%s | %s\n", numStr, string(line)))

	startIdx := int(l.Range.Start.Column) - 1
	if startIdx < 0 {
		startIdx = 0
	}
	if startIdx > len(line) {
		startIdx = len(line)
	}
	length := int(l.Range.Length)
	if length < 1 {
		length = 1
	}
	endIdx := startIdx + length
	if endIdx > len(line) {
		endIdx = len(line)
	}
	markerLen := endIdx - startIdx
	if markerLen < 1 {
		markerLen = 1
	}

	markerChar := markerChar(l.MarkerType)
	msg := ""
	if e.translator != nil {
		msg = e.translator.TranslateFmt(l.MessageTrKey, argsSlice(l.Args)...)
	}
	b.WriteString(fmt.Sprintf("%s | %s%s %s\n", pad, strings.Repeat(" ", startIdx), strings.Repeat(markerChar, markerLen), msg))
	b.WriteString(fmt.Sprintf("%s |\n", pad))

	for _, a := range l.Annotations {
		amsg := ""
		if e.translator != nil {
			amsg = e.translator.TranslateFmt(a.MessageTrKey, argsSlice(a.Args)...)
		}
		b.WriteString(fmt.Sprintf("%s = %s: %s\n", pad, a.Severity, amsg))
	}
	return b.String()
}

func markerChar(t LabelMarkerType) string {
	switch t {
	case MarkerEmphasis:
		return "~"
	default:
		return "^"
	}
}

func argsSlice(fa FormatArgs) []string {
	out := make([]string, fa.Count())
	for i := range out {
		out[i] = fa.At(i)
	}
	return out
}
