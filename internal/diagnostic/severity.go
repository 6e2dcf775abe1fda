// Package diagnostic implements the structured diagnostic data model
// and the rendering engine described by spec.md §3/§4.7, grounded on
// original_source/src/frontend/diagnostic/**.
package diagnostic

// Severity classifies a diagnostic entry or annotation.
type Severity uint8

const (
	SeverityUnknown Severity = iota
	SeverityFatal
	SeverityError
	SeverityWarn
	SeverityInfo
	SeverityDebug
	SeverityTrace
)

var severityWords = map[Severity]string{
	SeverityUnknown: "unknown", SeverityFatal: "fatal", SeverityError: "error",
	SeverityWarn: "warn", SeverityInfo: "info", SeverityDebug: "debug", SeverityTrace: "trace",
}

// prefixLetters indexes by Severity to the single letter used in a
// diagnostic's 6-character code.
var prefixLetters = map[Severity]byte{
	SeverityUnknown: 'u', SeverityFatal: 'f', SeverityError: 'e',
	SeverityWarn: 'w', SeverityInfo: 'i', SeverityDebug: 'd', SeverityTrace: 't',
}

// String returns the severity's lowercase word form, used verbatim in
// the rendered header line.
func (s Severity) String() string {
	if w, ok := severityWords[s]; ok {
		return w
	}
	return "unknown"
}
