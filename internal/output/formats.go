// internal/output/formats.go
package output

import "fmt"

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists every supported --format value.
var Formats = []string{FormatText, FormatJSON, FormatJSONL}

// DefaultDelimiter separates fields of a text row.
const DefaultDelimiter = ';'

// ParseDelimiter accepts the delimiter itself or its name.
func ParseDelimiter(s string) (byte, error) {
	switch s {
	case ";", "semicolon":
		return ';', nil
	case ",", "comma":
		return ',', nil
	case "\t", `\t`, "tab":
		return '\t', nil
	}
	return 0, fmt.Errorf("unsupported delimiter %q (want ';', ',' or tab)", s)
}

// DelimiterName is the inverse of ParseDelimiter, for logs and summaries.
func DelimiterName(d byte) string {
	if d == '\t' {
		return "tab"
	}
	return string(d)
}
