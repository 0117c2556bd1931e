// internal/output/text.go
package output

import (
	"io"
	"strconv"

	"microtpct/internal/engine"
)

// Header field names, in column order.
const (
	FieldQuery    = "query_header"
	FieldTarget   = "target_header"
	FieldPosition = "position"
)

// HeaderRow is the header line for delim, without a trailing newline.
func HeaderRow(delim byte) string {
	d := string(delim)
	return FieldQuery + d + FieldTarget + d + FieldPosition
}

// AppendRow appends one delimited row and a newline to dst. A sentinel has
// empty target and position fields.
func AppendRow(dst []byte, r engine.Result, delim byte) []byte {
	dst = append(dst, r.QueryID...)
	dst = append(dst, delim)
	if r.Matched {
		dst = append(dst, r.TargetID...)
		dst = append(dst, delim)
		dst = strconv.AppendInt(dst, int64(r.Position), 10)
	} else {
		dst = append(dst, delim)
	}
	return append(dst, '\n')
}

// AppendQuery appends every row of qr: its hits, or one sentinel.
func AppendQuery(dst []byte, qr engine.QueryResult, delim byte) []byte {
	for _, r := range qr.Rows() {
		dst = AppendRow(dst, r, delim)
	}
	return dst
}

// StreamText writes the header row (if requested) and then the rows of every
// QueryResult received on in. Each query's rows are written in one call so a
// query is never cut in half.
func StreamText(w io.Writer, in <-chan engine.QueryResult, delim byte, header bool) error {
	if header {
		if _, err := io.WriteString(w, HeaderRow(delim)+"\n"); err != nil {
			return err
		}
	}
	var buf []byte
	for qr := range in {
		buf = AppendQuery(buf[:0], qr, delim)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
