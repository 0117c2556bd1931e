// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"microtpct/internal/engine"
	"microtpct/internal/jsonlutil"
	"microtpct/internal/jsonutil"
	"microtpct/internal/output"
)

func init() {
	RegisterMatch(output.FormatJSONL, func(w io.Writer, in <-chan engine.QueryResult, _ Options) error {
		enc := jsonutil.NewLineEncoder(w)
		for qr := range in {
			if err := encodeQuery(enc, qr); err != nil {
				return err
			}
		}
		return nil
	})
}

func encodeQuery(enc *json.Encoder, qr engine.QueryResult) error {
	for _, m := range output.ToAPIMatches(qr) {
		if err := enc.Encode(m); err != nil {
			return err
		}
	}
	return nil
}

// StartMatchJSONLWriter streams every row as one JSON line (v1).
func StartMatchJSONLWriter(out io.Writer, bufSize int) (chan<- engine.QueryResult, <-chan error) {
	return jsonlutil.Start[engine.QueryResult](out, bufSize, encodeQuery)
}
