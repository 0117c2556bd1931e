// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"microtpct/internal/jsonutil"
)

// 64 KiB buffered writers are pooled across JSONL writers.
// The encoder is tied to its io.Writer and is created per goroutine.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start spins up a JSONL encoder goroutine for values of type T.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
//
// The first encode error is sent on the returned channel right away and the
// goroutine then drains in without writing. Otherwise the channel gets the
// final flush result once in is closed.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		// Rebind to the actual output while keeping the pooled buffer.
		bw.Reset(out)
		// Always put back to pool and drop references to 'out'.
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := jsonutil.NewLineEncoder(bw)

		for v := range in {
			if err := encode(enc, v); err != nil {
				done <- err
				for range in {
					// keep draining so senders never block
				}
				return
			}
		}
		done <- bw.Flush()
	}()

	return in, done
}
