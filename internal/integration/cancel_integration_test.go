package integration

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"microtpct/internal/app"
)

func TestCtrlC_MidScan_Exit130(t *testing.T) {
	// Big target and many queries so matching is underway when canceled.
	dir := t.TempDir()
	tg := filepath.Join(dir, "big.fa")
	if err := os.WriteFile(tg, []byte(">prot\n"+strings.Repeat("ACDEFGHIKL", 400_000)+"\n"), 0o644); err != nil {
		t.Fatalf("write targets: %v", err)
	}
	var sb strings.Builder
	for i := 0; i < 5000; i++ {
		sb.WriteString(">q\nWWWWW\n")
	}
	q := filepath.Join(dir, "q.fa")
	if err := os.WriteFile(q, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("write queries: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	// Cancel shortly after start.
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	code := app.RunContext(ctx, []string{"match", "-q", q, "-t", tg, "--batch-size", "1", "--threads", "2"}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
