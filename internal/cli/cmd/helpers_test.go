package cmd

import (
	"bytes"
	"sync"

	"github.com/bnema/overpane/internal/cli"
)

func cliBuildInfo(version string) cli.BuildInfo {
	return cli.BuildInfo{Version: version}
}

// safeBuffer is a bytes.Buffer guarded for concurrent writer and reader.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
