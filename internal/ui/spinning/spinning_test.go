package spinning

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinning(t *testing.T) {
	Interval = time.Millisecond
	out := &syncBuffer{}
	s := NewWithWriter(context.Background(), out, ThemeAscii)
	s.SetMessage("replayed %d matches", 7)
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "replayed 7 matches")
	}, time.Second, time.Millisecond)
	s.Done()
	s.Done()
	got := out.String()
	assert.Contains(t, got, "\033[?25l")
	assert.Contains(t, got, "\033[?25h")

	var reset bytes.Buffer
	Reset(&reset)
	assert.Contains(t, reset.String(), "\033[?25h")
}
