// Package spinning provides a spinning indicator with a progress message, to use while the
// program is busy, e.g. replaying matches. It also handles interruptions gracefully.
package spinning

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"k8s.io/klog/v2"
)

var (
	ThemeAscii = []rune(`|/-\`)
	ThemeStar  = []rune("✦✧★☆")
	ThemeMoon  = []rune("🌑🌒🌓🌔🌕🌖🌗🌘")

	// DefaultTheme used by New.
	DefaultTheme = ThemeAscii

	// Interval between frames.
	Interval = 250 * time.Millisecond
)

// SafeInterrupt captures SigInt (Ctrl+C) and SigTerm and calls onInterrupt.
// If the program hasn't exited after gracePeriod, it resets the terminal and exits.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		fmt.Println()
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}
		time.Sleep(gracePeriod)
		Reset(os.Stdout)
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[?25h\033[39;49;0m\n")
}

// Spinning displays a spinning symbol followed by a progress message, on a separate goroutine.
// Call Done to stop it.
type Spinning struct {
	out    io.Writer
	theme  []rune
	wg     sync.WaitGroup
	cancel func()

	mu       sync.Mutex
	message  string
	lastLen  int
	frameIdx int
}

// New starts a spinner writing to stdout.
func New(ctx context.Context) *Spinning {
	return NewWithWriter(ctx, os.Stdout, DefaultTheme)
}

// NewWithWriter starts a spinner writing to out with the given theme.
func NewWithWriter(ctx context.Context, out io.Writer, theme []rune) *Spinning {
	s := &Spinning{out: out, theme: theme}
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(Interval)
		defer ticker.Stop()
		_, _ = fmt.Fprint(s.out, "\033[?25l") // Hide cursor.
		for {
			s.draw()
			select {
			case <-ctx.Done():
				s.clear()
				_, _ = fmt.Fprint(s.out, "\033[?25h")
				return
			case <-ticker.C:
			}
		}
	}()
	return s
}

// SetMessage changes the progress message shown after the symbol.
func (s *Spinning) SetMessage(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = fmt.Sprintf(format, args...)
}

func (s *Spinning) draw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := fmt.Sprintf("%c %s", s.theme[s.frameIdx], s.message)
	s.frameIdx = (s.frameIdx + 1) % len(s.theme)
	padding := max(s.lastLen-len([]rune(line)), 0)
	_, _ = fmt.Fprintf(s.out, "\r%s%*s", line, padding, "")
	s.lastLen = len([]rune(line))
}

func (s *Spinning) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.out, "\r%*s\r", s.lastLen, "")
	s.lastLen = 0
}

// Done stops the spinner and erases it. It is safe to call more than once.
func (s *Spinning) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}
