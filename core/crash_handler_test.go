package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeTerminal struct {
	mu    sync.Mutex
	finis int
}

func (f *fakeTerminal) Fini() {
	f.mu.Lock()
	f.finis++
	f.mu.Unlock()
}

func (f *fakeTerminal) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.finis
}

func stubExit(t *testing.T) <-chan int {
	t.Helper()
	codes := make(chan int, 2)
	prev := crashExit
	crashExit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashExit = prev
		SetCrashTerminal(nil)
	})
	return codes
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	codes := stubExit(t)
	term := &fakeTerminal{}
	SetCrashTerminal(term)

	HandleCrash(nil)

	if term.count() != 0 {
		t.Errorf("terminal finalized on nil recover value")
	}
	select {
	case code := <-codes:
		t.Errorf("unexpected exit(%d)", code)
	default:
	}
}

func TestHandleCrashRestoresTerminalOnce(t *testing.T) {
	codes := stubExit(t)
	term := &fakeTerminal{}
	SetCrashTerminal(term)

	for _, value := range []any{"boom", "again"} {
		HandleCrash(value)
		if code := <-codes; code != 1 {
			t.Errorf("HandleCrash(%v) exit code = %d, want 1", value, code)
		}
	}

	if got := term.count(); got != 1 {
		t.Errorf("Fini called %d times, want 1", got)
	}
}

func TestGoRecoversPanic(t *testing.T) {
	codes := stubExit(t)
	term := &fakeTerminal{}
	SetCrashTerminal(term)

	Go(func() { panic("worker failed") })

	select {
	case code := <-codes:
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
	case <-time.After(time.Second):
		t.Fatal("panic in goroutine was not handled")
	}
	if term.count() != 1 {
		t.Errorf("terminal not restored after goroutine panic")
	}
}

func TestTerminalRestorerWritesResetSequences(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRestorer(&out, -1)
	if r.state != nil {
		t.Fatal("captured state for an invalid fd")
	}

	r.Fini()
	got := out.String()
	for _, seq := range []string{"\x1b[?25h", "\x1b[?1049l", "\x1b[0m", "\x1b[?1004l"} {
		if !strings.Contains(got, seq) {
			t.Errorf("reset output missing %q", seq)
		}
	}
}
