// Package core holds process-wide helpers shared by every subsystem
package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Finisher restores the terminal on crash
type Finisher interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finisher
	crashExit     = os.Exit
)

// SetCrashTerminal registers the screen to restore before printing a crash report
// Pass nil to unregister after normal shutdown
func SetCrashTerminal(f Finisher) {
	crashMu.Lock()
	crashTerminal = f
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	term := crashTerminal
	crashTerminal = nil
	crashMu.Unlock()

	if term != nil {
		term.Fini()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
