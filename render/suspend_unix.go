//go:build unix

package render

import (
	"os"
	"os/signal"
	"syscall"
)

// notifySuspend routes SIGTSTP to ch; the returned func restores default handling
func notifySuspend(ch chan<- os.Signal) func() {
	signal.Notify(ch, syscall.SIGTSTP)
	return func() { signal.Stop(ch) }
}

// stopSelf parks the process the way the default SIGTSTP action would
func stopSelf() error {
	return syscall.Kill(syscall.Getpid(), syscall.SIGSTOP)
}
