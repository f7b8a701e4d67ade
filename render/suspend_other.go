//go:build !unix

package render

import "os"

func notifySuspend(chan<- os.Signal) func() { return func() {} }

func stopSelf() error { return nil }
