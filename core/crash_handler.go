package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu   sync.Mutex
	crashFini func()
)

// SetCrashFinalizer registers the screen teardown run before a crash report is printed
// Keeps core independent of the terminal backend
func SetCrashFinalizer(fini func()) {
	crashMu.Lock()
	crashFini = fini
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints the panic value with stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	fini := crashFini
	crashMu.Unlock()
	if fini != nil {
		fini()
	}

	// Use \r\n, the terminal may still be in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
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
