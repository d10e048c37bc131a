package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	restoreMu sync.Mutex
	restoreFn func()
)

// SetTerminalRestore registers the function that returns the terminal to cooked mode
// Called once by main after the screen is initialized
func SetTerminalRestore(fn func()) {
	restoreMu.Lock()
	restoreFn = fn
	restoreMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	restoreMu.Lock()
	fn := restoreFn
	restoreFn = nil
	restoreMu.Unlock()
	if fn != nil {
		fn()
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
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
