package main

import (
	"log"
	"os"
	"runtime"

	"github.com/pkg/errors"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	err := NewApp(parseArgs()).Run()
	if err != nil {
		log.Println(err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a fatal error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if _, ok := errors.Cause(err).(*StartupError); ok {
		return -1
	}
	return 1
}
