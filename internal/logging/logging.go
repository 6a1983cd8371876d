package logging

import (
	"log"
	"os"
)

// New creates the process logger, writing to stderr so that command output
// stays clean on stdout.
func New() *log.Logger {
	return log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)
}
