// Package logging sets up the std log output shared by the commands.
package logging

import (
	"io"
	"log"
	"os"

	"github.com/natefinch/lumberjack"
)

// Flags used by every logger built here.
const Flags = log.Ldate | log.Ltime | log.Lshortfile

// Rotating returns a size-rotated, compressed log file writer.
func Rotating(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename: path,
		MaxSize:  10,
		Compress: true,
	}
}

// Setup points the standard logger at stdout plus the rotated file and
// returns a prefixed logger sharing the same output.
func Setup(path, prefix string) *log.Logger {
	w := writer(os.Stdout, path)
	log.SetOutput(w)
	log.SetFlags(Flags)
	return log.New(w, prefix, Flags)
}

func writer(out io.Writer, path string) io.Writer {
	if path == "" {
		return out
	}
	return io.MultiWriter(Rotating(path), out)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
