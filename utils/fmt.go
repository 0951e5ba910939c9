package utils

import "fmt"

// AppendfNoEscape appends the formatted text to buf; used by the logger on
// every line it writes. It is a plain fmt.Appendf wrapper and does nothing
// to keep the format arguments off the heap.
func AppendfNoEscape(buf []byte, format string, v ...any) []byte {
	return fmt.Appendf(buf, format, v...)
}

func SprintfNoEscape(format string, v ...any) string {
	return fmt.Sprintf(format, v...)
}
