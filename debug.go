package parsekit

import "github.com/alecthomas/repr"

// Dump renders v as a Go-syntax-like representation, for use in debug
// logging and test failure messages where %v's output is too terse to
// tell two structurally-similar values apart.
func Dump(v interface{}) string {
	return repr.String(v)
}
