package foodscout

import (
	"fmt"
	"runtime"

	"github.com/davecgh/go-spew/spew"
)

// Dump prints values with their call site; handy when poking at the
// open-schema product records during development.
func Dump(v ...any) {
	_, file, line, _ := runtime.Caller(1)
	args := append([]any{fmt.Sprintf("%s:%d:", file, line)}, v...)
	spew.Dump(args...)
}
