package apperr

import (
	"fmt"
	"runtime"
	"strings"
)

const maxStackDepth = 32

// callers records the program counters above the constructor. Formatting is
// deferred to ToLogFormat so building an Error stays cheap.
func callers(skip int) []uintptr {
	pc := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip, pc)
	return pc[:n]
}

func formatStack(pc []uintptr) []string {
	if len(pc) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc)
	out := make([]string, 0, len(pc))
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			out = append(out, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}
	return out
}
