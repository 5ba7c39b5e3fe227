package therror

import "runtime"

// maxStackDepth bounds the number of frames captured at construction.
const maxStackDepth = 64

// captureStack records the calling goroutine's stack, resolved to frames.
// skip counts the stack frames to drop above the caller of captureStack:
// with skip 0 the first recorded frame is the caller's caller.
func captureStack(skip int) []runtime.Frame {
	pc := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make([]runtime.Frame, 0, n)
	for {
		f, more := frames.Next()
		out = append(out, f)
		if !more {
			break
		}
	}
	return out
}
