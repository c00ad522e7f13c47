package safego

import (
	"go.uber.org/zap"
)

// Go launches a goroutine with panic recovery. A panicking goroutine logs
// the panic value with a stack trace and exits instead of taking the
// process down.
//
// Usage:
//
//	safego.Go(logger, "telegram-poller", func() {
//	    // work that might panic
//	})
func Go(logger *zap.Logger, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Goroutine panicked",
					zap.String("goroutine", name),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
			}
		}()
		fn()
	}()
}
