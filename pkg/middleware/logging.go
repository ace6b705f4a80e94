package middleware

import "go.uber.org/zap"

// Logging creates middleware that logs each check. Passing checks are
// logged at debug level, failures at warn level with the message.
func Logging(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return MiddlewareFunc(func(check *Check, next func() Result) Result {
		res := next()

		fields := []zap.Field{
			zap.String("check", check.Name),
			zap.String("label", check.Label),
			zap.Duration("duration", res.Duration),
		}
		if res.Failed {
			logger.Warn("assertion failed", append(fields, zap.String("message", res.Message))...)
		} else {
			logger.Debug("assertion passed", fields...)
		}
		return res
	})
}
