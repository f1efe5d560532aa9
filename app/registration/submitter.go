package registration

import "go.uber.org/zap"

const redacted = "[redacted]"

// LogSubmitter returns a collaborator that logs the accepted record.
// Passwords never reach the log.
func LogSubmitter(logger *zap.Logger) SubmitFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(values FormValues) {
		logger.Info("registration submitted",
			zap.String("name", values.Name),
			zap.String("email", values.Email),
			zap.String("password", redacted),
		)
	}
}

// Chain runs each collaborator in order.
func Chain(fns ...SubmitFunc) SubmitFunc {
	return func(values FormValues) {
		for _, fn := range fns {
			if fn != nil {
				fn(values)
			}
		}
	}
}
