package common

import "go.uber.org/zap"

var log = zap.NewNop()

// SetLogger installs the process-wide logger. Called once from main before
// any service work starts.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

func Logger() *zap.Logger {
	return log
}
