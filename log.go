package zoo

import "go.uber.org/zap"

// feedLogger receives diagnostic records about feeding. It never writes to an
// animal's output sink.
var feedLogger = zap.NewNop().Sugar()

// SetLogger installs the logger used by Feed and FeedAll.
// Call this early (e.g., in main) before any animal is fed. A nil logger
// restores the default no-op logger.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	feedLogger = l
}

// Logger returns the logger currently installed with SetLogger.
func Logger() *zap.SugaredLogger {
	return feedLogger
}
