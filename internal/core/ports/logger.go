package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}

// LogFile is the append-only log file kept alongside console logging.
type LogFile interface {
	// Path returns the log file location.
	Path() string
	// Clear removes every line from the log file.
	Clear() error
}
