package ports

// Logger defines the interface for logging.
//
// Debug is the secondary diagnostic channel; it is silent unless debug output
// has been enabled.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
