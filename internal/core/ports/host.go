package ports

// Host is the automation environment that supplies the version request and
// consumes the resulting path.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type Host interface {
	// Input returns the named input, or "" when it was not supplied.
	Input(name string) string

	// SetOutput publishes a named output value.
	SetOutput(name, value string) error

	// AddPath prepends dir to the PATH seen by subsequent steps.
	AddPath(dir string) error
}
