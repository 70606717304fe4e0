// export_test.go exports private constructors for white-box testing.
package host

import "io"

// NewActionsHostWithEnv creates an ActionsHost backed by env instead of the process environment.
func NewActionsHostWithEnv(env map[string]string, stdout io.Writer) *ActionsHost {
	return &ActionsHost{
		getenv: func(key string) string { return env[key] },
		setenv: func(key, value string) error {
			env[key] = value
			return nil
		},
		stdout: stdout,
	}
}
