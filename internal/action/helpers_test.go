package action

import (
	"bytes"
)

// newTestEnv returns an Env backed by a map instead of the process environment
func newTestEnv(vars map[string]string) (*Env, *bytes.Buffer) {
	var stdout bytes.Buffer
	env := &Env{
		Getenv: func(key string) string { return vars[key] },
		Stdout: &stdout,
	}
	return env, &stdout
}
