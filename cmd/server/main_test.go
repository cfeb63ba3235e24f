package main

import (
	"testing"
)

// main must return immediately under SKIP_SERVER_RUN so the binary's package
// can be part of the normal test run without binding ports.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}
