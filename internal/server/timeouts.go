package server

import "time"

const (
	// Requests are GETs over pre-resolved data; reads stay short while writes
	// get headroom for full-season bracket payloads.
	readTimeout  = 5 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 120 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
