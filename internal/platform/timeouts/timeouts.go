// Package timeouts defines the HTTP timeouts shared by the toolbox server.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Write bounds a full response, QR rendering included.
const Write = 15 * time.Second

// Idle closes keep-alive connections that stay quiet this long.
const Idle = 60 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryShutdown caps the time spent flushing spans on exit.
const TelemetryShutdown = 5 * time.Second
