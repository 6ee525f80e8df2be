package server

import "time"

// Route paths
const (
	PathHealthz = "/healthz"
	PathReadyz  = "/readyz"
	PathMetrics = "/metrics"
	PathStats   = "/stats"
)

// ReadHeaderTimeout bounds slow-header clients on the ops port
const ReadHeaderTimeout = 5 * time.Second

// ReadyzTimeout bounds the readiness database ping
const ReadyzTimeout = 2 * time.Second
