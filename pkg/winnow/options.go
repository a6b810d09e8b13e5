package winnow

import "time"

type options struct {
	window         time.Duration
	udpHost        string
	udpPort        int
	udpMaxLogs     int
	udpIdleTimeout time.Duration
}

// Option configures a Pipeline.
type Option func(*options)

func defaultOptions() options {
	return options{
		window:         60 * time.Second,
		udpHost:        "0.0.0.0",
		udpPort:        514,
		udpMaxLogs:     1000,
		udpIdleTimeout: 30 * time.Second,
	}
}

// WithWindow sets the aggregation window length. Default: 60s.
func WithWindow(d time.Duration) Option {
	return func(o *options) { o.window = d }
}

// WithUDPAddress sets the bind address for IngestUDP.
// Default: 0.0.0.0:514.
func WithUDPAddress(host string, port int) Option {
	return func(o *options) {
		o.udpHost = host
		o.udpPort = port
	}
}

// WithUDPMaxLogs bounds how many lines IngestUDP accepts before
// returning. Default: 1000.
func WithUDPMaxLogs(n int) Option {
	return func(o *options) { o.udpMaxLogs = n }
}

// WithUDPIdleTimeout sets how long IngestUDP waits without receiving a
// datagram before giving up. 0 disables the timeout. Default: 30s.
func WithUDPIdleTimeout(d time.Duration) Option {
	return func(o *options) { o.udpIdleTimeout = d }
}
