package mesh

import (
	"time"

	"github.com/aozyumenko/go-mesh/logger"
)

// Engine defaults. Query timeouts and pacing intervals are caller-tunable per
// call; these apply when a call supplies nothing.
const (
	// DefaultTimeout bounds a single or bulk query awaiting its responses.
	DefaultTimeout = 5 * time.Second

	// DefaultSendInterval is the minimum spacing between consecutive sends of
	// a bulk query or an unacknowledged repeat, respecting the shared-medium
	// duty cycle.
	DefaultSendInterval = 75 * time.Millisecond

	// DefaultRetransmissions is the number of times an unacknowledged set is
	// transmitted.
	DefaultRetransmissions = 6

	// DefaultUnackDelay is the initial "remaining delay" carried by
	// unacknowledged set messages that have a delay field.
	DefaultUnackDelay = 500 * time.Millisecond

	defaultInboundQueueSize = 64
)

type elementConfig struct {
	logger          logger.Logger
	timeout         time.Duration
	sendInterval    time.Duration
	retransmissions int
	unackDelay      time.Duration
	queueSize       int
}

func defaultElementConfig() elementConfig {
	return elementConfig{
		logger:          logger.GetLogger(),
		timeout:         DefaultTimeout,
		sendInterval:    DefaultSendInterval,
		retransmissions: DefaultRetransmissions,
		unackDelay:      DefaultUnackDelay,
		queueSize:       defaultInboundQueueSize,
	}
}

// Option configures an Element at construction time.
type Option func(*elementConfig)

// WithLogger sets the element's logger.
func WithLogger(l logger.Logger) Option {
	return func(cfg *elementConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithDefaultTimeout sets the default query timeout.
func WithDefaultTimeout(d time.Duration) Option {
	return func(cfg *elementConfig) {
		if d > 0 {
			cfg.timeout = d
		}
	}
}

// WithDefaultSendInterval sets the default send-pacing interval.
func WithDefaultSendInterval(d time.Duration) Option {
	return func(cfg *elementConfig) {
		if d > 0 {
			cfg.sendInterval = d
		}
	}
}

// WithDefaultRetransmissions sets the default unacknowledged repeat count.
func WithDefaultRetransmissions(n int) Option {
	return func(cfg *elementConfig) {
		if n > 0 {
			cfg.retransmissions = n
		}
	}
}

// WithDefaultUnackDelay sets the default initial remaining delay of
// unacknowledged sets.
func WithDefaultUnackDelay(d time.Duration) Option {
	return func(cfg *elementConfig) {
		if d >= 0 {
			cfg.unackDelay = d
		}
	}
}

// WithInboundQueueSize sets the capacity of the inbound dispatch queue.
func WithInboundQueueSize(size int) Option {
	return func(cfg *elementConfig) {
		if size > 0 {
			cfg.queueSize = size
		}
	}
}

type callOptions struct {
	timeout         time.Duration
	sendInterval    time.Duration
	retransmissions int
	delay           time.Duration
	hasDelay        bool
	transitionTime  float64
	hasTransition   bool
}

// CallOption tunes one query, bulk query or unacknowledged repeat.
type CallOption func(*callOptions)

// WithTimeout bounds the call. There is no implicit floor: the caller owns
// the trade-off between node count and deadline.
func WithTimeout(d time.Duration) CallOption {
	return func(co *callOptions) {
		if d > 0 {
			co.timeout = d
		}
	}
}

// WithSendInterval sets the call's minimum spacing between sends.
func WithSendInterval(d time.Duration) CallOption {
	return func(co *callOptions) {
		if d > 0 {
			co.sendInterval = d
		}
	}
}

// WithRetransmissions sets how many times an unacknowledged set is sent.
func WithRetransmissions(n int) CallOption {
	return func(co *callOptions) {
		if n > 0 {
			co.retransmissions = n
		}
	}
}

// WithDelay sets the initial remaining delay of an unacknowledged set. The
// transmitted delay decreases by the send interval on every retransmission
// and never goes below zero.
func WithDelay(d time.Duration) CallOption {
	return func(co *callOptions) {
		if d >= 0 {
			co.delay = d
			co.hasDelay = true
		}
	}
}

// WithTransitionTime attaches a transition time, in seconds, to a set message
// whose schema carries the optional transition tail.
func WithTransitionTime(seconds float64) CallOption {
	return func(co *callOptions) {
		if seconds >= 0 {
			co.transitionTime = seconds
			co.hasTransition = true
		}
	}
}
