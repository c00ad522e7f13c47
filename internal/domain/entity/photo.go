package entity

import (
	"time"
)

// Photo is an indexed channel photo. MessageID is the channel message
// identifier and never changes once a photo is first ingested; every other
// field is replaced in place when the same message is ingested again
// (for example after an edited channel post).
type Photo struct {
	// MessageID is unique within the source channel and monotonically
	// increasing with posting order.
	MessageID int64

	// FileID is the Telegram media token. It is opaque to this service and
	// only ever handed back to the transport.
	FileID string

	// Caption is the original post caption, possibly empty.
	Caption string

	// Tags holds the space-joined hashtag values derived from Caption.
	// It is denormalized so search never has to re-parse captions.
	Tags string

	// CreatedAt is the post timestamp normalized to UTC. Nil when the
	// source event carried no usable timestamp.
	CreatedAt *time.Time
}
