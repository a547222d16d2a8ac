package bus

import "time"

// Event is a domain event published on the bus. Kind doubles as the routing
// key: subscribers receive every event whose Kind starts with their namespace.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// Event kinds published by the sync engine and its collaborators.
const (
	KindTimelineChanged = "timeline.changed"
	KindMessageSendAck  = "message.send_ack"
	KindMessageFailed   = "message.send_failed"
	KindMessageRecover  = "message.recovered"
	KindStatusChanged   = "session.status_changed"
	KindFriendRequests  = "friend.requests_changed"
)
