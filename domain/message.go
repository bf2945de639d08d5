package domain

// Message represents an immutable feed entry. The ID is unique and
// strictly increasing within its owner's feed only; timestamps are
// epoch milliseconds.
type Message struct {
	ID        uint64       `json:"id"`
	Owner     UserIdentity `json:"owner"`
	Text      string       `json:"text"`
	Timestamp int64        `json:"timestamp"`
}

// Newer orders messages newest-first: timestamp descending, ties broken
// by id descending so merged feeds are deterministic.
func (m Message) Newer(other Message) bool {
	if m.Timestamp != other.Timestamp {
		return m.Timestamp > other.Timestamp
	}
	return m.ID > other.ID
}
