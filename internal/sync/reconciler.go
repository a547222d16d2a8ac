package sync

import (
	stdsync "sync"

	"github.com/matheus3301/chatsync/internal/model"
)

// Entry is one row of a chat timeline: either a message the store has
// confirmed or an optimistic one still waiting for its fan-out.
type Entry interface {
	Msg() model.Message
	isEntry()
}

// Confirmed is a message known to be in the message log.
type Confirmed struct {
	Message model.Message
	// Pending is set while an edit or delete of this message is in flight.
	Pending bool
}

// Pending is an optimistic send. Message.ID holds the temporary id until
// the fan-out acknowledges; MessageID is the id allocated for the write.
type Pending struct {
	TempID    string
	MessageID string
	Message   model.Message
	Uploading bool
}

func (c Confirmed) Msg() model.Message { return c.Message }
func (p Pending) Msg() model.Message   { return p.Message }
func (Confirmed) isEntry()             {}
func (Pending) isEntry()               {}

// Timeline is the locally held message sequence of one chat, newest first.
// It layers optimistic sends, edits and deletes over the last snapshot of
// the message log.
type Timeline struct {
	mu      stdsync.Mutex
	chatID  string
	version uint64

	confirmed []model.Message
	// acked keeps acknowledged sends visible until a snapshot includes them.
	acked   map[string]model.Message
	pending []*Pending
	edits   map[string]string
	deletes map[string]bool
	failed  bool
}

func newTimeline(chatID string) *Timeline {
	return &Timeline{
		chatID:  chatID,
		acked:   map[string]model.Message{},
		edits:   map[string]string{},
		deletes: map[string]bool{},
	}
}

func (t *Timeline) ChatID() string { return t.chatID }

// Version increases on every change.
func (t *Timeline) Version() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.version
}

// Failed reports whether the last subscription attempt failed.
func (t *Timeline) Failed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.failed
}

// Entries returns the current view, newest first.
func (t *Timeline) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	seen := make(map[string]bool, len(t.confirmed)+len(t.acked))
	var server []model.Message
	for _, m := range t.confirmed {
		seen[m.ID] = true
		server = append(server, m)
	}
	for id, m := range t.acked {
		if !seen[id] {
			seen[id] = true
			server = insertByTime(server, m)
		}
	}

	out := make([]Entry, 0, len(t.pending)+len(server))
	for _, p := range t.pending {
		if seen[p.MessageID] {
			continue
		}
		out = append(out, *p)
	}
	for _, m := range server {
		if t.deletes[m.ID] {
			continue
		}
		c := Confirmed{Message: m}
		if text, ok := t.edits[m.ID]; ok {
			c.Message.Text = text
			c.Message.Edited = true
			c.Pending = true
		}
		out = append(out, c)
	}
	return out
}

// Messages returns the message values of Entries.
func (t *Timeline) Messages() []model.Message {
	entries := t.Entries()
	out := make([]model.Message, len(entries))
	for i, e := range entries {
		out[i] = e.Msg()
	}
	return out
}

// ApplySnapshot replaces the confirmed part with a message log snapshot.
func (t *Timeline) ApplySnapshot(msgs []*model.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.confirmed = t.confirmed[:0]
	for _, m := range msgs {
		t.confirmed = append(t.confirmed, *m)
		delete(t.acked, m.ID)
	}
	t.failed = false
	t.version++
}

// Reset drops everything the store told us. Optimistic entries stay.
func (t *Timeline) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.confirmed = nil
	t.acked = map[string]model.Message{}
	t.failed = true
	t.version++
}

// AddPending prepends an optimistic send.
func (t *Timeline) AddPending(p Pending) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = append([]*Pending{&p}, t.pending...)
	t.version++
}

// MarkUploaded clears the uploading flag and attaches the stored media.
func (t *Timeline) MarkUploaded(tempID string, media *model.Media) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, p := range t.pending {
		if p.TempID == tempID {
			p.Uploading = false
			p.Message.Media = media
			t.version++
			return
		}
	}
}

// Confirm swaps the temporary id of a pending send for the stored id and
// keeps every other field of the local entry. The store-assigned timestamp
// and status are taken from stored.
func (t *Timeline) Confirm(tempID string, stored model.Message) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, p := range t.pending {
		if p.TempID != tempID {
			continue
		}
		t.pending = append(t.pending[:i], t.pending[i+1:]...)
		m := p.Message
		m.ID = stored.ID
		m.Timestamp = stored.Timestamp
		m.Status = stored.Status
		m.Seq = stored.Seq
		if !t.hasConfirmedLocked(m.ID) {
			t.acked[m.ID] = m
		}
		t.version++
		return true
	}
	return false
}

// Discard removes a pending send. The view returns to what it was before
// the send was applied.
func (t *Timeline) Discard(tempID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, p := range t.pending {
		if p.TempID == tempID {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			t.version++
			return true
		}
	}
	return false
}

// BeginEdit overlays new text on a confirmed message.
func (t *Timeline) BeginEdit(msgID, text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.edits[msgID] = text
	t.version++
}

// EndEdit drops the overlay. On success the text is written through to the
// local copies so the view does not flicker before the next snapshot.
func (t *Timeline) EndEdit(msgID string, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	text, had := t.edits[msgID]
	delete(t.edits, msgID)
	if ok && had {
		for i := range t.confirmed {
			if t.confirmed[i].ID == msgID {
				t.confirmed[i].Text = text
				t.confirmed[i].Edited = true
			}
		}
		if m, found := t.acked[msgID]; found {
			m.Text, m.Edited = text, true
			t.acked[msgID] = m
		}
	}
	t.version++
}

// BeginDelete hides a confirmed message.
func (t *Timeline) BeginDelete(msgID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deletes[msgID] = true
	t.version++
}

// EndDelete drops the overlay; on success the local copies go too.
func (t *Timeline) EndDelete(msgID string, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.deletes, msgID)
	if ok {
		for i := range t.confirmed {
			if t.confirmed[i].ID == msgID {
				t.confirmed = append(t.confirmed[:i], t.confirmed[i+1:]...)
				break
			}
		}
		delete(t.acked, msgID)
	}
	t.version++
}

func (t *Timeline) hasConfirmedLocked(id string) bool {
	for _, m := range t.confirmed {
		if m.ID == id {
			return true
		}
	}
	return false
}

// insertByTime keeps msgs ordered newest first, ties by write sequence.
func insertByTime(msgs []model.Message, m model.Message) []model.Message {
	i := 0
	for i < len(msgs) {
		o := msgs[i]
		if o.Timestamp < m.Timestamp || (o.Timestamp == m.Timestamp && o.Seq < m.Seq) {
			break
		}
		i++
	}
	msgs = append(msgs, model.Message{})
	copy(msgs[i+1:], msgs[i:])
	msgs[i] = m
	return msgs
}
