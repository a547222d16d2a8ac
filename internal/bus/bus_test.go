package bus

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("timeline.", 10)
	defer unsub()

	b.Emit(KindTimelineChanged, "a_b")

	select {
	case evt := <-ch:
		if evt.Kind != KindTimelineChanged {
			t.Errorf("got kind %q, want %s", evt.Kind, KindTimelineChanged)
		}
		if evt.Timestamp.IsZero() {
			t.Error("Emit did not stamp the event")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestNamespaceFiltering(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("docstore.coll:chats/a_b/messages|", 10)
	defer unsub()

	b.Publish(Event{Kind: "docstore.coll:chats/a_c/messages|"})
	b.Publish(Event{Kind: "docstore.coll:chats/a_b/messages|"})

	select {
	case evt := <-ch:
		if evt.Kind != "docstore.coll:chats/a_b/messages|" {
			t.Errorf("got kind %q", evt.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	select {
	case evt := <-ch:
		t.Errorf("unexpected event: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("session.", 10)
	unsub()
	unsub()

	b.Publish(Event{Kind: KindStatusChanged})

	select {
	case evt := <-ch:
		t.Errorf("received event after unsubscribe: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
	if n := b.Subscribers(KindStatusChanged); n != 0 {
		t.Errorf("Subscribers = %d, want 0", n)
	}
}

func TestDropOnFullBuffer(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("test.", 1)
	defer unsub()

	b.Publish(Event{Kind: "test.one"})
	b.Publish(Event{Kind: "test.two"})

	evt := <-ch
	if evt.Kind != "test.one" {
		t.Errorf("got %q, want test.one", evt.Kind)
	}
}

func TestNilBus(t *testing.T) {
	var b *Bus
	b.Emit("anything", nil)
	_, unsub := b.Subscribe("x", 1)
	unsub()
	if b.Subscribers("x") != 0 {
		t.Error("nil bus reported subscribers")
	}
}
