package docstore

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
)

const topicPrefix = "docstore."

func docTopic(path string) string { return topicPrefix + "doc:" + path + "|" }

func collectionTopic(path string) string { return topicPrefix + "coll:" + path + "|" }

// Subscription is a live listener. Stop releases it.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop cancels the listener and waits for its goroutine to exit, so no
// callback runs after Stop returns. It must not be called from inside the
// listener's own callback. Safe to call more than once and on nil.
func (s *Subscription) Stop() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}

// WatchDoc calls fn with the current document and again whenever it changes.
func (e *Engine) WatchDoc(path string, fn DocFunc) *Subscription {
	if err := ValidatePath(path); err != nil {
		return e.failed(func() { fn(nil, err) })
	}
	return e.watch(docTopic(path), func(ctx context.Context) (string, func(), error) {
		snap, err := e.backend.Get(ctx, path)
		if errors.Is(err, ErrNotFound) {
			return "absent", func() { fn(nil, nil) }, nil
		}
		if err != nil {
			return "", nil, err
		}
		return fingerprint([]*Snapshot{snap}), func() { fn(snap, nil) }, nil
	}, func(err error) { fn(nil, err) })
}

// WatchQuery calls fn with the full result set now and whenever any
// document of the collection changes in a way that alters the result.
func (e *Engine) WatchQuery(q Query, fn QueryFunc) *Subscription {
	if err := ValidateCollection(q.Collection); err != nil {
		return e.failed(func() { fn(nil, err) })
	}
	return e.watch(collectionTopic(q.Collection), func(ctx context.Context) (string, func(), error) {
		snaps, err := e.Query(ctx, q)
		if err != nil {
			return "", nil, err
		}
		return fingerprint(snaps), func() { fn(snaps, nil) }, nil
	}, func(err error) { fn(nil, err) })
}

type loader func(ctx context.Context) (fp string, emit func(), err error)

func (e *Engine) watch(topic string, load loader, onErr func(error)) *Subscription {
	ctx, cancel := context.WithCancel(context.Background())
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}
	// Subscribe before the first load so no commit falls between them.
	ch, unsub := e.bus.Subscribe(topic, 64)

	go func() {
		defer close(sub.done)
		defer unsub()

		last, fresh := "", true
		reload := func() {
			fp, emit, err := load(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				fresh = true
				onErr(err)
				return
			}
			if !fresh && fp == last {
				return
			}
			fresh, last = false, fp
			emit()
		}

		reload()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ch:
				// A reload reads current state, so a burst collapses into one.
			drain:
				for {
					select {
					case <-ch:
					default:
						break drain
					}
				}
				reload()
			}
		}
	}()
	return sub
}

func (e *Engine) failed(emit func()) *Subscription {
	sub := &Subscription{cancel: func() {}, done: make(chan struct{})}
	go func() {
		defer close(sub.done)
		emit()
	}()
	return sub
}

func fingerprint(snaps []*Snapshot) string {
	var b strings.Builder
	for _, s := range snaps {
		b.WriteString(s.Path)
		b.WriteByte('@')
		b.WriteString(strconv.FormatInt(s.UpdateSeq, 10))
		b.WriteByte(';')
	}
	return b.String()
}
