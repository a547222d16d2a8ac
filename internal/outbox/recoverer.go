// Package outbox settles sends that were interrupted before their fan-out
// reported back, for example by a crash or a killed daemon.
package outbox

import (
	"context"
	"time"

	"github.com/matheus3301/chatsync/internal/bus"
	"github.com/matheus3301/chatsync/internal/store"
	"go.uber.org/zap"
)

// LogChecker tells whether a message reached the message log.
// *messagelog.Log implements it.
type LogChecker interface {
	Exists(ctx context.Context, chatID, msgID string) (bool, error)
}

// Recoverer scans the local outbox for entries stuck in sending. An entry
// whose message is in the log is marked sent. Any other entry is marked
// failed and its text goes back to the draft with the allocated id kept
// for the retry.
type Recoverer struct {
	db         *store.DB
	log        LogChecker
	bus        *bus.Bus
	logger     *zap.Logger
	staleAfter time.Duration
	interval   time.Duration
	now        func() time.Time
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewRecoverer creates a recoverer. Entries untouched for staleAfter are
// considered interrupted; the scan repeats every interval.
func NewRecoverer(db *store.DB, log LogChecker, b *bus.Bus, logger *zap.Logger, staleAfter, interval time.Duration) *Recoverer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recoverer{
		db:         db,
		log:        log,
		bus:        b,
		logger:     logger,
		staleAfter: staleAfter,
		interval:   interval,
		now:        time.Now,
	}
}

// Start runs one scan immediately, then keeps scanning in the background.
func (r *Recoverer) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	go r.loop(ctx)
}

// Stop stops the loop and waits for a scan in progress.
func (r *Recoverer) Stop() {
	if r.cancel != nil {
		r.cancel()
		<-r.done
	}
}

func (r *Recoverer) loop(ctx context.Context) {
	defer close(r.done)
	r.Scan(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.Scan(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Scan settles every stale entry and returns how many it settled.
func (r *Recoverer) Scan(ctx context.Context) int {
	cutoff := r.now().Add(-r.staleAfter).UnixMilli()
	stale, err := r.db.StaleSending(cutoff)
	if err != nil {
		r.logger.Error("failed to read outbox", zap.Error(err))
		return 0
	}

	settled := 0
	for _, entry := range stale {
		if ctx.Err() != nil {
			break
		}
		ok, err := r.log.Exists(ctx, entry.ChatID, entry.MessageID)
		if err != nil {
			// Store unreachable; try again on the next scan.
			r.logger.Warn("outbox check failed", zap.String("message", entry.MessageID), zap.Error(err))
			continue
		}
		if ok {
			r.recovered(entry)
		} else {
			r.failed(entry)
		}
		settled++
	}
	return settled
}

func (r *Recoverer) recovered(entry store.OutboxEntry) {
	if err := r.db.MarkOutboxSent(entry.MessageID); err != nil {
		r.logger.Error("failed to mark sent", zap.String("message", entry.MessageID), zap.Error(err))
		return
	}
	r.logger.Info("interrupted send was committed", zap.String("message", entry.MessageID))
	r.bus.Emit(bus.KindMessageRecover, map[string]string{
		"chat_id":    entry.ChatID,
		"temp_id":    entry.TempID,
		"message_id": entry.MessageID,
	})
}

func (r *Recoverer) failed(entry store.OutboxEntry) {
	const reason = "interrupted before commit"
	if err := r.db.MarkOutboxFailed(entry.MessageID, reason); err != nil {
		r.logger.Error("failed to mark failed", zap.String("message", entry.MessageID), zap.Error(err))
		return
	}

	// Never clobber what the user typed since.
	draft, err := r.db.GetDraft(entry.SenderID, entry.ChatID)
	if err != nil {
		r.logger.Warn("failed to read draft", zap.String("chat", entry.ChatID), zap.Error(err))
	} else if draft == nil || draft.Empty() {
		err := r.db.SaveDraft(store.Draft{
			UserID:  entry.SenderID,
			ChatID:  entry.ChatID,
			Text:    entry.Body,
			RetryID: entry.MessageID,
		})
		if err != nil {
			r.logger.Warn("failed to restore draft", zap.String("chat", entry.ChatID), zap.Error(err))
		}
	}

	r.logger.Warn("interrupted send was lost", zap.String("message", entry.MessageID))
	r.bus.Emit(bus.KindMessageFailed, map[string]string{
		"chat_id":    entry.ChatID,
		"temp_id":    entry.TempID,
		"message_id": entry.MessageID,
		"error":      reason,
	})
}
