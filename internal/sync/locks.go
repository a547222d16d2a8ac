package sync

import (
	"context"
	stdsync "sync"

	"golang.org/x/sync/semaphore"
)

// chatLocks hands out one weighted semaphore per chat id so fan-outs on
// the same chat never interleave while different chats proceed in parallel.
type chatLocks struct {
	mu   stdsync.Mutex
	sems map[string]*semaphore.Weighted
}

func newChatLocks() *chatLocks {
	return &chatLocks{sems: map[string]*semaphore.Weighted{}}
}

// acquire waits for chatID's slot or for ctx to end.
func (l *chatLocks) acquire(ctx context.Context, chatID string) (func(), error) {
	l.mu.Lock()
	sem, ok := l.sems[chatID]
	if !ok {
		sem = semaphore.NewWeighted(1)
		l.sems[chatID] = sem
	}
	l.mu.Unlock()

	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return func() { sem.Release(1) }, nil
}
