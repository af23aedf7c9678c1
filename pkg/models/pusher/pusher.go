package pusher

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pusher buffers messages and hands them to PushLogic in batches, every
// PushInterval and once more on Stop. A failed batch stays buffered and is
// retried with the next one.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	ErrorHandler   func(error)
	lock           sync.Mutex
	once           sync.Once
	done           chan struct{}
	stopped        chan struct{}
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Errorf("push messages: %v", err) },
		PushInterval: time.Second,
		done:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.MessagesBuffer) == 0 {
		return nil
	}

	if err := p.PushLogic(p.MessagesBuffer...); err != nil {
		return err
	}

	p.MessagesBuffer = []T{}
	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
}

func (p *Pusher[T]) Len() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.MessagesBuffer)
}

func (p *Pusher[T]) Start() {
	go func() {
		defer close(p.stopped)

		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			case <-p.done:
				return
			}
		}
	}()
}

// Stop ends the push loop started by Start and flushes what is left.
func (p *Pusher[T]) Stop() error {
	p.once.Do(func() {
		close(p.done)
	})
	select {
	case <-p.stopped:
	case <-time.After(p.PushInterval):
	}
	return p.PushAll()
}
