package pusher

import "time"

type Option[T any] func(*Pusher[T])

// WithPushLogic sets the sink a batch is handed to.
func WithPushLogic[T any](push func(...T) error) Option[T] {
	return func(p *Pusher[T]) {
		p.PushLogic = push
	}
}

func WithPushInterval[T any](interval time.Duration) Option[T] {
	return func(p *Pusher[T]) {
		if interval > 0 {
			p.PushInterval = interval
		}
	}
}

// WithErrorHandler replaces the default logging of failed background pushes.
func WithErrorHandler[T any](handle func(error)) Option[T] {
	return func(p *Pusher[T]) {
		p.ErrorHandler = handle
	}
}

// WithMessages starts the pusher with messages already queued.
func WithMessages[T any](messages ...T) Option[T] {
	return func(p *Pusher[T]) {
		p.MessagesBuffer = append(p.MessagesBuffer, messages...)
	}
}
