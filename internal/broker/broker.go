package broker

import "sync"

// Broker fans out published messages to every current subscriber.
//
// It is used to push events such as saved FIRs to Server-Sent Events streams. Each subscriber has a small buffer and
// messages to a subscriber with a full buffer are dropped so that a slow client never blocks the publisher.
type Broker[T any] struct {
	stopChannel        chan struct{}
	publishChannel     chan T
	subscribeChannel   chan chan T
	unsubscribeChannel chan chan T
	bufferSize         int
	stopOnce           sync.Once
}

// NewBroker creates a new Broker. Call Start in a goroutine and Stop when done.
func NewBroker[T any](bufferSize int) *Broker[T] {
	return &Broker[T]{
		stopChannel:        make(chan struct{}),
		publishChannel:     make(chan T),
		subscribeChannel:   make(chan chan T),
		unsubscribeChannel: make(chan chan T),
		bufferSize:         bufferSize,
		stopOnce:           sync.Once{},
	}
}

// Start listening for publish, subscribe, and unsubscribe events. This function blocks until Stop() is called,
// so it should be called in a goroutine. Subscriber channels are closed when the broker stops.
func (b *Broker[T]) Start() {
	subscribers := map[chan T]struct{}{}
	defer func() {
		for c := range subscribers {
			close(c)
		}
	}()
	for {
		select {
		case <-b.stopChannel:
			return

		case c := <-b.subscribeChannel:
			subscribers[c] = struct{}{}

		case c := <-b.unsubscribeChannel:
			if _, ok := subscribers[c]; ok {
				delete(subscribers, c)
				close(c)
			}

		case msg := <-b.publishChannel:
			for c := range subscribers {
				select {
				case c <- msg:
				default:
					// Subscriber is too slow, drop the message.
				}
			}
		}
	}
}

// Stop the goroutine that handles the broker. It's safe to call Stop more than once.
func (b *Broker[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stopChannel)
	})
}

// Subscribe returns a channel receiving every message published after this call. The channel is closed on
// Unsubscribe or when the broker stops.
func (b *Broker[T]) Subscribe() chan T {
	c := make(chan T, b.bufferSize)
	select {
	case b.subscribeChannel <- c:
	case <-b.stopChannel:
		close(c)
	}
	return c
}

// Unsubscribe stops delivery to c and closes it.
func (b *Broker[T]) Unsubscribe(c chan T) {
	select {
	case b.unsubscribeChannel <- c:
	case <-b.stopChannel:
	}
}

// Publish sends msg to all subscribers. It doesn't block on slow subscribers and is a no-op after Stop.
func (b *Broker[T]) Publish(msg T) {
	select {
	case b.publishChannel <- msg:
	case <-b.stopChannel:
	}
}
