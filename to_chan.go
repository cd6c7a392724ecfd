package rx

import (
	"sync"

	"github.com/eapache/queue"
)

// notificationBuffer is an unbounded FIFO between the producer and the
// channel returned by ToChan. Producers never block on it.
type notificationBuffer[V any] struct {
	mu     sync.Mutex
	items  *queue.Queue
	signal chan struct{}
}

func newNotificationBuffer[V any]() *notificationBuffer[V] {
	return &notificationBuffer[V]{
		items:  queue.New(),
		signal: make(chan struct{}, 1),
	}
}

func (b *notificationBuffer[V]) push(n Notification[V]) {
	b.mu.Lock()
	b.items.Add(n)
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

func (b *notificationBuffer[V]) pop() (Notification[V], bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.items.Length() == 0 {
		var zero Notification[V]
		return zero, false
	}
	return b.items.Remove().(Notification[V]), true
}

// ToChan subscribes to source and delivers its signals on a channel.
//
// Signals are buffered without limit, so a slow reader never stalls the
// producer. The channel is closed after the terminal notification has been
// delivered, right away once the subscription is unsubscribed, or after the
// buffer is drained when the producer ends without a terminal signal.
// Callers must keep reading until the channel closes or unsubscribe.
//
// Example:
//
//	events, sub := rx.ToChan(rx.Interval(nil, time.Second))
//	defer sub.Close()
//	for n := range events {
//	    fmt.Println(n.Value)
//	}
func ToChan[V any](source Observable[V], opts ...Option) (<-chan Notification[V], *Subscription) {
	buf := newNotificationBuffer[V]()
	sub := source.Subscribe(
		func(v V) {
			buf.push(Notification[V]{Kind: OnNext, Value: v})
		},
		func(err error) {
			buf.push(Notification[V]{Kind: OnError, Err: err})
		},
		func() {
			buf.push(Notification[V]{Kind: OnComplete})
		},
		opts...,
	)

	out := make(chan Notification[V])
	go pump(buf, out, sub.core.live)
	return out, sub
}

// pump moves buffered notifications to out. It stops at once when liveness
// is cleared and drains the buffer when the work ends naturally.
func pump[V any](buf *notificationBuffer[V], out chan<- Notification[V], live *liveness) {
	defer close(out)

	finished := false
	for {
		n, ok := buf.pop()
		if !ok {
			if finished {
				return
			}
			select {
			case <-buf.signal:
			case <-live.canceled:
				if !live.alive() {
					return
				}
				finished = true
			}
			continue
		}

		if finished {
			if !live.alive() {
				return
			}
			out <- n
		} else {
			select {
			case out <- n:
			case <-live.canceled:
				if !live.alive() {
					return
				}
				finished = true
				out <- n
			}
		}

		if n.Terminal() {
			return
		}
	}
}
