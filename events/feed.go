package events

import (
	"sync"

	"github.com/ethereum/go-ethereum/event"
)

type Callback[T any] func(data T)

type subscription[T any] struct {
	s event.Subscription
	c chan T
	w *sync.WaitGroup
}

// FeedOf wraps go-ethereum/event.FeedOf with id-keyed Subscribe and
// Unsubscribe calls so callers do not track subscription handles themselves.
type FeedOf[T any] struct {
	once sync.Once
	feed event.FeedOf[T]

	mu            sync.Mutex
	subscriptions map[string]*subscription[T]
}

func (e *FeedOf[T]) Send(data T) (sent int) {
	return e.feed.Send(data)
}

func (e *FeedOf[T]) init() {
	e.subscriptions = make(map[string]*subscription[T])
}

// Subscribe runs callback on every value sent to the feed until Unsubscribe
// is called with the same id. Resubscribing an id replaces its callback.
func (e *FeedOf[T]) Subscribe(id string, callback Callback[T]) {
	e.once.Do(e.init)

	e.Unsubscribe(id)
	sub := &subscription[T]{c: make(chan T), w: &sync.WaitGroup{}}
	sub.s = e.feed.Subscribe(sub.c)
	sub.w.Add(1)
	go func() {
		defer sub.w.Done()
		for {
			select {
			case t := <-sub.c:
				callback(t)
			case <-sub.s.Err():
				return
			}
		}
	}()
	e.mu.Lock()
	e.subscriptions[id] = sub
	e.mu.Unlock()
}

// Unsubscribe stops the callback registered under id. The returned WaitGroup
// is done once the callback goroutine has exited.
func (e *FeedOf[T]) Unsubscribe(id string) *sync.WaitGroup {
	e.once.Do(e.init)

	e.mu.Lock()
	sub, ok := e.subscriptions[id]
	if ok {
		delete(e.subscriptions, id)
	}
	e.mu.Unlock()
	if ok {
		sub.s.Unsubscribe()
		return sub.w
	}
	return &sync.WaitGroup{}
}
