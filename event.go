package synchrony

import (
	"context"
	"math"
)

// Event notifies waiting tasks or goroutines.
//
// A waiter first calls Listen, then re-checks whatever condition it is
// waiting for, and only then waits on the listener; a notification sent
// after Listen is never missed. Listeners are notified oldest first.
//
// Example:
//
//	var ready atomic.Bool
//	var ev Event[Sync]
//	go func() { ready.Store(true); ev.NotifyAll() }()
//	for !ready.Load() {
//		l := ev.Listen()
//		if ready.Load() {
//			l.Discard()
//			break
//		}
//		l.Wait()
//	}
//
// The zero value is ready to use.
type Event[F Flavor] struct {
	list Mutex[F, eventList[F]]
}

type eventList[F Flavor] struct {
	head, tail *EventListener[F]
	// start is the oldest listener not notified yet; all listeners before
	// it are notified.
	start    *EventListener[F]
	notified int
	len      int
}

type listenerState uint8

const (
	listenerWaiting listenerState = iota
	listenerNotified
	listenerDone
)

// EventListener is one registration with an Event. It implements
// Future[struct{}], completing once the listener has been notified.
type EventListener[F Flavor] struct {
	event      *Event[F]
	prev, next *EventListener[F]
	state      listenerState
	// waker is protected by event.list.
	waker *Waker
}

// NewEvent creates an Event.
func NewEvent[F Flavor]() *Event[F] {
	return &Event[F]{}
}

// Listen registers a new listener at the back of the queue.
func (e *Event[F]) Listen() *EventListener[F] {
	l := &EventListener[F]{event: e}
	g := e.list.Lock()
	g.Get().push(l)
	g.Unlock()
	return l
}

// Notify makes sure at least n listeners are notified, counting those
// already notified but not yet completed. It returns how many listeners it
// notified.
func (e *Event[F]) Notify(n int) int {
	return e.notify(n, false)
}

// NotifyAdditional notifies n more listeners, regardless of how many are
// already notified. It returns how many listeners it notified.
func (e *Event[F]) NotifyAdditional(n int) int {
	return e.notify(n, true)
}

// NotifyAll notifies every registered listener.
func (e *Event[F]) NotifyAll() int {
	return e.notify(math.MaxInt, true)
}

func (e *Event[F]) notify(n int, additive bool) int {
	g := e.list.Lock()
	list := g.Get()
	if !additive {
		n -= list.notified
	}
	var wakers []*Waker
	count := 0
	for ; n > 0 && list.start != nil; n-- {
		if w := list.notifyNext(); w != nil {
			wakers = append(wakers, w)
		}
		count++
	}
	g.Unlock()

	// Wake outside the lock: a waker may poll its listener synchronously.
	for _, w := range wakers {
		w.Wake()
	}
	return count
}

// Poll completes once l has been notified; otherwise w is stored to be
// woken by the notification.
func (l *EventListener[F]) Poll(w *Waker) (struct{}, bool) {
	g := l.event.list.Lock()
	defer g.Unlock()
	switch l.state {
	case listenerDone:
		return struct{}{}, true
	case listenerNotified:
		g.Get().remove(l)
		l.state = listenerDone
		return struct{}{}, true
	}
	if l.waker == nil || !l.waker.WillWake(w) {
		l.waker = w
	}
	return struct{}{}, false
}

// Wait blocks the calling goroutine until l is notified.
func (l *EventListener[F]) Wait() {
	Await[struct{}](l)
}

// WaitContext is like Wait but gives up when ctx is done. A listener given
// up on should be discarded.
func (l *EventListener[F]) WaitContext(ctx context.Context) error {
	_, err := AwaitContext[struct{}](ctx, l)
	return err
}

// Discard unregisters l. A notification l received but never consumed is
// handed to the next listener in line.
func (l *EventListener[F]) Discard() {
	g := l.event.list.Lock()
	list := g.Get()
	var pass *Waker
	switch l.state {
	case listenerWaiting:
		list.remove(l)
	case listenerNotified:
		list.remove(l)
		if list.start != nil {
			pass = list.notifyNext()
		}
	}
	l.state = listenerDone
	l.waker = nil
	g.Unlock()

	pass.Wake()
}

func (list *eventList[F]) push(l *EventListener[F]) {
	l.prev = list.tail
	if list.tail == nil {
		list.head = l
	} else {
		list.tail.next = l
	}
	list.tail = l
	if list.start == nil {
		list.start = l
	}
	list.len++
}

func (list *eventList[F]) remove(l *EventListener[F]) {
	if l.prev == nil {
		list.head = l.next
	} else {
		l.prev.next = l.next
	}
	if l.next == nil {
		list.tail = l.prev
	} else {
		l.next.prev = l.prev
	}
	if list.start == l {
		list.start = l.next
	}
	if l.state == listenerNotified {
		list.notified--
	}
	l.prev, l.next = nil, nil
	list.len--
}

// notifyNext marks list.start notified and returns the waker it held.
func (list *eventList[F]) notifyNext() *Waker {
	l := list.start
	list.start = l.next
	l.state = listenerNotified
	list.notified++
	w := l.waker
	l.waker = nil
	return w
}
