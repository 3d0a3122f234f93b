package engine

// Event is a multicast event channel: the engine invokes it, any number of
// listeners (typically the rendering layer) receive the payload. Listener
// order is registration order.
type Event[T any] struct {
	listeners []func(T)
}

// AddListener adds a callback to be invoked when the event fires.
func (e *Event[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

// RemoveAllListeners clears all listeners.
func (e *Event[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners with the payload.
func (e *Event[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		if listener != nil {
			listener(arg)
		}
	}
}

// ListenerCount returns the number of registered listeners (for debugging).
func (e *Event[T]) ListenerCount() int {
	return len(e.listeners)
}
