package graphics

// Host fans window resize notifications out to subscribers. It lives on the render
// thread; Run calls NotifyResize between frames, so no locking is needed.
type Host struct {
	next      int
	listeners map[int]func()
	order     []int
}

// NewHost returns a Host with no subscribers.
func NewHost() *Host {
	return &Host{listeners: make(map[int]func())}
}

// OnResize subscribes fn to resize notifications and returns the function that removes
// exactly that subscription. Calling the returned function more than once is harmless.
func (h *Host) OnResize(fn func()) (unsubscribe func()) {
	id := h.next
	h.next++
	h.listeners[id] = fn
	h.order = append(h.order, id)
	return func() {
		if _, ok := h.listeners[id]; !ok {
			return
		}
		delete(h.listeners, id)
		for i, v := range h.order {
			if v == id {
				h.order = append(h.order[:i], h.order[i+1:]...)
				break
			}
		}
	}
}

// NotifyResize calls every subscriber in subscription order.
func (h *Host) NotifyResize() {
	for _, id := range append([]int(nil), h.order...) {
		if fn, ok := h.listeners[id]; ok {
			fn()
		}
	}
}

// Listeners returns the number of active subscriptions.
func (h *Host) Listeners() int {
	return len(h.listeners)
}
