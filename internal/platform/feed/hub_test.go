package feed

import "testing"

func TestHubPublishSubscribe(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()

	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}

	h.Publish(1)
	for i, sub := range []*Subscription{a, b} {
		if v := <-sub.C; v != 1 {
			t.Errorf("subscriber %d got %v, want 1", i, v)
		}
	}
}

func TestHubLatestWins(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe()

	for i := 1; i <= 5; i++ {
		h.Publish(i)
	}

	if v := <-sub.C; v != 5 {
		t.Errorf("got %v, want newest value 5", v)
	}
	select {
	case v := <-sub.C:
		t.Errorf("unexpected extra value %v", v)
	default:
	}
}

func TestHubUnsubscribe(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe()
	h.Unsubscribe(sub)
	h.Unsubscribe(sub)

	if h.Len() != 0 {
		t.Errorf("Len = %d, want 0", h.Len())
	}
	if _, ok := <-sub.C; ok {
		t.Error("channel should be closed")
	}

	// Publishing with no subscribers must not block.
	h.Publish("x")
}

func TestHubClose(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe()
	h.Close()
	h.Close()

	if _, ok := <-sub.C; ok {
		t.Error("subscription should be closed")
	}

	late := h.Subscribe()
	if _, ok := <-late.C; ok {
		t.Error("subscription after Close should be closed")
	}
	if h.Len() != 0 {
		t.Errorf("Len = %d, want 0", h.Len())
	}
}
