package tui

// ChannelObserver adapts store change notifications to a channel for Bubble Tea.
type ChannelObserver struct {
	ch chan struct{}
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver() *ChannelObserver {
	return &ChannelObserver{ch: make(chan struct{}, 1)}
}

// OnChange signals the channel (non-blocking; bursts coalesce into one message).
func (o *ChannelObserver) OnChange() {
	select {
	case o.ch <- struct{}{}:
	default:
	}
}

// C returns the notification channel
func (o *ChannelObserver) C() <-chan struct{} {
	return o.ch
}
