package tui

// ChannelObserver adapts domain.LoadObserver to a channel for Bubble Tea.
type ChannelObserver struct {
	ch chan<- FontLoadMsg
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver(ch chan<- FontLoadMsg) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// OnFontLoaded sends a success event (non-blocking if full).
func (o *ChannelObserver) OnFontLoaded(family string) {
	o.send(FontLoadMsg{Family: family})
}

// OnFontFailed sends a failure event (non-blocking if full).
func (o *ChannelObserver) OnFontFailed(family string, err error) {
	o.send(FontLoadMsg{Family: family, Err: err})
}

func (o *ChannelObserver) send(msg FontLoadMsg) {
	select {
	case o.ch <- msg:
	default: // Non-blocking if channel full
	}
}
