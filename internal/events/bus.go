package events

import "motion-controller-rig/internal/input"

// Bus owns one Channel per ChannelID.
type Bus struct {
	channels [NumChannels]Channel
}

func NewBus() *Bus {
	return &Bus{}
}

// Channel returns the channel for id, or nil when id is out of range.
func (b *Bus) Channel(id ChannelID) *Channel {
	if !id.Valid() {
		return nil
	}
	return &b.channels[id]
}

// Dispatch notifies the channel for id. Out-of-range ids are ignored and
// reported as false.
func (b *Bus) Dispatch(id ChannelID, state input.ButtonState) bool {
	c := b.Channel(id)
	if c == nil {
		return false
	}
	c.Notify(state)
	return true
}

// Semantic aliases for the motion controller buttons.

func (b *Bus) Trigger() *Channel    { return &b.channels[Trigger] }
func (b *Bus) Menu() *Channel       { return &b.channels[Secondary] }
func (b *Bus) Grip() *Channel       { return &b.channels[Main] }
func (b *Bus) Thumbstick() *Channel { return &b.channels[Pad] }
func (b *Bus) Touchpad() *Channel   { return &b.channels[Trackpad] }
