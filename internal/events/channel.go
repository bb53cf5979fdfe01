// Package events carries button state changes from the animator to
// observers through a fixed table of named channels.
package events

import (
	"fmt"

	"motion-controller-rig/internal/input"
)

// ChannelID names one event channel.
type ChannelID int

const (
	Trigger ChannelID = iota
	Secondary
	Main
	Pad
	Trackpad

	NumChannels
)

var channelNames = [NumChannels]string{
	Trigger:   "trigger",
	Secondary: "secondary",
	Main:      "main",
	Pad:       "pad",
	Trackpad:  "trackpad",
}

func (id ChannelID) Valid() bool {
	return id >= 0 && id < NumChannels
}

func (id ChannelID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("channel(%d)", int(id))
	}
	return channelNames[id]
}

// ParseChannel is the inverse of String.
func ParseChannel(s string) (ChannelID, error) {
	for id, name := range channelNames {
		if name == s {
			return ChannelID(id), nil
		}
	}
	return 0, fmt.Errorf("events: unknown channel %q", s)
}

// Observer receives the new state of a button.
type Observer func(state input.ButtonState)

// Channel is a synchronous observable. Observers run in subscription order
// on the goroutine calling Notify.
type Channel struct {
	next      int
	observers []entry
}

type entry struct {
	id int
	fn Observer
}

// Subscribe registers fn and returns a function that removes it.
func (c *Channel) Subscribe(fn Observer) (unsubscribe func()) {
	id := c.next
	c.next++
	c.observers = append(c.observers, entry{id: id, fn: fn})
	return func() {
		for i, e := range c.observers {
			if e.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every observer with state.
func (c *Channel) Notify(state input.ButtonState) {
	for _, e := range c.observers {
		e.fn(state)
	}
}

// Len returns the number of observers.
func (c *Channel) Len() int {
	return len(c.observers)
}
