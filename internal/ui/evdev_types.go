package ui

import (
	"fmt"
	"time"
)

// EvdevEvent represents a captured evdev input event.
type EvdevEvent struct {
	Time   time.Time
	Device string // e.g. "event3"
	Type   uint16
	Code   uint16
	Value  int32
}

// String formats the event for the debug overlay.
func (e EvdevEvent) String() string {
	return fmt.Sprintf("%s code=%d (%s)", e.Device, e.Code, e.Time.Format("15:04:05"))
}
