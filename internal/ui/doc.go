// Package ui binds the interval timer to a terminal "watch face" with Bubble Tea.
//
// The watch face plays the role of the wearable device:
//   - WatchModel: owns the timer, re-arms the one-second tick, renders the screen
//   - KeybindRegistry: maps the three device buttons (plus quit/help) to messages
//   - WatchMode: which buttons do something right now, derived from timer state
//
// The timer itself never schedules anything; every tick is armed here.
package ui
