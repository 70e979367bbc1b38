// Package ui contains the Bubble Tea program that powers the tab dashboard.
// The Model type only orchestrates messages; the tab-selection state machine
// lives in internal/ui/state and rendering lives in view.go.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with each incoming message and then
//     Model.View exactly once, so one message is one loop iteration followed by
//     one full-frame render.
//   - Update routes each message through a typed handler registry. Key presses
//     are mapped through the key bindings in keys.go to a state.Input and
//     applied with state.Apply. Messages without a handler (mouse events,
//     focus changes) are ignored.
//   - Init schedules a poll tick. Every tick schedules the next one, which
//     bounds the wait for input: when no key arrives within the poll interval
//     the tick itself drives an iteration and the frame is redrawn anyway.
//
// State ownership:
//   - state.Selection (current tab and the running flag) is owned by the Model
//     and mutated only inside Update.
//   - The tabs.Set is read-only and shared.
//
// Failure handling:
//   - Write failures on the output surface are collected outside the model and
//     surfaced through the FrameErr hook, checked on every tick. A failure stops
//     the loop; Model.Err reports it to the caller.
package ui
