// Package ui contains the Bubble Tea program that fronts the launcher
// session. The package deliberately keeps two responsibilities apart:
//
//   - Model translates terminal input into the session's abstract key
//     events (type, backspace, up, down, confirm, refresh, cancel) and owns
//     purely presentational state such as the transient filter overlay and
//     the blinking query caret.
//   - The session drives redraws through the Renderer interface at the
//     granularity the viewport computed (full window or a two-row highlight
//     move); Model maintains a fixed row buffer from those calls, so View
//     is a plain join of already-prepared rows rather than a recomputation.
//
// The filter overlay follows the debounce contract: the query line is shown
// while keys are actively pressed and hidden again after a fixed idle
// interval, reset on every keystroke. The session core is indifferent to
// this; it lives entirely here.
package ui
