// Package tmux drives the tmux(1) terminal multiplexer.
//
// [Driver] maps one-to-one onto the tmux commands thumbs needs, and
// [ShellDriver] implements it by running the tmux binary. Higher level
// helpers like [InspectPane] are built on top of a Driver.
package tmux
