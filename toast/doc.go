// Package toast implements the in-app notification lifecycle. A Manager
// owns the ordered stack of active toasts, drives each one's entry and
// exit transition through a per-item animation controller, arms and
// cancels auto-dismiss timers, notifies registered status callbacks, and
// composes the stack into an ordered render tree for whatever surface
// the host application attaches.
package toast
