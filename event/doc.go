// Package event provides the notification side of conlog: a typed
// publish/subscribe Bus keyed by severity.
//
// Each level has an ordered list of listeners. Publish invokes every
// listener registered for the level synchronously, in registration
// order, before it returns. Subscribe and Unsubscribe are the only
// mutation points and are safe to call from any goroutine, including
// from inside a listener; a publish in progress keeps running over the
// list it started with.
//
// Listener panics are not recovered. Failure handling for listeners
// belongs to the caller.
//
// ForwardToZap, ForwardToZerolog and ForwardToLogrus subscribe listeners
// that hand every notification to an existing structured logger, with
// the system tag as a "system" field.
package event
