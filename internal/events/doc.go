// Package events carries domain events from the services to whoever
// subscribes, currently the metrics registry.
//
// Services emit after the write they describe has been stored. A handler
// failure is logged and reported to the emitter's caller, but the write
// itself is never undone.
package events
