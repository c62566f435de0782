// Package event provides a synchronous pub-sub bus for observing changes to
// an org chart.
//
// The org core publishes an event after each state change it completes
// (a report joining a lead, an accountant binding to a team, a bonus grant
// or denial). Subscribers observe; they never take part in the operation
// that produced the event, and publishing happens on the caller's goroutine
// before the operation returns.
//
// # Main Types
//
//   - [Event]: Interface that all events implement, providing Topic() and Timestamp()
//   - [Bus]: Synchronous dispatcher
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Org Events
//
//   - [ReportAddedEvent]: a lead accepted a new direct report
//   - [TeamSupportedEvent]: an accountant was bound to a technical lead's team
//   - [BonusGrantedEvent]: an accountant granted a bonus
//   - [BonusDeniedEvent]: a bonus request or approval was refused
package event
