// Package tracing records who was co-located with whom.
//
// A Location tracks the anonymous identifiers currently present at a named
// place. A Person carries an anonymous identifier, a current Location and the
// set of identifiers it has shared a Location with. Moving a Person registers
// contacts at the place being left and again at the place being entered, so an
// isolation check against a list of flagged identifiers only needs to consult
// the Person's own contact set.
//
// # Notifications
//
// Presence changes, moves, contact registration and isolation checks are
// reported to a Notifier, one notification per call. Redundant operations
// (adding an identifier that is already present, removing one that is not)
// are classified outcomes, not errors.
//
// # Concurrency
//
// Location and Person are not safe for concurrent use. A caller sharing them
// between goroutines must serialise every Person.Move, since the move
// protocol touches two locations and must not interleave with another move.
package tracing
