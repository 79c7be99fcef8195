// Package models defines the records the tracing service hands back to its
// callers.
//
// # Models
//
//   - Verdict: the isolation decision for one person against a flagged list
//   - ContactSummary: the anonymous identifiers one person has been near
//
// # Design Principles
//
// 1. **Identifiers, not pointers**: records carry anonymous ids and names, never
// references into live Locations or Persons, so they stay valid after the
// simulation moves on.
// 2. **Snapshots**: slices in a record are copies and may be modified freely.
package models
