// Package movement provides the movement log for container transfers: which
// child containers contributed which product quantities to which parents.
//
// The package includes:
//   - Ledger: the movement log with owning parent/child relation indexes and
//     the capsule archive of last known nonzero totals
//   - Entry: one logged (child, quantity) contribution
//
// Key business rules:
//   - Relation indexes and the log are updated together, so child→parent and
//     parent→children can never disagree
//   - Repeated movements of the same product from the same child merge
//   - Archived capsule totals survive the capsule being emptied, supporting
//     historical summaries, and only nonzero totals are archived
//
// Reversal operations (unassigning a child, cancelling a container) read the
// log to restore quantities exactly where they came from.
package movement
