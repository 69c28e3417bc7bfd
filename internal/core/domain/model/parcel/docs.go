// Package parcel provides the Parcel aggregate and the history ledger entries it
// owns.
//
// The package includes:
//   - Parcel: the aggregate root, the only writer of parcel state
//   - Status and Priority: the enumerations used for filtering and statistics
//   - LineItem: a product carried by the parcel with the unit price captured at creation
//   - HistoryEntry and Timeline: the append-only status history
//   - Event: facts published after a successful commit
//
// Key business rules:
//   - A parcel starts in CREATED with exactly one CREATED history entry
//   - Every status change appends one history entry; an unchanged status appends nothing
//   - Status changes are permissive: the documented progression
//     CREATED -> COLLECTED -> IN_STOCK -> IN_TRANSIT -> DELIVERED is not enforced
//   - Sender, recipient, id and creation time are immutable
package parcel
