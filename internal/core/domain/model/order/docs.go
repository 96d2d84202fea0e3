// Package order implements the Order aggregate and its lifecycle state machine.
//
// An order is the shared mutable record coordinating three independently-acting
// parties: the customer who placed it, the dispatcher who approves it and
// assigns a driver, and the driver who carries it to a terminal state. The
// aggregate enforces:
//
//   - status transitions only along the defined lifecycle edges
//   - role-based authorization per edge (dispatch approves and assigns, only
//     the assigned driver progresses pickup and delivery)
//   - an append-only status history auditing every transition
//   - a purchase amount frozen at creation time
//
// Rejected mutations never partially apply: every method validates completely
// before touching aggregate state.
package order
