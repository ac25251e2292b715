// Package order contains the transport request aggregate and its status
// state machine, the core of the transport workflow: requests move from
// Requested through driver assignment and transit to Delivered, with a
// reversion edge that releases a claimed order back to the pool.
package order
