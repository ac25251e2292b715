// Package listing contains the organ listing aggregate. A listing is an
// organ offered for transport by a hospital; it is consumed (flipped to
// Unavailable) exactly when a transport request is created against it, and
// never becomes available again.
package listing
