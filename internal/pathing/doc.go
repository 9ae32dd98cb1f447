// Package pathing implements weighted A* search over rectangular tile grids.
//
// A PathMap is built once from a terrain cost source and is read-only
// afterwards, so any number of searches may run against it at the same time.
// All per-search bookkeeping lives in call-local side tables keyed by node
// identity; nothing is ever written back onto the shared nodes.
package pathing
