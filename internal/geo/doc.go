// Package geo is the boundary to the geospatial toolkit. It defines the Layer
// model held in session state and the vector I/O and geometry operations the
// workflow commands delegate to. Commands never touch the underlying
// libraries directly; they go through this package.
package geo
