// Package session holds the state shared across the command lines of one
// script run: the named layer store, user-set properties, the working
// directory, and the temp-file registry. The driver creates one Context per
// run and injects it into every command's Execute call; there is no ambient
// global state, which keeps tests isolated from one another.
package session
