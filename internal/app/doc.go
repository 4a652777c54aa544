// Package app contains the core application logic: the App struct, its
// configuration, and the run lifecycle that loads scripts and drives the
// interpreter, decoupled from the CLI entrypoint.
package app
