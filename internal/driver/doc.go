// Package driver runs one script through the interpreter pipeline.
//
// The driver is a three-phase state machine: Setup (session announced),
// Running (command lines interpreted strictly in file order, one at a time,
// each running to completion before the next starts), and Teardown (session
// temp files removed). A failing line (unknown command, parse error, bad
// configuration, or a failing execution) is logged and recorded, and the run
// continues with the next line. There is no abort-on-first-error and no
// mid-command cancellation.
package driver
