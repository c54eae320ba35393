/*
Package runner is the interactive driving loop around a detent machine: it
reads operation words from its input, applies them through the dispatcher,
and reports the outcome line by line. IO is injected, so the same loop
serves a terminal, a test, or any other line-oriented frontend.
*/
package runner
