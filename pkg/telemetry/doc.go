/*
Package telemetry provides observer implementations for the machine's
lifecycle hooks: Prometheus metrics for entries, dwell times and rejections,
and a structured-logging observer for drivers that want event logs beyond
the core's own exit records.

Observers are fire-and-forget collaborators; a failing sink never aborts
the transition that produced the event.
*/
package telemetry
