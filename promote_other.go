//go:build !linux

// promote_other.go - No-op real-time promotion on platforms without SCHED_FIFO

package main

// promoteRealtime is a no-op outside Linux: there is no portable
// equivalent to SCHED_FIFO promotion, so workers simply run at the
// platform's default goroutine scheduling.
func promoteRealtime() {}
