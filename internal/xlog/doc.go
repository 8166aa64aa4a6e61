// Package xlog is a thin logrus wrapper carrying the structured fields
// every component logs with: run_id, timestep, and simulation_set. It
// mirrors the opd-ai-venture engine's logger-entry pattern — build one
// *logrus.Entry with the ambient fields attached once, pass it down, and
// let call sites add just what varies at that log line.
package xlog
