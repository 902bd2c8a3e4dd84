// Package tfl is the TfL unified API upstream client (line status and
// stop-point arrivals).
package tfl
