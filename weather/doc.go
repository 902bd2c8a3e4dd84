// Package weather is the Open-Meteo upstream client. It returns the raw
// parallel-array payload; all derivation (segments, icons, windows) lives
// in the board package.
package weather
