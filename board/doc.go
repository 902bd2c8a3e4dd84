// Package board is the normalization core: pure, synchronous
// transformations from raw upstream payloads (namespaced SOAP trees,
// variant-keyed REST entries, parallel forecast arrays) into the uniform,
// serialization-friendly records the presentation layer renders. Nothing
// in this package performs I/O; total upstream failures never reach it.
package board
