// Package rail is the National Rail OpenLDBWS upstream client. The SOAP
// response is decoded into an untyped tree rather than fixed structs
// because the feed namespaces the same fields under either the lt4 or lt5
// prefix depending on schema revision; the board package resolves that
// variance.
package rail
