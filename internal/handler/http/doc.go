// Package http implements the REST transport of the authentication service.
//
// It wires the routes, request handlers, and middleware for the three-factor
// API: public credential endpoints, token-authenticated biometric endpoints,
// and the factor-gated protected resource. Cross-cutting concerns such as
// bearer-token auth, request tracing, access logging, and response
// compression live here; factor decisions are delegated to the service
// layer.
package http
