// Package middleware provides composable HTTP middleware for the
// detection service: request IDs, panic recovery, request logging,
// and body size limits.
//
// Each constructor returns a func(http.Handler) http.Handler so
// middleware can be chained in any order.
package middleware
