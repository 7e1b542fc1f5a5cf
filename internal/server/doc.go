// Package server runs the application's HTTP and gRPC transports and stops
// them together on a termination signal or on the first transport failure.
package server
