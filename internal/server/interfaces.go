package server

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// RunServer serves requests until a termination signal arrives or a
	// transport fails, then shuts every transport down.
	RunServer()

	// Shutdown gracefully stops every transport.
	Shutdown()
}
