package server

// Server is the lifecycle contract of an inbound transport.
type Server interface {
	// RunServer blocks serving requests until shutdown completes.
	RunServer()

	// Shutdown stops the server gracefully.
	Shutdown()
}
