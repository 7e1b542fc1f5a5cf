package server

import (
	"context"
	"net"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contract-guard/internal/config"
	"github.com/MKhiriev/go-contract-guard/internal/handler"
	myGRPC "github.com/MKhiriev/go-contract-guard/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-contract-guard/internal/handler/http"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
)

type acceptAll struct{}

func (acceptAll) ValidateInstance(context.Context, any) error { return nil }

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = taken.Close() })

	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, acceptAll{}, logger.Nop())}
	_, err = NewServer(handlers, config.Server{GRPCAddress: taken.Addr().String()}, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error creating gRPC server")
}

func TestServerRun_StopsOnCancel(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(nil, logger.Nop()),
		GRPC: myGRPC.NewHandler(nil, acceptAll{}, logger.Nop()),
	}
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0", RequestTimeout: time.Second}

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servers did not stop after cancellation")
	}
}

func TestServerRun_TransportFailureStopsOthers(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = taken.Close() })

	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(nil, logger.Nop()),
		GRPC: myGRPC.NewHandler(nil, acceptAll{}, logger.Nop()),
	}
	cfg := config.Server{HTTPAddress: taken.Addr().String(), GRPCAddress: "127.0.0.1:0"}

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.(*server).run(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP server ListenAndServe")
	case <-time.After(5 * time.Second):
		t.Fatal("failing transport did not stop the server")
	}
}

func TestNewHTTPServer_RequestTimeout(t *testing.T) {
	inner := http.NotFoundHandler()

	withTimeout := newHTTPServer(inner, config.Server{HTTPAddress: ":0", RequestTimeout: time.Second}, logger.Nop())
	withoutTimeout := newHTTPServer(inner, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.IsType(t, http.HandlerFunc(nil), withoutTimeout.server.Handler)
	assert.NotEqual(t, reflect.TypeOf(inner), reflect.TypeOf(withTimeout.server.Handler))
}
