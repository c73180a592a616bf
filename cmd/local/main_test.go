package main

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hello-lambda/hello"
)

func Test_shouldServeUntilCancelledThenCloseCleanly(t *testing.T) {
	// Given
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := &http.Server{Handler: hello.NewHTTPHandler(hello.Handler{Logger: hello.NewLogger(&bytes.Buffer{})})}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, ln) }()

	// When
	resp, err := http.Post("http://"+ln.Addr().String(), "application/json", bytes.NewBufferString(`{}`))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	cancel()

	// Then
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hello from lambda", string(body))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not shut down")
	}
}

func Test_shouldReturnListenerFailures(t *testing.T) {
	// Given
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())
	srv := &http.Server{Handler: http.NotFoundHandler()}

	// When
	err = serve(context.Background(), srv, ln)

	// Then
	assert.Error(t, err)
	assert.NotErrorIs(t, err, http.ErrServerClosed)
}
