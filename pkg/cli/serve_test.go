package cli_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/m-mizutani/ghbox/pkg/cli"
	"github.com/m-mizutani/gt"
)

func TestRunHTTPServerStopsOnCancel(t *testing.T) {
	ln := gt.R1(net.Listen("tcp", "127.0.0.1:0")).NoError(t)
	addr := ln.Addr().String()
	gt.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- cli.RunHTTPServer(ctx, &http.Server{
			Addr:    addr,
			Handler: http.NotFoundHandler(),
		}, time.Second)
	}()

	cancel()
	select {
	case err := <-done:
		gt.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunHTTPServerListenError(t *testing.T) {
	ln := gt.R1(net.Listen("tcp", "127.0.0.1:0")).NoError(t)
	defer ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := cli.RunHTTPServer(ctx, &http.Server{
		Addr:    ln.Addr().String(),
		Handler: http.NotFoundHandler(),
	}, time.Second)
	gt.Error(t, err)
}
