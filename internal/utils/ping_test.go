package utils

import (
	"net"
	"testing"
	"time"
)

func TestPingService(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	defer ln.Close()

	if err := PingService("http://"+ln.Addr().String(), time.Second); err != nil {
		t.Errorf("Expected reachable service, got %v", err)
	}

	addr := ln.Addr().String()
	ln.Close()
	if err := PingService("http://"+addr, 200*time.Millisecond); err == nil {
		t.Error("Expected an error for a closed port")
	}

	if err := PingService("://bad", time.Second); err == nil {
		t.Error("Expected an error for an invalid URL")
	}
}
