package utils

import (
	"fmt"
	"net"
	"net/url"
	"time"
)

// PingService checks that a TCP connection to the host of serviceURL can be opened
func PingService(serviceURL string, timeout time.Duration) error {
	parsedURL, err := url.Parse(serviceURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if parsedURL.Hostname() == "" {
		return fmt.Errorf("invalid URL %q: missing host", serviceURL)
	}

	port := parsedURL.Port()
	if port == "" {
		port = defaultPort(parsedURL.Scheme)
	}
	address := net.JoinHostPort(parsedURL.Hostname(), port)

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	return conn.Close()
}

// PingAuthorizer checks if the Authorizer service is reachable
func PingAuthorizer(authzURL string) error {
	return PingService(authzURL, 1500*time.Millisecond)
}

func defaultPort(scheme string) string {
	if scheme == "https" {
		return "443"
	}
	return "80"
}
