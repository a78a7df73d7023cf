package http_client

import (
	"net"
	"net/http"
	"time"
)

// CreateHTTPClient builds the client used for outbound APOD calls.
// The overall timeout is generous: date-range and count queries make the
// remote service assemble up to a hundred entries and it is slow at that.
func CreateHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		MaxIdleConns:          10,
		MaxConnsPerHost:       10,
		IdleConnTimeout:       60 * time.Second,
		DisableCompression:    false,
		ForceAttemptHTTP2:     true,
		ExpectContinueTimeout: 1 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}
	cli := &http.Client{
		Timeout:   timeout,
		Transport: tr,
	}

	return cli
}
