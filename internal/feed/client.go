package feed

import (
	"net"
	"net/http"
	"time"
)

const (
	DefaultTimeout   = 20 * time.Second
	DefaultUserAgent = "news-scraper/1.0 (+https://github.com/DjordjeVuckovic/news-scraper)"
)

// NewHTTPClient returns a client with pooled connections and a hard timeout
// for every request it makes.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
