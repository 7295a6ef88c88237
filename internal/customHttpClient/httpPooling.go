package customHttpClient

import (
	"net/http"

	"github.com/akolanti/DocVQA/internal/config"
)

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

var pooledClient = &http.Client{
	Transport: customTransport,
}

// GetPooledClient hands out the shared pooled client so SDK clients
// reuse connections instead of opening one per request.
func GetPooledClient() *http.Client {
	return pooledClient
}
