package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers configure it fluently:
//
//	client := utils.NewHTTPClient()
//	client.SetBaseURL("http://cfg:8082").SetTimeout(5 * time.Second)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
