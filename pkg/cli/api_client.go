package cli

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultAPIAddress = "http://127.0.0.1:5000"

	defaultTimeout = 5 * time.Second
)

type APIClient struct {
	apiAddress    string
	timeout       time.Duration
	absentMessage string
}

func NewAPIClient(apiAddress string) *APIClient {
	return &APIClient{
		apiAddress:    apiAddress,
		timeout:       defaultTimeout,
		absentMessage: DefaultAbsentMessage,
	}
}

// WithAbsentMessage sets the body the probe answers with when its model path
// is absent; it has to match the probe's rendered absent template.
func (api *APIClient) WithAbsentMessage(message string) *APIClient {
	api.absentMessage = message
	return api
}

func (api *APIClient) WithTimeout(timeout time.Duration) *APIClient {
	api.timeout = timeout
	return api
}

// Status queries the root endpoint of a running probe.
func (api *APIClient) Status() *StatusResponse {
	client, addr, err := api.buildHTTPClientAndAddress()
	if err != nil {
		return &StatusResponse{Error: err}
	}

	return NewStatusResponse(api.absentMessage)(client.Get(addr + "/"))
}

// buildHTTPClientAndAddress accepts http(s) URLs as well as unix:///path/to.sock.
func (api *APIClient) buildHTTPClientAndAddress() (*http.Client, string, error) {
	u, err := url.Parse(api.apiAddress)
	if err != nil {
		return nil, "", err
	}
	if u.Scheme != "unix" {
		u.Path = ""
		return &http.Client{Timeout: api.timeout}, u.String(), nil
	}

	socketPath := u.Path
	return &http.Client{
		Timeout: api.timeout,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", socketPath)
			},
		},
	}, "http://unix", nil
}
