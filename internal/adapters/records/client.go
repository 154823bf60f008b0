package records

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-adoption/internal/contracts"
	"pet-adoption/internal/domain/animals"
	"pet-adoption/internal/platform/httpclient"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	// Transport opcional (tests).
	Transport http.RoundTripper
}

// Client implementa animals.AdoptionRecorder contra POST /adoptions del
// servicio de registros. Una sola llamada, sin reintentos.
type Client struct {
	http *httpclient.Client
}

var _ animals.AdoptionRecorder = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("records: base url required")
	}
	hc, err := httpclient.New(httpclient.Options{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

func (c *Client) RecordAdoption(ctx context.Context, req contracts.CreateAdoptionRequest) (contracts.CreateAdoptionResponse, error) {
	var out contracts.CreateAdoptionResponse

	err := c.http.PostJSON(ctx, "/adoptions", req, &out)
	if err == nil {
		return out, nil
	}

	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		if he.StatusCode == http.StatusBadRequest {
			return contracts.CreateAdoptionResponse{}, fmt.Errorf("%w: %s", animals.ErrRecordRejected, he.Message())
		}
		return contracts.CreateAdoptionResponse{}, fmt.Errorf("%w: status=%d %s", animals.ErrUpstream, he.StatusCode, he.Message())
	}
	return contracts.CreateAdoptionResponse{}, fmt.Errorf("%w: %v", animals.ErrUpstream, err)
}
