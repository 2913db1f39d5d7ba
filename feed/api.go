package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sarchlab/cashsim/atm"
)

// An API issues the request/response calls of the simulation server: one
// to fetch the default configuration document, one to start a simulation
// from a document.
type API struct {
	baseURL string
	client  *http.Client
}

// NewAPI creates an API client for the given base URL, e.g.
// "http://localhost:8080".
func NewAPI(baseURL string) *API {
	return &API{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchDefaultConfig retrieves the default configuration document.
func (a *API) FetchDefaultConfig(ctx context.Context) (*atm.Config, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, a.baseURL+"/config/default", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	rsp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching default config: %w", err)
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"fetching default config: server returned %s", rsp.Status)
	}

	var cfg atm.Config
	if err := json.NewDecoder(rsp.Body).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config document: %w", err)
	}

	return &cfg, nil
}

// StartSimulation posts a configuration document to start a simulation.
// Opaque fields of the document round-trip untouched.
func (a *API) StartSimulation(ctx context.Context, cfg *atm.Config) error {
	body, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		a.baseURL+"/simulation/simulation", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	rsp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("starting simulation: %w", err)
	}
	defer rsp.Body.Close()

	if rsp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(rsp.Body, 512))
		return fmt.Errorf(
			"starting simulation: server returned %s: %s", rsp.Status, msg)
	}

	return nil
}
