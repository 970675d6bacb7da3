package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"parcel-service/internal/config"
)

// RoadDistances are measured distances from a parcel to the surrounding
// traffic infrastructure, in meters.
type RoadDistances struct {
	MotorwayRampM int `json:"distance_motorway_ramp_m"`
	MotorwayM     int `json:"distance_motorway_m"`
	TrunkprimaryM int `json:"distance_trunkprimary_m"`
	SecondaryM    int `json:"distance_secondary_m"`
	TraintracksM  int `json:"distance_traintracks_m"`
	SettlementM   int `json:"distance_settlement_m"`
}

type roadDistancesResponse struct {
	Data RoadDistances `json:"data"`
}

// InfrastructureClient queries an external geodata service for real
// infrastructure distances. Reports fall back to policy defaults when the
// client is not configured.
type InfrastructureClient struct {
	baseURL       string
	internalToken string
	httpClient    *http.Client
}

func NewInfrastructureClient(cfg *config.Config) *InfrastructureClient {
	return &InfrastructureClient{
		baseURL:       cfg.ExternalServices.InfraServiceURL,
		internalToken: cfg.ExternalServices.InfraInternalToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *InfrastructureClient) Configured() bool {
	return c.baseURL != ""
}

// GetRoadDistances fetches infrastructure distances for a point.
func (c *InfrastructureClient) GetRoadDistances(ctx context.Context, lat, lng float64) (*RoadDistances, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("infrastructure service URL is not configured")
	}

	u, err := url.Parse(c.baseURL + "/internal/geodata/distances")
	if err != nil {
		return nil, fmt.Errorf("invalid infrastructure service URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lng", fmt.Sprintf("%f", lng))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if c.internalToken != "" {
		req.Header.Set("X-Internal-Token", c.internalToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("infrastructure service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("infrastructure service returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed roadDistancesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode infrastructure response: %w", err)
	}

	return &parsed.Data, nil
}
