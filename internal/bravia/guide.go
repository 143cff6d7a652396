package bravia

import (
	"encoding/json"
	"fmt"
)

const guideEndpoint = "guide"

// APIVersion describes one supported version of an API, with the
// transport and authentication level when they differ from the service
// defaults.
type APIVersion struct {
	Version   string   `json:"version"`
	Protocols []string `json:"protocols,omitempty"`
	AuthLevel string   `json:"authLevel,omitempty"`
}

// APIInfo names an API and lists its supported versions.
type APIInfo struct {
	Name     string       `json:"name"`
	Versions []APIVersion `json:"versions"`
}

// ServiceInfo describes one service advertised by the device.
type ServiceInfo struct {
	Service       string    `json:"service"`
	Protocols     []string  `json:"protocols"`
	APIs          []APIInfo `json:"apis"`
	Notifications []APIInfo `json:"notifications,omitempty"`
}

// GuideService provides access to guide service APIs.
type GuideService struct {
	c *Client
}

// Guide returns the guide service.
func (c *Client) Guide() *GuideService {
	return &GuideService{c: c}
}

// GetSupportedAPIInfo returns the services the device supports together
// with their APIs and versions. A nil or empty services argument means
// all services. This call bootstraps the client's capability cache
// during construction, so it is never gated by that cache itself.
//
// Authentication level: None.
func (s *GuideService) GetSupportedAPIInfo(services []string) ([]ServiceInfo, error) {
	params := map[string]any{}
	if len(services) > 0 {
		params["services"] = services
	}

	raw, err := s.c.do(request{
		endpoint:  guideEndpoint,
		body:      newRequestBody(5, discoveryMethod, "", params),
		hasResult: true,
	})
	if err != nil {
		return nil, err
	}

	var parsed []ServiceInfo
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode supported api info: %w", err)
	}
	if len(parsed) == 0 {
		return nil, ErrNoServices
	}
	return parsed, nil
}
