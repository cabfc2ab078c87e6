package client

import "context"

const cepPath = "api/cep/v2"

type CEP struct {
	CEP          string    `json:"cep"`
	State        string    `json:"state"`
	City         string    `json:"city"`
	Neighborhood string    `json:"neighborhood"`
	Street       string    `json:"street"`
	Service      string    `json:"service"`
	Location     *Location `json:"location,omitempty"`
}

// Location is a GeoJSON-ish point. Coordinates are empty when no provider
// could geocode the address.
type Location struct {
	Type        string      `json:"type"`
	Coordinates Coordinates `json:"coordinates"`
}

type Coordinates struct {
	Longitude string `json:"longitude"`
	Latitude  string `json:"latitude"`
}

type CEPService struct {
	client *Client
}

func NewCEPService(c *Client) *CEPService {
	return &CEPService{client: c}
}

// Get resolves a postal code (8 digits, no dash) to an address.
func (s *CEPService) Get(ctx context.Context, cep string) (*CEP, error) {
	var out CEP
	if err := s.client.getJSON(ctx, "cep", joinPath(cepPath, cep), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Validate reports whether the postal code is assigned. An upstream 404 is
// false; other failures are returned as errors.
func (s *CEPService) Validate(ctx context.Context, cep string) (bool, error) {
	return s.client.check(ctx, joinPath(cepPath, cep))
}
