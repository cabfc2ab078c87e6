package client

import "context"

const registroBRPath = "api/registrobr/v1"

// Domain is the registration state of a .br domain.
type Domain struct {
	StatusCode        int      `json:"status_code"`
	Status            string   `json:"status"`
	FQDN              string   `json:"fqdn"`
	Suggestions       []string `json:"suggestions,omitempty"`
	Hosts             []string `json:"hosts,omitempty"`
	PublicationStatus string   `json:"publication-status,omitempty"`
	ExpiresAt         string   `json:"expires-at,omitempty"`
	Reasons           []string `json:"reasons,omitempty"`
}

type RegistroBRService struct {
	client *Client
}

func NewRegistroBRService(c *Client) *RegistroBRService {
	return &RegistroBRService{client: c}
}

// Domain checks a name with registro.br. The ".br" suffix is optional.
func (s *RegistroBRService) Domain(ctx context.Context, name string) (*Domain, error) {
	var out Domain
	if err := s.client.getJSON(ctx, "domain", joinPath(registroBRPath, name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
