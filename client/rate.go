package client

import "context"

const ratesPath = "api/taxas/v1"

// Rate is a reference interest rate such as SELIC, CDI or IPCA.
type Rate struct {
	Nome  string  `json:"nome"`
	Valor float64 `json:"valor"`
}

type RateService struct {
	client *Client
}

func NewRateService(c *Client) *RateService {
	return &RateService{client: c}
}

func (s *RateService) List(ctx context.Context) ([]Rate, error) {
	var out []Rate
	if err := s.client.getJSON(ctx, "rates", ratesPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one rate by name, e.g. "CDI".
func (s *RateService) Get(ctx context.Context, name string) (*Rate, error) {
	var out Rate
	if err := s.client.getJSON(ctx, "rate", joinPath(ratesPath, name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
