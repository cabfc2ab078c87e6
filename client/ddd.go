package client

import "context"

const dddPath = "api/ddd/v1"

// DDD lists the cities served by a telephone area code.
type DDD struct {
	State  string   `json:"state"`
	Cities []string `json:"cities"`
}

type DDDService struct {
	client *Client
}

func NewDDDService(c *Client) *DDDService {
	return &DDDService{client: c}
}

func (s *DDDService) Get(ctx context.Context, ddd string) (*DDD, error) {
	var out DDD
	if err := s.client.getJSON(ctx, "ddd", joinPath(dddPath, ddd), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Exists reports whether the area code is in use.
func (s *DDDService) Exists(ctx context.Context, ddd string) (bool, error) {
	return s.client.check(ctx, joinPath(dddPath, ddd))
}
