package client

import (
	"context"
	"net/url"
)

const ncmPath = "api/ncm/v1"

// NCM is a Mercosur common nomenclature entry.
type NCM struct {
	Codigo     string `json:"codigo"`
	Descricao  string `json:"descricao"`
	DataInicio string `json:"data_inicio"`
	DataFim    string `json:"data_fim"`
	TipoAto    string `json:"tipo_ato"`
	NumeroAto  string `json:"numero_ato"`
	AnoAto     string `json:"ano_ato"`
}

type NCMService struct {
	client *Client
}

func NewNCMService(c *Client) *NCMService {
	return &NCMService{client: c}
}

func (s *NCMService) List(ctx context.Context) ([]NCM, error) {
	var out []NCM
	if err := s.client.getJSON(ctx, "ncm list", ncmPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *NCMService) Get(ctx context.Context, code string) (*NCM, error) {
	var out NCM
	if err := s.client.getJSON(ctx, "ncm", joinPath(ncmPath, code), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search matches codes or descriptions containing the given text.
func (s *NCMService) Search(ctx context.Context, description string) ([]NCM, error) {
	var out []NCM
	q := url.Values{"search": {description}}
	if err := s.client.getJSON(ctx, "ncm search", ncmPath, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
