package client

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	ibgeMunicipalitiesPath = "api/ibge/municipios/v1"
	ibgeStatesPath         = "api/ibge/uf/v1"
)

// MunicipalityProvider selects the data source for municipality listings.
type MunicipalityProvider string

const (
	ProviderDadosAbertos MunicipalityProvider = "dados-abertos-br"
	ProviderGov          MunicipalityProvider = "gov"
	ProviderWikipedia    MunicipalityProvider = "wikipedia"
)

type Municipality struct {
	Nome       string `json:"nome"`
	CodigoIBGE string `json:"codigo_ibge"`
}

type State struct {
	ID     int    `json:"id"`
	Sigla  string `json:"sigla"`
	Nome   string `json:"nome"`
	Regiao Region `json:"regiao"`
}

type Region struct {
	ID    int    `json:"id"`
	Sigla string `json:"sigla"`
	Nome  string `json:"nome"`
}

type IBGEService struct {
	client *Client
}

func NewIBGEService(c *Client) *IBGEService {
	return &IBGEService{client: c}
}

// Municipalities lists the municipalities of a state (UF such as "SP").
// With no providers the upstream picks its own.
func (s *IBGEService) Municipalities(ctx context.Context, uf string, providers ...MunicipalityProvider) ([]Municipality, error) {
	var out []Municipality
	path := joinPath(ibgeMunicipalitiesPath, uf)
	if err := s.client.getJSON(ctx, "municipalities", path, providersQuery(providers), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MunicipalitiesByStates runs one Municipalities call per UF concurrently
// and returns the results keyed by UF. The first failure cancels the rest.
func (s *IBGEService) MunicipalitiesByStates(ctx context.Context, ufs []string, providers ...MunicipalityProvider) (map[string][]Municipality, error) {
	result := make(map[string][]Municipality, len(ufs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, uf := range ufs {
		g.Go(func() error {
			list, err := s.Municipalities(ctx, uf, providers...)
			if err != nil {
				return err
			}
			mu.Lock()
			result[uf] = list
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *IBGEService) States(ctx context.Context) ([]State, error) {
	var out []State
	if err := s.client.getJSON(ctx, "states", ibgeStatesPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// State looks up a state by abbreviation ("SP") or IBGE code ("35").
func (s *IBGEService) State(ctx context.Context, code string) (*State, error) {
	var out State
	if err := s.client.getJSON(ctx, "state", joinPath(ibgeStatesPath, code), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func providersQuery[P ~string](providers []P) url.Values {
	if len(providers) == 0 {
		return nil
	}
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, string(p))
	}
	return url.Values{"providers": {strings.Join(names, ",")}}
}
