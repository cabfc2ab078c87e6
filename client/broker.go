package client

import "context"

const brokersPath = "api/cvm/corretoras/v1"

// Broker is a brokerage firm registered with the CVM.
type Broker struct {
	CNPJ                   string `json:"cnpj"`
	Type                   string `json:"type"`
	NomeSocial             string `json:"nome_social"`
	NomeComercial          string `json:"nome_comercial"`
	Status                 string `json:"status"`
	Email                  string `json:"email"`
	Telefone               string `json:"telefone"`
	CEP                    string `json:"cep"`
	Pais                   string `json:"pais"`
	UF                     string `json:"uf"`
	Municipio              string `json:"municipio"`
	Bairro                 string `json:"bairro"`
	Complemento            string `json:"complemento"`
	Logradouro             string `json:"logradouro"`
	DataPatrimonioLiquido  string `json:"data_patrimonio_liquido"`
	ValorPatrimonioLiquido string `json:"valor_patrimonio_liquido"`
	CodigoCVM              string `json:"codigo_cvm"`
	DataInicioSituacao     string `json:"data_inicio_situacao"`
	DataRegistro           string `json:"data_registro"`
}

type BrokerService struct {
	client *Client
}

func NewBrokerService(c *Client) *BrokerService {
	return &BrokerService{client: c}
}

func (s *BrokerService) List(ctx context.Context) ([]Broker, error) {
	var out []Broker
	if err := s.client.getJSON(ctx, "brokers", brokersPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one broker by CNPJ.
func (s *BrokerService) Get(ctx context.Context, cnpj string) (*Broker, error) {
	var out Broker
	if err := s.client.getJSON(ctx, "broker", joinPath(brokersPath, cnpj), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
