package client

import "context"

const pixParticipantsPath = "api/pix/v1/participants"

type Participant struct {
	ISPB                   string `json:"ispb"`
	Nome                   string `json:"nome"`
	NomeReduzido           string `json:"nome_reduzido"`
	ModalidadeParticipacao string `json:"modalidade_participacao"`
	TipoParticipacao       string `json:"tipo_participacao"`
	InicioOperacao         string `json:"inicio_operacao"`
}

type PIXService struct {
	client *Client
}

func NewPIXService(c *Client) *PIXService {
	return &PIXService{client: c}
}

// Participants lists PIX participants as of the current or previous day.
func (s *PIXService) Participants(ctx context.Context) ([]Participant, error) {
	var out []Participant
	if err := s.client.getJSON(ctx, "pix participants", pixParticipantsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
