package client

import (
	"context"
	"strconv"
)

const banksPath = "api/banks/v1"

// Bank is one institution from the BACEN STR participant list. Code is nil
// for institutions without a COMPE code.
type Bank struct {
	ISPB     string `json:"ispb"`
	Name     string `json:"name"`
	Code     *int   `json:"code"`
	FullName string `json:"fullName"`
}

type BankService struct {
	client *Client
}

func NewBankService(c *Client) *BankService {
	return &BankService{client: c}
}

// List returns every bank known to the upstream.
func (s *BankService) List(ctx context.Context) ([]Bank, error) {
	var banks []Bank
	if err := s.client.getJSON(ctx, "banks", banksPath, nil, &banks); err != nil {
		return nil, err
	}
	return banks, nil
}

// Get looks up a bank by its COMPE code.
func (s *BankService) Get(ctx context.Context, code int) (*Bank, error) {
	var bank Bank
	path := joinPath(banksPath, strconv.Itoa(code))
	if err := s.client.getJSON(ctx, "bank", path, nil, &bank); err != nil {
		return nil, err
	}
	return &bank, nil
}
