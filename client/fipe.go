package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const (
	fipeBrandsPath = "api/fipe/marcas/v1"
	fipePricesPath = "api/fipe/preco/v1"
	fipeTablesPath = "api/fipe/tabelas/v1"
)

// VehicleType is the FIPE vehicle category used in brand listings.
type VehicleType string

const (
	VehicleCar        VehicleType = "carros"
	VehicleMotorcycle VehicleType = "motos"
	VehicleTruck      VehicleType = "caminhoes"
)

type Brand struct {
	Nome  string `json:"nome"`
	Valor string `json:"valor"`
}

// Vehicle is one FIPE price entry for a model year.
type Vehicle struct {
	Valor            string `json:"valor"`
	Marca            string `json:"marca"`
	Modelo           string `json:"modelo"`
	AnoModelo        int    `json:"anoModelo"`
	Combustivel      string `json:"combustivel"`
	CodigoFipe       string `json:"codigoFipe"`
	MesReferencia    string `json:"mesReferencia"`
	TipoVeiculo      int    `json:"tipoVeiculo"`
	SiglaCombustivel string `json:"siglaCombustivel"`
	DataConsulta     string `json:"dataConsulta"`
}

// ReferenceTable identifies a monthly FIPE table.
type ReferenceTable struct {
	Codigo int    `json:"codigo"`
	Mes    string `json:"mes"`
}

type FIPEService struct {
	client *Client
}

func NewFIPEService(c *Client) *FIPEService {
	return &FIPEService{client: c}
}

// Brands lists vehicle brands of a type. table selects a reference table;
// 0 means the current one.
func (s *FIPEService) Brands(ctx context.Context, vt VehicleType, table int) ([]Brand, error) {
	switch vt {
	case VehicleCar, VehicleMotorcycle, VehicleTruck:
	default:
		return nil, fmt.Errorf("fipe brands: unknown vehicle type %q", vt)
	}

	var out []Brand
	path := joinPath(fipeBrandsPath, string(vt))
	if err := s.client.getJSON(ctx, "fipe brands", path, tableQuery(table), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Prices returns the price history of a vehicle by FIPE code, one entry per
// model year. table works as in Brands.
func (s *FIPEService) Prices(ctx context.Context, fipeCode string, table int) ([]Vehicle, error) {
	var out []Vehicle
	path := joinPath(fipePricesPath, fipeCode)
	if err := s.client.getJSON(ctx, "fipe prices", path, tableQuery(table), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FIPEService) ReferenceTables(ctx context.Context) ([]ReferenceTable, error) {
	var out []ReferenceTable
	if err := s.client.getJSON(ctx, "fipe reference tables", fipeTablesPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func tableQuery(table int) url.Values {
	if table <= 0 {
		return nil
	}
	return url.Values{"tabela_referencia": {strconv.Itoa(table)}}
}
