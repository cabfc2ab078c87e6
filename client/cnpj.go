package client

import "context"

const cnpjPath = "api/cnpj/v1"

// CNPJ is a company record from the Receita Federal open data, as served by
// Minha Receita. Missing values decode to zero values.
type CNPJ struct {
	CNPJ                       string    `json:"cnpj"`
	IdentificadorMatrizFilial  int       `json:"identificador_matriz_filial"`
	DescricaoMatrizFilial      string    `json:"descricao_matriz_filial"`
	RazaoSocial                string    `json:"razao_social"`
	NomeFantasia               string    `json:"nome_fantasia"`
	SituacaoCadastral          int       `json:"situacao_cadastral"`
	DescricaoSituacaoCadastral string    `json:"descricao_situacao_cadastral"`
	DataSituacaoCadastral      string    `json:"data_situacao_cadastral"`
	MotivoSituacaoCadastral    int       `json:"motivo_situacao_cadastral"`
	NomeCidadeExterior         string    `json:"nome_cidade_exterior"`
	CodigoNaturezaJuridica     int       `json:"codigo_natureza_juridica"`
	DataInicioAtividade        string    `json:"data_inicio_atividade"`
	CNAEFiscal                 int       `json:"cnae_fiscal"`
	CNAEFiscalDescricao        string    `json:"cnae_fiscal_descricao"`
	DescricaoTipoLogradouro    string    `json:"descricao_tipo_logradouro"`
	Logradouro                 string    `json:"logradouro"`
	Numero                     string    `json:"numero"`
	Complemento                string    `json:"complemento"`
	Bairro                     string    `json:"bairro"`
	CEP                        string    `json:"cep"`
	UF                         string    `json:"uf"`
	CodigoMunicipio            int       `json:"codigo_municipio"`
	Municipio                  string    `json:"municipio"`
	DDDTelefone1               string    `json:"ddd_telefone_1"`
	DDDTelefone2               string    `json:"ddd_telefone_2"`
	DDDFax                     string    `json:"ddd_fax"`
	QualificacaoDoResponsavel  int       `json:"qualificacao_do_responsavel"`
	CapitalSocial              float64   `json:"capital_social"`
	Porte                      string    `json:"porte"`
	DescricaoPorte             string    `json:"descricao_porte"`
	OpcaoPeloSimples           *bool     `json:"opcao_pelo_simples"`
	DataOpcaoPeloSimples       string    `json:"data_opcao_pelo_simples"`
	DataExclusaoDoSimples      string    `json:"data_exclusao_do_simples"`
	OpcaoPeloMEI               *bool     `json:"opcao_pelo_mei"`
	SituacaoEspecial           string    `json:"situacao_especial"`
	DataSituacaoEspecial       string    `json:"data_situacao_especial"`
	CNAESecundarios            []CNAE    `json:"cnaes_secundarios"`
	QSA                        []Partner `json:"qsa"`
}

type CNAE struct {
	Codigo    int    `json:"codigo"`
	Descricao string `json:"descricao"`
}

// Partner is one QSA (quadro de sócios e administradores) entry.
type Partner struct {
	IdentificadorDeSocio                 int     `json:"identificador_de_socio"`
	NomeSocio                            string  `json:"nome_socio"`
	CNPJCPFDoSocio                       string  `json:"cnpj_cpf_do_socio"`
	CodigoQualificacaoSocio              int     `json:"codigo_qualificacao_socio"`
	PercentualCapitalSocial              float64 `json:"percentual_capital_social"`
	DataEntradaSociedade                 string  `json:"data_entrada_sociedade"`
	CPFRepresentanteLegal                string  `json:"cpf_representante_legal"`
	NomeRepresentanteLegal               string  `json:"nome_representante_legal"`
	CodigoQualificacaoRepresentanteLegal int     `json:"codigo_qualificacao_representante_legal"`
}

type CNPJService struct {
	client *Client
}

func NewCNPJService(c *Client) *CNPJService {
	return &CNPJService{client: c}
}

// Get fetches a company by its 14-digit CNPJ.
func (s *CNPJService) Get(ctx context.Context, cnpj string) (*CNPJ, error) {
	var out CNPJ
	if err := s.client.getJSON(ctx, "cnpj", joinPath(cnpjPath, cnpj), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
