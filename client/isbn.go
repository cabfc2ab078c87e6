package client

import "context"

const isbnPath = "api/isbn/v1"

// BookProvider is one of the catalogs BrasilAPI queries for ISBNs.
type BookProvider string

const (
	BookProviderCBL              BookProvider = "cbl"
	BookProviderMercadoEditorial BookProvider = "mercado-editorial"
	BookProviderOpenLibrary      BookProvider = "open-library"
	BookProviderGoogleBooks      BookProvider = "google-books"
)

type Unit string

const (
	UnitCentimeter Unit = "CENTIMETER"
	UnitInch       Unit = "INCH"
)

type Format string

const (
	FormatPhysical Format = "PHYSICAL"
	FormatDigital  Format = "DIGITAL"
)

// Book is the ISBN lookup result. Optional fields stay at their zero value
// when the provider did not report them.
type Book struct {
	ISBN        string       `json:"isbn"`
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	Authors     []string     `json:"authors"`
	Publisher   string       `json:"publisher"`
	Synopsis    string       `json:"synopsis"`
	Dimensions  *Dimensions  `json:"dimensions"`
	Year        int          `json:"year"`
	Format      Format       `json:"format"`
	PageCount   int          `json:"page_count"`
	Subjects    []string     `json:"subjects"`
	Location    string       `json:"location"`
	RetailPrice *RetailPrice `json:"retail_price"`
	CoverURL    string       `json:"cover_url"`
	Provider    BookProvider `json:"provider"`
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   Unit    `json:"unit"`
}

type RetailPrice struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

type ISBNService struct {
	client *Client
}

func NewISBNService(c *Client) *ISBNService {
	return &ISBNService{client: c}
}

// Get looks up a 10 or 13 digit ISBN. providers restricts the catalogs
// queried; none means all of them.
func (s *ISBNService) Get(ctx context.Context, isbn string, providers ...BookProvider) (*Book, error) {
	var out Book
	path := joinPath(isbnPath, isbn)
	if err := s.client.getJSON(ctx, "isbn", path, providersQuery(providers), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Validate reports whether any catalog knows the ISBN.
func (s *ISBNService) Validate(ctx context.Context, isbn string) (bool, error) {
	return s.client.check(ctx, joinPath(isbnPath, isbn))
}
