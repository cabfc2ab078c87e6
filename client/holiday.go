package client

import "context"

const (
	holidaysPath       = "api/feriados/v1"
	holidayNotFoundMsg = "no national holiday on the requested date"
)

// Holiday is a national holiday. Date is formatted YYYY-MM-DD.
type Holiday struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	FullName string `json:"full_name,omitempty"`
}

type HolidayService struct {
	client *Client
}

func NewHolidayService(c *Client) *HolidayService {
	return &HolidayService{client: c}
}

// List returns the national holidays of a year, including movable ones.
func (s *HolidayService) List(ctx context.Context, year string) ([]Holiday, error) {
	var out []Holiday
	if err := s.client.getJSON(ctx, "holidays", joinPath(holidaysPath, year), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByDate fetches the year's listing and returns the holiday on
// year-month-day. month and day are zero-padded ("09", "07"). When nothing
// matches, the error is a NotFound built locally.
func (s *HolidayService) GetByDate(ctx context.Context, year, month, day string) (*Holiday, error) {
	holidays, err := s.List(ctx, year)
	if err != nil {
		return nil, err
	}

	date := year + "-" + month + "-" + day
	h, err := findFirst(holidays, func(h Holiday) bool { return h.Date == date }, holidayNotFoundMsg)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// IsHoliday is GetByDate collapsed to a boolean.
func (s *HolidayService) IsHoliday(ctx context.Context, year, month, day string) (bool, error) {
	_, err := s.GetByDate(ctx, year, month, day)
	return exists(err)
}
