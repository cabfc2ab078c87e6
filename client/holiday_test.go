package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/bodrovis/brasilapi/apierr"
	"github.com/bodrovis/brasilapi/client"
	"github.com/bodrovis/brasilapi/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoliday_GetByDate(t *testing.T) {
	up := testutils.NewUpstream(t, http.StatusOK, testutils.Fixture(t, "holidays_2022.json"))
	c := newClient(t, up.URL)

	h, err := client.NewHolidayService(c).GetByDate(context.Background(), "2022", "09", "07")
	require.NoError(t, err)
	assert.Equal(t, "2022-09-07", h.Date)
	assert.Equal(t, "Independência do Brasil", h.Name)
	assert.Equal(t, "/api/feriados/v1/2022", up.LastURI())
}

func TestHoliday_GetByDateMissIsLocalNotFound(t *testing.T) {
	up := testutils.NewUpstream(t, http.StatusOK, testutils.Fixture(t, "holidays_2022.json"))
	c := newClient(t, up.URL)

	h, err := client.NewHolidayService(c).GetByDate(context.Background(), "2022", "10", "02")
	assert.Nil(t, h)

	var apiErr *apierr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierr.KindNotFound, apiErr.Kind)
	assert.False(t, apiErr.HasStatus(), "synthesized error carries no status")
	assert.NotEmpty(t, apiErr.Message)
	assert.Len(t, up.Requests(), 1, "one upstream listing per lookup")
}

func TestHoliday_IsHoliday(t *testing.T) {
	up := testutils.NewUpstream(t, http.StatusOK, testutils.Fixture(t, "holidays_2022.json"))
	svc := client.NewHolidayService(newClient(t, up.URL))
	ctx := context.Background()

	ok, err := svc.IsHoliday(ctx, "2022", "12", "25")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsHoliday(ctx, "2022", "12", "24")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHoliday_UpstreamFailurePropagates(t *testing.T) {
	up := testutils.NewUpstream(t, http.StatusInternalServerError, `{"message":"Erro interno","type":"internal"}`)
	svc := client.NewHolidayService(newClient(t, up.URL))

	ok, err := svc.IsHoliday(context.Background(), "2022", "09", "07")
	assert.False(t, ok)
	require.Error(t, err)
	assert.Equal(t, apierr.KindInternalServerError, apierr.KindOf(err))
	assert.True(t, apierr.IsTransient(err))

	_, err = svc.GetByDate(context.Background(), "1800", "01", "01")
	assert.Equal(t, http.StatusInternalServerError, err.(*apierr.APIError).Status)
}
