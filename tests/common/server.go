package common

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"voicefront/internal/handler"
	"voicefront/internal/handler/api"
	"voicefront/internal/pkg/clock"
	"voicefront/internal/pkg/config"
	"voicefront/internal/pkg/dates"
	"voicefront/internal/usecase/commands"
	"voicefront/internal/usecase/queries"
	"voicefront/internal/usecase/shared"
)

// FixedNow anchors every test router to the same "today".
var FixedNow = time.Date(2025, 2, 12, 10, 0, 0, 0, time.UTC)

// NewTestRouter wires the full handler stack over the given gateway, with a
// fixed clock and the open (unguarded) test configuration.
func NewTestRouter(t *testing.T, gw shared.ReservationGateway) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	clk := clock.NewMockClock(FixedNow)
	resolver, err := dates.NewResolver(clk, cfg.Voice.Timezone)
	require.NoError(t, err)

	region := cfg.Voice.DefaultRegion
	check := queries.NewCheckBookingQuery(gw, region)
	create := commands.NewCreateBooking(gw, resolver, region)

	return handler.NewRouter(cfg, handler.Handlers{
		Health:       api.NewHealthHandler(),
		Catalog:      api.NewCatalogHandler(queries.NewCatalogQuery(gw)),
		Availability: api.NewAvailabilityHandler(queries.NewAvailabilityQuery(gw, resolver, cfg.Voice.WindowDays)),
		Booking: api.NewBookingHandler(
			create,
			commands.NewCancelBooking(gw, check, region),
			commands.NewModifyBooking(gw, check, resolver, region),
			commands.NewChangeBooking(gw, check, create, resolver, region),
			check,
		),
		Customer: api.NewCustomerHandler(queries.NewCustomerLookupQuery(gw, resolver, region)),
	})
}

// DoJSON performs a request with an optional JSON body and returns the
// recorded response.
func DoJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// DecodeVoice unmarshals a response body into the given envelope type.
func DecodeVoice[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
