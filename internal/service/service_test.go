package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/impact-effects-service/internal/domain"
	"github.com/couchcryptid/impact-effects-service/internal/observability"
)

type stubCatalog struct {
	obj domain.NeoObject
	err error
}

func (s *stubCatalog) Lookup(_ context.Context, _ string) (domain.NeoObject, error) {
	return s.obj, s.err
}

type stubStore struct {
	key         string
	body        []byte
	contentType string
	saveErr     error
	pingErr     error
}

func (s *stubStore) Save(_ context.Context, key string, body []byte, contentType string) error {
	s.key, s.body, s.contentType = key, body, contentType
	return s.saveErr
}

func (s *stubStore) Ping(_ context.Context) error { return s.pingErr }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(catalog domain.NeoCatalog, store domain.RecordStore) *Service {
	return New(catalog, store, "impacts/", discardLogger(), observability.NewMetricsForTesting())
}

func TestSimulate_Defaults(t *testing.T) {
	svc := newService(nil, nil)

	resp := svc.Simulate(context.Background(), domain.SimulationRequest{})

	assert.Equal(t, domain.DefaultDiameterM, resp.Input.DiameterM)
	assert.Equal(t, domain.SimulationNotes, resp.Notes)
	assert.InEpsilon(t, 1.9634954e8, resp.Results.MassKg, 1e-6)
	assert.InEpsilon(t, 3.9269908e16, resp.Results.EnergyJoules, 1e-6)
}

func TestSimulate_EnrichmentFailureDegrades(t *testing.T) {
	svc := newService(&stubCatalog{err: domain.ErrNeoTransport}, nil)

	resp := svc.Simulate(context.Background(), domain.SimulationRequest{NeoID: "3542519"})

	// Lookup failure is not an error: the default diameter applies.
	assert.Equal(t, domain.DefaultDiameterM, resp.Input.DiameterM)
	assert.Positive(t, resp.Results.EnergyJoules)
}

func TestSimulate_EnrichmentOverwritesDiameter(t *testing.T) {
	svc := newService(&stubCatalog{obj: domain.NeoObject{MaxDiameterM: 682.4}}, nil)

	var req domain.SimulationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"diameter_m":120,"neo_id":"3542519"}`), &req))
	resp := svc.Simulate(context.Background(), req)

	assert.Equal(t, 682.4, resp.Input.DiameterM)
}

func TestStory_Envelope(t *testing.T) {
	svc := newService(nil, nil)

	body := []byte(`{"input":{"impact_lat":34.05,"impact_lon":-118.25},"results":{"tnt_megatons":9.39,"crater_diameter_m":23793,"seismic_mw_equivalent":7.88,"tsunami_initial_height_m":1.25,"tsunami_radius_km":175}}`)
	story, err := svc.Story(body)

	require.NoError(t, err)
	assert.Contains(t, story, " at (34.050, -118.250)")
	assert.Contains(t, story, "9.39 megatons")
}

// A simulate response fed straight back as bare results must still render.
func TestStory_BareResultsRoundTrip(t *testing.T) {
	svc := newService(nil, nil)

	resp := svc.Simulate(context.Background(), domain.SimulationRequest{})
	bare, err := json.Marshal(resp.Results)
	require.NoError(t, err)

	story, err := svc.Story(bare)
	require.NoError(t, err)
	assert.NotEmpty(t, story)
	assert.True(t, strings.HasPrefix(story, "Impact simulation: "))
}

func TestStory_NoCoordinatesOmitsClause(t *testing.T) {
	svc := newService(nil, nil)

	story, err := svc.Story([]byte(`{"results":{"tnt_megatons":1.0}}`))
	require.NoError(t, err)
	assert.NotContains(t, story, " at (")
}

func TestStory_MalformedBody(t *testing.T) {
	svc := newService(nil, nil)

	_, err := svc.Story([]byte(`{not json`))
	require.ErrorIs(t, err, ErrBadPayload)
}

func TestSave(t *testing.T) {
	t.Run("persists verbatim payload under generated key", func(t *testing.T) {
		store := &stubStore{}
		svc := newService(nil, store)

		payload := []byte(`{"diameter_m":120,"custom":"anything"}`)
		key, err := svc.Save(context.Background(), payload)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, "impacts/"))
		assert.True(t, strings.HasSuffix(key, ".json"))
		assert.Equal(t, key, store.key)
		assert.Equal(t, payload, store.body)
		assert.Equal(t, "application/json", store.contentType)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		store := &stubStore{}
		svc := newService(nil, store)

		_, err := svc.Save(context.Background(), []byte(`{broken`))
		require.ErrorIs(t, err, ErrBadPayload)
		assert.Empty(t, store.key)
	})

	t.Run("disabled without a store", func(t *testing.T) {
		svc := newService(nil, nil)

		_, err := svc.Save(context.Background(), []byte(`{}`))
		require.ErrorIs(t, err, ErrSavingDisabled)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		store := &stubStore{saveErr: errors.New("connection refused")}
		svc := newService(nil, store)

		_, err := svc.Save(context.Background(), []byte(`{}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestCheckReadiness(t *testing.T) {
	t.Run("ready without a store", func(t *testing.T) {
		assert.NoError(t, newService(nil, nil).CheckReadiness(context.Background()))
	})

	t.Run("pings the store when saving is enabled", func(t *testing.T) {
		store := &stubStore{pingErr: errors.New("redis down")}
		err := newService(nil, store).CheckReadiness(context.Background())
		require.Error(t, err)
	})
}
