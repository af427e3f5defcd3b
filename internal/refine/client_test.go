package refine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldlog/fieldlog/constants"
	"github.com/fieldlog/fieldlog/internal/common"
	"github.com/fieldlog/fieldlog/internal/entity"
)

func captureReport() *entity.Report {
	return &entity.Report{
		ID:          uuid.New(),
		ProjectID:   uuid.New(),
		ReportDate:  "2026-03-14",
		Status:      constants.StatusDraft,
		CaptureMode: constants.CaptureFreeform,
		FieldNotes: []entity.Entry{
			{LocalID: "e1", Text: "poured footings, crane on site"},
		},
	}
}

func newTestClient(url string, timeout time.Duration) *Client {
	return NewClient(Config{WebhookURL: url, Timeout: timeout}, nil)
}

func TestRefineModernResponse(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"captureMode": "guided",
			"originalInput": map[string]any{
				"weather": map[string]any{"highTemp": "54", "lowTemp": "38", "general": "overcast"},
			},
			"refinedReport": map[string]any{
				"work_summary": "Footings poured for gridlines A-D.",
			},
		})
	}))
	defer srv.Close()

	rep := captureReport()
	res, err := newTestClient(srv.URL, time.Second).Refine(context.Background(), rep)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, "Footings poured for gridlines A-D.", res.AIGenerated["work_summary"])
	assert.Equal(t, constants.CaptureGuided, res.CaptureMode)
	require.NotNil(t, res.OriginalInput)
	assert.Equal(t, "54", res.OriginalInput.Weather.HighTemp)

	// The request carried the capture payload.
	assert.Equal(t, rep.ID.String(), gotBody["reportId"])
	assert.Equal(t, "freeform", gotBody["captureMode"])
}

func TestRefineLegacyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"aiGenerated": map[string]any{"summary": "legacy wording"},
		})
	}))
	defer srv.Close()

	rep := captureReport()
	res, err := newTestClient(srv.URL, time.Second).Refine(context.Background(), rep)
	require.NoError(t, err)

	assert.Equal(t, "legacy wording", res.AIGenerated["summary"])
	// Legacy shape never moves the snapshot or the mode.
	assert.Nil(t, res.OriginalInput)
	assert.Empty(t, res.CaptureMode)
}

func TestRefineTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, 50*time.Millisecond).Refine(context.Background(), captureReport())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrTimeout)
}

func TestRefineConnectionFailureIsOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refused from here on

	_, err := newTestClient(srv.URL, time.Second).Refine(context.Background(), captureReport())
	require.Error(t, err)
	assert.True(t, common.IsOffline(err))
}

func TestRefineNon2xxIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, time.Second).Refine(context.Background(), captureReport())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrRemoteRejected)
}

func TestRefineMalformedResponseIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected": true}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, time.Second).Refine(context.Background(), captureReport())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrRemoteRejected)
}

func TestAdaptResponseModernFailureFlag(t *testing.T) {
	_, err := adaptResponse([]byte(`{"success": false, "refinedReport": {"a": 1}}`))
	require.Error(t, err)
}

func TestApplyMergesResult(t *testing.T) {
	rep := captureReport()
	oi := &entity.OriginalInput{Weather: &entity.Weather{HighTemp: "54"}}
	Apply(rep, &Result{
		AIGenerated:   map[string]any{"work_summary": "refined"},
		OriginalInput: oi,
		CaptureMode:   constants.CaptureGuided,
	})
	assert.Equal(t, "refined", rep.AIGenerated["work_summary"])
	assert.Same(t, oi, rep.OriginalInput)
	assert.Equal(t, constants.CaptureGuided, rep.CaptureMode)
}

func TestApplyLegacyKeepsSnapshotAndMode(t *testing.T) {
	rep := captureReport()
	existing := &entity.OriginalInput{Weather: &entity.Weather{HighTemp: "60"}}
	rep.OriginalInput = existing

	Apply(rep, &Result{AIGenerated: map[string]any{"summary": "legacy"}})
	assert.Same(t, existing, rep.OriginalInput)
	assert.Equal(t, constants.CaptureFreeform, rep.CaptureMode)
}

func TestValidateResponseShapes(t *testing.T) {
	assert.NoError(t, validateResponse([]byte(`{"success":true,"refinedReport":{}}`)))
	assert.NoError(t, validateResponse([]byte(`{"aiGenerated":{}}`)))
	assert.Error(t, validateResponse([]byte(`{"unexpected":true}`)))
	assert.Error(t, validateResponse([]byte(`not json`)))
	assert.Error(t, validateResponse([]byte(`{"refinedReport":"not an object"}`)))
}
