package predictor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSuggest_Success(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PredictPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{
			Status:      StatusSuccess,
			Data:        []Suggestion{{ID: "1", Name: "Sofa", X: 2, Y: 3, Width: Size(2.6), Height: Size(1), Zone: "wall"}},
			TotalPlaced: 1,
			RoomType:    got.RoomType,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/")
	resp, err := c.Suggest(context.Background(), Request{
		Items:    []model.CatalogEntry{{ID: "1", Name: "Sofa", Width: 260, Depth: 100}},
		RoomType: model.RoomLiving,
	})

	require.NoError(t, err)
	assert.Equal(t, model.RoomLiving, got.RoomType)
	require.Len(t, got.Items, 1)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "wall", resp.Data[0].Zone)
	assert.InDelta(t, 2.6, *resp.Data[0].Width, 1e-9)
}

func TestClientSuggest_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{Status: StatusError, Message: "model not loaded"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Suggest(context.Background(), Request{})

	var pe *model.PredictorUnavailableError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "model not loaded", pe.Reason)
}

func TestClientSuggest_HTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Suggest(context.Background(), Request{})

	var pe *model.PredictorUnavailableError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Error(), "HTTP 500")
}

func TestClientSuggest_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Suggest(context.Background(), Request{})

	var pe *model.PredictorUnavailableError
	assert.True(t, errors.As(err, &pe))
}

func TestClientSuggest_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Suggest(context.Background(), Request{})

	var pe *model.PredictorUnavailableError
	require.True(t, errors.As(err, &pe))
	assert.NotNil(t, errors.Unwrap(pe))
}

func TestClientSuggest_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := NewClient(srv.URL).Suggest(ctx, Request{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
