package records

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-adoption/internal/contracts"
	"pet-adoption/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAdoption_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/adoptions", r.URL.Path)

		var in contracts.CreateAdoptionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, int64(1), in.AnimalID)
		assert.Equal(t, "Musti", in.AnimalName)

		_ = json.NewEncoder(w).Encode(contracts.CreateAdoptionResponse{
			Success:     true,
			AdoptionID:  1,
			AnimalName:  in.AnimalName,
			AdopterName: in.AdopterName,
		})
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := c.RecordAdoption(context.Background(), contracts.CreateAdoptionRequest{
		AnimalID:     1,
		AnimalName:   "Musti",
		AdopterName:  "Ada",
		AdopterEmail: "ada@example.com",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(1), resp.AdoptionID)
}

func TestRecordAdoption_RejectedOn400(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"error":"This animal has already been adopted"}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.RecordAdoption(context.Background(), contracts.CreateAdoptionRequest{AnimalID: 1})
	require.ErrorIs(t, err, animals.ErrRecordRejected)
	assert.Contains(t, err.Error(), "already been adopted")
}

func TestRecordAdoption_UpstreamFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"db locked"}`))
	}))

	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.RecordAdoption(context.Background(), contracts.CreateAdoptionRequest{AnimalID: 1})
	assert.ErrorIs(t, err, animals.ErrUpstream)
	assert.NotErrorIs(t, err, animals.ErrRecordRejected)

	// servicio caído
	srv.Close()
	_, err = c.RecordAdoption(context.Background(), contracts.CreateAdoptionRequest{AnimalID: 1})
	assert.ErrorIs(t, err, animals.ErrUpstream)
}

func TestRecordAdoption_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.RecordAdoption(context.Background(), contracts.CreateAdoptionRequest{AnimalID: 1})
	assert.ErrorIs(t, err, animals.ErrUpstream)
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}
