package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggestions_MapsRandomUserResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "3", r.URL.Query().Get("results"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{
			"email":"jane@example.com",
			"name":{"first":"Jane","last":"Doe"},
			"login":{"uuid":"u-1","username":"janedoe"},
			"picture":{"medium":"https://img/jane"},
			"location":{"city":"Lisbon","country":"Portugal"}
		}]}`))
	}))
	defer srv.Close()

	svc := NewSuggestionService(testLogger())
	svc.baseURL = srv.URL

	users, err := svc.Fetch(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "u-1", users[0].ID)
	require.Equal(t, "Jane Doe", users[0].Name)
	require.Equal(t, "janedoe", users[0].Handle)
	require.Equal(t, "Lisbon, Portugal", users[0].Location)
}

func TestSuggestions_ErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewSuggestionService(testLogger())
	svc.baseURL = srv.URL

	_, err := svc.Fetch(context.Background(), 5)
	require.Error(t, err)
}
