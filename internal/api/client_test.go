package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.APIConfig{BaseURL: srv.URL, BasePath: "/api"})
}

func TestClient_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tasks/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "title": "Review case"}`))
	})

	var out struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, client.Get(context.Background(), "tasks/7", nil, &out))
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "Review case", out.Title)
}

func TestClient_Get_QueryParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0", r.URL.Query().Get("page"))
		assert.Equal(t, "milk", r.URL.Query().Get("search"))
		w.Write([]byte(`{}`))
	})

	query := url.Values{}
	query.Set("page", "0")
	query.Set("search", "milk")
	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "tasks", query, &out))
}

func TestClient_Post_SendsJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tasks", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 1}`))
	})

	var out struct {
		ID int64 `json:"id"`
	}
	err := client.Post(context.Background(), "tasks", map[string]string{"title": "x"}, &out)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
}

func TestClient_Delete_NoBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.Delete(context.Background(), "tasks/5"))
}

func TestClient_NonOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "Validation failed", "validationErrors": {"title": "required"}}`))
	})

	err := client.Get(context.Background(), "tasks/1", nil, &struct{}{})
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.Equal(t, "Validation failed", se.Message)
	assert.Equal(t, map[string]string{"title": "required"}, se.ValidationErrors)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	err := client.Get(context.Background(), "tasks", nil, &struct{}{})
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
	assert.Empty(t, se.Message)
}

func TestClassify_NotFound(t *testing.T) {
	// body content is irrelevant for a 404
	result := Classify(&StatusError{StatusCode: 404, Message: "whatever"})
	assert.Equal(t, KindNotFound, result.Kind)
}

func TestClassify_Validation(t *testing.T) {
	result := Classify(&StatusError{
		StatusCode:       400,
		Message:          "Validation failed",
		ValidationErrors: map[string]string{"title": "required"},
	})
	assert.Equal(t, KindValidation, result.Kind)
	assert.Equal(t, "Validation failed", result.Message)
	assert.Equal(t, map[string]string{"title": "required"}, result.Fields)
}

func TestClassify_ValidationWithoutDetail(t *testing.T) {
	result := Classify(&StatusError{StatusCode: 400})
	assert.Equal(t, KindValidation, result.Kind)
	assert.Equal(t, "Validation failed", result.Message)
	assert.Nil(t, result.Fields)
}

func TestClassify_Other(t *testing.T) {
	assert.Equal(t, KindOther, Classify(&StatusError{StatusCode: 500}).Kind)
	assert.Equal(t, KindOther, Classify(&StatusError{StatusCode: 503}).Kind)
	// no HTTP response at all (network failure, timeout)
	assert.Equal(t, KindOther, Classify(errors.New("dial tcp: connection refused")).Kind)
	assert.Equal(t, KindOther, Classify(nil).Kind)
}

func TestClassify_WrappedStatusError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), &StatusError{StatusCode: 404})
	assert.Equal(t, KindNotFound, Classify(wrapped).Kind)
}
