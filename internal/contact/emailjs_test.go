package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailJSClientSend(t *testing.T) {
	var got emailJSRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewEmailJSClient("pk_123")
	client.Endpoint = srv.URL

	err := client.Send(context.Background(), "service_abc", "template_xyz", Payload{
		FromName:  "Ada Lovelace",
		FromEmail: "ada@example.com",
		Message:   "Hello",
	})

	require.NoError(t, err)
	assert.Equal(t, "service_abc", got.ServiceID)
	assert.Equal(t, "template_xyz", got.TemplateID)
	assert.Equal(t, "pk_123", got.UserID)
	assert.Equal(t, "Ada Lovelace", got.TemplateParams.FromName)
	assert.Equal(t, "ada@example.com", got.TemplateParams.FromEmail)
}

func TestEmailJSClientSendNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid template", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewEmailJSClient("pk_123")
	client.Endpoint = srv.URL

	err := client.Send(context.Background(), "s", "t", Payload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid template")
}

func TestEmailJSClientSendContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewEmailJSClient("pk_123")
	client.Endpoint = srv.URL

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Send(ctx, "s", "t", Payload{})
	require.Error(t, err)
}
