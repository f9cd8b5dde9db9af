package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/agent/api"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/shared/models"
)

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClient_Login(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users/login", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Empty(t, r.Header.Get("Authorization"))

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice@x.com", req.Email)
		require.Equal(t, "pw", req.Password)

		writeJSON(t, w, http.StatusOK, models.LoginResponse{AccessToken: "tok"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	// завершающий слэш должен обрезаться
	c := api.NewClient(srv.URL + "/")
	resp, err := c.Login("alice@x.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok", resp.AccessToken)
}

func TestClient_Register(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users/register", func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice", req.Username)
		writeJSON(t, w, http.StatusCreated, models.RegisterResponse{ID: "u1", Email: req.Email})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := api.NewClient(srv.URL).Register("alice", "alice@x.com", "pw")
	require.NoError(t, err)
	require.Equal(t, models.RegisterResponse{ID: "u1", Email: "alice@x.com"}, resp)
}

func TestClient_Current_SendsBearer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users/current", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		// без тела Content-Type не ставим
		require.Empty(t, r.Header.Get("Content-Type"))
		writeJSON(t, w, http.StatusOK, models.CurrentUserResponse{ID: "u1", Username: "alice", Email: "alice@x.com"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	u, err := api.NewClient(srv.URL).Current("tok")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
}

func TestClient_APIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/contacts/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Title: "Forbidden", Message: "forbidden"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := api.NewClient(srv.URL).GetContact("tok", "c1")
	require.Error(t, err)
	require.True(t, api.IsStatus(err, http.StatusForbidden))
	require.False(t, api.IsStatus(err, http.StatusNotFound))
	require.EqualError(t, err, "Forbidden: forbidden")
}

// не-JSON тело ошибки — берём его текстом
func TestClient_APIError_PlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := api.NewClient(srv.URL).ListContacts("tok")
	require.EqualError(t, err, "boom")
	require.True(t, api.IsStatus(err, http.StatusBadGateway))
}

func TestClient_ContactsCRUD(t *testing.T) {
	contact := models.Contact{ID: "c1", UserID: "u1", Name: "Bob", Email: "bob@x.com", Phone: "1"}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/contacts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.Contact{contact})
	})
	mux.HandleFunc("POST /api/contacts", func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateContactRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Bob", req.Name)
		writeJSON(t, w, http.StatusCreated, contact)
	})
	mux.HandleFunc("PUT /api/contacts/{id}", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "c1", r.PathValue("id"))
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		// незаданные поля не уходят на сервер
		require.JSONEq(t, `{"phone":"2"}`, string(raw))

		updated := contact
		updated.Phone = "2"
		writeJSON(t, w, http.StatusOK, updated)
	})
	mux.HandleFunc("DELETE /api/contacts/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, contact)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL, api.WithTimeout(2*time.Second))

	list, err := c.ListContacts("tok")
	require.NoError(t, err)
	require.Len(t, list, 1)

	created, err := c.CreateContact("tok", models.CreateContactRequest{Name: "Bob", Email: "bob@x.com", Phone: "1"})
	require.NoError(t, err)
	require.Equal(t, "c1", created.ID)

	phone := "2"
	updated, err := c.UpdateContact("tok", "c1", models.UpdateContactRequest{Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, "2", updated.Phone)

	deleted, err := c.DeleteContact("tok", "c1")
	require.NoError(t, err)
	require.Equal(t, "Bob", deleted.Name)
}

func TestClient_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	var out map[string]any
	require.NoError(t, api.NewClient(srv.URL).GetJSON("/x", &out, ""))
	require.Nil(t, out)
}

func TestClient_InsecureTLS(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.Contact{})
	}))
	defer srv.Close()

	// самоподписанный сертификат без флага не проходит
	_, err := api.NewClient(srv.URL).ListContacts("tok")
	require.Error(t, err)

	list, err := api.NewClient(srv.URL, api.WithInsecureTLS()).ListContacts("tok")
	require.NoError(t, err)
	require.Empty(t, list)
}
