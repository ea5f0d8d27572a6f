package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/linskybing/form-console/internal/domain/form"
	"github.com/linskybing/form-console/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLoginKeepsToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@example.com", body.Email)
		writeJSON(w, http.StatusOK, map[string]any{
			"token": "tok", "account_id": "acc-1", "email": body.Email, "is_admin": true,
		})
	})
	mux.HandleFunc("/auth/status", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "valid", "account_id": "acc-1", "email": "admin@example.com", "is_admin": true,
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL+"/", "")
	id, err := c.Login(context.Background(), "admin@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, Identity{AccountID: "acc-1", Email: "admin@example.com", IsAdmin: true}, id)
	assert.Equal(t, "tok", c.Token())

	status, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id, status)
}

func TestStatusWithoutToken(t *testing.T) {
	c := New("http://127.0.0.1:0", "")
	_, err := c.Status(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestAPIErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "account is not registered as an administrator"})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.ListForms(context.Background())
	require.Error(t, err)
	assert.Equal(t, "account is not registered as an administrator", err.Error())
	assert.True(t, IsStatus(err, http.StatusForbidden))
	assert.False(t, IsStatus(err, http.StatusNotFound))
}

func TestAPIErrorPlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(srv.URL, "tok").DeleteForm(context.Background(), "f1")
	require.Error(t, err)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), err.Error())
}

func TestFormRoundTrips(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /forms", func(w http.ResponseWriter, r *http.Request) {
		var in form.CreateFormDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(w, http.StatusCreated, form.Form{ID: "f1", Title: in.Title})
	})
	mux.HandleFunc("DELETE /forms/f1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /forms/f1/questions", func(w http.ResponseWriter, r *http.Request) {
		var in form.CreateQuestionDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		writeJSON(w, http.StatusCreated, form.Question{ID: "q1", FormID: "f1", Title: in.Title, Type: in.Type})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL, "tok")
	ctx := context.Background()

	f, err := c.CreateForm(ctx, form.CreateFormDTO{Title: "Survey"})
	require.NoError(t, err)
	assert.Equal(t, "f1", f.ID)

	q, err := c.AddQuestion(ctx, "f1", form.CreateQuestionDTO{Title: "Q1", Type: form.QuestionShortAnswer})
	require.NoError(t, err)
	assert.Equal(t, "Q1", q.Title)
	assert.Nil(t, q.Options)

	require.NoError(t, c.DeleteForm(ctx, "f1"))
}

func TestLogoutDropsTokenOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "boom"})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	assert.EqualError(t, c.Logout(context.Background()), "boom")
	assert.Empty(t, c.Token())
	assert.NoError(t, c.Logout(context.Background()))
}

func TestWatchSession(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Token expired"})
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.WriteJSON(session.Event{Type: session.EventSnapshot, AccountID: "acc-1"})
		_ = conn.WriteJSON(session.Event{Type: session.EventSignedOut, AccountID: "acc-1"})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	_, _, err := New(srv.URL, "bad").WatchSession(context.Background())
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))

	events, stop, err := New(srv.URL, "tok").WatchSession(context.Background())
	require.NoError(t, err)

	var got []session.EventType
	for len(got) < 2 {
		select {
		case e := <-events:
			got = append(got, e.Type)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for session events")
		}
	}
	assert.Equal(t, []session.EventType{session.EventSnapshot, session.EventSignedOut}, got)

	stop()
	stop()
	_, open := <-events
	assert.False(t, open)
}

func TestWSURL(t *testing.T) {
	assert.Equal(t, "ws://localhost:8080", wsURL("http://localhost:8080"))
	assert.Equal(t, "wss://forms.example.com", wsURL("https://forms.example.com"))
}
