package ws

import (
	"encoding/json"
	"mammacheck/internal/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

func newWSFixture(t *testing.T) (*Hub, *service.AuthService, *httptest.Server) {
	t.Helper()

	hub := NewHub()
	authSvc := service.NewAuthService()
	handler := NewHandler(hub, authSvc)

	r := mux.NewRouter()
	r.HandleFunc("/v1/ws/sessions/{id}", handler.SessionWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return hub, authSvc, srv
}

func dialSession(srv *httptest.Server, sessionID, token string) (*websocket.Conn, *http.Response, error) {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws/sessions/" + sessionID
	if token != "" {
		url += "?token=" + token
	}
	return websocket.DefaultDialer.Dial(url, nil)
}

func TestSessionWSRejectsBadTokens(t *testing.T) {
	t.Parallel()

	_, authSvc, srv := newWSFixture(t)

	_, resp, err := dialSession(srv, "s_abcd1234", "")
	if err == nil {
		t.Fatal("dial without token succeeded")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status: got %v, want 401", resp)
	}

	otherToken, err := authSvc.GenerateSessionToken("s_other999")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	_, resp, err = dialSession(srv, "s_abcd1234", otherToken)
	if err == nil {
		t.Fatal("dial with mismatched token succeeded")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status: got %v, want 403", resp)
	}
}

func TestBroadcastReachesAllWatchers(t *testing.T) {
	t.Parallel()

	hub, authSvc, srv := newWSFixture(t)

	token, err := authSvc.GenerateSessionToken("s_abcd1234")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	first, _, err := dialSession(srv, "s_abcd1234", token)
	if err != nil {
		t.Fatalf("dial first: %v", err)
	}
	defer first.Close()
	second, _, err := dialSession(srv, "s_abcd1234", token)
	if err != nil {
		t.Fatalf("dial second: %v", err)
	}
	defer second.Close()

	// Registration finishes shortly after the handshake.
	time.Sleep(100 * time.Millisecond)

	hub.BroadcastToSession("s_abcd1234", string(MsgTyping), map[string]bool{"active": true})

	for i, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("watcher %d read: %v", i, err)
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("watcher %d unmarshal: %v", i, err)
		}
		if msg.Type != MsgTyping {
			t.Fatalf("watcher %d type: got %q, want %q", i, msg.Type, MsgTyping)
		}
		var payload struct {
			Active bool `json:"active"`
		}
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			t.Fatalf("watcher %d payload: %v", i, err)
		}
		if !payload.Active {
			t.Fatalf("watcher %d payload: got %s", i, msg.Payload)
		}
	}
}

func TestDisconnectSessionClosesWatchers(t *testing.T) {
	t.Parallel()

	hub, authSvc, srv := newWSFixture(t)

	token, err := authSvc.GenerateSessionToken("s_abcd1234")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	conn, _, err := dialSession(srv, "s_abcd1234", token)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	time.Sleep(100 * time.Millisecond)
	hub.DisconnectSession("s_abcd1234")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("read after disconnect succeeded")
	}
}
