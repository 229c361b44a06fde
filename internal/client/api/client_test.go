package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeenkov/huddle/internal/client/identity"
	"github.com/avdeenkov/huddle/internal/client/session"
	"github.com/avdeenkov/huddle/internal/client/storage"
	pkgapi "github.com/avdeenkov/huddle/pkg/api"
)

// fakeStorage implements storage.SessionStorage for testing
type fakeStorage struct {
	session storage.Session
}

func (f *fakeStorage) Load(ctx context.Context) (*storage.Session, error) {
	s := f.session
	return &s, nil
}

func (f *fakeStorage) Save(ctx context.Context, s *storage.Session) error {
	f.session = *s
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context) error {
	f.session = storage.Session{}
	return nil
}

func (f *fakeStorage) ClientID(ctx context.Context) (string, error) {
	return "client-1", nil
}

func newSessions(t *testing.T, stored storage.Session) *session.Manager {
	t.Helper()

	m, err := session.New(context.Background(), &fakeStorage{session: stored})
	require.NoError(t, err)
	return m
}

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8000", newSessions(t, storage.Session{}))

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8000", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		// login не авторизован, но client id всегда уходит на сервер
		assert.Equal(t, "client-1", r.Header.Get("X-Client-Id"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req pkgapi.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ipetrov", req.Login)
		assert.Equal(t, "secret-pass", req.Password)

		_ = json.NewEncoder(w).Encode(pkgapi.AuthResponse{
			AccessToken: "t1",
			User:        pkgapi.User{ID: 42, Login: "ipetrov"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, newSessions(t, storage.Session{}))

	resp, err := client.Login(context.Background(), pkgapi.LoginRequest{
		Login:    "ipetrov",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "t1", resp.AccessToken)
	assert.Equal(t, int64(42), resp.User.ID)
}

func TestClient_Login_ServerError(t *testing.T) {
	tests := []struct {
		responseBody   any
		name           string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:           "Invalid credentials",
			statusCode:     http.StatusBadRequest,
			responseBody:   pkgapi.ErrorResponse{Message: "invalid credentials"},
			expectedErrMsg: "server error (400): invalid credentials",
		},
		{
			name:           "Internal server error",
			statusCode:     http.StatusInternalServerError,
			responseBody:   "Internal Server Error",
			expectedErrMsg: "request failed with status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if errResp, ok := tt.responseBody.(pkgapi.ErrorResponse); ok {
					_ = json.NewEncoder(w).Encode(errResp)
				} else {
					_, _ = w.Write([]byte(tt.responseBody.(string)))
				}
			}))
			defer server.Close()

			client := NewClient(server.URL, newSessions(t, storage.Session{}))

			_, err := client.Login(context.Background(), pkgapi.LoginRequest{Login: "ipetrov", Password: "x"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
		})
	}
}

func TestClient_AuthorizedRequest_CarriesBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/users/42", r.URL.Path)
		assert.Equal(t, "Bearer abc.def.ghi", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(pkgapi.User{ID: 42, Login: "ipetrov"})
	}))
	defer server.Close()

	client := NewClient(server.URL, newSessions(t, storage.Session{Token: "abc.def.ghi"}))

	user, err := client.GetUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
}

func TestClient_AuthorizedRequest_FailsFastWithoutToken(t *testing.T) {
	// Сервер считает обращения: без токена запрос обязан оборваться локально
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	client := NewClient(server.URL, newSessions(t, storage.Session{}))

	_, err := client.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, identity.ErrNotAuthenticated)
	assert.Zero(t, hits)
}

func TestClient_AuthorizedRequest_Unauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := NewClient(server.URL, newSessions(t, storage.Session{Token: "abc.def.ghi"}))

		_, err := client.GetUser(context.Background(), 42)
		assert.ErrorIs(t, err, ErrUnauthorized, "status %d", status)

		server.Close()
	}
}

func TestClient_JoinedEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/event-members/user/7", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]pkgapi.Event{
			{ID: 1, Title: "Go meetup", Date: "2026-09-01", Time: "19:00", Visibility: pkgapi.VisibilityEveryone},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, newSessions(t, storage.Session{Token: "abc.def.ghi"}))

	events, err := client.JoinedEvents(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Go meetup", events[0].Title)
}

func TestClient_UpdateUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/users/42", r.URL.Path)

		var req pkgapi.UpdateUserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hiking and go", req.Description)

		_ = json.NewEncoder(w).Encode(pkgapi.User{ID: 42, Login: "ipetrov", Description: req.Description})
	}))
	defer server.Close()

	client := NewClient(server.URL, newSessions(t, storage.Session{Token: "abc.def.ghi"}))

	user, err := client.UpdateUser(context.Background(), 42, pkgapi.UpdateUserRequest{Description: "hiking and go"})
	require.NoError(t, err)
	assert.Equal(t, "hiking and go", user.Description)
}

func TestClient_ListUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]pkgapi.User{{ID: 1}, {ID: 2}})
	}))
	defer server.Close()

	client := NewClient(server.URL, newSessions(t, storage.Session{Token: "abc.def.ghi"}))

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestClient_GroupsByOwner(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/groups/7/owner", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]pkgapi.Group{{ID: 3, Name: "board games", CreatorUserID: 7}})
	}))
	defer server.Close()

	client := NewClient(server.URL, newSessions(t, storage.Session{Token: "abc.def.ghi"}))

	groups, err := client.GroupsByOwner(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, int64(7), groups[0].CreatorUserID)
}

func TestClient_UpdateGroup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/groups/3", r.URL.Path)
		_ = json.NewEncoder(w).Encode(pkgapi.Group{ID: 3, Name: "board games v2"})
	}))
	defer server.Close()

	client := NewClient(server.URL, newSessions(t, storage.Session{Token: "abc.def.ghi"}))

	group, err := client.UpdateGroup(context.Background(), 3, pkgapi.CreateGroupRequest{Name: "board games v2"})
	require.NoError(t, err)
	assert.Equal(t, "board games v2", group.Name)
}

func TestClient_UpdateEvent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/events/5", r.URL.Path)

		var req pkgapi.EventRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, pkgapi.OwnerTypeUser, req.OwnerType)

		_ = json.NewEncoder(w).Encode(pkgapi.Event{ID: 5, Title: req.Title})
	}))
	defer server.Close()

	client := NewClient(server.URL, newSessions(t, storage.Session{Token: "abc.def.ghi"}))

	event, err := client.UpdateEvent(context.Background(), 5, pkgapi.EventRequest{
		Title:     "Go meetup (moved)",
		OwnerID:   7,
		OwnerType: pkgapi.OwnerTypeUser,
	})
	require.NoError(t, err)
	assert.Equal(t, "Go meetup (moved)", event.Title)
}

func TestClient_SendFriendRequest_DefaultsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/friends/requests", r.URL.Path)

		var req pkgapi.FriendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "PENDING", req.Status)

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, newSessions(t, storage.Session{Token: "abc.def.ghi"}))

	err := client.SendFriendRequest(context.Background(), pkgapi.FriendRequest{UserID: 7, FriendID: 9})
	require.NoError(t, err)
}

func TestClient_SearchUsers_EscapesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/search", r.URL.Path)
		assert.Equal(t, "ivan petrov", r.URL.Query().Get("query"))

		_ = json.NewEncoder(w).Encode([]pkgapi.User{})
	}))
	defer server.Close()

	client := NewClient(server.URL, newSessions(t, storage.Session{Token: "abc.def.ghi"}))

	_, err := client.SearchUsers(context.Background(), "ivan petrov")
	require.NoError(t, err)
}
