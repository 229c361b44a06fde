package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeenkov/huddle/internal/client/storage"
	"github.com/avdeenkov/huddle/pkg/api"
)

// fakeStorage implements storage.SessionStorage for testing
type fakeStorage struct {
	session   storage.Session
	loadCalls int
	saveErr   error
	deleteErr error
}

func (f *fakeStorage) Load(ctx context.Context) (*storage.Session, error) {
	f.loadCalls++
	s := f.session
	return &s, nil
}

func (f *fakeStorage) Save(ctx context.Context, s *storage.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.session = *s
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.session = storage.Session{}
	return nil
}

func (f *fakeStorage) ClientID(ctx context.Context) (string, error) {
	return "client-1", nil
}

func testUser() *api.User {
	return &api.User{ID: 42, Login: "ipetrov", Name: "Ivan", Surname: "Petrov"}
}

func TestManager_LoadsOnceAtCreation(t *testing.T) {
	ctx := context.Background()
	store := &fakeStorage{session: storage.Session{Token: "abc.def.ghi", User: testUser()}}

	m, err := New(ctx, store)
	require.NoError(t, err)

	assert.Equal(t, "abc.def.ghi", m.Token())
	require.NotNil(t, m.User())
	assert.Equal(t, int64(42), m.User().ID)
	assert.Equal(t, "client-1", m.ClientID())

	// Повторные чтения не трогают хранилище
	_ = m.Token()
	_ = m.User()
	assert.Equal(t, 1, store.loadCalls)
}

func TestManager_SetSession_WriteThrough(t *testing.T) {
	ctx := context.Background()
	store := &fakeStorage{}

	m, err := New(ctx, store)
	require.NoError(t, err)

	require.NoError(t, m.SetSession(ctx, "abc.def.ghi", testUser()))

	// Мутация синхронно отражена в хранилище
	assert.Equal(t, "abc.def.ghi", store.session.Token)
	require.NotNil(t, store.session.User)
	assert.Equal(t, int64(42), store.session.User.ID)
}

func TestManager_SetSession_StorageErrorKeepsMemory(t *testing.T) {
	ctx := context.Background()
	store := &fakeStorage{session: storage.Session{Token: "old.token.sig", User: testUser()}}

	m, err := New(ctx, store)
	require.NoError(t, err)

	gen := m.Generation()
	store.saveErr = errors.New("disk full")

	err = m.SetSession(ctx, "new.token.sig", nil)
	require.Error(t, err)

	// Память не изменилась: сессия осталась прежней
	assert.Equal(t, "old.token.sig", m.Token())
	assert.NotNil(t, m.User())
	assert.Equal(t, gen, m.Generation())
}

func TestManager_Clear(t *testing.T) {
	ctx := context.Background()
	store := &fakeStorage{session: storage.Session{Token: "abc.def.ghi", User: testUser()}}

	m, err := New(ctx, store)
	require.NoError(t, err)

	require.NoError(t, m.Clear(ctx))

	assert.Empty(t, m.Token())
	assert.Nil(t, m.User())
	assert.Empty(t, store.session.Token)
	assert.Nil(t, store.session.User)
}

func TestManager_GenerationTracksMutations(t *testing.T) {
	ctx := context.Background()
	store := &fakeStorage{}

	m, err := New(ctx, store)
	require.NoError(t, err)

	gen := m.Generation()
	assert.True(t, m.Current(gen))

	require.NoError(t, m.SetSession(ctx, "abc.def.ghi", testUser()))
	assert.False(t, m.Current(gen), "ответ, начатый до login, устарел")

	gen = m.Generation()
	require.NoError(t, m.Clear(ctx))
	assert.False(t, m.Current(gen), "ответ, начатый до logout, устарел")
	assert.True(t, m.Current(m.Generation()))
}

func TestManager_UserReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := &fakeStorage{session: storage.Session{Token: "abc.def.ghi", User: testUser()}}

	m, err := New(ctx, store)
	require.NoError(t, err)

	u := m.User()
	u.Login = "mutated"

	assert.Equal(t, "ipetrov", m.User().Login)
}
