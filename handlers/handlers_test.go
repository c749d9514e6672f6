package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cironunes/funretro-api/models"
	"github.com/cironunes/funretro-api/session"
	"github.com/cironunes/funretro-api/store"
)

// testClient wraps a server plus a cookie-carrying client so a test
// reads like a sequence of API calls from one browser.
type testClient struct {
	t      *testing.T
	server *httptest.Server
	client *http.Client
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.Section{},
		&models.Card{},
		&models.Comment{},
		&models.Session{},
	))

	handler := &Handler{
		Store:    store.New(db),
		Sessions: session.NewMemoryStore(),
	}

	server := httptest.NewServer(handler.Router())
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testClient{
		t:      t,
		server: server,
		client: &http.Client{Jar: jar},
	}
}

// do sends a JSON request and returns status plus raw body.
func (c *testClient) do(method, path string, body interface{}) (int, []byte) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.server.URL+path, reader)
	require.NoError(c.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, raw
}

func (c *testClient) decode(raw []byte, v interface{}) {
	c.t.Helper()
	require.NoError(c.t, json.Unmarshal(raw, v))
}

// registerAndLogin creates an account and logs it in, returning the
// user id from the login response.
func (c *testClient) registerAndLogin(email string) uint {
	c.t.Helper()

	status, _ := c.do("POST", "/api/auth/register", map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     email,
		"password":  "s3cret",
	})
	require.Equal(c.t, http.StatusCreated, status)

	status, raw := c.do("POST", "/api/auth/login", map[string]string{
		"email":    email,
		"password": "s3cret",
	})
	require.Equal(c.t, http.StatusOK, status)

	var user struct{ ID uint }
	c.decode(raw, &user)
	require.NotZero(c.t, user.ID)
	return user.ID
}
