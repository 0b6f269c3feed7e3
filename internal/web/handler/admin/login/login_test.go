package login

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/config"
	"github.com/maryjean/suggestion-box/internal/db/controller/configentry"
	"github.com/maryjean/suggestion-box/internal/db/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	require.NoError(t, db.AutoMigrate(&models.ConfigEntry{}))

	return db
}

func initHandler(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	app := fiber.New()

	var s Service
	require.NoError(t, s.Init(app, &config.Config{}, db))

	return app
}

func login(t *testing.T, app *fiber.App, body string) map[string]any {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, Path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	return decoded
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)

	_, err := configentry.Set(db, configentry.KeyAdminPassword, "maryjean2024")
	require.NoError(t, err)

	app := initHandler(t, db)

	testCases := []struct {
		name    string
		body    string
		success bool
	}{
		{name: "correct password", body: `{"password":"maryjean2024"}`, success: true},
		{name: "wrong password", body: `{"password":"nope"}`, success: false},
		{name: "empty password", body: `{"password":""}`, success: false},
		{name: "missing field", body: `{}`, success: false},
		{name: "malformed body", body: `{not json`, success: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body := login(t, app, tc.body)
			assert.Equal(t, tc.success, body["success"])

			if !tc.success {
				assert.Equal(t, ErrInvalidPassword, body["error"])
			}
		})
	}
}

func TestLogin_NoStoredPassword(t *testing.T) {
	db := newTestDB(t)
	app := initHandler(t, db)

	body := login(t, app, `{"password":"maryjean2024"}`)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, ErrInvalidPassword, body["error"])
}
