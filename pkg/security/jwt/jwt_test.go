package jwt

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "screening-service"
)

func TestGenerateAndParse(t *testing.T) {
	g := NewGenerator(testSecret, testIssuer, time.Hour)
	tok, err := g.Generate("ops", true)
	require.NoError(t, err)

	claims, err := Parse(tok, testSecret, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.True(t, claims.IsAdmin)

	_, err = Parse(tok, "other-secret", testIssuer)
	assert.Error(t, err)
	_, err = Parse(tok, testSecret, "someone-else")
	assert.Error(t, err)
}

func TestGenerate_Expired(t *testing.T) {
	g := NewGenerator(testSecret, testIssuer, -time.Minute)
	tok, err := g.Generate("ops", true)
	require.NoError(t, err)
	_, err = Parse(tok, testSecret, testIssuer)
	assert.Error(t, err)
}

func TestGenerate_NoSecret(t *testing.T) {
	_, err := NewGenerator("", testIssuer, time.Hour).Generate("ops", true)
	assert.Error(t, err)
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Post("/train", NewAuthMiddleware(testSecret, testIssuer), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestMiddleware(t *testing.T) {
	g := NewGenerator(testSecret, testIssuer, time.Hour)
	admin, err := g.Generate("ops", true)
	require.NoError(t, err)
	user, err := g.Generate("someone", false)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
		{"non-admin", "Bearer " + user, http.StatusForbidden},
		{"admin with bearer", "Bearer " + admin, http.StatusOK},
		{"admin without prefix", admin, http.StatusOK},
	}
	app := newApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/train", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status != http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				assert.Contains(t, string(body), `"success":false`)
			}
		})
	}
}
