package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var secret = []byte("test-secret")

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(JWTAuth(secret))
	app.Get("/whoami", RequireAuth(), func(c *fiber.Ctx) error {
		uid, err := UIDFromLocals(c)
		if err != nil {
			return err
		}
		return c.SendString(uid.Hex())
	})
	return app
}

func signToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestJWTAuth(t *testing.T) {
	uid := bson.NewObjectID()

	valid := signToken(t, jwt.RegisteredClaims{
		Subject:   uid.Hex(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, jwt.RegisteredClaims{
		Subject:   uid.Hex(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject: uid.Hex(),
	}).SignedString(secret)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", authHeader: "Bearer " + valid, wantStatus: 200, wantBody: uid.Hex()},
		{name: "no header", authHeader: "", wantStatus: 401},
		{name: "expired token", authHeader: "Bearer " + expired, wantStatus: 401},
		{name: "wrong algorithm", authHeader: "Bearer " + wrongAlg, wantStatus: 401},
		{name: "mangled token", authHeader: "Bearer not.a.token", wantStatus: 401},
	}

	app := newApp()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			if tc.wantBody != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tc.wantBody, string(body))
			}
		})
	}
}
