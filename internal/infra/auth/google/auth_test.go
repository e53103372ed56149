package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"kala/config"
	"kala/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

func testConfig() *config.Config {
	return &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{
		ClientID:     "client-id",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost:8080/auth/google/callback",
	}}
}

func stubValidator(claims map[string]any, err error) validateFunc {
	return func(_ context.Context, idToken, audience string) (*idtoken.Payload, error) {
		if err != nil {
			return nil, err
		}
		if idToken != "good-token" || audience != "client-id" {
			return nil, errors.New("unexpected token or audience")
		}

		return &idtoken.Payload{Subject: "google-sub", Audience: audience, Claims: claims}, nil
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	claims := map[string]any{
		"email":          "asha@example.com",
		"email_verified": true,
		"name":           "Asha Rao",
		"picture":        "https://example.com/a.png",
	}
	svc := newAuthService(testConfig(), discardLogger(), stubValidator(claims, nil), oauth2.Endpoint{})

	user, err := svc.VerifyIDToken(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "google-sub", user.ID)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "Asha Rao", user.Name)
	assert.Equal(t, "https://example.com/a.png", user.AvatarURL)
	assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		claims   map[string]any
		validErr error
		token    string
	}{
		{name: "validator error", validErr: errors.New("bad signature"), token: "good-token"},
		{name: "unverified email", claims: map[string]any{"email": "a@b.c", "email_verified": false}, token: "good-token"},
		{name: "missing email", claims: map[string]any{"email_verified": true}, token: "good-token"},
		{name: "wrong token", claims: map[string]any{"email": "a@b.c", "email_verified": true}, token: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAuthService(testConfig(), discardLogger(), stubValidator(tt.claims, tt.validErr), oauth2.Endpoint{})
			_, err := svc.VerifyIDToken(context.Background(), tt.token)
			assert.Error(t, err)
		})
	}
}

func TestAuthService_StringEmailVerified(t *testing.T) {
	claims := map[string]any{"email": "a@b.c", "email_verified": "true"}
	svc := newAuthService(testConfig(), discardLogger(), stubValidator(claims, nil), oauth2.Endpoint{})

	user, err := svc.VerifyIDToken(context.Background(), "good-token")
	require.NoError(t, err)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_AuthCodeURL(t *testing.T) {
	endpoint := oauth2.Endpoint{AuthURL: "https://accounts.example.com/auth", TokenURL: "https://accounts.example.com/token"}
	svc := newAuthService(testConfig(), discardLogger(), stubValidator(nil, nil), endpoint)

	raw := svc.AuthCodeURL("state-123")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "accounts.example.com", u.Host)
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "openid email profile", q.Get("scope"))
	assert.Equal(t, "http://localhost:8080/auth/google/callback", q.Get("redirect_uri"))
}

func TestAuthService_Exchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     "good-token",
		})
	}))
	defer srv.Close()

	claims := map[string]any{"email": "asha@example.com", "email_verified": true}
	endpoint := oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token"}
	svc := newAuthService(testConfig(), discardLogger(), stubValidator(claims, nil), endpoint)

	user, err := svc.Exchange(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
}

func TestAuthService_ExchangeWithoutIDToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access","token_type":"Bearer"}`))
	}))
	defer srv.Close()

	endpoint := oauth2.Endpoint{TokenURL: srv.URL + "/token"}
	svc := newAuthService(testConfig(), discardLogger(), stubValidator(nil, nil), endpoint)

	_, err := svc.Exchange(context.Background(), "auth-code")
	assert.Error(t, err)
}

func TestAuthService_GetProvider(t *testing.T) {
	svc := NewAuthService(testConfig(), discardLogger())
	assert.Equal(t, entity.ProviderTypeGoogle, svc.GetProvider())
}
