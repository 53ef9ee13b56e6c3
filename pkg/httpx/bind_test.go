package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rhythmiq/controlplane/pkg/httpx"
	"github.com/stretchr/testify/require"
)

type bindPayload struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2"`
	Kind  string `json:"kind" validate:"omitempty,oneof=GENRE TEMPO"`
}

func TestBindJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantFields []string
	}{
		{"valid body", `{"email":"a@b.co","name":"Al","kind":"GENRE"}`, 0, nil},
		{"empty body", ``, http.StatusBadRequest, nil},
		{"malformed json", `{"email":`, http.StatusBadRequest, nil},
		{"unknown field", `{"email":"a@b.co","name":"Al","extra":1}`, http.StatusBadRequest, nil},
		{"wrong type", `{"email":"a@b.co","name":5}`, http.StatusBadRequest, nil},
		{"validation failure", `{"email":"nope","name":"A","kind":"JAZZ"}`, http.StatusBadRequest, []string{"email", "name", "kind"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			got, err := httpx.BindJSON[bindPayload](rec, req)
			if tt.wantStatus == 0 {
				require.NoError(t, err)
				require.Equal(t, "a@b.co", got.Email)
				return
			}

			require.Error(t, err)
			require.Equal(t, tt.wantStatus, rec.Code)

			var resp httpx.ValidationErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.NotEmpty(t, resp.Error)
			for _, f := range tt.wantFields {
				require.Contains(t, resp.Fields, f)
			}
		})
	}
}

func TestSessionIDFromRequest(t *testing.T) {
	t.Run("query parameter wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?sessionId=from-query", nil)
		req.AddCookie(&http.Cookie{Name: httpx.SessionCookieName, Value: "from-cookie"})
		require.Equal(t, "from-query", httpx.SessionIDFromRequest(req))
	})

	t.Run("falls back to cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: httpx.SessionCookieName, Value: "from-cookie"})
		require.Equal(t, "from-cookie", httpx.SessionIDFromRequest(req))
	})

	t.Run("empty when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		require.Empty(t, httpx.SessionIDFromRequest(req))
	})
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("a"), mw("b"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"a", "b", "handler"}, order)
}
