package http_test

import (
	"net/http"
	"testing"

	"github.com/rhythmiq/controlplane/pkg/cpsdk"
	"github.com/rhythmiq/controlplane/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestProfileCRUD(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{})

	rec := s.do(t, http.MethodPost, "/v1/profiles",
		`{"email":"Ada@Example.com","username":"ada","first_name":"Ada","password":"correct horse"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created cpsdk.ProfileResponse
	decode(t, rec, &created)
	require.NotEmpty(t, created.ProfileID)
	require.Equal(t, "ada@example.com", created.Email)
	require.True(t, created.HasPassword)
	require.NotContains(t, rec.Body.String(), "argon2")

	rec = s.do(t, http.MethodGet, "/v1/profiles/"+created.ProfileID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPut, "/v1/profiles/"+created.ProfileID, `{"last_name":"Lovelace"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated cpsdk.ProfileResponse
	decode(t, rec, &updated)
	require.Equal(t, "Ada", updated.FirstName)
	require.Equal(t, "Lovelace", updated.LastName)

	rec = s.do(t, http.MethodGet, "/v1/profiles?limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list cpsdk.ListProfilesResponse
	decode(t, rec, &list)
	require.Len(t, list.Profiles, 1)

	require.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/v1/profiles/"+created.ProfileID, "").Code)
	requireErrorCode(t, s.do(t, http.MethodGet, "/v1/profiles/"+created.ProfileID, ""), http.StatusNotFound, cpsdk.ErrorCodeNotFound)
	requireErrorCode(t, s.do(t, http.MethodDelete, "/v1/profiles/"+created.ProfileID, ""), http.StatusNotFound, cpsdk.ErrorCodeNotFound)
}

func TestProfileConflictsAndValidation(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{})
	require.Equal(t, http.StatusCreated,
		s.do(t, http.MethodPost, "/v1/profiles", `{"email":"a@example.com","username":"alpha"}`).Code)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"duplicate email", `{"email":"A@example.com","username":"other"}`, http.StatusConflict, cpsdk.ErrorCodeConflict},
		{"duplicate username", `{"email":"b@example.com","username":"alpha"}`, http.StatusConflict, cpsdk.ErrorCodeConflict},
		{"bad email", `{"email":"nope","username":"bravo"}`, http.StatusBadRequest, cpsdk.ErrorCodeValidationFailed},
		{"short password", `{"email":"c@example.com","username":"charlie","password":"short"}`, http.StatusBadRequest, cpsdk.ErrorCodeValidationFailed},
		{"unknown field", `{"email":"d@example.com","username":"delta","role":"admin"}`, http.StatusBadRequest, cpsdk.ErrorCodeInvalidRequest},
		{"not json", `{`, http.StatusBadRequest, cpsdk.ErrorCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/v1/profiles", tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			var resp httpx.ValidationErrorResponse
			decode(t, rec, &resp)
			require.Equal(t, tt.code, resp.Error)
		})
	}

	rec := s.do(t, http.MethodPost, "/v1/profiles", `{"email":"nope","username":"bravo"}`)
	var resp httpx.ValidationErrorResponse
	decode(t, rec, &resp)
	require.Contains(t, resp.Fields, "email")
}

func TestPreferenceCRUD(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{})

	rec := s.do(t, http.MethodPost, "/v1/profiles", `{"email":"p@example.com","username":"prefs"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var profile cpsdk.ProfileResponse
	decode(t, rec, &profile)
	base := "/v1/profiles/" + profile.ProfileID + "/preferences"

	rec = s.do(t, http.MethodPost, base, `{"type":"ARTIST","value":"Daft Punk","index":1,"weight":0.8}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var pref cpsdk.PreferenceResponse
	decode(t, rec, &pref)
	require.Equal(t, "ARTIST", pref.Type)
	require.InDelta(t, 0.8, pref.Weight, 1e-9)
	require.True(t, pref.IsUserSet)

	rec = s.do(t, http.MethodPost, base, `{"type":"TEMPO","value":"fast"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var tempo cpsdk.PreferenceResponse
	decode(t, rec, &tempo)
	require.InDelta(t, 1.0, tempo.Weight, 1e-9)

	rec = s.do(t, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list cpsdk.ListPreferencesResponse
	decode(t, rec, &list)
	require.Len(t, list.Preferences, 2)

	rec = s.do(t, http.MethodPut, base+"/"+pref.PreferenceID, `{"value":"Justice","is_user_set":false}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &pref)
	require.Equal(t, "Justice", pref.Value)
	require.False(t, pref.IsUserSet)

	requireErrorCode(t, s.do(t, http.MethodPost, base, `{"type":"MOOD","value":"x"}`), http.StatusBadRequest, cpsdk.ErrorCodeValidationFailed)
	requireErrorCode(t, s.do(t, http.MethodPost, base, `{"type":"GENRE","value":"x","weight":2}`), http.StatusBadRequest, cpsdk.ErrorCodeValidationFailed)
	requireErrorCode(t, s.do(t, http.MethodPost, "/v1/profiles/missing/preferences", `{"type":"GENRE","value":"x"}`), http.StatusNotFound, cpsdk.ErrorCodeNotFound)

	require.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, base+"/"+pref.PreferenceID, "").Code)
	requireErrorCode(t, s.do(t, http.MethodGet, base+"/"+pref.PreferenceID, ""), http.StatusNotFound, cpsdk.ErrorCodeNotFound)

	// deleting the profile takes the remaining preference with it
	require.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/v1/profiles/"+profile.ProfileID, "").Code)
	requireErrorCode(t, s.do(t, http.MethodGet, base+"/"+tempo.PreferenceID, ""), http.StatusNotFound, cpsdk.ErrorCodeNotFound)
}

func TestInteractionCRUD(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{})

	rec := s.do(t, http.MethodPost, "/v1/profiles", `{"email":"i@example.com","username":"listener"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var profile cpsdk.ProfileResponse
	decode(t, rec, &profile)
	base := "/v1/profiles/" + profile.ProfileID + "/interactions"

	rec = s.do(t, http.MethodPost, base, `{"song_id":"track-a","type":"LIKE","rating":4.5,"feedback":"on repeat"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var liked cpsdk.InteractionResponse
	decode(t, rec, &liked)
	require.Equal(t, "LIKE", liked.Type)
	require.NotNil(t, liked.Rating)
	require.InDelta(t, 4.5, *liked.Rating, 1e-9)
	require.Equal(t, profile.ProfileID, liked.ProfileID)

	rec = s.do(t, http.MethodPost, base, `{"song_id":"track-b","type":"SKIP"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var skipped cpsdk.InteractionResponse
	decode(t, rec, &skipped)
	require.Nil(t, skipped.Rating)

	var list cpsdk.ListInteractionsResponse
	decode(t, s.do(t, http.MethodGet, base, ""), &list)
	require.Len(t, list.Interactions, 2)
	require.Equal(t, skipped.InteractionID, list.Interactions[0].InteractionID)

	decode(t, s.do(t, http.MethodGet, base+"?song_id=track-a", ""), &list)
	require.Len(t, list.Interactions, 1)
	require.Equal(t, liked.InteractionID, list.Interactions[0].InteractionID)

	rec = s.do(t, http.MethodGet, base+"/"+liked.InteractionID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got cpsdk.InteractionResponse
	decode(t, rec, &got)
	require.Equal(t, "on repeat", got.Feedback)

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown type", body: `{"song_id":"x","type":"LOVE"}`},
		{name: "missing song", body: `{"type":"LIKE"}`},
		{name: "rating out of range", body: `{"song_id":"x","type":"LIKE","rating":7}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireErrorCode(t, s.do(t, http.MethodPost, base, tt.body), http.StatusBadRequest, cpsdk.ErrorCodeValidationFailed)
		})
	}

	requireErrorCode(t, s.do(t, http.MethodPost, "/v1/profiles/missing/interactions", `{"song_id":"x","type":"LIKE"}`), http.StatusNotFound, cpsdk.ErrorCodeNotFound)
	requireErrorCode(t, s.do(t, http.MethodGet, "/v1/profiles/missing/interactions", ""), http.StatusNotFound, cpsdk.ErrorCodeNotFound)

	require.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, base+"/"+liked.InteractionID, "").Code)
	requireErrorCode(t, s.do(t, http.MethodGet, base+"/"+liked.InteractionID, ""), http.StatusNotFound, cpsdk.ErrorCodeNotFound)
	requireErrorCode(t, s.do(t, http.MethodDelete, base+"/"+liked.InteractionID, ""), http.StatusNotFound, cpsdk.ErrorCodeNotFound)

	// interactions go with their profile
	require.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/v1/profiles/"+profile.ProfileID, "").Code)
	requireErrorCode(t, s.do(t, http.MethodGet, base+"/"+skipped.InteractionID, ""), http.StatusNotFound, cpsdk.ErrorCodeNotFound)
}

func TestAiRuleCRUD(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, testOptions{})

	rec := s.do(t, http.MethodPost, "/v1/ai-rules", `{"name":"no explicit","category":"safety","content":"Avoid explicit tracks."}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var rule cpsdk.AiRuleResponse
	decode(t, rec, &rule)
	require.True(t, rule.IsActive)

	rec = s.do(t, http.MethodPost, "/v1/ai-rules", `{"name":"draft","content":"Prefer live recordings.","is_active":false}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var list cpsdk.ListAiRulesResponse
	decode(t, s.do(t, http.MethodGet, "/v1/ai-rules", ""), &list)
	require.Len(t, list.Rules, 2)

	decode(t, s.do(t, http.MethodGet, "/v1/ai-rules?active=true", ""), &list)
	require.Len(t, list.Rules, 1)
	require.Equal(t, rule.RuleID, list.Rules[0].RuleID)

	requireErrorCode(t, s.do(t, http.MethodGet, "/v1/ai-rules?active=maybe", ""), http.StatusBadRequest, cpsdk.ErrorCodeInvalidRequest)

	rec = s.do(t, http.MethodPut, "/v1/ai-rules/"+rule.RuleID, `{"is_active":false}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &rule)
	require.False(t, rule.IsActive)
	require.Equal(t, "Avoid explicit tracks.", rule.Content)

	require.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/v1/ai-rules/"+rule.RuleID, "").Code)
	requireErrorCode(t, s.do(t, http.MethodGet, "/v1/ai-rules/"+rule.RuleID, ""), http.StatusNotFound, cpsdk.ErrorCodeNotFound)
}
