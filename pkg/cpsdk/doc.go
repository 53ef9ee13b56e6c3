/*
Package cpsdk provides a client SDK for the RhythmIQ control plane.

# Overview

SDKClient wraps every public endpoint: health probes, the Spotify
authorization flow, the Spotify read proxy, and CRUD over profiles,
preferences and AI rules. The request and response types in this package
are the same types the server encodes, so a client and server built from
the same revision always agree on the wire format.

	client := cpsdk.NewSDKClient("https://api.rhythmiq.example")

	health, err := client.GetLiveness(ctx)

	profile, err := client.CreateProfile(ctx, cpsdk.CreateProfileRequest{
		Email:    "ada@example.com",
		Username: "ada",
	})

# Sessions

Session-scoped calls (liked songs, playlists, the current user and
recommendations) send the session id from the callback as the sessionId
query parameter:

	cb, err := client.Callback(ctx, code, state)
	session := client.WithSession(cb.SessionID)
	tracks, err := session.LikedSongs(ctx, 0, 20)

# Errors

Non-2xx responses are returned as *APIError carrying the HTTP status and
the error code from the body:

	var apiErr *cpsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == cpsdk.ErrorCodeSessionNotFound {
		// log in again
	}
*/
package cpsdk
