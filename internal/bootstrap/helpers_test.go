package bootstrap

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"
)

func jsonBody(raw string) io.Reader {
	return bytes.NewBufferString(raw)
}

func extractToken(t *testing.T, body []byte) string {
	t.Helper()
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode auth response: %v", err)
	}
	if payload.Token == "" {
		t.Fatal("expected token in auth response")
	}
	return payload.Token
}
