package backend

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/bobmcallan/timcheck/internal/interfaces"
)

func TestExpect(t *testing.T) {
	resp := &interfaces.BackendResponse{StatusCode: http.StatusTeapot, Body: []byte("short and stout")}

	if err := Expect(resp, PathLogin, http.StatusOK, http.StatusTeapot); err != nil {
		t.Errorf("Expect returned %v for an accepted status", err)
	}

	err := Expect(resp, PathLogin, http.StatusOK)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusTeapot || apiErr.Endpoint != PathLogin {
		t.Errorf("APIError = %+v", apiErr)
	}
	if !strings.Contains(apiErr.Error(), "short and stout") {
		t.Errorf("message not carried: %s", apiErr.Error())
	}
}

func TestDecodeToken(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"token", `{"access_token":"abc","token_type":"bearer"}`, "abc", false},
		{"missing", `{"token_type":"bearer"}`, "", true},
		{"empty", `{"access_token":""}`, "", true},
		{"not json", `Internal Server Error`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeToken(&interfaces.BackendResponse{Body: []byte(tt.body)})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeTransaction_NullBody(t *testing.T) {
	if _, err := DecodeTransaction(&interfaces.BackendResponse{Body: []byte("null")}); err == nil {
		t.Error("expected error for null body")
	}
}

func TestPrettyJSON(t *testing.T) {
	if got := PrettyJSON([]byte(`{"a":1}`)); got != "{\n  \"a\": 1\n}" {
		t.Errorf("PrettyJSON = %q", got)
	}
	if got := PrettyJSON([]byte("plain")); got != "plain" {
		t.Errorf("PrettyJSON fallback = %q", got)
	}
}
