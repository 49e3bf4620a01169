package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAdminManagementChangeAccountStatus(t *testing.T) {
	var gotQuery string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewAdminManagement(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewAdminManagement: %v", err)
	}

	if _, err := client.ChangeAccountStatus(context.Background(), "tok", "u@p.io", "active"); err != nil {
		t.Fatalf("ChangeAccountStatus: %v", err)
	}
	if gotQuery != "new_status=active&user_email=u%40p.io" {
		t.Fatalf("query = %s", gotQuery)
	}
	if string(gotBody) != `{"token":"tok"}` {
		t.Fatalf("body = %s", gotBody)
	}
}

func TestAdminManagementRegisterAdmin(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client, err := NewAdminManagement(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewAdminManagement: %v", err)
	}

	resp, err := client.RegisterAdmin(context.Background(), map[string]string{"email": "root@p.io"})
	if err != nil {
		t.Fatalf("RegisterAdmin: %v", err)
	}
	if gotPath != "/register_admin" {
		t.Fatalf("path = %s", gotPath)
	}
	if resp.StatusCode() != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode())
	}
}
