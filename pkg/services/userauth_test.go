package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUserAuthLoginUsesBasicAuth(t *testing.T) {
	var gotPath, gotUser, gotPass string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		w.Write([]byte(`{"token": "tok-1"}`))
	}))
	defer srv.Close()

	client, err := NewUserAuth(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewUserAuth: %v", err)
	}

	resp, err := client.Login(context.Background(), Credentials{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if gotPath != "/login" {
		t.Fatalf("path = %s", gotPath)
	}
	if gotUser != "a@b.c" || gotPass != "pw" {
		t.Fatalf("basic auth = %q/%q", gotUser, gotPass)
	}
	if string(resp.Body()) != `{"token": "tok-1"}` {
		t.Fatalf("body = %s", resp.Body())
	}
}

func TestUserAuthLoginRejectsIncompleteCredentials(t *testing.T) {
	client, err := NewUserAuth(WithBaseURL("http://user-auth.internal"))
	if err != nil {
		t.Fatalf("NewUserAuth: %v", err)
	}
	if _, err := client.Login(context.Background(), Credentials{Email: "a@b.c"}); err == nil {
		t.Fatalf("expected error for missing password")
	}
	if _, err := client.Login(context.Background(), Credentials{Password: "pw"}); err == nil {
		t.Fatalf("expected error for missing email")
	}
}

func TestUserAuthValidateTokenBody(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewUserAuth(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewUserAuth: %v", err)
	}

	if _, err := client.ValidateToken(context.Background(), "tok-2"); err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if string(gotBody) != `{"token":"tok-2"}` {
		t.Fatalf("body = %s", gotBody)
	}
}

func TestUserAuthChangeAccountStatusQueryAndBody(t *testing.T) {
	var gotQuery string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewUserAuth(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewUserAuth: %v", err)
	}

	if _, err := client.ChangeAccountStatus(context.Background(), "tok", "x@y.z", "suspended"); err != nil {
		t.Fatalf("ChangeAccountStatus: %v", err)
	}
	if gotQuery != "new_status=suspended&target_user_email=x%40y.z" {
		t.Fatalf("query = %s", gotQuery)
	}
	if string(gotBody) != `{"token":"tok"}` {
		t.Fatalf("body = %s", gotBody)
	}
}

func TestUserAuthMakeAdminPath(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewUserAuth(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewUserAuth: %v", err)
	}

	if _, err := client.MakeAdmin(context.Background(), "7"); err != nil {
		t.Fatalf("MakeAdmin: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/user/7/make_admin" {
		t.Fatalf("request = %s %s", gotMethod, gotPath)
	}
}
