package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParkingSlotListWithStatusFilter(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"slots": []}`))
	}))
	defer srv.Close()

	client, err := NewParkingSlot(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewParkingSlot: %v", err)
	}

	if _, err := client.ListParkingSlots(context.Background(), "free"); err != nil {
		t.Fatalf("ListParkingSlots: %v", err)
	}
	if gotQuery != "status=free" {
		t.Fatalf("query = %s", gotQuery)
	}

	if _, err := client.ListParkingSlots(context.Background(), ""); err != nil {
		t.Fatalf("ListParkingSlots without filter: %v", err)
	}
	if gotQuery != "" {
		t.Fatalf("expected no query without filter, got %s", gotQuery)
	}
}

func TestParkingSlotCreateWrapsAuthorization(t *testing.T) {
	var gotPath string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client, err := NewParkingSlot(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewParkingSlot: %v", err)
	}

	slot := map[string]any{"zone": "A", "number": 12}
	if _, err := client.CreateParkingSlot(context.Background(), slot, "tok-1"); err != nil {
		t.Fatalf("CreateParkingSlot: %v", err)
	}
	if gotPath != "/parking_slots" {
		t.Fatalf("path = %s", gotPath)
	}

	var body struct {
		Payload       map[string]any    `json:"payload"`
		Authorization map[string]string `json:"authorization"`
	}
	if err := json.Unmarshal(gotBody, &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Payload["zone"] != "A" {
		t.Fatalf("payload = %v", body.Payload)
	}
	if body.Authorization["token"] != "tok-1" {
		t.Fatalf("authorization = %v", body.Authorization)
	}
}

func TestParkingSlotDeleteSendsAuthorizationBody(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewParkingSlot(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewParkingSlot: %v", err)
	}

	if _, err := client.DeleteParkingSlot(context.Background(), "slot-3", "tok-9"); err != nil {
		t.Fatalf("DeleteParkingSlot: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Fatalf("method = %s", gotMethod)
	}
	if gotPath != "/parking_slots/slot-3" {
		t.Fatalf("path = %s", gotPath)
	}
	if string(gotBody) != `{"authorization":{"token":"tok-9"}}` {
		t.Fatalf("body = %s", gotBody)
	}
}

func TestParkingSlotAssignAndRelease(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewParkingSlot(WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewParkingSlot: %v", err)
	}

	if _, err := client.AssignParkingSlot(context.Background(), "s1", map[string]string{"vehicle": "KA-01"}, "tok"); err != nil {
		t.Fatalf("AssignParkingSlot: %v", err)
	}
	if _, err := client.ReleaseParkingSlot(context.Background(), "s1", "tok"); err != nil {
		t.Fatalf("ReleaseParkingSlot: %v", err)
	}

	want := []string{"POST /parking_slots/s1/assign", "POST /parking_slots/s1/release"}
	if len(paths) != len(want) || paths[0] != want[0] || paths[1] != want[1] {
		t.Fatalf("requests = %v", paths)
	}
}
