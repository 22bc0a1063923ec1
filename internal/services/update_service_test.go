package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    bool
	}{
		{"1.0.0", "1.0.1", true},
		{"1.0.0", "1.1.0", true},
		{"1.0.0", "2.0.0", true},
		{"1.0.1", "1.0.0", false},
		{"1.0.0", "1.0.0", false},
		{"v1.0.0", "v1.2.0", true},
		{"1.0.0-dev", "1.0.1", true},
		{"2.0.0", "1.9.9", false},
		{"dev", "1.0.0", false},
		{"1.0.0", "garbage", false},
		{"1.0", "1.0.1", false},
	}
	for _, tt := range tests {
		if got := IsNewer(tt.current, tt.latest); got != tt.want {
			t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
		}
	}
}

func TestUpdateCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"tag_name": "v2.1.0",
			"body": "Bug fixes",
			"html_url": "https://example.com/releases/v2.1.0",
			"published_at": "2026-08-01T00:00:00Z",
			"assets": [{"name": "app-linux-amd64", "browser_download_url": "https://example.com/dl", "size": 1024}]
		}`))
	}))
	defer srv.Close()

	svc := NewUpdateService(srv.URL, "2.0.0")
	info := svc.Check(context.Background())

	if !info.CheckSuccessful {
		t.Fatalf("check failed: %s", info.ErrorMessage)
	}
	if info.LatestVersion != "2.1.0" {
		t.Errorf("LatestVersion = %q", info.LatestVersion)
	}
	if !info.HasUpdate {
		t.Error("update not detected")
	}
	if info.ReleaseURL == "" || info.Notes != "Bug fixes" {
		t.Errorf("release details missing: %+v", info)
	}
	if len(info.Assets) != 1 || info.Assets[0].Size != 1024 {
		t.Errorf("assets = %+v", info.Assets)
	}
}

func TestUpdateCheckUpToDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name": "v1.0.0"}`))
	}))
	defer srv.Close()

	info := NewUpdateService(srv.URL, "1.0.0").Check(context.Background())
	if !info.CheckSuccessful || info.HasUpdate {
		t.Errorf("info = %+v", info)
	}
}

func TestUpdateCheckNetworkFailure(t *testing.T) {
	info := NewUpdateService("http://127.0.0.1:1/releases", "1.0.0").Check(context.Background())
	if info.CheckSuccessful {
		t.Error("unreachable endpoint reported success")
	}
	if info.HasUpdate {
		t.Error("failed check claimed an update")
	}
	if info.CurrentVersion != "1.0.0" {
		t.Errorf("CurrentVersion = %q", info.CurrentVersion)
	}
	if info.ErrorMessage == "" {
		t.Error("error not recorded")
	}
}

func TestUpdateCheckBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	info := NewUpdateService(srv.URL, "1.0.0").Check(context.Background())
	if info.CheckSuccessful {
		t.Error("403 reported success")
	}
}
