package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"semanticcode/internal/models"
)

// UpdateService checks GitHub releases for a newer application version.
type UpdateService struct {
	client      *http.Client
	releasesURL string
	version     string
}

// NewUpdateService creates a checker. releasesURL points at the GitHub
// "latest release" API endpoint; version is the running build's version.
func NewUpdateService(releasesURL, version string) *UpdateService {
	return &UpdateService{
		client:      &http.Client{Timeout: 5 * time.Second},
		releasesURL: releasesURL,
		version:     version,
	}
}

type githubRelease struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	Body        string    `json:"body"`
	HTMLURL     string    `json:"html_url"`
	PublishedAt time.Time `json:"published_at"`
	Assets      []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
		Size               int64  `json:"size"`
	} `json:"assets"`
}

// Check queries the releases endpoint. It never fails hard: a network or
// decode problem yields CheckSuccessful=false with the error recorded.
func (s *UpdateService) Check(ctx context.Context) *models.UpdateInfo {
	info := &models.UpdateInfo{CurrentVersion: s.version}

	release, err := s.latestRelease(ctx)
	if err != nil {
		log.Printf("⚠️ [UPDATE] Check failed: %v", err)
		info.ErrorMessage = err.Error()
		return info
	}

	info.LatestVersion = strings.TrimPrefix(release.TagName, "v")
	info.HasUpdate = IsNewer(s.version, info.LatestVersion)
	info.ReleaseURL = release.HTMLURL
	info.Notes = release.Body
	info.PublishedAt = release.PublishedAt
	info.CheckSuccessful = true
	for _, a := range release.Assets {
		info.Assets = append(info.Assets, models.UpdateAsset{
			Name:        a.Name,
			DownloadURL: a.BrowserDownloadURL,
			Size:        a.Size,
		})
	}
	return info
}

func (s *UpdateService) latestRelease(ctx context.Context) (*githubRelease, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.releasesURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", hubUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github API returned %d", resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}
	return &release, nil
}

// IsNewer returns true if latest is a higher semver than current.
// Both should be in "X.Y.Z" format, with or without a leading "v".
func IsNewer(current, latest string) bool {
	curParts := parseSemver(current)
	latParts := parseSemver(latest)
	if curParts == nil || latParts == nil {
		return false
	}
	for i := 0; i < 3; i++ {
		if latParts[i] > curParts[i] {
			return true
		}
		if latParts[i] < curParts[i] {
			return false
		}
	}
	return false
}

func parseSemver(v string) []int {
	v = strings.TrimPrefix(v, "v")
	// Strip any suffix after a hyphen (e.g. "1.0.0-dev")
	if idx := strings.Index(v, "-"); idx >= 0 {
		v = v[:idx]
	}
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return nil
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil
		}
		nums[i] = n
	}
	return nums
}
