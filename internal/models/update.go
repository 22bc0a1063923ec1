package models

import "time"

// UpdateInfo is the outcome of an update check. A failed check still
// produces a populated value with CheckSuccessful=false.
type UpdateInfo struct {
	CurrentVersion  string        `json:"currentVersion"`
	LatestVersion   string        `json:"latestVersion"`
	HasUpdate       bool          `json:"hasUpdate"`
	ReleaseURL      string        `json:"releaseUrl,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	PublishedAt     time.Time     `json:"publishedAt,omitempty"`
	Assets          []UpdateAsset `json:"assets,omitempty"`
	CheckSuccessful bool          `json:"checkSuccessful"`
	ErrorMessage    string        `json:"errorMessage,omitempty"`
}

// UpdateAsset is one downloadable artifact attached to a release.
type UpdateAsset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"downloadUrl"`
	Size        int64  `json:"size"`
}
