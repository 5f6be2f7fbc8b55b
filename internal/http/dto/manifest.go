package dto

import "strings"

type Manifest struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Icon         ManifestIcon    `json:"icon"`
	Author       string          `json:"author"`
	Scopes       []string        `json:"scopes"`
	Connect      ManifestConnect `json:"connect"`
	Capabilities []string        `json:"capabilities"`
}

type ManifestIcon struct {
	URL string `json:"url"`
}

type ManifestConnect struct {
	Iframe ManifestIframe `json:"iframe"`
}

type ManifestIframe struct {
	URL string `json:"url"`
}

// NewManifest describes the Power-Up served from publicURL.
func NewManifest(publicURL string) *Manifest {
	base := strings.TrimSuffix(publicURL, "/")
	return &Manifest{
		Name:        "Card Tracker",
		Description: "Track card history, time, members, and more.",
		Icon:        ManifestIcon{URL: base + "/static/icon.png"},
		Author:      "Card Tracker",
		Scopes:      []string{"read"},
		Connect: ManifestConnect{
			Iframe: ManifestIframe{URL: base + "/powerup_frame.html"},
		},
		Capabilities: []string{
			"board-buttons",
			"card-buttons",
			"card-badges",
			"card-detail-badges",
			"show-settings",
		},
	}
}
