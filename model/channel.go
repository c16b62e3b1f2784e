package model

// Channel is a full catalog record as stored in the backing file. Records may
// carry fields that must never reach a client, such as DRM license endpoints
// or key material.
type Channel struct {
	Name        string            `json:"name"`
	Logo        string            `json:"logo"`
	ManifestUri string            `json:"manifestUri"`
	Category    string            `json:"category"`
	LicenseUri  string            `json:"licenseUri,omitempty"`
	DrmScheme   string            `json:"drmScheme,omitempty"`
	ClearKeys   map[string]string `json:"clearKeys,omitempty"`
}

// ChannelSummary is the public projection served to authenticated clients.
// It is a strict allow-list: summaries are built field by field, so any field
// added to Channel later stays private until it is explicitly added here too.
type ChannelSummary struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	ManifestUri string `json:"manifestUri"`
	Category    string `json:"category"`
}

// Summary projects a channel record down to its public fields.
func (c *Channel) Summary() ChannelSummary {
	return ChannelSummary{
		Name:        c.Name,
		Logo:        c.Logo,
		ManifestUri: c.ManifestUri,
		Category:    c.Category,
	}
}
