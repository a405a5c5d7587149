package utils

import (
	ua "github.com/mssola/user_agent"
)

// DeviceInfo holds parsed information from a User-Agent string
type DeviceInfo struct {
	DeviceType string `json:"device_type"` // mobile, tablet, desktop, unknown
	OS         string `json:"os"`
	Browser    string `json:"browser"`
	Platform   string `json:"platform"`
	Raw        string `json:"raw"`
}

// ParseUserAgent parses a User-Agent string and extracts device information
func ParseUserAgent(userAgent string) DeviceInfo {
	if userAgent == "" {
		return DeviceInfo{
			DeviceType: "unknown",
			OS:         "Unknown",
			Browser:    "Unknown",
			Platform:   "unknown",
			Raw:        userAgent,
		}
	}

	parsed := ua.New(userAgent)
	browser, _ := parsed.Browser()

	deviceType := "desktop"
	if parsed.Mobile() {
		deviceType = "mobile"
	}

	return DeviceInfo{
		DeviceType: deviceType,
		OS:         parsed.OS(),
		Browser:    browser,
		Platform:   parsed.Platform(),
		Raw:        userAgent,
	}
}

// IsMobileClient reports whether the device should get the mobile token
// lifetime
func (d DeviceInfo) IsMobileClient() bool {
	return d.DeviceType == "mobile"
}
