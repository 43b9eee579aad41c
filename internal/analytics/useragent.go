package analytics

import "strings"

const (
	UnknownOS     = "Unknown"
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
)

// Classify returns a coarse OS label and device class for a user agent.
//
// The OS label is the first ';'-separated token of the first parenthesized
// group, e.g. "Windows NT 10.0" for "Mozilla/5.0 (Windows NT 10.0; Win64; x64)".
// The result is a best-effort label and must not be used to identify clients.
func Classify(userAgent string) (os, device string) {
	return osLabel(userAgent), deviceClass(userAgent)
}

func osLabel(ua string) string {
	start := strings.IndexAny(ua, "()")
	if start < 0 {
		return UnknownOS
	}

	group := ua[start+1:]
	if end := strings.IndexAny(group, "()"); end >= 0 {
		group = group[:end]
	}

	name, _, _ := strings.Cut(group, ";")
	if name = strings.TrimSpace(name); name == "" {
		return UnknownOS
	}

	return name
}

func deviceClass(ua string) string {
	if strings.Contains(ua, "Mobile") {
		return DeviceMobile
	}
	return DeviceDesktop
}
