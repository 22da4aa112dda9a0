package model

import "strings"

// DeviceClass selects which schedule layout a client gets.
type DeviceClass int

const (
	DeviceDesktop DeviceClass = iota
	DeviceMobile
)

// DeviceClassOf classifies a client from its User-Agent string. The
// check mirrors what the page was originally tuned for: iPhone and
// Android get the stacked mobile layout, everything else the table.
func DeviceClassOf(userAgent string) DeviceClass {
	if strings.Contains(userAgent, "iPhone") || strings.Contains(userAgent, "Android") {
		return DeviceMobile
	}
	return DeviceDesktop
}
