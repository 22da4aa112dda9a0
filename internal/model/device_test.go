package model

import "testing"

func TestDeviceClassOf(t *testing.T) {
	cases := []struct {
		ua       string
		expected DeviceClass
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", DeviceMobile},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8)", DeviceMobile},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64)", DeviceDesktop},
		{"Mozilla/5.0 (X11; Linux x86_64)", DeviceDesktop},
		{"", DeviceDesktop},
	}

	for _, tc := range cases {
		if got := DeviceClassOf(tc.ua); got != tc.expected {
			t.Errorf("DeviceClassOf(%q) = %v, expected %v", tc.ua, got, tc.expected)
		}
	}
}
