// Package platform identifies the device the catalog runs on and the
// accessibility signals it exposes.
package platform

import (
	"runtime"
	"strings"
)

// Well-known OS identifiers.
const (
	OSTVOS      = "tvos"
	OSAndroidTV = "androidtv"
	OSMacOS     = "macos"
	OSLinux     = "linux"
	OSWeb       = "web"
	OSIOS       = "ios"
	OSAndroid   = "android"
	OSWindows   = "windows"
)

// Info identifies the running platform.
type Info struct {
	OS string
	TV bool // driven by a remote control rather than touch or pointer
}

// Capabilities is what the UI needs to know about a platform.
// It is computed once at startup and not re-evaluated per render.
type Capabilities struct {
	// FocusNavigation selects focus-aware rows (remote or keyboard driven)
	// instead of touch rows.
	FocusNavigation bool
	// SuppressDefaultBack hides the framework back control; example screens
	// get a custom control that returns to Home instead.
	SuppressDefaultBack bool
}

func (i Info) Capabilities() Capabilities {
	return Capabilities{
		FocusNavigation:     i.OS == OSMacOS || i.TV,
		SuppressDefaultBack: i.OS == OSWeb,
	}
}

func (i Info) String() string {
	if i.TV {
		return i.OS + "+tv"
	}
	return i.OS
}

// Parse reads a platform override such as "linux", "web" or "linux+tv".
// The TV-native OSes imply TV.
func Parse(s string) Info {
	s = strings.ToLower(strings.TrimSpace(s))
	os, suffix, _ := strings.Cut(s, "+")
	info := Info{OS: os, TV: suffix == "tv"}
	if os == OSTVOS || os == OSAndroidTV {
		info.TV = true
	}
	return info
}

// Detect returns override when set, otherwise the host OS. A present
// remote-control device marks the platform as TV.
func Detect(override string, hasRemote bool) Info {
	if strings.TrimSpace(override) != "" {
		return Parse(override)
	}

	os := runtime.GOOS
	if os == "darwin" {
		os = OSMacOS
	}
	return Info{OS: os, TV: hasRemote}
}
