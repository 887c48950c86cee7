package edge

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Capability reports whether the host terminal can draw edge treatments.
type Capability interface {
	SupportsEdgeEffects() bool
}

// ProfileCapability derives support from the terminal color profile. Fades
// need blended colors, so only 256-color and true-color terminals qualify.
type ProfileCapability struct {
	Profile termenv.Profile
}

// SupportsEdgeEffects implements Capability.
func (p ProfileCapability) SupportsEdgeEffects() bool {
	return p.Profile == termenv.TrueColor || p.Profile == termenv.ANSI256
}

// StaticCapability is a fixed answer, used for overrides.
type StaticCapability bool

// SupportsEdgeEffects implements Capability.
func (s StaticCapability) SupportsEdgeEffects() bool {
	return bool(s)
}

// Mode selects how the capability is determined at startup.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeOn   Mode = "on"
	ModeOff  Mode = "off"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAuto, ModeOn, ModeOff:
		return m, nil
	case "":
		return ModeAuto, nil
	}
	return ModeAuto, fmt.Errorf("unknown effects mode %q (want auto, on or off)", s)
}

// DetectCapability returns the capability for mode, consulting profile only
// in auto mode.
func DetectCapability(mode Mode, profile termenv.Profile) Capability {
	switch mode {
	case ModeOn:
		return StaticCapability(true)
	case ModeOff:
		return StaticCapability(false)
	}
	return ProfileCapability{Profile: profile}
}
