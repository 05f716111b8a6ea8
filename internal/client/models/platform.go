package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/socialhub/internal/common"
)

// Platform identifies the social network an account lives on.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformFacebook  Platform = "facebook"
)

var platformLabels = map[Platform]string{
	PlatformInstagram: "Instagram",
	PlatformTwitter:   "Twitter",
	PlatformYouTube:   "YouTube",
	PlatformTikTok:    "TikTok",
	PlatformFacebook:  "Facebook",
}

// Platforms lists the supported platforms in menu order.
func Platforms() []Platform {
	return []Platform{PlatformInstagram, PlatformYouTube, PlatformTwitter, PlatformTikTok, PlatformFacebook}
}

// ParsePlatform accepts a platform name in any case.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownPlatform, s)
	}
	return p, nil
}

func (p Platform) Valid() bool {
	_, ok := platformLabels[p]
	return ok
}

// Label is the display name, e.g. "YouTube".
func (p Platform) Label() string {
	if l, ok := platformLabels[p]; ok {
		return l
	}
	return string(p)
}
