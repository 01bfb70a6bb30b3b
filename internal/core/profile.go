package core

import (
	"github.com/julien-sobczak/the-moodwriter/internal/analysis"
)

// MentalHealthProfile describes the user preferences collected from the configuration.
type MentalHealthProfile struct {
	UserID         string                 `yaml:"user_id"`
	Conditions     []string               `yaml:"conditions"`
	UnderTreatment *bool                  `yaml:"under_treatment,omitempty"`
	OnMedication   *bool                  `yaml:"on_medication,omitempty"`
	CrisisSupport  bool                   `yaml:"crisis_support"`
	ResponseStyle  analysis.ResponseStyle `yaml:"response_style"`
}

// Profile returns the profile defined in the configuration.
func (c *Config) Profile() *MentalHealthProfile {
	section := c.ConfigFile.Profile
	return &MentalHealthProfile{
		UserID:         c.ConfigFile.Core.User,
		Conditions:     append([]string{}, section.Conditions...),
		UnderTreatment: section.UnderTreatment,
		OnMedication:   section.OnMedication,
		CrisisSupport:  section.CrisisSupport,
		ResponseStyle:  c.ResponseStyle(),
	}
}

// Style returns the response style, gentle when the profile is missing.
func (p *MentalHealthProfile) Style() analysis.ResponseStyle {
	if p == nil || p.ResponseStyle == "" {
		return analysis.Gentle
	}
	return p.ResponseStyle
}

// WantsCrisisSupport returns if helpline notifications must be emitted.
func (p *MentalHealthProfile) WantsCrisisSupport() bool {
	return p != nil && p.CrisisSupport
}
