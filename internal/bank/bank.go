// Package bank holds the static question catalogue: scales, tiers, and items.
// Lookup is pure over data fixed at process start; the escalation engine and
// scoring resolve question membership through it rather than by id naming
// conventions.
package bank

import (
	dErrors "psyscreen/pkg/domain-errors"
)

// ScaleID names a measured psychological construct.
type ScaleID string

const (
	ScaleAggression ScaleID = "aggression"
	ScaleIsolation  ScaleID = "isolation"
	ScaleSomatic    ScaleID = "somatic"
	ScaleAnxiety    ScaleID = "anxiety"
	ScaleStability  ScaleID = "stability"
	ScaleMilitary   ScaleID = "military_adaptation"
	// ScaleSincerity is a validity check, not a risk scale. It has only a
	// screening tier and is never escalated.
	ScaleSincerity ScaleID = "sincerity"
)

// Tier is the questioning depth for a scale.
type Tier string

const (
	TierScreening Tier = "screening"
	TierMedium    Tier = "medium"
	TierFull      Tier = "full"
)

// Profile selects which variant of the catalogue a session uses.
type Profile string

const (
	ProfileMilitary Profile = "military"
	ProfileCivilian Profile = "civilian"
)

// ParseProfile validates external profile input.
func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case ProfileMilitary, ProfileCivilian:
		return Profile(s), nil
	default:
		return "", dErrors.New(dErrors.CodeBadRequest, "unknown profile: "+s)
	}
}

// Question is one catalogue item. Immutable after process start.
type Question struct {
	ID    string  `json:"id"`
	Text  string  `json:"text"`
	Scale ScaleID `json:"scale"`
	Tier  Tier    `json:"tier"`
}

// Bank is the catalogue for one profile. Scales are kept in declaration
// order; the escalation policy processes them in this order, never randomized.
type Bank struct {
	profile Profile
	scales  []ScaleID
	byTier  map[ScaleID]map[Tier][]Question
	byID    map[string]Question
	names   map[ScaleID]string
}

// ForProfile builds the catalogue for the given profile. The civilian
// variant shares every scale except military adaptation; the scoring and
// escalation logic is common to both.
func ForProfile(profile Profile) *Bank {
	b := &Bank{
		profile: profile,
		byTier:  make(map[ScaleID]map[Tier][]Question),
		byID:    make(map[string]Question),
		names:   scaleNames,
	}
	for _, scale := range scaleOrder {
		if scale == ScaleMilitary && profile != ProfileMilitary {
			continue
		}
		b.scales = append(b.scales, scale)
		tiers := make(map[Tier][]Question)
		tiers[TierScreening] = questionsOf(scale, TierScreening, screeningItems[scale])
		if scale != ScaleSincerity {
			tiers[TierMedium] = questionsOf(scale, TierMedium, mediumItems[scale])
			tiers[TierFull] = questionsOf(scale, TierFull, fullItems[scale])
		}
		b.byTier[scale] = tiers
		for _, qs := range tiers {
			for _, q := range qs {
				b.byID[q.ID] = q
			}
		}
	}
	return b
}

func questionsOf(scale ScaleID, tier Tier, items []item) []Question {
	qs := make([]Question, 0, len(items))
	for _, it := range items {
		qs = append(qs, Question{ID: it.id, Text: it.text, Scale: scale, Tier: tier})
	}
	return qs
}

// Profile returns the profile this bank was built for.
func (b *Bank) Profile() Profile { return b.profile }

// Scales returns every scale in declaration order, sincerity last.
func (b *Bank) Scales() []ScaleID {
	out := make([]ScaleID, len(b.scales))
	copy(out, b.scales)
	return out
}

// RiskScales returns the risk-bearing scales in declaration order, excluding
// the sincerity validity check.
func (b *Bank) RiskScales() []ScaleID {
	out := make([]ScaleID, 0, len(b.scales))
	for _, s := range b.scales {
		if s != ScaleSincerity {
			out = append(out, s)
		}
	}
	return out
}

// HasScale reports whether the scale is registered for this profile.
func (b *Bank) HasScale(scale ScaleID) bool {
	_, ok := b.byTier[scale]
	return ok
}

// QuestionsForTier returns the ordered item list for a scale at a tier.
func (b *Bank) QuestionsForTier(scale ScaleID, tier Tier) ([]Question, error) {
	tiers, ok := b.byTier[scale]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "unknown scale: "+string(scale))
	}
	qs, ok := tiers[tier]
	if !ok || len(qs) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "scale "+string(scale)+" has no "+string(tier)+" tier")
	}
	out := make([]Question, len(qs))
	copy(out, qs)
	return out, nil
}

// QuestionByID resolves a question id to its catalogue entry.
func (b *Bank) QuestionByID(id string) (Question, error) {
	q, ok := b.byID[id]
	if !ok {
		return Question{}, dErrors.New(dErrors.CodeNotFound, "unknown question: "+id)
	}
	return q, nil
}

// ScaleName returns the human-readable scale title for reports.
func (b *Bank) ScaleName(scale ScaleID) string {
	if name, ok := b.names[scale]; ok {
		return name
	}
	return string(scale)
}
