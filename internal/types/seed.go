package types

import "time"

// SeedStatus tracks a seed through its lifecycle
type SeedStatus string

// Seed lifecycle states. A seed is never mutated after reaching StatusPublished.
const (
	StatusCandidate SeedStatus = "candidate"
	StatusApproved  SeedStatus = "approved"
	StatusRejected  SeedStatus = "rejected"
	StatusScheduled SeedStatus = "scheduled"
	StatusPublished SeedStatus = "published"
)

// Format is the suggested publishing format for a seed
type Format string

// Supported publishing formats
const (
	FormatPost    Format = "post"
	FormatThread  Format = "thread"
	FormatStory   Format = "story"
	FormatArticle Format = "article"
)

// ValidFormat reports whether f is one of the supported formats
func ValidFormat(f Format) bool {
	switch f {
	case FormatPost, FormatThread, FormatStory, FormatArticle:
		return true
	}
	return false
}

// formatCompat maps a slot's declared format to the seed formats it may carry.
// Long-form article seeds never land in short-form slots.
var formatCompat = map[Format][]Format{
	FormatPost:    {FormatPost, FormatStory},
	FormatThread:  {FormatThread, FormatPost},
	FormatStory:   {FormatStory, FormatPost},
	FormatArticle: {FormatArticle, FormatThread},
}

// FormatCompatible reports whether a seed with seedFormat can fill a slot declared as slotFormat
func FormatCompatible(slotFormat, seedFormat Format) bool {
	for _, f := range formatCompat[slotFormat] {
		if f == seedFormat {
			return true
		}
	}
	return false
}

// Seed is a single extracted content idea grounded in one source record
type Seed struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Hook            string     `json:"hook"`
	Insight         string     `json:"insight"`
	SourceID        string     `json:"source_id"`
	SourceOrigin    string     `json:"source_origin,omitempty"`
	SuggestedFormat Format     `json:"suggested_format"`
	PillarID        string     `json:"pillar_id"`
	CreatedAt       time.Time  `json:"created_at"`
	Status          SeedStatus `json:"status"`

	// InterestScore is the extractor's estimate used for truncation ordering
	InterestScore float64 `json:"interest_score,omitempty"`
	// VoiceScore is set by the voice filter, in [0,1]
	VoiceScore float64 `json:"voice_score,omitempty"`
	// VoiceFlags holds red-flag labels triggered during voice scoring
	VoiceFlags []string `json:"voice_flags,omitempty"`
	// RejectReason explains a rejected status (e.g. duplicate_in_batch)
	RejectReason string `json:"reject_reason,omitempty"`
	// RecencyPenalty in [0,1] set by the deduplicator from publish history
	RecencyPenalty float64 `json:"recency_penalty,omitempty"`
}

// SeedBatch is an ordered collection of seeds produced by one pipeline run
type SeedBatch struct {
	WeekID string `json:"week_id,omitempty"`
	Seeds  []Seed `json:"seeds"`
}

// Approved returns the seeds with status approved, preserving order
func (b *SeedBatch) Approved() []Seed {
	approved := make([]Seed, 0, len(b.Seeds))
	for _, s := range b.Seeds {
		if s.Status == StatusApproved {
			approved = append(approved, s)
		}
	}
	return approved
}
