package profile

// SkillTag identifies one of the four reading skills a question can exercise.
type SkillTag string

const (
	SkillComprehension SkillTag = "comprehension"
	SkillVocabulary    SkillTag = "vocabulary"
	SkillInference     SkillTag = "inference"
	SkillSummarization SkillTag = "summarization"
)

// AllSkillTags lists every skill tag in display order.
func AllSkillTags() []SkillTag {
	return []SkillTag{
		SkillComprehension,
		SkillVocabulary,
		SkillInference,
		SkillSummarization,
	}
}

// ValidSkillTag reports whether s is one of the known skill tags.
func ValidSkillTag(s SkillTag) bool {
	switch s {
	case SkillComprehension, SkillVocabulary, SkillInference, SkillSummarization:
		return true
	}
	return false
}

// SkillScores holds the per-skill proficiency scores, each bounded [0,100].
type SkillScores struct {
	Comprehension int `json:"comprehension"`
	Vocabulary    int `json:"vocabulary"`
	Inference     int `json:"inference"`
	Summarization int `json:"summarization"`
}

// DefaultSkillScores returns the starting scores for a new reader.
func DefaultSkillScores() SkillScores {
	return SkillScores{
		Comprehension: 50,
		Vocabulary:    50,
		Inference:     50,
		Summarization: 50,
	}
}

// SkillDeltas is a partial update to SkillScores. A zero field means
// "leave unchanged"; use the map form so an explicit zero delta is
// distinguishable from an absent one.
type SkillDeltas map[SkillTag]int

// ApplyDeltas returns a copy of s with each delta applied and the result
// clamped to [0,100]. Unknown tags are ignored. Pure and total: out-of-range
// deltas are clamped, never rejected.
func ApplyDeltas(s SkillScores, deltas SkillDeltas) SkillScores {
	out := s
	for tag, d := range deltas {
		switch tag {
		case SkillComprehension:
			out.Comprehension = ClampScore(out.Comprehension + d)
		case SkillVocabulary:
			out.Vocabulary = ClampScore(out.Vocabulary + d)
		case SkillInference:
			out.Inference = ClampScore(out.Inference + d)
		case SkillSummarization:
			out.Summarization = ClampScore(out.Summarization + d)
		}
	}
	return out
}

// Get returns the score for a tag, or 0 for an unknown tag.
func (s SkillScores) Get(tag SkillTag) int {
	switch tag {
	case SkillComprehension:
		return s.Comprehension
	case SkillVocabulary:
		return s.Vocabulary
	case SkillInference:
		return s.Inference
	case SkillSummarization:
		return s.Summarization
	}
	return 0
}

// ClampScore bounds a skill or level score to [0,100].
func ClampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
