package types

// MatchResult describes how well a resume's skills cover a job's skills.
//
// Overlap is resume ∩ job and Missing is job − resume, so together they
// partition the job skill set.
type MatchResult struct {
	SkillScore float64  `json:"skill_score"` // |Overlap| / |job skills|, 0 when the job lists none
	Overlap    []string `json:"overlap"`
	Missing    []string `json:"missing"`
}

// Label is a qualitative band for a semantic similarity score.
type Label string

// Similarity bands, ordered from best to worst.
const (
	LabelExcellent Label = "excellent"
	LabelGood      Label = "good"
	LabelPartial   Label = "partial"
	LabelWeak      Label = "weak"
)

var labelMessages = map[Label]string{
	LabelExcellent: "Excellent match! You should definitely apply for this job.",
	LabelGood:      "Good match. You stand a strong chance, applying is recommended.",
	LabelPartial:   "Partial match. Consider improving your resume by adding missing relevant skills.",
	LabelWeak:      "Weak match. Your resume and the job description differ significantly. Tailoring your resume is highly recommended.",
}

// Message returns human-readable advice for the band.
func (l Label) Message() string {
	if msg, ok := labelMessages[l]; ok {
		return msg
	}
	return "Score interpretation unavailable."
}

// Valid reports whether l is one of the known bands.
func (l Label) Valid() bool {
	_, ok := labelMessages[l]
	return ok
}
