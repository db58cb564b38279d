package scoring

import (
	"math"

	"github.com/jonathan/skill-gap/internal/types"
)

// ComputeSkillMatch compares the union of each side's dictionary and fuzzy
// skills. Overlap is resume ∩ job, Missing is job − resume, and SkillScore is
// |Overlap|/|job| rounded to two decimals (0 when the job lists no skills).
func ComputeSkillMatch(resume, job types.SkillSet) types.MatchResult {
	resumeSet := make(map[string]struct{})
	for _, s := range resume.All() {
		resumeSet[s] = struct{}{}
	}

	jobSkills := job.All()
	overlap := make([]string, 0, len(jobSkills))
	missing := make([]string, 0, len(jobSkills))
	for _, s := range jobSkills {
		if _, ok := resumeSet[s]; ok {
			overlap = append(overlap, s)
		} else {
			missing = append(missing, s)
		}
	}

	score := 0.0
	if len(jobSkills) > 0 {
		score = round(float64(len(overlap))/float64(len(jobSkills)), 2)
	}

	return types.MatchResult{
		SkillScore: score,
		Overlap:    overlap,
		Missing:    missing,
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
