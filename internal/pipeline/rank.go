package pipeline

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skill-gap/internal/types"
)

// Rank scores several resumes against one job. The job is processed once;
// resumes are processed concurrently, bounded by the configured concurrency.
// Results are sorted by MatchPercent descending, then by name.
func (a *Analyzer) Rank(ctx context.Context, jobText string, resumes map[string]string) ([]types.RankedResume, error) {
	job, err := a.processSide(ctx, "job", jobText)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(resumes))
	for name := range resumes {
		names = append(names, name)
	}
	sort.Strings(names)

	ranked := make([]types.RankedResume, len(names))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, name := range names {
		g.Go(func() error {
			resume, err := a.processSide(gCtx, "resume", resumes[name])
			if err != nil {
				return fmt.Errorf("resume %s: %w", name, err)
			}
			report := a.Score(combine(resume, job))
			a.stamp(&report)
			// Each goroutine owns index i
			ranked[i] = types.RankedResume{Name: name, Report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Report.MatchPercent != ranked[j].Report.MatchPercent {
			return ranked[i].Report.MatchPercent > ranked[j].Report.MatchPercent
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked, nil
}
