// Package types provides type definitions for structured data used throughout the skill-gap system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// SkillSet holds the skills found in one text, split by how they were matched.
// Both slices are deduplicated and sorted alphabetically.
type SkillSet struct {
	DictSkills  []string `json:"dict_skills"`  // exact dictionary hits
	FuzzySkills []string `json:"fuzzy_skills"` // canonical dictionary spelling of approximate hits
}

// NewSkillSet builds a SkillSet from unordered, possibly repeated inputs.
func NewSkillSet(dict, fuzzy []string) SkillSet {
	return SkillSet{
		DictSkills:  SortedUnique(dict),
		FuzzySkills: SortedUnique(fuzzy),
	}
}

// All returns the union of dictionary and fuzzy skills, sorted.
func (s SkillSet) All() []string {
	merged := make([]string, 0, len(s.DictSkills)+len(s.FuzzySkills))
	merged = append(merged, s.DictSkills...)
	merged = append(merged, s.FuzzySkills...)
	return SortedUnique(merged)
}

// Len returns the number of distinct skills across both match kinds.
func (s SkillSet) Len() int {
	return len(s.All())
}

// IsEmpty reports whether no skill was found.
func (s SkillSet) IsEmpty() bool {
	return len(s.DictSkills) == 0 && len(s.FuzzySkills) == 0
}

// SortedUnique returns a sorted copy of values with duplicates and empty strings removed.
// It never returns nil so JSON output renders as [].
func SortedUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
