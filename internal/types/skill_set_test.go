package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedUnique(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"nil input", nil, []string{}},
		{"dedupes and sorts", []string{"sql", "python", "sql"}, []string{"python", "sql"}},
		{"drops empty strings", []string{"", "aws", ""}, []string{"aws"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortedUnique(tt.input))
		})
	}
}

func TestSkillSet_All(t *testing.T) {
	s := NewSkillSet([]string{"sql", "python"}, []string{"tableau", "python"})

	assert.Equal(t, []string{"python", "sql"}, s.DictSkills)
	assert.Equal(t, []string{"python", "tableau"}, s.FuzzySkills)
	assert.Equal(t, []string{"python", "sql", "tableau"}, s.All())
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.IsEmpty())
}

func TestSkillSet_EmptyMarshalsAsArrays(t *testing.T) {
	data, err := json.Marshal(NewSkillSet(nil, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"dict_skills":[],"fuzzy_skills":[]}`, string(data))
}

func TestLabel_Message(t *testing.T) {
	assert.Contains(t, LabelExcellent.Message(), "Excellent")
	assert.Contains(t, LabelWeak.Message(), "Weak")
	assert.Equal(t, "Score interpretation unavailable.", Label("bogus").Message())
	assert.True(t, LabelPartial.Valid())
	assert.False(t, Label("").Valid())
}

func TestLabel(t *testing.T) {
	for _, l := range []Label{LabelExcellent, LabelGood, LabelPartial, LabelWeak} {
		assert.True(t, l.Valid(), l)
		assert.NotEqual(t, "Score interpretation unavailable.", l.Message(), l)
	}

	unknown := Label("stellar")
	assert.False(t, unknown.Valid())
	assert.Equal(t, "Score interpretation unavailable.", unknown.Message())
	assert.Contains(t, LabelWeak.Message(), "Tailoring your resume")
}
