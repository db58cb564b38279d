package skills

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skills.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadDictionary_QuotedCell(t *testing.T) {
	path := writeCSV(t, "\"Python, SQL, Tableau\"\n")

	dict, err := ReadDictionary(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "sql", "tableau"}, dict.Phrases())
	assert.True(t, dict.Contains("sql"))
	assert.False(t, dict.Contains("SQL"), "entries are stored lowercased")
}

func TestReadDictionary_FiltersShortAndStopwords(t *testing.T) {
	path := writeCSV(t, "Python, SQL, Tableau, R, Go, the, also\nMachine Learning,python,  AWS  \n")

	dict, err := ReadDictionary(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"aws", "machine learning", "python", "sql", "tableau"}, dict.Phrases())
	for _, excluded := range []string{"r", "go", "the", "also"} {
		assert.False(t, dict.Contains(excluded), "%q should be filtered", excluded)
	}
}

func TestReadDictionary_RaggedRows(t *testing.T) {
	path := writeCSV(t, "docker\nkubernetes,terraform,ansible\n\nspark\n")

	dict, err := ReadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, 5, dict.Len())
}

func TestReadDictionary_MissingFile(t *testing.T) {
	dict, err := ReadDictionary(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Nil(t, dict)

	var dictErr *DictionaryError
	require.True(t, errors.As(err, &dictErr))
	assert.Contains(t, dictErr.Path, "missing.csv")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadDictionary_DegradesToEmpty(t *testing.T) {
	dict := LoadDictionary(filepath.Join(t.TempDir(), "missing.csv"))
	require.NotNil(t, dict)
	assert.True(t, dict.IsEmpty())
	assert.Empty(t, dict.Phrases())

	_, _, ok := dict.BestMatch("python", 0)
	assert.False(t, ok)
}

func TestLoadDictionary_Success(t *testing.T) {
	dict := LoadDictionary(writeCSV(t, "python,sql\n"))
	assert.Equal(t, 2, dict.Len())
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("The"))
	assert.True(t, IsStopword("using"))
	assert.False(t, IsStopword("python"))
}
