package vocabulary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesAndDeduplicates(t *testing.T) {
	v := New([]string{" Amit ", "amit", "AMIT", "", "  ", "Rahul"})
	assert.Equal(t, 2, v.Len())
	assert.True(t, v.Contains("amit"))
	assert.True(t, v.Contains("rahul"))
	assert.False(t, v.Contains("Amit")) // lookups expect lower-cased tokens
}

func TestRangeIsSorted(t *testing.T) {
	v := New([]string{"verma", "amit", "sharma"})
	var got []string
	v.Range(func(name string) { got = append(got, name) })
	assert.Equal(t, []string{"amit", "sharma", "verma"}, got)
}

func TestAddAndRemoveKeepOrder(t *testing.T) {
	v := New([]string{"amit", "verma"})

	assert.True(t, v.Add(" Sharma "))
	assert.False(t, v.Add("sharma")) // duplicate
	assert.False(t, v.Add("   "))

	var got []string
	v.Range(func(name string) { got = append(got, name) })
	assert.Equal(t, []string{"amit", "sharma", "verma"}, got)

	v.Remove("Sharma")
	assert.False(t, v.Contains("sharma"))
	got = nil
	v.Range(func(name string) { got = append(got, name) })
	assert.Equal(t, []string{"amit", "verma"}, got)
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "names.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTempCSV(t, "id,firstName\n1, Amit \n2,\n3,AMIT\n4,Rekha\n")

	v, err := LoadCSV(path, "firstName")
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len())
	assert.True(t, v.Contains("amit"))
	assert.True(t, v.Contains("rekha"))
}

func TestLoadCSVHeaderCaseInsensitive(t *testing.T) {
	path := writeTempCSV(t, "FIRSTNAME\nAmit\n")

	v, err := LoadCSV(path, "firstName")
	require.NoError(t, err)
	assert.True(t, v.Contains("amit"))
}

func TestLoadCSVMissingColumn(t *testing.T) {
	path := writeTempCSV(t, "name\nAmit Sharma\n")

	_, err := LoadCSV(path, "firstName")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "firstName")
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), "firstName")
	assert.Error(t, err)
}
