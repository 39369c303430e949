package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dealflow-platform/admin-api/internal/query"
)

func TestSort_ToggleCycle(t *testing.T) {
	var s query.Sort

	s = s.Toggle("name")
	assert.Equal(t, query.Sort{Column: "name", Direction: query.Ascending}, s)

	s = s.Toggle("name")
	assert.Equal(t, query.Sort{Column: "name", Direction: query.Descending}, s)

	// Третий клик по той же колонке сбрасывает сортировку.
	s = s.Toggle("name")
	assert.Equal(t, query.Sort{}, s)
	assert.False(t, s.Active())
}

func TestSort_ToggleResetsOnColumnSwitch(t *testing.T) {
	s := query.Sort{Column: "name", Direction: query.Descending}

	s = s.Toggle("createdAt")
	assert.Equal(t, query.Sort{Column: "createdAt", Direction: query.Ascending}, s)
}

func TestCompare_Dates(t *testing.T) {
	earlier := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC).Format(time.RFC3339Nano)
	later := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC).Format(time.RFC3339Nano)

	assert.Negative(t, query.Compare(earlier, later))
	assert.Positive(t, query.Compare(later, earlier))
	assert.Zero(t, query.Compare(earlier, earlier))

	// Лексикографическое сравнение дало бы обратный порядок:
	// 10:00+03:00 — это 07:00Z, то есть раньше, чем 09:00Z.
	assert.Negative(t, query.Compare("2025-01-02T10:00:00+03:00", "2025-01-02T09:00:00Z"))
}

func TestCompare_Strings(t *testing.T) {
	assert.Negative(t, query.Compare("Agriculture", "IT"))
	assert.Positive(t, query.Compare("IT", "Agriculture"))
}

func TestCompare_EmptyValuesAreEqual(t *testing.T) {
	assert.Zero(t, query.Compare("", "anything"))
	assert.Zero(t, query.Compare("anything", ""))
	assert.Zero(t, query.Compare("", ""))
}

func TestSort_LessRespectsDirection(t *testing.T) {
	asc := query.Sort{Column: "name", Direction: query.Ascending}
	desc := query.Sort{Column: "name", Direction: query.Descending}

	assert.True(t, asc.Less("a", "b"))
	assert.False(t, asc.Less("b", "a"))
	assert.True(t, desc.Less("b", "a"))
	assert.False(t, desc.Less("a", "b"))
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, query.Ascending, query.ParseDirection("asc"))
	assert.Equal(t, query.Descending, query.ParseDirection("desc"))
	assert.Equal(t, query.Unsorted, query.ParseDirection(""))
	assert.Equal(t, query.Unsorted, query.ParseDirection("sideways"))
}
