package extraction

import (
	"testing"

	"github.com/jonathan/job-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestRequiredYears_Patterns(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    int
	}{
		{"plus years experience", "We need 5+ years experience in backend work.", 5},
		{"years of experience", "3 years of experience with Go", 3},
		{"experience of years", "Relevant experience of 4 years", 4},
		{"work experience", "7 yrs work experience", 7},
		{"minimum of", "A minimum of 2 years in a similar role", 2},
		{"not stated", "Great team, great benefits.", 0},
		{"empty", "", 0},
	}

	extractor := NewYearsExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractor.RequiredYears(tt.description))
		})
	}
}

func TestRequiredYears_FirstPatternWins(t *testing.T) {
	description := "Minimum of 2 years in management and 6+ years experience overall"
	assert.Equal(t, 6, NewYearsExtractor().RequiredYears(description))
}

func TestExtractYear(t *testing.T) {
	year, ok := ExtractYear("Jan 2020")
	assert.True(t, ok)
	assert.Equal(t, 2020, year)

	_, ok = ExtractYear("sometime last spring")
	assert.False(t, ok)

	_, ok = ExtractYear("12345")
	assert.False(t, ok)
}

func TestEntryYears_DurationOverride(t *testing.T) {
	duration := 2.5
	entry := types.ExperienceEntry{StartDate: "2010", EndDate: "2020", DurationYears: &duration}
	assert.Equal(t, 2.5, EntryYears(entry, 2025))
}

func TestEntryYears_FromDates(t *testing.T) {
	assert.Equal(t, 2.0, EntryYears(types.ExperienceEntry{StartDate: "Mar 2017", EndDate: "Dec 2019"}, 2025))
	assert.Equal(t, 5.0, EntryYears(types.ExperienceEntry{StartDate: "Jan 2020", EndDate: "Present"}, 2025))
	assert.Equal(t, 5.0, EntryYears(types.ExperienceEntry{StartDate: "2020"}, 2025), "missing end date means present")
}

func TestEntryYears_MissingStart(t *testing.T) {
	assert.Equal(t, 0.0, EntryYears(types.ExperienceEntry{EndDate: "2020"}, 2025))
	assert.Equal(t, 0.0, EntryYears(types.ExperienceEntry{StartDate: "a while ago", EndDate: "2020"}, 2025))
}

func TestEntryYears_UnparseableEndOrReversed(t *testing.T) {
	assert.Equal(t, 0.0, EntryYears(types.ExperienceEntry{StartDate: "2018", EndDate: "soon"}, 2025))
	assert.Equal(t, 0.0, EntryYears(types.ExperienceEntry{StartDate: "2021", EndDate: "2019"}, 2025))
}

func TestTotalYears(t *testing.T) {
	entries := []types.ExperienceEntry{
		{StartDate: "Jan 2020", EndDate: "Present"},
		{StartDate: "Mar 2017", EndDate: "Dec 2019"},
	}
	assert.Equal(t, 7.0, TotalYears(entries, 2025))
	assert.Equal(t, 0.0, TotalYears(nil, 2025))
}
