package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iumatch/coursematch-backend/internal/model"
	"github.com/iumatch/coursematch-backend/internal/scoring"
)

func newAggregator() *Aggregator {
	return NewAggregator(scoring.Default())
}

func findBucket(t *testing.T, buckets []model.BucketStatus, name string) model.BucketStatus {
	t.Helper()
	for _, b := range buckets {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("bucket %q not in report", name)
	return model.BucketStatus{}
}

func TestReport_CreditTotals(t *testing.T) {
	agg := newAggregator()

	profile := model.StudentProfile{
		Major:            "Finance (B.S.)",
		GPA:              3.1,
		CompletedCourses: []string{"ENG-W131", "MATH-M119", "BUS-T175", "BUS-C104"},
	}
	scheduled := []model.Course{
		{ID: "ECON-B251", Credits: 3},
		{ID: "BUS-A100", Credits: 1},
	}

	report := agg.Report(profile, scheduled)

	assert.Equal(t, 12, report.CompletedCredits, "completed IDs carry the assumed 3 credits each")
	assert.Equal(t, 4, report.ScheduledCredits)
	assert.Equal(t, 120, report.TotalCredits)
	assert.Equal(t, 104, report.RemainingCredits)
	assert.InDelta(t, float64(16)/120*100, report.Percentage, 0.001)
}

func TestReport_PercentageClampedAtHundred(t *testing.T) {
	agg := newAggregator()

	profile := model.StudentProfile{Major: "Accounting (B.S.)", GPA: 3.5}
	for i := 0; i < 45; i++ {
		profile.CompletedCourses = append(profile.CompletedCourses, "BUS-X100")
	}

	report := agg.Report(profile, nil)
	assert.Equal(t, 135, report.CompletedCredits)
	assert.Equal(t, 100.0, report.Percentage)
	assert.Zero(t, report.RemainingCredits)
}

func TestReport_ZeroCreditScheduledUsesAssumedValue(t *testing.T) {
	agg := newAggregator()

	report := agg.Report(model.StudentProfile{Major: "Finance (B.S.)"}, []model.Course{{ID: "BUS-X200"}})
	assert.Equal(t, 3, report.ScheduledCredits)
}

func TestReport_BucketGrouping(t *testing.T) {
	agg := newAggregator()
	report := agg.Report(model.StudentProfile{Major: "Finance (B.S.)"}, nil)

	assert.Len(t, report.ICorePrerequisites, 4)
	assert.Len(t, report.GeneralEducation, 5)
	assert.Len(t, report.OtherRequired, 1)
}

func TestBucketStatus(t *testing.T) {
	agg := newAggregator()

	profile := model.StudentProfile{
		Major:            "Finance (B.S.)",
		CompletedCourses: []string{"ENG-W131", "BUS-T175"},
	}
	scheduled := []model.Course{
		{ID: "BUS-C104", Credits: 3},
		{ID: "GEOL-G103", Credits: 3, Fulfills: []string{"Natural Science"}},
	}

	report := agg.Report(profile, scheduled)

	english := findBucket(t, report.ICorePrerequisites, "English Composition")
	assert.Equal(t, 1, english.Completed)
	assert.Zero(t, english.Scheduled)
	assert.True(t, english.Satisfied)

	foundation := findBucket(t, report.ICorePrerequisites, "Business Foundation")
	assert.Equal(t, 1, foundation.Completed)
	assert.Equal(t, 1, foundation.Scheduled, "scheduled courses count toward the bucket")
	assert.True(t, foundation.Satisfied, "completed plus scheduled meets the requirement")

	math := findBucket(t, report.ICorePrerequisites, "Math for Business")
	assert.Zero(t, math.Completed)
	assert.False(t, math.Satisfied)

	science := findBucket(t, report.GeneralEducation, "Natural & Mathematical Sciences")
	assert.Equal(t, 3, science.Scheduled, "credit-based buckets count credits via the fulfills tag")
	assert.False(t, science.Satisfied, "3 of 5 required credits")
}

func TestKelleyProgress(t *testing.T) {
	agg := newAggregator()

	t.Run("not yet eligible", func(t *testing.T) {
		profile := model.StudentProfile{
			Major:            "Finance (B.S.)",
			CompletedCourses: []string{"ENG-W131", "BUS-C104"},
		}
		report := agg.Report(profile, nil)

		require.NotNil(t, report.Kelley)
		require.Nil(t, report.Luddy)
		assert.False(t, report.Kelley.ICoreEligible)
		assert.Equal(t, 3, report.Kelley.BusinessCredits)
	})

	t.Run("scheduled courses complete eligibility", func(t *testing.T) {
		profile := model.StudentProfile{
			Major:            "Finance (B.S.)",
			CompletedCourses: []string{"ENG-W131", "BUS-C104", "BUS-T175", "MATH-M119"},
		}
		scheduled := []model.Course{{ID: "ECON-E370", Credits: 3}}
		report := agg.Report(profile, scheduled)

		require.NotNil(t, report.Kelley)
		assert.True(t, report.Kelley.ICoreEligible)
		assert.Equal(t, 6, report.Kelley.BusinessCredits)
	})
}

func TestLuddyProgress(t *testing.T) {
	agg := newAggregator()

	t.Run("major subject credits", func(t *testing.T) {
		profile := model.StudentProfile{
			Major:            "Computer Science (B.S.)",
			CompletedCourses: []string{"CSCI-C211", "MATH-M211", "ENG-W131"},
		}
		scheduled := []model.Course{{ID: "CSCI-C343", Credits: 4}}
		report := agg.Report(profile, scheduled)

		require.NotNil(t, report.Luddy)
		require.Nil(t, report.Kelley)
		assert.Equal(t, 10, report.Luddy.MajorCredits,
			"CSCI and MATH-M completions at 3 assumed credits plus the 4-credit scheduled course")
		assert.False(t, report.Luddy.CapstoneComplete)
	})

	t.Run("capstone pattern match", func(t *testing.T) {
		profile := model.StudentProfile{
			Major:            "Informatics (B.S.)",
			CompletedCourses: []string{"INFO-I101", "INFO-I494"},
		}
		report := agg.Report(profile, nil)

		require.NotNil(t, report.Luddy)
		assert.True(t, report.Luddy.CapstoneComplete)
		assert.Equal(t, 6, report.Luddy.MajorCredits)
	})
}
