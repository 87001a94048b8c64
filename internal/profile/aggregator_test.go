package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeStore returns canned records per source, with optional per-source
// errors to exercise failure isolation.
type fakeStore struct {
	career  *CareerRecord
	prefs   *PreferencesRecord
	resume  *ResumeRecord
	persona *PersonaRecord

	careerErr  error
	prefsErr   error
	resumeErr  error
	personaErr error
}

func (f *fakeStore) CareerProfile(ctx context.Context, userID string) (*CareerRecord, error) {
	return f.career, f.careerErr
}

func (f *fakeStore) Preferences(ctx context.Context, userID string) (*PreferencesRecord, error) {
	return f.prefs, f.prefsErr
}

func (f *fakeStore) PrimaryResume(ctx context.Context, userID string) (*ResumeRecord, error) {
	return f.resume, f.resumeErr
}

func (f *fakeStore) PersonaPreferences(ctx context.Context, userID, personaID string) (*PersonaRecord, error) {
	return f.persona, f.personaErr
}

func fullStore() *fakeStore {
	return &fakeStore{
		career: &CareerRecord{
			YearsExperience: 7,
			CurrentTitle:    "Staff Engineer",
			Skills:          []string{"go", "postgresql"},
		},
		prefs: &PreferencesRecord{
			PrimaryTitle:     "Senior Backend Engineer",
			MinSalary:        140000,
			MaxSalary:        180000,
			RemotePreference: "remote",
			AvoidKeywords:    []string{"on-call"},
		},
		resume: &ResumeRecord{
			Skills:  []string{"kubernetes", "go"},
			RawText: "go go kubernetes kubernetes grpc grpc react",
		},
	}
}

func TestAggregate_MergesAllSources(t *testing.T) {
	aggregator := NewAggregator(fullStore(), nil)

	profile := aggregator.Aggregate(context.Background(), "user-1", "")

	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, 7, profile.YearsExperience)
	assert.Equal(t, "Senior Backend Engineer", profile.PrimaryTitle)
	assert.Equal(t, 140000, profile.MinSalary)
	assert.Equal(t, "remote", profile.RemotePreference)
	assert.Equal(t, []string{"go", "postgresql"}, profile.Skills)
	assert.Equal(t, []string{"kubernetes", "go"}, profile.ResumeSkills)
	assert.Contains(t, profile.ResumeKeywords, "grpc")
}

func TestAggregate_SourceFailureDegradesOnlyItsFields(t *testing.T) {
	store := fullStore()
	store.resumeErr = errors.New("connection reset")
	aggregator := NewAggregator(store, nil)

	profile := aggregator.Aggregate(context.Background(), "user-1", "")

	assert.Equal(t, "Senior Backend Engineer", profile.PrimaryTitle)
	assert.Equal(t, 7, profile.YearsExperience)
	assert.Empty(t, profile.ResumeSkills)
	assert.Empty(t, profile.ResumeKeywords)
}

func TestAggregate_AllSourcesFailingYieldsEmptyProfile(t *testing.T) {
	store := &fakeStore{
		careerErr: errors.New("down"),
		prefsErr:  errors.New("down"),
		resumeErr: errors.New("down"),
	}
	aggregator := NewAggregator(store, nil)

	profile := aggregator.Aggregate(context.Background(), "user-1", "")

	assert.Equal(t, "user-1", profile.UserID)
	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.PrimaryTitle)
	// slices stay non-nil so scorers can rely on emptiness checks
	assert.NotNil(t, profile.Skills)
	assert.NotNil(t, profile.AvoidKeywords)
}

func TestAggregate_PersonaOverridesScalarsAndUnionsArrays(t *testing.T) {
	store := fullStore()
	store.persona = &PersonaRecord{
		PrimaryTitle:     "Platform Engineer",
		MinSalary:        160000,
		RequiredSkills:   []string{"go", "kubernetes"},
		Industries:       []string{"fintech"},
		NiceToHaveSkills: []string{"terraform"},
	}
	aggregator := NewAggregator(store, nil)

	profile := aggregator.Aggregate(context.Background(), "user-1", "persona-1")

	assert.Equal(t, "persona-1", profile.PersonaID)
	assert.Equal(t, "Platform Engineer", profile.PrimaryTitle)
	assert.Equal(t, 160000, profile.MinSalary)
	assert.Equal(t, "remote", profile.RemotePreference) // persona left it unset
	assert.Equal(t, []string{"go", "kubernetes"}, profile.RequiredSkills)
	assert.Equal(t, []string{"fintech"}, profile.Industries)
}

func TestAggregate_PersonaSkippedWithoutPersonaID(t *testing.T) {
	store := fullStore()
	store.persona = &PersonaRecord{PrimaryTitle: "Should Not Apply"}
	aggregator := NewAggregator(store, nil)

	profile := aggregator.Aggregate(context.Background(), "user-1", "")

	assert.Equal(t, "Senior Backend Engineer", profile.PrimaryTitle)
}

func TestUnionStrings_DedupesAndPreservesOrder(t *testing.T) {
	result := unionStrings([]string{"go", "redis"}, []string{"redis", "", "kafka", "go"})

	assert.Equal(t, []string{"go", "redis", "kafka"}, result)
}
