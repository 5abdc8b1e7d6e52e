package services

import (
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/events"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CachedJobs_ShouldServeRepeatedListingFromCache(t *testing.T) {
	reader := &mockJobsReader{}
	reader.On("ListActiveJobs", ctx).Return([]models.Job{{ID: "rec1"}, {ID: "rec2"}}).Once()

	cached, err := NewCachedJobs(nil, reader, time.Minute)
	require.NoError(t, err)

	first := cached.ListActiveJobs(ctx)
	first[0].ID = "mutated"
	second := cached.ListActiveJobs(ctx)

	assert.Equal(t, "rec1", second[0].ID)
	reader.AssertNumberOfCalls(t, "ListActiveJobs", 1)
}

func Test_CachedJobs_WhenReturnedJobFieldsMutated_ShouldKeepCachedCopy(t *testing.T) {
	job := models.Job{
		ID:          "rec1",
		Salary:      &models.Salary{Max: lo.ToPtr(80000.0), Currency: models.USD, Unit: models.Year},
		CareerLevel: []models.CareerLevel{models.Senior},
		Languages:   []models.LanguageCode{"en"},
	}
	reader := &mockJobsReader{}
	reader.On("ListActiveJobs", ctx).Return([]models.Job{job}).Once()
	reader.On("GetJob", ctx, "rec1").Return(lo.ToPtr(job.Clone())).Once()

	cached, err := NewCachedJobs(nil, reader, time.Minute)
	require.NoError(t, err)

	for _, listed := range [][]models.Job{cached.ListActiveJobs(ctx), cached.ListActiveJobs(ctx)} {
		*listed[0].Salary.Max = 1
		listed[0].CareerLevel[0] = models.Junior
		listed[0].Languages[0] = "de"
	}
	for range 2 {
		single := cached.GetJob(ctx, "rec1")
		*single.Salary.Max = 1
		single.Languages[0] = "de"
	}

	listed := cached.ListActiveJobs(ctx)
	assert.Equal(t, 80000.0, *listed[0].Salary.Max)
	assert.Equal(t, models.Senior, listed[0].CareerLevel[0])
	assert.Equal(t, models.LanguageCode("en"), listed[0].Languages[0])
	single := cached.GetJob(ctx, "rec1")
	assert.Equal(t, 80000.0, *single.Salary.Max)
	assert.Equal(t, models.LanguageCode("en"), single.Languages[0])
	reader.AssertExpectations(t)
}

func Test_CachedJobs_WhenListingEmpty_ShouldNotCache(t *testing.T) {
	reader := &mockJobsReader{}
	reader.On("ListActiveJobs", ctx).Return([]models.Job{}).Once()
	reader.On("ListActiveJobs", ctx).Return([]models.Job{{ID: "rec1"}}).Once()

	cached, err := NewCachedJobs(nil, reader, time.Minute)
	require.NoError(t, err)

	assert.Empty(t, cached.ListActiveJobs(ctx))
	assert.Len(t, cached.ListActiveJobs(ctx), 1)
	reader.AssertExpectations(t)
}

func Test_CachedJobs_GetJob_ShouldCacheFoundJobsOnly(t *testing.T) {
	reader := &mockJobsReader{}
	reader.On("GetJob", ctx, "rec1").Return(&models.Job{ID: "rec1"}).Once()
	reader.On("GetJob", ctx, "recX").Return(nil).Twice()

	cached, err := NewCachedJobs(nil, reader, time.Minute)
	require.NoError(t, err)

	assert.Equal(t, "rec1", cached.GetJob(ctx, "rec1").ID)
	assert.Equal(t, "rec1", cached.GetJob(ctx, "rec1").ID)
	assert.Nil(t, cached.GetJob(ctx, "recX"))
	assert.Nil(t, cached.GetJob(ctx, "recX"))
	reader.AssertExpectations(t)
}

func Test_CachedJobs_OnJobsSynced_ShouldReplaceCachedEntries(t *testing.T) {
	bus := EventBus.New()
	reader := &mockJobsReader{}
	reader.On("ListActiveJobs", ctx).Return([]models.Job{{ID: "old"}}).Once()
	reader.On("GetJob", ctx, "old").Return(&models.Job{ID: "old", Title: "stale"}).Once()
	reader.On("GetJob", ctx, "old").Return(nil).Once()

	cached, err := NewCachedJobs(bus, reader, time.Minute)
	require.NoError(t, err)
	cached.ListActiveJobs(ctx)
	cached.GetJob(ctx, "old")

	bus.Publish(events.JobsSyncedTopic, events.JobsSynced{RunID: "run-1", Jobs: []models.Job{{ID: "new"}}})

	jobs := cached.ListActiveJobs(ctx)
	require.Len(t, jobs, 1)
	assert.Equal(t, "new", jobs[0].ID)
	assert.Nil(t, cached.GetJob(ctx, "old"))
	reader.AssertExpectations(t)
}
