package services

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/events"
	"github.com/maxaizer/jobboard/internal/metrics"
	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
)

const activeJobsKey = "jobs:active"

type jobsReader interface {
	ListActiveJobs(ctx context.Context) []models.Job
	GetJob(ctx context.Context, id string) *models.Job
}

// CachedJobs keeps listings and single jobs for a TTL. Empty listings and
// missing jobs are not cached, so a store outage is retried on the next call.
// A JobsSynced event replaces the listing and drops single entries.
// Jobs are deep-copied on the way in and out, so callers own what they get.
type CachedJobs struct {
	jobs  jobsReader
	cache *gocache.Cache
}

func NewCachedJobs(bus EventBus.Bus, jobs jobsReader, ttl time.Duration) (*CachedJobs, error) {
	c := &CachedJobs{jobs: jobs, cache: gocache.New(ttl, 2*ttl)}

	if bus != nil {
		if err := bus.Subscribe(events.JobsSyncedTopic, c.onJobsSynced); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *CachedJobs) ListActiveJobs(ctx context.Context) []models.Job {
	if cached, found := c.cache.Get(activeJobsKey); found {
		metrics.CacheLookupsCounter.WithLabelValues("hit").Inc()
		return cloneJobs(cached.([]models.Job))
	}
	metrics.CacheLookupsCounter.WithLabelValues("miss").Inc()

	jobs := c.jobs.ListActiveJobs(ctx)
	if len(jobs) > 0 {
		c.cache.SetDefault(activeJobsKey, cloneJobs(jobs))
	}
	return jobs
}

func (c *CachedJobs) GetJob(ctx context.Context, id string) *models.Job {
	key := jobKey(id)
	if cached, found := c.cache.Get(key); found {
		metrics.CacheLookupsCounter.WithLabelValues("hit").Inc()
		job := cached.(models.Job).Clone()
		return &job
	}
	metrics.CacheLookupsCounter.WithLabelValues("miss").Inc()

	job := c.jobs.GetJob(ctx, id)
	if job != nil {
		c.cache.SetDefault(key, job.Clone())
	}
	return job
}

func (c *CachedJobs) onJobsSynced(event events.JobsSynced) {
	c.cache.Flush()
	if len(event.Jobs) > 0 {
		c.cache.SetDefault(activeJobsKey, cloneJobs(event.Jobs))
	}
}

func cloneJobs(jobs []models.Job) []models.Job {
	return lo.Map(jobs, func(job models.Job, _ int) models.Job {
		return job.Clone()
	})
}

func jobKey(id string) string {
	return "job:" + id
}
