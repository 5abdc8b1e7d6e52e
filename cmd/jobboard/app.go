package main

import (
	"io"
	"os"

	"github.com/maxaizer/jobboard/internal/clients/airtable"
	"github.com/maxaizer/jobboard/internal/config"
	"github.com/maxaizer/jobboard/internal/logger"
	"github.com/maxaizer/jobboard/internal/mapper"
	"github.com/maxaizer/jobboard/internal/repositories"
	"github.com/maxaizer/jobboard/internal/services"
	"github.com/pkg/errors"
)

const defaultConfigFile = "./configs/config.yaml"

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if value := os.Getenv("CONFIG_PATH"); value != "" {
		return value
	}
	return defaultConfigFile
}

// setup loads the config and starts logging to console and the log file.
func setup(console io.Writer) (*config.Config, error) {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return nil, err
	}

	if err = logger.SetupTo(cfg.Logger, console); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newStoreClient(cfg *config.Config) *airtable.Client {
	client := airtable.NewClient(airtable.Credentials{
		EndpointURL: cfg.Store.EndpointURL,
		AccessToken: cfg.Store.AccessToken,
		BaseID:      cfg.Store.BaseID,
		TableName:   cfg.Store.TableName,
	})
	client.SetRateLimit(cfg.Store.MaxRequestsPerSecond)
	return client
}

func newJobsService(cfg *config.Config, client *airtable.Client) (*services.JobsService, error) {
	policy, err := mapper.ParsePolicy(cfg.Mapping.Policy)
	if err != nil {
		return nil, err
	}

	service := services.NewJobsService(client, mapper.New(policy))
	service.SetPageSize(cfg.Store.PageSize)
	return service, nil
}

func openDb(cfg *config.Config) (*repositories.DbContext, error) {
	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		return nil, errors.Wrap(err, "can't create db context")
	}

	if err = dbContext.Migrate(); err != nil {
		_ = dbContext.Close()
		return nil, errors.Wrap(err, "can't migrate db context")
	}
	return dbContext, nil
}
