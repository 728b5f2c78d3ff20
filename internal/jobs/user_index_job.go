package jobs

import (
	"context"
	"log"

	"anoa.com/quarterdirectory/internal/repository"
	"anoa.com/quarterdirectory/internal/service"
)

const userIndexBatchSize = 500

// UserIndexJob resynchronizes the meilisearch users index from the host
// application's users table. The table is owned elsewhere, so the
// directory rebuilds its search view with a periodic sweep instead of
// write hooks.
type UserIndexJob struct {
	users    repository.UserRepository
	indexer  service.UserIndexer
	schedule string
}

func NewUserIndexJob(users repository.UserRepository, indexer service.UserIndexer, schedule string) *UserIndexJob {
	return &UserIndexJob{
		users:    users,
		indexer:  indexer,
		schedule: schedule,
	}
}

func (j *UserIndexJob) Name() string     { return "directory-user-index-sync" }
func (j *UserIndexJob) Schedule() string { return j.schedule }

func (j *UserIndexJob) Run(ctx context.Context) error {
	var afterID int64
	var indexed int

	for {
		batch, err := j.users.ListActiveAfter(ctx, afterID, userIndexBatchSize)
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			break
		}

		if err := j.indexer.IndexUsers(batch); err != nil {
			return err
		}

		indexed += len(batch)
		afterID = batch[len(batch)-1].ID

		if len(batch) < userIndexBatchSize {
			break
		}
	}

	log.Printf("[%s] Synced %d users into the search index", j.Name(), indexed)
	return nil
}
