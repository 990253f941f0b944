package main

import (
	"context"
	"log"
	"time"

	"mojorewards/internal/api"
	"mojorewards/internal/datastore"

	"github.com/robfig/cron/v3"
)

type WarmJob struct {
	client *datastore.Client
	ctx    context.Context
}

func NewWarmJob(client *datastore.Client) *WarmJob {
	return &WarmJob{client: client, ctx: context.Background()}
}

func (j *WarmJob) Start(ctx context.Context, cronRunner *cron.Cron, schedule string) error {
	j.ctx = ctx

	_, err := cronRunner.AddFunc(schedule, j.runScheduledTask)
	if err != nil {
		return err
	}
	log.Println("Warm cache cronjob start at:", time.Now().Format("2006-01-02 15:04:05"), "cron:", schedule)

	j.runScheduledTask()
	return nil
}

func (j *WarmJob) runScheduledTask() {
	if failed := j.Warm(j.ctx); len(failed) > 0 {
		log.Println("Warm cache incomplete:", failed)
	}
}

// Warm refreshes every read endpoint and returns the paths that failed.
func (j *WarmJob) Warm(ctx context.Context) []string {
	failed := []string{}
	for _, path := range api.ReadPaths {
		if err := j.client.Refresh(ctx, path); err != nil {
			log.Println("warm", path, err)
			failed = append(failed, path)
		}
	}
	return failed
}
