package main

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// watch runs task now and then on every tick of schedule until ctx is done.
// An empty schedule runs task once.
func watch(ctx context.Context, schedule string, task func(ctx context.Context) error) error {
	if schedule == "" {
		return task(ctx)
	}

	cronRunner := cron.New()
	_, err := cronRunner.AddFunc(schedule, func() {
		if err := task(ctx); err != nil {
			log.Println(err)
		}
	})
	if err != nil {
		return err
	}

	if err := task(ctx); err != nil {
		log.Println(err)
	}

	cronRunner.Start()
	<-ctx.Done()
	<-cronRunner.Stop().Done()
	return nil
}
