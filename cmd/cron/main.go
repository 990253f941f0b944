package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mojorewards/internal/datastore"
	"mojorewards/internal/pkg/caching"

	"github.com/hiendaovinh/toolkit/pkg/db"
	"github.com/hiendaovinh/toolkit/pkg/env"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/urfave/cli/v2"
)

const CRONJOB_WARM_CACHE = "CRONJOB_WARM_CACHE"
const DEFAULT_WARM_SCHEDULE = "@every 20s"

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load("../../.env")

	// for production
	//nolint:errcheck
	godotenv.Load("./.env")
}

func main() {
	app := &cli.App{
		Name: "cronjob",
		Commands: []*cli.Command{
			commandCronjob(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// commandCronjob keeps the shared Redis cache filled so that web instances
// rarely wait on the records API.
func commandCronjob() *cli.Command {
	return &cli.Command{
		Name: "cron",
		Action: func(c *cli.Context) error {
			vs, err := env.EnvsRequired("REWARDS_API_URL", "REDIS_CACHE")
			if err != nil {
				return err
			}

			dbRedis, err := db.InitRedis(&db.RedisConfig{
				URL: vs["REDIS_CACHE"],
			})
			if err != nil {
				return err
			}

			cache, err := caching.NewCacheRedis(dbRedis, false)
			if err != nil {
				return err
			}
			//nolint:errcheck
			defer cache.Shutdown()

			// entries outlive two runs so a slow upstream never empties the cache
			client, err := datastore.NewClient(vs["REWARDS_API_URL"],
				datastore.WithTimeout(10*time.Second),
				datastore.WithCache(cache, 3*time.Minute),
			)
			if err != nil {
				return err
			}

			schedule := os.Getenv(CRONJOB_WARM_CACHE)
			if schedule == "" {
				schedule = DEFAULT_WARM_SCHEDULE
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cronRunner := cron.New()
			warmJob := NewWarmJob(client)
			if err := warmJob.Start(ctx, cronRunner, schedule); err != nil {
				return err
			}

			log.Println("Start cronjob")
			cronRunner.Start()
			<-ctx.Done()
			<-cronRunner.Stop().Done()
			return nil
		},
	}
}
