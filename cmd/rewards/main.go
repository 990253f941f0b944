package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"mojorewards/internal"
	"mojorewards/internal/datastore"
	"mojorewards/internal/interfaces"
	"mojorewards/internal/pkg/locker"
	"mojorewards/internal/pkg/ratelimit"
	"mojorewards/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/env"
	"github.com/joho/godotenv"
	"github.com/samber/do"
	"github.com/urfave/cli/v2"
)

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
		Name:  "rewards",
		Usage: "MojoTX rewards from the terminal",
		Commands: []*cli.Command{
			commandLeaderboard(),
			commandMilestones(),
			commandChallenges(),
			commandFreeSpins(),
			commandReferral(),
			commandClaim(),
			commandCopy(),
			commandCountdown(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// withContainer runs action with a container built from the environment and
// a context cancelled on SIGINT/SIGTERM.
func withContainer(action func(ctx context.Context, c *cli.Context, container *do.Injector) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		vs, err := env.EnvsRequired(
			"REWARDS_API_URL",
		)
		if err != nil {
			return err
		}

		container := NewContainer(vs)
		defer func() {
			if err := container.Shutdown(); err != nil {
				log.Println("shutdown", err)
			}
		}()

		ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		err = action(ctx, c, container)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
}

func NewContainer(vs map[string]string) *do.Injector {
	injector := do.New()
	vs["API_TIMEOUT_SECONDS"] = os.Getenv("API_TIMEOUT_SECONDS")
	vs["DISCORD_INVITE_URL"] = os.Getenv("DISCORD_INVITE_URL")
	vs["REFERRAL_CODE"] = os.Getenv("REFERRAL_CODE")
	// local process, no per-client limit
	vs["CLAIM_RATE_LIMIT_PER_MINUTE"] = "0"

	if vs["DISCORD_INVITE_URL"] == "" {
		vs["DISCORD_INVITE_URL"] = internal.DISCORD_INVITE_URL
	}

	timeout := datastore.DEFAULT_TIMEOUT
	if v, err := strconv.Atoi(vs["API_TIMEOUT_SECONDS"]); err == nil && v > 0 {
		timeout = time.Duration(v) * time.Second
	}

	do.ProvideNamedValue(injector, "envs", vs)

	do.Provide(injector, func(i *do.Injector) (interfaces.Limiter, error) {
		return ratelimit.NewLimiterMemory(), nil
	})

	do.Provide(injector, func(i *do.Injector) (interfaces.Locker, error) {
		return locker.NewLockerLocal(), nil
	})

	// every command and every --watch tick reads fresh data, no query cache
	do.Provide(injector, func(i *do.Injector) (*datastore.Client, error) {
		return datastore.NewClient(vs["REWARDS_API_URL"], datastore.WithTimeout(timeout))
	})

	do.Provide(injector, func(i *do.Injector) (*services.ServiceLeaderboard, error) {
		return services.NewServiceLeaderboard(injector)
	})

	do.Provide(injector, func(i *do.Injector) (*services.ServiceMilestone, error) {
		return services.NewServiceMilestone(injector)
	})

	do.Provide(injector, func(i *do.Injector) (*services.ServiceChallenge, error) {
		return services.NewServiceChallenge(injector)
	})

	do.Provide(injector, func(i *do.Injector) (*services.ServiceFreeSpins, error) {
		return services.NewServiceFreeSpins(injector)
	})

	do.Provide(injector, func(i *do.Injector) (*services.ServiceReferral, error) {
		return services.NewServiceReferral(injector)
	})

	return injector
}
