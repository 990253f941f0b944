package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"mojorewards/internal"
	"mojorewards/internal/api/handler"
	"mojorewards/internal/api/stub"
	"mojorewards/internal/datastore"
	"mojorewards/internal/interfaces"
	"mojorewards/internal/pkg/caching"
	"mojorewards/internal/pkg/locker"
	"mojorewards/internal/pkg/ratelimit"
	"mojorewards/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/db"
	"github.com/hiendaovinh/toolkit/pkg/env"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
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
		Name:  "web",
		Usage: "MojoTX rewards site",
		Commands: []*cli.Command{
			commandServer(),
			commandStubAPI(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandServer() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "start the web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: "0.0.0.0:8080",
				Usage: "serve address",
			},
		},
		Action: func(c *cli.Context) error {
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

			registry := prometheus.NewRegistry()
			registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			router, err := handler.New(&handler.Config{
				Container:      container,
				Mode:           vs["API_MODE"],
				Registry:       registry,
				TrustedProxies: envList(vs, "TRUSTED_PROXIES"),
			})
			if err != nil {
				return err
			}

			return serve(c.Context, c.String("addr"), router, vs["API_MODE"])
		},
	}
}

func commandStubAPI() *cli.Command {
	return &cli.Command{
		Name:  "stub-api",
		Usage: "serve the records API from in-memory fixtures",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: "0.0.0.0:8081",
				Usage: "serve address",
			},
			&cli.BoolFlag{
				Name:  "fail-claims",
				Usage: "answer every claim with a server error",
			},
		},
		Action: func(c *cli.Context) error {
			s := stub.New(stub.DefaultFixtures(time.Now()))
			s.SetFailClaims(c.Bool("fail-claims"))
			return serve(c.Context, c.String("addr"), s.Handler(false), "stub")
		},
	}
}

func serve(parent context.Context, addr string, h http.Handler, mode string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errWg, errCtx := errgroup.WithContext(ctx)

	errWg.Go(func() error {
		log.Printf("ListenAndServe: %s (%s)\n", addr, mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	errWg.Go(func() error {
		<-errCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return errWg.Wait()
}

// envInt reads a positive integer, fallback when unset, malformed or not
// positive.
func envInt(vs map[string]string, key string, fallback int) int {
	v, err := strconv.Atoi(vs[key])
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// envList splits a comma-separated variable, dropping empty items.
func envList(vs map[string]string, key string) []string {
	list := []string{}
	for _, item := range strings.Split(vs[key], ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

func NewContainer(vs map[string]string) *do.Injector {
	injector := do.New()
	for _, key := range []string{
		"API_MODE",
		"API_TIMEOUT_SECONDS",
		"CACHE_TTL_SECONDS",
		"CLAIM_RATE_LIMIT_PER_MINUTE",
		"DISCORD_INVITE_URL",
		"REFERRAL_CODE",
		"TRUSTED_PROXIES",
		"REDIS_CACHE",
		"REDIS_LIMITER",
		"REDIS_MUTEX",
	} {
		vs[key] = os.Getenv(key)
	}

	if vs["API_MODE"] == "" {
		vs["API_MODE"] = "production"
	}
	if vs["DISCORD_INVITE_URL"] == "" {
		vs["DISCORD_INVITE_URL"] = internal.DISCORD_INVITE_URL
	}

	timeout := time.Duration(envInt(vs, "API_TIMEOUT_SECONDS", 10)) * time.Second
	cacheTTL := time.Duration(envInt(vs, "CACHE_TTL_SECONDS", 30)) * time.Second

	do.ProvideNamedValue(injector, "envs", vs)

	do.ProvideNamed(injector, "redis-cache", func(i *do.Injector) (redis.UniversalClient, error) {
		return db.InitRedis(&db.RedisConfig{
			URL: vs["REDIS_CACHE"],
		})
	})

	do.ProvideNamed(injector, "redis-limiter", func(i *do.Injector) (redis.UniversalClient, error) {
		return db.InitRedis(&db.RedisConfig{
			URL: vs["REDIS_LIMITER"],
		})
	})

	do.ProvideNamed(injector, "redis-mutex", func(i *do.Injector) (redis.UniversalClient, error) {
		return db.InitRedis(&db.RedisConfig{
			URL: vs["REDIS_MUTEX"],
		})
	})

	do.Provide(injector, func(i *do.Injector) (caching.Cache, error) {
		if vs["REDIS_CACHE"] == "" {
			return caching.NewCacheLocal(cacheTTL), nil
		}

		dbRedis, err := do.InvokeNamed[redis.UniversalClient](i, "redis-cache")
		if err != nil {
			return nil, err
		}

		return caching.NewCacheRedis(dbRedis, true)
	})

	do.Provide(injector, func(i *do.Injector) (interfaces.Limiter, error) {
		if vs["REDIS_LIMITER"] == "" {
			return ratelimit.NewLimiterMemory(), nil
		}

		dbRedis, err := do.InvokeNamed[redis.UniversalClient](i, "redis-limiter")
		if err != nil {
			return nil, err
		}

		return ratelimit.NewLimiterRedis(dbRedis), nil
	})

	do.Provide(injector, func(i *do.Injector) (interfaces.Locker, error) {
		if vs["REDIS_MUTEX"] == "" {
			return locker.NewLockerLocal(), nil
		}

		dbRedis, err := do.InvokeNamed[redis.UniversalClient](i, "redis-mutex")
		if err != nil {
			return nil, err
		}

		return locker.NewLockerRedis(dbRedis, locker.DEFAULT_EXPIRY), nil
	})

	do.Provide(injector, func(i *do.Injector) (*datastore.Client, error) {
		cache, err := do.Invoke[caching.Cache](i)
		if err != nil {
			return nil, err
		}

		return datastore.NewClient(vs["REWARDS_API_URL"],
			datastore.WithTimeout(timeout),
			datastore.WithCache(cache, cacheTTL),
		)
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
