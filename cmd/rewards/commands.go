package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"mojorewards/internal"
	"mojorewards/internal/pkg/clipboard"
	"mojorewards/internal/pkg/countdown"
	"mojorewards/internal/services"

	"github.com/samber/do"
	"github.com/urfave/cli/v2"
)

var flagWatch = &cli.StringFlag{
	Name:  "watch",
	Usage: "refresh on a cron schedule, e.g. \"@every 30s\"",
}

func commandLeaderboard() *cli.Command {
	return &cli.Command{
		Name:  "leaderboard",
		Usage: "show the monthly leaderboard",
		Flags: []cli.Flag{flagWatch},
		Action: withContainer(func(ctx context.Context, c *cli.Context, container *do.Injector) error {
			serviceLeaderboard, err := do.Invoke[*services.ServiceLeaderboard](container)
			if err != nil {
				return err
			}

			return watch(ctx, c.String("watch"), func(ctx context.Context) error {
				board, err := serviceLeaderboard.GetLeaderboard(ctx)
				if err != nil {
					return err
				}
				printLeaderboard(c.App.Writer, board, time.Now())
				return nil
			})
		}),
	}
}

func commandMilestones() *cli.Command {
	return &cli.Command{
		Name:  "milestones",
		Usage: "list level milestones",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "tier",
				Usage: "show every reward of one tier",
			},
		},
		Action: withContainer(func(ctx context.Context, c *cli.Context, container *do.Injector) error {
			serviceMilestone, err := do.Invoke[*services.ServiceMilestone](container)
			if err != nil {
				return err
			}

			milestones, err := serviceMilestone.GetMilestones(ctx)
			if err != nil {
				return err
			}

			if !c.IsSet("tier") {
				printMilestones(c.App.Writer, milestones)
				return nil
			}

			milestone, err := services.FindMilestone(milestones, c.Int("tier"))
			if err != nil {
				return fmt.Errorf("tier %d: %w", c.Int("tier"), err)
			}
			vs := do.MustInvokeNamed[map[string]string](container, "envs")
			printMilestone(c.App.Writer, milestone, vs["DISCORD_INVITE_URL"])
			return nil
		}),
	}
}

func commandChallenges() *cli.Command {
	return &cli.Command{
		Name:  "challenges",
		Usage: "list active challenges",
		Flags: []cli.Flag{flagWatch},
		Action: withContainer(func(ctx context.Context, c *cli.Context, container *do.Injector) error {
			serviceChallenge, err := do.Invoke[*services.ServiceChallenge](container)
			if err != nil {
				return err
			}

			return watch(ctx, c.String("watch"), func(ctx context.Context) error {
				challenges, err := serviceChallenge.GetActiveChallenges(ctx)
				if err != nil {
					return err
				}
				printChallenges(c.App.Writer, challenges)
				return nil
			})
		}),
	}
}

func commandFreeSpins() *cli.Command {
	return &cli.Command{
		Name:  "free-spins",
		Usage: "list active free spins offers",
		Flags: []cli.Flag{flagWatch},
		Action: withContainer(func(ctx context.Context, c *cli.Context, container *do.Injector) error {
			serviceFreeSpins, err := do.Invoke[*services.ServiceFreeSpins](container)
			if err != nil {
				return err
			}

			return watch(ctx, c.String("watch"), func(ctx context.Context) error {
				now := time.Now()
				offers, err := serviceFreeSpins.GetActiveOffers(ctx, now)
				if err != nil {
					return err
				}
				printFreeSpins(c.App.Writer, offers, now)
				return nil
			})
		}),
	}
}

func commandReferral() *cli.Command {
	return &cli.Command{
		Name:  "referral",
		Usage: "show the referral program",
		Action: withContainer(func(ctx context.Context, c *cli.Context, container *do.Injector) error {
			serviceReferral, err := do.Invoke[*services.ServiceReferral](container)
			if err != nil {
				return err
			}

			printReferral(c.App.Writer, serviceReferral.Program())
			return nil
		}),
	}
}

func commandClaim() *cli.Command {
	return &cli.Command{
		Name:  "claim",
		Usage: "claim the prize of a challenge",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "challenge", Required: true, Usage: "challenge id"},
			&cli.StringFlag{Name: "username", Usage: "Gamdom username"},
			&cli.StringFlag{Name: "discord", Usage: "Discord username"},
		},
		Action: withContainer(func(ctx context.Context, c *cli.Context, container *do.Injector) error {
			serviceChallenge, err := do.Invoke[*services.ServiceChallenge](container)
			if err != nil {
				return err
			}

			selected, err := serviceChallenge.FindActiveChallenge(ctx, c.String("challenge"))
			if err != nil {
				return fmt.Errorf("challenge %s: %w", c.String("challenge"), err)
			}

			dialog := &services.ClaimDialog{
				Username:        c.String("username"),
				DiscordUsername: c.String("discord"),
			}
			dialog.Open(selected)

			outcome := serviceChallenge.Submit(ctx, dialog, "")
			printToast(c.App.Writer, &outcome.Toast)
			if !outcome.Succeeded() {
				return cli.Exit("", 1)
			}

			fmt.Fprintf(c.App.Writer, "Open a ticket on Discord: %s\n", outcome.RedirectURL)
			return nil
		}),
	}
}

func commandCopy() *cli.Command {
	return &cli.Command{
		Name:      "copy",
		Usage:     "copy a code to the clipboard, the referral code by default",
		ArgsUsage: "[text]",
		Action: func(c *cli.Context) error {
			if !clipboard.Supported() {
				return errors.New("clipboard is not available on this system")
			}

			text := c.Args().First()
			if text == "" {
				text = os.Getenv(services.ENV_REFERRAL_CODE)
			}
			if text == "" {
				text = internal.REFERRAL_CODE
			}

			button := clipboard.NewButton(text)
			if err := button.Copy(); err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "%s %s\n", colorPrimary.Sprint(button.Label()), text)
			return nil
		},
	}
}

func commandCountdown() *cli.Command {
	return &cli.Command{
		Name:  "countdown",
		Usage: "live countdown to a deadline, the leaderboard end by default",
		Flags: []cli.Flag{
			&cli.TimestampFlag{
				Name:   "until",
				Layout: time.RFC3339,
				Usage:  "deadline in RFC 3339",
			},
		},
		Action: withContainer(func(ctx context.Context, c *cli.Context, container *do.Injector) error {
			var until time.Time
			if t := c.Timestamp("until"); t != nil {
				until = *t
			} else {
				serviceLeaderboard, err := do.Invoke[*services.ServiceLeaderboard](container)
				if err != nil {
					return err
				}
				board, err := serviceLeaderboard.GetLeaderboard(ctx)
				if err != nil {
					return err
				}
				if board.Settings == nil {
					return errors.New("no leaderboard end date is set")
				}
				until = board.Settings.EndDate
			}

			err := countdown.New(until).Run(ctx, func(r countdown.Remaining) {
				fmt.Fprintf(c.App.Writer, "\r%-20s", r)
			})
			fmt.Fprintln(c.App.Writer)
			return err
		}),
	}
}
