// swapctl is a small terminal front end over the client SDK, mostly
// useful for poking at a running service: log in, browse users and
// projects, and drive a swap through its lifecycle.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"skillswap/internal/client"
	"skillswap/internal/client/gateway"
	"skillswap/internal/client/state"
	"skillswap/internal/config"
	"skillswap/internal/domain/swap"
)

const usage = `usage: swapctl [flags] <command> [args]

commands:
  users                               list users
  projects                            list projects
  swaps                               list your swaps
  propose <toUserId> <offered> <requested> <message>
  accept <swapId> | decline <swapId>
  chat <swapId>                       show a swap's message thread
  post <swapId> <text>                post to a swap's thread
  history <swapId>                    show a swap's status trail
  join <projectId>                    join a project
  profile <name> [bio]                edit your profile

flags:
  -email, -password                   credentials for authorized commands
`

func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	timeout := flag.Duration("timeout", 15*time.Second, "overall command timeout")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.New(os.Stderr, "", 0)
	sdk := client.New(gateway.New(config.LoadClient(), logger), logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *email != "" {
		if _, err := sdk.Auth.Login(ctx, *email, *password); err != nil {
			logger.Fatalf("login failed: %v", err)
		}
	}

	if err := run(ctx, sdk, args); err != nil {
		logger.Fatalf("%s: %v", args[0], err)
	}
}

func run(ctx context.Context, sdk *client.Client, args []string) error {
	switch args[0] {
	case "users":
		for _, u := range sdk.Auth.RefreshUsers(ctx) {
			status := "away"
			if u.Available {
				status = "available"
			}
			fmt.Printf("%4d  %-20s %-30s %s\n", u.ID, u.Name, u.Email, status)
		}
		return nil

	case "projects":
		for _, p := range sdk.ProjectFlows.Refresh(ctx) {
			fmt.Printf("%4d  %-40s creator=%d members=%v\n", p.ID, p.Title, p.CreatorID, p.Members)
		}
		return nil

	case "swaps":
		sdk.SwapFlows.Refresh(ctx)
		for _, rec := range sdk.Swaps.Records() {
			s := rec.Value
			fmt.Printf("%4d  %d -> %d  %q for %q  [%s] (%s)\n",
				s.ID, s.FromUserID, s.ToUserID, s.OfferedSkill, s.RequestedSkill, s.Status, rec.Origin)
		}
		return nil

	case "propose":
		if len(args) != 5 {
			return fmt.Errorf("expected <toUserId> <offered> <requested> <message>")
		}
		toUserID, err := parseID(args[1])
		if err != nil {
			return err
		}
		rec, err := sdk.SwapFlows.Propose(ctx, toUserID, args[2], args[3], args[4])
		if err != nil {
			return err
		}
		fmt.Printf("swap %d created (%s)\n", rec.Value.ID, rec.Origin)
		return warnIfLocal(rec.Origin)

	case "accept", "decline":
		if len(args) != 2 {
			return fmt.Errorf("expected <swapId>")
		}
		swapID, err := parseID(args[1])
		if err != nil {
			return err
		}
		target := swap.StatusAccepted
		if args[0] == "decline" {
			target = swap.StatusDeclined
		}
		sdk.SwapFlows.Refresh(ctx)
		rec, err := sdk.SwapFlows.UpdateStatus(ctx, swapID, target)
		if err != nil {
			return err
		}
		fmt.Printf("swap %d is now %s (%s)\n", rec.Value.ID, rec.Value.Status, rec.Origin)
		return warnIfLocal(rec.Origin)

	case "chat":
		if len(args) != 2 {
			return fmt.Errorf("expected <swapId>")
		}
		swapID, err := parseID(args[1])
		if err != nil {
			return err
		}
		for _, m := range sdk.SwapFlows.Messages(ctx, swapID) {
			fmt.Printf("[%s] user %d: %s\n", m.CreatedAt.Format(time.RFC3339), m.SenderID, m.Body)
		}
		return nil

	case "post":
		if len(args) != 3 {
			return fmt.Errorf("expected <swapId> <text>")
		}
		swapID, err := parseID(args[1])
		if err != nil {
			return err
		}
		if _, err := sdk.SwapFlows.PostMessage(ctx, swapID, args[2]); err != nil {
			return err
		}
		fmt.Println("posted")
		return nil

	case "history":
		if len(args) != 2 {
			return fmt.Errorf("expected <swapId>")
		}
		swapID, err := parseID(args[1])
		if err != nil {
			return err
		}
		for _, e := range sdk.SwapFlows.StatusHistory(ctx, swapID) {
			fmt.Printf("[%s] %s by user %d\n", e.CreatedAt.Format(time.RFC3339), e.Status, e.ActorID)
		}
		return nil

	case "join":
		if len(args) != 2 {
			return fmt.Errorf("expected <projectId>")
		}
		projectID, err := parseID(args[1])
		if err != nil {
			return err
		}
		sdk.ProjectFlows.Refresh(ctx)
		if err := sdk.ProjectFlows.Join(ctx, projectID); err != nil {
			return err
		}
		fmt.Println("joined")
		return nil

	case "profile":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("expected <name> [bio]")
		}
		edit := client.ProfileEdit{Name: &args[1]}
		if len(args) == 3 {
			edit.Bio = &args[2]
		}
		u, err := sdk.Auth.UpdateProfile(ctx, edit)
		if err != nil {
			return err
		}
		fmt.Printf("profile updated for %s\n", u.Name)
		return nil

	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func warnIfLocal(origin state.Origin) error {
	if origin == state.OriginPendingLocal {
		fmt.Fprintln(os.Stderr, "warning: service unreachable, change recorded locally only")
	}
	return nil
}
