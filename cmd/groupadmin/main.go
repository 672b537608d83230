// Command groupadmin creates and lists post groups. Groups are managed by
// administrators only; the web application never writes them.
//
// Usage:
//
//	groupadmin create --slug=cats --title="Cats" [--description="All about cats"]
//	groupadmin list
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yatube-backend/internal/adapter/postgres/group"
	"github.com/heartmarshall/yatube-backend/internal/config"
	"github.com/heartmarshall/yatube-backend/internal/domain"
)

const usage = `Usage:
  groupadmin create --slug=SLUG --title=TITLE [--description=TEXT]
  groupadmin list`

var slugRe = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// errUsage means the arguments were malformed; main prints usage.
var errUsage = errors.New("invalid arguments")

type groupStore interface {
	List(ctx context.Context) ([]domain.Group, error)
	Create(ctx context.Context, g domain.Group) (*domain.Group, error)
}

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{DSN: dsn, MaxConns: 2})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	if err := run(ctx, os.Args[1:], os.Stdout, group.New(pool)); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, usage)
			pool.Close()
			os.Exit(2)
		}
		pool.Close()
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, out io.Writer, store groupStore) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	switch args[0] {
	case "create":
		return create(ctx, args[1:], out, store)
	case "list":
		return list(ctx, out, store)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func create(ctx context.Context, args []string, out io.Writer, store groupStore) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	slug := fs.String("slug", "", "unique URL-safe group identifier")
	title := fs.String("title", "", "group title")
	description := fs.String("description", "", "group description")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	g := domain.Group{
		Slug:        strings.TrimSpace(*slug),
		Title:       strings.TrimSpace(*title),
		Description: strings.TrimSpace(*description),
	}
	if !slugRe.MatchString(g.Slug) {
		return fmt.Errorf("%w: slug %q must contain only letters, digits, '-' and '_'", errUsage, g.Slug)
	}
	if g.Title == "" {
		return fmt.Errorf("%w: title is required", errUsage)
	}

	created, err := store.Create(ctx, g)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("group %q already exists", g.Slug)
		}
		return fmt.Errorf("create group: %w", err)
	}

	fmt.Fprintf(out, "Group %q created (/group/%s/).\n", created.Title, created.Slug)
	return nil
}

func list(ctx context.Context, out io.Writer, store groupStore) error {
	groups, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("list groups: %w", err)
	}
	if len(groups) == 0 {
		fmt.Fprintln(out, "No groups.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tTITLE\tDESCRIPTION")
	for _, g := range groups {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", g.Slug, g.Title, g.Description)
	}
	return tw.Flush()
}
