// Command dukactl is a terminal front-end for the Print Duka admin API:
// it logs in with a staff session, runs filtered list queries through
// the same query encoding and caching stack the admin screens use, and
// executes record-level actions.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"printduka-admin/config"
	configredis "printduka-admin/config/redis"
	"printduka-admin/internal/cache"
	"printduka-admin/internal/client"
	"printduka-admin/internal/list"
	"printduka-admin/internal/query"
	"printduka-admin/internal/resource"
	"printduka-admin/internal/session"
	"printduka-admin/pkg/log"
	"printduka-admin/pkg/paginator"
)

type filterFlags []string

func (f *filterFlags) String() string { return strings.Join(*f, ",") }

func (f *filterFlags) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("filter must be name=value, got %q", v)
	}
	*f = append(*f, v)
	return nil
}

func main() {
	var (
		username = flag.String("username", os.Getenv("DUKA_USERNAME"), "staff username")
		password = flag.String("password", os.Getenv("DUKA_PASSWORD"), "staff password")
		search   = flag.String("search", "", "free-text search")
		ordering = flag.String("ordering", "", "ordering expression, e.g. -created_at")
		page     = flag.Int("page", 1, "page number")
		pageSize = flag.Int("page-size", 20, "page size")
		action   = flag.String("action", "", "record action to execute (requires -id)")
		id       = flag.String("id", "", "record id for -action")
		filters  filterFlags
	)
	flag.Var(&filters, "filter", "filter as name=value (repeatable)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	readCache, err := buildCache(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize cache: ", err)
		os.Exit(1)
	}

	clientCfg := client.DefaultConfig()
	clientCfg.BaseURL = cfg.API.BaseURL
	clientCfg.Timeout = cfg.API.Timeout
	clientCfg.UserAgent = cfg.API.UserAgent

	api, err := client.New(logger, clientCfg, client.WithCache(readCache))
	if err != nil {
		logger.Error(ctx, "Failed to initialize API client: ", err)
		os.Exit(1)
	}
	defer api.Close()

	sess := session.New(logger, api)
	if *username != "" {
		if _, err := sess.Login(ctx, session.LoginInput{Username: *username, Password: *password}); err != nil {
			logger.Error(ctx, "Login failed: ", err)
			os.Exit(1)
		}
	}

	switch cmd := flag.Arg(0); cmd {
	case "resources":
		printResources()
	case "list":
		err = runList(ctx, logger, api, flag.Arg(1), filters, *search, *ordering, *page, *pageSize)
	case "act":
		err = runAction(ctx, api, flag.Arg(1), *id, *action)
	case "whoami":
		err = runWhoami(ctx, sess)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error(ctx, "Command failed: ", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  dukactl [flags] resources
  dukactl [flags] list <resource>
  dukactl [flags] act <resource> -id <id> -action <name>
  dukactl [flags] whoami

Flags:
`)
	flag.PrintDefaults()
}

func buildCache(ctx context.Context, logger log.Logger, cfg *config.Config) (cache.Cache, error) {
	if !cfg.Cache.UseRedis {
		return cache.NewMemory(cfg.Cache.TTL), nil
	}
	redisClient, err := configredis.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	return cache.NewRedis(logger, redisClient, cfg.Cache.TTL)
}

func runList(ctx context.Context, logger log.Logger, api *client.Client, res string, filters filterFlags, search, ordering string, page, pageSize int) error {
	desc, ok := resource.Lookup(res)
	if !ok {
		return fmt.Errorf("unknown resource %q (try: dukactl resources)", res)
	}

	// Earlier edits may settle before later ones are applied; keying each
	// terminal view lets us skip those and wait for the final query's.
	views := make(chan list.View[json.RawMessage], 32)
	sess := list.NewSession[json.RawMessage](logger, desc,
		func(ctx context.Context, key query.Key) (paginator.Page[json.RawMessage], error) {
			return client.FetchList[json.RawMessage](ctx, api, key)
		},
		func(v list.View[json.RawMessage]) {
			if v.Phase == list.PhaseSuccess || v.Phase == list.PhaseError {
				select {
				case views <- v:
				default:
				}
			}
		},
		list.WithBaseContext[json.RawMessage](ctx),
	)
	defer sess.Close()

	for _, f := range filters {
		name, value, _ := strings.Cut(f, "=")
		sess.SetFilter(ctx, name, value)
	}
	if ordering != "" {
		sess.SetFilter(ctx, "ordering", ordering)
	}
	if search != "" {
		sess.SetSearchText(search)
		sess.FlushSearch()
	}
	sess.SetPageSize(ctx, pageSize)
	sess.SetPage(ctx, page)

	want := sess.View().Key
	for v := range views {
		if v.Key != want {
			continue
		}
		if v.Phase == list.PhaseError {
			return v.Err
		}
		printPage(v)
		return nil
	}
	return nil
}

func printPage(v list.View[json.RawMessage]) {
	fmt.Printf("%s  (%d total", v.Key, v.Page.Count)
	if v.Page.HasNext() {
		fmt.Print(", more pages")
	}
	fmt.Println(")")

	if v.Empty() {
		fmt.Println("no records match the current filters")
		return
	}
	for _, raw := range v.Page.Results {
		line, err := json.Marshal(raw)
		if err != nil {
			continue
		}
		fmt.Println(string(line))
	}
	if len(v.Page.Summary) > 0 {
		fmt.Println("summary:", string(v.Page.Summary))
	}
}

func runAction(ctx context.Context, api *client.Client, res, id, action string) error {
	if res == "" || id == "" || action == "" {
		return fmt.Errorf("act requires a resource argument plus -id and -action")
	}
	desc, ok := resource.Lookup(res)
	if !ok {
		return fmt.Errorf("unknown resource %q", res)
	}
	if !desc.HasAction(action) {
		return fmt.Errorf("resource %q has no action %q (has: %s)", res, action, strings.Join(desc.Actions, ", "))
	}

	rec, err := client.Action[json.RawMessage](ctx, api, res, id, action, nil)
	if err != nil {
		return err
	}
	out, _ := json.Marshal(rec)
	fmt.Println(string(out))
	return nil
}

func runWhoami(ctx context.Context, sess *session.Client) error {
	user, err := sess.Check(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s) role=%s\n", user.Username, user.ID, user.Role)
	return nil
}

func printResources() {
	for _, desc := range resource.All() {
		names := make([]string, 0, len(desc.Schema.Fields))
		for _, f := range desc.Schema.Fields {
			names = append(names, f.Name)
		}
		fmt.Printf("%-16s filters: %s", desc.Name, strings.Join(names, ", "))
		if len(desc.Actions) > 0 {
			fmt.Printf("  actions: %s", strings.Join(desc.Actions, ", "))
		}
		fmt.Println()
	}
}
