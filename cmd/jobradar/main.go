package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/pterm/pterm"

	"jobradar/internal/config"
	"jobradar/internal/fetch"
	"jobradar/internal/fetch/adzuna"
	"jobradar/internal/fetch/board"
	"jobradar/internal/notify"
	"jobradar/internal/output"
	"jobradar/internal/pipeline"
	"jobradar/internal/rank"
	"jobradar/internal/scheduler"
	"jobradar/internal/secrets"
	"jobradar/internal/store"
	"jobradar/internal/trends"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "config file (default: <data>/config.yml, seeded from config/config.yml)")
		dataDir = flag.String("data", defaultDataDir(), "data directory (db, lock, user config)")
		once    = flag.Bool("once", false, "run a single scan and exit")
	)
	flag.Parse()

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	path := *cfgPath
	if path == "" {
		var err error
		path, err = config.EnsureUserConfig(*dataDir, filepath.Join("config", "config.yml"))
		if err != nil {
			log.Fatalf("config bootstrap failed: %v", err)
		}
	}

	raw, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", path, err)
	}
	cfg, v := config.NormalizeAndValidate(raw)
	for _, w := range v.Warnings {
		pterm.Warning.Println(w)
	}
	if !v.OK() {
		for _, e := range v.Errors {
			pterm.Error.Println(e)
		}
		os.Exit(1)
	}

	// one scan at a time, even across processes (cron + manual run)
	lock := flock.New(filepath.Join(*dataDir, "jobradar.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("run lock: %v", err)
	}
	if !locked {
		log.Fatal("another jobradar run holds the lock; exiting")
	}
	defer lock.Unlock()

	db, err := store.Open(filepath.Join(*dataDir, "jobradar.db"))
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer db.Close()

	fetchers, err := buildFetchers(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var tg *notify.Telegram
	if cfg.Notify.Telegram.Enabled {
		token := os.Getenv("TELEGRAM_BOT_TOKEN")
		if token == "" {
			log.Fatal("notify.telegram.enabled=true but TELEGRAM_BOT_TOKEN is not set")
		}
		tg, err = notify.NewTelegram(token, cfg.Notify.Telegram.ChatID)
		if err != nil {
			log.Fatalf("telegram: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run := func(ctx context.Context) error {
		return runScan(ctx, cfg, fetchers, db, tg)
	}

	if *once {
		if err := run(ctx); err != nil {
			log.Fatalf("[scan] %v", err)
		}
		return
	}

	interval := time.Duration(cfg.Polling.IntervalMinutes) * time.Minute
	log.Printf("[scan] running every %s (data=%s)", interval, *dataDir)
	scheduler.Every(ctx, interval, "scan", run)
}

func defaultDataDir() string {
	if d := os.Getenv("JOBRADAR_DATA_DIR"); d != "" {
		return d
	}
	return "."
}

func buildFetchers(cfg config.Config) ([]fetch.Fetcher, error) {
	var fetchers []fetch.Fetcher

	if cfg.Sources.Adzuna.Enabled {
		appID, appKey, err := secrets.AdzunaCredentials()
		if err != nil {
			return nil, err
		}
		a := cfg.Sources.Adzuna
		fetchers = append(fetchers, adzuna.New(adzuna.Config{
			AppID:          appID,
			AppKey:         appKey,
			Country:        a.Country,
			What:           a.What,
			Where:          a.Where,
			Pages:          a.Pages,
			ResultsPerPage: a.ResultsPerPage,
		}, fetch.NewPacer(a.ReqPerSec, 1)))
	}

	for _, b := range cfg.Sources.Boards {
		fetchers = append(fetchers, board.New(board.Config{
			Name:        b.Name,
			URL:         b.URL,
			CompanyName: b.CompanyName,
			RowSel:      b.Selectors.Row,
			TitleSel:    b.Selectors.Title,
			CompanySel:  b.Selectors.Company,
			LocationSel: b.Selectors.Location,
			LinkSel:     b.Selectors.Link,
		}))
	}

	return fetchers, nil
}

func runScan(ctx context.Context, cfg config.Config, fetchers []fetch.Fetcher, db *store.DB, tg *notify.Telegram) error {
	runID := uuid.NewString()
	log.Printf("[scan] start run=%s sources=%d", runID, len(fetchers))

	bar := pb.StartNew(len(fetchers))
	res := pipeline.Run(ctx, fetchers, pipeline.Options{
		TargetCities:   cfg.Filters.TargetCities,
		RemoteKeywords: cfg.Filters.RemoteKeywords,
		Scorer: rank.ProfileScorer{
			Profile:        cfg.Profile,
			IncludeCompany: cfg.Scoring.IncludeCompany,
		},
		Trends: trends.Options{
			TopK:            cfg.Trends.TopK,
			MaxVocab:        cfg.Trends.MaxVocab,
			HighDemandRatio: cfg.Trends.HighDemandRatio,
		},
		TrendsUseFiltered: cfg.Trends.UseFiltered,
	}, func(name string, fetched int) {
		log.Printf("[%s] fetched=%d", name, fetched)
		bar.Increment()
	})
	bar.Finish()

	if err := os.MkdirAll(cfg.App.OutputDir, 0o755); err != nil {
		return fmt.Errorf("output dir: %w", err)
	}
	stamp := time.Now().Format("20060102_1504")

	curated := output.SortByScore(res.Curated)

	jobsPath := filepath.Join(cfg.App.OutputDir, "jobs_"+stamp+".csv")
	if err := output.WriteCuratedCSV(jobsPath, curated); err != nil {
		return err
	}
	trendsPath := filepath.Join(cfg.App.OutputDir, "trends_"+stamp+".json")
	if err := output.WriteTrendsJSON(trendsPath, res.Trends, res.HighDemand); err != nil {
		return err
	}
	if err := db.SaveSnapshot(ctx, runID, curated); err != nil {
		return err
	}
	log.Printf("[scan] saved %s %s", jobsPath, trendsPath)

	output.PrintSummary(res)

	if tg != nil {
		if err := tg.SendCurated(curated, cfg.Notify.Telegram.TopN); err != nil {
			log.Printf("[notify] telegram send: %v", err)
		}
	}
	return nil
}
