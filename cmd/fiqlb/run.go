package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/charliearlie/football-IQ-sub007/internal/config"
	"github.com/charliearlie/football-IQ-sub007/internal/database"
	"github.com/charliearlie/football-IQ-sub007/internal/fetcher"
	"github.com/charliearlie/football-IQ-sub007/internal/poller"
	"github.com/charliearlie/football-IQ-sub007/internal/ranking"
	"github.com/charliearlie/football-IQ-sub007/internal/web"
)

func setup() (*config.Config, *database.DatabaseInst, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	db, err := database.InitDatabase(cfg.Database.Path, cfg.Database.Migrations)
	if err != nil {
		return nil, nil, err
	}

	return cfg, db, nil
}

func syncDay(cfg *config.Config, db *database.DatabaseInst, day string) error {
	fetcherConfig := &fetcher.BackendFetcherConfig{
		BaseURL: cfg.Backend.BaseURL,
		APIKey:  cfg.Backend.APIKey,
	}

	attempts, err := fetcher.FetchDailyAttempts(fetcherConfig, day)
	if err != nil {
		return err
	}

	if err := db.StoreAttempts(attempts); err != nil {
		return err
	}

	ids := []string{}
	seen := map[string]bool{}
	for _, attempt := range attempts {
		if seen[attempt.UserID] {
			continue
		}
		seen[attempt.UserID] = true
		ids = append(ids, attempt.UserID)
	}

	profiles, err := fetcher.FetchProfiles(fetcherConfig, ids)
	if err != nil {
		return err
	}

	return db.StoreProfiles(profiles)
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func runServe(port int) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if port > 0 {
		cfg.Server.Port = port
	}

	p, err := poller.New(
		func() error { return syncDay(cfg, db, today()) },
		cfg.Schedule.ParsePollInterval(),
		cfg.Schedule.ParseRefreshMinGap(),
	)
	if err != nil {
		return err
	}
	defer p.Shutdown()

	p.Start()
	log.Println("Started!")

	s := web.InitServer(web.ServerConfig{
		Port:       cfg.Server.Port,
		MaxEntries: cfg.Backend.LeaderboardSize,
	}, db, p)

	return s.Listen()
}

func runSync(day string) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if len(day) == 0 {
		day = today()
	}

	if err := syncDay(cfg, db, day); err != nil {
		return err
	}

	log.Printf("Synced %s\n", day)
	return nil
}

func runBoard(day string, jsonOutput bool) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if len(day) == 0 {
		day = today()
	}

	attempts, err := db.GetDayAttempts(day)
	if err != nil {
		return err
	}

	profiles, err := db.GetProfiles()
	if err != nil {
		return err
	}

	board := ranking.BuildBoard(attempts, profiles)

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(board)
	}

	fmt.Printf("%s: %d players\n", day, len(board))
	for _, entry := range board {
		name := entry.DisplayName
		if len(name) == 0 {
			name = entry.UserID
		}
		fmt.Printf("%4d  %-24s %4d  (%d games)\n", entry.Rank, name, entry.Score, entry.GamesPlayed)
	}

	return nil
}
