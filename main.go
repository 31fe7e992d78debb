package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/victorres11/football-data-adhoc/cache"
	"github.com/victorres11/football-data-adhoc/cfbd"
	"github.com/victorres11/football-data-adhoc/config"
	"github.com/victorres11/football-data-adhoc/controller"
	"github.com/victorres11/football-data-adhoc/db"
	"github.com/victorres11/football-data-adhoc/espn"
	"github.com/victorres11/football-data-adhoc/web"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	syncFrequency, err := time.ParseDuration(cfg.GameSyncFrequency)
	if err != nil {
		log.Fatalf("error parsing game sync frequency: %v", err)
	}

	clock := clock.New()
	db, err := db.New(context.Background(), cfg.PostgresConnStr, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	espnClient, err := espn.New()
	if err != nil {
		log.Fatalf("error creating espn client: %v", err)
	}

	var cfbdClient cfbd.Client
	if cfg.CFBDAPIKey != "" {
		cfbdClient, err = cfbd.New(cfg.CFBDAPIKey)
		if err != nil {
			log.Fatalf("error creating cfbd client: %v", err)
		}
	}

	var analysisCache *cache.Cache
	if cfg.RedisURL != "" {
		analysisCache, err = cache.New(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatalf("error connecting to redis: %v", err)
		}
		defer analysisCache.Close()
	}

	ctrl, err := controller.New(clock, db, espnClient, cfbdClient, analysisCache)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(cfg.Port, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that re-analyzes games that were still in progress.
	wg.Add(1)
	go ctrl.RunPeriodicGameSync(syncFrequency, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
