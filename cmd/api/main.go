package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"stock-insight/internal/application/marketdata"
	"stock-insight/internal/application/registry"
	"stock-insight/internal/application/sentiment"
	"stock-insight/internal/infrastructure/config"
	"stock-insight/internal/infrastructure/db"
	"stock-insight/internal/infrastructure/external/gemini"
	"stock-insight/internal/infrastructure/external/twse"
	"stock-insight/internal/infrastructure/loader"
	"stock-insight/internal/infrastructure/persistence/postgres"
	httpapi "stock-insight/internal/interface/http"
)

func main() {
	cfg, err := config.LoadFromFile("config.yaml")
	if err != nil {
		log.Fatalf("CRITICAL: load config failed: %v", err)
	}
	log.Printf("configuration loaded (HTTP_ADDR=%s)", cfg.HTTP.Addr)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		log.Printf("warning: database connection failed, corpus fallback disabled: %v", err)
		pool = nil
	} else if pool == nil {
		log.Printf("no DB_DSN provided; running with file corpus only")
	} else {
		defer pool.Close()
		log.Printf("database connected successfully")
	}

	provider := registry.NewProvider(
		loader.NewTWSource(cfg.Data.TWListFile),
		loader.NewUSSource(cfg.Data.USListFile),
	)
	log.Printf("security registry built entries=%d", provider.Current().Len())

	var corpusStore loader.CorpusStore
	if pool != nil {
		corpusStore = postgres.NewCorpusRepo(pool)
	}
	corpus := loader.NewCorpusLoader(cfg.Data.NewsFile, corpusStore)

	var analyzer sentiment.Analyzer
	if cfg.Gemini.Enabled {
		client, err := gemini.NewClient(context.Background(), cfg.Gemini)
		if err != nil {
			log.Printf("warning: gemini client init failed, sentiment runs in fallback mode: %v", err)
		} else {
			analyzer = client
			log.Printf("gemini client ready model=%s", cfg.Gemini.Model)
		}
	} else {
		log.Printf("gemini disabled; sentiment endpoint returns neutral fallback")
	}
	sentimentUC := sentiment.NewService(analyzer, cfg.Sentiment.NewsLimit)

	var fetcher marketdata.Fetcher
	if cfg.MarketData.BaseURL != "" {
		fetcher = twse.NewClient(cfg.MarketData.BaseURL, cfg.MarketData.Timeout)
	} else {
		log.Printf("no market data base url; stock series are synthetic")
	}
	marketDataUC := marketdata.NewService(fetcher)

	apiServer := httpapi.NewServer(cfg, provider, corpus, marketDataUC, sentimentUC, pool)
	addr := cfg.HTTP.Addr
	log.Printf("starting HTTP server on %s", addr)
	if err := http.ListenAndServe(addr, apiServer.Handler()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
