// Package main composes one emotional-support response from the command
// line and prints it as JSON.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/solacekit/solace/internal/catalog"
	"github.com/solacekit/solace/internal/config"
	"github.com/solacekit/solace/internal/engine"
	"github.com/solacekit/solace/internal/history"
	"github.com/solacekit/solace/internal/safety"
	"github.com/solacekit/solace/internal/sentiment"
	"github.com/solacekit/solace/internal/types"
)

func main() {
	emotionFlag := flag.String("emotion", "neutral", "detected emotion label (any upstream taxonomy)")
	textFlag := flag.String("text", "", "optional user text for risk and sentiment analysis")
	intensityFlag := flag.Float64("intensity", -1, "optional emotion intensity in [0,1]; negative means unset")
	historyFlag := flag.String("history", "", "optional comma-separated recent emotions, oldest first")
	flag.Parse()

	cfg := config.Load()

	opts := []catalog.Option{}
	if cfg.CatalogPath != "" {
		opts = append(opts, catalog.WithOverlayFile(cfg.CatalogPath))
	}
	cat, err := catalog.New(opts...)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	scorer := sentiment.NewScorer(sentiment.NewVaderBackend(), sentiment.NewLexiconBackend())
	analyzer := history.NewAnalyzer(cfg.HistoryWindow, cfg.NegativeThreshold, cfg.LowEnergyThreshold)
	composer := engine.New(safety.NewScanner(), scorer, cat, analyzer, cfg.HighIntensityThreshold)

	req := engine.Request{
		Emotion: *emotionFlag,
		Text:    *textFlag,
	}
	if *intensityFlag >= 0 {
		req.Intensity = intensityFlag
	}
	if *historyFlag != "" {
		for _, label := range strings.Split(*historyFlag, ",") {
			req.History = append(req.History, types.MoodEntry{Emotion: strings.TrimSpace(label)})
		}
	}

	payload := composer.Compose(req)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		log.Fatalf("failed to encode response: %v", err)
	}
}
