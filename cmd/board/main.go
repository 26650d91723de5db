package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"schiphol-live/flightboard/internal/api"
	"schiphol-live/flightboard/internal/config"
	"schiphol-live/flightboard/internal/logging"
	"schiphol-live/flightboard/internal/metrics"
	"schiphol-live/flightboard/internal/models/dtos"
	"schiphol-live/flightboard/internal/models/entities"
	"schiphol-live/flightboard/internal/services"
	"schiphol-live/flightboard/internal/workers"

	"github.com/prometheus/client_golang/prometheus"
)

// board runs one fetch cycle per board and prints the result to stdout
func main() {
	boardFlag := flag.String("board", "both", "departures, arrivals or both")
	pagesFlag := flag.Int("pages", 0, "override FETCH_MAX_PAGES")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *pagesFlag > 0 {
		cfg.MaxPages = *pagesFlag
	}

	// zap writes to stderr, stdout is left to the board
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	deps, err := api.InitDependencies(cfg, metrics.NewMetricsRegistry(prometheus.NewRegistry()))
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}
	defer deps.Close()

	directions := deps.Services.Boards.Directions()
	if *boardFlag != "both" {
		dir, err := services.ParseDirection(*boardFlag)
		if err != nil {
			log.Fatalf("%v", err)
		}
		directions = []entities.Direction{dir}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queueCtx, stopQueues := context.WithCancel(context.Background())
	wc := workers.InitWorkers(queueCtx, deps.Services.Boards, 0, deps.Services.RenderQueues...)

	failed := false
	for _, dir := range directions {
		if _, err := deps.Services.Boards.Refresh(ctx, dir); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", dir.String(), err)
			failed = true
		}
	}

	// queues flush their backlog before returning
	stopQueues()
	wc.Wait()

	for _, dir := range directions {
		printBoard(dir, deps.Services.Views[dir].Rows())
	}
	if failed {
		os.Exit(1)
	}
}

func printBoard(dir entities.Direction, rows []dtos.BoardRow) {
	fmt.Printf("\n%s (%d)\n", strings.ToUpper(dir.String()), len(rows))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tFLIGHT\tROUTE\tGATE\tSTATUS")
	for _, row := range rows {
		statuses := make([]string, 0, len(row.Statuses))
		for _, s := range row.Statuses {
			statuses = append(statuses, s.Text)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			row.ScheduledTime, row.Flight, row.Route, row.Gate, strings.Join(statuses, ", "))
	}
	tw.Flush()
}
