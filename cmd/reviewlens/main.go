package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/reviewlens/reviewlens/api"
	"github.com/reviewlens/reviewlens/config"
	"github.com/reviewlens/reviewlens/internal/engine"
	"github.com/reviewlens/reviewlens/internal/report"
)

func main() {
	// Define command-line flags
	var (
		help        = flag.Bool("help", false, "Show help message")
		version     = flag.Bool("version", false, "Show version information")
		configPath  = flag.String("config", "", "Path to YAML config file")
		restaurants = flag.String("restaurants", "", "Restaurant metadata CSV (overrides config)")
		reviews     = flag.String("reviews", "", "Review CSV (overrides config)")
		serve       = flag.Bool("serve", false, "Serve the computed report over HTTP instead of printing it")
		port        = flag.String("port", "", "Port for --serve mode (overrides config)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("reviewlens - restaurant review analytics\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                                      # Analyze default datasets and print the report\n", os.Args[0])
		fmt.Printf("  %s --config reviewlens.yaml             # Use a config file\n", os.Args[0])
		fmt.Printf("  %s --restaurants r.csv --reviews v.csv  # Analyze specific datasets\n", os.Args[0])
		fmt.Printf("  %s --serve --port 9000                  # Compute once, then serve the report as JSON\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("reviewlens v1.0.0\n")
		fmt.Printf("TF-IDF term relevance, sentiment, and rating analytics for restaurant reviews\n")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *restaurants != "" {
		cfg.Datasets.Restaurants = *restaurants
	}
	if *reviews != "" {
		cfg.Datasets.Reviews = *reviews
	}

	// Run the whole pipeline once; both output modes consume the snapshot.
	eng, err := engine.NewEngine(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}
	result, err := eng.Run()
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	if !*serve {
		report.Render(os.Stdout, result)
		return
	}

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, eng)

	listenPort := fmt.Sprintf("%d", cfg.Server.Port)
	if *port != "" {
		listenPort = *port
	}

	// Start the server
	log.Printf("Serving report on port %s...", listenPort)
	if err := router.Run(":" + listenPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
