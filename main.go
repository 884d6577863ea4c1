package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"

	"fightreel/api"
	"fightreel/config"
	"fightreel/fight"
	"fightreel/history"
	"fightreel/kafka"
	"fightreel/processor"
	"fightreel/storage"
	"fightreel/upload"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	serveMode := flag.Bool("serve", false, "Run the HTTP API server")
	kafkaMode := flag.Bool("kafka", false, "Consume render requests from Kafka")
	outPath := flag.String("out", config.DefaultOutputPath(), "Output video path")
	noUpload := flag.Bool("no-upload", false, "Render only, never upload")
	seed := flag.Int64("seed", 0, "Matchup RNG seed (0 = time-based)")
	left := flag.String("left", "", "Left fighter name (random matchup if empty)")
	right := flag.String("right", "", "Right fighter name (random matchup if empty)")
	flag.Parse()

	proc := buildProcessor()

	if *serveMode {
		addr := config.APIAddr()
		server := api.NewServer(proc)
		log.Printf("API server listening on %s", addr)
		log.Println("  GET  /health")
		log.Println("  POST /api/render")
		if err := server.Router().Run(addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	if *kafkaMode {
		cfg := kafka.RenderConsumerConfig{
			Brokers:   kafka.GetBrokers(),
			Topic:     kafka.GetTopic(),
			GroupID:   kafka.GetGroupID(),
			Processor: proc,
		}
		log.Printf("Kafka brokers: %v, topic: %s, group: %s", cfg.Brokers, cfg.Topic, cfg.GroupID)
		if err := kafka.StartConsumerWithGracefulShutdown(cfg); err != nil {
			log.Fatalf("Kafka consumer failed: %v", err)
		}
		return
	}

	// One-shot mode: render today's fight and upload if configured.
	matchup, err := pickMatchup(*left, *right, *seed)
	if err != nil {
		log.Fatalf("invalid matchup: %v", err)
	}

	result, err := proc.Run(context.Background(), processor.Job{
		Matchup:    matchup,
		OutputPath: *outPath,
		Upload:     !*noUpload,
	})
	if err != nil {
		log.Fatalf("render failed: %v", err)
	}

	log.Printf("Done. Video: %s", result.OutputPath)
	if result.Uploaded {
		log.Printf("Watch: https://youtube.com/shorts/%s", result.VideoID)
	}
}

// buildProcessor wires the optional stages from the environment: each
// missing credential just disables its stage.
func buildProcessor() *processor.Processor {
	opts := processor.Options{HistoryKey: history.Key}

	if creds, ok := upload.CredentialsFromEnv(); ok {
		uploader, err := upload.NewUploader(creds)
		if err != nil {
			log.Printf("YouTube uploader not initialized: %v", err)
		} else {
			log.Println("YouTube client initialized")
			opts.Uploader = uploader
		}
	} else {
		log.Println("YouTube secrets not set. Running in render-only mode.")
	}

	if bucket := config.S3Bucket(); bucket != "" {
		archive, err := storage.NewArchive(context.Background(), bucket, config.S3Region())
		if err != nil {
			log.Printf("S3 archive not initialized: %v", err)
		} else {
			log.Printf("Archiving renders to s3://%s", bucket)
			opts.Archiver = archive
		}
	}

	if addr := config.RedisAddr(); addr != "" {
		hist, err := history.NewFromEnv()
		if err != nil {
			log.Printf("Render history not initialized: %v", err)
		} else {
			log.Println("Render history enabled")
			opts.History = hist
		}
	}

	return processor.New(opts)
}

func pickMatchup(left, right string, seed int64) (fight.Matchup, error) {
	if left != "" || right != "" {
		return fight.MatchupFromNames(left, right)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return fight.RandomMatchup(rng), nil
}
