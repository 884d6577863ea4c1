package kafka

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fightreel/fight"
	"fightreel/processor"
)

// RenderRequest is the message shape on the render topic. Fighters are
// optional; an empty pair means "pick a random matchup".
type RenderRequest struct {
	UUID       string `json:"uuid"`
	Left       string `json:"left,omitempty"`
	Right      string `json:"right,omitempty"`
	OutputPath string `json:"output_path,omitempty"`
	SkipUpload bool   `json:"skip_upload,omitempty"`
}

// RenderConsumerConfig wires the consumer to a processor.
type RenderConsumerConfig struct {
	Brokers   []string
	Topic     string
	GroupID   string
	Processor *processor.Processor
}

// NewRenderConsumer builds a consumer that turns RenderRequest messages
// into processor jobs.
func NewRenderConsumer(config RenderConsumerConfig) (*Consumer, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	handler := &TypedMessageHandler[RenderRequest]{
		Validate: func(msg *RenderRequest) bool {
			if msg.UUID == "" {
				log.Printf("Render request missing UUID, skipping")
				return false
			}
			// Either both fighters or neither.
			if (msg.Left == "") != (msg.Right == "") {
				log.Printf("Render request %s names only one fighter, skipping", msg.UUID)
				return false
			}
			return true
		},
		Process: func(ctx context.Context, msg *RenderRequest) error {
			matchup, err := resolveMatchup(msg, rng)
			if err != nil {
				// A bad matchup never becomes valid on retry.
				log.Printf("Render request %s rejected: %v", msg.UUID, err)
				return nil
			}

			_, err = config.Processor.Run(ctx, processor.Job{
				ID:         msg.UUID,
				Matchup:    matchup,
				OutputPath: msg.OutputPath,
				Upload:     !msg.SkipUpload,
			})
			return err
		},
		AlwaysMark: true,
	}

	return NewConsumer(ConsumerConfig{
		Brokers: config.Brokers,
		Topic:   config.Topic,
		GroupID: config.GroupID,
		Handler: handler,
	})
}

func resolveMatchup(msg *RenderRequest, rng *rand.Rand) (fight.Matchup, error) {
	if msg.Left == "" && msg.Right == "" {
		return fight.RandomMatchup(rng), nil
	}
	return fight.MatchupFromNames(msg.Left, msg.Right)
}

// StartConsumerWithGracefulShutdown runs the render consumer until
// SIGINT/SIGTERM.
func StartConsumerWithGracefulShutdown(config RenderConsumerConfig) error {
	consumer, err := NewRenderConsumer(config)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		return err
	}

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigterm:
		log.Println("Received termination signal")
	case <-ctx.Done():
		log.Println("Context canceled")
	}

	cancel()

	// Give in-flight renders a moment to wrap up.
	time.Sleep(2 * time.Second)

	return consumer.Close()
}

// GetBrokers parses the broker list from KAFKA_BOOTSTRAP_SERVERS.
func GetBrokers() []string {
	brokers := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	if brokers == "" {
		brokers = "localhost:9093"
	}
	return strings.Split(brokers, ",")
}

// GetTopic returns the render request topic name.
func GetTopic() string {
	topic := os.Getenv("KAFKA_TOPIC_RENDER_REQUESTS")
	if topic == "" {
		topic = "render-requests"
	}
	return topic
}

// GetGroupID returns the consumer group ID.
func GetGroupID() string {
	groupID := os.Getenv("KAFKA_CONSUMER_GROUP_ID")
	if groupID == "" {
		groupID = "fightreel-render"
	}
	return groupID
}
