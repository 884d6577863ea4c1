package processor

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"fightreel/config"
	"fightreel/fight"
	"fightreel/render"
	"fightreel/upload"
)

// Uploader publishes a rendered file and returns the hosted video ID.
type Uploader interface {
	Upload(videoPath string, metadata upload.Metadata) (string, error)
}

// Archiver stores a rendered file under a key.
type Archiver interface {
	Store(ctx context.Context, key, path string) error
}

// History reports whether a matchup was already published today.
type History interface {
	MarkPublished(ctx context.Context, key string) (bool, error)
}

// HistoryKeyFunc derives the history key for a job; split out so the
// history package stays optional.
type HistoryKeyFunc func(day time.Time, m fight.Matchup) string

// RenderFunc produces the clip file; the default is render.CreateVideo.
type RenderFunc func(m fight.Matchup, title, outputPath string) error

// Job is one render request.
type Job struct {
	ID         string
	Matchup    fight.Matchup
	OutputPath string
	Upload     bool
}

// Result reports what a run produced.
type Result struct {
	OutputPath string
	VideoID    string
	Uploaded   bool
}

// Options wires the optional pipeline stages. Nil fields disable their
// stage (and Render falls back to the real renderer).
type Options struct {
	Render     RenderFunc
	Uploader   Uploader
	Archiver   Archiver
	History    History
	HistoryKey HistoryKeyFunc
	Now        func() time.Time
}

// Processor runs the render → verify → archive → upload pipeline.
type Processor struct {
	render     RenderFunc
	uploader   Uploader
	archiver   Archiver
	history    History
	historyKey HistoryKeyFunc
	now        func() time.Time
}

// New builds a Processor from Options.
func New(opts Options) *Processor {
	p := &Processor{
		render:     opts.Render,
		uploader:   opts.Uploader,
		archiver:   opts.Archiver,
		history:    opts.History,
		historyKey: opts.HistoryKey,
		now:        opts.Now,
	}
	if p.render == nil {
		p.render = render.CreateVideo
	}
	if p.now == nil {
		p.now = time.Now
	}
	return p
}

// Run executes one job. Render and verification failures are fatal and
// returned; archive, history and upload failures are logged and
// swallowed so the run still reports the output path.
func (p *Processor) Run(ctx context.Context, job Job) (Result, error) {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.OutputPath == "" {
		job.OutputPath = config.DefaultOutputPath()
	}

	day := p.now()
	title := fight.TitleCard(day)
	log.Printf("[%s] Rendering %s...", job.ID, job.Matchup.VersusLabel())

	if err := p.render(job.Matchup, title, job.OutputPath); err != nil {
		return Result{}, fmt.Errorf("video creation failed: %w", err)
	}
	if err := verifyOutput(job.OutputPath); err != nil {
		return Result{}, err
	}
	log.Printf("[%s] Saved: %s", job.ID, job.OutputPath)

	result := Result{OutputPath: job.OutputPath}

	key := ""
	if p.historyKey != nil {
		key = p.historyKey(day, job.Matchup)
	}

	if p.archiver != nil && key != "" {
		if err := p.archiver.Store(ctx, key+".mp4", job.OutputPath); err != nil {
			log.Printf("[%s] Archive failed: %v", job.ID, err)
		} else {
			log.Printf("[%s] Archived as %s.mp4", job.ID, key)
		}
	}

	if !job.Upload {
		log.Printf("[%s] Upload disabled for this job", job.ID)
		return result, nil
	}
	if p.uploader == nil {
		log.Printf("[%s] YouTube secrets not set. Skipping upload.", job.ID)
		return result, nil
	}

	if p.history != nil && key != "" {
		first, err := p.history.MarkPublished(ctx, key)
		if err != nil {
			log.Printf("[%s] History check failed, uploading anyway: %v", job.ID, err)
		} else if !first {
			log.Printf("[%s] %s already published today. Skipping upload.", job.ID, job.Matchup.VersusLabel())
			return result, nil
		}
	}

	metadata := upload.GenerateMetadata(job.Matchup, day)
	videoID, err := p.uploader.Upload(job.OutputPath, metadata)
	if err != nil {
		// Upload problems never fail the run; the clip is on disk.
		log.Printf("[%s] YouTube upload failed: %v", job.ID, err)
		return result, nil
	}

	result.VideoID = videoID
	result.Uploaded = true
	return result, nil
}

// verifyOutput confirms the encoder actually produced a non-empty file.
func verifyOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("output file missing: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("output file is empty: %s", path)
	}
	return nil
}
