package render

import (
	"fmt"
	"os"
	"path/filepath"

	"fightreel/audio"
	"fightreel/config"
	"fightreel/fight"
)

// CreateVideo renders the full clip for a matchup to outputPath: the
// procedural frame stream, the ASS text overlay, and the synthesized
// soundtrack, all composited by the encoder.
func CreateVideo(m fight.Matchup, title string, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	sb := fight.NewStoryboard()
	tmpDir := os.TempDir()
	base := filepath.Base(outputPath)

	assPath := filepath.Join(tmpDir, fmt.Sprintf("%s_overlay.ass", base))
	overlay := &Overlay{
		Storyboard: sb,
		Matchup:    m,
		Title:      title,
		Width:      config.VideoWidth,
		Height:     config.VideoHeight,
		FPS:        config.VideoFPS,
	}
	if err := overlay.WriteFile(assPath); err != nil {
		return fmt.Errorf("failed to write overlay: %w", err)
	}
	defer os.Remove(assPath)

	wavPath := filepath.Join(tmpDir, fmt.Sprintf("%s_audio.wav", base))
	if err := audio.WriteWAV(wavPath, audio.BuildScore(sb).Samples()); err != nil {
		return fmt.Errorf("failed to write soundtrack: %w", err)
	}
	defer os.Remove(wavPath)

	frames := NewFrameSource(sb, config.VideoWidth, config.VideoHeight, config.VideoFPS)

	return Encode(frames, assPath, wavPath, outputPath,
		config.VideoWidth, config.VideoHeight, config.VideoFPS)
}
