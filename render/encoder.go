package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"fightreel/config"
)

// Encode streams raw RGB24 frames into ffmpeg over stdin, burns the ASS
// overlay in, muxes the WAV mixdown, and writes an H.264/AAC MP4.
func Encode(frames io.Reader, assPath, wavPath, outputPath string, width, height, fps int) error {
	video := ffmpeg.Input("pipe:", ffmpeg.KwArgs{
		"format":    "rawvideo",
		"pix_fmt":   "rgb24",
		"s":         fmt.Sprintf("%dx%d", width, height),
		"framerate": fps,
	})
	audio := ffmpeg.Input(wavPath)

	// ffmpeg's ass filter needs forward slashes and escaped colons in
	// the filter graph
	assArg := filepath.ToSlash(assPath)
	assArg = strings.ReplaceAll(assArg, ":", "\\:")

	withOverlay := ffmpeg.Filter([]*ffmpeg.Stream{video}, "ass", ffmpeg.Args{assArg})

	err := ffmpeg.Output([]*ffmpeg.Stream{withOverlay, audio}, outputPath, ffmpeg.KwArgs{
		"c:v":      config.VideoCodec,
		"c:a":      config.AudioCodec,
		"b:a":      config.AudioBitrate,
		"pix_fmt":  "yuv420p",
		"preset":   config.VideoPreset,
		"threads":  config.EncoderThreads,
		"shortest": "",
	}).OverWriteOutput().WithInput(frames).Run()

	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}

	return nil
}
