package config

// Video Output Constants
const (
	// VideoWidth is the output video width (9:16 vertical)
	VideoWidth = 720

	// VideoHeight is the output video height (9:16 vertical)
	VideoHeight = 1280

	// VideoFPS is the output frame rate
	VideoFPS = 24

	// VideoDuration is the total clip length in seconds
	VideoDuration = 12.0

	// VideoCodec is the video encoding codec
	VideoCodec = "libx264"

	// AudioCodec is the audio encoding codec
	AudioCodec = "aac"

	// AudioBitrate is the audio quality bitrate
	AudioBitrate = "192k"

	// VideoPreset is the ffmpeg encoding speed preset
	VideoPreset = "medium"

	// EncoderThreads is the thread count handed to the encoder
	EncoderThreads = 4
)

// Audio Synthesis Constants
const (
	// AudioSampleRate is the mixdown sample rate in Hz
	AudioSampleRate = 44100

	// BaseToneFreq is the constant background tone frequency in Hz
	BaseToneFreq = 440.0

	// BaseToneVolume keeps the background tone barely audible
	BaseToneVolume = 0.03
)

// Directory Constants
const (
	// OutputDir is the directory for generated videos
	OutputDir = "out"

	// OutputFile is the default output file name
	OutputFile = "video.mp4"
)

// YouTube Constants
const (
	// YouTubeCategoryID for Entertainment
	YouTubeCategoryID = "24"

	// YouTubePrivacyStatus sets video visibility
	YouTubePrivacyStatus = "public"

	// MaxTitleLength is the maximum character length for video titles
	MaxTitleLength = 100
)
