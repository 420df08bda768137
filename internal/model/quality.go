package model

// QualityPreset is one of the fixed user-selectable format policies.
// The zero value means "not selected".
type QualityPreset int

const (
	QualityUnset QualityPreset = iota
	QualityBest
	QualityCapped480p
	QualityWorst
	QualityAudioOnly
)

// Format selectors understood by yt-dlp
const (
	FormatBest       = "bestvideo+bestaudio/best"
	FormatCapped480p = "bestvideo[height<=480]+bestaudio/best"
	FormatWorst      = "worst"
	FormatAudioOnly  = "bestaudio"
)

// Container used when video and audio streams are merged
const MergeOutputFormat = "mp4"

// Audio transcode directive values
const (
	AudioPostProcessorKey = "FFmpegExtractAudio"
	AudioCodecMP3         = "mp3"
	AudioQuality128       = "128"
)

// AudioTranscode describes an audio extraction step run after the download
type AudioTranscode struct {
	Key     string
	Codec   string
	Quality string
}

type presetInfo struct {
	key      string
	label    string
	format   string
	merge    string
	audio    *AudioTranscode
	nativeQ  string
	nativeEx string
}

var presetTable = map[QualityPreset]presetInfo{
	QualityBest: {
		key:      "best",
		label:    "Original (Best Quality)",
		format:   FormatBest,
		merge:    MergeOutputFormat,
		nativeQ:  "best",
		nativeEx: "mp4",
	},
	QualityCapped480p: {
		key:      "480p",
		label:    "Lower Quality",
		format:   FormatCapped480p,
		merge:    MergeOutputFormat,
		nativeQ:  "height<=480",
		nativeEx: "mp4",
	},
	QualityWorst: {
		key:      "worst",
		label:    "Lowest Quality",
		format:   FormatWorst,
		merge:    MergeOutputFormat,
		nativeQ:  "worst",
		nativeEx: "mp4",
	},
	QualityAudioOnly: {
		key:    "audio",
		label:  "Audio Only (MP3)",
		format: FormatAudioOnly,
		audio: &AudioTranscode{
			Key:     AudioPostProcessorKey,
			Codec:   AudioCodecMP3,
			Quality: AudioQuality128,
		},
		// itag 140 is the AAC audio stream; the native engine cannot transcode
		nativeQ:  "itag=140",
		nativeEx: "",
	},
}

// AllQualityPresets returns the selectable presets in display order
func AllQualityPresets() []QualityPreset {
	return []QualityPreset{QualityBest, QualityCapped480p, QualityWorst, QualityAudioOnly}
}

// IsValid reports whether q is one of the four selectable presets
func (q QualityPreset) IsValid() bool {
	_, ok := presetTable[q]
	return ok
}

// String returns the display label
func (q QualityPreset) String() string {
	if info, ok := presetTable[q]; ok {
		return info.label
	}
	return ""
}

// Key returns the stable identifier used for persisted preferences
func (q QualityPreset) Key() string {
	return presetTable[q].key
}

// FormatSelector returns the yt-dlp format selector
func (q QualityPreset) FormatSelector() string {
	return presetTable[q].format
}

// MergeFormat returns the merge container, empty for audio-only downloads
func (q QualityPreset) MergeFormat() string {
	return presetTable[q].merge
}

// AudioTranscode returns the post-processing directive, or nil when the
// preset keeps the downloaded streams as they are.
func (q QualityPreset) AudioTranscode() *AudioTranscode {
	info, ok := presetTable[q]
	if !ok || info.audio == nil {
		return nil
	}
	a := *info.audio
	return &a
}

// NativeSelector returns the selector and extension used by the native engine
func (q QualityPreset) NativeSelector() (quality, ext string) {
	info := presetTable[q]
	return info.nativeQ, info.nativeEx
}

// ParseQualityLabel maps a display label back to its preset
func ParseQualityLabel(label string) (QualityPreset, bool) {
	for _, q := range AllQualityPresets() {
		if q.String() == label {
			return q, true
		}
	}
	return QualityUnset, false
}

// ParseQualityKey maps a persisted key back to its preset
func ParseQualityKey(key string) (QualityPreset, bool) {
	for _, q := range AllQualityPresets() {
		if q.Key() == key {
			return q, true
		}
	}
	return QualityUnset, false
}

// QualityLabels returns display labels in display order
func QualityLabels() []string {
	presets := AllQualityPresets()
	labels := make([]string, 0, len(presets))
	for _, q := range presets {
		labels = append(labels, q.String())
	}
	return labels
}
