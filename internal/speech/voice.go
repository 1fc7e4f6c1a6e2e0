package speech

// DefaultVoiceID — Rachel (ElevenLabs).
const DefaultVoiceID = "21m00Tcm4TlvDq8ikWAM"

const (
	modelMultilingualV2 = "eleven_multilingual_v2"
	outputFormatMP3     = "mp3_44100_128"
)

// VoiceProfile — голос и параметры синтеза. Неизменяем в рамках одного
// прогона пайплайна.
type VoiceProfile struct {
	VoiceID         string
	Stability       float64
	SimilarityBoost float64
	Style           float64
	SpeakerBoost    bool
}

func DefaultVoiceProfile() VoiceProfile {
	return VoiceProfile{
		VoiceID:         DefaultVoiceID,
		Stability:       0.5,
		SimilarityBoost: 0.75,
		Style:           0.0,
		SpeakerBoost:    true,
	}
}
