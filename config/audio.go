package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundHop
	SoundDeath
	SoundRescue
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths inside the embedded audio assets
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundHop:    "audio/sfx/hop.wav",
			SoundDeath:  "audio/sfx/death.wav",
			SoundRescue: "audio/sfx/rescue.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHop: 0.5,
		},
	}
}
