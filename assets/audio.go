package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// Sounds is the embedded audio filesystem, rooted above the audio directory.
func Sounds() fs.FS { return audioFS }

// AudioLoader handles loading and caching of sound effects
type AudioLoader struct {
	fsys       fs.FS
	sampleRate int

	mu       sync.Mutex
	sfxCache map[string][]byte // decoded PCM per path
}

// NewAudioLoader creates a loader that decodes sounds from fsys at sampleRate.
func NewAudioLoader(fsys fs.FS, sampleRate int) *AudioLoader {
	return &AudioLoader{
		fsys:       fsys,
		sampleRate: sampleRate,
		sfxCache:   make(map[string][]byte),
	}
}

// DecodeSFX returns the decoded PCM bytes of a sound effect, decoding it on
// first use. Call it at startup to avoid decode lag on first play.
func (l *AudioLoader) DecodeSFX(path string) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.sfxCache[path]; ok {
		return cached, nil
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}

	l.sfxCache[path] = decoded
	return decoded, nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(ctx *audio.Context, path string) (*audio.Player, error) {
	decoded, err := l.DecodeSFX(path)
	if err != nil {
		return nil, err
	}
	return ctx.NewPlayerFromBytes(decoded), nil
}
