package speech

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voice_agent/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// echoSTT returns whatever bytes it was given as the transcript.
type echoSTT struct {
	err   error
	calls int
}

func (s *echoSTT) Transcribe(_ context.Context, audio []byte, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return string(audio), nil
}

type fakeTTS struct {
	genErr      error
	downloadErr error
	result      *SynthesisResult
	requests    []SynthesisRequest
	downloads   []string
}

func (f *fakeTTS) Generate(_ context.Context, req SynthesisRequest) (*SynthesisResult, error) {
	f.requests = append(f.requests, req)
	if f.genErr != nil {
		return nil, f.genErr
	}
	if f.result != nil {
		return f.result, nil
	}
	return &SynthesisResult{AudioURL: "https://cdn.example/out.mp3"}, nil
}

func (f *fakeTTS) Download(_ context.Context, url string) (io.ReadCloser, error) {
	f.downloads = append(f.downloads, url)
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	return io.NopCloser(bytes.NewReader([]byte("mp3-bytes"))), nil
}

type recordingNotifier struct {
	sources []string
}

func (n *recordingNotifier) Notify(_ context.Context, source string, _ error, _ string) error {
	n.sources = append(n.sources, source)
	return nil
}

func newTestService(stt STTClient, tts TTSClient, n *recordingNotifier) *Service {
	return NewService(stt, tts, n, logger.NewZapLogger(zap.NewNop().Sugar()))
}

func TestVoiceReplyUsesMappedVoice(t *testing.T) {
	stt := &echoSTT{}
	tts := &fakeTTS{}
	svc := newTestService(stt, tts, &recordingNotifier{})

	audio, err := svc.VoiceReply(context.Background(), []byte("what a day"), "clip.wav", "narrator")
	require.NoError(t, err)
	defer audio.Body.Close()

	require.Len(t, tts.requests, 1)
	assert.Equal(t, SynthesisRequest{Text: "what a day", VoiceID: "en-US-terrell", Format: FormatMP3}, tts.requests[0])
	assert.Equal(t, []string{"https://cdn.example/out.mp3"}, tts.downloads)
	assert.Equal(t, AudioContentType, audio.ContentType)

	data, _ := io.ReadAll(audio.Body)
	assert.Equal(t, "mp3-bytes", string(data))
}

func TestVoiceReplyUnknownStyleFallsBack(t *testing.T) {
	tts := &fakeTTS{}
	svc := newTestService(&echoSTT{}, tts, &recordingNotifier{})

	audio, err := svc.VoiceReply(context.Background(), []byte("x"), "", "opera")
	require.NoError(t, err)
	audio.Body.Close()

	assert.Equal(t, DefaultVoiceID, tts.requests[0].VoiceID)
}

func TestVoiceReplyTranscriptionFailureSkipsSynthesis(t *testing.T) {
	stt := &echoSTT{err: errors.New("upstream exploded")}
	tts := &fakeTTS{}
	n := &recordingNotifier{}
	svc := newTestService(stt, tts, n)

	_, err := svc.VoiceReply(context.Background(), []byte("x"), "clip.wav", "default")

	assert.EqualError(t, err, "upstream exploded")
	assert.Empty(t, tts.requests)
	assert.Empty(t, tts.downloads)
	assert.Equal(t, []string{"stt"}, n.sources)
}

func TestVoiceReplyProviderErrorPassesThrough(t *testing.T) {
	tts := &fakeTTS{genErr: &ports.ProviderError{Provider: "murf", StatusCode: http.StatusTooManyRequests, Body: "slow down"}}
	svc := newTestService(&echoSTT{}, tts, &recordingNotifier{})

	_, err := svc.VoiceReply(context.Background(), []byte("x"), "clip.wav", "game")

	var pe *ports.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusTooManyRequests, pe.StatusCode)
	assert.Empty(t, tts.downloads)
}

func TestSpeakMissingAudioURL(t *testing.T) {
	tts := &fakeTTS{genErr: ErrNoAudioURL}
	svc := newTestService(&echoSTT{}, tts, &recordingNotifier{})

	_, err := svc.Speak(context.Background(), "hi", "support")
	assert.ErrorIs(t, err, ErrNoAudioURL)
}

func TestSpeakDownloadFailure(t *testing.T) {
	tts := &fakeTTS{downloadErr: ErrAudioDownload}
	svc := newTestService(&echoSTT{}, tts, &recordingNotifier{})

	_, err := svc.Speak(context.Background(), "hi", "support")
	assert.ErrorIs(t, err, ErrAudioDownload)
}

func TestGenerateReturnsURLWithoutFormat(t *testing.T) {
	tts := &fakeTTS{result: &SynthesisResult{AudioURL: "https://cdn.example/g.wav"}}
	svc := newTestService(&echoSTT{}, tts, &recordingNotifier{})

	url, err := svc.Generate(context.Background(), "hello", "SERGEANT")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example/g.wav", url)
	assert.Equal(t, SynthesisRequest{Text: "hello", VoiceID: "en-US-ken"}, tts.requests[0])
	assert.Empty(t, tts.downloads)
}

func TestMissingKeyIsNotReported(t *testing.T) {
	n := &recordingNotifier{}
	svc := newTestService(&echoSTT{}, &fakeTTS{genErr: ports.NotConfigured("Murf API key")}, n)

	_, err := svc.Generate(context.Background(), "hello", "default")

	assert.ErrorIs(t, err, ports.ErrNotConfigured)
	assert.Empty(t, n.sources)
}
