package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Output is the device cues are played on
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Close()
}

// speakerOutput plays through the process-wide beep speaker
type speakerOutput struct{}

// NewSpeakerOutput returns the system audio device output
func NewSpeakerOutput() Output {
	return speakerOutput{}
}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (speakerOutput) Play(s beep.Streamer) {
	speaker.Play(s)
}

func (speakerOutput) Close() {
	speaker.Clear()
	speaker.Close()
}
