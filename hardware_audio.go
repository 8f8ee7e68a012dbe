package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexpad/superchip/common"
)

const (
	sampleRate = 44100
	toneFreq   = 440

	// tonePeriod is samples per square-wave cycle. Chunks are whole cycles
	// so re-queueing does not glitch the phase.
	tonePeriod = sampleRate / toneFreq
	toneChunk  = 10 * tonePeriod
)

// Beeper emits a square-wave tone through SDL queued audio while the
// machine's sound timer is non-zero. The queue drains to silence on its own
// when the timer reaches zero.
type Beeper struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
	wave []byte
}

func NewBeeper() common.Device {
	b := new(Beeper)

	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		panic(fmt.Errorf("failed to init audio: %v", err))
	}

	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var actualSpec sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		panic(fmt.Errorf("failed to open audio device: %v", err))
	}

	b.id = id
	b.spec = actualSpec

	b.wave = make([]byte, toneChunk)
	for i := range b.wave {
		if (i/(tonePeriod/2))%2 == 0 {
			b.wave[i] = b.spec.Silence + 24
		} else {
			b.wave[i] = b.spec.Silence
		}
	}

	sdl.PauseAudioDevice(b.id, false)
	return b
}

func (b *Beeper) Tick(m common.Machine) {
	if !m.SoundActive() {
		return
	}

	// Keep a couple of chunks queued, no more.
	if sdl.GetQueuedAudioSize(b.id) > uint32(2*len(b.wave)) {
		return
	}
	if err := sdl.QueueAudio(b.id, b.wave); err != nil {
		panic(fmt.Errorf("failed to queue audio: %v", err))
	}
}

func (b *Beeper) Cleanup() {
	sdl.CloseAudioDevice(b.id)
}
