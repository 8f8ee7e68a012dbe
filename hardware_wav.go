package main

import (
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
	wav "github.com/youpy/go-wav"

	"github.com/hexpad/superchip/common"
)

const wavSamplesPerFrame = sampleRate / frameRate

// WavRecorder captures the tone channel to a WAV file: one frame of square
// wave whenever the sound timer is active, silence otherwise. The whole
// recording is buffered in memory and written on Cleanup, so it is meant for
// test runs, not long sessions.
type WavRecorder struct {
	filename string
	logger   *log.Logger
	buffer   []wav.Sample
	phase    int
}

func NewWavRecorder(filename string, logger *log.Logger) common.Device {
	return &WavRecorder{
		filename: filename,
		logger:   logger,
	}
}

func (w *WavRecorder) Tick(m common.Machine) {
	active := m.SoundActive()

	for i := 0; i < wavSamplesPerFrame; i++ {
		v := 128
		if active && (w.phase/(tonePeriod/2))%2 == 0 {
			v = 192
		}
		w.phase++
		if w.phase >= tonePeriod {
			w.phase = 0
		}

		s := wav.Sample{}
		s.Values[0] = v
		s.Values[1] = v
		w.buffer = append(w.buffer, s)
	}
}

func (w *WavRecorder) Cleanup() {
	f, err := os.Create(w.filename)
	if err != nil {
		fmt.Printf("wav: could not create %s: %v\n", w.filename, err)
		return
	}
	defer f.Close()

	enc := wav.NewWriter(f, uint32(len(w.buffer)), 1, sampleRate, 8)
	if enc == nil {
		fmt.Printf("wav: bad parameters for wav encoding\n")
		return
	}

	w.logger.Info("writing audio", log.String("file", w.filename))
	if err := enc.WriteSamples(w.buffer); err != nil {
		fmt.Printf("wav: write failed: %v\n", err)
	}
}
