package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hexpad/superchip/common"
	"github.com/hexpad/superchip/schip"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

const frameRate = 60

func dumpDeviceList() {
	for name, desc := range deviceDescriptions {
		fmt.Printf("%-20s %s\n", name, desc)
	}
}

// Turbo uncaps the frame rate. Toggled from the keypad with F4.
var Turbo bool = false

// displayScale is the window scale factor, set from the -scale flag and read
// by the display device at creation time.
var displayScale = 8

func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func main() {
	deviceList := flag.String("hw", "keypad,display,audio",
		"List of hardware devices. See -dump-hw for a list of devices.")
	dumpDevices := flag.Bool("dump-hw", false,
		"Dump a list of hardware devices and exit.")
	disassemble := flag.Bool("disassemble", false, "Disassemble the ROM to stdout")
	turboFlag := flag.Bool("turbo", false,
		"True to start in turbo (unlimited frame rate) mode. Default: false, 60Hz.")
	script := flag.String("script", "", "Lua automation script to run before starting.")
	wavFile := flag.String("wav", "", "Record the tone channel to the given WAV file.")
	scale := flag.Int("scale", 8, "Window scale factor (pixels per display pixel).")
	ipf := flag.Int("ipf", schip.DefaultOpsPerFrame, "Instructions per 60Hz frame.")
	hires := flag.Bool("hires", false, "Start in 128x64 high-resolution mode.")
	seed := flag.Int64("seed", 0, "Seed for the random instruction (0 = time-based).")

	shiftQuirk := flag.Bool("shift-quirk", true,
		"8xy6/8xyE shift Vx in place instead of shifting Vy into Vx.")
	loadStoreQuirk := flag.Bool("loadstore-quirk", true,
		"Fx55/Fx65 leave I unchanged instead of advancing it.")
	jumpQuirk := flag.Bool("jump-quirk", true,
		"Bnnn uses Vx as the offset register instead of V0.")
	clipQuirk := flag.Bool("clip-quirk", true,
		"Sprites clip at the display edge instead of wrapping.")
	logicQuirk := flag.Bool("logic-quirk", true,
		"8xy1/8xy2/8xy3 leave VF untouched instead of zeroing it.")

	debug := flag.Bool("debug", false, "Enable debug logging.")
	quiet := flag.Bool("q", false, "Quiet mode.")

	flag.Parse()

	logger := createLogger(*debug, *quiet)

	if *dumpDevices {
		dumpDeviceList()
		return
	}

	romFile := flag.Arg(0)
	if romFile == "" {
		fmt.Printf("Usage: %s [options] <ROM file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	rom, err := os.ReadFile(romFile)
	if err != nil {
		logger.Fatal("failed to open ROM file", log.Err(err))
	}

	m := schip.New(schip.Config{
		Quirks: schip.Quirks{
			Shift:     *shiftQuirk,
			LoadStore: *loadStoreQuirk,
			Jump:      *jumpQuirk,
			Clip:      *clipQuirk,
			Logic:     *logicQuirk,
		},
		OpsPerFrame: *ipf,
		HighRes:     *hires,
		Seed:        *seed,
	})

	if err := m.LoadROM(rom); err != nil {
		logger.Fatal("failed to load ROM", log.Err(err))
	}
	logger.Debug("ROM loaded", log.String("file", romFile), log.Int("bytes", len(rom)))

	if *disassemble {
		m.Disassemble()
		return
	}

	common.InputReader = bufio.NewReader(os.Stdin)
	displayScale = *scale

	for _, d := range strings.Split(*deviceList, ",") {
		if d == "" {
			continue
		}
		if dt, ok := deviceTypes[d]; ok {
			logger.Debug("loading device", log.String("device", d))
			m.AddDevice(dt())
		} else {
			fmt.Printf("Unknown device: %s\n", d)
			dumpDeviceList()
			return
		}
	}

	if *wavFile != "" {
		m.AddDevice(NewWavRecorder(*wavFile, logger))
	}

	Turbo = *turboFlag

	if *script != "" {
		if err := RunScript(m, *script); err != nil {
			cleanup(m)
			logger.Fatal("script failed", log.Err(err))
		}
	}

	run(app.Context(), m, logger)
}

func cleanup(m common.Machine) {
	for _, d := range m.Devices() {
		d.Cleanup()
	}
}

func debugConsole(m common.Machine) {
	// Print the prompt and handle the input.
	m.DebugPrompt()
	in, err := common.InputReader.ReadString('\n')
	if err != nil {
		fmt.Printf("error while reading input: %v\n", err)
		return
	}

	// Try to parse in. First split on spaces.
	args := strings.Split(strings.TrimSpace(in), " ")
	if cmd, ok := common.DebugCommands[args[0]]; ok {
		cmd.Run(m, args)
	} else {
		fmt.Printf("Unknown command '%s'\n", args[0])
		fmt.Printf("Commands:\n")
		for key, dbg := range common.DebugCommands {
			fmt.Printf("%s\t%s\n", key, dbg.Describe())
		}
	}
}

func fKey(m common.Machine, key int) {
	switch key {
	case 1: // F1 - help
		fmt.Println("=== Emulator commands ===")
		fmt.Println("F1\tShow this help")
		fmt.Println("F2\tStart debugging")
		fmt.Println("F3\tResume running")
		fmt.Println("F4\tTurbo speed toggle")

	case 2: // F2 - start debugging
		*m.Debugging() = true

	case 3: // F3 - stop debugging
		*m.Debugging() = false

	case 4: // F4 - toggle turbo
		Turbo = !Turbo
		if Turbo {
			fmt.Println("Turbo enabled: frame rate unlimited")
		} else {
			fmt.Println("Turbo disabled: running at 60Hz")
		}
	}
}

func run(ctx context.Context, m common.Machine, logger *log.Logger) {
	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	// Repeatedly run frames, stopping on a debug to show the console.
	for {
		for !*m.Debugging() {
			if Turbo {
				select {
				case <-ctx.Done():
					cleanup(m)
					return
				default:
				}
			} else {
				select {
				case <-ctx.Done():
					cleanup(m)
					return
				case <-ticker.C:
				}
			}

			if err := m.Frame(); err != nil {
				if errors.Is(err, schip.ErrExited) {
					logger.Info("program exited")
				} else {
					logger.Error("emulation halted", log.Err(err))
				}
				cleanup(m)
				return
			}
		}

		debugConsole(m)
	}
}
