// Command morphclock renders the morphing clock on real hardware: a Linux
// framebuffer, an NRZ LED strip over SPI, or the periph console screen as a
// fallback.
package main

import (
	"encoding/json"
	"flag"
	"image/color"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"

	"github.com/dotglow/morphclock"
	"github.com/dotglow/morphclock/blockfall"
	"github.com/dotglow/morphclock/fbdev"
	"github.com/dotglow/morphclock/pixel"
)

const statusStrip = 16

func main() {
	var (
		out       = flag.String("out", "fb", "output: fb | strip | console")
		fbName    = flag.String("fb", "/dev/fb0", "framebuffer device")
		modeFlag  = flag.String("mode", "classic", "start mode: classic | blockfall | segmentdot")
		colorFlag = flag.String("color", "00ff00", "base color (RRGGBB hex)")
		dot       = flag.Int("dot", 4, "dot diameter in physical pixels")
		gap       = flag.Int("gap", 1, "gap between dots in physical pixels")
		speed     = flag.Int("speed", 1, "morph speed multiplier")
		style     = flag.String("style", "spawn", "classic morph style: spawn | particle")
		use12h    = flag.Bool("12h", false, "12-hour display")
		rotate    = flag.Duration("rotate", 0, "auto-rotate interval, 0 disables")
		statePath = flag.String("state", "", "config persistence file")
		fps       = flag.Int("fps", 30, "render frames per second")
	)
	flag.Parse()

	cfg, store := loadConfig(*statePath)
	if cfg == nil {
		c := configFromFlags(*modeFlag, *colorFlag, *dot, *gap, *speed, *style, *use12h, *rotate)
		cfg = &c
	}

	var (
		sink morphclock.Sink
		geom morphclock.Geometry
		dev  *fbdev.Device
	)

	switch *out {
	case "fb":
		var err error
		if dev, err = fbdev.Open(*fbName); err != nil {
			log.Fatalf("open %s: %v", *fbName, err)
		}
		defer dev.Close()
		sink = dev

		bounds := dev.Bounds()
		panelH := bounds.Dy()
		if panelH >= 2*morphclock.Height {
			panelH -= statusStrip
		}
		geom = morphclock.FitGeometry(morphclock.Width, morphclock.Height,
			bounds.Dx(), panelH, cfg.DotDiameter, cfg.DotGap)

	case "strip", "console":
		if _, err := host.Init(); err != nil {
			log.Fatal(err)
		}
		sink = morphclock.NewDrawerSink(openStrip(*out))
		geom = morphclock.Geometry{PitchX: 1, PitchY: 1, Dot: 1}

	default:
		log.Fatalf("unknown output %q", *out)
	}

	eng, err := morphclock.New(morphclock.Options{
		Sink:     sink,
		Geometry: geom,
		Time:     &morphclock.SystemTime{Use24h: cfg.Use24h},
		Store:    store,
		Block:    blockfall.New(),
		Config:   *cfg,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("morphclock: mode=%s out=%s params=%+v", eng.Mode(), *out, eng.RenderParams())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	var lastStatus string
	for {
		select {
		case s := <-sig:
			log.Printf("morphclock: %s, shutting down", s)
			return

		case now := <-ticker.C:
			if err := eng.Tick(now); err != nil {
				log.Printf("morphclock: flush: %v", err)
			}
			if dev != nil {
				if s := eng.StatusText(now); s != lastStatus {
					lastStatus = s
					drawStatusLine(dev, s)
				}
			}
		}
	}
}

// openStrip returns the LED strip drawer, or the console screen when no
// SPI port is available or console output was asked for.
func openStrip(out string) display.Drawer {
	if out == "strip" {
		if port, err := spireg.Open(""); err == nil {
			d, err := nrzled.NewSPI(port, &nrzled.Opts{
				NumPixels: morphclock.Width * morphclock.Height,
				Channels:  3,
				Freq:      2500 * physic.KiloHertz,
			})
			if err != nil {
				log.Fatal(err)
			}
			return d
		}
		log.Print("morphclock: no SPI port, falling back to console")
	}
	return screen.New(morphclock.Width)
}

func drawStatusLine(dev *fbdev.Device, text string) {
	bounds := dev.Bounds()
	if bounds.Dy() < 2*morphclock.Height {
		return
	}
	_ = dev.Fill(0, bounds.Max.Y-statusStrip, bounds.Dx(), statusStrip, pixel.CRGB16{})
	morphclock.DrawStatus(dev.Image(), 2, bounds.Max.Y-4, text, color.White)
}

func loadConfig(path string) (*morphclock.Config, morphclock.Store) {
	if path == "" {
		return nil, nil
	}
	store := fileStore{path: path}
	cfg, err := store.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("morphclock: load %s: %v", path, err)
		}
		return nil, store
	}
	return &cfg, store
}

func configFromFlags(mode, colorHex string, dot, gap, speed int, style string, use12h bool, rotate time.Duration) morphclock.Config {
	cfg := morphclock.DefaultConfig()

	switch mode {
	case "blockfall":
		cfg.Mode = morphclock.ModeBlockFall
	case "segmentdot":
		cfg.Mode = morphclock.ModeSegmentDot
	case "classic":
		cfg.Mode = morphclock.ModeClassic
	default:
		log.Fatalf("unknown mode %q", mode)
	}

	rgb, err := strconv.ParseUint(colorHex, 16, 32)
	if err != nil {
		log.Fatalf("invalid color %q: %v", colorHex, err)
	}
	cfg.BaseColor = uint32(rgb)

	cfg.DotDiameter = dot
	cfg.DotGap = gap
	cfg.MorphSpeed = speed
	if style == "particle" {
		cfg.Style = morphclock.MorphParticle
	}
	cfg.Use24h = !use12h
	if rotate > 0 {
		cfg.AutoRotate = true
		cfg.RotateInterval = rotate
	}
	return cfg
}

// fileStore persists the configuration as JSON.
type fileStore struct {
	path string
}

func (s fileStore) Load() (morphclock.Config, error) {
	var cfg morphclock.Config
	b, err := os.ReadFile(s.path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (s fileStore) Save(cfg morphclock.Config) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}
