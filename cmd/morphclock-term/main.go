// Command morphclock-term previews the morphing clock in a terminal. Each
// logical pixel spans two character cells.
//
// Keys: q or Escape quits, m cycles the display mode, s toggles the
// classic morph style, b toggles the colon blink, r toggles auto-rotation.
package main

import (
	"flag"
	"log"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dotglow/morphclock"
	"github.com/dotglow/morphclock/blockfall"
)

func main() {
	var (
		colorFlag = flag.String("color", "00ff00", "base color (RRGGBB hex)")
		modeFlag  = flag.String("mode", "classic", "start mode: classic | blockfall | segmentdot")
		speed     = flag.Int("speed", 1, "morph speed multiplier")
		use12h    = flag.Bool("12h", false, "12-hour display")
		rotate    = flag.Duration("rotate", 0, "auto-rotate interval, 0 disables")
	)
	flag.Parse()

	cfg := morphclock.DefaultConfig()
	switch *modeFlag {
	case "blockfall":
		cfg.Mode = morphclock.ModeBlockFall
	case "segmentdot":
		cfg.Mode = morphclock.ModeSegmentDot
	case "classic":
		cfg.Mode = morphclock.ModeClassic
	default:
		log.Fatalf("unknown mode %q", *modeFlag)
	}
	rgb, err := strconv.ParseUint(*colorFlag, 16, 32)
	if err != nil {
		log.Fatalf("invalid color %q: %v", *colorFlag, err)
	}
	cfg.BaseColor = uint32(rgb)
	cfg.MorphSpeed = *speed
	cfg.Use24h = !*use12h
	if *rotate > 0 {
		cfg.AutoRotate = true
		cfg.RotateInterval = *rotate
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := scr.Init(); err != nil {
		log.Fatal(err)
	}
	defer scr.Fini()
	scr.HideCursor()
	scr.Clear()

	sink := morphclock.NewTermSink(scr)
	eng, err := morphclock.New(morphclock.Options{
		Sink:     sink,
		Geometry: morphclock.Geometry{PitchX: 1, PitchY: 1, Dot: 1},
		Time:     &morphclock.SystemTime{Use24h: cfg.Use24h},
		Block:    blockfall.New(),
		Config:   cfg,
	})
	if err != nil {
		log.Fatal(err)
	}

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
					return
				case ev.Rune() == 'm':
					eng.SwitchMode(eng.Mode().Next())
				case ev.Rune() == 's':
					c := eng.Config()
					if c.Style == morphclock.MorphSpawn {
						c.Style = morphclock.MorphParticle
					} else {
						c.Style = morphclock.MorphSpawn
					}
					eng.ApplyConfig(c)
				case ev.Rune() == 'b':
					c := eng.Config()
					c.BlinkColon = !c.BlinkColon
					eng.ApplyConfig(c)
				case ev.Rune() == 'r':
					c := eng.Config()
					c.AutoRotate = !c.AutoRotate
					eng.ApplyConfig(c)
				}
			case *tcell.EventResize:
				scr.Sync()
				eng.SetGeometry(morphclock.Geometry{PitchX: 1, PitchY: 1, Dot: 1})
			}

		case now := <-ticker.C:
			if err := eng.Tick(now); err != nil {
				log.Printf("morphclock-term: flush: %v", err)
			}
			drawText(scr, 0, morphclock.Height+1, eng.StatusText(now)+"  [m]ode="+eng.Mode().String())
			sink.Show()
		}
	}
}

func drawText(scr tcell.Screen, x, y int, text string) {
	style := tcell.StyleDefault
	for i, r := range text {
		scr.SetContent(x+i, y, r, nil, style)
	}
	// Wipe the remainder of the line so a shorter status leaves no tail.
	w, _ := scr.Size()
	for i := x + len(text); i < w; i++ {
		scr.SetContent(i, y, ' ', nil, style)
	}
}
