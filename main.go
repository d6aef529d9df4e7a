package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/timewheel/audio"
	"github.com/lixenwraith/timewheel/core"
	"github.com/lixenwraith/timewheel/engine"
	"github.com/lixenwraith/timewheel/parameter"
	"github.com/lixenwraith/timewheel/schedule"
	"github.com/lixenwraith/timewheel/vmath"
)

const (
	keyTurn     = 0.06 // radians per arrow keypress
	cellAspect  = 2.0  // terminal cells are ~twice as tall as wide
	rimSamples  = 180
	avatarInset = 0.85 // avatars sit slightly inside the rim
)

// App drives the dial engine from a terminal: mouse drag or arrow keys
// rotate, number keys switch spans, the event queue feeds audio cues
type App struct {
	screen tcell.Screen
	eng    *engine.Engine
	sound  *audio.Service

	width, height int
	cx, cy        int
	rx, ry        float64

	// Mouse drag tracking
	mouseDown    bool
	prevX, prevY int
}

func NewApp(eng *engine.Engine) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a := &App{screen: screen, eng: eng}
	a.layoutScreen()

	sound, err := audio.NewService()
	if err != nil {
		// Non-fatal, the dial works without sound
		log.Printf("audio initialization failed: %v", err)
	}
	a.sound = sound

	return a, nil
}

func (a *App) layoutScreen() {
	a.width, a.height = a.screen.Size()
	a.cx = a.width / 2
	a.cy = a.height/2 - 1

	ry := float64(a.height)/2 - 4
	if rx := (float64(a.width)/2 - 24) / cellAspect; rx < ry {
		ry = rx
	}
	if ry < 4 {
		ry = 4
	}
	a.ry = ry
	a.rx = ry * cellAspect
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !a.mouseDown:
		a.mouseDown = true
		a.eng.BeginDrag()
	case pressed && a.mouseDown:
		if x != a.prevX || y != a.prevY {
			// Unskew x by the cell aspect so atan2 sees a round dial
			delta := vmath.PointerDelta(
				float64(a.cx)/cellAspect, float64(a.cy),
				float64(a.prevX)/cellAspect, float64(a.prevY),
				float64(x)/cellAspect, float64(y),
			)
			a.eng.ApplyDragDelta(delta)
		}
	case !pressed && a.mouseDown:
		a.mouseDown = false
		a.eng.EndDrag()
	}
	a.prevX, a.prevY = x, y
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		a.nudge(-keyTurn)
	case tcell.KeyRight:
		a.nudge(keyTurn)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case '1', '2', '3', '4', '5':
			a.eng.SetTimeSpan(core.Spans[ev.Rune()-'1'])
		case 'n':
			a.eng.ShiftWindow(1)
		case 'p':
			a.eng.ShiftWindow(-1)
		}
	}
	return true
}

// nudge applies a keyboard turn as a tiny flick so it coasts
func (a *App) nudge(delta float64) {
	a.eng.BeginDrag()
	a.eng.ApplyDragDelta(delta)
	a.eng.EndDrag()
}

// rimCell converts a dial angle to screen coordinates at a radius
// scale (1.0 = rim)
func (a *App) rimCell(angle, scale float64) (int, int) {
	x := float64(a.cx) + a.rx*scale*math.Cos(angle)
	y := float64(a.cy) + a.ry*scale*math.Sin(angle)
	return int(math.Round(x)), int(math.Round(y))
}

func categoryStyle(category string) tcell.Style {
	switch category {
	case "meeting":
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case "call":
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case "meal":
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorPurple)
	}
}

func (a *App) draw() {
	a.screen.Clear()
	snap := a.eng.Snapshot()

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	// Rim
	for i := 0; i < rimSamples; i++ {
		angle := float64(i) / rimSamples * vmath.TwoPi
		x, y := a.rimCell(angle, 1.0)
		a.screen.SetContent(x, y, '·', nil, dim)
	}

	// Minor tick markers for the active span
	clock := engine.NewClock(snap.Span)
	interval := snap.Span.TickInterval()
	for h := 0.0; h < snap.Span.Hours(); h += interval {
		angle := clock.AngleForOffset(h) + snap.Rotation
		x, y := a.rimCell(angle, 1.0)
		a.screen.SetContent(x, y, '+', nil, tcell.StyleDefault)
	}

	// Duration arcs, just inside the rim
	for _, arc := range snap.Arcs {
		style := categoryStyle(arc.Category)
		sweep := vmath.NormalizeAngle(arc.End - arc.Start)
		steps := int(sweep/vmath.TwoPi*rimSamples) + 1
		for i := 0; i <= steps; i++ {
			angle := arc.Start + sweep*float64(i)/float64(steps)
			x, y := a.rimCell(angle, 0.94)
			a.screen.SetContent(x, y, '•', nil, style)
		}
	}

	// Avatars: first letter of the participant, highlighted by
	// selection state
	for _, slot := range snap.Slots {
		style := categoryStyle(slot.Category)
		switch {
		case snap.Selection.Phase == core.SelectionLocked && slot.Slot == snap.Selection.Slot:
			style = style.Reverse(true).Bold(true)
		case snap.Selection.Phase == core.SelectionCandidate && slot.Slot == snap.Selection.Slot:
			style = style.Bold(true)
		}
		r := '?'
		if len(slot.Participant) > 0 {
			r = []rune(slot.Participant)[0]
		}
		x, y := a.rimCell(slot.Angle, avatarInset)
		a.screen.SetContent(x, y, r, nil, style)
	}

	// North marker
	nx, ny := a.rimCell(vmath.North, 1.0)
	a.screen.SetContent(nx, ny-1, '▼', nil, tcell.StyleDefault.Bold(true))

	a.drawStatus(snap)
	a.drawCard(snap)
	a.screen.Show()
}

func (a *App) drawStatus(snap engine.Snapshot) {
	status := fmt.Sprintf(" %s  %s  %s ",
		snap.Span.Label(), snap.CursorLabel, snap.Date.Format("Mon 2 Jan"))
	a.putString(1, 0, status, tcell.StyleDefault.Bold(true))
	help := " drag/←→ rotate  1-5 span  n/p window  q quit "
	a.putString(1, a.height-1, help, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// drawCard shows the detail card for a locked selection. The card is
// hidden while dragging; it reappears only on a fresh lock
func (a *App) drawCard(snap engine.Snapshot) {
	if snap.Selection.Phase != core.SelectionLocked || snap.Dragging {
		return
	}
	it, ok := a.eng.Interaction(snap.Selection.Slot.InteractionID)
	if !ok {
		return
	}

	name := ""
	if i := snap.Selection.Slot.ParticipantIndex; i < len(it.Participants) {
		name = it.Participants[i]
	}
	lines := []string{
		fmt.Sprintf(" %s ", name),
		fmt.Sprintf(" %s – %s ", it.Start.Format("15:04"), it.End.Format("15:04")),
	}
	if it.Location != "" {
		lines = append(lines, fmt.Sprintf(" %s ", it.Location))
	}

	style := categoryStyle(it.Category).Reverse(true)
	y := a.height - 2 - len(lines)
	for i, line := range lines {
		a.putString(2, y+i, line, style)
	}
}

func (a *App) putString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (a *App) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleKey(ev) {
					return
				}
			case *tcell.EventMouse:
				a.handleMouse(ev)
			case *tcell.EventResize:
				a.layoutScreen()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			a.eng.Tick(dt)
			if a.sound != nil {
				a.sound.Dispatch(a.eng.Events())
			}
			a.draw()
		}
	}
}

func (a *App) cleanup() {
	if a.sound != nil {
		a.sound.Close()
	}
	a.screen.Fini()
}

// sampleDay fabricates a plausible schedule when no file is given
func sampleDay(day time.Time) []core.Interaction {
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}
	return []core.Interaction{
		core.NewInteraction(at(9, 0), at(9, 45), []string{"Ada", "Grace"}, "meeting", "Room 4"),
		core.NewInteraction(at(12, 30), at(13, 15), []string{"Linus", "Ken", "Dennis"}, "meal", "Cantina"),
		core.NewInteraction(at(15, 0), at(15, 30), []string{"Barbara"}, "call", ""),
		core.NewInteraction(at(19, 0), at(21, 0), []string{"Margaret", "Katherine"}, "meal", "Osteria"),
	}
}

func main() {
	schedPath := flag.String("schedule", "", "YAML schedule file")
	paramPath := flag.String("params", "", "TOML engine parameter overrides")
	flag.Parse()

	params := parameter.Default()
	if *paramPath != "" {
		var err error
		if params, err = parameter.Load(*paramPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load parameters: %v\n", err)
			os.Exit(1)
		}
	}

	now := time.Now()
	var items []core.Interaction
	if *schedPath != "" {
		var day time.Time
		var err error
		if items, day, err = schedule.Load(*schedPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load schedule: %v\n", err)
			os.Exit(1)
		}
		now = day.Add(12 * time.Hour)
	} else {
		y, m, d := now.Date()
		items = sampleDay(time.Date(y, m, d, 0, 0, 0, 0, now.Location()))
	}

	eng := engine.New(params, core.Span24h, now)
	eng.SetInteractions(items)

	app, err := NewApp(eng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
