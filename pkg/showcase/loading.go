package showcase

import (
	"math"
	"time"

	"github.com/BrandonKowalski/showcase/pkg/showcase/i18n"
	"github.com/BrandonKowalski/showcase/pkg/showcase/internal"
	"github.com/BrandonKowalski/showcase/pkg/showcase/startup"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	spinnerDots    = 8
	spinnerRadius  = 18
	spinnerDotSize = 6
	spinnerPeriod  = 800 * time.Millisecond
)

// LoadingScreen shows an activity indicator while gate is Initializing.
// onFirstFrame runs once, after the first frame has been presented; it is
// where the caller completes the gate. Returns immediately for a gate that
// is already Ready.
func LoadingScreen(gate *startup.Gate, onFirstFrame func()) error {
	if gate.IsReady() {
		return nil
	}

	window := internal.GetWindow()
	renderer := window.Renderer
	start := time.Now()
	presented := false

	for {
		select {
		case <-gate.Done():
			internal.GetInternalLogger().Debug("Startup gate opened", "after", time.Since(start))
			return nil
		default:
		}

		if internal.PollInput().Quit {
			return ErrQuit
		}

		renderLoading(renderer, time.Since(start))
		window.Present()

		if !presented {
			presented = true
			if onFirstFrame != nil {
				onFirstFrame()
			}
		}
	}
}

func renderLoading(renderer *sdl.Renderer, elapsed time.Duration) {
	window := internal.GetWindow()
	theme := internal.GetTheme()
	fonts := internal.GetFonts()
	width, height := window.Size()

	bg := theme.ListBackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.Clear()

	p := internal.NewPainter(renderer, textCache)
	cx, cy := width/2, height/2

	lead := spinnerLead(elapsed)
	for i := 0; i < spinnerDots; i++ {
		angle := 2 * math.Pi * float64(i) / spinnerDots
		x := cx + int32(math.Round(spinnerRadius*math.Cos(angle))) - spinnerDotSize/2
		y := cy + int32(math.Round(spinnerRadius*math.Sin(angle))) - spinnerDotSize/2

		c := theme.AccentColor
		c.A = spinnerAlpha(i, lead)
		p.FillRect(sdlRect(x, y, spinnerDotSize, spinnerDotSize), c)
	}

	label := t(i18n.Loading)
	tw, _ := p.MeasureText(fonts.Small, label)
	p.DrawText(fonts.Small, label, cx-tw/2, cy+spinnerRadius*2, theme.HintColor)
}

// spinnerLead is the brightest dot at elapsed.
func spinnerLead(elapsed time.Duration) int {
	step := spinnerPeriod / spinnerDots
	return int(elapsed/step) % spinnerDots
}

// spinnerAlpha fades dots trailing the lead dot.
func spinnerAlpha(dot, lead int) uint8 {
	behind := (lead - dot + spinnerDots) % spinnerDots
	return uint8(255 - behind*(255-40)/(spinnerDots-1))
}
