package graphview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is the widget's per-frame tick. Gen guards against stale
// ticks from a stopped loop: only the current generation draws.
type FrameMsg struct {
	Gen  int
	Time time.Time
}

// Widget embeds the graph explorer in a bubbletea program. It follows
// the bubbles component convention: the parent model routes messages in
// and renders View() where it wants the canvas.
//
// The bubbletea tick is the widget's frame scheduler. Start begins the
// loop, Stop prevents any further frame from drawing; both are cheap
// and synchronous.
type Widget struct {
	engine *Engine
	canvas *Canvas
	fps    int

	running bool
	gen     int
	offsetX int
	offsetY int
}

// NewWidget wraps an engine at the given frame rate
func NewWidget(engine *Engine, fps int) *Widget {
	if fps <= 0 {
		fps = 30
	}
	return &Widget{
		engine: engine,
		canvas: NewCanvas(1, 1),
		fps:    fps,
	}
}

// Engine exposes the wrapped engine for data supply and selection reads
func (w *Widget) Engine() *Engine {
	return w.engine
}

// SetSize resizes the canvas to a character-cell region. The engine
// viewport follows in dots. Resizing rebinds buffers; camera and
// selection are untouched.
func (w *Widget) SetSize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	w.canvas.Clear(Viewport{Width: cols * 2, Height: rows * 4})
	w.engine.Resize(cols*2, rows*4)
}

// SetOffset records where the widget sits inside the parent view so
// terminal mouse coordinates can be translated to canvas dots
func (w *Widget) SetOffset(x, y int) {
	w.offsetX, w.offsetY = x, y
}

// Start begins the frame loop and returns the first tick command
func (w *Widget) Start() tea.Cmd {
	if w.running {
		return nil
	}
	w.running = true
	w.gen++
	return w.tick()
}

// Stop halts the frame loop. Any tick already queued carries a stale
// generation and is dropped, so no frame draws after Stop.
func (w *Widget) Stop() {
	w.running = false
}

// Running reports whether the frame loop is active
func (w *Widget) Running() bool {
	return w.running
}

func (w *Widget) tick() tea.Cmd {
	gen := w.gen
	return tea.Tick(time.Second/time.Duration(w.fps), func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, Time: t}
	})
}

// Update handles frame ticks and mouse input. The parent is expected to
// forward tea.MouseMsg while the explorer is visible.
func (w *Widget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		if !w.running || msg.Gen != w.gen {
			return nil
		}
		w.engine.Frame(w.canvas)
		return w.tick()

	case tea.MouseMsg:
		x, y := w.toDots(msg.X, msg.Y)
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				w.engine.PointerDown(x, y)
			}
		case tea.MouseActionMotion:
			w.engine.PointerMove(x, y)
		case tea.MouseActionRelease:
			w.engine.PointerUp(x, y)
		}
	}
	return nil
}

// View renders the last drawn frame
func (w *Widget) View() string {
	return w.canvas.String()
}

func (w *Widget) toDots(cellX, cellY int) (float64, float64) {
	return float64((cellX - w.offsetX) * 2), float64((cellY - w.offsetY) * 4)
}
