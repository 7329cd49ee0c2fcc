package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/gesture"
	"github.com/phanxgames/gesture/term"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	watchFrame    = 16 * time.Millisecond
	watchMaxLines = 200
)

// WatchOptions holds flags for the watch command.
type WatchOptions struct {
	*RootOptions
	recognizerFlags
	CellWidth  float64
	CellHeight float64
	Radius     float64
	LogFile    string
}

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Recognize gestures drawn with the mouse in the terminal",
		Long: `Open a full-screen terminal view and recognize gestures made with the
mouse. The left button is one finger; hold Ctrl while pressing to add a
second, mirrored finger for pinch and rotate. Press q or Esc to quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(opts)
		},
	}

	cmd.Flags().Float64Var(&opts.CellWidth, "cell-width", term.DefaultCellWidth, "pixels per terminal column")
	cmd.Flags().Float64Var(&opts.CellHeight, "cell-height", term.DefaultCellHeight, "pixels per terminal row")
	cmd.Flags().Float64Var(&opts.Radius, "mirror-radius", term.DefaultMirrorRadius, "distance from the pointer to the mirror pivot in pixels")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "write recognizer logs to this file (discarded otherwise)")
	opts.recognizerFlags.register(cmd.Flags())

	return cmd
}

// watchLogger returns the recognizer logger for the watch screen. tcell owns
// the terminal, so logs go to path, or nowhere when path is empty. The
// returned close func releases the file.
func watchLogger(path string, level logrus.Level) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetLevel(level)
	if path == "" {
		logger.SetOutput(io.Discard)
		return logger, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(f)
	return logger, f.Close, nil
}

func runWatch(opts *WatchOptions) error {
	recOpts, err := opts.options()
	if err != nil {
		return err
	}
	logger, closeLog, err := watchLogger(opts.LogFile, logrus.StandardLogger().GetLevel())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open log file", err)
	}
	defer closeLog()
	recOpts.Logger = logger

	screen, err := tcell.NewScreen()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create screen", err)
	}
	if err := screen.Init(); err != nil {
		return WrapExitError(ExitCommandError, "failed to initialize screen", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	w := newWatcher(screen, recOpts, term.Config{
		CellWidth:    opts.CellWidth,
		CellHeight:   opts.CellHeight,
		MirrorRadius: opts.Radius,
	}, time.Now)
	defer w.close()
	w.run()
	return nil
}

// watcher owns the screen, the terminal surface and a recognizer polled on
// the frame ticker. Everything runs on the run goroutine.
type watcher struct {
	screen  tcell.Screen
	surface *term.Surface
	queue   *gesture.TimerQueue
	rec     *gesture.Recognizer
	binding *gesture.Binding
	lines   []string
}

func newWatcher(screen tcell.Screen, opts gesture.Options, cfg term.Config, clock func() time.Time) *watcher {
	w := &watcher{
		screen:  screen,
		surface: term.NewSurface(cfg),
		queue:   gesture.NewTimerQueue(clock),
	}
	opts.Scheduler = w.queue
	w.rec = gesture.New(opts, gesture.Handlers{})
	w.rec.SetEventSink(gesture.EventSinkFunc(w.record))
	w.binding = gesture.NewBinding(w.rec, true)
	w.binding.Attach(w.surface)
	return w
}

func (w *watcher) close() {
	w.binding.Detach()
}

func (w *watcher) run() {
	ticker := time.NewTicker(watchFrame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := w.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	w.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !w.handle(ev) {
				return
			}
		case <-ticker.C:
			w.tick()
		}
	}
}

// handle processes one terminal event and reports whether to keep running.
func (w *watcher) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'c' {
			w.lines = w.lines[:0]
		}
	case *tcell.EventResize:
		w.screen.Sync()
	default:
		w.surface.HandleEvent(ev)
	}
	return true
}

func (w *watcher) tick() {
	w.queue.Poll()
	w.draw()
}

func (w *watcher) record(ev gesture.Event) {
	w.lines = append(w.lines, fmt.Sprintf("%s  %s", ev.At.Format("15:04:05.000"), describeEvent(ev)))
	if len(w.lines) > watchMaxLines {
		w.lines = w.lines[len(w.lines)-watchMaxLines:]
	}
}

func describeEvent(ev gesture.Event) string {
	var detail string
	switch ev.Type {
	case gesture.EventSwipe:
		detail = " " + ev.Direction.String()
	case gesture.EventPinch:
		detail = fmt.Sprintf(" %s scale=%.2f", ev.Pinch, ev.Scale)
	case gesture.EventRotate:
		detail = fmt.Sprintf(" angle=%.1f", ev.Angle)
	}
	return fmt.Sprintf("%s%s at (%.0f,%.0f) contacts=%d", ev.Type, detail, ev.Center.X, ev.Center.Y, ev.Contacts)
}

func (w *watcher) stateLine() string {
	st := w.rec.State()
	return fmt.Sprintf("swiping=%t pinching=%t rotating=%t long_pressing=%t long_press=%s pointer=%t",
		st.Swiping, st.Pinching, st.Rotating, st.LongPressing, st.LongPress, w.surface.Pressed())
}

func (w *watcher) draw() {
	w.screen.Clear()
	_, height := w.screen.Size()

	header := tcell.StyleDefault.Reverse(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	w.drawText(0, 0, header, " gesture watch: drag to swipe, Ctrl+drag for two fingers, c clears, q quits ")
	w.drawText(0, 1, dim, w.stateLine())

	rows := height - 3
	start := 0
	if rows < 0 {
		rows = 0
	}
	if len(w.lines) > rows {
		start = len(w.lines) - rows
	}
	for i, line := range w.lines[start:] {
		w.drawText(0, 3+i, tcell.StyleDefault.Foreground(tcell.ColorGreen), line)
	}
	w.screen.Show()
}

func (w *watcher) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		w.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
