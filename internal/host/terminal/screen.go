package terminal

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/input/tracker"
)

const historySize = 10

// Screen shows a session's fired actions and active set as keys are typed.
// Ctrl+C quits and is never passed to the session.
type Screen struct {
	screen  tcell.Screen
	session *tracker.Session
	log     *logrus.Entry

	mu      sync.Mutex
	history []string
	status  string
}

// statusEvent carries a status line from another goroutine to the loop.
type statusEvent struct {
	text string
}

// NewScreen creates a screen over an initialized tcell screen.
func NewScreen(s tcell.Screen, session *tracker.Session, log *logrus.Entry) *Screen {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Screen{
		screen:  s,
		session: session,
		log:     log.WithField("component", "terminal"),
	}
}

// Init creates and initializes the terminal screen.
func Init() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetStatus replaces the status line. It is safe to call from any
// goroutine.
func (s *Screen) SetStatus(format string, args ...any) {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(statusEvent{text: fmt.Sprintf(format, args...)}))
}

// Run processes terminal events until Ctrl+C or ctx is done.
func (s *Screen) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	s.draw()
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			if isQuit(e) {
				return nil
			}
			s.handleKey(e)
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventInterrupt:
			if st, ok := e.Data().(statusEvent); ok {
				s.mu.Lock()
				s.status = st.text
				s.mu.Unlock()
			}
		}
		if ctx.Err() != nil {
			return nil
		}
		s.draw()
	}
}

func isQuit(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyCtrlC {
		return true
	}
	return e.Key() == tcell.KeyRune && e.Rune() == 'c' && e.Modifiers()&tcell.ModCtrl != 0
}

func (s *Screen) handleKey(e *tcell.EventKey) {
	events, ok := Events(e)
	if !ok {
		s.log.WithField("key", e.Name()).Debug("no key equivalent")
		s.record(fmt.Sprintf("%-28s (unmapped)", e.Name()))
		return
	}
	for _, ev := range events {
		fired := s.session.HandleKey(ev)
		s.record(formatLine(ev, fired))
	}
}

func formatLine(ev key.Event, fired []string) string {
	name := ev.Key.String()
	if !ev.Modifiers.IsEmpty() {
		name = ev.Modifiers.String() + "+" + name
	}
	line := fmt.Sprintf("%-8s %-20s", ev.State, name)
	if len(fired) > 0 {
		line += " -> " + strings.Join(fired, ", ")
	}
	return line
}

func (s *Screen) record(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, line)
	if len(s.history) > historySize {
		s.history = s.history[len(s.history)-historySize:]
	}
}

// Lines returns the text the screen draws, top to bottom.
func (s *Screen) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := []string{
		fmt.Sprintf("keychord session %s", s.session.ID()),
		fmt.Sprintf("active: %s", strings.Join(s.session.Active(), " ")),
		"",
	}
	lines = append(lines, s.history...)
	lines = append(lines, "", "Ctrl+C quit")
	if s.status != "" {
		lines = append(lines, s.status)
	}
	return lines
}

func (s *Screen) draw() {
	s.screen.Clear()
	width, height := s.screen.Size()
	style := tcell.StyleDefault
	for y, line := range s.Lines() {
		if y >= height {
			break
		}
		x := 0
		for _, r := range line {
			if x >= width {
				break
			}
			s.screen.SetContent(x, y, r, nil, style)
			x++
		}
	}
	s.screen.Show()
}
