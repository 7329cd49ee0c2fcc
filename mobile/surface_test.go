package mobile

import (
	"testing"
	"time"

	"github.com/phanxgames/gesture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/touch"
)

type note struct {
	kind     string
	contacts []gesture.Contact
	raw      any
}

type recordingListener struct {
	notes []note
}

func (l *recordingListener) TouchStart(cs []gesture.Contact, raw any) {
	l.notes = append(l.notes, note{"start", cs, raw})
}

func (l *recordingListener) TouchMove(cs []gesture.Contact, raw any) {
	l.notes = append(l.notes, note{"move", cs, raw})
}

func (l *recordingListener) TouchEnd(cs []gesture.Contact, raw any) {
	l.notes = append(l.notes, note{"end", cs, raw})
}

func newTestSurface() (*Surface, *recordingListener) {
	s := NewSurface()
	l := &recordingListener{}
	s.AddTouchListener(l)
	return s, l
}

func TestHandleTouch_TracksSequences(t *testing.T) {
	s, l := newTestSurface()

	assert.True(t, s.HandleTouch(touch.Event{X: 10, Y: 10, Sequence: 1, Type: touch.TypeBegin}))
	assert.True(t, s.HandleTouch(touch.Event{X: 50, Y: 10, Sequence: 2, Type: touch.TypeBegin}))
	assert.True(t, s.HandleTouch(touch.Event{X: 60, Y: 10, Sequence: 2, Type: touch.TypeMove}))
	assert.True(t, s.HandleTouch(touch.Event{X: 10, Y: 10, Sequence: 1, Type: touch.TypeEnd}))
	assert.True(t, s.HandleTouch(touch.Event{X: 60, Y: 10, Sequence: 2, Type: touch.TypeEnd}))

	require.Len(t, l.notes, 5)
	kinds := []string{"start", "start", "move", "end", "end"}
	sizes := []int{1, 2, 2, 1, 0}
	for i, n := range l.notes {
		assert.Equal(t, kinds[i], n.kind, "notification %d", i)
		assert.Len(t, n.contacts, sizes[i], "notification %d", i)
	}
	assert.Equal(t, gesture.Contact{ID: 2, X: 60, Y: 10}, l.notes[3].contacts[0])
	assert.IsType(t, touch.Event{}, l.notes[0].raw)
	assert.Empty(t, s.Contacts())
}

func TestHandleTouch_DropsNoise(t *testing.T) {
	s, l := newTestSurface()

	assert.False(t, s.HandleTouch(touch.Event{Sequence: 9, Type: touch.TypeMove}))
	assert.False(t, s.HandleTouch(touch.Event{Sequence: 9, Type: touch.TypeEnd}))

	s.HandleTouch(touch.Event{X: 5, Y: 5, Sequence: 1, Type: touch.TypeBegin})
	assert.False(t, s.HandleTouch(touch.Event{X: 5, Y: 5, Sequence: 1, Type: touch.TypeMove}))
	assert.True(t, s.HandleTouch(touch.Event{X: 6, Y: 5, Sequence: 1, Type: touch.TypeBegin}))

	require.Len(t, l.notes, 2)
	assert.Equal(t, "move", l.notes[1].kind)
}

func TestHandleTouch_Scale(t *testing.T) {
	s, l := newTestSurface()
	s.Scale = 0.5
	s.HandleTouch(touch.Event{X: 100, Y: 40, Sequence: 3, Type: touch.TypeBegin})
	require.Len(t, l.notes, 1)
	assert.Equal(t, gesture.Contact{ID: 3, X: 50, Y: 20}, l.notes[0].contacts[0])
}

func TestHandleLifecycle_LosingFocusLiftsContacts(t *testing.T) {
	s, l := newTestSurface()
	s.HandleTouch(touch.Event{Sequence: 1, Type: touch.TypeBegin})
	s.HandleTouch(touch.Event{X: 20, Sequence: 2, Type: touch.TypeBegin})

	gained := lifecycle.Event{From: lifecycle.StageVisible, To: lifecycle.StageFocused}
	assert.False(t, s.HandleLifecycle(gained))

	lost := lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageVisible}
	assert.True(t, s.HandleLifecycle(lost))
	require.Len(t, l.notes, 3)
	assert.Equal(t, "end", l.notes[2].kind)
	assert.Empty(t, l.notes[2].contacts)

	assert.False(t, s.HandleLifecycle(lost), "nothing left to lift")
}

func TestSurface_DrivesRecognizer(t *testing.T) {
	sched := gesture.NewManualScheduler(time.Unix(0, 0))
	var scales []float64
	rec := gesture.New(gesture.Options{Scheduler: sched}, gesture.Handlers{
		OnPinch: func(scale float64, kind gesture.PinchType, raw any) {
			scales = append(scales, scale)
		},
	})
	s := NewSurface()
	gesture.NewBinding(rec, true).Attach(s)

	s.HandleTouch(touch.Event{X: 0, Y: 0, Sequence: 1, Type: touch.TypeBegin})
	s.HandleTouch(touch.Event{X: 100, Y: 0, Sequence: 2, Type: touch.TypeBegin})
	s.HandleTouch(touch.Event{X: 200, Y: 0, Sequence: 2, Type: touch.TypeMove})

	require.Len(t, scales, 1)
	assert.InDelta(t, 2.0, scales[0], 1e-9)
}
