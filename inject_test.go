package gesture

import "testing"

type captured struct {
	kind     string
	contacts []Contact
	raw      any
}

type captureListener struct {
	got []captured
}

func (l *captureListener) TouchStart(cs []Contact, raw any) {
	l.got = append(l.got, captured{"start", cs, raw})
}

func (l *captureListener) TouchMove(cs []Contact, raw any) {
	l.got = append(l.got, captured{"move", cs, raw})
}

func (l *captureListener) TouchEnd(cs []Contact, raw any) {
	l.got = append(l.got, captured{"end", cs, raw})
}

func TestInjectSurfaceCarriesFullContactSet(t *testing.T) {
	s := NewInjectSurface()
	l := &captureListener{}
	s.AddTouchListener(l)

	s.InjectStart(c(1, 0, 0))
	s.InjectStart(c(2, 10, 0))
	s.InjectMove(c(1, 5, 5), c(2, 15, 5))
	s.InjectEnd(1)
	s.InjectEnd()

	wantKinds := []string{"start", "start", "move", "end", "end"}
	wantLens := []int{1, 2, 2, 1, 0}
	if len(l.got) != len(wantKinds) {
		t.Fatalf("got %d notifications, want %d", len(l.got), len(wantKinds))
	}
	for i, g := range l.got {
		if g.kind != wantKinds[i] || len(g.contacts) != wantLens[i] {
			t.Errorf("notification %d = %s with %d contacts, want %s with %d",
				i, g.kind, len(g.contacts), wantKinds[i], wantLens[i])
		}
	}
	if rem := l.got[3].contacts; rem[0].ID != 2 {
		t.Errorf("remaining contact = %v, want ID 2", rem[0])
	}
	if len(s.Contacts()) != 0 {
		t.Errorf("Contacts = %v, want empty", s.Contacts())
	}
}

func TestInjectSurfaceSequence(t *testing.T) {
	s := NewInjectSurface()
	a := s.InjectStart(c(1, 0, 0))
	b := s.InjectMove(c(1, 1, 1))
	e := s.InjectEnd()
	if a.Seq != 1 || b.Seq != 2 || e.Seq != 3 {
		t.Errorf("seq = %d %d %d, want 1 2 3", a.Seq, b.Seq, e.Seq)
	}
	if a.Kind != "start" || b.Kind != "move" || e.Kind != "end" {
		t.Errorf("kinds = %s %s %s", a.Kind, b.Kind, e.Kind)
	}
	if a.Prevented {
		t.Error("Prevented should be false with no listeners")
	}
}

func TestInjectSurfaceSnapshotsAreIndependent(t *testing.T) {
	s := NewInjectSurface()
	l := &captureListener{}
	s.AddTouchListener(l)
	s.InjectStart(c(1, 0, 0))
	s.InjectMove(c(1, 50, 50))
	if l.got[0].contacts[0].X != 0 {
		t.Error("earlier notification contacts were mutated by a later injection")
	}
}
