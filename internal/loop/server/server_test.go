package server

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestRegistry() *Registry {
	r := NewRegistry(log.New(io.Discard))
	r.PollInterval = time.Millisecond
	return r
}

func TestRegisterAssignsIDs(t *testing.T) {
	r := newTestRegistry()
	a := r.Register("alice")
	b := r.Register("bob")
	if a.ID == b.ID {
		t.Fatalf("duplicate id %d", a.ID)
	}
	if r.Count() != 2 {
		t.Fatalf("Count = %d, want 2", r.Count())
	}
	r.Unregister(a.ID)
	if r.Count() != 1 {
		t.Fatalf("Count = %d, want 1", r.Count())
	}
	if _, ok := <-a.Events; ok {
		t.Error("events channel still open after Unregister")
	}
	r.Unregister(a.ID)
}

func TestSanitizeUsername(t *testing.T) {
	if got := SanitizeUsername("   "); got != "anonymous" {
		t.Errorf("blank name = %q", got)
	}
	long := strings.Repeat("x", 40)
	if got := SanitizeUsername(long); len(got) != 16 {
		t.Errorf("long name kept %d chars", len(got))
	}
	if got := SanitizeUsername(" pilot "); got != "pilot" {
		t.Errorf("got %q", got)
	}
}

func TestTopScoresOrdering(t *testing.T) {
	r := newTestRegistry()
	a := r.Register("a")
	b := r.Register("b")
	r.RecordScore(a.ID, 3)
	r.RecordScore(b.ID, 7)
	r.RecordScore(a.ID, 7)
	r.RecordScore(b.ID, 0)

	top := r.TopScores(5)
	if len(top) != 3 {
		t.Fatalf("len = %d, want 3 (zero scores are skipped)", len(top))
	}
	want := []struct {
		user  string
		score int
	}{{"b", 7}, {"a", 7}, {"a", 3}}
	for i, w := range want {
		if top[i].Username != w.user || top[i].Score != w.score {
			t.Errorf("entry %d = %+v, want %s %d", i, top[i], w.user, w.score)
		}
	}
	if got := r.TopScores(1); len(got) != 1 || got[0].Score != 7 {
		t.Errorf("TopScores(1) = %+v", got)
	}
	if got := r.TopScores(0); got != nil {
		t.Errorf("TopScores(0) = %+v", got)
	}
}

func TestHighScoreNotifiesOthers(t *testing.T) {
	r := newTestRegistry()
	a := r.Register("ace")
	b := r.Register("bee")

	r.RecordScore(a.ID, 10)
	select {
	case ev := <-b.Events:
		if ev.Type != EventHighScore || ev.Username != "ace" || ev.Score != 10 {
			t.Errorf("event = %+v", ev)
		}
	default:
		t.Fatal("no high score event")
	}
	select {
	case ev := <-a.Events:
		t.Errorf("scorer notified of own score: %+v", ev)
	default:
	}

	// Not first place: nobody hears about it.
	r.RecordScore(b.ID, 4)
	select {
	case ev := <-a.Events:
		t.Errorf("unexpected event %+v", ev)
	default:
	}
}

func TestShutdownNotifiesAndWaits(t *testing.T) {
	r := newTestRegistry()
	handles := []*ClientHandle{r.Register("a"), r.Register("b"), r.Register("c")}

	var wg sync.WaitGroup
	for _, h := range handles {
		wg.Add(1)
		go func(h *ClientHandle) {
			defer wg.Done()
			ev := <-h.Events
			if ev.Type != EventServerShutdown {
				t.Errorf("client %d got %+v", h.ID, ev)
			}
			r.Unregister(h.ID)
		}(h)
	}

	if !r.Shutdown(2 * time.Second) {
		t.Fatal("Shutdown timed out")
	}
	wg.Wait()
	if r.Count() != 0 {
		t.Errorf("Count = %d after shutdown", r.Count())
	}
}

func TestShutdownTimeout(t *testing.T) {
	r := newTestRegistry()
	r.Register("stuck")
	if r.Shutdown(20 * time.Millisecond) {
		t.Error("Shutdown reported success with a client still connected")
	}
}

func TestRegisterDuringShutdown(t *testing.T) {
	r := newTestRegistry()
	r.Shutdown(time.Millisecond)
	h := r.Register("late")
	select {
	case ev := <-h.Events:
		if ev.Type != EventServerShutdown {
			t.Errorf("event = %+v", ev)
		}
	default:
		t.Error("late client not told about shutdown")
	}
}
