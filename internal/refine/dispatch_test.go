package refine

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ABB00717/Clean-Video/internal/logger"
	"github.com/ABB00717/Clean-Video/internal/subtitle"
)

// stubRewriter scrambles completion order with random delays and fails on
// request for chosen line texts
type stubRewriter struct {
	failOn   map[string]bool
	inflight int64
	peak     int64
}

func (s *stubRewriter) RewriteLine(ctx context.Context, shared *Context, line string) (Rewrite, error) {
	cur := atomic.AddInt64(&s.inflight, 1)
	defer atomic.AddInt64(&s.inflight, -1)
	for {
		peak := atomic.LoadInt64(&s.peak)
		if cur <= peak || atomic.CompareAndSwapInt64(&s.peak, peak, cur) {
			break
		}
	}

	time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)

	if s.failOn[line] {
		return Rewrite{}, fmt.Errorf("service unavailable")
	}
	return Rewrite{Text: "refined:" + line}, nil
}

func makeLines(n int) []subtitle.Line {
	lines := make([]subtitle.Line, n)
	for i := range lines {
		lines[i] = subtitle.Line{
			Index: i + 1,
			Start: time.Duration(i) * time.Second,
			End:   time.Duration(i+1) * time.Second,
			Text:  fmt.Sprintf("line-%03d", i),
		}
	}
	return lines
}

func TestDispatchOrderIndependence(t *testing.T) {
	lines := makeLines(60)
	rw := &stubRewriter{}
	log := logger.New("error")

	results, fallbacks := Dispatch(context.Background(), lines, &Context{}, rw, 8, time.Second, log)

	if fallbacks != 0 {
		t.Fatalf("fallbacks = %d, want 0", fallbacks)
	}
	if len(results) != len(lines) {
		t.Fatalf("got %d results, want %d", len(results), len(lines))
	}
	for i, r := range results {
		want := "refined:" + lines[i].Text
		if r.Text != want {
			t.Errorf("result %d = %q, want %q", i, r.Text, want)
		}
	}
}

func TestDispatchBoundsConcurrency(t *testing.T) {
	lines := makeLines(50)
	rw := &stubRewriter{}
	log := logger.New("error")

	Dispatch(context.Background(), lines, &Context{}, rw, 5, time.Second, log)

	if peak := atomic.LoadInt64(&rw.peak); peak > 5 {
		t.Errorf("peak in-flight = %d, want <= 5", peak)
	}
}

func TestDispatchFaultFallback(t *testing.T) {
	lines := makeLines(20)
	rw := &stubRewriter{failOn: map[string]bool{
		"line-003": true,
		"line-011": true,
	}}
	log := logger.New("error")

	results, fallbacks := Dispatch(context.Background(), lines, &Context{}, rw, 20, time.Second, log)

	if fallbacks != 2 {
		t.Fatalf("fallbacks = %d, want 2", fallbacks)
	}
	for i, r := range results {
		if rw.failOn[lines[i].Text] {
			if r.Text != lines[i].Text {
				t.Errorf("failed line %d text = %q, want original %q", i, r.Text, lines[i].Text)
			}
			if r.MergeNext {
				t.Errorf("failed line %d must not carry a merge flag", i)
			}
		} else if r.Text != "refined:"+lines[i].Text {
			t.Errorf("line %d lost its rewrite: %q", i, r.Text)
		}
	}
}

// slowRewriter never returns before the deadline
type slowRewriter struct{}

func (slowRewriter) RewriteLine(ctx context.Context, shared *Context, line string) (Rewrite, error) {
	<-ctx.Done()
	return Rewrite{}, ctx.Err()
}

func TestDispatchTimeoutFallsBack(t *testing.T) {
	lines := makeLines(4)
	log := logger.New("error")

	results, fallbacks := Dispatch(context.Background(), lines, &Context{}, slowRewriter{}, 4, 10*time.Millisecond, log)

	if fallbacks != len(lines) {
		t.Fatalf("fallbacks = %d, want %d", fallbacks, len(lines))
	}
	for i, r := range results {
		if r.Text != lines[i].Text {
			t.Errorf("line %d = %q, want original text", i, r.Text)
		}
	}
}
