package mixedtext

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type progressRecorder struct {
	mx      sync.Mutex
	reports []Progress
}

func (rec *progressRecorder) ParseProgress(p Progress) {
	rec.mx.Lock()
	defer rec.mx.Unlock()
	rec.reports = append(rec.reports, p)
}

func longText() string {
	return strings.Repeat("Actions are judged by intentions ﷺ "+bismillah+" ", 40)
}

func TestJobProgress(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mixedtext")
	defer teardown()
	//
	p := NewParser(Config{ProgressInterval: 50, YieldInterval: 100})
	text := longText()
	rec := &progressRecorder{}
	lines := p.Start(text, rec).Wait()
	if !reflect.DeepEqual(lines, Lines(text)) {
		t.Errorf("expected async result to equal synchronous result")
	}
	if len(rec.reports) < 6 {
		t.Fatalf("expected a series of progress reports, have %v", rec.reports)
	}
	if rec.reports[0].Stage != StageStarting || rec.reports[0].Percentage != 0 {
		t.Errorf("expected first report to be 'starting', is %v", rec.reports[0])
	}
	last := rec.reports[len(rec.reports)-1]
	if last.Stage != StageComplete || last.Percentage != 100 {
		t.Errorf("expected last report to be 'complete', is %v", last)
	}
	for i := 1; i < len(rec.reports); i++ {
		if rec.reports[i].Percentage < rec.reports[i-1].Percentage {
			t.Errorf("progress decreases at report #%d: %v", i, rec.reports[i])
		}
	}
	if p.CacheStats().Size != 1 {
		t.Errorf("expected async result to be cached")
	}
}

func TestJobCacheHit(t *testing.T) {
	p := NewParser(Config{})
	text := longText()
	p.Lines(text)
	rec := &progressRecorder{}
	p.Start(text, ProgressFunc(rec.ParseProgress)).Wait()
	if len(rec.reports) != 1 || rec.reports[0].Stage != StageComplete {
		t.Errorf("expected cache hit to report completion only, have %v", rec.reports)
	}
}

func TestJobSubscribe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mixedtext")
	defer teardown()
	//
	p := NewParser(Config{})
	job := p.NewJob(longText(), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ch := job.Subscribe(ctx, 4)
	job.Start()
	var last Progress
	for prog := range ch {
		if prog.Percentage < last.Percentage {
			t.Errorf("progress decreases: %v after %v", prog, last)
		}
		last = prog
	}
	select {
	case <-job.Done():
	case <-ctx.Done():
		t.Fatalf("job did not complete")
	}
	if len(job.Wait()) == 0 {
		t.Errorf("expected job to produce lines")
	}
}

func TestJobSubscriberCancels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mixedtext")
	defer teardown()
	//
	p := NewParser(Config{ProgressInterval: 1})
	text := strings.Repeat("Hello "+bismillah+" ", 500)
	for i := 0; i < 5; i++ {
		job := p.NewJob(text, nil)
		ctx, cancel := context.WithCancel(context.Background())
		ch := job.Subscribe(ctx, 0)
		job.Start()
		<-ch
		time.Sleep(10 * time.Millisecond)
		cancel()
		select {
		case <-job.Done():
		case <-time.After(5 * time.Second):
			t.Fatalf("job #%d stalled after its subscriber cancelled", i)
		}
		for range ch { // closed after cancellation
		}
		if len(job.Wait()) == 0 {
			t.Errorf("expected job #%d to produce lines", i)
		}
		p.ClearCache()
	}
}

func TestResolve(t *testing.T) {
	p := NewParser(Config{AsyncThreshold: 50})
	job := p.Resolve("Hello ﷺ World", nil)
	select {
	case <-job.Done():
	default:
		t.Fatalf("expected short text to be resolved synchronously")
	}
	if lines := job.Wait(); len(lines) != 1 {
		t.Errorf("expected 1 line, have %v", lines)
	}
	for range job.Subscribe(context.TODO(), 1) {
		t.Errorf("expected no progress reports for a completed job")
	}
	long := longText()
	if lines := p.Resolve(long, nil).Wait(); !reflect.DeepEqual(lines, Lines(long)) {
		t.Errorf("expected resolved lines to equal synchronous result")
	}
}
