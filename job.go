package mixedtext

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"unicode/utf8"

	"github.com/guiguan/caster"
)

// Progress is a progress report of an asynchronous parse.
// Percentage runs from 0 to 100.
type Progress struct {
	Percentage float64
	Stage      string
}

// Stages of an asynchronous parse.
const (
	StageStarting   = "Starting..."
	StageAnalyzing  = "Analyzing text..."
	StageOrganizing = "Organizing lines..."
	StageFinalizing = "Finalizing..."
	StageComplete   = "Complete"
)

// ProgressListener is notified about the progress of an asynchronous parse.
// ParseProgress is called from the goroutine doing the parse.
type ProgressListener interface {
	ParseProgress(Progress)
}

// ProgressFunc adapts a function to a ProgressListener.
type ProgressFunc func(Progress)

// ParseProgress calls f(p).
func (f ProgressFunc) ParseProgress(p Progress) {
	f(p)
}

// Job is an asynchronous parse of a text. It is meant for long texts which
// should not be segmented on a render goroutine.
//
// A job cannot be cancelled. A client which loses interest in the result simply
// does not wait for it; the job runs to completion and stores its result in the
// parser's cache.
type Job struct {
	text     string
	parser   *Parser
	listener ProgressListener
	cast     *caster.Caster // broadcasts Progress to subscribers
	start    sync.Once
	done     chan struct{}
	lines    []TextLine
}

// NewJob prepares an asynchronous parse of text without starting it.
// Clients wanting to receive every progress report via Subscribe should
// subscribe before calling Start. l may be nil.
func (p *Parser) NewJob(text string, l ProgressListener) *Job {
	return &Job{
		text:     text,
		parser:   p,
		listener: l,
		cast:     caster.New(nil),
		done:     make(chan struct{}),
	}
}

// Start creates a job for text and starts it. l may be nil.
func (p *Parser) Start(text string, l ProgressListener) *Job {
	return p.NewJob(text, l).Start()
}

func completedJob(lines []TextLine) *Job {
	job := &Job{
		cast:  caster.New(nil),
		done:  make(chan struct{}),
		lines: lines,
	}
	job.start.Do(func() {})
	job.cast.Close()
	close(job.done)
	return job
}

// Start starts the job in the background. Calling Start more than once has no
// effect. Start returns the job itself.
func (job *Job) Start() *Job {
	job.start.Do(func() {
		go job.run()
	})
	return job
}

// Subscribe returns a channel receiving progress reports. The channel is closed
// when the job is complete. Once ctx is done, no more reports are delivered.
// Subscribers must either read the channel until it is closed or cancel ctx,
// otherwise the job will stall; capacity is the channel's buffer size.
// ctx may be nil.
func (job *Job) Subscribe(ctx context.Context, capacity uint) <-chan Progress {
	if ctx == nil {
		ctx = context.Background()
	}
	out := make(chan Progress, capacity)
	sub, ok := job.cast.Sub(ctx, capacity)
	if !ok { // caster already closed, job is complete
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for msg := range sub {
			if ctx.Err() != nil {
				drain(sub)
				return
			}
			p, ok := msg.(Progress)
			if !ok {
				continue
			}
			select {
			case out <- p:
			case <-ctx.Done():
				drain(sub)
				return
			}
		}
	}()
	return out
}

// drain consumes messages until the caster closes sub. The caster publishes
// to every subscription unconditionally, so an abandoned subscription would
// otherwise block the job.
func drain(sub <-chan interface{}) {
	for range sub {
	}
}

// Done returns a channel which is closed as soon as the job is complete.
func (job *Job) Done() <-chan struct{} {
	return job.done
}

// Wait blocks until the job is complete and returns the lines of the text.
// Wait must not be called for a job never started.
func (job *Job) Wait() []TextLine {
	<-job.done
	return job.lines
}

func (job *Job) report(percentage float64, stage string) {
	p := Progress{Percentage: percentage, Stage: stage}
	if job.listener != nil {
		job.listener.ParseProgress(p)
	}
	job.cast.Pub(p)
}

func (job *Job) run() {
	defer close(job.done)
	defer job.cast.Close()
	if lines, ok := job.parser.cache.Lookup(job.text); ok {
		job.lines = lines
		job.report(100, StageComplete)
		return
	}
	job.report(0, StageStarting)
	job.report(10, StageAnalyzing)
	segments := job.parse()
	job.report(80, StageOrganizing)
	lines := Group(segments)
	job.report(95, StageFinalizing)
	job.parser.cache.Store(job.text, lines)
	job.lines = lines
	tracer().Debugf("async parse: %d segments, %d lines", len(segments), len(lines))
	job.report(100, StageComplete)
}

// parse is the segmentation of Parse, reporting progress in the range 10…80
// and yielding the processor from time to time.
func (job *Job) parse() []TextSegment {
	conf := job.parser.config
	total := utf8.RuneCountInString(job.text)
	var segments []TextSegment
	b := segmentBuilder{}
	processed := 0
	for _, r := range job.text {
		if seg, ok := b.push(r); ok {
			segments = append(segments, seg)
		}
		processed++
		if processed%conf.ProgressInterval == 0 || processed == total {
			pct := float64(processed)/float64(total)*70 + 10
			job.report(pct, fmt.Sprintf("Processing characters... (%d/%d)", processed, total))
		}
		if processed%conf.YieldInterval == 0 {
			runtime.Gosched()
		}
	}
	if seg, ok := b.flush(); ok {
		segments = append(segments, seg)
	}
	return segments
}
