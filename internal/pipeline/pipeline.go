// Package pipeline runs the sequential cleaning pass over a post
// collection, checkpointing each completed post so interrupted runs
// resume without repeating service calls.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/tidypost/tidypost/internal/logger"
	"github.com/tidypost/tidypost/internal/post"
	"github.com/tidypost/tidypost/internal/progress"
	"github.com/tidypost/tidypost/pkg/editor"
	"github.com/tidypost/tidypost/pkg/normalize"
)

// State describes what happened to one post.
type State string

const (
	// StateCached means the post was restored from the checkpoint
	// without any service call.
	StateCached State = "cached"

	// StateCleaning means the post is being sent to the service.
	StateCleaning State = "cleaning"

	// StateSuccess means the post was cleaned and checkpointed.
	StateSuccess State = "success"

	// StateFailed means the service failed for this post and the
	// regex-only fallback was applied instead.
	StateFailed State = "failed"
)

// Event reports per-post progress to the caller.
type Event struct {
	Index int // zero-based position in the collection
	Total int
	State State
	Title string
	Err   error // set only for StateFailed
}

// Summary totals one run.
type Summary struct {
	Total   int
	Cleaned int
	Cached  int
	Failed  int
}

// Config tunes a run.
type Config struct {
	TitleInstructions string
	BodyInstructions  string
	CallDelay         time.Duration // pause after each service call
	FailureCooldown   time.Duration // pause after a failed post
	OnEvent           func(Event)
}

// Option adjusts the runner configuration.
type Option func(*Config)

// WithCallDelay overrides the pause after each service call.
func WithCallDelay(d time.Duration) Option {
	return func(c *Config) { c.CallDelay = d }
}

// WithFailureCooldown overrides the pause after a failed post.
func WithFailureCooldown(d time.Duration) Option {
	return func(c *Config) { c.FailureCooldown = d }
}

// WithInstructions overrides the editing instructions.
func WithInstructions(title, body string) Option {
	return func(c *Config) {
		c.TitleInstructions = title
		c.BodyInstructions = body
	}
}

// WithEventFunc registers a per-post progress callback.
func WithEventFunc(fn func(Event)) Option {
	return func(c *Config) { c.OnEvent = fn }
}

// Runner drives one cleaning pass. Posts are processed strictly one at
// a time, in input order.
type Runner struct {
	editor   editor.Editor
	progress *progress.Store
	cfg      Config
	sleep    func(time.Duration)
}

// New creates a runner over the given editor and checkpoint store.
func New(ed editor.Editor, store *progress.Store, opts ...Option) *Runner {
	cfg := Config{
		TitleInstructions: TitleInstructions,
		BodyInstructions:  BodyInstructions,
		CallDelay:         time.Second,
		FailureCooldown:   10 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runner{
		editor:   ed,
		progress: store,
		cfg:      cfg,
		sleep:    time.Sleep,
	}
}

// Run cleans every post in place and returns run totals. The output
// slice keeps the input's order and length. Posts already in the
// checkpoint are restored without service calls; posts whose service
// calls fail get the regex-only fallback and stay out of the
// checkpoint so the next run retries them. The checkpoint is cleared
// only after a run with zero failures.
func (r *Runner) Run(ctx context.Context, posts []post.Post) (Summary, error) {
	sum := Summary{Total: len(posts)}

	for i := range posts {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		p := &posts[i]
		id := p.ID(i)

		if u, ok := r.progress.Lookup(id); ok {
			p.Apply(u)
			sum.Cached++
			r.emit(Event{Index: i, Total: sum.Total, State: StateCached, Title: p.Title})
			continue
		}

		r.emit(Event{Index: i, Total: sum.Total, State: StateCleaning, Title: p.Title})

		u, err := r.cleanOne(ctx, *p)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return sum, ctxErr
			}
			logger.Warn("cleaning failed, applying fallback",
				"post", id, "title", p.Title, "error", err)
			p.Apply(fallbackUpdate(*p))
			sum.Failed++
			r.emit(Event{Index: i, Total: sum.Total, State: StateFailed, Title: p.Title, Err: err})
			r.sleep(r.cfg.FailureCooldown)
			continue
		}

		// Checkpoint before applying. A checkpoint that cannot be
		// written would silently break resumption, so the run stops.
		if err := r.progress.Record(id, u); err != nil {
			return sum, fmt.Errorf("checkpointing post %s: %w", id, err)
		}
		p.Apply(u)
		sum.Cleaned++
		r.emit(Event{Index: i, Total: sum.Total, State: StateSuccess, Title: p.Title})
	}

	if sum.Failed == 0 {
		if err := r.progress.Clear(); err != nil {
			return sum, err
		}
	} else {
		logger.Info("keeping checkpoint for retry", "failed", sum.Failed)
	}

	return sum, nil
}

// cleanOne runs the full per-post sequence: strip markup, send each
// field to the service, then apply the deterministic finishing passes.
func (r *Runner) cleanOne(ctx context.Context, p post.Post) (post.Update, error) {
	title := normalize.StripMarkup(p.Title)
	cleanedTitle, err := r.editor.Edit(ctx, r.cfg.TitleInstructions, title)
	if err != nil {
		return post.Update{}, fmt.Errorf("editing title: %w", err)
	}
	if cleanedTitle == "" {
		logger.Debug("empty title response, keeping input", "title", title)
		cleanedTitle = title
	}
	r.sleep(r.cfg.CallDelay)

	body := normalize.StripMarkup(p.Body)
	cleanedBody, err := r.editor.Edit(ctx, r.cfg.BodyInstructions, body)
	if err != nil {
		return post.Update{}, fmt.Errorf("editing body: %w", err)
	}
	if cleanedBody == "" {
		logger.Debug("empty body response, keeping input", "title", title)
		cleanedBody = body
	}
	r.sleep(r.cfg.CallDelay)

	return post.Update{
		Title:     normalize.FixQuotes(cleanedTitle),
		Body:      normalize.ToParagraphHTML(normalize.FixQuotes(cleanedBody)),
		Source:    p.Source,
		AICleaned: true,
	}, nil
}

// fallbackUpdate applies only the deterministic passes. AICleaned stays
// unset so downstream consumers can tell the post was never edited.
func fallbackUpdate(p post.Post) post.Update {
	return post.Update{
		Title:  normalize.FixQuotes(normalize.StripMarkup(p.Title)),
		Body:   normalize.ToParagraphHTML(normalize.FixQuotes(normalize.StripMarkup(p.Body))),
		Source: p.Source,
	}
}

func (r *Runner) emit(ev Event) {
	if r.cfg.OnEvent != nil {
		r.cfg.OnEvent(ev)
	}
}
