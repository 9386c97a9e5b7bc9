// Package export drives batch and single-document downloads of the startup
// package. It renders through the document registry and delivers through the
// file store, pacing batch downloads so the delivery target is not flooded.
package export

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"startify/internal/domain"
	"startify/internal/infra"
	"startify/internal/render"
	"startify/pkg/zip"
)

// pacing is the fixed delay between consecutive batch deliveries.
const pacing = 500 * time.Millisecond

// Deliverer lands a rendered document somewhere durable.
type Deliverer interface {
	SaveDocument(ctx context.Context, doc domain.Document) (string, error)
}

// Event reports the outcome of one item in a batch.
type Event struct {
	Item domain.ExportItem
	Key  string
	Err  error
}

// Options configures the controller.
type Options struct {
	Registry *render.Registry
	Store    Deliverer
	Logger   *infra.Logger

	// PremiumUnlocked opens the gated items. Default is locked.
	PremiumUnlocked bool

	// OnEvent, when set, receives one event per attempted item.
	OnEvent func(Event)

	// Wait overrides the pacing sleep in tests.
	Wait func(ctx context.Context, d time.Duration) error
}

// Controller renders and delivers export items.
type Controller struct {
	registry *render.Registry
	store    Deliverer
	logger   *infra.Logger
	unlocked bool
	onEvent  func(Event)
	wait     func(ctx context.Context, d time.Duration) error
}

// NewController constructs a controller with sane defaults.
func NewController(opts Options) *Controller {
	registry := opts.Registry
	if registry == nil {
		registry = render.NewRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	wait := opts.Wait
	if wait == nil {
		wait = sleepWait
	}
	onEvent := opts.OnEvent
	if onEvent == nil {
		onEvent = func(Event) {}
	}
	return &Controller{
		registry: registry,
		store:    opts.Store,
		logger:   logger,
		unlocked: opts.PremiumUnlocked,
		onEvent:  onEvent,
		wait:     wait,
	}
}

func sleepWait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ExportAll renders and delivers every free item of the catalog in order,
// pacing deliveries. Premium items are skipped entirely while locked. The
// returned items mirror the catalog with final Generating state (always
// false again once the batch ends).
func (c *Controller) ExportAll(ctx context.Context, p render.Params) ([]domain.ExportItem, error) {
	items := Catalog()
	delivered := 0
	for i := range items {
		if items[i].Premium && !c.unlocked {
			continue
		}
		if delivered > 0 {
			if err := c.wait(ctx, pacing); err != nil {
				return items, err
			}
		}

		items[i].Generating = true
		key, err := c.deliver(ctx, items[i].ID, p)
		items[i].Generating = false

		c.onEvent(Event{Item: items[i], Key: key, Err: err})
		if err != nil {
			return items, err
		}
		delivered++
	}
	return items, nil
}

// ExportOne renders and delivers a single item without pacing. Premium items
// are rejected before any rendering or IO while locked.
func (c *Controller) ExportOne(ctx context.Context, t domain.DocumentType, p render.Params) (string, error) {
	item, ok := c.catalogItem(t)
	if !ok {
		return "", domain.ErrUnknownDocument
	}
	if item.Premium && !c.unlocked {
		return "", domain.ErrGatedFeature
	}
	return c.deliver(ctx, t, p)
}

func (c *Controller) deliver(ctx context.Context, t domain.DocumentType, p render.Params) (string, error) {
	doc := c.registry.Render(t, p)
	key, err := c.store.SaveDocument(ctx, doc)
	if err != nil {
		return "", err
	}
	c.logger.Info().Str("document", string(t)).Str("key", key).Msg("export delivered")
	return key, nil
}

// Bundle renders every unlocked item and returns them as a single zip
// archive. Nothing is delivered to the store.
func (c *Controller) Bundle(ctx context.Context, p render.Params) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var entries []zip.Entry
	for _, item := range Catalog() {
		if item.Premium && !c.unlocked {
			continue
		}
		doc := c.registry.Render(item.ID, p)
		entries = append(entries, zip.Entry{Name: doc.Filename, Data: doc.Content})
	}
	return zip.Archive(entries)
}

func (c *Controller) catalogItem(t domain.DocumentType) (domain.ExportItem, bool) {
	for _, item := range Catalog() {
		if item.ID == t {
			return item, true
		}
	}
	return domain.ExportItem{}, false
}
