package idcard

import (
	"context"
	"time"

	"event-registration-backend/internal/config"
	apperrors "event-registration-backend/internal/errors"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"golang.org/x/sync/semaphore"
)

//go:generate mockgen -source=renderer.go -destination=../mocks/renderer_mocks.go -package=mocks

// A4 paper in inches, with the 40px print margin converted at 96 DPI.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 40.0 / 96.0
)

// Renderer produces the identity-card PDF for one registration.
type Renderer interface {
	Render(ctx context.Context, data CardData) ([]byte, error)
}

// ChromeRenderer prints the card HTML to PDF through a headless Chrome
// instance. Each render launches its own browser context; the weighted
// semaphore caps how many run at once, since the browser round trip is by far
// the most expensive step in the registration workflow.
type ChromeRenderer struct {
	allocOpts []chromedp.ExecAllocatorOption
	sem       *semaphore.Weighted
	timeout   time.Duration
}

// NewChromeRenderer creates a renderer with concurrency and timeout limits
// from configuration.
func NewChromeRenderer(cfg *config.Config) *ChromeRenderer {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-setuid-sandbox", true),
	)
	if cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ChromePath))
	}

	maxConcurrent := cfg.RenderMaxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &ChromeRenderer{
		allocOpts: opts,
		sem:       semaphore.NewWeighted(maxConcurrent),
		timeout:   time.Duration(cfg.RenderTimeoutSec) * time.Second,
	}
}

// Render builds the card HTML and prints it to an A4 PDF with background
// graphics enabled and 40px margins on all sides. Content-load failures and
// page-print failures are reported as distinct render stages.
func (r *ChromeRenderer) Render(ctx context.Context, data CardData) ([]byte, error) {
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, apperrors.NewRenderError("content", err)
	}
	defer r.sem.Release(1)

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	html, err := BuildHTML(data)
	if err != nil {
		return nil, apperrors.NewRenderError("content", err)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, r.allocOpts...)
	defer cancelAlloc()
	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	err = chromedp.Run(taskCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
	)
	if err != nil {
		return nil, apperrors.NewRenderError("content", err)
	}

	var pdf []byte
	err = chromedp.Run(taskCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithMarginRight(marginInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, apperrors.NewRenderError("print", err)
	}

	return pdf, nil
}
