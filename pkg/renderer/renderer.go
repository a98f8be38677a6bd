package renderer

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/disintegration/imaging"
	"github.com/nairmahesh/diwali-delights/internal/config"
)

// Renderer turns a self-contained HTML document into a PNG capture.
type Renderer interface {
	RenderPNG(ctx context.Context, html string) ([]byte, error)
}

type chromeRenderer struct {
	chromePath  string
	width       int64
	scaleFactor float64
	cfg         config.Renderer
}

func NewChromeRenderer(cfg config.Renderer) Renderer {
	path := cfg.ChromePath
	if path == "" {
		path = detectChromePath()
	}

	return &chromeRenderer{
		chromePath:  path,
		width:       int64(cfg.CardWidth),
		scaleFactor: cfg.ScaleFactor,
		cfg:         cfg,
	}
}

// detectChromePath checks CHROME_PATH first, then common install locations.
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// waitForAssetsJS resolves once web fonts and every <img> have settled, so the
// capture never shows half-loaded artwork. Broken images resolve after a
// bounded wait instead of hanging the render.
const waitForAssetsJS = `
	(function() {
		return Promise.all([
			document.fonts.ready,
			Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
				return new Promise((resolve) => {
					if (img.complete && img.naturalWidth > 0 && img.naturalHeight > 0) {
						resolve();
						return;
					}
					const timeout = setTimeout(() => resolve(), 5000);
					img.onload = () => { clearTimeout(timeout); resolve(); };
					img.onerror = () => { clearTimeout(timeout); resolve(); };
				});
			}))
		]);
	})();
`

func (r *chromeRenderer) RenderPNG(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var buf []byte

	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(r.width, r.width, chromedp.EmulateScale(r.scaleFactor)),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}

			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(waitForAssetsJS, nil),
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture card: %w", err)
	}

	// Decode and re-encode so a truncated or corrupt capture is caught here
	// rather than handed to the client as a broken download.
	img, err := imaging.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("captured image is not decodable: %w", err)
	}

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}

	return out.Bytes(), nil
}
