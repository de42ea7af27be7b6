package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type RenderServiceInterface interface {
	RenderMarkdownToPDF(ctx context.Context, markdownText string) ([]byte, error)
}

// RenderService turns a Markdown document into PDF bytes: goldmark renders
// the HTML and headless Chrome prints it. Requires Chrome/Chromium on the
// host.
type RenderService struct {
	Timeout time.Duration
	md      goldmark.Markdown
}

func NewRenderService(timeout time.Duration) *RenderService {
	return &RenderService{
		Timeout: timeout,
		md:      goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body { font-family: "Noto Sans", "Noto Sans SC", sans-serif; line-height: 1.6; }
  h1 { font-size: 22pt; border-bottom: 2px solid #333; padding-bottom: 4px; margin-bottom: 0.8em; }
  h2 { font-size: 18pt; border-bottom: 1px solid #ccc; padding-bottom: 2px; margin-top: 1.5em; margin-bottom: 0.5em; }
  h3 { font-size: 14pt; margin-top: 1.2em; margin-bottom: 0.4em; }
  ul { list-style-type: disc; padding-left: 20px; margin-bottom: 1em; }
  li { margin-bottom: 0.5em; }
  strong { font-weight: bold; }
  p { margin-bottom: 1em; }
</style>
</head>
<body>
%s
</body>
</html>`

func (s *RenderService) RenderMarkdownToPDF(ctx context.Context, markdownText string) ([]byte, error) {
	var body bytes.Buffer
	if err := s.md.Convert([]byte(markdownText), &body); err != nil {
		return nil, fmt.Errorf("markdown conversion failed: %w", err)
	}
	html := fmt.Sprintf(documentTemplate, body.String())

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, s.Timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("data:text/html;charset=utf-8,"+url.PathEscape(html)),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("pdf rendering produced no output")
	}
	return pdf, nil
}
