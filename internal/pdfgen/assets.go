package pdfgen

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/billfold/billfold/internal/httpclient"
	"github.com/billfold/billfold/internal/logger"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
)

// LogoAsset is an embeddable raster image fetched from a company's logo URL
type LogoAsset struct {
	Data   []byte
	Format string // gofpdf image type: "PNG" or "JPG"
	Width  int    // intrinsic pixel width
	Height int    // intrinsic pixel height
}

// FetchLogo retrieves the logo at the given URL and converts it into an
// embeddable asset. Any failure (network error, non-2xx, unsupported or
// undecodable image) resolves to nil: a missing logo is never fatal to a
// render, the layout just shifts to its no-logo baseline. The fetch is the
// only I/O the engine performs and is bounded by the client's timeout and
// the caller's context.
func FetchLogo(ctx context.Context, client httpclient.Client, url string, log *logger.Logger) *LogoAsset {
	if url == "" {
		return nil
	}

	resp, err := client.Send(ctx, &httpclient.Request{
		Method: http.MethodGet,
		URL:    url,
	})
	if err != nil {
		log.Warnw("logo fetch failed, rendering without logo", "url", url, "error", err)
		return nil
	}

	kind, err := filetype.Match(resp.Body)
	if err != nil {
		log.Warnw("logo type detection failed, rendering without logo", "url", url, "error", err)
		return nil
	}

	var format string
	switch kind {
	case matchers.TypePng:
		format = "PNG"
	case matchers.TypeJpeg:
		format = "JPG"
	default:
		log.Warnw("unsupported logo format, rendering without logo", "url", url, "detected", kind.MIME.Value)
		return nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(resp.Body))
	if err != nil {
		log.Warnw("logo decode failed, rendering without logo", "url", url, "error", err)
		return nil
	}

	return &LogoAsset{
		Data:   resp.Body,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}
