package image

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/reusedev/mockup-hub/internal/modules/logs"
)

type Parser interface {
	Parse(resp *http.Response, response Response) error
}

type GenericParser struct {
	urlStrategy URLParseStrategy
	b64Strategy B64ParseStrategy
}

func NewGenericParser(urlStrategy URLParseStrategy, b64Strategy B64ParseStrategy) *GenericParser {
	return &GenericParser{
		urlStrategy: urlStrategy,
		b64Strategy: b64Strategy,
	}
}

func (g *GenericParser) Parse(resp *http.Response, response Response) error {
	if resp.StatusCode != http.StatusOK {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*90)
		defer cancel()
		type result struct {
			data []byte
			err  error
		}
		resultCh := make(chan result, 1)
		go func() {
			data, err := io.ReadAll(resp.Body)
			resultCh <- result{data: data, err: err}
		}()
		var respBody []byte
		select {
		case res := <-resultCh:
			if res.err != nil {
				return res.err
			}
			respBody = res.data
		case <-ctx.Done():
		}
		// Read body with timeout, because sometimes it blocks about 900s.
		response.SetBasicResponse(resp.StatusCode, string(respBody))
		if detectedErr := DetectError(response, string(respBody)); detectedErr != nil {
			response.SetError(detectedErr)
		}
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	response.SetBasicResponse(resp.StatusCode, string(body))
	urls, err := g.urlStrategy.ExtractURLs(body)
	if err != nil {
		logs.Logger.Err(err).Msg("Extract urls error")
	}
	response.SetURLs(urls)
	b64s, err := g.b64Strategy.ExtractB64s(body)
	if err != nil {
		logs.Logger.Err(err).Msg("Extract b64s error")
	}
	response.SetB64s(b64s)
	if !response.Succeed() {
		logs.Logger.Warn().
			Str("supplier", response.GetSupplier()).
			Str("token_desc", response.GetTokenDesc()).
			Str("model", response.GetModel()).
			Int("status_code", resp.StatusCode).
			Int64("req_consume_ms", response.ReqConsumeMs()).
			Str("body", string(body)).
			Msg("mockup resp error")
		if detectedErr := DetectError(response, string(body)); detectedErr != nil {
			response.SetError(detectedErr)
		}
	}
	return nil
}
