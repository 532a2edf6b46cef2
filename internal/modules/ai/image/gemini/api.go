package gemini

import (
	"context"
	"errors"

	"github.com/reusedev/mockup-hub/internal/consts"
	"github.com/reusedev/mockup-hub/internal/modules/ai"
	"github.com/reusedev/mockup-hub/internal/modules/ai/image"
	"github.com/reusedev/mockup-hub/internal/modules/logs"
)

type Provider struct {
	Tokens    []ai.TokenWithModel
	OnAttempt func(attempt Attempt)
}

func NewProvider(tokens []ai.TokenWithModel, onAttempt func(attempt Attempt)) *Provider {
	return &Provider{
		Tokens:    tokens,
		OnAttempt: onAttempt,
	}
}

// Attempt is one supplier invocation inside a Create call, settled or not.
type Attempt struct {
	Supplier   string
	TokenDesc  string
	Model      string
	StatusCode int
	FailedBody string
	DurationMs int64
}

type Request struct {
	ImageBytes  [][]byte
	Prompt      string
	AspectRatio consts.AspectRatio
	Sampling    image.SamplingConfig
	BatchID     string
}

// Create walks the configured token order until one supplier returns an
// image. A safety rejection stops the walk, other suppliers would refuse
// the same content.
func (p *Provider) Create(ctx context.Context, request Request) image.Response {
	var last image.Response
	for _, tokenWithModel := range p.Tokens {
		logs.Logger.Info().
			Str("batch_id", request.BatchID).
			Str("supplier", tokenWithModel.GetSupplier().String()).
			Str("token_desc", tokenWithModel.Desc).
			Str("model", tokenWithModel.Model).
			Msg("Attempting mockup Create request")
		content := FlashMockupRequest{
			ImageBytes:  request.ImageBytes,
			Prompt:      request.Prompt,
			AspectRatio: request.AspectRatio,
			Sampling:    request.Sampling,
			Model:       tokenWithModel.Model,
		}
		var parser image.Parser
		if tokenWithModel.Model == consts.GPTImage1.String() {
			parser = image.NewGenericParser(&image.OpenAIURLStrategy{}, &image.GenericB64Strategy{})
		} else {
			parser = image.NewGenericParser(&image.MarkdownURLStrategy{}, &image.GenericB64Strategy{})
		}
		requester := image.NewRequester(ctx, ai.Token{Token: tokenWithModel.Token.Token, Desc: tokenWithModel.Desc, Supplier: tokenWithModel.Supplier}, &content, parser)
		requester.SetBatchID(request.BatchID)
		response := requester.Do()
		last = response
		if p.OnAttempt != nil {
			attempt := Attempt{
				Supplier:   tokenWithModel.Supplier.String(),
				TokenDesc:  tokenWithModel.Desc,
				Model:      tokenWithModel.Model,
				StatusCode: response.GetStatusCode(),
				DurationMs: response.ReqConsumeMs(),
			}
			if !response.Succeed() {
				attempt.FailedBody = response.GetRespBody()
			}
			p.OnAttempt(attempt)
		}
		if response.Succeed() {
			logs.Logger.Info().
				Str("batch_id", request.BatchID).
				Str("supplier", tokenWithModel.Supplier.String()).
				Str("model", tokenWithModel.Model).
				Msg("mockup Create request succeeded, stopping iteration")
			break
		}
		logs.Logger.Warn().
			Str("batch_id", request.BatchID).
			Str("supplier", tokenWithModel.Supplier.String()).
			Str("model", tokenWithModel.Model).
			Msg("mockup Create request failed, continuing")
		if errors.Is(response.GetError(), image.PromptError) {
			break
		}
		select {
		case <-ctx.Done():
			return last
		default:
		}
	}
	return last
}
