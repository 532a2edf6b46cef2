package image

import (
	"context"
	"net/http"
	"time"

	"github.com/reusedev/mockup-hub/internal/modules/ai"
	"github.com/reusedev/mockup-hub/internal/modules/http_client"
	"github.com/reusedev/mockup-hub/internal/modules/logs"
	"github.com/reusedev/mockup-hub/tools"
)

type SyncRequester struct {
	ctx     context.Context
	token   ai.Token
	Request Request
	Parser  Parser
	BatchID string
}

func NewRequester(ctx context.Context, token ai.Token, request Request, parser Parser) *SyncRequester {
	return &SyncRequester{
		ctx:     ctx,
		token:   token,
		Request: request,
		Parser:  parser,
	}
}

func (r *SyncRequester) SetBatchID(batchID string) *SyncRequester {
	r.BatchID = batchID
	return r
}

func (r *SyncRequester) Do() Response {
	ret := r.Request.InitResponse(r.token.Supplier.String(), r.token.Desc)

	// Without an explicit timeout the relay drops at 2 minutes and sometimes
	// still bills. Extend to 6 minutes.
	client := http_client.NewWithTimeout(6 * time.Minute)
	body, contentType, err := r.Request.BodyContentType(r.token.Supplier)
	if err != nil {
		ret.SetError(err)
		return ret
	}
	req, err := client.NewRequest(
		http.MethodPost,
		tools.FullURL(r.token.GetSupplier().BaseURL(), r.Request.Path(r.token.Supplier)),
		http_client.WithHeader("Authorization", "Bearer "+r.token.Token),
		http_client.WithHeader("Content-Type", contentType),
		http_client.WithBody(body),
		http_client.WithContext(r.ctx),
	)
	if err != nil {
		ret.SetError(err)
		return ret
	}
	reqAt := time.Now()
	resp, err := client.Do(req)
	respAt := time.Now()
	ret.SetReqAt(reqAt)
	ret.SetRespAt(respAt)
	if err != nil {
		ret.SetError(err)
		return ret
	}
	defer resp.Body.Close()
	logs.Logger.Info().
		Str("batch_id", r.BatchID).
		Str("supplier", r.token.Supplier.String()).
		Str("token_desc", r.token.Desc).
		Str("path", r.Request.Path(r.token.Supplier)).
		Str("method", req.Method).
		Int("status_code", resp.StatusCode).
		Dur("req_consume_ms", respAt.Sub(reqAt)).
		Msg("mockup request")
	err = r.Parser.Parse(resp, ret)
	if err != nil {
		ret.SetError(err)
		return ret
	}
	return ret
}
