package image

import "time"

type Response interface {
	GetModel() string
	GetSupplier() string
	GetTokenDesc() string
	GetStatusCode() int
	GetRespAt() time.Time
	GetRespBody() string
	ReqConsumeMs() int64
	Succeed() bool
	GetURLs() []string
	GetB64s() []string
	GetError() error // is nil if Succeed() returns true

	SetBasicResponse(statusCode int, respBody string)
	SetReqAt(reqAt time.Time)
	SetRespAt(respAt time.Time)
	SetURLs(urls []string)
	SetB64s(b64 []string)
	SetError(err error)
}

type BaseResponse struct {
	Supplier   string    `json:"supplier"`
	TokenDesc  string    `json:"token_desc"`
	Model      string    `json:"model"`
	StatusCode int       `json:"status_code"`
	RespBody   string    `json:"resp_body"`
	ReqAt      time.Time `json:"req_at"`
	RespAt     time.Time `json:"resp_at"`
	URLs       []string  `json:"URLs"`
	B64s       []string  `json:"b64s"`
	Error      error     `json:"error,omitempty"`
}

func (r *BaseResponse) GetSupplier() string  { return r.Supplier }
func (r *BaseResponse) GetTokenDesc() string { return r.TokenDesc }
func (r *BaseResponse) GetModel() string     { return r.Model }
func (r *BaseResponse) GetStatusCode() int   { return r.StatusCode }
func (r *BaseResponse) GetRespAt() time.Time { return r.RespAt }
func (r *BaseResponse) GetRespBody() string  { return r.RespBody }
func (r *BaseResponse) GetURLs() []string    { return r.URLs }
func (r *BaseResponse) GetB64s() []string    { return r.B64s }
func (r *BaseResponse) GetError() error      { return r.Error }
func (r *BaseResponse) Succeed() bool        { return len(r.URLs) != 0 || len(r.B64s) != 0 }
func (r *BaseResponse) ReqConsumeMs() int64  { return r.RespAt.Sub(r.ReqAt).Milliseconds() }

func (r *BaseResponse) SetBasicResponse(statusCode int, respBody string) {
	r.StatusCode = statusCode
	r.RespBody = respBody
}
func (r *BaseResponse) SetReqAt(reqAt time.Time)   { r.ReqAt = reqAt }
func (r *BaseResponse) SetRespAt(respAt time.Time) { r.RespAt = respAt }
func (r *BaseResponse) SetURLs(urls []string)      { r.URLs = urls }
func (r *BaseResponse) SetB64s(b64 []string)       { r.B64s = b64 }
func (r *BaseResponse) SetError(err error)         { r.Error = err }
