// Package request defines the query request body that carries parameter bindings.
package request

import (
	"github.com/goccy/snowflake-bindings/bind"
)

// ExecRequest is the body of a query execution request.
type ExecRequest struct {
	SQLText    string        `json:"sqlText"`
	AsyncExec  bool          `json:"asyncExec"`
	SequenceID uint64        `json:"sequenceId"`
	IsInternal bool          `json:"isInternal"`
	Bindings   bind.Bindings `json:"bindings,omitempty"`
}

type Option func(*ExecRequest)

func WithAsync(async bool) Option {
	return func(r *ExecRequest) {
		r.AsyncExec = async
	}
}

func WithSequenceID(id uint64) Option {
	return func(r *ExecRequest) {
		r.SequenceID = id
	}
}

func WithInternal(internal bool) Option {
	return func(r *ExecRequest) {
		r.IsInternal = internal
	}
}

func NewExecRequest(sql string, bindings bind.Bindings, opts ...Option) *ExecRequest {
	req := &ExecRequest{
		SQLText:  sql,
		Bindings: bindings,
	}
	for _, opt := range opts {
		opt(req)
	}
	return req
}
