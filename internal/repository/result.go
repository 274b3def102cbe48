// Package repository normalizes raw API outcomes into a uniform
// contract: a typed domain value, or a *Failure carrying a
// display-ready message and an internal kind. Callers above this layer
// never see transport or decode errors.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fedha/ftk-go/internal/api"
	"github.com/fedha/ftk-go/internal/api/dto"
)

// Kind classifies a normalized failure.
type Kind int

const (
	// KindTransport - no response received (connectivity, timeout, DNS).
	KindTransport Kind = iota + 1
	// KindStatus - the server answered with a non-2xx status.
	KindStatus
	// KindLogical - a 2xx response whose payload reports success=false.
	KindLogical
	// KindDecode - the response body did not match the expected schema.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindLogical:
		return "logical"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Failure is the single error shape repository methods return. Message
// is safe to show to the end user as-is.
type Failure struct {
	Kind    Kind
	Status  int // HTTP status when Kind is KindStatus, else 0
	Message string
}

func (f *Failure) Error() string { return f.Message }

// Messages parameterizes the normalization routine per operation. Only
// the strings differ between operations; the control flow never does.
type Messages struct {
	Action   string         // "<Action> failed (Error <code>)" fallback
	Default  string         // logical-failure fallback when the payload carries no message
	ByStatus map[int]string // status-code-keyed overrides, e.g. 401 on login
}

// call runs one API operation and applies the normalization policy:
//  1. non-2xx: probe the error body for {success, message}, then the
//     per-operation status table, then the generic fallback;
//  2. 2xx with success=false: the payload message, or the default;
//  3. 2xx with success=true: hand the payload to the extractor;
//  4. anything else (no connectivity, undecodable body): a
//     "Connection error" failure with the matching kind.
func call[R dto.Envelope, T any](log *logrus.Entry, msgs Messages, invoke func() (R, error), extract func(R) (T, error)) (T, error) {
	var zero T

	resp, err := invoke()
	if err != nil {
		f := classify(err, msgs)
		log.WithFields(logrus.Fields{"kind": f.Kind.String(), "status": f.Status}).
			Warn(f.Message)
		return zero, f
	}

	if !resp.OK() {
		msg := resp.Msg()
		if msg == "" {
			msg = msgs.Default
		}
		f := &Failure{Kind: KindLogical, Message: msg}
		log.WithField("kind", f.Kind.String()).Warn(f.Message)
		return zero, f
	}

	out, err := extract(resp)
	if err != nil {
		f := &Failure{Kind: KindDecode, Message: msgs.Default}
		log.WithField("kind", f.Kind.String()).Warn(err.Error())
		return zero, f
	}
	return out, nil
}

func classify(err error, msgs Messages) *Failure {
	var se *api.StatusError
	if errors.As(err, &se) {
		var env dto.APIResponse
		if jsonErr := json.Unmarshal(se.Body, &env); jsonErr == nil && env.Message != "" {
			return &Failure{Kind: KindStatus, Status: se.Code, Message: env.Message}
		}
		if msg, ok := msgs.ByStatus[se.Code]; ok {
			return &Failure{Kind: KindStatus, Status: se.Code, Message: msg}
		}
		return &Failure{
			Kind:    KindStatus,
			Status:  se.Code,
			Message: fmt.Sprintf("%s failed (Error %d)", msgs.Action, se.Code),
		}
	}

	var de *api.DecodeError
	if errors.As(err, &de) {
		return &Failure{Kind: KindDecode, Message: fmt.Sprintf("Connection error: %v", err)}
	}
	return &Failure{Kind: KindTransport, Message: fmt.Sprintf("Connection error: %v", err)}
}
