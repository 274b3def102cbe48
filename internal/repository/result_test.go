package repository

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedha/ftk-go/internal/api"
	"github.com/fedha/ftk-go/internal/api/dto"
)

func testLog() *logrus.Entry {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(log)
}

func identity(r *dto.APIResponse) (string, error) { return r.Message, nil }

func asFailure(t *testing.T, err error) *Failure {
	t.Helper()
	var f *Failure
	require.ErrorAs(t, err, &f)
	return f
}

func TestCallSuccessPassesValueThrough(t *testing.T) {
	got, err := call(testLog(), Messages{Default: "failed"},
		func() (*dto.APIResponse, error) {
			return &dto.APIResponse{Success: true, Message: "done"}, nil
		},
		identity)
	require.NoError(t, err)
	assert.Equal(t, "done", got)
}

func TestCallLogicalFailureUsesPayloadMessage(t *testing.T) {
	_, err := call(testLog(), Messages{Default: "Transfer failed"},
		func() (*dto.APIResponse, error) {
			return &dto.APIResponse{Success: false, Message: "Insufficient balance"}, nil
		},
		identity)

	f := asFailure(t, err)
	assert.Equal(t, KindLogical, f.Kind)
	assert.Equal(t, "Insufficient balance", f.Message)
	assert.Equal(t, "Insufficient balance", err.Error())
}

func TestCallLogicalFailureFallsBackToDefault(t *testing.T) {
	_, err := call(testLog(), Messages{Default: "Transfer failed"},
		func() (*dto.APIResponse, error) {
			return &dto.APIResponse{Success: false}, nil
		},
		identity)

	f := asFailure(t, err)
	assert.Equal(t, KindLogical, f.Kind)
	assert.Equal(t, "Transfer failed", f.Message)
}

func TestCallStatusErrorPrefersBodyMessage(t *testing.T) {
	msgs := Messages{
		Action:   "Login",
		Default:  "Login failed",
		ByStatus: map[int]string{401: "Invalid username or password"},
	}
	_, err := call(testLog(), msgs,
		func() (*dto.APIResponse, error) {
			return nil, &api.StatusError{
				Code: http.StatusUnauthorized,
				Body: []byte(`{"success":false,"message":"Account suspended"}`),
			}
		},
		identity)

	f := asFailure(t, err)
	assert.Equal(t, KindStatus, f.Kind)
	assert.Equal(t, http.StatusUnauthorized, f.Status)
	assert.Equal(t, "Account suspended", f.Message)
}

func TestCallStatusErrorUnparseableBodyUsesStatusTable(t *testing.T) {
	msgs := Messages{
		Action:   "Login",
		Default:  "Login failed",
		ByStatus: map[int]string{401: "Invalid username or password"},
	}
	_, err := call(testLog(), msgs,
		func() (*dto.APIResponse, error) {
			return nil, &api.StatusError{
				Code: http.StatusUnauthorized,
				Body: []byte(`<html>gateway</html>`),
			}
		},
		identity)

	f := asFailure(t, err)
	assert.Equal(t, KindStatus, f.Kind)
	assert.Equal(t, "Invalid username or password", f.Message)
}

func TestCallStatusErrorUnmappedCodeUsesActionFallback(t *testing.T) {
	msgs := Messages{Action: "Login", Default: "Login failed"}
	_, err := call(testLog(), msgs,
		func() (*dto.APIResponse, error) {
			return nil, &api.StatusError{Code: http.StatusServiceUnavailable}
		},
		identity)

	f := asFailure(t, err)
	assert.Equal(t, KindStatus, f.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, f.Status)
	assert.Equal(t, "Login failed (Error 503)", f.Message)
}

func TestCallTransportErrorIsConnectionError(t *testing.T) {
	_, err := call(testLog(), Messages{Default: "failed"},
		func() (*dto.APIResponse, error) {
			return nil, fmt.Errorf("http request: %w", errors.New("connection refused"))
		},
		identity)

	f := asFailure(t, err)
	assert.Equal(t, KindTransport, f.Kind)
	assert.Contains(t, f.Message, "Connection error:")
}

func TestCallDecodeErrorIsConnectionError(t *testing.T) {
	_, err := call(testLog(), Messages{Default: "failed"},
		func() (*dto.APIResponse, error) {
			return nil, &api.DecodeError{Err: errors.New("invalid character '<'")}
		},
		identity)

	f := asFailure(t, err)
	assert.Equal(t, KindDecode, f.Kind)
	assert.Contains(t, f.Message, "Connection error:")
}

func TestCallExtractorErrorIsDecodeFailure(t *testing.T) {
	_, err := call(testLog(), Messages{Default: "Login failed"},
		func() (*dto.APIResponse, error) {
			return &dto.APIResponse{Success: true}, nil
		},
		func(*dto.APIResponse) (string, error) {
			return "", errors.New("response missing token")
		})

	f := asFailure(t, err)
	assert.Equal(t, KindDecode, f.Kind)
	assert.Equal(t, "Login failed", f.Message)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "transport", KindTransport.String())
	assert.Equal(t, "status", KindStatus.String())
	assert.Equal(t, "logical", KindLogical.String())
	assert.Equal(t, "decode", KindDecode.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
