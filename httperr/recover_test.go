// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/stacklok/toolhive-httperr/httperr/mocks"
)

func newObservedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

func messages(logs *observer.ObservedLogs) []string {
	entries := logs.All()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message)
	}
	return out
}

func TestRecover_ReasonPhraseFallback(t *testing.T) {
	t.Parallel()

	statuses := []int{
		http.StatusOK,
		http.StatusNoContent,
		http.StatusBadRequest,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusConflict,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusServiceUnavailable,
	}

	for _, status := range statuses {
		status := status
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()
			log, _ := newObservedLogger()

			resp, err := Recover(log, New(status))
			require.NoError(t, err)
			require.Equal(t, status, resp.Status)
			require.Equal(t, http.StatusText(status), resp.Body)
		})
	}
}

func TestRecover_UnknownStatusHasEmptyBody(t *testing.T) {
	t.Parallel()
	log, _ := newObservedLogger()

	resp, err := Recover(log, New(599))
	require.NoError(t, err)
	require.Equal(t, 599, resp.Status)
	require.Empty(t, resp.Body)
}

func TestRecover_MessageWins(t *testing.T) {
	t.Parallel()
	log, _ := newObservedLogger()

	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, 599} {
		status := status
		resp, err := Recover(log, New(status).WithMessage("custom text"))
		require.NoError(t, err)
		assert.Equal(t, status, resp.Status)
		assert.Equal(t, "custom text", resp.Body)
	}
}

func TestRecover_CauseNeverRendered(t *testing.T) {
	t.Parallel()
	log, logs := newObservedLogger()

	secret := errors.New(`pq: relation "users" does not exist`)

	resp, err := Recover(log, BadRequest().WithCause(secret))
	require.NoError(t, err)
	require.Equal(t, "Bad Request", resp.Body)

	resp, err = Recover(log, BadRequest().WithMessage("invalid user").WithCause(secret))
	require.NoError(t, err)
	require.Equal(t, "invalid user", resp.Body)
	require.NotContains(t, resp.Body, "relation")

	assert.Contains(t, messages(logs), `  -> pq: relation "users" does not exist`)
}

func TestRecover_ForeignErrorPassesThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	// no expectations: a foreign error must not be logged

	foreign := errors.New("route not found")
	resp, err := Recover(log, foreign)
	require.Nil(t, resp)
	require.Same(t, foreign, err)
}

func TestRecover_NilError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	resp, err := Recover(mocks.NewMockLogger(ctrl), nil)
	require.Nil(t, resp)
	require.NoError(t, err)
}

func TestRecover_LogsChainInOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	root := fs.ErrNotExist
	mid := fmt.Errorf("open config: %w", root)
	top := InternalServerError(mid)

	gomock.InOrder(
		log.EXPECT().Errorf("%v", top),
		log.EXPECT().Errorf("  -> %v", mid),
		log.EXPECT().Errorf("  -> %v", root),
	)

	resp, err := Recover(log, top)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.Status)
}

func TestRecover_ChainDepth(t *testing.T) {
	t.Parallel()

	for depth := 0; depth <= 5; depth++ {
		depth := depth
		t.Run(fmt.Sprintf("depth %d", depth), func(t *testing.T) {
			t.Parallel()
			log, logs := newObservedLogger()

			var cause error
			if depth > 0 {
				cause = errors.New("link 0")
				for i := 1; i < depth; i++ {
					cause = fmt.Errorf("link %d: %w", i, cause)
				}
			}
			httpErr := New(http.StatusBadGateway)
			if cause != nil {
				httpErr = httpErr.WithCause(cause)
			}

			_, err := Recover(log, httpErr)
			require.NoError(t, err)

			lines := messages(logs)
			require.Len(t, lines, depth+1)
			assert.Equal(t, "fail with status 502 Bad Gateway", lines[0])
			for i, line := range lines[1:] {
				assert.True(t, strings.HasPrefix(line, "  -> link "), line)
				assert.True(t, strings.HasPrefix(line, fmt.Sprintf("  -> link %d", depth-1-i)), line)
			}
			for _, e := range logs.All() {
				assert.Equal(t, zapcore.ErrorLevel, e.Level)
			}
		})
	}
}

func TestRecover_WrappedHTTPError(t *testing.T) {
	t.Parallel()
	log, logs := newObservedLogger()

	inner := Forbidden().WithMessage("read only")
	outer := fmt.Errorf("update document: %w", inner)

	resp, err := Recover(log, outer)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.Status)
	require.Equal(t, "read only", resp.Body)
	require.Equal(t, []string{
		"update document: fail with status 403 Forbidden",
		"  -> fail with status 403 Forbidden",
	}, messages(logs))
}

func TestRecover_HTTPErrorOffTheLinearChain(t *testing.T) {
	t.Parallel()

	t.Run("joined errors", func(t *testing.T) {
		t.Parallel()
		log, logs := newObservedLogger()

		err := errors.Join(
			errors.New("cleanup failed"),
			InternalServerError(errors.New("pq: connection refused to 10.0.0.5")),
		)

		resp, rerr := Recover(log, err)
		require.NoError(t, rerr)
		require.Equal(t, http.StatusInternalServerError, resp.Status)
		require.Equal(t, "Internal Server Error", resp.Body)
		require.Equal(t, []string{
			"cleanup failed\nfail with status 500 Internal Server Error",
			"  -> fail with status 500 Internal Server Error",
			"  -> pq: connection refused to 10.0.0.5",
		}, messages(logs))
	})

	t.Run("multiple %w verbs", func(t *testing.T) {
		t.Parallel()
		log, logs := newObservedLogger()

		lookup := fmt.Errorf("lookup item 9: %w", fs.ErrNotExist)
		err := fmt.Errorf("ctx: %w; %w", errors.New("request canceled"), NotFound().WithCause(lookup))

		resp, rerr := Recover(log, err)
		require.NoError(t, rerr)
		require.Equal(t, http.StatusNotFound, resp.Status)
		require.Equal(t, "Not Found", resp.Body)
		require.Equal(t, []string{
			"ctx: request canceled; fail with status 404 Not Found",
			"  -> fail with status 404 Not Found",
			"  -> lookup item 9: file does not exist",
			"  -> file does not exist",
		}, messages(logs))
	})
}

func TestRecover_NilHTTPErrorPointer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var httpErr *HTTPError
	var err error = httpErr

	require.NotPanics(t, func() {
		resp, rerr := Recover(log, err)
		assert.Nil(t, resp)
		assert.Equal(t, err, rerr)
	})
}

func TestRecover_InformationalStatusIsNotSentAsFinal(t *testing.T) {
	t.Parallel()
	log, _ := newObservedLogger()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp, err := Recover(log, New(http.StatusEarlyHints))
		if err != nil {
			http.Error(w, err.Error(), http.StatusTeapot)
			return
		}
		resp.Write(w)
	}))
	defer srv.Close()

	res, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}

func TestRecover_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("client error from a parse failure", func(t *testing.T) {
		t.Parallel()
		log, _ := newObservedLogger()

		_, rejection := From(strconv.Atoi("not-a-number")).ClientErr()
		resp, err := Recover(log, rejection)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.Status)
		require.Equal(t, "Bad Request", resp.Body)
	})

	t.Run("bad request with message", func(t *testing.T) {
		t.Parallel()
		log, _ := newObservedLogger()

		resp, err := Recover(log, BadRequest().WithMessage("missing field: email"))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.Status)
		require.Equal(t, "missing field: email", resp.Body)
	})

	t.Run("internal server error hides io failure", func(t *testing.T) {
		t.Parallel()
		log, logs := newObservedLogger()

		ioFailure := &fs.PathError{Op: "read", Path: "/var/lib/app/data.db", Err: fs.ErrPermission}
		resp, err := Recover(log, InternalServerError(ioFailure))
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, resp.Status)
		require.Equal(t, "Internal Server Error", resp.Body)
		assert.Contains(t, messages(logs), "  -> read /var/lib/app/data.db: permission denied")
	})
}

func TestRecover_Headers(t *testing.T) {
	t.Parallel()
	log, logs := newObservedLogger()

	err := Status(http.StatusTooManyRequests).
		WithHeader("Retry-After", "30").
		WithHeader("Bad Header", "x").
		WithHeader("X-Injected", "a\r\nSet-Cookie: evil=1")

	resp, rerr := Recover(log, err)
	require.NoError(t, rerr)
	assert.Equal(t, "30", resp.Header.Get("Retry-After"))
	assert.Empty(t, resp.Header.Values("Bad Header"))
	assert.Empty(t, resp.Header.Values("X-Injected"))
	assert.Len(t, logs.FilterMessageSnippet("dropping response header").All(), 2)
}

func TestResponse_Write(t *testing.T) {
	t.Parallel()

	t.Run("plain text with status", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		(&Response{Status: http.StatusNotFound, Body: "Not Found"}).Write(rec)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not Found", rec.Body.String())
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	})

	t.Run("extra headers are copied", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		resp := &Response{
			Status: http.StatusMethodNotAllowed,
			Body:   "Method Not Allowed",
			Header: http.Header{"Allow": {"GET, HEAD"}},
		}
		resp.Write(rec)

		assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
	})

	t.Run("no body for 204", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		(&Response{Status: http.StatusNoContent, Body: "No Content"}).Write(rec)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
