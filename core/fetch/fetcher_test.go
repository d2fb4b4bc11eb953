package fetch_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gaurav-prasanna/wikibook/core"
	"github.com/gaurav-prasanna/wikibook/core/fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the page body and escaped URL", func(t *testing.T) {
		t.Parallel()

		var gotPath, gotUA, gotAccept string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.EscapedPath()
			gotUA = r.Header.Get("User-Agent")
			gotAccept = r.Header.Get("Accept")
			_, _ = w.Write([]byte("<html><body>ok</body></html>"))
		}))
		t.Cleanup(srv.Close)

		f := fetch.New(fetch.WithUserAgent("wikibook-test/1.0"))
		result, err := f.Fetch(context.Background(), srv.URL+"/wiki/日本")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.Equal(t, "<html><body>ok</body></html>", result.HTML)
		assert.Equal(t, srv.URL+"/wiki/%E6%97%A5%E6%9C%AC", result.URL)
		assert.Equal(t, "/wiki/%E6%97%A5%E6%9C%AC", gotPath)
		assert.Equal(t, "wikibook-test/1.0", gotUA)
		assert.Contains(t, gotAccept, "text/html")
	})

	t.Run("non-2xx status is a fetch error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		t.Cleanup(srv.Close)

		_, err := fetch.New().Fetch(context.Background(), srv.URL+"/wiki/Missing")

		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrFetch))
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("unescapable URL is a fetch error", func(t *testing.T) {
		t.Parallel()

		_, err := fetch.New().Fetch(context.Background(), "not a url")

		require.Error(t, err)
		assert.Equal(t, core.KindFetch, core.ErrorKind(err))
	})

	t.Run("timeout is a fetch error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		t.Cleanup(srv.Close)

		_, err := fetch.New(fetch.WithTimeout(50*time.Millisecond)).Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrFetch))
	})

	t.Run("cancelled context stops a rate-limited fetch", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		t.Cleanup(srv.Close)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetch.New(fetch.WithRate(1)).Fetch(ctx, srv.URL)

		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestHTTPFetcher_FetchBytes(t *testing.T) {
	t.Parallel()

	t.Run("returns raw bytes", func(t *testing.T) {
		t.Parallel()

		payload := []byte{0xff, 0xd8, 0xff, 0xe0}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write(payload)
		}))
		t.Cleanup(srv.Close)

		got, err := fetch.New().FetchBytes(context.Background(), srv.URL+"/1920px-Gopher.jpg")

		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("failure is an image fetch error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		t.Cleanup(srv.Close)

		_, err := fetch.New().FetchBytes(context.Background(), srv.URL+"/x.png")

		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrImageFetch))
		assert.False(t, errors.Is(err, core.ErrFetch))
	})
}
