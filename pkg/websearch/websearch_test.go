package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, "test-key", "test-cx", 5*time.Second), srv
}

func TestSearchPDFsFiltersNonPDFLinks(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/customsearch/v1", r.URL.Path)
		require.Equal(t, "machine learning filetype:pdf", r.URL.Query().Get("q"))
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.Equal(t, "test-cx", r.URL.Query().Get("cx"))
		require.Equal(t, "10", r.URL.Query().Get("num"))
		w.Write([]byte(`{"items":[{"link":"https://a.com/x.pdf"},{"link":"https://a.com/y.html"}]}`))
	})
	defer srv.Close()

	links, err := client.SearchPDFs(context.Background(), "machine learning", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"https://a.com/x.pdf"}, links)
}

func TestSearchPDFsSuffixMatchIsCaseSensitive(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"link":"https://a.com/UPPER.PDF"},{"link":"https://a.com/lower.pdf"}]}`))
	})
	defer srv.Close()

	links, err := client.SearchPDFs(context.Background(), "reports", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"https://a.com/lower.pdf"}, links)
}

func TestSearchPDFsEmptyResultIsNotAnError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	defer srv.Close()

	links, err := client.SearchPDFs(context.Background(), "obscure query", 0)
	require.NoError(t, err)
	require.Empty(t, links)
}

func TestSearchPDFsProviderErrorSurfaced(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"Quota exceeded for quota metric 'Queries'"}}`))
	})
	defer srv.Close()

	_, err := client.SearchPDFs(context.Background(), "anything", 0)
	require.Error(t, err)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	require.Equal(t, "Quota exceeded for quota metric 'Queries'", provErr.Message)
}

func TestSearchPDFsNetworkErrorMentionsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(srv.URL, "k", "cx", 5*time.Second)
	srv.Close() // connection refused from here on

	_, err := client.SearchPDFs(context.Background(), "anything", 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "network error")
}

func TestSearchPDFsCustomLimit(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "3", r.URL.Query().Get("num"))
		w.Write([]byte(`{"items":[]}`))
	})
	defer srv.Close()

	_, err := client.SearchPDFs(context.Background(), "q", 3)
	require.NoError(t, err)
}
