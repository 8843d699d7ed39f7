package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClickRecordIsAppendOnly(t *testing.T) {
	repo := NewClickRepository(newTestDB(t))

	require.NoError(t, repo.Record("https://a.com/x.pdf"))
	require.NoError(t, repo.Record("https://a.com/x.pdf"))

	clicks, err := repo.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, clicks, 2)
	require.Equal(t, "https://a.com/x.pdf", clicks[0].LinkURL)
	require.Equal(t, "https://a.com/x.pdf", clicks[1].LinkURL)
}

func TestClickListRecentNewestFirstAndLimited(t *testing.T) {
	repo := NewClickRepository(newTestDB(t))

	for _, url := range []string{"https://a.com/1.pdf", "https://a.com/2.pdf", "https://a.com/3.pdf"} {
		require.NoError(t, repo.Record(url))
	}

	clicks, err := repo.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, clicks, 2)
	require.Equal(t, "https://a.com/3.pdf", clicks[0].LinkURL)
	require.Equal(t, "https://a.com/2.pdf", clicks[1].LinkURL)
}

func TestClickListRecentDefaultLimit(t *testing.T) {
	repo := NewClickRepository(newTestDB(t))
	require.NoError(t, repo.Record("https://a.com/x.pdf"))

	clicks, err := repo.ListRecent(0)
	require.NoError(t, err)
	require.Len(t, clicks, 1)
}
