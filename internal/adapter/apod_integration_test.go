//go:build integration

package adapter

import (
	"apod-manager/internal/core/model"
	"apod-manager/pkg/http_client"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApod_Live(t *testing.T) {
	key := os.Getenv("NASA_API_KEY")
	if key == "" {
		key = "DEMO_KEY"
	}

	c := NewApodClient("", key, http_client.CreateHTTPClient(30*time.Second))
	params, err := model.NewParamsBuilder().Build()
	require.NoError(t, err)

	apods, err := c.Get(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, apods, 1)
	require.NotEmpty(t, apods[0].Title)
	require.NotEmpty(t, apods[0].URL)
}
