package assets

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mooh-ads/internal/config/configs"
)

func TestFallbackPick(t *testing.T) {
	f := NewFallback([]string{"", "memes/a.jpg", "memes/b.jpg"})
	f.intn = func(n int) int { return n - 1 }
	assert.Equal(t, "memes/b.jpg", f.Pick())

	assert.Equal(t, "", NewFallback(nil).Pick())

	var nilPicker *Fallback
	assert.Equal(t, "", nilPicker.Pick())
}

func TestS3PresignerAssetURL(t *testing.T) {
	p, err := NewS3Presigner(context.Background(), configs.Assets{
		Bucket:          "creatives",
		Region:          "us-east-1",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		PresignTTL:      10 * time.Minute,
	})
	require.NoError(t, err)

	raw, err := p.AssetURL(context.Background(), "ads/42/poster.jpg")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Contains(t, u.Host+u.Path, "creatives")
	assert.Contains(t, u.Path, "ads/42/poster.jpg")
	assert.Equal(t, "600", u.Query().Get("X-Amz-Expires"))

	empty, err := p.AssetURL(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
