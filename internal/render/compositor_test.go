package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HypixelVerify_Go/internal/domain"
)

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newSkinServer(t *testing.T) *httptest.Server {
	t.Helper()
	skins := map[string][]byte{
		"modern": solidPNG(t, 64, 64, color.RGBA{R: 200, A: 255}),
		"legacy": solidPNG(t, 64, 32, color.RGBA{G: 200, A: 255}),
		"tiny":   solidPNG(t, 10, 10, color.RGBA{B: 200, A: 255}),
	}
	body := solidPNG(t, 100, 200, color.RGBA{R: 90, G: 90, B: 90, A: 255})

	mux := http.NewServeMux()
	mux.HandleFunc(PathSkin, func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, PathSkin)
		if id == "garbage" {
			w.Write([]byte("not an image"))
			return
		}
		data, ok := skins[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	})
	mux.HandleFunc(PathBody, func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimPrefix(r.URL.Path, PathBody) == "missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

var mvpPlus = domain.RankDisplay{Label: "MVP+", PrimaryColor: 0x55FFFF, AccentColor: 0xFF5555}

func TestRenderWelcome(t *testing.T) {
	srv := newSkinServer(t)

	bgPath := filepath.Join(t.TempDir(), "bg.png")
	require.NoError(t, os.WriteFile(bgPath, solidPNG(t, 200, 80, color.RGBA{B: 120, A: 255}), 0o600))

	tests := []struct {
		name string
		bg   string
		card WelcomeCard
	}{
		{
			name: "all layers",
			bg:   bgPath,
			card: WelcomeCard{Name: "Notch", Rank: mvpPlus, Level: 42, StableID: "modern",
				Guild: &domain.GuildInfo{Name: "Builders", Tag: "BLD"}},
		},
		{
			name: "missing background and body",
			bg:   filepath.Join(t.TempDir(), "nope.png"),
			card: WelcomeCard{Name: "Nobody", Rank: mvpPlus, Level: 1, StableID: "missing"},
		},
		{
			name: "guild without tag",
			bg:   "",
			card: WelcomeCard{Name: "Solo", Rank: mvpPlus, Level: 3, StableID: "modern",
				Guild: &domain.GuildInfo{Name: "Tagless"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCompositor(srv.URL, tt.bg, 2*time.Second)
			require.NoError(t, err)

			data, err := c.RenderWelcome(context.Background(), tt.card)
			require.NoError(t, err)
			w, h := decodeSize(t, data)
			assert.Equal(t, WelcomeWidth, w)
			assert.Equal(t, WelcomeHeight, h)
		})
	}
}

func TestRenderWelcome_SkinServiceDown(t *testing.T) {
	srv := newSkinServer(t)
	srv.Close()

	c, err := NewCompositor(srv.URL, "", time.Second)
	require.NoError(t, err)

	data, err := c.RenderWelcome(context.Background(), WelcomeCard{Name: "Notch", Rank: mvpPlus, StableID: "modern"})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderPose(t *testing.T) {
	srv := newSkinServer(t)
	c, err := NewCompositor(srv.URL+"/", "", 2*time.Second)
	require.NoError(t, err)

	for _, id := range []string{"modern", "legacy"} {
		t.Run(id, func(t *testing.T) {
			data, err := c.RenderPose(context.Background(), "Notch", id)
			require.NoError(t, err)
			w, h := decodeSize(t, data)
			assert.Equal(t, PoseWidth, w)
			assert.Equal(t, PoseHeight, h)
		})
	}

	for _, id := range []string{"unknown", "tiny", "garbage"} {
		t.Run("fails for "+id, func(t *testing.T) {
			_, err := c.RenderPose(context.Background(), "Notch", id)
			assert.ErrorIs(t, err, domain.ErrAssetUnavailable)
		})
	}
}

func TestCutSkin_LegacyMirrorsRightLimbs(t *testing.T) {
	skin := image.NewRGBA(image.Rect(0, 0, 64, 32))
	// Mark the outer column of the right arm
	for y := 20; y < 32; y++ {
		skin.Set(44, y, color.RGBA{R: 255, A: 255})
	}

	parts, err := cutSkin(skin)
	require.NoError(t, err)

	right := parts.rightArm.Bounds()
	left := parts.leftArm.Bounds()
	assert.Equal(t, right.Size(), left.Size())

	r, _, _, _ := parts.rightArm.At(0, 0).RGBA()
	assert.NotZero(t, r)
	r, _, _, _ = parts.leftArm.At(left.Dx()-1, 0).RGBA()
	assert.NotZero(t, r)
	r, _, _, _ = parts.leftArm.At(0, 0).RGBA()
	assert.Zero(t, r)
}

func TestGuildLine(t *testing.T) {
	assert.Equal(t, "[BLD] Builders", guildLine(&domain.GuildInfo{Name: "Builders", Tag: "BLD"}))
	assert.Equal(t, "Builders", guildLine(&domain.GuildInfo{Name: "Builders"}))
}
