// Package render draws the welcome banner and the skin pose image.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // backgrounds may be JPEG
	_ "image/png"
	"net/http"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/osse101/HypixelVerify_Go/internal/domain"
	"github.com/osse101/HypixelVerify_Go/internal/logger"
	"github.com/osse101/HypixelVerify_Go/internal/metrics"
)

// WelcomeCard is everything printed on the welcome banner
type WelcomeCard struct {
	Name     string
	Rank     domain.RankDisplay
	Level    int
	Guild    *domain.GuildInfo
	StableID string
}

// Compositor renders images from remote skin assets
type Compositor struct {
	SkinURL        string
	BackgroundPath string
	HTTP           *http.Client

	fonts *fontSet
}

// NewCompositor creates a compositor. It fails only if the bundled fonts cannot be parsed.
func NewCompositor(skinURL, backgroundPath string, timeout time.Duration) (*Compositor, error) {
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return &Compositor{
		SkinURL:        strings.TrimRight(skinURL, "/"),
		BackgroundPath: backgroundPath,
		HTTP:           &http.Client{Timeout: timeout},
		fonts:          fonts,
	}, nil
}

// RenderWelcome draws the banner as a PNG. Missing background or body render
// layers are skipped; only encoding can fail.
func (c *Compositor) RenderWelcome(ctx context.Context, card WelcomeCard) ([]byte, error) {
	log := logger.FromContext(ctx)
	dc := gg.NewContext(WelcomeWidth, WelcomeHeight)

	if bg, err := c.loadBackground(); err != nil {
		log.Debug("Background unavailable, using flat fill", "path", c.BackgroundPath, "error", err)
		setHex(dc, fallbackBackground)
		dc.Clear()
	} else {
		dc.DrawImage(bg, 0, 0)
	}

	dc.SetRGBA(0, 0, 0, 0.45)
	dc.DrawRoundedRectangle(20, 20, WelcomeWidth-40, WelcomeHeight-40, 24)
	dc.Fill()

	textX := 60.0
	if body, err := c.fetchImage(ctx, PathBody+card.StableID); err != nil {
		log.Debug("Body render unavailable", "uuid", card.StableID, "error", err)
	} else {
		dc.DrawImage(fitHeight(body, WelcomeHeight-80), 60, 40)
		textX = 320
	}

	dc.SetFontFace(c.fonts.face(false, sizeSmall))
	setHex(dc, colorMuted)
	dc.DrawString("WELCOME", textX, 90)

	// Rank badge in the accent colour, then the name in the primary colour
	dc.SetFontFace(c.fonts.face(true, sizeBadge))
	badgeW, badgeH := dc.MeasureString(card.Rank.Label)
	badgeW += 24
	badgeH += 16
	setHex(dc, int(card.Rank.AccentColor))
	dc.DrawRoundedRectangle(textX, 112, badgeW, badgeH, 8)
	dc.Fill()
	setHex(dc, colorDark)
	dc.DrawStringAnchored(card.Rank.Label, textX+badgeW/2, 112+badgeH/2, 0.5, 0.35)

	dc.SetFontFace(c.fonts.face(true, sizeTitle))
	setHex(dc, int(card.Rank.PrimaryColor))
	dc.DrawString(card.Name, textX+badgeW+16, 112+badgeH)

	dc.SetFontFace(c.fonts.face(false, sizeBody))
	setHex(dc, colorText)
	dc.DrawString(fmt.Sprintf("Network Level %d", card.Level), textX, 240)

	if card.Guild != nil && card.Guild.Name != "" {
		setHex(dc, colorMuted)
		dc.DrawString(guildLine(card.Guild), textX, 290)
	}

	return c.encode(dc, KindWelcome)
}

// RenderPose draws the player's skin in a walking pose
func (c *Compositor) RenderPose(ctx context.Context, name, stableID string) ([]byte, error) {
	skin, err := c.fetchImage(ctx, PathSkin+stableID)
	if err != nil {
		metrics.Renders.WithLabelValues(KindPose, metrics.ResultFailure).Inc()
		return nil, fmt.Errorf("%w: skin for %s: %w", domain.ErrAssetUnavailable, name, err)
	}

	parts, err := cutSkin(skin)
	if err != nil {
		metrics.Renders.WithLabelValues(KindPose, metrics.ResultFailure).Inc()
		return nil, fmt.Errorf("%w: skin for %s: %w", domain.ErrAssetUnavailable, name, err)
	}

	dc := gg.NewContext(PoseWidth, PoseHeight)
	drawPose(dc, parts)

	dc.SetFontFace(c.fonts.face(true, sizeSmall))
	setHex(dc, colorText)
	dc.DrawStringAnchored(name, PoseWidth/2, PoseHeight-20, 0.5, 0.5)

	return c.encode(dc, KindPose)
}

// drawPose lays the parts out mid-stride. Limbs swing from the shoulder and
// hip joints; the head side face is sheared to suggest depth.
func drawPose(dc *gg.Context, p *skinParts) {
	const (
		unit = PoseScale
		top  = 30.0
	)
	cx := float64(PoseWidth) / 2
	shoulderY := top + 8*unit
	hipY := shoulderY + 12*unit

	// Far limbs go first so the body covers their joints
	dc.Push()
	dc.Translate(cx+4*unit, shoulderY)
	dc.Rotate(gg.Radians(-25))
	dc.DrawImage(p.leftArm, 0, 0)
	dc.Pop()

	dc.Push()
	dc.Translate(cx, hipY)
	dc.Rotate(gg.Radians(20))
	dc.DrawImage(p.leftLeg, 0, 0)
	dc.Pop()

	dc.Push()
	dc.Translate(cx, hipY)
	dc.Rotate(gg.Radians(-20))
	dc.DrawImage(p.rightLeg, -4*unit, 0)
	dc.Pop()

	dc.DrawImage(p.body, int(cx-4*unit), int(shoulderY))

	dc.Push()
	dc.Translate(cx-4*unit, shoulderY)
	dc.Rotate(gg.Radians(25))
	dc.DrawImage(p.rightArm, -4*unit, 0)
	dc.Pop()

	dc.Push()
	dc.Translate(cx-4*unit, top)
	dc.Shear(0, 0.5)
	dc.Scale(0.5, 1)
	dc.Translate(-8*unit, 0)
	dc.DrawImage(p.headSide, 0, 0)
	dc.Pop()

	dc.DrawImage(p.head, int(cx-4*unit), int(top))
}

func (c *Compositor) encode(dc *gg.Context, kind string) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		metrics.Renders.WithLabelValues(kind, metrics.ResultFailure).Inc()
		return nil, fmt.Errorf("encode %s png: %w", kind, err)
	}
	metrics.Renders.WithLabelValues(kind, metrics.ResultSuccess).Inc()
	return buf.Bytes(), nil
}

func (c *Compositor) loadBackground() (image.Image, error) {
	if c.BackgroundPath == "" {
		return nil, fmt.Errorf("no background configured")
	}
	img, err := gg.LoadImage(c.BackgroundPath)
	if err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, WelcomeWidth, WelcomeHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}

func (c *Compositor) fetchImage(ctx context.Context, path string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SkinURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(ServiceSkin, metrics.ResultFailure).Inc()
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamRequests.WithLabelValues(ServiceSkin, metrics.ResultFailure).Inc()
		return nil, fmt.Errorf("skin service returned status: %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(ServiceSkin, metrics.ResultFailure).Inc()
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	metrics.UpstreamRequests.WithLabelValues(ServiceSkin, metrics.ResultSuccess).Inc()
	return img, nil
}

func fitHeight(img image.Image, height int) image.Image {
	b := img.Bounds()
	if b.Dy() == 0 {
		return img
	}
	width := b.Dx() * height / b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func guildLine(g *domain.GuildInfo) string {
	if g.Tag == "" {
		return g.Name
	}
	return fmt.Sprintf("[%s] %s", g.Tag, g.Name)
}

func setHex(dc *gg.Context, hex int) {
	r, g, b := domain.ColorHex(hex).RGB()
	dc.SetRGB(r, g, b)
}
