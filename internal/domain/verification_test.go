package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorHex(t *testing.T) {
	c := ColorHex(0xFF8000)
	r, g, b := c.RGB()
	assert.InDelta(t, 1.0, r, 1e-9)
	assert.InDelta(t, 128.0/255, g, 1e-9)
	assert.InDelta(t, 0.0, b, 1e-9)
	assert.Equal(t, "#FF8000", c.String())
}

func TestProfileAttributes_DiscordLink(t *testing.T) {
	_, ok := ProfileAttributes{}.DiscordLink()
	assert.False(t, ok)

	handle, ok := ProfileAttributes{SocialLinks: map[string]string{SocialLinkDiscord: "notch"}}.DiscordLink()
	assert.True(t, ok)
	assert.Equal(t, "notch", handle)
}
