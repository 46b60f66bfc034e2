package discord

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HypixelVerify_Go/internal/logger"
)

// renderSkin resolves name and draws its pose render.
func (r *Router) renderSkin(ctx context.Context, name string) (string, []byte, error) {
	identity, err := r.resolver.ResolveIdentity(ctx, name)
	if err != nil {
		return "", nil, fmt.Errorf("resolve %q: %w", name, err)
	}
	png, err := r.poser.RenderPose(ctx, identity.DisplayName, identity.StableID)
	if err != nil {
		return "", nil, fmt.Errorf("render %q: %w", identity.DisplayName, err)
	}
	return identity.DisplayName, png, nil
}

func skinFile(png []byte) *discordgo.File {
	return &discordgo.File{
		Name:        SkinAttachment,
		ContentType: "image/png",
		Reader:      bytes.NewReader(png),
	}
}

func (r *Router) handleSkinCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := getOptions(i)
	if len(options) == 0 {
		respondEphemeral(s, i, MsgSkinUsage)
		return
	}
	if !deferResponse(s, i, false) {
		return
	}

	ctx, cancel := handlerContext()
	defer cancel()
	user := getInteractionUser(i)

	name, png, err := r.renderSkin(ctx, options[0].StringValue())
	if err != nil {
		logger.FromContext(ctx).Warn("Skin render failed", "user_id", user.ID, "error", err)
		editResponse(s, i, friendlyMessage(err, discordHandle(user)))
		return
	}

	content := fmt.Sprintf("**%s**", name)
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
		Files:   []*discordgo.File{skinFile(png)},
	}); err != nil {
		logger.FromContext(ctx).Error(LogMsgEditFailed, "error", err)
	}
}

func (r *Router) handleSkinMessage(s *discordgo.Session, m *discordgo.MessageCreate, args string) {
	ctx, cancel := handlerContext()
	defer cancel()
	log := logger.FromContext(ctx).With("user_id", m.Author.ID, "channel_id", m.ChannelID)

	if args == "" {
		if _, err := s.ChannelMessageSend(m.ChannelID, MsgSkinUsage, discordgo.WithContext(ctx)); err != nil {
			log.Error(LogMsgSendFailed, "error", err)
		}
		return
	}

	name, png, err := r.renderSkin(ctx, args)
	if err != nil {
		log.Warn("Skin render failed", "error", err)
		if _, sendErr := s.ChannelMessageSend(m.ChannelID, friendlyMessage(err, discordHandle(m.Author)), discordgo.WithContext(ctx)); sendErr != nil {
			log.Error(LogMsgSendFailed, "error", sendErr)
		}
		return
	}

	if _, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content:   fmt.Sprintf("**%s**", name),
		Files:     []*discordgo.File{skinFile(png)},
		Reference: m.Reference(),
	}, discordgo.WithContext(ctx)); err != nil {
		log.Error(LogMsgSendFailed, "error", err)
	}
}
