package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HypixelVerify_Go/internal/logger"
)

// handleAnnounce relays !ha text from staff as an embed and removes the original message.
// Messages from non-staff are ignored.
func (r *Router) handleAnnounce(s *discordgo.Session, m *discordgo.MessageCreate, text string) {
	ctx, cancel := handlerContext()
	defer cancel()
	log := logger.FromContext(ctx).With("user_id", m.Author.ID, "channel_id", m.ChannelID)

	if !r.roles.MemberHasRole(ctx, m.GuildID, m.Member, r.cfg.StaffRoleName) {
		log.Debug("Ignoring announcement from non-staff member")
		return
	}

	if err := s.ChannelMessageDelete(m.ChannelID, m.ID, discordgo.WithContext(ctx)); err != nil {
		log.Warn(LogMsgDeleteFailed, "message_id", m.ID, "error", err)
	}

	if text == "" {
		if _, err := s.ChannelMessageSend(m.ChannelID, MsgAnnounceEmpty, discordgo.WithContext(ctx)); err != nil {
			log.Error(LogMsgSendFailed, "error", err)
		}
		return
	}

	target := r.cfg.AnnounceChannelID
	if target == "" {
		target = m.ChannelID
	}

	embed := createEmbed("📢 Announcement", text, ColorAnnounce, FooterAnnounce)
	embed.Author = &discordgo.MessageEmbedAuthor{
		Name:    m.Author.Username,
		IconURL: m.Author.AvatarURL(""),
	}
	if _, err := s.ChannelMessageSendEmbed(target, embed, discordgo.WithContext(ctx)); err != nil {
		slog.Error(LogMsgSendFailed, "channel_id", target, "error", err)
	}
}
