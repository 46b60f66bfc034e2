package discord

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/HypixelVerify_Go/internal/domain"
	"github.com/osse101/HypixelVerify_Go/internal/logger"
	"github.com/osse101/HypixelVerify_Go/internal/verification"
)

var numberPrinter = message.NewPrinter(language.English)

func (r *Router) registerSlashCommands() {
	dmPermission := false
	nameMin := domain.PlayerNameMinLength

	r.registry.Register(&discordgo.ApplicationCommand{
		Name:         SlashCmdVerify,
		Description:  "Link your Minecraft account and get the verified role",
		DMPermission: &dmPermission,
	}, r.handleVerifyStart)

	r.registry.Register(&discordgo.ApplicationCommand{
		Name:         SlashCmdVerifyStatus,
		Description:  "Show your verification status",
		DMPermission: &dmPermission,
	}, r.handleVerifyStatus)

	r.registry.Register(&discordgo.ApplicationCommand{
		Name:        SlashCmdSkin,
		Description: "Render a player's skin",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Minecraft name",
				Required:    true,
				MinLength:   &nameMin,
				MaxLength:   domain.PlayerNameMaxLength,
			},
		},
	}, r.handleSkinCommand)
}

// verifyPanel is the message posted by !verify: the instructions and the button pair.
func verifyPanel() *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{createEmbed(PanelTitle, PanelDescription, ColorPanel, "")},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    ButtonVerifyLabel,
						Style:    discordgo.SuccessButton,
						CustomID: CustomIDVerifyStart,
					},
					discordgo.Button{
						Label:    ButtonUnverifyLabel,
						Style:    discordgo.DangerButton,
						CustomID: CustomIDVerifyUnverify,
					},
				},
			},
		},
	}
}

func unverifyRow() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    ButtonUnverifyLabel,
					Style:    discordgo.DangerButton,
					CustomID: CustomIDVerifyUnverify,
				},
			},
		},
	}
}

func nameModal() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: CustomIDVerifyModal,
			Title:    ModalTitle,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    CustomIDVerifyName,
							Label:       ModalNameLabel,
							Style:       discordgo.TextInputShort,
							Placeholder: ModalNamePlaceholder,
							Required:    true,
							MinLength:   domain.PlayerNameMinLength,
							MaxLength:   domain.PlayerNameMaxLength,
						},
					},
				},
			},
		},
	}
}

// handleVerifyPanel posts the panel, but only in the configured verify channel.
func (r *Router) handleVerifyPanel(s *discordgo.Session, m *discordgo.MessageCreate) {
	if channelName(s, m.ChannelID) != r.cfg.VerifyChannelName {
		return
	}
	if _, err := s.ChannelMessageSendComplex(m.ChannelID, verifyPanel()); err != nil {
		slog.Error(LogMsgSendFailed, "channel_id", m.ChannelID, "error", err)
	}
}

func (r *Router) handleVerifyStart(s *discordgo.Session, i *discordgo.InteractionCreate) {
	actor, ok := interactionActor(i)
	if !ok {
		respondEphemeral(s, i, MsgGuildOnly)
		return
	}

	ctx, cancel := handlerContext()
	defer cancel()
	log := logger.FromContext(ctx).With("user_id", actor.UserID)

	res, err := r.verification.Start(ctx, actor)
	if err != nil {
		log.Error("Verification start failed", "error", err)
		respondEphemeral(s, i, friendlyMessage(err, actor.Handle))
		return
	}

	switch res.Kind {
	case verification.PromptName:
		if err := s.InteractionRespond(i.Interaction, nameModal()); err != nil {
			log.Error(LogMsgRespondFailed, "error", err)
		}
	case verification.CooldownNotice:
		respondEphemeral(s, i, cooldownMessage(res.Hours))
		r.afterFunc(r.cfg.NoticeTTL, func() {
			if err := s.InteractionResponseDelete(i.Interaction); err != nil {
				slog.Warn(LogMsgDeleteFailed, "user_id", actor.UserID, "error", err)
			}
		})
	case verification.ConfirmUnverify:
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content:    MsgConfirmUnverify,
				Components: unverifyRow(),
				Flags:      discordgo.MessageFlagsEphemeral,
			},
		}); err != nil {
			log.Error(LogMsgRespondFailed, "error", err)
		}
	}
}

func (r *Router) handleVerifySubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	actor, ok := interactionActor(i)
	if !ok {
		respondEphemeral(s, i, MsgGuildOnly)
		return
	}
	name := modalValue(i.ModalSubmitData(), CustomIDVerifyName)

	if !deferResponse(s, i, true) {
		return
	}

	ctx, cancel := handlerContext()
	defer cancel()
	log := logger.FromContext(ctx).With("user_id", actor.UserID, "name", name)

	outcome, err := r.verification.Submit(ctx, actor, name)
	if err != nil {
		log.Warn("Verification submit rejected", "error", err)
		editResponse(s, i, friendlyMessage(err, actor.Handle))
		return
	}

	embed := welcomeEmbed(outcome)
	edit := &discordgo.WebhookEdit{Embeds: &[]*discordgo.MessageEmbed{embed}}
	if len(outcome.Image) > 0 {
		edit.Files = []*discordgo.File{welcomeFile(outcome.Image)}
	}
	if _, err := s.InteractionResponseEdit(i.Interaction, edit); err != nil {
		log.Error(LogMsgEditFailed, "error", err)
	}

	if r.cfg.WelcomeChannelID != "" {
		msg := &discordgo.MessageSend{
			Content: fmt.Sprintf("<@%s>", actor.UserID),
			Embeds:  []*discordgo.MessageEmbed{welcomeEmbed(outcome)},
		}
		if len(outcome.Image) > 0 {
			msg.Files = []*discordgo.File{welcomeFile(outcome.Image)}
		}
		if _, err := s.ChannelMessageSendComplex(r.cfg.WelcomeChannelID, msg); err != nil {
			log.Error(LogMsgSendFailed, "channel_id", r.cfg.WelcomeChannelID, "error", err)
		}
	}
}

func (r *Router) handleUnverify(s *discordgo.Session, i *discordgo.InteractionCreate) {
	actor, ok := interactionActor(i)
	if !ok {
		respondEphemeral(s, i, MsgGuildOnly)
		return
	}
	if !deferResponse(s, i, true) {
		return
	}

	ctx, cancel := handlerContext()
	defer cancel()

	if err := r.verification.Unverify(ctx, actor); err != nil {
		logger.FromContext(ctx).Error("Unverify failed", "user_id", actor.UserID, "error", err)
		editResponse(s, i, friendlyMessage(err, actor.Handle))
		return
	}
	editResponse(s, i, MsgUnverified)
}

func (r *Router) handleVerifyStatus(s *discordgo.Session, i *discordgo.InteractionCreate) {
	actor, ok := interactionActor(i)
	if !ok {
		respondEphemeral(s, i, MsgGuildOnly)
		return
	}

	ctx, cancel := handlerContext()
	defer cancel()

	state, err := r.verification.State(ctx, actor.UserID, actor.IsAdmin)
	if err != nil {
		logger.FromContext(ctx).Error("Verification state lookup failed", "user_id", actor.UserID, "error", err)
		respondEphemeral(s, i, MsgGenericError)
		return
	}
	respondEphemeral(s, i, statusMessage(state))
}

func statusMessage(state verification.State) string {
	switch state {
	case verification.StateAwaitingInput:
		return MsgStatusAwaitingInput
	case verification.StateVerified:
		return MsgStatusVerified
	case verification.StateCooldownLocked:
		return MsgStatusCooldown
	default:
		return MsgStatusUnverified
	}
}

// modalValue digs the text input called customID out of a modal submission.
func modalValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, c := range data.Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}

func welcomeEmbed(o *verification.Outcome) *discordgo.MessageEmbed {
	embed := createEmbed(fmt.Sprintf(WelcomeTitleFmt, o.Identity.DisplayName), "", int(o.Rank.PrimaryColor), "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Rank", Value: o.Rank.Label, Inline: true},
		{Name: "Level", Value: numberPrinter.Sprintf("%d", o.Level), Inline: true},
		{Name: "Network EXP", Value: numberPrinter.Sprintf("%d", int64(o.NetworkExp)), Inline: true},
	}
	if o.Guild != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Guild",
			Value: guildLabel(o.Guild),
		})
	}
	if len(o.Image) > 0 {
		embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://" + WelcomeAttachment}
	}
	return embed
}

func guildLabel(g *domain.GuildInfo) string {
	if g.Tag == "" {
		return g.Name
	}
	return fmt.Sprintf("[%s] %s", g.Tag, g.Name)
}

func welcomeFile(png []byte) *discordgo.File {
	return &discordgo.File{
		Name:        WelcomeAttachment,
		ContentType: "image/png",
		Reader:      bytes.NewReader(png),
	}
}
