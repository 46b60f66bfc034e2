package discord

import "time"

// Component and modal custom IDs
const (
	CustomIDVerifyStart    = "verify_start"
	CustomIDVerifyUnverify = "verify_unverify"
	CustomIDVerifyModal    = "verify_modal"
	CustomIDVerifyName     = "verify_name"
)

// Text command prefixes
const (
	TextCmdVerify       = "!verify"
	TextCmdVerifyButton = "!verifybutton"
	TextCmdAnnounce     = "!ha"
	TextCmdSkin         = "!skin"
)

// Slash command names
const (
	SlashCmdVerify       = "verify"
	SlashCmdVerifyStatus = "verifystatus"
	SlashCmdSkin         = "skin"
)

// Footer constants for standardized embed footers.
const (
	FooterVerify   = "Hypixel Verify"
	FooterAnnounce = "Staff Announcement"
)

// Embed colours
const (
	ColorPanel    = 0x3498DB
	ColorAnnounce = 0xF1C40F
)

// Panel and modal copy
const (
	PanelTitle = "Hypixel Verification"

	PanelDescription = "Press **Verify** and enter your Minecraft name.\n" +
		"Your Hypixel profile must list this Discord account under Social Media → Discord."

	ButtonVerifyLabel    = "Verify"
	ButtonUnverifyLabel  = "Unverify"
	ModalTitle           = "Verify your Minecraft account"
	ModalNameLabel       = "Minecraft name"
	ModalNamePlaceholder = "Notch"
	WelcomeTitleFmt      = "Welcome, %s!"
	WelcomeAttachment    = "welcome.png"
	SkinAttachment       = "skin.png"
)

const (
	// DefaultNoticeTTL is how long the cooldown notice stays visible
	DefaultNoticeTTL = 10 * time.Second

	// handlerTimeout bounds the upstream calls made for one interaction
	handlerTimeout = 30 * time.Second
)

// Log messages
const (
	LogMsgInteractionFailed = "Interaction handling failed"
	LogMsgRespondFailed     = "Failed to respond to interaction"
	LogMsgEditFailed        = "Failed to edit interaction response"
	LogMsgSendFailed        = "Failed to send channel message"
	LogMsgDeleteFailed      = "Failed to delete message"
	LogMsgRoleLookupFailed  = "Failed to look up guild roles"
)
