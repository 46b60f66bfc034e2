package discord

// Friendly message constants for Discord responses
const (
	// Lookup
	MsgNotFound           = "❓ **Player Not Found**\nCheck the spelling of your Minecraft name and try again."
	MsgInvalidName        = "❓ **Invalid Name**\nMinecraft names are 3-16 letters, digits or underscores."
	MsgServiceUnavailable = "🌐 **Hypixel is not responding**\nPlease try again in a few minutes."
	MsgNotLinked          = "🔗 **Discord Not Linked**\nSet your Discord handle in Hypixel's social menu to **%s** and try again."
	MsgAssetUnavailable   = "🖼️ **Skin Unavailable**\nThe skin service could not render that player right now."

	// Flow
	MsgSessionExpired  = "⌛ **Verification Expired**\nPress **Verify** again to reopen the form."
	MsgAlreadyVerified = "✅ **Already Verified**\nUse **Unverify** first if you want to link another account."
	MsgCooldownActive  = "⏳ **Whoa there!**\nYou can verify again in **%d %s**."
	MsgConfirmUnverify = "✅ You are already verified. Press **Unverify** to remove your roles and start over."
	MsgUnverified      = "👋 You are no longer verified."
	MsgGuildOnly       = "⚠️ Verification only works inside the server."

	// Status
	MsgStatusUnverified    = "You are not verified yet."
	MsgStatusAwaitingInput = "Your verification form is open. Submit your Minecraft name to finish."
	MsgStatusVerified      = "You are verified."
	MsgStatusCooldown      = "You are verified. Re-verification is still on cooldown."

	// Announcements
	MsgAnnounceEmpty = "⚠️ Usage: `!ha <message>`"

	// Skin
	MsgSkinUsage = "⚠️ Usage: `!skin <minecraft name>`"

	MsgGenericError = "❌ Something went wrong."
)
