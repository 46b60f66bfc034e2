package rank

import "github.com/osse101/HypixelVerify_Go/internal/domain"

// Minecraft chat colours used by Hypixel rank prefixes
const (
	ColorGold      domain.ColorHex = 0xFFAA00
	ColorRed       domain.ColorHex = 0xFF5555
	ColorAqua      domain.ColorHex = 0x55FFFF
	ColorGreen     domain.ColorHex = 0x55FF55
	ColorDarkGreen domain.ColorHex = 0x00AA00
	ColorWhite     domain.ColorHex = 0xFFFFFF
	ColorGray      domain.ColorHex = 0xAAAAAA
)

// LabelNonRank is shown for players without any rank.
const LabelNonRank = "Non-Rank"

// displayTable maps lower-cased Hypixel rank tags to their display.
var displayTable = map[string]domain.RankDisplay{
	"superstar": {Label: "MVP++", PrimaryColor: ColorGold, AccentColor: ColorRed},
	"mvp_plus":  {Label: "MVP+", PrimaryColor: ColorAqua, AccentColor: ColorRed},
	"mvp":       {Label: "MVP", PrimaryColor: ColorAqua, AccentColor: ColorAqua},
	"vip_plus":  {Label: "VIP+", PrimaryColor: ColorGreen, AccentColor: ColorGold},
	"vip":       {Label: "VIP", PrimaryColor: ColorGreen, AccentColor: ColorGreen},
	"youtuber":  {Label: "YOUTUBE", PrimaryColor: ColorRed, AccentColor: ColorWhite},
	"admin":     {Label: "ADMIN", PrimaryColor: ColorRed, AccentColor: ColorRed},
	"moderator": {Label: "MOD", PrimaryColor: ColorDarkGreen, AccentColor: ColorDarkGreen},
}

// neutral is the display for tags missing from the table.
func neutral(label string) domain.RankDisplay {
	return domain.RankDisplay{Label: label, PrimaryColor: ColorGray, AccentColor: ColorGray}
}
