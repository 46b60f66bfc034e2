// Package rank derives the display rank and network level of a Hypixel player.
package rank

import (
	"math"
	"strings"

	"github.com/osse101/HypixelVerify_Go/internal/domain"
)

// Kind identifies which profile attribute decided a player's rank.
type Kind int

const (
	NoRank Kind = iota
	SpecialRank
	MonthlyRank
	PurchasedRank
)

func (k Kind) String() string {
	switch k {
	case SpecialRank:
		return "special"
	case MonthlyRank:
		return "monthly"
	case PurchasedRank:
		return "purchased"
	default:
		return "none"
	}
}

// Source is the rank tag that won the priority chain.
type Source struct {
	Kind Kind
	Tag  string
}

// Constants of the Hypixel network level curve.
const (
	levelBase   = 30625.0
	levelDivide = 50.0
	levelOffset = 2.5
)

// ClassifyLevel converts network experience into a network level using
// floor(sqrt(2*exp + 30625)/50 - 2.5). Inputs are not clamped; when the
// radicand goes negative the curve's lower bound is returned.
func ClassifyLevel(networkExp float64) int {
	radicand := 2*networkExp + levelBase
	if radicand < 0 || math.IsNaN(radicand) {
		radicand = 0
	}
	return int(math.Floor(math.Sqrt(radicand)/levelDivide - levelOffset))
}

// Resolve walks the priority chain over the raw attributes. The first match wins:
// special rank, SUPERSTAR subscription, any other subscription, purchased rank.
func Resolve(attrs domain.ProfileAttributes) Source {
	if attrs.Rank != "" && attrs.Rank != domain.RankTagNormal {
		return Source{Kind: SpecialRank, Tag: attrs.Rank}
	}
	if attrs.MonthlyPackageRank == domain.RankTagSuperstar {
		return Source{Kind: MonthlyRank, Tag: domain.RankTagSuperstar}
	}
	if attrs.MonthlyPackageRank != "" && attrs.MonthlyPackageRank != domain.RankTagNone {
		return Source{Kind: MonthlyRank, Tag: attrs.MonthlyPackageRank}
	}
	if purchased := purchasedTag(attrs); purchased != "" {
		return Source{Kind: PurchasedRank, Tag: purchased}
	}
	return Source{Kind: NoRank}
}

// purchasedTag prefers newPackageRank and falls back to the legacy packageRank.
func purchasedTag(attrs domain.ProfileAttributes) string {
	for _, tag := range []string{attrs.NewPackageRank, attrs.PackageRank} {
		if tag != "" && tag != domain.RankTagNone {
			return tag
		}
	}
	return ""
}

// Display maps a resolved source to its label and colours.
func (s Source) Display() domain.RankDisplay {
	if s.Kind == NoRank {
		return neutral(LabelNonRank)
	}
	if display, ok := displayTable[strings.ToLower(s.Tag)]; ok {
		return display
	}
	return neutral(s.Tag)
}

// ClassifyRank is total: every attribute set yields a display.
func ClassifyRank(attrs domain.ProfileAttributes) domain.RankDisplay {
	return Resolve(attrs).Display()
}
