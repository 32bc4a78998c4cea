package engine

import "strings"

// Tier is a participant's ranked tier. Canonical values are the ten ladder
// tiers below; anything that fails to normalize is kept verbatim so a messy
// bulk import never loses data.
type Tier string

const (
	TierIron        Tier = "Iron"
	TierBronze      Tier = "Bronze"
	TierSilver      Tier = "Silver"
	TierGold        Tier = "Gold"
	TierPlatinum    Tier = "Platinum"
	TierEmerald     Tier = "Emerald"
	TierDiamond     Tier = "Diamond"
	TierMaster      Tier = "Master"
	TierGrandmaster Tier = "Grandmaster"
	TierChallenger  Tier = "Challenger"
)

var tierOrderHighToLow = []Tier{
	TierChallenger,
	TierGrandmaster,
	TierMaster,
	TierDiamond,
	TierEmerald,
	TierPlatinum,
	TierGold,
	TierSilver,
	TierBronze,
	TierIron,
}

// Keys are lowercased with all whitespace removed.
var tierSynonyms = map[string]Tier{
	"아이언": TierIron, "iron": TierIron,
	"브론즈": TierBronze, "bronze": TierBronze,
	"실버": TierSilver, "silver": TierSilver,
	"골드": TierGold, "gold": TierGold,
	"플레": TierPlatinum, "플래": TierPlatinum, "플래티넘": TierPlatinum, "플레티넘": TierPlatinum, "platinum": TierPlatinum,
	"에메": TierEmerald, "에메랄드": TierEmerald, "emerald": TierEmerald,
	"다이아": TierDiamond, "다이아몬드": TierDiamond, "diamond": TierDiamond,
	"마스터": TierMaster, "master": TierMaster,
	"그마": TierGrandmaster, "그랜드마스터": TierGrandmaster, "grandmaster": TierGrandmaster,
	"챌": TierChallenger, "챌린저": TierChallenger, "challenger": TierChallenger,
}

var tierKorean = map[Tier]string{
	TierIron:        "아이언",
	TierBronze:      "브론즈",
	TierSilver:      "실버",
	TierGold:        "골드",
	TierPlatinum:    "플레티넘",
	TierEmerald:     "에메랄드",
	TierDiamond:     "다이아",
	TierMaster:      "마스터",
	TierGrandmaster: "그마",
	TierChallenger:  "챌",
}

func squashToken(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// NormalizeTier maps free text onto a canonical tier via the synonym table.
// Empty input defaults to Gold; unmapped input is returned trimmed but
// otherwise untouched.
func NormalizeTier(raw string) Tier {
	s := strings.TrimSpace(raw)
	if s == "" {
		return TierGold
	}
	if t, ok := tierSynonyms[squashToken(s)]; ok {
		return t
	}
	return Tier(s)
}

// SortKey orders tiers highest first. Unknown tiers sort below Iron.
func (t Tier) SortKey() int {
	for i, known := range tierOrderHighToLow {
		if known == t {
			return i
		}
	}
	return len(tierOrderHighToLow)
}

// Korean renders the tier for clipboard export. Unknown tiers pass through.
func (t Tier) Korean() string {
	if ko, ok := tierKorean[NormalizeTier(string(t))]; ok {
		return ko
	}
	return string(t)
}
