package engine

import (
	"strings"
	"unicode"
)

// Lane is a role preference. An empty lane set means "any role"; it is never
// expanded into an explicit set.
type Lane string

const (
	LaneTop     Lane = "TOP"
	LaneJungle  Lane = "JGL"
	LaneMid     Lane = "MID"
	LaneCarry   Lane = "ADC"
	LaneSupport Lane = "SUP"
)

var allLanes = []Lane{LaneTop, LaneJungle, LaneMid, LaneCarry, LaneSupport}

// Keys are lowercased with all whitespace removed.
var laneSynonyms = map[string]Lane{
	"탑": LaneTop, "top": LaneTop,
	"정글": LaneJungle, "정글러": LaneJungle, "jg": LaneJungle, "jgl": LaneJungle, "jungle": LaneJungle,
	"미드": LaneMid, "mid": LaneMid,
	"원딜": LaneCarry, "adc": LaneCarry, "바텀": LaneCarry, "봇": LaneCarry, "bot": LaneCarry,
	"서폿": LaneSupport, "서포터": LaneSupport, "서포트": LaneSupport, "sup": LaneSupport, "support": LaneSupport,
}

var laneKorean = map[Lane]string{
	LaneTop:     "탑",
	LaneJungle:  "정글",
	LaneMid:     "미드",
	LaneCarry:   "원딜",
	LaneSupport: "서폿",
}

func isLaneSeparator(r rune) bool {
	switch r {
	case ',', '|', '/', '+', '&':
		return true
	}
	return unicode.IsSpace(r)
}

// ParseLanes tokenizes free text into lanes. "all" and its Korean synonyms
// expand to the full set; unknown tokens are kept verbatim. A set that ends
// up covering all five lanes collapses to the canonical full set.
func ParseLanes(raw string) []Lane {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	switch squashToken(s) {
	case "all", "올", "전체":
		return append([]Lane(nil), allLanes...)
	}

	var lanes []Lane
	for _, tok := range strings.FieldsFunc(s, isLaneSeparator) {
		if mapped, ok := laneSynonyms[squashToken(tok)]; ok {
			lanes = append(lanes, mapped)
		} else {
			lanes = append(lanes, Lane(tok))
		}
	}

	if coversAllLanes(lanes) {
		return append([]Lane(nil), allLanes...)
	}
	return lanes
}

func coversAllLanes(lanes []Lane) bool {
	seen := make(map[Lane]bool, len(lanes))
	for _, l := range lanes {
		seen[Lane(strings.ToUpper(string(l)))] = true
	}
	for _, want := range allLanes {
		if !seen[want] {
			return false
		}
	}
	return true
}

// LanesText renders a lane set for display: "—" for none, "ALL" for the full
// set, otherwise tokens joined by "/".
func LanesText(lanes []Lane) string {
	if len(lanes) == 0 {
		return "—"
	}
	if coversAllLanes(lanes) {
		return "ALL"
	}
	parts := make([]string, len(lanes))
	for i, l := range lanes {
		parts[i] = string(l)
	}
	return strings.Join(parts, "/")
}

// LanesKoreanText renders a lane set for clipboard export, joining Korean
// lane names with ", ". "ALL" and "—" pass through untranslated.
func LanesKoreanText(lanes []Lane) string {
	text := LanesText(lanes)
	if text == "ALL" || text == "—" {
		return text
	}
	parts := strings.Split(text, "/")
	for i, p := range parts {
		if ko, ok := laneKorean[Lane(strings.ToUpper(strings.TrimSpace(p)))]; ok {
			parts[i] = ko
		}
	}
	return strings.Join(parts, ", ")
}
