package engine

import "strings"

// ParseRoster turns pasted text into participants, one per non-empty line,
// fields separated by "/": name / tier / lanes. Leading @ is stripped from
// names; lines without a name are skipped. Tier and lane tokens go through
// the usual normalization, so unrecognized values survive verbatim.
func ParseRoster(text string) []*Participant {
	var out []*Participant
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r", ""), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, "/")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		name := strings.TrimSpace(strings.TrimLeft(parts[0], "@"))
		if name == "" {
			continue
		}

		var tierRaw, laneRaw string
		if len(parts) > 1 {
			tierRaw = parts[1]
		}
		if len(parts) > 2 {
			laneRaw = parts[2]
		}

		out = append(out, NewParticipant(name, NormalizeTier(tierRaw), ParseLanes(laneRaw)))
	}
	return out
}
