package engine

import (
	"fmt"
	"strings"
)

// ExportKorean walks teams in pick order and renders the clipboard text the
// operators share: a numbered team header, then captain and filled member
// slots as "name/tier/lanes", blank line between teams.
func (s *State) ExportKorean() string {
	var blocks []string

	for i, t := range s.Roster.TeamsInOrder() {
		blocks = append(blocks, fmt.Sprintf("팀%d", i+1))

		if captain := s.Directory.Get(t.CaptainID); captain != nil {
			blocks = append(blocks, exportLine(captain))
		}
		for _, pid := range t.Slots {
			if pid == "" {
				continue
			}
			if p := s.Directory.Get(pid); p != nil {
				blocks = append(blocks, exportLine(p))
			}
		}

		blocks = append(blocks, "")
	}

	return strings.TrimSpace(strings.Join(blocks, "\n")) + "\n"
}

func exportLine(p *Participant) string {
	return fmt.Sprintf("%s/%s/%s", p.Name, p.Tier.Korean(), LanesKoreanText(p.Lanes))
}
