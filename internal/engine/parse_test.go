package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoster(t *testing.T) {
	text := "@김철수 / 플레 / 정글,원딜\r\n이영희/골드/탑\n\n  \nmystery / xyz / 뭐지\nno-fields-at-all\n"

	got := ParseRoster(text)
	require.Len(t, got, 4)

	assert.Equal(t, "김철수", got[0].Name, "leading @ stripped")
	assert.Equal(t, TierPlatinum, got[0].Tier)
	assert.Equal(t, []Lane{LaneJungle, LaneCarry}, got[0].Lanes)

	assert.Equal(t, "이영희", got[1].Name)
	assert.Equal(t, TierGold, got[1].Tier)
	assert.Equal(t, []Lane{LaneTop}, got[1].Lanes)

	assert.Equal(t, "mystery", got[2].Name)
	assert.Equal(t, Tier("xyz"), got[2].Tier, "unknown tier preserved")
	assert.Equal(t, []Lane{Lane("뭐지")}, got[2].Lanes)

	assert.Equal(t, "no-fields-at-all", got[3].Name)
	assert.Equal(t, TierGold, got[3].Tier, "missing tier defaults to gold")
	assert.Nil(t, got[3].Lanes)
}

func TestParseRosterSkipsNamelessLines(t *testing.T) {
	got := ParseRoster("@@@ / gold / top\n/ gold / top\n")
	assert.Empty(t, got)
}

func TestImportRosterDeduplicatesByName(t *testing.T) {
	s := NewState(4)
	addParticipant(t, s, "이영희", "silver", "")

	require.NoError(t, s.Apply(Command{Type: CmdImportRoster, Text: "김철수/골드/탑\n이영희/골드/탑\n김철수/실버/미드\n"}))

	// The existing 이영희 survives untouched; the second 김철수 line loses.
	assert.Equal(t, 2, s.Directory.Len())
	for _, p := range s.Available() {
		if p.Name == "이영희" {
			assert.Equal(t, TierSilver, p.Tier)
		}
		if p.Name == "김철수" {
			assert.Equal(t, TierGold, p.Tier)
		}
	}
}
