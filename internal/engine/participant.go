package engine

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Name ties in the availability view compare in Korean locale order, matching
// the text the export hands back to operators.
var nameCollator = collate.New(language.Korean)

type Participant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tier  Tier   `json:"tier"`
	Lanes []Lane `json:"lanes"`
}

func NewParticipant(name string, tier Tier, lanes []Lane) *Participant {
	return &Participant{
		ID:    uuid.NewString(),
		Name:  name,
		Tier:  tier,
		Lanes: lanes,
	}
}

// Directory owns every known participant. It has no knowledge of teams;
// placement is the roster's concern.
type Directory struct {
	participants []*Participant
}

func NewDirectory() *Directory {
	return &Directory{}
}

// Add inserts a participant at the front of the directory. The name must be
// non-empty after trimming.
func (d *Directory) Add(p *Participant) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrEmptyName
	}
	d.participants = append([]*Participant{p}, d.participants...)
	return nil
}

func (d *Directory) Get(id string) *Participant {
	for _, p := range d.participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Edit mutates name, tier and lanes in place. Placement is untouched.
func (d *Directory) Edit(id, name string, tier Tier, lanes []Lane) error {
	p := d.Get(id)
	if p == nil {
		return ErrNotFound
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	p.Tier = tier
	p.Lanes = lanes
	return nil
}

func (d *Directory) Remove(id string) {
	for i, p := range d.participants {
		if p.ID == id {
			d.participants = append(d.participants[:i], d.participants[i+1:]...)
			return
		}
	}
}

func (d *Directory) HasName(name string) bool {
	name = strings.TrimSpace(name)
	for _, p := range d.participants {
		if p.Name == name {
			return true
		}
	}
	return false
}

func (d *Directory) Len() int { return len(d.participants) }

// Available returns participants for which placed reports false, ordered by
// tier descending with name ties broken by locale-aware comparison. This
// ordering is a presentation contract and must stay stable for export.
func (d *Directory) Available(placed func(id string) bool) []*Participant {
	var out []*Participant
	for _, p := range d.participants {
		if !placed(p.ID) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := out[i].Tier.SortKey(), out[j].Tier.SortKey()
		if ki != kj {
			return ki < kj
		}
		return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
