package staff

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"marquee/internal/catalog"
)

// Role is a job classification recognized by the detail view. The catalog
// carries an open-ended set of job titles; anything outside this set is
// dropped from display.
type Role string

const (
	RoleDirector Role = "director"
	RoleComposer Role = "composer"
	RoleWriter   Role = "writer"
	RoleProducer Role = "producer"
	RoleActor    Role = "actor"
)

// Line is one rendered staff row: a label, the person's primary name, and
// the navigation target. Key is stable across renders.
type Line struct {
	Label    string
	Name     string
	PersonID string
	Key      string
}

// Groups holds the classified role sections in display order.
type Groups struct {
	Directors []Line
	Composers []Line
	Writers   []Line
	Producers []Line
	Actors    []Line
}

// Empty reports whether no role section has any entries.
func (g Groups) Empty() bool {
	return len(g.Directors) == 0 &&
		len(g.Composers) == 0 &&
		len(g.Writers) == 0 &&
		len(g.Producers) == 0 &&
		len(g.Actors) == 0
}

var roleCaser = cases.Title(language.Und)

// Classify partitions staff records into role groups, preserving the input
// order within each group. Singular roles are labeled with the title-cased
// role name; actors are labeled with the comma-joined character list, which
// is empty when the record carries no characters.
func Classify(records []catalog.StaffRecord) Groups {
	var groups Groups
	for _, record := range records {
		switch Role(record.JobTitle) {
		case RoleDirector:
			groups.Directors = append(groups.Directors, roleLine(record))
		case RoleComposer:
			groups.Composers = append(groups.Composers, roleLine(record))
		case RoleWriter:
			groups.Writers = append(groups.Writers, roleLine(record))
		case RoleProducer:
			groups.Producers = append(groups.Producers, roleLine(record))
		case RoleActor:
			groups.Actors = append(groups.Actors, actorLine(record))
		}
	}
	return groups
}

func roleLine(record catalog.StaffRecord) Line {
	return Line{
		Label:    roleCaser.String(record.JobTitle),
		Name:     record.PrimaryName,
		PersonID: record.PersonID,
		Key:      record.Key(),
	}
}

func actorLine(record catalog.StaffRecord) Line {
	return Line{
		Label:    strings.Join(record.Characters, ", "),
		Name:     record.PrimaryName,
		PersonID: record.PersonID,
		Key:      record.Key(),
	}
}
