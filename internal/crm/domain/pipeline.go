package domain

import "regexp"

// Stage is one column of the sales pipeline. Customers reference stages by
// Name; Order is 1-based.
type Stage struct {
	ID    string
	Name  string
	Label string
	Color string
	Order int
}

var (
	stageNameRe  = regexp.MustCompile(`^[A-Z0-9_]+$`)
	stageColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

func ValidStageName(s string) bool  { return stageNameRe.MatchString(s) }
func ValidStageColor(s string) bool { return stageColorRe.MatchString(s) }

// DefaultStages mirrors the rows seeded by the initial migration.
func DefaultStages() []Stage {
	return []Stage{
		{Name: "NIEUW", Label: "Nieuw", Color: "#94A3B8", Order: 1},
		{Name: "CONTACT_GELEGD", Label: "Contact gelegd", Color: "#3B82F6", Order: 2},
		{Name: "OFFERTE_GESTUURD", Label: "Offerte gestuurd", Color: "#8B5CF6", Order: 3},
		{Name: "ONDERHANDELING", Label: "Onderhandeling", Color: "#F59E0B", Order: 4},
		{Name: "AFGEROND", Label: "Afgerond", Color: "#10B981", Order: 5},
	}
}
