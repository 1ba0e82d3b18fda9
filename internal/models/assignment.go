package models

// RowAssignment holds the occupants of one board row. All three columns are
// always present; an empty string means the cell is unoccupied, so there is
// no ambiguity between a missing key and an empty value.
type RowAssignment struct {
	Anesthesiologist string `json:"anesthesiologist"`
	AHP              string `json:"ahp"`
	Relief           string `json:"relief"`
}

func (r RowAssignment) Get(role Role) string {
	switch role {
	case RoleAnesthesiologist:
		return r.Anesthesiologist
	case RoleAHP:
		return r.AHP
	case RoleRelief:
		return r.Relief
	}
	return ""
}

func (r *RowAssignment) Set(role Role, name string) {
	switch role {
	case RoleAnesthesiologist:
		r.Anesthesiologist = name
	case RoleAHP:
		r.AHP = name
	case RoleRelief:
		r.Relief = name
	}
}

// Empty reports whether no column in the row is occupied.
func (r RowAssignment) Empty() bool {
	return r.Anesthesiologist == "" && r.AHP == "" && r.Relief == ""
}
