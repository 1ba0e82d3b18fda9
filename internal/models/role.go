package models

// Role is one of the three assignable staff columns on the board.
type Role string

const (
	RoleAnesthesiologist Role = "Anesthesiologist"
	RoleAHP              Role = "AHP"
	RoleRelief           Role = "Relief"
)

// Roles lists the columns in display order.
var Roles = []Role{RoleAnesthesiologist, RoleAHP, RoleRelief}

// ParseRole maps a form value onto a Role.
func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}
