package models

import "fmt"

// Role is one of the five fixed chart purposes.
type Role int

const (
	RoleRadar Role = iota
	RolePie
	RoleBar1
	RoleBar2
	RoleLine
)

// Roles lists every role in sheet order.
var Roles = []Role{RoleRadar, RolePie, RoleBar1, RoleBar2, RoleLine}

// roleSheetIndex binds each role to a sheet position. It is the only
// place the binding is defined.
var roleSheetIndex = [...]int{
	RoleRadar: 0,
	RolePie:   1,
	RoleBar1:  2,
	RoleBar2:  3,
	RoleLine:  4,
}

var roleNames = [...]string{
	RoleRadar: "radar",
	RolePie:   "pie",
	RoleBar1:  "bar1",
	RoleBar2:  "bar2",
	RoleLine:  "line",
}

// SheetIndex returns the sheet position bound to the role.
func (r Role) SheetIndex() int {
	if !r.Valid() {
		return -1
	}
	return roleSheetIndex[r]
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r >= RoleRadar && r <= RoleLine
}

func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// ParseRole parses a role name such as "radar" or "bar2".
func ParseRole(s string) (Role, error) {
	for i, name := range roleNames {
		if name == s {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown chart role: %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid chart role %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// RoleBinding assigns a chart role to a sheet position.
type RoleBinding struct {
	// Role is the chart role.
	Role Role `json:"role"`
	// SheetIndex is the fixed sheet position for the role.
	SheetIndex int `json:"sheet_index"`
	// SheetName is the bound sheet name when available.
	SheetName string `json:"sheet_name,omitempty"`
	// Available is true when the workbook has a sheet at SheetIndex.
	Available bool `json:"available"`
}
