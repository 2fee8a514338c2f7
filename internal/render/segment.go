package render

import "prettylog/internal/classify"

// Role tags a segment with the semantic slot it fills. Roles resolve to
// concrete styling only at the output boundary.
type Role int

const (
	RolePlain Role = iota
	RoleTimestamp
	RoleLevel
	RoleMessage
	RoleKey
	RolePunct
	RoleString
	RoleNumber
	RoleBool
	RoleNull
	RoleLongText
)

// Segment is a span of output text tagged for styling.
type Segment struct {
	Text     string
	Role     Role
	Severity classify.Severity // RoleLevel only
	Depth    int               // RoleKey and RolePunct only
}
