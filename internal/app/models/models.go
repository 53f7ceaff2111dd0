package models

// RoleType defines the user role type carried in access tokens
type RoleType string

const (
	RoleUser      RoleType = "user"
	RolePublisher RoleType = "publisher"
	RoleAdmin     RoleType = "admin"
)

// SkillLevel is the minimum skill a course expects
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// SkillLevels lists the accepted values in display order
var SkillLevels = []SkillLevel{SkillBeginner, SkillIntermediate, SkillAdvanced}

// IsValid reports whether s is one of the known skill levels
func (s SkillLevel) IsValid() bool {
	for _, level := range SkillLevels {
		if s == level {
			return true
		}
	}
	return false
}
