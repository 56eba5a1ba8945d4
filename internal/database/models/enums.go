package models

// Designation is the role a registrant declares on the form. It drives which
// validation and college-resolution branch applies during registration.
type Designation string

const (
	DesignationChairPerson    Designation = "Chair Person"
	DesignationPrincipal      Designation = "Principal"
	DesignationViceChancellor Designation = "Vice-Chancellor"
	DesignationCouncilMember  Designation = "Council Member"
)

// IsValid reports whether the designation is one of the known roles.
func (d Designation) IsValid() bool {
	switch d {
	case DesignationChairPerson, DesignationPrincipal, DesignationViceChancellor, DesignationCouncilMember:
		return true
	}
	return false
}

// RequiresCollegeID reports whether the designation must reference an
// existing college by ID.
func (d Designation) RequiresCollegeID() bool {
	return d == DesignationChairPerson || d == DesignationPrincipal
}

// RequiresCollegeName reports whether the designation supplies a college by
// name, creating it when unknown.
func (d Designation) RequiresCollegeName() bool {
	return d == DesignationViceChancellor
}
