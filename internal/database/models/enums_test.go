package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDesignationIsValid(t *testing.T) {
	assert.True(t, DesignationChairPerson.IsValid())
	assert.True(t, DesignationPrincipal.IsValid())
	assert.True(t, DesignationViceChancellor.IsValid())
	assert.True(t, DesignationCouncilMember.IsValid())

	assert.False(t, Designation("Professor").IsValid())
	assert.False(t, Designation("").IsValid())
	// Matching is exact, not case-insensitive.
	assert.False(t, Designation("principal").IsValid())
	assert.False(t, Designation("Vice Chancellor").IsValid())
}

func TestDesignationCollegeRequirements(t *testing.T) {
	assert.True(t, DesignationChairPerson.RequiresCollegeID())
	assert.True(t, DesignationPrincipal.RequiresCollegeID())
	assert.False(t, DesignationViceChancellor.RequiresCollegeID())
	assert.False(t, DesignationCouncilMember.RequiresCollegeID())

	assert.True(t, DesignationViceChancellor.RequiresCollegeName())
	assert.False(t, DesignationPrincipal.RequiresCollegeName())
	assert.False(t, DesignationCouncilMember.RequiresCollegeName())
}
