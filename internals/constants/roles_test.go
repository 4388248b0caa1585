package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleRankOrdering(t *testing.T) {
	assert.Less(t, RoleRank(RoleSuper), RoleRank(RoleAdmin))
	assert.Less(t, RoleRank(RoleAdmin), RoleRank(RoleGeneral))
	assert.Less(t, RoleRank(RoleGeneral), RoleRank(RoleWhistleblower))
	assert.Less(t, RoleRank(RoleWhistleblower), RoleRank(RoleFactChecker))
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, RoleAtLeast(RoleSuper, RoleAdmin))
	assert.True(t, RoleAtLeast(RoleAdmin, RoleAdmin))
	assert.False(t, RoleAtLeast(RoleGeneral, RoleAdmin))
	assert.False(t, RoleAtLeast("", RoleAdmin))
	assert.False(t, RoleAtLeast("made_up", RoleAdmin))
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		assert.True(t, IsValidRole(r), r)
	}
	assert.False(t, IsValidRole("owner"))
}
