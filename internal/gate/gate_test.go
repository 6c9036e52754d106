package gate

import (
	"testing"

	"github.com/chokiwild/ChainFund-Dapp/internal/model"
	"github.com/stretchr/testify/assert"
)

var allRoles = []model.Role{model.RoleOwner, model.RoleDonor, model.RoleGuest}

var allStates = []model.DisplayState{
	model.DisplayActive,
	model.DisplayFunded,
	model.DisplayFailed,
	model.DisplayExpiredPending,
}

// TestCampaignActionsTable checks every (role, state) pair against the
// authorization table; pairs not granted anything yield the empty set.
func TestCampaignActionsTable(t *testing.T) {
	expected := map[model.Role]map[model.DisplayState][]Action{
		model.RoleOwner: {
			model.DisplayActive:         {ActionContribute},
			model.DisplayExpiredPending: {ActionRefund},
			model.DisplayFunded:         {ActionWithdraw},
			model.DisplayFailed:         {ActionClaimRefund},
		},
		model.RoleDonor: {
			model.DisplayActive:         {ActionContribute},
			model.DisplayExpiredPending: {ActionRefund},
			model.DisplayFunded:         nil,
			model.DisplayFailed:         {ActionClaimRefund},
		},
		model.RoleGuest: {
			model.DisplayActive:         nil,
			model.DisplayExpiredPending: nil,
			model.DisplayFunded:         nil,
			model.DisplayFailed:         nil,
		},
	}

	for _, role := range allRoles {
		for _, display := range allStates {
			got := CampaignActions(role, display)
			assert.ElementsMatch(t, expected[role][display], got,
				"role %s, state %s", role, display.Label())
		}
	}
}

func TestAllows(t *testing.T) {
	assert.True(t, Allows(model.RoleDonor, model.DisplayActive, ActionContribute))
	assert.True(t, Allows(model.RoleOwner, model.DisplayFunded, ActionWithdraw))
	assert.False(t, Allows(model.RoleDonor, model.DisplayFunded, ActionWithdraw))
	assert.False(t, Allows(model.RoleGuest, model.DisplayActive, ActionContribute))
	assert.False(t, Allows(model.RoleDonor, model.DisplayExpiredPending, ActionContribute))
	assert.True(t, Allows(model.RoleDonor, model.DisplayExpiredPending, ActionRefund))
}

func TestPlatformActions(t *testing.T) {
	assert.Nil(t, PlatformActions(false, false))
	// Admin flag without a connection grants nothing.
	assert.Nil(t, PlatformActions(false, true))

	assert.ElementsMatch(t,
		[]Action{ActionCreateCampaign},
		PlatformActions(true, false))

	assert.ElementsMatch(t,
		[]Action{ActionCreateCampaign, ActionSetMinter, ActionDeployFactory},
		PlatformActions(true, true))
}

// TestAdminActionsWithheldFromNonAdmins checks that privileged actions
// are denied at the authorization layer, not merely hidden.
func TestAdminActionsWithheldFromNonAdmins(t *testing.T) {
	assert.False(t, AllowsPlatform(true, false, ActionSetMinter))
	assert.False(t, AllowsPlatform(true, false, ActionDeployFactory))
	assert.True(t, AllowsPlatform(true, false, ActionCreateCampaign))
	assert.True(t, AllowsPlatform(true, true, ActionSetMinter))
	assert.True(t, AllowsPlatform(true, true, ActionDeployFactory))
}
