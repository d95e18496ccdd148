package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to DeliveryStatus
		want     bool
	}{
		{StatusOrderPlaced, StatusAssigned, true},
		{StatusAssigned, StatusEnRoutePickup, true},
		{StatusArrivedDelivery, StatusDelivered, true},
		{StatusAssigned, StatusPickedUp, false},
		{StatusPickedUp, StatusAssigned, false},
		{StatusPickedUp, StatusPickedUp, false},
		{StatusEnRouteDelivery, StatusCancelled, true},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusAssigned, false},
		{DeliveryStatus("lost"), StatusAssigned, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestDeliveryStatus_Ordering(t *testing.T) {
	all := AllStatuses()
	assert.Len(t, all, 9)
	assert.Equal(t, StatusCancelled, all[len(all)-1])

	next, ok := StatusPickedUp.Next()
	assert.True(t, ok)
	assert.Equal(t, StatusEnRouteDelivery, next)
	_, ok = StatusDelivered.Next()
	assert.False(t, ok)

	assert.True(t, StatusAssigned.AtOrBefore(StatusPickedUp))
	assert.True(t, StatusPickedUp.AtOrBefore(StatusPickedUp))
	assert.False(t, StatusDelivered.AtOrBefore(StatusPickedUp))
	assert.False(t, StatusCancelled.AtOrBefore(StatusDelivered))

	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, DeliveryStatus("lost").IsValid())
}

func TestRoles(t *testing.T) {
	roles := RolesFromStrings([]string{"courier", "superuser", "store"})
	assert.Equal(t, Roles{RoleCourier, RoleStore}, roles)
	assert.Equal(t, []string{"courier", "store"}, roles.ToStrings())

	assert.True(t, roles.HasAny(RoleCustomer, RoleStore))
	assert.False(t, roles.HasAny(RoleDispatcher))
	assert.False(t, roles.HasAny())
}

func TestUserTypeFromRoles(t *testing.T) {
	assert.Equal(t, UserTypeCourier, UserTypeFromRoles(Roles{RoleStore, RoleCourier}))
	assert.Equal(t, UserTypeStore, UserTypeFromRoles(Roles{RoleDispatcher}))
	assert.Equal(t, UserTypeStore, UserTypeFromRoles(Roles{RoleStore}))
	assert.Equal(t, UserTypeCustomer, UserTypeFromRoles(Roles{RoleCustomer}))
	assert.Equal(t, UserTypeCustomer, UserTypeFromRoles(nil))
	assert.True(t, UserTypeStore.IsValid())
	assert.False(t, UserType("admin").IsValid())
}
