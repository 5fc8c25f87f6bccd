package authz

import (
	"testing"

	"ordereat-api/models"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func TestAuthorize(t *testing.T) {
	owner := Principal{ID: 1, Role: models.RoleOwner}
	otherOwner := Principal{ID: 2, Role: models.RoleOwner}
	user := Principal{ID: 3, Role: models.RoleUser}
	admin := Principal{ID: 99, Role: models.RoleAdmin}

	restaurant := RestaurantResource(&models.Restaurant{ID: 10, CreatedByID: uintPtr(1)})
	order := OrderResource(&models.Order{ID: 20, CustomerID: uintPtr(3)})
	orphan := RestaurantResource(&models.Restaurant{ID: 11})

	tests := []struct {
		name      string
		principal Principal
		resource  Resource
		op        Operation
		want      Decision
	}{
		{"create is public", otherOwner, restaurant, Create, Allowed},
		{"read is public", user, restaurant, Read, Allowed},
		{"read order by stranger", otherOwner, order, Read, Allowed},
		{"owner updates restaurant", owner, restaurant, Update, Allowed},
		{"owner deletes restaurant", owner, restaurant, Delete, Allowed},
		{"other owner cannot update", otherOwner, restaurant, Update, Denied},
		{"other owner cannot delete", otherOwner, restaurant, Delete, Denied},
		{"admin updates foreign restaurant", admin, restaurant, Update, Allowed},
		{"customer updates own order", user, order, Update, Allowed},
		{"stranger cannot update order", owner, order, Update, Denied},
		{"admin deletes order", admin, order, Delete, Allowed},
		{"ownerless restaurant denies owner", owner, orphan, Update, Denied},
		{"ownerless restaurant allows admin", admin, orphan, Delete, Allowed},
		{"ownerless restaurant still readable", user, orphan, Read, Allowed},
		{"zero principal never matches", Principal{}, RestaurantResource(&models.Restaurant{CreatedByID: uintPtr(0)}), Update, Denied},
		{"unknown operation", admin, restaurant, Operation(42), Denied},
		{"unknown resource kind", admin, Resource{Kind: ResourceKind(9)}, Read, Denied},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Authorize(testCase.principal, testCase.resource, testCase.op))
		})
	}
}

func TestAuthorizeUpdateDeleteRule(t *testing.T) {
	roles := []models.RoleName{models.RoleUser, models.RoleOwner, models.RoleAdmin}
	for _, role := range roles {
		for principalID := uint(1); principalID <= 3; principalID++ {
			for ownerID := uint(1); ownerID <= 3; ownerID++ {
				p := Principal{ID: principalID, Role: role}
				res := Resource{Kind: KindOrder, ID: 1, OwnerID: uintPtr(ownerID)}
				want := Decision(principalID == ownerID || role == models.RoleAdmin)
				assert.Equal(t, want, Authorize(p, res, Update), "update role=%s p=%d owner=%d", role, principalID, ownerID)
				assert.Equal(t, want, Authorize(p, res, Delete), "delete role=%s p=%d owner=%d", role, principalID, ownerID)
				assert.Equal(t, Allowed, Authorize(p, res, Create))
				assert.Equal(t, Allowed, Authorize(p, res, Read))
			}
		}
	}
}
