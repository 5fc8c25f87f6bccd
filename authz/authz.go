// Package authz decides whether a principal may perform an operation on an owned resource.
package authz

import (
	"ordereat-api/models"
)

// Operation is one of the four resource operations.
type Operation int

const (
	Create Operation = iota + 1
	Read
	Update
	Delete
)

func (o Operation) String() string {
	switch o {
	case Create:
		return "create"
	case Read:
		return "read"
	case Update:
		return "update"
	case Delete:
		return "delete"
	}
	return "unknown"
}

// Principal is the authenticated caller.
type Principal struct {
	ID   uint
	Role models.RoleName
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// ResourceKind tags the resources ownership rules apply to.
type ResourceKind int

const (
	KindRestaurant ResourceKind = iota + 1
	KindOrder
)

func (k ResourceKind) String() string {
	switch k {
	case KindRestaurant:
		return "restaurant"
	case KindOrder:
		return "order"
	}
	return "unknown"
}

// Resource identifies an owned entity. OwnerID is the restaurant creator or the order
// customer; nil when the record has no owner.
type Resource struct {
	Kind    ResourceKind
	ID      uint
	OwnerID *uint
}

func RestaurantResource(r *models.Restaurant) Resource {
	return Resource{Kind: KindRestaurant, ID: r.ID, OwnerID: r.CreatedByID}
}

func OrderResource(o *models.Order) Resource {
	return Resource{Kind: KindOrder, ID: o.ID, OwnerID: o.CustomerID}
}

// Decision is the outcome of Authorize.
type Decision bool

const (
	Denied  Decision = false
	Allowed Decision = true
)

// Authorize applies the ownership policy. Create and Read are public; Update and Delete
// require the owner or an Admin. A resource without an owner is denied to non-Admins.
func Authorize(p Principal, res Resource, op Operation) Decision {
	switch res.Kind {
	case KindRestaurant, KindOrder:
	default:
		return Denied
	}

	switch op {
	case Create, Read:
		return Allowed
	case Update, Delete:
		if p.IsAdmin() {
			return Allowed
		}
		if res.OwnerID != nil && p.ID != 0 && *res.OwnerID == p.ID {
			return Allowed
		}
		return Denied
	}
	return Denied
}
