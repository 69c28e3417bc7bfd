// Package guard lets parcel commands, queries and kernel values tell a value
// built by its New* constructor apart from a zero value.
//
// Every use case handler calls Validate on its input first, so a literal such as
// commands.CreateParcelCommand{} or queries.GroupParcelsQuery{} is rejected
// before the handler opens a unit of work or touches the database.
package guard

import "errors"

// ErrNotConstructed is what Validate reports when the caller passes no error of
// its own.
var ErrNotConstructed = errors.New("zero value: build it with its New constructor")

// ConstructorGuard is embedded unexported in each guarded type. Only
// NewConstructorGuard sets it, so copies of a built value stay valid and
// struct literals do not.
//
//	var ErrGroupParcelsQueryIsNotConstructed = errors.New("GroupParcelsQuery must be created via NewGroupParcelsQuery")
//
//	func (q GroupParcelsQuery) Validate() error {
//	    return q.guard.Validate(ErrGroupParcelsQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	built bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{built: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns notBuilt,
// or ErrNotConstructed when notBuilt is nil.
func (g ConstructorGuard) Validate(notBuilt error) error {
	if g.built {
		return nil
	}
	if notBuilt == nil {
		return ErrNotConstructed
	}
	return notBuilt
}
