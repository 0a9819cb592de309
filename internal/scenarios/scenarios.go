// Package scenarios is the SauceDemo scenario set. Every scenario starts on a
// freshly loaded login page and shares nothing with the others.
package scenarios

import "github.com/Khaerul-jpg/Automation-Testing/internal/scenario"

// Feature names
const (
	LoginFeature     = "Login"
	InventoryFeature = "Inventory"
)

// All returns the complete scenario set, login scenarios first
func All() []scenario.Scenario {
	all := Login()
	return append(all, Inventory()...)
}
