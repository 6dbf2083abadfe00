package entity

// Zone is a DNS domain administered as a unit by the provider. The ID is
// provider-assigned and opaque; cfman never modifies zones directly.
type Zone struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}
