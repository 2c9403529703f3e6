package custody

import "fmt"

// Asset is a unit of tradeable content. It is identified by ID only; two
// assets with the same ID and different names are the same asset for the
// purpose of wallet operations.
type Asset struct {
	ID   string
	Name string
}

func (a Asset) String() string {
	return fmt.Sprintf("%v (%v)", a.ID, a.Name)
}
