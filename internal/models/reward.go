package models

// Reward is a catalog entry for something an activity or event can grant
type Reward struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RewardGrant is a reward with the quantity granted by a particular
// activity or event, as produced by the catalog join queries.
type RewardGrant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
}
