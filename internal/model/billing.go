package model

import "time"

// BillingInput selects who gets invoiced. Empty MemberIDs means every member
// with unbilled orders up to the cutoff.
type BillingInput struct {
	Cutoff     time.Time `json:"cutoff"`
	MemberIDs  []int     `json:"memberIds,omitempty"`
	SendCopyTo string    `json:"sendCopyTo,omitempty"`
}

type BillingReport struct {
	MembersWithOrders int      `json:"membersWithOrders"`
	NoEmail           []string `json:"noEmail"`
	BelowMinimum      []string `json:"belowMinimum"`
	Errors            []string `json:"errors"`
}

func (r BillingReport) OK() bool {
	return len(r.Errors) == 0
}
