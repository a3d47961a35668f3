package models

import "time"

// CustomerProfile is an aggregate derived from a customer's order history.
// It is computed on demand and never stored server-side.
type CustomerProfile struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	TotalOrders int    `json:"totalOrders"`
	TotalSpent  int    `json:"totalSpent"`
	JoinDate    string `json:"joinDate"`
}

// BuildCustomerProfile folds a customer's orders into a profile. Contact
// fields come from the most recent order, counters accumulate over all of
// them, and joinDate is the date of the first order ever placed.
func BuildCustomerProfile(orders []Order) CustomerProfile {
	var profile CustomerProfile
	var newest, oldest time.Time

	for _, order := range orders {
		profile.TotalOrders++
		profile.TotalSpent += order.TotalAmount

		if oldest.IsZero() || order.CreatedAt.Before(oldest) {
			oldest = order.CreatedAt
		}
		if order.CreatedAt.After(newest) || newest.IsZero() {
			newest = order.CreatedAt
			profile.Name = order.Customer.Name
			profile.Phone = order.Customer.Phone
			profile.Address = order.Customer.Address
		}
	}

	if !oldest.IsZero() {
		profile.JoinDate = oldest.Format("2006-01-02")
	}
	return profile
}
