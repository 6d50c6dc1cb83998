// Package staff models the people operating the back office: their roles
// and what those roles are allowed to do. Authorization is deliberately
// concentrated in Authorize so role rules live in one place instead of
// being scattered across pages and handlers.
package staff
