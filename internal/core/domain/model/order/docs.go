// Package order contains the sales order domain model: the Builder that
// accumulates an in-progress draft, the immutable Draft snapshot it
// produces, the persisted Order aggregate, and the Status state machine
// that governs the Pending → Completed/Cancelled lifecycle.
package order
