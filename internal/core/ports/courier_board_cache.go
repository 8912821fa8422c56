package ports

import (
	"time"

	"lytefood/internal/core/domain/model/order"
)

// CourierBoard is the snapshot shown on the courier dashboard: orders ready
// to be claimed and orders already on the road. The background refresh job
// rebuilds it every 30 seconds; reads in between serve the cached copy.
type CourierBoard struct {
	Available   []*order.Order
	EnRoute     []*order.Order
	RefreshedAt time.Time
}

// CourierBoardCache holds the latest courier board. Writes are last-write-wins;
// a stale in-flight refresh may briefly overwrite a newer one and is corrected
// by the next tick.
type CourierBoardCache interface {
	// Set stores a freshly built board.
	Set(board CourierBoard)

	// Get returns the latest stored board and whether one was stored yet.
	Get() (CourierBoard, bool)
}
