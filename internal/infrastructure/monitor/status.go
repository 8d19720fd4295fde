package monitor

import "time"

type Status struct {
	Store     bool      `json:"store"`
	StoreKeys int       `json:"store_keys"`
	LastCheck time.Time `json:"last_check"`
}
