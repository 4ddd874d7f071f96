package models

import "time"

const (
	StatusNotAccepted = "not_accepted"
	StatusInProgress  = "in_progress"
	StatusDone        = "done"
	StatusCancelled   = "cancelled"
)

// OrderStatuses lists every status an order may carry. Membership is checked
// at validation time only; transitions between them are not enforced.
var OrderStatuses = []string{
	StatusNotAccepted,
	StatusInProgress,
	StatusDone,
	StatusCancelled,
}

type Order struct {
	ID          int64     `json:"id"`
	AddressFrom string    `json:"address_from"`
	AddressTo   string    `json:"address_to"`
	ClientID    int64     `json:"client_id"`
	DriverID    int64     `json:"driver_id"`
	DateCreated time.Time `json:"date_created"`
	Status      string    `json:"status"`
}
