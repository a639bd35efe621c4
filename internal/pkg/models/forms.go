package models

// TripFormRequest is the raw trip form as typed by the driver
type TripFormRequest struct {
	Price    string `json:"price"`
	Seats    string `json:"seats"`
	TripDate string `json:"trip_date"`
	TripTime string `json:"trip_time"`
}

// FormValidationResult lists per-field errors; Valid is true when there are none
type FormValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// CardFormatRequest carries the raw card number and expiry input
type CardFormatRequest struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
}

// CardFormatResponse holds the display forms of the card inputs
type CardFormatResponse struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
}
