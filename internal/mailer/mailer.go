package mailer

const ReservationConfirmedTemplate = "reservation_confirmed.tmpl"

type Mailer interface {
	Send(recipient, templateFile string, data any) error
}

// ReservationConfirmedData fills ReservationConfirmedTemplate.
type ReservationConfirmedData struct {
	ConfirmationCode string
	MovieTitle       string
	TheaterName      string
	HallName         string
	StartTime        string
	Tickets          int
	Seats            []SeatLine
	TotalPrice       string
}

type SeatLine struct {
	Label      string
	Type       string
	TicketType string
	Price      string
}
