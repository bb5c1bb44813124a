package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReservationConfirmed(t *testing.T) {
	data := ReservationConfirmedData{
		ConfirmationCode: "0b6f3c1e-6a53-4f0e-9a51-7f4d0f8d2a10",
		MovieTitle:       "Night <Train>",
		TheaterName:      "Downtown",
		HallName:         "Hall 1",
		StartTime:        "Sun, 01 Jun 2025 18:30:00 UTC",
		Tickets:          2,
		Seats: []SeatLine{
			{Label: "A1", Type: "Standard", TicketType: "ADULT", Price: "10"},
			{Label: "A2", Type: "VIP", TicketType: "MINOR", Price: "15"},
		},
		TotalPrice: "25",
	}

	subject, plainBody, htmlBody, err := render(ReservationConfirmedTemplate, data)
	require.NoError(t, err)

	assert.Equal(t, "Your reservation 0b6f3c1e-6a53-4f0e-9a51-7f4d0f8d2a10 is confirmed", subject)
	assert.Contains(t, plainBody, "Seat A1 (Standard, ADULT): 10")
	assert.Contains(t, plainBody, "Seat A2 (VIP, MINOR): 15")
	assert.Contains(t, plainBody, "Total: 25")
	assert.Contains(t, htmlBody, "Night &lt;Train&gt;")
	assert.Contains(t, htmlBody, "<td>A2</td>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := render("missing.tmpl", nil)
	assert.Error(t, err)
}

func TestComposeSetsHeaders(t *testing.T) {
	m := NewSMTPMailer("localhost", 2525, "", "", "Seatmap <no-reply@example.com>")

	msg, err := m.compose("guest@example.com", ReservationConfirmedTemplate, ReservationConfirmedData{ConfirmationCode: "abc"})
	require.NoError(t, err)

	assert.Equal(t, []string{"guest@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Seatmap <no-reply@example.com>"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"Your reservation abc is confirmed"}, msg.GetHeader("Subject"))
}

func TestMockMailerRecordsRenderedEmails(t *testing.T) {
	m := NewMockMailer()

	err := m.Send("guest@example.com", ReservationConfirmedTemplate, ReservationConfirmedData{ConfirmationCode: "abc"})
	require.NoError(t, err)

	emails := m.SentEmails()
	require.Len(t, emails, 1)
	assert.Equal(t, "guest@example.com", emails[0].Recipient)
	assert.Equal(t, "Your reservation abc is confirmed", emails[0].Subject)

	assert.Error(t, m.Send("guest@example.com", "missing.tmpl", nil))
	assert.Len(t, m.SentEmails(), 1)

	m.Reset()
	assert.Empty(t, m.SentEmails())
}
