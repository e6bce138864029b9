package service

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"studioe_backend/internals/features/lessons/model"
)

// InvoiceMailer sends the student a notice when a lesson is completed and
// invoiced. Delivery is best-effort; a send failure never fails the request.
type InvoiceMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func NewInvoiceMailer(client *sendgrid.Client, fromAddress string) *InvoiceMailer {
	if client == nil {
		return nil
	}
	return &InvoiceMailer{
		client: client,
		from:   sgmail.NewEmail("Studio E", fromAddress),
	}
}

// SendInvoiceNotice mails the student when their address is known; lessons
// whose student has no linked account are skipped silently.
func (m *InvoiceMailer) SendInvoiceNotice(lesson *model.LessonModel, studentEmail string) {
	if studentEmail == "" {
		return
	}
	subject := fmt.Sprintf("[Studio E] Lesson with %s completed", lesson.LessonInstructorName)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour lesson on %s with %s has been completed and invoiced (%.2f hours).\n\nSee your dashboard for details.\n\n- Studio E",
		lesson.LessonStudentName,
		lesson.LessonStart.Format("Jan 2, 2006 3:04 PM"),
		lesson.LessonInstructorName,
		lesson.LessonNumHours,
	)
	to := sgmail.NewEmail(lesson.LessonStudentName, studentEmail)

	go func() {
		msg := sgmail.NewSingleEmail(m.from, subject, to, body, "")
		if _, err := m.client.Send(msg); err != nil {
			log.Printf("[ERROR] invoice mail send: %v", err)
		}
	}()
}
