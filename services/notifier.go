package services

import (
	"fmt"
	"log"

	"inventory-app/config"
	"inventory-app/models"

	"gopkg.in/gomail.v2"
)

// NotifyTransfer emails supervisors about an accepted transfer. Best effort:
// a mail failure never fails the transfer, which is already committed.
func NotifyTransfer(transfer *models.Transfer) {
	if !config.MailEnabled {
		return
	}

	subject := fmt.Sprintf("📦 Stock transfer %s → %s", transfer.SourceOwner, transfer.DestinationOwner)
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Stock transfer completed</h3>
				<p>From: <strong>%s</strong></p>
				<p>To: <strong>%s</strong></p>
				<p>Item: <strong>%s</strong>, %d %s</p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, transfer.SourceOwner, transfer.DestinationOwner,
		transfer.ItemTypeID, transfer.Quantity, transfer.PackagingType)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPUser)
	msg.SetHeader("To", config.NotifyEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Println("Failed to send transfer notification:", err)
	}
}
