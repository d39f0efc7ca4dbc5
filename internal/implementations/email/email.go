package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const passwordResetSubject = "Recuperação de senha"

type EmailSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender string
}

func NewEmailSender(awsConfig aws.Config, sender string) *EmailSender {
	return &EmailSender{
		ses:    ses.NewFromConfig(awsConfig),
		sender: sender,
	}
}

func (s *EmailSender) SendPasswordResetEmail(
	ctx context.Context,
	email, username, token, resetPasswordURL string,
) error {
	subject := passwordResetSubject
	body := passwordResetBody(username, token, resetPasswordURL)
	charset := "UTF-8"

	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{email},
			},
			Message: &types.Message{
				Subject: &types.Content{Data: &subject, Charset: &charset},
				Body: &types.Body{
					Html: &types.Content{Data: &body, Charset: &charset},
				},
			},
		},
	)
	return err
}

func passwordResetBody(username, token, resetPasswordURL string) string {
	link := fmt.Sprintf("%s?token=%s", resetPasswordURL, token)
	return fmt.Sprintf(
		"<p>Olá, %s!</p><p>Clique no link abaixo para redefinir a sua senha:</p><p><a href=%q>%s</a></p>",
		username,
		link,
		link,
	)
}
