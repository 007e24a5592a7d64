package mail

import "fmt"

func VerificationMessage(to string, name string, otp string) Message {
	text := fmt.Sprintf(
		"Dear %s,\n\nYour email verification OTP is %s. It is valid for 1 hour.\n\nIf you didn't request this, please ignore this email.\n",
		name, otp,
	)
	html := fmt.Sprintf(
		"<p>Dear %s,</p><p>Your email verification OTP is <strong>%s</strong>. It is valid for 1 hour.</p><p>If you didn't request this, please ignore this email.</p>",
		name, otp,
	)
	return Message{
		To:      to,
		Subject: "Account Verification OTP",
		HTML:    html,
		Text:    text,
	}
}

func PasswordResetMessage(to string, name string, otp string) Message {
	text := fmt.Sprintf(
		"Dear %s,\n\nYour password reset OTP is %s. It is valid for 10 minutes.\n\nIf you didn't request this, please ignore this email.\n",
		name, otp,
	)
	html := fmt.Sprintf(
		"<p>Dear %s,</p><p>Your password reset OTP is <strong>%s</strong>. It is valid for 10 minutes.</p><p>If you didn't request this, please ignore this email.</p>",
		name, otp,
	)
	return Message{
		To:      to,
		Subject: "Password Reset OTP",
		HTML:    html,
		Text:    text,
	}
}
