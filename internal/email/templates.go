package email

import (
	"fmt"
	"html"
)

// registrationConfirmation composes the account confirmation email sent after
// a user registers. Requires context keys "name" and "link".
type registrationConfirmation struct {
	appName string
}

func (c registrationConfirmation) Compose(msg Message) (Content, error) {
	name, ok := msg.contextValue("name")
	if !ok {
		return Content{}, &TemplateError{Kind: msg.Kind(), Key: "name"}
	}
	link, ok := msg.contextValue("link")
	if !ok {
		return Content{}, &TemplateError{Kind: msg.Kind(), Key: "link"}
	}

	return Content{
		Subject: "Confirm your account",
		Body:    registrationConfirmationHTML(name, link, c.appName),
		Format:  FormatHTML,
	}, nil
}

// passwordReset composes the password reset email. Requires context key
// "link"; "expiry" is optional and defaults to "1 hour".
type passwordReset struct {
	appName string
}

func (c passwordReset) Compose(msg Message) (Content, error) {
	link, ok := msg.contextValue("link")
	if !ok {
		return Content{}, &TemplateError{Kind: msg.Kind(), Key: "link"}
	}
	expiry, ok := msg.contextValue("expiry")
	if !ok {
		expiry = "1 hour"
	}

	return Content{
		Subject: "Reset your password",
		Body:    passwordResetHTML(link, expiry, c.appName),
		Format:  FormatHTML,
	}, nil
}

// registrationConfirmationHTML returns the HTML body for an account confirmation email.
func registrationConfirmationHTML(name, link, appName string) string {
	name = html.EscapeString(name)
	link = html.EscapeString(link)
	appName = html.EscapeString(appName)
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Confirm your account</title>
</head>
<body style="margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;background-color:#f4f5f7;">
<table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#f4f5f7;padding:40px 0;">
<tr><td align="center">
<table width="480" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;box-shadow:0 2px 8px rgba(0,0,0,0.08);">
  <tr><td style="padding:32px 40px 24px;text-align:center;">
    <h1 style="margin:0;font-size:24px;color:#1a1a2e;">Confirm your account</h1>
  </td></tr>
  <tr><td style="padding:0 40px;">
    <p style="margin:0 0 24px;font-size:15px;color:#4a4a68;line-height:1.6;">
      Hi <strong>%s</strong>, thanks for signing up for <strong>%s</strong>! Click the button below to confirm your email address and activate your account.
    </p>
  </td></tr>
  <tr><td style="padding:0 40px;text-align:center;">
    <a href="%s" style="display:inline-block;background-color:#6c63ff;border-radius:8px;padding:14px 36px;margin:0 0 24px;font-size:16px;font-weight:bold;color:#ffffff;text-decoration:none;">Confirm account</a>
  </td></tr>
  <tr><td style="padding:0 40px 32px;">
    <p style="margin:0;font-size:13px;color:#8888a0;line-height:1.5;">
      If the button does not work, copy this link into your browser: %s<br>
      If you didn't create an account, you can safely ignore this email.
    </p>
  </td></tr>
  <tr><td style="padding:16px 40px;background-color:#f9f9fc;border-top:1px solid #eeeef2;">
    <p style="margin:0;font-size:12px;color:#aaaabc;text-align:center;">
      &copy; %s &mdash; This is an automated message, please do not reply.
    </p>
  </td></tr>
</table>
</td></tr>
</table>
</body>
</html>`, name, appName, link, link, appName)
}

// passwordResetHTML returns the HTML body for a password reset email.
func passwordResetHTML(link, expiry, appName string) string {
	link = html.EscapeString(link)
	expiry = html.EscapeString(expiry)
	appName = html.EscapeString(appName)
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Reset your password</title>
</head>
<body style="margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;background-color:#f4f5f7;">
<table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#f4f5f7;padding:40px 0;">
<tr><td align="center">
<table width="480" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;box-shadow:0 2px 8px rgba(0,0,0,0.08);">
  <tr><td style="padding:32px 40px 24px;text-align:center;">
    <h1 style="margin:0;font-size:24px;color:#1a1a2e;">Reset your password</h1>
  </td></tr>
  <tr><td style="padding:0 40px;">
    <p style="margin:0 0 24px;font-size:15px;color:#4a4a68;line-height:1.6;">
      We received a request to reset the password for your <strong>%s</strong> account. Click the button below to choose a new password.
    </p>
  </td></tr>
  <tr><td style="padding:0 40px;text-align:center;">
    <a href="%s" style="display:inline-block;background-color:#6c63ff;border-radius:8px;padding:14px 36px;margin:0 0 24px;font-size:16px;font-weight:bold;color:#ffffff;text-decoration:none;">Reset password</a>
  </td></tr>
  <tr><td style="padding:0 40px 32px;">
    <p style="margin:0;font-size:13px;color:#8888a0;line-height:1.5;">
      This link expires in <strong>%s</strong>. If you didn't request a password reset, you can safely ignore this email and your password will stay unchanged.
    </p>
  </td></tr>
  <tr><td style="padding:16px 40px;background-color:#f9f9fc;border-top:1px solid #eeeef2;">
    <p style="margin:0;font-size:12px;color:#aaaabc;text-align:center;">
      &copy; %s &mdash; This is an automated message, please do not reply.
    </p>
  </td></tr>
</table>
</td></tr>
</table>
</body>
</html>`, appName, link, expiry, appName)
}
