package email

import (
	"bytes"
	"html/template"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Welcome, {{.Name}}!</h2>
  <p>Please confirm your email address to activate your account.</p>
  <p><a href="{{.Link}}">Confirm email</a></p>
  <p>If you did not register, ignore this message.</p>
</body>
</html>`))

var resetTmpl = template.Must(template.New("reset").Parse(`
<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Password reset</h2>
  <p>Hello {{.Name}},</p>
  <p>We received a request to reset your password. The link is valid for one hour.</p>
  <p><a href="{{.Link}}">Reset password</a></p>
  <p>If you did not request a reset, ignore this message.</p>
</body>
</html>`))

var paymentTmpl = template.Must(template.New("payment").Parse(`
<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Payment received</h2>
  <p>Hello {{.Name}},</p>
  <p>Your payment for the <b>{{.Plan}}</b> plan was processed successfully.</p>
  <p>Amount: {{.Amount}}</p>
</body>
</html>`))

type linkData struct {
	Name string
	Link string
}

type paymentData struct {
	Name   string
	Plan   string
	Amount string
}

// RenderConfirmation builds the email-confirmation message body.
func RenderConfirmation(name, link string) (string, error) {
	return render(confirmationTmpl, linkData{Name: name, Link: link})
}

// RenderPasswordReset builds the password-reset message body.
func RenderPasswordReset(name, link string) (string, error) {
	return render(resetTmpl, linkData{Name: name, Link: link})
}

// RenderPaymentReceipt builds the payment-confirmation message body.
func RenderPaymentReceipt(name, plan, amount string) (string, error) {
	return render(paymentTmpl, paymentData{Name: name, Plan: plan, Amount: amount})
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
