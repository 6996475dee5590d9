package templates

import (
	"fmt"
	"html"

	"github.com/bigwigdigital/kpd-realty-api/models"
)

// RenderCode generates the HTML for the OTP delivery email. The code is shown
// in plain text so the visitor can copy it back into the contact form.
func RenderCode(name, code string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto;">
  <div style="text-align: center; padding: 20px;">
    <img src="https://res.cloudinary.com/dqrlkbsdq/image/upload/v1755090981/logo_bohujn.png" alt="KPD Logo" width="120" />
  </div>
  <div style="padding: 20px; background-color: #f9f9f9; border-radius: 10px;">
    <p style="font-size: 16px; color: #555;">Hello %s,</p>
    <p style="font-size: 16px; color: #555;">Your OTP is: <strong style="font-size: 22px; letter-spacing: 3px;">%s</strong></p>
    <p style="font-size: 14px; color: #777;">The code expires shortly, so please verify soon. If you did not request this, you can ignore this email.</p>
  </div>
</div>`, html.EscapeString(name), code)
}

// RenderLeadConfirmation generates the HTML confirmation sent to a visitor once
// their enquiry has been verified and recorded
func RenderLeadConfirmation(name string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto;">
  <div style="text-align: center; padding: 20px;">
    <img src="https://res.cloudinary.com/dqrlkbsdq/image/upload/v1755090981/logo_bohujn.png" alt="KPD Logo" width="120" />
  </div>
  <div style="padding: 20px; background-color: #f9f9f9; border-radius: 10px;">
    <h2 style="color: #333;">Hello %s,</h2>
    <p style="font-size: 16px; color: #555;">
      Thank you for reaching out to <strong>KPD</strong>.
      We have received your message and our team will get in touch with you within the next 24-48 hours.
    </p>
    <p style="font-size: 16px; color: #555;">
      Meanwhile, feel free to explore more about our services or reply to this email if you have any additional questions.
    </p>
    <p style="margin-top: 30px; font-size: 15px; color: #777;">
      Regards,<br />
      <strong>Team KPD</strong><br />
      <a href="https://www.bigwigdigital.in/" style="color: #007BFF;">Bigwig Digital</a>
    </p>
  </div>
</div>`, html.EscapeString(name))
}

// RenderLeadAlert generates the HTML for the internal notification sent to the
// operations mailbox whenever a new lead is committed
func RenderLeadAlert(lead models.LeadSubmission) string {
	return fmt.Sprintf(`<h3>New Lead Details</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Purpose:</strong> %s</p>
<p><strong>Message:</strong><br /> %s</p>`,
		html.EscapeString(lead.Name),
		html.EscapeString(lead.Email),
		html.EscapeString(lead.Phone),
		html.EscapeString(lead.Purpose),
		html.EscapeString(lead.Message))
}
