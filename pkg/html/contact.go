package html

import (
	"strings"

	"github.com/cheesesashimi/stara/pkg/contact"
	"github.com/julvo/htmlgo"
	a "github.com/julvo/htmlgo/attributes"
)

const (
	SuccessMessage string = "Thank you! We'll get back to you soon."
	ErrorMessage   string = "Something went wrong. Please try again."
)

// FormState is what the contact form shows after a submission. The zero value
// is an empty form with no status.
type FormState struct {
	Submitted bool
	Success   bool
	Message   string
	Values    contact.Submission
}

func Contact(form FormState) Page {
	return Page{
		Path:        "/contact",
		Title:       "Contact — Stara",
		Description: "Get in touch with Stara. Request a quote, schedule a site visit, or find a dealer near you.",
		Body: []htmlgo.HTML{
			section("contact",
				htmlgo.H1_(htmlgo.Text("Contact Us")),
				htmlgo.P_(htmlgo.Text("Find the nearest Stara dealer, request a sample, or schedule a site visit. Dealers carry samples, measurement help and installation services.")),
				contactForm("/contact", form),
			),
		},
	}
}

func contactForm(action string, form FormState) htmlgo.HTML {
	values := form.Values
	if form.Success {
		values = contact.Submission{}
	}

	fields := []htmlgo.HTML{
		textField("name", "Name *", "text", values.Name, true),
		textField("email", "Email *", "email", values.Email, true),
		textField("phone", "Phone", "tel", values.Phone, false),
		textField("city", "City", "text", values.City, false),
		htmlgo.Div_(
			htmlgo.Label([]a.Attribute{a.For_("message")}, htmlgo.Text("Message *")),
			messageArea(values.Message),
		),
		htmlgo.Div_(
			htmlgo.Label([]a.Attribute{a.For_("file")}, htmlgo.Text("File Upload (optional)")),
			htmlgo.Input([]a.Attribute{a.Type_("file"), a.Id_("file"), a.Name_("file")}),
		),
	}

	if form.Submitted {
		class := "form-status error"
		if form.Success {
			class = "form-status success"
		}

		fields = append(fields, htmlgo.Div([]a.Attribute{a.Class_(class)}, htmlgo.Text(form.Message)))
	}

	fields = append(fields, htmlgo.Button([]a.Attribute{a.Type_("submit")}, htmlgo.Text("Send Message")))

	return htmlgo.Form([]a.Attribute{
		a.Method_("post"),
		a.Action_(action),
		a.Enctype_("multipart/form-data"),
		a.Class_("contact-form"),
	}, fields...)
}

func textField(name, label, inputType, value string, required bool) htmlgo.HTML {
	attrs := []a.Attribute{a.Type_(inputType), a.Id_(name), a.Name_(name), a.Value(attrValue(value))}
	if required {
		attrs = append(attrs, a.Required_("required"))
	}

	return htmlgo.Div_(
		htmlgo.Label([]a.Attribute{a.For_(name)}, htmlgo.Text(label)),
		htmlgo.Input(attrs),
	)
}

var lineBreakReplacer = strings.NewReplacer("\r", "&#13;", "\n", "&#10;")

// messageArea is written by hand: htmlgo pads element content with newlines
// and indentation, which a textarea would keep as part of its value.
func messageArea(message string) htmlgo.HTML {
	return htmlgo.HTML(`<textarea id="message" name="message" rows="6" required="required">` +
		lineBreakReplacer.Replace(escapeText(message)) +
		`</textarea>`)
}
