package components

import (
	"github.com/a-h/templ"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/portfolio"
)

var contactTemplate = fromTemplate("contact", `<section id="contact" class="section contact">
  <header class="section-title">
    <p class="eyebrow">{{.Contact.SubTitle}}</p>
    <h2>{{.Contact.Title}}</h2>
    <p class="section-bio">{{.Contact.TitleBio}}</p>
  </header>
  <div class="contact-grid">
    <aside class="card contact-info">
      <h3>{{.Contact.Info}}</h3>
      <a href="mailto:{{.Contact.Email}}">
        <span class="label">Email Me</span>
        <span class="value">{{.Contact.Email}}</span>
      </a>
      <div>
        <span class="label">Location</span>
        <span class="value">{{.Contact.Location}}</span>
        <span class="hint">Remote Available</span>
      </div>
      <p class="connect">Connect with me</p>
      <div class="social-links">
        {{range .SocialLinks}}<a href="{{.Href}}" target="_blank" rel="noopener noreferrer" aria-label="Visit my {{.Label}}"><span class="icon icon-{{.Icon}}" aria-hidden="true"></span></a>
        {{end}}
      </div>
    </aside>
    <div class="contact-form-wrap" data-contact>
      {{if .Success}}
      <div class="card contact-success" role="status" aria-live="polite" data-contact-success>
        <h3>Thank You!</h3>
        <p>Your message has been sent successfully!</p>
        <p>I appreciate you reaching out. I'll get back to you as soon as possible.</p>
        <a class="cta" href="/#contact" data-contact-reset aria-label="Send another message, return to form">Send Another Message</a>
      </div>
      {{else}}
      <form class="card contact-form" method="post" action="/api/contact" novalidate autocomplete="off" data-contact-form>
        <div class="form-error" role="alert" data-contact-error {{if not .Error}}hidden{{end}}>{{.ErrorMessage}}</div>
        <div class="form-row">
          <label>First Name
            <input type="text" name="firstName" placeholder="John" required>
          </label>
          <label>Last Name
            <input type="text" name="lastName" placeholder="Doe" required>
          </label>
        </div>
        <label>Email
          <input type="email" name="email" placeholder="your@email.com" required>
        </label>
        <label>Message
          <textarea name="message" placeholder="Your message..." rows="5" required></textarea>
        </label>
        <button type="submit" data-contact-submit aria-label="Send contact message">Send Message</button>
      </form>
      {{end}}
    </div>
  </div>
</section>`)

type contactData struct {
	*portfolio.Data
	Success      bool
	Error        bool
	ErrorMessage string
}

// Contact renders the contact info card and the form. The server-rendered
// success and error states cover the no-script post-redirect-get flow; the
// client script takes over when available.
func Contact(data *portfolio.Data, opts PageOptions) templ.Component {
	return component(contactTemplate, contactData{
		Data:         data,
		Success:      opts.ContactStatus == "success",
		Error:        opts.ContactStatus == "error",
		ErrorMessage: opts.ContactError,
	})
}
