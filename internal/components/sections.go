package components

import (
	"github.com/a-h/templ"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/portfolio"
)

var navbarTemplate = fromTemplate("navbar", `<nav class="navbar" data-navbar>
  <div class="navbar-inner">
    <a class="navbar-brand" href="/" data-nav-target="/">
      <img src="/static/images/logo.svg" alt="{{.Name}} logo" width="40" height="40" loading="lazy">
      <span>Danny<span class="accent">.Dev</span></span>
    </a>
    <div class="navbar-links" data-menu>
      {{range .NavLinks}}<a href="{{.Href}}" data-nav-target="{{.Href}}">{{.Name}}</a>
      {{end}}
    </div>
    <div class="navbar-actions">
      <button class="theme-toggle" data-theme-toggle aria-label="Toggle color theme" title="Toggle color theme">
        <span class="icon-sun" aria-hidden="true"></span>
        <span class="icon-moon" aria-hidden="true"></span>
      </button>
      <a class="cta" href="#contact" data-nav-target="#contact">Hire Me</a>
      <button class="menu-toggle" data-menu-toggle aria-label="Open navigation menu" aria-expanded="false"></button>
    </div>
  </div>
  <div class="mobile-menu" data-mobile-menu hidden>
    {{range .NavLinks}}<a href="{{.Href}}" data-nav-target="{{.Href}}">{{.Name}}</a>
    {{end}}
    <a class="cta" href="#contact" data-nav-target="#contact">Let's Talk</a>
  </div>
</nav>`)

// Navbar renders the fixed navigation bar with the theme toggle and the
// mobile menu overlay.
func Navbar(data *portfolio.Data) templ.Component {
	return component(navbarTemplate, data)
}

var heroTemplate = fromTemplate("hero", `<section id="hero" class="hero">
  <p class="availability"><span class="pulse"></span>{{.Work}}</p>
  <h1>{{.Name}}</h1>
  <p class="headline">{{.Title}}</p>
  <p class="bio">{{.Bio}}</p>
  <p class="job-title">I am a <span class="rotating-title" role="status" aria-live="polite" data-rotating-titles="{{.TitleList}}">{{.FirstTitle}}</span></p>
  <div class="language-chips">
    {{range .Languages}}<span class="chip" title="{{.Name}}">{{.Label}}</span>
    {{end}}
  </div>
</section>`)

type heroData struct {
	*portfolio.Data
	TitleList  string
	FirstTitle string
}

// Hero renders the opening section with the rotating job title markup; the
// client script cycles the titles on a fixed interval.
func Hero(data *portfolio.Data) templ.Component {
	first := ""
	titles := ""
	if len(data.JobTitles) > 0 {
		first = data.JobTitles[0]
		for i, t := range data.JobTitles {
			if i > 0 {
				titles += "|"
			}
			titles += t
		}
	}
	return component(heroTemplate, heroData{Data: data, TitleList: titles, FirstTitle: first})
}

var aboutTemplate = fromTemplate("about", `<section id="about" class="section about">
  <header class="section-title">
    <p class="eyebrow">{{.About.SubTitle}}</p>
    <h2>{{.About.Title}}</h2>
    <p class="section-bio">{{.About.TitleBio}}</p>
  </header>
  <div class="about-body">
    <div class="prose">{{.About.BioHTML}}</div>
    <div class="prose">{{.About.SubBioHTML}}</div>
    <div class="prose">{{.About.DescriptionHTML}}</div>
    <div class="prose">{{.About.ShortDescHTML}}</div>
  </div>
  <div class="feature-cards">
    {{range .FeatureCards}}<article class="card feature-card">
      <span class="icon icon-{{.Icon}}" aria-hidden="true"></span>
      <h3>{{.Title}}</h3>
      <p>{{.Desc}}</p>
    </article>
    {{end}}
  </div>
</section>`)

// About renders the biography section.
func About(data *portfolio.Data) templ.Component {
	return component(aboutTemplate, data)
}

var skillsTemplate = fromTemplate("skills", `<section id="skills" class="section skills">
  <header class="section-title">
    <p class="eyebrow">{{.Skills.SubTitle}}</p>
    <h2>{{.Skills.Title}}</h2>
    <p class="section-bio">{{.Skills.TitleBio}}</p>
  </header>
  <div class="skill-groups">
    <div class="skill-group"><h3>Languages</h3><ul>{{range .Skills.Languages}}<li>{{.}}</li>{{end}}</ul></div>
    <div class="skill-group"><h3>Frontend</h3><ul>{{range .Skills.Frontend}}<li>{{.}}</li>{{end}}</ul></div>
    <div class="skill-group"><h3>DevOps</h3><ul>{{range .Skills.DevOps}}<li>{{.}}</li>{{end}}</ul></div>
    <div class="skill-group"><h3>Cloud &amp; Security</h3><ul>{{range .Skills.CloudAndSec}}<li>{{.}}</li>{{end}}</ul></div>
  </div>
</section>`)

// Skills renders the grouped skill tags.
func Skills(data *portfolio.Data) templ.Component {
	return component(skillsTemplate, data)
}

var projectsTemplate = fromTemplate("projects", `<section id="projects" class="section projects">
  <header class="section-title">
    <p class="eyebrow">{{.ProjectsIntro.SubTitle}}</p>
    <h2>{{.ProjectsIntro.Title}}</h2>
    <p class="section-bio">{{.ProjectsIntro.TitleBio}}</p>
  </header>
  <div class="project-grid">
    {{range .Projects}}<article class="card project-card" data-category="{{.Category}}">
      <img src="{{.ImageURL}}" alt="{{.Title}} preview" loading="lazy">
      <div class="project-body">
        <span class="badge">{{.Category}}</span>
        <h3>{{.Title}}</h3>
        <div class="prose">{{.DescriptionHTML}}</div>
        <ul class="tags">{{range .Tags}}<li>{{.}}</li>{{end}}</ul>
        <div class="project-links">
          {{if .LiveURL}}<a href="{{.LiveURL}}" target="_blank" rel="noopener noreferrer">Live</a>{{end}}
          {{if .GithubURL}}<a href="{{.GithubURL}}" target="_blank" rel="noopener noreferrer">Code</a>{{end}}
        </div>
      </div>
    </article>
    {{end}}
  </div>
</section>`)

// Projects renders the showcase grid.
func Projects(data *portfolio.Data) templ.Component {
	return component(projectsTemplate, data)
}

var experienceTemplate = fromTemplate("experience", `<section id="experience" class="section experience">
  <header class="section-title">
    <p class="eyebrow">{{.ExperienceIntro.SubTitle}}</p>
    <h2>{{.ExperienceIntro.Title}}</h2>
    <p class="section-bio">{{.ExperienceIntro.TitleBio}}</p>
  </header>
  <ol class="timeline">
    {{range .Experience}}<li class="timeline-entry">
      <h3>{{.Role}} <span class="company">@ {{.Company}}</span></h3>
      <p class="period">{{.Period}}</p>
      <ul>{{range .Description}}<li>{{.}}</li>{{end}}</ul>
    </li>
    {{end}}
  </ol>
</section>`)

// Experience renders the professional timeline.
func Experience(data *portfolio.Data) templ.Component {
	return component(experienceTemplate, data)
}

var testimonialsTemplate = fromTemplate("testimonials", `<section id="testimonials" class="section testimonials">
  <header class="section-title">
    <p class="eyebrow">{{.TestimonialsIntro.SubTitle}}</p>
    <h2>{{.TestimonialsIntro.Title}}</h2>
    <p class="section-bio">{{.TestimonialsIntro.TitleBio}}</p>
  </header>
  <div class="testimonial-list">
    {{range .Testimonials}}<figure class="card testimonial">
      <blockquote>{{.Text}}</blockquote>
      <figcaption>
        <img src="{{.Avatar}}" alt="" width="48" height="48" loading="lazy">
        <div><strong>{{.Author}}</strong><span>{{.Role}}</span></div>
      </figcaption>
    </figure>
    {{end}}
  </div>
</section>`)

// Testimonials renders the client feedback section.
func Testimonials(data *portfolio.Data) templ.Component {
	return component(testimonialsTemplate, data)
}

var footerTemplate = fromTemplate("footer", `<footer class="footer">
  <p>{{.Footer.Credit}}</p>
  <div class="social-links">
    {{range .SocialLinks}}<a href="{{.Href}}" target="_blank" rel="noopener noreferrer" aria-label="Visit my {{.Label}}" title="Visit my {{.Label}}"><span class="icon icon-{{.Icon}}" aria-hidden="true"></span></a>
    {{end}}
  </div>
</footer>`)

// Footer renders the closing credit and social links.
func Footer(data *portfolio.Data) templ.Component {
	return component(footerTemplate, data)
}

var backToTopTemplate = fromTemplate("backtotop", `<div class="back-to-top" data-back-to-top hidden>
  <div class="progress-ring" data-progress-ring>
    <button data-scroll-top aria-label="Scroll to top" title="Back to top">&#8593;</button>
  </div>
</div>`)

// BackToTop renders the scroll affordance; the client script drives its
// visibility and progress ring.
func BackToTop() templ.Component {
	return component(backToTopTemplate, nil)
}
