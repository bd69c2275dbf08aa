// Package portfolio defines the content model for the site: the single
// in-memory data structure every section renders from, the built-in default
// content, and loading of YAML overrides with markdown-rendered long-form
// fields.
package portfolio

import "html/template"

// Data is the complete content payload for the site.
type Data struct {
	NavLinks  []NavLink `yaml:"nav_links"`
	Work      string    `yaml:"work"`
	Name      string    `yaml:"name"`
	Title     string    `yaml:"title"`
	Bio       string    `yaml:"bio"`
	JobTitles []string  `yaml:"job_titles"`

	Languages []LanguageChip `yaml:"languages"`

	About        AboutSection  `yaml:"about"`
	FeatureCards []FeatureCard `yaml:"feature_cards"`

	Skills SkillsSection `yaml:"skills"`

	ProjectsIntro SectionIntro `yaml:"projects_intro"`
	Projects      []Project    `yaml:"projects"`

	ExperienceIntro SectionIntro `yaml:"experience_intro"`
	Experience      []Experience `yaml:"experience"`

	TestimonialsIntro SectionIntro  `yaml:"testimonials_intro"`
	Testimonials      []Testimonial `yaml:"testimonials"`

	Contact ContactSection `yaml:"contact"`

	SocialLinks []SocialLink `yaml:"social_links"`
	Footer      Footer       `yaml:"footer"`
}

// NavLink addresses an in-page section by fragment, or another path.
type NavLink struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

// LanguageChip is one of the floating language badges in the hero.
type LanguageChip struct {
	Label string `yaml:"label"`
	Name  string `yaml:"name"`
}

// SectionIntro is the title block shared by the content sections.
type SectionIntro struct {
	Title    string `yaml:"title"`
	SubTitle string `yaml:"sub_title"`
	TitleBio string `yaml:"title_bio"`
}

// AboutSection holds the long-form biography paragraphs. The paragraph
// fields accept markdown; HTML is filled in by Load.
type AboutSection struct {
	SectionIntro     `yaml:",inline"`
	Bio              string `yaml:"bio"`
	SubBio           string `yaml:"sub_bio"`
	Description      string `yaml:"description"`
	ShortDescription string `yaml:"short_description"`

	BioHTML         template.HTML `yaml:"-"`
	SubBioHTML      template.HTML `yaml:"-"`
	DescriptionHTML template.HTML `yaml:"-"`
	ShortDescHTML   template.HTML `yaml:"-"`
}

// FeatureCard is one of the highlight cards in the about section.
type FeatureCard struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

// SkillsSection groups the skill tags.
type SkillsSection struct {
	SectionIntro `yaml:",inline"`
	Languages    []string `yaml:"languages"`
	Frontend     []string `yaml:"frontend"`
	DevOps       []string `yaml:"devops"`
	CloudAndSec  []string `yaml:"cloud_and_sec"`
}

// All returns every skill tag across groups, used for keywords and
// structured data.
func (s SkillsSection) All() []string {
	out := make([]string, 0, len(s.Languages)+len(s.Frontend)+len(s.DevOps)+len(s.CloudAndSec))
	out = append(out, s.Languages...)
	out = append(out, s.Frontend...)
	out = append(out, s.DevOps...)
	out = append(out, s.CloudAndSec...)
	return out
}

// Project is a showcased piece of work.
type Project struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	ImageURL    string   `yaml:"image_url"`
	Category    string   `yaml:"category"`
	LiveURL     string   `yaml:"live_url"`
	GithubURL   string   `yaml:"github_url"`

	DescriptionHTML template.HTML `yaml:"-"`
}

// Experience is one entry of the professional timeline.
type Experience struct {
	ID          string   `yaml:"id"`
	Role        string   `yaml:"role"`
	Company     string   `yaml:"company"`
	Period      string   `yaml:"period"`
	Description []string `yaml:"description"`
}

// Testimonial is a quote from a client or collaborator.
type Testimonial struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
	Avatar string `yaml:"avatar"`
}

// ContactSection is the copy around the contact form.
type ContactSection struct {
	SectionIntro `yaml:",inline"`
	Info         string `yaml:"info"`
	Email        string `yaml:"email"`
	Location     string `yaml:"location"`
}

// SocialLink is an outbound profile link.
type SocialLink struct {
	Icon  string `yaml:"icon"`
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
}

// Footer holds the closing credit line.
type Footer struct {
	Credit string `yaml:"credit"`
}

// SectionIDs are the in-page anchors, in render order. They are the only
// additional "routes" besides /.
var SectionIDs = []string{"about", "skills", "projects", "experience", "testimonials", "contact"}
