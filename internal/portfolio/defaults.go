package portfolio

// Default returns the built-in content payload. A YAML content file given to
// Load overrides it wholesale.
func Default() *Data {
	return &Data{
		NavLinks: []NavLink{
			{Name: "About", Href: "#about"},
			{Name: "Skills", Href: "#skills"},
			{Name: "Projects", Href: "#projects"},
			{Name: "Experience", Href: "#experience"},
			{Name: "Testimonials", Href: "#testimonials"},
		},
		Work:  "Available for work",
		Name:  "Dinakaran Yogidasan",
		Title: "Frontend Developer & DevOps Engineer",
		Bio: "building high-performance, scalable web applications with pixel-perfect UI " +
			"and production-ready architecture. I specialize in modern React, frontend " +
			"performance optimization, and CI/CD-driven deployments, delivering reliable, " +
			"cloud-ready products that scale efficiently.",
		JobTitles: []string{
			"ReactJs Developer",
			"Front End Developer",
			"DevOps Engineer",
			"Software Developer",
			"UI/UX Designer",
		},
		Languages: []LanguageChip{
			{Label: "Js", Name: "JavaScript"},
			{Label: "Re", Name: "React"},
			{Label: "TS", Name: "TypeScript"},
		},
		About: AboutSection{
			SectionIntro: SectionIntro{
				Title:    "Bridging the gap between",
				SubTitle: "Design & Deployment",
				TitleBio: "Full-stack developer combining creative design with robust infrastructure",
			},
			Bio: "I'm a frontend-focused engineer working at the intersection of React.js " +
				"development and cloud-native infrastructure. I build scalable, production-ready " +
				"web applications using modern JavaScript (ES6+), with a strong focus on " +
				"performance, accessibility, and user experience.",
			SubBio: "On the frontend, I've improved page load times by 30-40% through " +
				"code-splitting, memoization, and efficient state management, while maintaining " +
				"clean, maintainable component architectures.",
			Description: "Beyond the UI, I apply DevOps best practices to ensure reliability and " +
				"automation across the delivery pipeline. I've designed and maintained CI/CD " +
				"workflows using GitHub Actions, reducing manual deployment effort by 50%+ and " +
				"enabling consistent, repeatable releases.",
			ShortDescription: "I have hands-on experience deploying and operating applications on " +
				"AWS and GCP, where I've improved environment reliability and reduced " +
				"deployment-related issues by introducing infrastructure-as-code, automated " +
				"rollbacks, and standardized release processes. My focus is on building resilient " +
				"systems that scale smoothly from development to production.",
		},
		FeatureCards: []FeatureCard{
			{Icon: "zap", Title: "Performance", Desc: "Obsessed with speed"},
			{Icon: "cpu", Title: "Automated", Desc: "CI/CD driven"},
			{Icon: "globe", Title: "Scalable", Desc: "Global architecture"},
		},
		Skills: SkillsSection{
			SectionIntro: SectionIntro{
				Title:    "Technical Arsenal",
				SubTitle: "Technologies & Tools",
				TitleBio: "A comprehensive toolkit spanning full-stack development, cloud infrastructure, and security compliance.",
			},
			Languages: []string{"TypeScript", "JavaScript (ES6+)", "Java", "HTML5", "CSS3"},
			Frontend:  []string{"ReactJS", "Redux Toolkit", "Material UI", "Tailwind CSS", "Bootstrap", "Preline", "Figma"},
			DevOps:    []string{"GitHub Actions", "Jenkins", "Git", "GitHub", "Docker"},
			CloudAndSec: []string{
				"AWS", "GCP", "SonarQube", "Checkmarx", "Dynatrace",
				"42Crunch", "Fossa", "Cycode", "Cypress",
			},
		},
		ProjectsIntro: SectionIntro{
			Title:    "Showcase Projects",
			SubTitle: "Crafted with Code & Creativity",
			TitleBio: "Explore my latest work in full-stack development, cloud infrastructure, and modern web technologies",
		},
		Projects: []Project{
			{
				ID:          "1",
				Title:       "Nebula Dashboard",
				Description: "A real-time analytics dashboard for cloud metrics using React, D3.js, and WebSockets.",
				Tags:        []string{"React", "TypeScript", "D3.js", "AWS Lambda"},
				ImageURL:    "https://picsum.photos/600/400?random=1",
				Category:    "Frontend",
				LiveURL:     "#",
				GithubURL:   "#",
			},
			{
				ID:          "2",
				Title:       "KubeDeployer CLI",
				Description: "Automated CI/CD pipeline generator for Kubernetes clusters using Go and Terraform.",
				Tags:        []string{"Go", "Terraform", "Docker", "K8s"},
				ImageURL:    "https://picsum.photos/600/400?random=3",
				Category:    "DevOps",
				GithubURL:   "#",
			},
			{
				ID:          "3",
				Title:       "E-Commerce Microservices",
				Description: "Fully containerized e-commerce platform with event-driven architecture.",
				Tags:        []string{"Node.js", "RabbitMQ", "Docker Compose", "React"},
				ImageURL:    "https://picsum.photos/600/400?random=5",
				Category:    "Fullstack",
				LiveURL:     "#",
				GithubURL:   "#",
			},
			{
				ID:          "4",
				Title:       "InfraGuard",
				Description: "Infrastructure as Code drift detection tool utilizing OPA Policy.",
				Tags:        []string{"Python", "OPA", "GitHub Actions"},
				ImageURL:    "https://picsum.photos/600/400?random=8",
				Category:    "DevOps",
				GithubURL:   "#",
			},
		},
		ExperienceIntro: SectionIntro{
			Title:    "Professional Journey",
			SubTitle: "Career Path",
			TitleBio: "A timeline of my contributions to high-impact teams and complex engineering challenges.",
		},
		Experience: []Experience{
			{
				ID:      "1",
				Role:    "ReactJS Developer",
				Company: "VML",
				Period:  "Dec 2023 - Present",
				Description: []string{
					"Developed PDF download & checkout flows with reusable components and Redux",
					"Automated deployments with GitHub Actions & Jenkins, reducing release time by 30%",
					"Integrated security & quality tools into CI/CD pipelines (SonarQube, Checkmarx, Dynatrace, etc.)",
					"Deployed services on GCP Cloud Run and managed assets via Cloud Storage",
				},
			},
			{
				ID:      "2",
				Role:    "Software Engineer",
				Company: "Innova Solutions",
				Period:  "Jun 2022 - Dec 2023",
				Description: []string{
					"Built interactive ReactJS UIs from UX wireframes, boosting user engagement by 20%",
					"Implemented Redux Toolkit for scalable and consistent state management",
					"Deployed applications on AWS EC2, managing assets via S3 and CloudFront",
					"Implemented comprehensive component library with Storybook.",
				},
			},
			{
				ID:      "3",
				Role:    "Technical Associate",
				Company: "Genpact",
				Period:  "Oct 2021 - Jun 2022",
				Description: []string{
					"Designed a user-friendly UI to streamline sales and customer data entry, improving efficiency by 25%",
					"Built a dynamic customer database for managing client details and purchase history",
					"Deployed applications on Apache Tomcat with seamless SQL Server 2020 integration",
					"Collaborated with cross-functional teams to deliver reliable internal tools",
				},
			},
		},
		TestimonialsIntro: SectionIntro{
			Title:    "What Clients Say",
			SubTitle: "Testimonials",
			TitleBio: "Real stories from satisfied clients and collaborators",
		},
		Testimonials: []Testimonial{
			{
				Text: "I hired Dinakaran as a React.js developer, and it quickly became clear he " +
					"brought more than just strong technical skills - his positive attitude, " +
					"adaptability, and eagerness to learn stood out from day one. When we needed a " +
					"DevOps engineer, I gave Dinakaran the opportunity to transition into the role, " +
					"and he made the switch seamlessly. He quickly got to grips with GitHub Actions, " +
					"static analysis, and security tools, and consistently delivered high-quality " +
					"work. He was also highly proactive, reaching out across client teams to " +
					"identify needs and get things done efficiently. In addition to his technical " +
					"ability, Dinakaran had excellent client-facing presentation skills. He was " +
					"confident, clear, and professional in his communication - a real asset in any " +
					"cross-team or stakeholder-facing context. Dinakaran brings drive, versatility, " +
					"and professionalism to everything he does. I wouldn't hesitate to work with " +
					"him again.",
				Author: "Paul Smout",
				Role:   "Software Technology Director/Technology Manager",
				Avatar: "/static/images/logo.svg",
			},
		},
		Contact: ContactSection{
			SectionIntro: SectionIntro{
				Title:    "Get in Touch",
				SubTitle: "Let's Work Together",
				TitleBio: "I'm excited to collaborate on innovative projects and bring ideas to life.",
			},
			Info:     "Contact Info",
			Email:    "dannydina28@gmail.com",
			Location: "Chennai, India",
		},
		SocialLinks: []SocialLink{
			{Icon: "github", Href: "https://github.com/Dinakaran-Yogidasan", Label: "GitHub"},
			{Icon: "linkedin", Href: "https://www.linkedin.com/in/dinakarany2899/", Label: "LinkedIn"},
		},
		Footer: Footer{
			Credit: "Merging artistic interface design with architectural engineering rigor.",
		},
	}
}
