package catalog

import (
	"time"

	"github.com/arundev/portfolio-api/internal/entity"
)

func seedProjects(now time.Time) []entity.Project {
	return []entity.Project{
		{
			ID:          "1",
			Title:       "Amazon Clone",
			Category:    "E-commerce Platform",
			Description: "Full-featured e-commerce platform with shopping cart, payment integration, and user authentication. Built with modern JavaScript and responsive design principles.",
			Tech:        []string{"JavaScript", "HTML5", "CSS3", "LocalStorage", "Responsive Design"},
			GitHub:      "https://github.com/ArunDev-07",
			Demo:        "https://arun-amazon-clone.netlify.app",
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Title:       "Movie Discovery App",
			Category:    "Entertainment Platform",
			Description: "Interactive movie discovery application with TMDB API integration, search functionality, and detailed movie information with trailers.",
			Tech:        []string{"React JS", "TMDB API", "Tailwind CSS", "React Router", "Axios"},
			GitHub:      "https://github.com/ArunDev-07/Movie-App.git",
			Demo:        "https://arun-movie-app.netlify.app",
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          "3",
			Title:       "Weather Forecast App",
			Category:    "Weather Service",
			Description: "Real-time weather application with location-based forecasting, 5-day predictions, and interactive weather maps.",
			Tech:        []string{"React JS", "OpenWeather API", "Geolocation API", "Chart.js"},
			GitHub:      "https://github.com/ArunDev-07/Weather-App",
			Demo:        "https://arun-weather-app.netlify.app",
			Featured:    false,
			CreatedAt:   now,
		},
		{
			ID:          "4",
			Title:       "Currency Converter",
			Category:    "Financial Tool",
			Description: "Real-time currency conversion application with historical data, multiple currencies, and exchange rate trends.",
			Tech:        []string{"React JS", "Exchange Rate API", "Chart.js", "Material-UI"},
			GitHub:      "https://github.com/ArunDev-07/Currency-Converter",
			Demo:        "https://arun-currency-converter.netlify.app",
			Featured:    false,
			CreatedAt:   now,
		},
		{
			ID:          "5",
			Title:       "CRUD Task Manager",
			Category:    "Data Management",
			Description: "Complete task management application with CRUD operations, filtering, sorting, and data persistence.",
			Tech:        []string{"React JS", "Context API", "LocalStorage", "React Hooks"},
			GitHub:      "https://github.com/ArunDev-07/CRUD-App",
			Demo:        "https://arun-task-manager.netlify.app",
			Featured:    false,
			CreatedAt:   now,
		},
	}
}

func seedSkills() []entity.Skill {
	return []entity.Skill{
		{Name: "React JS", Level: 90, Category: "Frontend"},
		{Name: "JavaScript", Level: 85, Category: "Frontend"},
		{Name: "HTML", Level: 95, Category: "Frontend"},
		{Name: "CSS", Level: 92, Category: "Frontend"},
		{Name: "TypeScript", Level: 75, Category: "Frontend"},
		{Name: "Tailwind CSS", Level: 88, Category: "Frontend"},
		{Name: "Python", Level: 82, Category: "Backend"},
		{Name: "FastAPI", Level: 78, Category: "Backend"},
		{Name: "MySQL", Level: 80, Category: "Database"},
		{Name: "Git/GitHub", Level: 85, Category: "Tools"},
	}
}

func seedExperiences() []entity.Experience {
	return []entity.Experience{
		{
			ID:          "1",
			Title:       "Full Stack Developer Intern",
			Company:     "VDart",
			Location:    "Trichy, Tamil Nadu",
			Period:      "2024 - Present",
			Description: "Working as a Full Stack Developer, building scalable web applications using React.js and modern web technologies. Collaborating with cross-functional teams to deliver high-quality solutions.",
			Type:        "internship",
			Achievements: []string{
				"Developed responsive web applications using React JS",
				"Implemented RESTful APIs with Python backend",
				"Collaborated with design team for UI/UX improvements",
				"Participated in code reviews and agile development",
			},
		},
		{
			ID:          "2",
			Title:       "Web Development Intern",
			Company:     "Learnflu",
			Location:    "Online",
			Period:      "2024",
			Description: "Worked with React JS and API integrations. Assisted in developing cross-platform websites and gained hands-on experience with modern web development practices.",
			Type:        "internship",
			Achievements: []string{
				"Built cross-platform websites using React JS",
				"Integrated third-party APIs for enhanced functionality",
				"Optimized website performance and user experience",
				"Collaborated with remote development team",
			},
		},
		{
			ID:          "3",
			Title:       "Generative AI Workshop",
			Company:     "Tech Conference",
			Location:    "Bangalore",
			Period:      "2025",
			Description: "Participated in intensive workshop on Generative AI, learning to create chatbots using cutting-edge AI technologies and machine learning frameworks.",
			Type:        "workshop",
			Achievements: []string{
				"Learned chatbot development using Generative AI",
				"Implemented AI-powered conversation systems",
				"Studied machine learning frameworks",
				"Networked with AI professionals",
			},
		},
	}
}

func seedServices() []entity.Service {
	return []entity.Service{
		{
			Title:       "Frontend Development",
			Description: "Building responsive and interactive user interfaces with React, JavaScript, and modern CSS frameworks.",
			Features:    []string{"React JS Development", "HTML5 & CSS3", "Interactive UI/UX", "Performance Optimization"},
		},
		{
			Title:       "Backend Development",
			Description: "Developing robust server-side applications with Python, FastAPI, and database management.",
			Features:    []string{"Python & FastAPI", "RESTful APIs", "Database Design", "Server Configuration"},
		},
		{
			Title:       "Full Stack Solutions",
			Description: "End-to-end web application development from concept to deployment.",
			Features:    []string{"Complete Web Apps", "API Integration", "Database Management", "Deployment & Hosting"},
		},
	}
}

func seedFAQ() []entity.FAQ {
	return []entity.FAQ{
		{
			Question: "What technologies do you specialize in?",
			Answer:   "I specialize in React JS, JavaScript, TypeScript, Python, FastAPI, and modern web technologies. I'm passionate about building responsive, user-friendly applications with clean, maintainable code.",
		},
		{
			Question: "How do you approach new projects?",
			Answer:   "I start by understanding the requirements thoroughly, then plan the architecture, choose appropriate technologies, and follow agile development practices with regular testing and client feedback.",
		},
		{
			Question: "What's your experience with full-stack development?",
			Answer:   "I have hands-on experience with both frontend (React, JavaScript) and backend (Python, FastAPI) development, working on complete web applications from database design to user interface.",
		},
		{
			Question: "Do you work with teams or independently?",
			Answer:   "I'm comfortable working both independently and as part of a team. I've collaborated with cross-functional teams during my internships and have experience with version control and agile methodologies.",
		},
	}
}

func seedPersonalInfo() entity.PersonalInfo {
	return entity.PersonalInfo{
		Name:     "Arun G",
		Title:    "Python Full Stack Developer",
		Email:    "arunaakash675@gmail.com",
		Phone:    "+91 7305096778",
		Location: "Coimbatore, Tamil Nadu",
		GitHub:   "https://github.com/ArunDev-07",
		LinkedIn: "https://www.linkedin.com/in/arun-g-87515a36b",
		Bio:      "Passionate Developer with expertise in React.js, JavaScript, and modern web development. Skilled in building responsive, user-friendly, and high-performance web applications. Currently pursuing B.E. in Computer Science and Engineering at Hindusthan College of Engineering and Technology.",
	}
}

func seedStats() entity.Stats {
	return entity.Stats{
		YearsExperience:    "2+",
		ProjectsCompleted:  "15+",
		Technologies:       "8+",
		ClientSatisfaction: "100%",
	}
}
