package course

import "strings"

// Catalog is the read-only list of courses open for enrollment.
type Catalog struct {
	courses []Course
}

func NewCatalog(courses ...Course) *Catalog {
	return &Catalog{courses: courses}
}

// DefaultCatalog returns the built-in course catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultCourses()...)
}

// All returns a copy of every catalog course, in catalog order.
func (c *Catalog) All() []Course {
	all := make([]Course, len(c.courses))
	for i, crs := range c.courses {
		all[i] = crs.clone()
	}
	return all
}

// Get returns the course with the given id or ErrNotFound.
func (c *Catalog) Get(id string) (Course, error) {
	for _, crs := range c.courses {
		if crs.ID == id {
			return crs.clone(), nil
		}
	}
	return Course{}, ErrNotFound
}

// Search returns the courses whose title, category, description or instructor contain query.
// The match is case-insensitive; a blank query returns the whole catalog.
func (c *Catalog) Search(query string) []Course {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.All()
	}
	found := make([]Course, 0)
	for _, crs := range c.courses {
		if crs.matches(query) {
			found = append(found, crs.clone())
		}
	}
	return found
}

func (c Course) clone() Course {
	if c.LearningMaterials != nil {
		c.LearningMaterials = append([]LearningMaterial(nil), c.LearningMaterials...)
	}
	return c
}

func defaultCourses() []Course {
	intro := LearningMaterial{Type: MaterialVideo, Title: "Module 1: Introduction", URL: "https://www.youtube.com/watch?v=example1"}
	concepts := LearningMaterial{Type: MaterialArticle, Title: "Core Concepts Explained", URL: "https://example.com/core-concepts"}
	practice := LearningMaterial{Type: MaterialVideo, Title: "Practical Applications", URL: "https://www.youtube.com/watch?v=example2"}

	return []Course{
		{
			ID:                "av101",
			Title:             "Blockchain Fundamentals",
			Description:       "Explore the core concepts of blockchain technology, cryptocurrencies, and smart contracts, building a solid foundation for decentralized applications.",
			Instructor:        "Dr. Rohan Gupta",
			Category:          "Technology",
			Duration:          "8 Weeks",
			ImageURL:          "https://picsum.photos/seed/blockchaintech/600/400",
			ImageHint:         "blockchain network",
			LearningMaterials: []LearningMaterial{intro, concepts},
		},
		{
			ID:                "av102",
			Title:             "Ethical Hacking & Cybersecurity",
			Description:       "Learn to identify and mitigate security vulnerabilities in web applications, networks, and systems through hands-on labs and real-world scenarios.",
			Instructor:        "Ms. Priya Sharma",
			Category:          "Technology",
			Duration:          "12 Weeks",
			ImageURL:          "https://picsum.photos/seed/cybersecurity/600/400",
			ImageHint:         "cyber security",
			LearningMaterials: []LearningMaterial{intro, concepts, practice},
		},
		{
			ID:                "av201",
			Title:             "Introduction to Graphic Design",
			Description:       "Master the fundamentals of visual communication, typography, color theory, and layout design using industry-standard tools like Adobe Photoshop and Illustrator.",
			Instructor:        "Prof. Aarav Patel",
			Category:          "Arts & Design",
			Duration:          "6 Weeks",
			ImageURL:          "https://picsum.photos/seed/graphicdesign/600/400",
			ImageHint:         "graphic design",
			LearningMaterials: []LearningMaterial{concepts, practice},
		},
		{
			ID:          "av301",
			Title:       "Mobile App Development with React Native",
			Description: "Build cross-platform mobile applications for iOS and Android using JavaScript and React Native, from basic UI to complex features and API integration.",
			Instructor:  "Mr. Vikram Singh",
			Category:    "Development",
			Duration:    "10 Weeks",
			ImageURL:    "https://picsum.photos/seed/appdevelopment/600/400",
			ImageHint:   "app development",
		},
		{
			ID:                "av401",
			Title:             "The Science of Well-being",
			Description:       "Learn about the psychological research behind happiness, resilience, and mindfulness. Implement practical strategies to improve your own well-being.",
			Instructor:        "Dr. Ananya Reddy",
			Category:          "Health & Science",
			Duration:          "4 Weeks",
			ImageURL:          "https://picsum.photos/seed/wellbeing/600/400",
			ImageHint:         "wellbeing meditation",
			LearningMaterials: []LearningMaterial{intro},
		},
		{
			ID:          "av501",
			Title:       "Advanced JavaScript Concepts",
			Description: "Deep dive into closures, prototypes, async/await, and other advanced JavaScript features to write more efficient and maintainable code.",
			Instructor:  "Dr. Ishaan Mehra",
			Category:    "Development",
			Duration:    "8 Weeks",
			ImageURL:    "https://picsum.photos/seed/javascriptcode/600/400",
			ImageHint:   "javascript code",
		},
		{
			ID:          "av601",
			Title:       "Data Visualization with D3.js",
			Description: "Learn to create interactive and compelling data visualizations for the web using the powerful D3.js library.",
			Instructor:  "Prof. Meera Iyer",
			Category:    "Data Science",
			Duration:    "7 Weeks",
			ImageURL:    "https://picsum.photos/seed/datacharts/600/400",
			ImageHint:   "data charts",
		},
		{
			ID:                "av701",
			Title:             "Introduction to Artificial Intelligence",
			Description:       "Gain a foundational understanding of AI concepts, machine learning algorithms, and their real-world applications.",
			Instructor:        "Dr. Arjun Kumar",
			Category:          "Technology",
			Duration:          "9 Weeks",
			ImageURL:          "https://picsum.photos/seed/ai/600/400",
			ImageHint:         "artificial intelligence",
			LearningMaterials: []LearningMaterial{intro, concepts, practice},
		},
	}
}
