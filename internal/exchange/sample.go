// Package exchange converts structured data between Go values, JSON and XML
// and writes the results to files.
package exchange

type Profile struct {
	Name           string       `json:"name"`
	Age            int          `json:"age"`
	City           string       `json:"city"`
	Email          string       `json:"email"`
	IsEmployed     bool         `json:"is_employed"`
	Education      Education    `json:"education"`
	Skills         []Skill      `json:"skills"`
	WorkExperience []Job        `json:"work_experience"`
	Languages      []string     `json:"languages"`
	Certifications []string     `json:"certifications"`
	Availability   Availability `json:"availability"`
}

type Education struct {
	Undergraduate Degree `json:"undergraduate"`
	Graduate      Degree `json:"graduate"`
}

type Degree struct {
	University     string  `json:"university"`
	Degree         string  `json:"degree"`
	GraduationYear int     `json:"graduation_year"`
	GPA            float64 `json:"gpa"`
}

type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
	Years int    `json:"years"`
}

type Job struct {
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	Years            int      `json:"years"`
	Responsibilities []string `json:"responsibilities"`
}

type Availability struct {
	FullTime          bool `json:"full_time"`
	Remote            bool `json:"remote"`
	NoticePeriodWeeks int  `json:"notice_period_weeks"`
}

// Sample returns the profile used by the conversion demos. Certifications is
// nil and serializes as null.
func Sample() Profile {
	return Profile{
		Name:       "Alice Johnson",
		Age:        30,
		City:       "New York",
		Email:      "alice.johnson@example.com",
		IsEmployed: true,
		Education: Education{
			Undergraduate: Degree{University: "State University", Degree: "BSc Computer Science", GraduationYear: 2015, GPA: 3.7},
			Graduate:      Degree{University: "Tech Institute", Degree: "MSc Data Science", GraduationYear: 2018, GPA: 3.9},
		},
		Skills: []Skill{
			{Name: "Python", Level: "advanced", Years: 5},
			{Name: "Data Analysis", Level: "intermediate", Years: 4},
			{Name: "Machine Learning", Level: "intermediate", Years: 3},
		},
		WorkExperience: []Job{
			{
				Company:          "Tech Solutions Inc.",
				Role:             "Data Analyst",
				Years:            2,
				Responsibilities: []string{"Data cleaning", "Reporting", "Visualization"},
			},
			{
				Company:          "Innovatech",
				Role:             "Machine Learning Engineer",
				Years:            3,
				Responsibilities: []string{"Model development", "Feature engineering", "Deployment"},
			},
		},
		Languages: []string{"English", "Spanish"},
		Availability: Availability{
			FullTime:          true,
			Remote:            false,
			NoticePeriodWeeks: 4,
		},
	}
}
