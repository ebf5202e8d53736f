// Package catalog provides the built-in course catalog and major lists.
// The fixtures double as the development dataset and the fallback when no
// database is configured.
package catalog

import "github.com/iumatch/coursematch-backend/internal/model"

// Majors lists the majors a student can declare, grouped by school.
func Majors() map[string][]string {
	return map[string][]string{
		"luddy": {
			"Computer Science (B.S.)",
			"Informatics (B.S.)",
			"Intelligent Systems Engineering (B.S.)",
			"Data Science (B.S.)",
			"Cybersecurity Risk Management (B.S.)",
			"Media Arts and Science (B.S.)",
			"Information and Library Science (B.S.)",
			"Human-Computer Interaction Design (B.S.)",
			"Bioinformatics (B.S.)",
			"Complex Systems (B.S.)",
		},
		"kelley": {
			"Accounting (B.S.)",
			"Business Analytics (B.S.)",
			"Economics (B.S.)",
			"Entrepreneurship & Corporate Innovation (B.S.)",
			"Finance (B.S.)",
			"International Business (B.S.)",
			"Law, Ethics & Decision-Making (Co-major)",
			"Management (B.S.)",
			"Marketing (B.S.)",
			"Operations Management (B.S.)",
			"Real Estate (B.S.)",
			"Supply Chain Management (B.S.)",
			"Sustainable & Responsible Business (Co-major)",
			"Technology Management (B.S.)",
		},
	}
}

// Fixtures returns the built-in course catalog. Difficulty is derived
// rather than stored so it stays consistent with the classifier.
func Fixtures() []model.Course {
	courses := []model.Course{
		{
			ID:          "BUS-T175",
			Title:       "Introductory Business",
			Description: "Overview of business fundamentals and career exploration.",
			Credits:     1,
			AvgGPA:      3.8,
			Instructor:  "Dr. Rodriguez",
			Fulfills:    []string{"Business Foundation", "iCore Prerequisites"},
			Level:       100,
			Term:        "Fall 2026",
			School:      model.SchoolKelley,
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Monday"},
				StartTime: "8:00 AM",
				EndTime:   "8:50 AM",
				Location:  "KMC 1001",
			},
		},
		{
			ID:          "BUS-C104",
			Title:       "Business Presentations",
			Description: "Development of effective business presentation skills.",
			Credits:     3,
			AvgGPA:      3.6,
			Instructor:  "Prof. Davis",
			Fulfills:    []string{"Communication Skills", "iCore Prerequisites"},
			Level:       100,
			Term:        "Fall 2026",
			School:      model.SchoolKelley,
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Thursday"},
				StartTime: "2:00 PM",
				EndTime:   "3:15 PM",
				Location:  "KMC 2002",
			},
		},
		{
			ID:          "BUS-A100",
			Title:       "Basic Accounting Skills",
			Description: "Introduction to accounting fundamentals and business applications.",
			Credits:     1,
			AvgGPA:      3.2,
			Instructor:  "Dr. Smith",
			Fulfills:    []string{"Business Foundation"},
			Level:       100,
			Term:        "Fall 2026",
			School:      model.SchoolKelley,
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Tuesday"},
				StartTime: "2:30 PM",
				EndTime:   "3:20 PM",
				Location:  "KMC 1010",
			},
		},
		{
			ID:          "ECON-B251",
			Title:       "Microeconomics",
			Description: "Principles of microeconomic theory and applications.",
			Credits:     3,
			AvgGPA:      3.0,
			Instructor:  "Dr. Smith",
			Fulfills:    []string{"Economics Requirement", "Other Required", "Social & Historical Studies"},
			Level:       200,
			Term:        "Fall 2026",
			School:      model.SchoolKelley,
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Tuesday"},
				StartTime: "10:00 AM",
				EndTime:   "11:15 AM",
				Location:  "KMC 3020",
			},
		},
		{
			ID:            "BUS-K303",
			Title:         "Technology and Business Analysis",
			Description:   "Information systems concepts applied to business decision making.",
			Credits:       3,
			AvgGPA:        3.1,
			Instructor:    "Prof. Nguyen",
			Fulfills:      []string{"Major Requirement", "Information Systems"},
			Level:         300,
			Term:          "Fall 2026",
			School:        model.SchoolKelley,
			Prerequisites: []string{"BUS-K201"},
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Monday", "Wednesday"},
				StartTime: "4:00 PM",
				EndTime:   "5:15 PM",
				Location:  "KMC 2058",
			},
		},
		{
			ID:          "CSCI-C211",
			Title:       "Introduction to Computer Science",
			Description: "A first course in programming and computational problem solving.",
			Credits:     4,
			AvgGPA:      3.2,
			Instructor:  "Dr. Haynes",
			Fulfills:    []string{"CS Foundation"},
			Level:       200,
			Term:        "Fall 2026",
			School:      model.SchoolLuddy,
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Monday", "Wednesday", "Friday"},
				StartTime: "10:00 AM",
				EndTime:   "10:50 AM",
				Location:  "Luddy Hall 1106",
			},
		},
		{
			ID:            "CSCI-C343",
			Title:         "Data Structures",
			Description:   "Systematic study of data structures and the algorithms that use them.",
			Credits:       4,
			AvgGPA:        2.9,
			Instructor:    "Prof. Siek",
			Fulfills:      []string{"CS Core", "Major Requirement"},
			Level:         300,
			Term:          "Fall 2026",
			School:        model.SchoolLuddy,
			Prerequisites: []string{"CSCI-C211", "CSCI-C241"},
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Tuesday", "Thursday"},
				StartTime: "1:00 PM",
				EndTime:   "2:15 PM",
				Location:  "Luddy Hall 0119",
			},
		},
		{
			ID:          "INFO-I101",
			Title:       "Introduction to Informatics",
			Description: "Problem solving with information technology across disciplines.",
			Credits:     3,
			AvgGPA:      3.4,
			Instructor:  "Dr. Brown",
			Fulfills:    []string{"Informatics Foundation"},
			Level:       100,
			Term:        "Fall 2026",
			School:      model.SchoolLuddy,
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Tuesday", "Thursday"},
				StartTime: "2:30 PM",
				EndTime:   "3:45 PM",
				Location:  "Luddy Hall 0112",
			},
		},
		{
			ID:            "DSCI-D321",
			Title:         "Data Representation",
			Description:   "Modeling, storing and wrangling data for analysis pipelines.",
			Credits:       3,
			AvgGPA:        3.3,
			Instructor:    "Prof. Park",
			Fulfills:      []string{"Data Science Core", "Major Requirement"},
			Level:         300,
			Term:          "Fall 2026",
			School:        model.SchoolLuddy,
			Prerequisites: []string{"INFO-I123"},
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Wednesday"},
				StartTime: "3:00 PM",
				EndTime:   "4:15 PM",
				Location:  "Myles Brand Hall E124",
			},
		},
		{
			ID:          "ENGR-E101",
			Title:       "Innovation and Design",
			Description: "Hands-on introduction to intelligent systems engineering.",
			Credits:     3,
			AvgGPA:      3.5,
			Instructor:  "Dr. Lasassmeh",
			Fulfills:    []string{"Engineering Foundation"},
			Level:       100,
			Term:        "Fall 2026",
			School:      model.SchoolLuddy,
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Monday", "Wednesday"},
				StartTime: "9:00 AM",
				EndTime:   "10:15 AM",
				Location:  "Luddy Hall 2132",
			},
		},
		{
			ID:          "ENG-W131",
			Title:       "Elementary Composition",
			Description: "Development of writing skills through practice and instruction.",
			Credits:     3,
			AvgGPA:      3.3,
			Instructor:  "Dr. Brown",
			Fulfills:    []string{"General Education", "iCore Prerequisites", "English Composition"},
			Level:       100,
			Term:        "Fall 2026",
			School:      model.SchoolGeneral,
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Monday", "Wednesday"},
				StartTime: "11:00 AM",
				EndTime:   "12:15 PM",
				Location:  "BH 340",
			},
		},
		{
			ID:          "CMLT-C110",
			Title:       "Introduction to College Writing",
			Description: "Basic college-level writing skills and composition.",
			Credits:     3,
			AvgGPA:      3.5,
			Instructor:  "Prof. Martinez",
			Fulfills:    []string{"General Education", "iCore Prerequisites", "English Composition"},
			Level:       100,
			Term:        "Fall 2026",
			School:      model.SchoolGeneral,
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Wednesday"},
				StartTime: "12:00 PM",
				EndTime:   "1:15 PM",
				Location:  "BH 245",
			},
		},
		{
			ID:          "HPER-P150",
			Title:       "Living Well",
			Description: "Health and wellness concepts for lifelong healthy living.",
			Credits:     2,
			AvgGPA:      3.7,
			Instructor:  "Prof. Okafor",
			Fulfills:    []string{"General Education", "Health & Wellness"},
			Level:       100,
			Term:        "Fall 2026",
			School:      model.SchoolGeneral,
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Friday"},
				StartTime: "4:00 PM",
				EndTime:   "5:15 PM",
				Location:  "HPER 112",
			},
		},
		{
			ID:          "MATH-M119",
			Title:       "Brief Survey of Calculus",
			Description: "Introduction to calculus concepts for business students.",
			Credits:     3,
			AvgGPA:      2.9,
			Instructor:  "Prof. Wilson",
			Fulfills:    []string{"Math Requirement", "iCore Prerequisites", "Mathematical Modeling"},
			Level:       100,
			Term:        "Fall 2026",
			School:      model.SchoolGeneral,
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Monday", "Wednesday", "Friday"},
				StartTime: "9:00 AM",
				EndTime:   "9:50 AM",
				Location:  "SY 103",
			},
		},
		{
			ID:            "MATH-M211",
			Title:         "Calculus I",
			Description:   "Limits, derivatives and integrals of elementary functions.",
			Credits:       4,
			AvgGPA:        2.9,
			Instructor:    "Prof. Johnson",
			Fulfills:      []string{"Math Requirement", "Mathematical Modeling"},
			Level:         200,
			Term:          "Fall 2026",
			School:        model.SchoolGeneral,
			Prerequisites: []string{"MATH-M119"},
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Monday", "Wednesday", "Friday"},
				StartTime: "9:00 AM",
				EndTime:   "9:55 AM",
				Location:  "SW 222",
			},
		},
		{
			ID:            "STAT-S301",
			Title:         "Applied Statistical Methods",
			Description:   "Statistical inference and regression for applied work.",
			Credits:       3,
			AvgGPA:        3.1,
			Instructor:    "Dr. Trosset",
			Fulfills:      []string{"Statistics Requirement", "Other Required"},
			Level:         300,
			Term:          "Fall 2026",
			School:        model.SchoolGeneral,
			Prerequisites: []string{"MATH-M119"},
			MeetingTimes: &model.MeetingTimes{
				Days:      []string{"Tuesday", "Thursday"},
				StartTime: "11:00 AM",
				EndTime:   "12:15 PM",
				Location:  "BH 109",
			},
		},
	}

	for i := range courses {
		courses[i].Difficulty = model.DeriveDifficulty(courses[i].Level, courses[i].AvgGPA, courses[i].School)
	}
	return courses
}
