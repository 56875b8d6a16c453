package storage

import "github.com/lilhale/sitestore/pkg/domain"

// defaultSettings is the site metadata a fresh profile starts with.
func defaultSettings() domain.Settings {
	return domain.Settings{
		SiteName:    "Lil' Hale Learners",
		Tagline:     "Where little minds grow big dreams",
		Description: "A nurturing early-learning center offering play-based programs for children aged 2-6.",
		Phone:       "(555) 014-2245",
		Email:       "hello@lilhalelearners.example",
		Address:     "14 Hale Street, Brookfield",
		SocialMedia: domain.SocialMedia{
			Facebook:  "https://facebook.com/lilhalelearners",
			Instagram: "https://instagram.com/lilhalelearners",
			Twitter:   "https://twitter.com/lilhalelearners",
			YouTube:   "https://youtube.com/@lilhalelearners",
		},
		Theme: domain.Theme{
			Primary:   "#f4a261",
			Secondary: "#2a9d8f",
			Accent:    "#e76f51",
		},
	}
}

// defaultDocument builds the seed document for a fresh profile. Every record
// id comes from newID so seed and runtime records share one id scheme.
func defaultDocument(newID func() string) *domain.Document {
	doc := domain.NewDocument()
	doc.Settings = defaultSettings()

	courses := []domain.Course{
		{Title: "Tiny Explorers", Description: "Sensory play and first words for our youngest learners.", AgeGroup: "2-3", Schedule: "Mon/Wed 9:00-11:00", Capacity: 10, Image: "https://images.example/courses/tiny-explorers.jpg"},
		{Title: "Story Seedlings", Description: "Early literacy through picture books and rhymes.", AgeGroup: "3-4", Schedule: "Tue/Thu 9:00-11:00", Capacity: 12, Image: "https://images.example/courses/story-seedlings.jpg"},
		{Title: "Number Sprouts", Description: "Counting, sorting, and pattern games.", AgeGroup: "4-5", Schedule: "Mon/Wed 13:00-15:00", Capacity: 12, Image: "https://images.example/courses/number-sprouts.jpg"},
		{Title: "Little Scientists", Description: "Hands-on experiments with water, light, and plants.", AgeGroup: "4-6", Schedule: "Fri 9:00-12:00", Capacity: 14, Image: "https://images.example/courses/little-scientists.jpg"},
		{Title: "Music & Movement", Description: "Singing, rhythm instruments, and dance.", AgeGroup: "2-6", Schedule: "Tue/Thu 13:00-14:30", Capacity: 16, Image: "https://images.example/courses/music-movement.jpg"},
		{Title: "Kindergarten Prep", Description: "School-readiness skills for rising kindergartners.", AgeGroup: "5-6", Schedule: "Mon-Fri 9:00-12:00", Capacity: 18, Image: "https://images.example/courses/kindergarten-prep.jpg"},
	}
	for _, c := range courses {
		c.ID = newID()
		doc.Collections[domain.CollCourses] = append(doc.Collections[domain.CollCourses], c.Record())
	}

	users := []domain.StaffUser{
		{Name: "Maria Hale", Email: "maria@lilhalelearners.example", Role: "Director"},
		{Name: "Devon Park", Email: "devon@lilhalelearners.example", Role: "Lead Teacher"},
		{Name: "Aisha Osei", Email: "aisha@lilhalelearners.example", Role: "Teacher"},
	}
	for _, u := range users {
		u.ID = newID()
		doc.Collections[domain.CollUsers] = append(doc.Collections[domain.CollUsers], u.Record())
	}

	students := []domain.Student{
		{Name: "Ellie Tran", Age: 4, Program: "Number Sprouts", Guardian: "Minh Tran"},
		{Name: "Noah Brooks", Age: 5, Program: "Kindergarten Prep", Guardian: "Dana Brooks"},
	}
	for _, s := range students {
		s.ID = newID()
		doc.Collections[domain.CollStudents] = append(doc.Collections[domain.CollStudents], s.Record())
	}

	forums := []domain.ForumThread{
		{Title: "Welcome to the parent forum!", Author: "Maria Hale", Content: "Introduce yourself and say hello.", Replies: 4},
		{Title: "Snack ideas for picky eaters", Author: "Dana Brooks", Content: "What do your kids actually eat?", Replies: 11},
	}
	for _, f := range forums {
		f.ID = newID()
		doc.Collections[domain.CollForums] = append(doc.Collections[domain.CollForums], f.Record())
	}

	certificates := []domain.Certificate{
		{Student: "Ellie Tran", Course: "Story Seedlings", AwardedOn: "2026-05-28"},
		{Student: "Noah Brooks", Course: "Number Sprouts", AwardedOn: "2026-06-12"},
	}
	for _, c := range certificates {
		c.ID = newID()
		doc.Collections[domain.CollCertificates] = append(doc.Collections[domain.CollCertificates], c.Record())
	}

	progress := []domain.ProgressReport{
		{Student: "Ellie Tran", Course: "Number Sprouts", Percent: 60, Notes: "Counting to 20 confidently."},
		{Student: "Noah Brooks", Course: "Kindergarten Prep", Percent: 45, Notes: "Letter recognition improving."},
	}
	for _, p := range progress {
		p.ID = newID()
		doc.Collections[domain.CollProgress] = append(doc.Collections[domain.CollProgress], p.Record())
	}

	gallery := []domain.GalleryItem{
		{URL: "https://images.example/gallery/garden-day.jpg", Caption: "Garden day in the sprout patch"},
		{URL: "https://images.example/gallery/paint-party.jpg", Caption: "Finger paint party"},
		{URL: "https://images.example/gallery/story-time.jpg", Caption: "Friday story time"},
	}
	for _, g := range gallery {
		g.ID = newID()
		doc.Collections[domain.CollGallery] = append(doc.Collections[domain.CollGallery], g.Record())
	}

	return doc
}
