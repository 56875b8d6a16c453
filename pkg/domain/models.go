package domain

// Typed shapes for the records each collection carries. The store itself
// stays generic; these types exist at the seed/serialization boundary so the
// rest of the code is not peppered with map literals.

// Course is an offered program or class.
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AgeGroup    string `json:"ageGroup"`
	Schedule    string `json:"schedule"`
	Capacity    int    `json:"capacity"`
	Image       string `json:"image"`
}

// StaffUser is a staff member shown on the site and manageable from the
// back office.
type StaffUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Student is an enrolled child.
type Student struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Program  string `json:"program"`
	Guardian string `json:"guardian"`
}

// ForumThread is a discussion topic.
type ForumThread struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
	Replies int    `json:"replies"`
}

// Certificate records a completion award.
type Certificate struct {
	ID        string `json:"id"`
	Student   string `json:"student"`
	Course    string `json:"course"`
	AwardedOn string `json:"awardedOn"`
}

// ProgressReport tracks a student's progress in a course.
type ProgressReport struct {
	ID      string `json:"id"`
	Student string `json:"student"`
	Course  string `json:"course"`
	Percent int    `json:"percent"`
	Notes   string `json:"notes"`
}

// GalleryItem is a hosted image with a caption.
type GalleryItem struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

func (c Course) Record() Record {
	return Record{
		"id": c.ID, "title": c.Title, "description": c.Description,
		"ageGroup": c.AgeGroup, "schedule": c.Schedule,
		"capacity": c.Capacity, "image": c.Image,
	}
}

func (u StaffUser) Record() Record {
	return Record{"id": u.ID, "name": u.Name, "email": u.Email, "role": u.Role}
}

func (s Student) Record() Record {
	return Record{
		"id": s.ID, "name": s.Name, "age": s.Age,
		"program": s.Program, "guardian": s.Guardian,
	}
}

func (f ForumThread) Record() Record {
	return Record{
		"id": f.ID, "title": f.Title, "author": f.Author,
		"content": f.Content, "replies": f.Replies,
	}
}

func (c Certificate) Record() Record {
	return Record{
		"id": c.ID, "student": c.Student, "course": c.Course,
		"awardedOn": c.AwardedOn,
	}
}

func (p ProgressReport) Record() Record {
	return Record{
		"id": p.ID, "student": p.Student, "course": p.Course,
		"percent": p.Percent, "notes": p.Notes,
	}
}

func (g GalleryItem) Record() Record {
	return Record{"id": g.ID, "url": g.URL, "caption": g.Caption}
}
