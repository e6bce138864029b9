package dto

import (
	"time"

	"studioe_backend/internals/features/content/model"
)

// ---------- Instructors ----------

type InstructorRequest struct {
	Name     string   `json:"name" validate:"required,min=2,max=255"`
	Bio      string   `json:"bio"`
	Styles   []string `json:"styles"`
	ImageURL string   `json:"image_url"`
	IsListed *bool    `json:"is_listed"`
}

type InstructorResponse struct {
	InstructorID string   `json:"instructor_id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Bio          string   `json:"bio"`
	Styles       []string `json:"styles"`
	ImageURL     string   `json:"image_url"`
}

func ToInstructorResponse(m model.InstructorModel) InstructorResponse {
	return InstructorResponse{
		InstructorID: m.InstructorID.String(),
		Name:         m.InstructorName,
		Slug:         m.InstructorSlug,
		Bio:          m.InstructorBio,
		Styles:       m.InstructorStyles,
		ImageURL:     m.InstructorImageURL,
	}
}

// ---------- Companies ----------

type CompanyRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description"`
	WebsiteURL  string `json:"website_url"`
	LogoURL     string `json:"logo_url"`
}

type CompanyResponse struct {
	CompanyID   string `json:"company_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	WebsiteURL  string `json:"website_url"`
	LogoURL     string `json:"logo_url"`
}

func ToCompanyResponse(m model.CompanyModel) CompanyResponse {
	return CompanyResponse{
		CompanyID:   m.CompanyID.String(),
		Name:        m.CompanyName,
		Slug:        m.CompanySlug,
		Description: m.CompanyDescription,
		WebsiteURL:  m.CompanyWebsiteURL,
		LogoURL:     m.CompanyLogoURL,
	}
}

// ---------- Classes ----------

type ClassRequest struct {
	CompanyID   *string `json:"company_id"`
	Title       string  `json:"title" validate:"required,min=2,max=255"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Weekday     *int    `json:"weekday" validate:"omitempty,min=0,max=6"`
	StartTime   string  `json:"start_time" validate:"omitempty,len=5"`
	EndTime     string  `json:"end_time" validate:"omitempty,len=5"`
	Approved    *bool   `json:"approved"`
}

type ClassResponse struct {
	ClassID     string           `json:"class_id"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	Weekday     int              `json:"weekday"`
	StartTime   string           `json:"start_time"`
	EndTime     string           `json:"end_time"`
	Approved    bool             `json:"approved"`
	Company     *CompanyResponse `json:"company,omitempty"`
}

func ToClassResponse(m model.ClassModel) ClassResponse {
	resp := ClassResponse{
		ClassID:     m.ClassID.String(),
		Title:       m.ClassTitle,
		Slug:        m.ClassSlug,
		Description: m.ClassDescription,
		Location:    m.ClassLocation,
		Weekday:     m.ClassWeekday,
		StartTime:   m.ClassStartTime,
		EndTime:     m.ClassEndTime,
		Approved:    m.ClassApproved,
	}
	if m.Company != nil {
		c := ToCompanyResponse(*m.Company)
		resp.Company = &c
	}
	return resp
}

// ---------- Testimonials ----------

type TestimonialRequest struct {
	Author      string `json:"author" validate:"required,min=2,max=255"`
	Quote       string `json:"quote" validate:"required"`
	IsPublished *bool  `json:"is_published"`
}

type TestimonialResponse struct {
	TestimonialID string `json:"testimonial_id"`
	Author        string `json:"author"`
	Quote         string `json:"quote"`
}

func ToTestimonialResponse(m model.TestimonialModel) TestimonialResponse {
	return TestimonialResponse{
		TestimonialID: m.TestimonialID.String(),
		Author:        m.TestimonialAuthor,
		Quote:         m.TestimonialQuote,
	}
}

// ---------- Events ----------

type EventRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=255"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Date        string  `json:"date" validate:"required"`
	DateEnd     *string `json:"date_end"`
	StartTime   string  `json:"start_time" validate:"omitempty,len=5"`
	EndTime     string  `json:"end_time" validate:"omitempty,len=5"`
	Approved    *bool   `json:"approved"`
	ImageURL    *string `json:"image_url"`
}

type EventResponse struct {
	EventID     string  `json:"event_id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Date        string  `json:"date"`
	DateEnd     *string `json:"date_end,omitempty"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Approved    bool    `json:"approved"`
	ImageURL    *string `json:"image_url,omitempty"`
}

func ToEventResponse(m model.EventModel) EventResponse {
	resp := EventResponse{
		EventID:     m.EventID.String(),
		Title:       m.EventTitle,
		Slug:        m.EventSlug,
		Description: m.EventDescription,
		Location:    m.EventLocation,
		Date:        m.EventDate.Format("2006-01-02"),
		StartTime:   m.EventStartTime,
		EndTime:     m.EventEndTime,
		Approved:    m.EventApproved,
		ImageURL:    m.EventImageURL,
	}
	if m.EventDateEnd != nil {
		s := m.EventDateEnd.Format("2006-01-02")
		resp.DateEnd = &s
	}
	return resp
}

// ---------- Blog posts ----------

type BlogPostRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=255"`
	Excerpt     string   `json:"excerpt"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
	CoverURL    string   `json:"cover_url"`
	AuthorName  string   `json:"author_name"`
	IsPublished *bool    `json:"is_published"`
}

type BlogPostResponse struct {
	BlogPostID  string     `json:"blog_post_id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body,omitempty"`
	Tags        []string   `json:"tags"`
	CoverURL    string     `json:"cover_url"`
	AuthorName  string     `json:"author_name"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// ToBlogPostResponse includes the body; list endpoints use ToBlogPostSummary.
func ToBlogPostResponse(m model.BlogPostModel) BlogPostResponse {
	resp := ToBlogPostSummary(m)
	resp.Body = m.BlogPostBody
	return resp
}

func ToBlogPostSummary(m model.BlogPostModel) BlogPostResponse {
	return BlogPostResponse{
		BlogPostID:  m.BlogPostID.String(),
		Title:       m.BlogPostTitle,
		Slug:        m.BlogPostSlug,
		Excerpt:     m.BlogPostExcerpt,
		Tags:        m.BlogPostTags,
		CoverURL:    m.BlogPostCoverURL,
		AuthorName:  m.BlogPostAuthorName,
		PublishedAt: m.BlogPostPublishedAt,
	}
}

// ---------- RSVPs ----------

type RsvpResponse struct {
	EventRsvpID string    `json:"event_rsvp_id"`
	EventID     string    `json:"event_id"`
	CreatedAt   time.Time `json:"created_at"`

	Event *EventResponse `json:"event,omitempty"`
}

func ToRsvpResponse(m model.EventRsvpModel, event *model.EventModel) RsvpResponse {
	resp := RsvpResponse{
		EventRsvpID: m.EventRsvpID.String(),
		EventID:     m.EventRsvpEventID.String(),
		CreatedAt:   m.EventRsvpCreatedAt,
	}
	if event != nil {
		e := ToEventResponse(*event)
		resp.Event = &e
	}
	return resp
}
