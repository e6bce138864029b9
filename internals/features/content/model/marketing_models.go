package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CompanyModel struct {
	CompanyID          uuid.UUID `gorm:"column:company_id;type:uuid;default:gen_random_uuid();primaryKey" json:"company_id"`
	CompanyName        string    `gorm:"column:company_name;size:255;not null" json:"company_name"`
	CompanySlug        string    `gorm:"column:company_slug;size:100;not null;unique" json:"company_slug"`
	CompanyDescription string    `gorm:"column:company_description;type:text" json:"company_description"`
	CompanyWebsiteURL  string    `gorm:"column:company_website_url;type:text" json:"company_website_url"`
	CompanyLogoURL     string    `gorm:"column:company_logo_url;type:text" json:"company_logo_url"`
	CompanyCreatedAt   time.Time `gorm:"column:company_created_at;autoCreateTime" json:"company_created_at"`
	CompanyUpdatedAt   time.Time `gorm:"column:company_updated_at;autoUpdateTime" json:"company_updated_at"`
}

func (CompanyModel) TableName() string {
	return "companies"
}

type InstructorModel struct {
	InstructorID        uuid.UUID      `gorm:"column:instructor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"instructor_id"`
	InstructorUserID    *uuid.UUID     `gorm:"column:instructor_user_id;type:uuid" json:"instructor_user_id,omitempty"`
	InstructorName      string         `gorm:"column:instructor_name;size:255;not null" json:"instructor_name"`
	InstructorSlug      string         `gorm:"column:instructor_slug;size:100;not null;unique" json:"instructor_slug"`
	InstructorBio       string         `gorm:"column:instructor_bio;type:text" json:"instructor_bio"`
	InstructorStyles    pq.StringArray `gorm:"column:instructor_styles;type:text[]" json:"instructor_styles"`
	InstructorImageURL  string         `gorm:"column:instructor_image_url;type:text" json:"instructor_image_url"`
	InstructorIsListed  bool           `gorm:"column:instructor_is_listed;not null;default:true" json:"instructor_is_listed"`
	InstructorCreatedAt time.Time      `gorm:"column:instructor_created_at;autoCreateTime" json:"instructor_created_at"`
	InstructorUpdatedAt time.Time      `gorm:"column:instructor_updated_at;autoUpdateTime" json:"instructor_updated_at"`
}

func (InstructorModel) TableName() string {
	return "instructors"
}

type TestimonialModel struct {
	TestimonialID          uuid.UUID `gorm:"column:testimonial_id;type:uuid;default:gen_random_uuid();primaryKey" json:"testimonial_id"`
	TestimonialAuthor      string    `gorm:"column:testimonial_author;size:255;not null" json:"testimonial_author"`
	TestimonialQuote       string    `gorm:"column:testimonial_quote;type:text;not null" json:"testimonial_quote"`
	TestimonialIsPublished bool      `gorm:"column:testimonial_is_published;not null;default:false" json:"testimonial_is_published"`
	TestimonialCreatedAt   time.Time `gorm:"column:testimonial_created_at;autoCreateTime" json:"testimonial_created_at"`
}

func (TestimonialModel) TableName() string {
	return "testimonials"
}

type BlogPostModel struct {
	BlogPostID          uuid.UUID      `gorm:"column:blog_post_id;type:uuid;default:gen_random_uuid();primaryKey" json:"blog_post_id"`
	BlogPostTitle       string         `gorm:"column:blog_post_title;size:255;not null" json:"blog_post_title"`
	BlogPostSlug        string         `gorm:"column:blog_post_slug;size:150;not null;unique" json:"blog_post_slug"`
	BlogPostExcerpt     string         `gorm:"column:blog_post_excerpt;type:text" json:"blog_post_excerpt"`
	BlogPostBody        string         `gorm:"column:blog_post_body;type:text" json:"blog_post_body"`
	BlogPostTags        pq.StringArray `gorm:"column:blog_post_tags;type:text[]" json:"blog_post_tags"`
	BlogPostCoverURL    string         `gorm:"column:blog_post_cover_url;type:text" json:"blog_post_cover_url"`
	BlogPostAuthorName  string         `gorm:"column:blog_post_author_name;size:255" json:"blog_post_author_name"`
	BlogPostIsPublished bool           `gorm:"column:blog_post_is_published;not null;default:false" json:"blog_post_is_published"`
	BlogPostPublishedAt *time.Time     `gorm:"column:blog_post_published_at" json:"blog_post_published_at,omitempty"`
	BlogPostCreatedAt   time.Time      `gorm:"column:blog_post_created_at;autoCreateTime" json:"blog_post_created_at"`
	BlogPostUpdatedAt   time.Time      `gorm:"column:blog_post_updated_at;autoUpdateTime" json:"blog_post_updated_at"`
}

func (BlogPostModel) TableName() string {
	return "blog_posts"
}
