package model

import "time"

// Allowed job types.
var JobTypes = []string{"full_time", "part_time", "contract", "internship", "remote"}

// Allowed career levels.
var CareerLevels = []string{"entry_level", "mid_level", "senior_level", "executive"}

// Job represents a job posting.
type Job struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Company             string    `json:"company"`
	Location            string    `json:"location"`
	Type                string    `json:"type"`
	Salary              string    `json:"salary"`
	Description         string    `json:"description"`
	Qualifications      []string  `json:"qualifications"`
	Responsibilities    []string  `json:"responsibilities"`
	Benefits            []string  `json:"benefits"`
	Experience          []string  `json:"experience"`
	Skills              []string  `json:"skills"`
	PostedDate          string    `json:"posted_date"`
	ApplicationDeadline string    `json:"application_deadline"`
	ContactEmail        string    `json:"contact_email"`
	ApplicationLink     string    `json:"application_link,omitempty"`
	ApplicationAddress  string    `json:"application_address,omitempty"`
	CompanyWebsite      string    `json:"company_website,omitempty"`
	CompanyLogo         string    `json:"company_logo,omitempty"`
	Category            string    `json:"category"`
	CareerLevel         string    `json:"career_level"`
	Introduction        string    `json:"introduction,omitempty"`
	HowToApply          string    `json:"how_to_apply,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// JobRequest carries the fields an admin submits when creating or
// updating a job posting. Array fields may contain blank entries from
// dynamic form rows; they are normalized before persistence.
type JobRequest struct {
	Title               string    `json:"title"`
	Company             string    `json:"company"`
	Location            string    `json:"location"`
	Type                string    `json:"type"`
	Salary              string    `json:"salary"`
	Description         string    `json:"description"`
	Qualifications      FieldList `json:"qualifications"`
	Responsibilities    FieldList `json:"responsibilities"`
	Benefits            FieldList `json:"benefits"`
	Experience          FieldList `json:"experience"`
	Skills              FieldList `json:"skills"`
	ApplicationDeadline string    `json:"application_deadline"`
	ContactEmail        string    `json:"contact_email"`
	ApplicationLink     string    `json:"application_link"`
	ApplicationAddress  string    `json:"application_address"`
	CompanyWebsite      string    `json:"company_website"`
	CompanyLogo         string    `json:"company_logo"`
	Category            string    `json:"category"`
	CareerLevel         string    `json:"career_level"`
	Introduction        string    `json:"introduction"`
	HowToApply          string    `json:"how_to_apply"`
}
