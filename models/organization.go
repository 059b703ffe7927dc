package models

// Organization mirrors the `organization` table (read-only). Users are
// attached to organizations by the signup flow via email domain
// matching; this layer only joins the name into ranking views.
type Organization struct {
	ID               int     `gorm:"column:id;primaryKey" json:"id"`
	OrganizationName string  `gorm:"column:organization_name" json:"organization_name"`
	Kind             string  `gorm:"column:kind" json:"kind"`
	VerificationCode *string `gorm:"column:verification_code" json:"-"`
}

func (Organization) TableName() string {
	return "organization"
}

// OrganizationEmailDomain mirrors the `organization_email_domain` table
// (read-only).
type OrganizationEmailDomain struct {
	OrganizationID int    `gorm:"column:organization_id" json:"organization_id"`
	Domain         string `gorm:"column:domain" json:"domain"`
}

func (OrganizationEmailDomain) TableName() string {
	return "organization_email_domain"
}
