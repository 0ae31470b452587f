// Package api holds the JSON contract of the Content API. The field names
// follow what the public website already consumes.
package api

type Property struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Price       int64    `json:"price"`
	Type        string   `json:"type"`
	Size        string   `json:"size"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Features    []string `json:"features"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Gallery     []string `json:"gallery"`
	IsActive    bool     `json:"isActive"`
	CreatedAt   string   `json:"createdAt"`
}

type Founder struct {
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Experience   string   `json:"experience"`
	Credentials  string   `json:"credentials"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

type ContactInfo struct {
	WhatsApp    string `json:"whatsapp"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	OfficeHours string `json:"officeHours"`
}

type Stats struct {
	SuccessfulApplications int    `json:"successfulApplications"`
	SuccessRate            int    `json:"successRate"`
	ExperienceYears        int    `json:"experienceYears"`
	AverageProcessTime     string `json:"averageProcessTime"`
}

type CompanyInfo struct {
	Founder   Founder     `json:"founder"`
	Contact   ContactInfo `json:"contact"`
	Stats     Stats       `json:"stats"`
	UpdatedAt string      `json:"updatedAt"`
}

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// Lead is the admin view of a stored submission.
type Lead struct {
	ID        uint   `json:"id"`
	Reference string `json:"reference"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"createdAt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

const (
	PathCompanyInfo = "/api/company-info"
	PathProperties  = "/api/properties"
	PathContact     = "/api/contact"

	HeaderIdempotencyKey = "Idempotency-Key"

	TimeLayout = "2006-01-02T15:04:05Z07:00"
)

// Contact form subjects, in the order the form offers them.
const (
	SubjectConsultancy = "Golden Visa Danışmanlığı"
	SubjectInvestment  = "Emlak Yatırım Seçenekleri"
	SubjectProcess     = "Süreç ve Belgeler"
	SubjectPricing     = "Fiyat Bilgisi"
	SubjectOther       = "Diğer"

	DefaultSubject = SubjectConsultancy
)

var Subjects = []string{
	SubjectConsultancy,
	SubjectInvestment,
	SubjectProcess,
	SubjectPricing,
	SubjectOther,
}
