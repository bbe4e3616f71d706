package company

import (
	"github.com/billfold/billfold/internal/types"
	"github.com/samber/lo"
)

// CompanyProfile holds the issuing company's display details and branding
type CompanyProfile struct {
	Name     string
	Address  Address
	Phone    string
	Email    string
	Website  string
	Branding *Branding
}

// Address represents a postal address
type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Lines returns the non-empty display lines of the address
func (a Address) Lines() []string {
	lines := []string{
		a.Street,
		joinLocality(a.City, a.State, a.PostalCode),
		a.Country,
	}
	return lo.Filter(lines, func(line string, _ int) bool {
		return line != ""
	})
}

func joinLocality(city, state, postalCode string) string {
	out := city
	if state != "" {
		if out != "" {
			out += ", "
		}
		out += state
	}
	if postalCode != "" {
		if out != "" {
			out += " "
		}
		out += postalCode
	}
	return out
}

// Branding holds a company's visual identity. The nested template override
// is optional and may itself be partially populated.
type Branding struct {
	LogoURL      string
	PrimaryColor string
	Template     *types.TemplateOverride
}
