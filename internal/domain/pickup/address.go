package pickup

// Address is the structured postal address of a pickup point. The field
// set follows the vendor feed mappings: Organization carries the public
// point name plus any feed comment, AdditionalName the feed's external id
// or zip, SortingCode the routing/service code.
type Address struct {
	Organization       string `json:"organization,omitempty"`
	Line1              string `json:"line1,omitempty"`
	Locality           string `json:"locality,omitempty"`
	PostalCode         string `json:"postal_code,omitempty"`
	CountryCode        string `json:"country_code,omitempty"`
	AdministrativeArea string `json:"administrative_area,omitempty"`
	AdditionalName     string `json:"additional_name,omitempty"`
	SortingCode        string `json:"sorting_code,omitempty"`
}

func (a Address) IsZero() bool {
	return a == Address{}
}
