package domain

// Business is a row in the businesses table. ZipCode is stored as CHAR(5)
// and only converted to an integer at the representation layer.
type Business struct {
	ID            int64
	OwnerID       int64
	Name          string
	StreetAddress string
	City          string
	State         string
	ZipCode       string
}

// BusinessInput carries the writable fields of a business. Every field is
// required; presence is checked before this struct is built.
type BusinessInput struct {
	OwnerID       int64
	Name          string
	StreetAddress string
	City          string
	State         string
	ZipCode       string
}
