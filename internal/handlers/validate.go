package handlers

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation limits for search queries and report fields.
const (
	minQueryLen = 2   // runes, after trimming
	maxQueryLen = 200 // runes; longer queries are truncated before normalization

	maxProductNameLen = 255
	maxBrandLen       = 255
	maxUPCLen         = 50
	maxStoreNameLen   = 255
	maxStoreLocLen    = 500
	maxDescriptionLen = 10_000
	maxPhotoURLLen    = 500
	maxEmailLen       = 255
)

// emailPattern is deliberately loose; it only rejects obvious garbage.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateQuery checks a raw search query. It returns the query ready for
// the engine and an error message, exactly one of which is non-empty.
// Queries beyond the length cap are truncated rather than rejected; the cap
// only exists to bound pathological input.
func validateQuery(raw string) (string, string) {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) < minQueryLen {
		return "", "Search query must be at least 2 characters."
	}
	if utf8.RuneCountInString(trimmed) > maxQueryLen {
		runes := []rune(trimmed)
		trimmed = string(runes[:maxQueryLen])
	}
	return trimmed, ""
}

// reportInput is the request body for report submission. Optional fields
// submitted as empty strings are treated as absent.
type reportInput struct {
	ProductName   string `json:"product_name"`
	Brand         string `json:"brand"`
	UPC           string `json:"upc"`
	StoreName     string `json:"store_name"`
	StoreLocation string `json:"store_location"`
	Description   string `json:"description"`
	PhotoURL      string `json:"photo_url"`
	Email         string `json:"email"`
}

// validateReport checks report form inputs and returns the first error found.
func validateReport(in *reportInput) string {
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Description = strings.TrimSpace(in.Description)
	in.Email = strings.TrimSpace(in.Email)

	if in.ProductName == "" {
		return "Product name is required."
	}
	if utf8.RuneCountInString(in.ProductName) > maxProductNameLen {
		return "Product name is too long (max 255 characters)."
	}
	if in.Description == "" {
		return "Description is required."
	}
	if utf8.RuneCountInString(in.Description) > maxDescriptionLen {
		return "Description is too long (max 10,000 characters)."
	}
	if utf8.RuneCountInString(in.Brand) > maxBrandLen {
		return "Brand is too long (max 255 characters)."
	}
	if utf8.RuneCountInString(in.UPC) > maxUPCLen {
		return "UPC is too long (max 50 characters)."
	}
	if utf8.RuneCountInString(in.StoreName) > maxStoreNameLen {
		return "Store name is too long (max 255 characters)."
	}
	if utf8.RuneCountInString(in.StoreLocation) > maxStoreLocLen {
		return "Store location is too long (max 500 characters)."
	}
	if utf8.RuneCountInString(in.PhotoURL) > maxPhotoURLLen {
		return "Photo URL is too long (max 500 characters)."
	}
	if in.Email != "" {
		if utf8.RuneCountInString(in.Email) > maxEmailLen {
			return "Email is too long (max 255 characters)."
		}
		if !emailPattern.MatchString(in.Email) {
			return "Email address is not valid."
		}
	}
	return ""
}
