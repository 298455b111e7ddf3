package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/VSP7988/maranatha-api/domain/content"
)

// BankDetails is the nested JSON object stored in the bank_details
// column. Key names are a deployment contract with the frontend.
type BankDetails struct {
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	BankName      string `json:"bankName"`
	Branch        string `json:"branch"`
	RoutingNumber string `json:"routingNumber"`
	SwiftCode     string `json:"swiftCode"`
	Address       string `json:"address"`
}

func (b BankDetails) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *BankDetails) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	case nil:
		*b = BankDetails{}
		return nil
	default:
		return errors.New("unsupported bank_details column type")
	}
}

// Donation is one giving option (bank transfer details plus an optional
// QR code image).
type Donation struct {
	content.Meta
	Title       string      `gorm:"size:255;not null" json:"title" validate:"required,max=255"`
	Description *string     `gorm:"type:text" json:"description"`
	QRCodeURL   *string     `gorm:"column:qr_code_url;type:text" json:"qr_code_url"`
	BankDetails BankDetails `gorm:"column:bank_details;type:jsonb" json:"bank_details"`
}

func (Donation) TableName() string { return "donations" }

func (d *Donation) Normalize() {
	content.SanitizeRequired(&d.Title)
	d.Description = content.SanitizeOptional(d.Description)
	d.QRCodeURL = content.SanitizeOptional(d.QRCodeURL)
}

var DonationSpec = content.Spec{
	Name:         "donation",
	Table:        "donations",
	Path:         "donations",
	Positioned:   true,
	MediaColumns: []string{"qr_code_url"},
}
