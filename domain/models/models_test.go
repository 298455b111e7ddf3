package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIcon(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"known icon", "heart", "heart"},
		{"default icon", "cross", "cross"},
		{"unknown icon", "sparkles", DefaultIcon},
		{"empty", "", DefaultIcon},
		{"case sensitive", "Heart", DefaultIcon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveIcon(tt.input))
		})
	}
}

func TestBannerNormalize(t *testing.T) {
	empty := ""
	blob := "blob:http://localhost:5173/preview-1"
	url := " https://cdn.example.org/banner.jpg "

	b := Banner{
		Type:     BannerTypeImage,
		Title:    "  Welcome  ",
		Subtitle: &empty,
		ImageURL: &url,
		VideoURL: &blob,
	}
	b.Normalize()

	assert.Equal(t, "Welcome", b.Title)
	assert.Nil(t, b.Subtitle, "empty optional must persist as NULL")
	assert.Nil(t, b.VideoURL, "ephemeral preview ref must never persist")
	require.NotNil(t, b.ImageURL)
	assert.Equal(t, "https://cdn.example.org/banner.jpg", *b.ImageURL)
}

func TestVisionMissionNormalizeResolvesIcon(t *testing.T) {
	v := VisionMission{Kind: StatementKindVision, Title: "Our Vision", Content: "...", Icon: "nonsense"}
	v.Normalize()
	assert.Equal(t, DefaultIcon, v.Icon)
	assert.Equal(t, StatementKindVision, v.DiscriminatorValue())
}

func TestMinistryNormalizeSlugs(t *testing.T) {
	m := Ministry{Name: "Youth & Worship"}
	m.Normalize()
	assert.Equal(t, "youth-and-worship", m.Slug, "the ampersand is spelled out, not dropped")

	m2 := Ministry{Name: "Outreach", Slug: "City Outreach"}
	m2.Normalize()
	assert.Equal(t, "city-outreach", m2.Slug, "explicit slug is canonicalized, not replaced")
}

func TestBankDetailsJSONKeys(t *testing.T) {
	d := BankDetails{
		AccountName:   "Maranatha Prayer House",
		AccountNumber: "000111222333",
		IFSCCode:      "ABCD0001234",
		BankName:      "First Bank",
		Branch:        "Main",
		RoutingNumber: "021000021",
		SwiftCode:     "ABCDUS33",
		Address:       "1 Church St",
	}

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var keys map[string]string
	require.NoError(t, json.Unmarshal(raw, &keys))

	// Key names are a contract with the frontend form.
	for _, key := range []string{
		"accountName", "accountNumber", "ifscCode", "bankName",
		"branch", "routingNumber", "swiftCode", "address",
	} {
		assert.Contains(t, keys, key)
	}
}

func TestBankDetailsScan(t *testing.T) {
	var d BankDetails
	require.NoError(t, d.Scan([]byte(`{"accountName":"A","bankName":"B"}`)))
	assert.Equal(t, "A", d.AccountName)
	assert.Equal(t, "B", d.BankName)

	require.NoError(t, d.Scan(nil))
	assert.Equal(t, BankDetails{}, d)
}

func TestSampleDatasetsNeverEmpty(t *testing.T) {
	assert.NotEmpty(t, SampleBanners(""))
	assert.NotEmpty(t, SampleEvents(""))
	assert.NotEmpty(t, SampleGalleryImages(""))
	assert.NotEmpty(t, SampleVisionMission(StatementKindVision))
	assert.NotEmpty(t, SampleVisionMission(StatementKindMission))
	assert.NotEmpty(t, SampleDonations(""))
	assert.NotEmpty(t, SampleSatelliteChurches(""))
	assert.NotEmpty(t, SampleSatelliteBanners(""))
	assert.NotEmpty(t, SampleMinistries(""))
	assert.NotEmpty(t, SampleAboutSections(""))
}
