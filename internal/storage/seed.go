package storage

import (
	"time"

	"github.com/tariquek-git/CommonJobs/internal/model"
)

// SeedJobs returns the built-in example dataset the file backend writes out
// when its data file is missing or unreadable.
func SeedJobs(now time.Time) []model.JobPosting {
	return []model.JobPosting{
		{
			ID:                  "seed-1",
			CompanyName:         "Stripe",
			CompanyWebsite:      "https://stripe.com",
			RoleTitle:           "Senior Backend Engineer, Payments",
			ExternalLink:        "https://stripe.com/jobs",
			PostedDate:          now.Add(-3 * time.Hour),
			Status:              model.StatusActive,
			SourceType:          model.SourceDirect,
			IsVerified:          true,
			ExternalSource:      "Direct",
			LocationCity:        "San Francisco",
			LocationState:       "CA",
			LocationCountry:     "United States",
			RemotePolicy:        model.RemoteHybrid,
			EmploymentType:      model.EmploymentFullTime,
			Seniority:           model.SenioritySenior,
			SalaryRange:         "180,000 - 240,000",
			Currency:            "USD",
			IntelligenceSummary: "Join the payments core team and build high-throughput systems.",
			Tags:                []string{"Go", "Distributed Systems"},
		},
		{
			ID:                  "seed-2",
			CompanyName:         "Wealthsimple",
			CompanyWebsite:      "https://wealthsimple.com",
			RoleTitle:           "Staff Software Engineer, Crypto",
			ExternalLink:        "https://wealthsimple.com/careers",
			PostedDate:          now.Add(-24 * time.Hour),
			Status:              model.StatusActive,
			SourceType:          model.SourceAggregated,
			IsVerified:          false,
			ExternalSource:      "Manual Web Import",
			LocationCity:        "Toronto",
			LocationState:       "Ontario",
			LocationCountry:     "Canada",
			RemotePolicy:        model.RemoteHybrid,
			EmploymentType:      model.EmploymentFullTime,
			Seniority:           model.SenioritySenior,
			SalaryRange:         "160,000 - 210,000",
			Currency:            "CAD",
			IntelligenceSummary: "Lead architecture for the crypto platform with a security focus.",
			Tags:                []string{"Blockchain", "Security"},
		},
	}
}
