package feeds

import (
	"jobupdate/domain/models"
	"jobupdate/domain/ports"
)

// DefaultSources is the configured source catalog. Trust tier is explicit
// per source: trusted sources auto-publish, untrusted ones enter as PENDING
// for review.
func DefaultSources() []ports.Source {
	return []ports.Source{
		{
			Name:            "National Career Service",
			URL:             "https://www.ncs.gov.in/Pages/RSS.aspx",
			Format:          ports.FormatRSS,
			DefaultCategory: models.CategoryGovt,
			Trusted:         true,
			Priority:        1,
		},
		{
			Name:            "India Today Education",
			URL:             "https://www.indiatoday.in/rss/1206584",
			Format:          ports.FormatRSS,
			DefaultCategory: models.CategoryGovt,
			Trusted:         true,
			Priority:        1,
		},
		{
			Name:            "HT Jobs",
			URL:             "https://www.hindustantimes.com/feeds/rss/education/employment-news/rssfeed.xml",
			Format:          ports.FormatRSS,
			DefaultCategory: models.CategoryGovt,
			Trusted:         true,
			Priority:        1,
		},
		{
			Name:            "IndiaTV Education",
			URL:             "https://www.indiatvnews.com/education/rss",
			Format:          ports.FormatRSS,
			DefaultCategory: models.CategoryGovt,
			Trusted:         true,
			Priority:        1,
		},
		{
			Name:            "TOI Jobs",
			URL:             "https://timesofindia.indiatimes.com/rssfeeds/913168846.cms",
			Format:          ports.FormatRSS,
			DefaultCategory: models.CategoryPrivate,
			Trusted:         false,
			Priority:        2,
		},
		{
			Name:            "Financial Express",
			URL:             "https://www.financialexpress.com/jobs/feed/",
			Format:          ports.FormatRSS,
			DefaultCategory: models.CategoryPrivate,
			Trusted:         false,
			Priority:        2,
		},
		{
			Name:            "Apna Jobs",
			URL:             "https://www.apna.co/blog/feed/",
			Format:          ports.FormatRSS,
			DefaultCategory: models.CategoryPrivate,
			Trusted:         false,
			Priority:        2,
		},
	}
}
