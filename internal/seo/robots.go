package seo

import "strings"

// DisallowedPrefixes are never crawled.
var DisallowedPrefixes = []string{"/studio/", "/api/", "/admin/"}

// Robots renders robots.txt pointing crawlers at the sitemap.
func Robots(baseURL string) string {
	var b strings.Builder
	b.WriteString("User-Agent: *\n")
	b.WriteString("Allow: /\n")
	for _, prefix := range DisallowedPrefixes {
		b.WriteString("Disallow: " + prefix + "\n")
	}
	if base := strings.TrimRight(strings.TrimSpace(baseURL), "/"); base != "" {
		b.WriteString("\nSitemap: " + base + "/sitemap.xml\n")
	}
	return b.String()
}
