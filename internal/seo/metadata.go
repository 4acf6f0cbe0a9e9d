package seo

import (
	"strings"
)

// DefaultOGImage is used by pages without their own preview image.
const DefaultOGImage = "/static/images/dfwhvac-og.png"

// OGImage is the link preview image.
type OGImage struct {
	URL    string
	Width  int
	Height int
	Alt    string
}

// PageMetadata feeds the <head> of every page.
type PageMetadata struct {
	Title          string
	Description    string
	Canonical      string
	OGType         string
	SiteName       string
	Locale         string
	Image          OGImage
	TwitterCard    string
	TwitterCreator string
}

// MetadataBuilder carries the site-wide settings for page metadata.
type MetadataBuilder struct {
	BaseURL  string
	SiteName string
	Images   *ImageSizer
}

// Build returns metadata for one page; an empty image selects the default.
// Local images get their real size when they can be decoded.
func (b MetadataBuilder) Build(title, description, path, image string) PageMetadata {
	meta := BuildPageMetadata(b.BaseURL, title, description, path, image)
	if name := strings.TrimSpace(b.SiteName); name != "" {
		meta.SiteName = name
	}
	local := strings.TrimSpace(image)
	if local == "" {
		local = DefaultOGImage
	}
	if b.Images != nil && strings.HasPrefix(local, "/") {
		meta.Image.Width, meta.Image.Height, _ = b.Images.Dimensions(local)
	}
	return meta
}

// BuildPageMetadata 生成带 canonical 地址的页面元数据，图片尺寸默认为 1200x630。
func BuildPageMetadata(baseURL, title, description, path, image string) PageMetadata {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	canonical := base + path
	if path == "/" {
		canonical = base
	}

	image = strings.TrimSpace(image)
	if image == "" {
		image = DefaultOGImage
	}
	if strings.HasPrefix(image, "/") {
		image = base + image
	}

	return PageMetadata{
		Title:          title,
		Description:    description,
		Canonical:      canonical,
		OGType:         "website",
		SiteName:       "DFW HVAC",
		Locale:         "en_US",
		Image:          OGImage{URL: image, Width: DefaultOGWidth, Height: DefaultOGHeight, Alt: title},
		TwitterCard:    "summary_large_image",
		TwitterCreator: "@dfwhvac",
	}
}
