package seo

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"strings"
	"sync"

	_ "golang.org/x/image/webp"
)

const (
	DefaultOGWidth  = 1200
	DefaultOGHeight = 630
)

type imageSize struct {
	width  int
	height int
}

// ImageSizer 读取静态资源中图片的尺寸并缓存，读不到时使用 1200x630。
type ImageSizer struct {
	files     fs.FS
	urlPrefix string
	cache     sync.Map
}

// NewImageSizer maps URLs under urlPrefix (e.g. "/static") to files in fsys.
func NewImageSizer(fsys fs.FS, urlPrefix string) *ImageSizer {
	return &ImageSizer{
		files:     fsys,
		urlPrefix: "/" + strings.Trim(strings.TrimSpace(urlPrefix), "/"),
	}
}

// Dimensions returns the image size for a site path. The bool is false
// when the defaults were used.
func (p *ImageSizer) Dimensions(webPath string) (int, int, bool) {
	if p == nil || p.files == nil {
		return DefaultOGWidth, DefaultOGHeight, false
	}
	if cached, ok := p.cache.Load(webPath); ok {
		size := cached.(imageSize)
		if size.width == 0 {
			return DefaultOGWidth, DefaultOGHeight, false
		}
		return size.width, size.height, true
	}

	size := p.measure(webPath)
	p.cache.Store(webPath, size)
	if size.width == 0 {
		return DefaultOGWidth, DefaultOGHeight, false
	}
	return size.width, size.height, true
}

func (p *ImageSizer) measure(webPath string) imageSize {
	rel := strings.TrimPrefix(webPath, p.urlPrefix+"/")
	if rel == webPath || rel == "" {
		return imageSize{}
	}
	// fs.ValidPath 拒绝 ".." 与绝对路径
	if !fs.ValidPath(rel) {
		return imageSize{}
	}

	f, err := p.files.Open(rel)
	if err != nil {
		return imageSize{}
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return imageSize{}
	}
	return imageSize{width: cfg.Width, height: cfg.Height}
}
