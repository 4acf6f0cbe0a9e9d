package handler

import (
	"errors"
	"html/template"
	"strings"

	"github.com/dfwhvac/internal/content"
	"github.com/dfwhvac/internal/faq"
	"github.com/dfwhvac/internal/format"
	"github.com/dfwhvac/internal/view"
)

// TemplateFuncs 返回页面模板使用的函数集合。
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"formatPhone": format.FormatPhoneNumber,
		"telHref": func(phone string) template.URL {
			return template.URL(format.TelHref(phone))
		},
		"stars":    view.Stars,
		"initials": view.Initials,
		"icon":     view.ServiceIconSVG,
		"markdown": content.RenderMarkdown,
		"excerpt": func(text string) string {
			return format.GenerateExcerpt(text, format.DefaultExcerptLength)
		},
		"truncate": format.TruncateText,
		"dict":     dict,
		"linkHref": linkHref,
		"toggleHref": func(a *faq.Accordion, id string) template.URL {
			query := a.ToggleQuery(id)
			if query == "" {
				return template.URL("/faq#" + id)
			}
			return template.URL("?" + query + "#" + id)
		},
	}
}

// linkHref 放行 CMS 按钮里的 tel: 与 mailto: 链接，其他地址仍由模板过滤。
func linkHref(href string) any {
	href = strings.TrimSpace(href)
	lower := strings.ToLower(href)
	if strings.HasPrefix(lower, "tel:") || strings.HasPrefix(lower, "mailto:") {
		return template.URL(href)
	}
	return href
}

// dict 把成对的参数组装成 map，便于向子模板传多个值。
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict expects key/value pairs")
	}
	out := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, errors.New("dict keys must be strings")
		}
		out[key] = pairs[i+1]
	}
	return out, nil
}
