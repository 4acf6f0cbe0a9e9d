// Package faq groups FAQ documents into display categories and tracks
// which questions of the accordion are expanded.
package faq

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/dfwhvac/internal/content"
)

const (
	SectionResidential = "residential"
	SectionCommercial  = "commercial"
	SectionOther       = "other"

	defaultCategory = "general"
)

type categoryConfig struct {
	name    string
	section string
	order   int
}

var knownCategories = map[string]categoryConfig{
	"residential-services":    {name: "Services", section: SectionResidential, order: 1},
	"residential-pricing":     {name: "Pricing & Estimates", section: SectionResidential, order: 2},
	"residential-scheduling":  {name: "Scheduling & Availability", section: SectionResidential, order: 3},
	"residential-equipment":   {name: "Equipment & Systems", section: SectionResidential, order: 4},
	"residential-maintenance": {name: "Maintenance & Care", section: SectionResidential, order: 5},
	"commercial":              {name: "Commercial HVAC", section: SectionCommercial, order: 6},
}

// Item is one question inside a category.
type Item struct {
	ID       string
	Question string
	Answer   string
	Order    int
}

// Category is a titled group of questions.
type Category struct {
	Key     string
	Name    string
	Section string
	Items   []Item
}

// Group 按分类归并 FAQ。已知分类按固定顺序排列，未知分类按首次出现的顺序追加，
// 每个出现过的分类都会返回。
func Group(faqs []content.FAQ) []Category {
	type bucket struct {
		key       string
		firstSeen int
		items     []Item
	}

	buckets := make(map[string]*bucket)
	var keys []string
	for idx, faq := range faqs {
		key := strings.TrimSpace(faq.Category)
		if key == "" {
			key = defaultCategory
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{key: key, firstSeen: idx}
			buckets[key] = b
			keys = append(keys, key)
		}
		id := strings.TrimSpace(faq.ID)
		if id == "" {
			id = key + "-" + strconv.Itoa(len(b.items))
		}
		b.items = append(b.items, Item{
			ID:       id,
			Question: faq.Question,
			Answer:   faq.Answer,
			Order:    faq.Order,
		})
	}

	sort.SliceStable(keys, func(i, j int) bool {
		ci, iKnown := knownCategories[keys[i]]
		cj, jKnown := knownCategories[keys[j]]
		switch {
		case iKnown && jKnown:
			return ci.order < cj.order
		case iKnown != jKnown:
			return iKnown
		default:
			return buckets[keys[i]].firstSeen < buckets[keys[j]].firstSeen
		}
	})

	categories := make([]Category, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		sort.SliceStable(b.items, func(i, j int) bool {
			return b.items[i].Order < b.items[j].Order
		})

		category := Category{Key: key, Name: key, Section: SectionOther, Items: b.items}
		if cfg, ok := knownCategories[key]; ok {
			category.Name = cfg.name
			category.Section = cfg.section
		}
		categories = append(categories, category)
	}
	return categories
}

// InSection filters categories by section, keeping their order.
func InSection(categories []Category, section string) []Category {
	var out []Category
	for _, category := range categories {
		if category.Section == section {
			out = append(out, category)
		}
	}
	return out
}

// Accordion 记录每个问题的展开状态，各问题互不影响。
type Accordion struct {
	open map[string]bool
}

// NewAccordion starts with the given ids expanded.
func NewAccordion(openIDs ...string) *Accordion {
	a := &Accordion{open: make(map[string]bool)}
	for _, id := range openIDs {
		a.Open(id)
	}
	return a
}

// Toggle flips one item and returns its new state.
func (a *Accordion) Toggle(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	if a.open[id] {
		delete(a.open, id)
		return false
	}
	a.open[id] = true
	return true
}

// Open expands one item.
func (a *Accordion) Open(id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	a.open[id] = true
}

// Close collapses one item.
func (a *Accordion) Close(id string) {
	delete(a.open, strings.TrimSpace(id))
}

// IsOpen reports whether the item is expanded.
func (a *Accordion) IsOpen(id string) bool {
	return a.open[strings.TrimSpace(id)]
}

// OpenIDs returns the expanded ids in sorted order.
func (a *Accordion) OpenIDs() []string {
	ids := make([]string, 0, len(a.open))
	for id := range a.open {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ToggleQuery is the query string of the state after toggling id, used
// for the links of a page rendered without scripts. The receiver is unchanged.
func (a *Accordion) ToggleQuery(id string) string {
	next := NewAccordion(a.OpenIDs()...)
	next.Toggle(id)
	values := url.Values{}
	for _, openID := range next.OpenIDs() {
		values.Add("open", openID)
	}
	return values.Encode()
}
