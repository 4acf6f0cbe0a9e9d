package view

import (
	"strings"

	"github.com/dfwhvac/internal/content"
)

const (
	defaultPerSlide   = 3
	defaultMaxDisplay = 12
)

// Carousel 把评价按固定数量分页，前后翻页循环。
type Carousel struct {
	items    []content.Testimonial
	perSlide int
}

// Slide is one rendered page of the carousel.
type Slide struct {
	Index int
	Items []content.Testimonial
	Prev  int
	Next  int
	Total int
}

// NewCarousel keeps at most maxDisplay testimonials. Non-positive values
// select the defaults (3 per slide, 12 in total).
func NewCarousel(items []content.Testimonial, perSlide, maxDisplay int) *Carousel {
	if perSlide <= 0 {
		perSlide = defaultPerSlide
	}
	if maxDisplay <= 0 {
		maxDisplay = defaultMaxDisplay
	}
	if len(items) > maxDisplay {
		items = items[:maxDisplay]
	}
	return &Carousel{items: items, perSlide: perSlide}
}

// SlideCount is zero for an empty carousel.
func (c *Carousel) SlideCount() int {
	if len(c.items) == 0 {
		return 0
	}
	return (len(c.items) + c.perSlide - 1) / c.perSlide
}

// Slide returns slide n, wrapping in both directions.
func (c *Carousel) Slide(n int) Slide {
	total := c.SlideCount()
	if total == 0 {
		return Slide{}
	}
	idx := ((n % total) + total) % total
	start := idx * c.perSlide
	end := start + c.perSlide
	if end > len(c.items) {
		end = len(c.items)
	}
	return Slide{
		Index: idx,
		Items: c.items[start:end],
		Prev:  (idx - 1 + total) % total,
		Next:  (idx + 1) % total,
		Total: total,
	}
}

// Dots lists slide indexes for the pager.
func (s Slide) Dots() []int {
	dots := make([]int, s.Total)
	for i := range dots {
		dots[i] = i
	}
	return dots
}

// Stars renders a 1..5 rating as filled and empty stars.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// Initials returns up to two initials for an avatar bubble.
func Initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			out = append(out, r)
			break
		}
		if len(out) == 2 {
			break
		}
	}
	return strings.ToUpper(string(out))
}
