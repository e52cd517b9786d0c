package content

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownLocale is returned for a locale outside SupportedLocales or absent from a catalog.
var ErrUnknownLocale = errors.New("unknown locale")

// SupportedLocales is the fixed set of languages screenshots are produced for.
var SupportedLocales = []string{"en", "ko"}

// Catalog holds the ordered screens of every locale. It is immutable once built.
type Catalog struct {
	locales []string
	items   map[string][]Item
}

// NewCatalog validates and copies entries. Locales keep SupportedLocales order.
func NewCatalog(entries map[string][]Item) (*Catalog, error) {
	c := &Catalog{items: make(map[string][]Item, len(entries))}
	for locale := range entries {
		if !slices.Contains(SupportedLocales, locale) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
		}
	}
	for _, locale := range SupportedLocales {
		items, ok := entries[locale]
		if !ok {
			continue
		}
		seen := make(map[string]bool, len(items))
		for _, it := range items {
			switch {
			case it.ID == "":
				return nil, fmt.Errorf("catalog %s: screen with empty id", locale)
			case seen[it.ID]:
				return nil, fmt.Errorf("catalog %s: duplicate screen id %q", locale, it.ID)
			case it.RawFilename == "" || it.OutFilename == "":
				return nil, fmt.Errorf("catalog %s: screen %q needs raw and output filenames", locale, it.ID)
			}
			seen[it.ID] = true
		}
		c.locales = append(c.locales, locale)
		c.items[locale] = slices.Clone(items)
	}
	return c, nil
}

// Locales lists the locales present in the catalog.
func (c *Catalog) Locales() []string {
	return slices.Clone(c.locales)
}

// Items returns a copy of the screens for locale.
func (c *Catalog) Items(locale string) ([]Item, error) {
	items, ok := c.items[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return slices.Clone(items), nil
}

// Select resolves a locale filter. An empty locale selects every locale.
func (c *Catalog) Select(locale string) ([]string, error) {
	if locale == "" {
		return c.Locales(), nil
	}
	if _, ok := c.items[locale]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return []string{locale}, nil
}

// Builtin returns the five-screen store listing in English and Korean.
func Builtin() *Catalog {
	c, err := NewCatalog(map[string][]Item{
		"en": {
			{ID: "1_vision", Title: "Visualize Your\nBig Dreams", RawFilename: "screen_1_vision.png", OutFilename: "01_vision.png"},
			{ID: "2_action", Title: "Don't Just Plan.\nDo.", RawFilename: "screen_2_action.png", OutFilename: "02_action.png"},
			{ID: "3_magic", Title: "Snap & Digitize\nInstantly", RawFilename: "screen_3_magic.png", OutFilename: "03_magic.png"},
			{ID: "4_reward", Title: "Make Growth\nAddictive", RawFilename: "screen_4_reward.png", OutFilename: "04_reward.png"},
			{ID: "5_insight", Title: "Smart Weekly\nInsights", RawFilename: "screen_5_insight.png", OutFilename: "05_insight.png"},
		},
		"ko": {
			{ID: "1_vision", Title: "원대한 꿈을\n시각화하세요", RawFilename: "screen_1_vision.png", OutFilename: "01_vision.png"},
			{ID: "2_action", Title: "계획만 하지 말고,\n실천하세요", RawFilename: "screen_2_action.png", OutFilename: "02_action.png"},
			{ID: "3_magic", Title: "찰나의 순간,\n디지털로 변환", RawFilename: "screen_3_magic.png", OutFilename: "03_magic.png"},
			{ID: "4_reward", Title: "성장이 즐거운\n갓생 루틴", RawFilename: "screen_4_reward.png", OutFilename: "04_reward.png"},
			{ID: "5_insight", Title: "똑똑한\n주간 리포트", RawFilename: "screen_5_insight.png", OutFilename: "05_insight.png"},
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}
