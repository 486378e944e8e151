package entity

import "fmt"

type Category string

const (
	CategoryNeutral Category = "neutral"
	CategoryChuck   Category = "chuck"
	CategoryAll     Category = "all"
)

// Categories returns the selectable categories in menu order.
func Categories() []Category {
	return []Category{CategoryNeutral, CategoryChuck, CategoryAll}
}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryNeutral, CategoryChuck, CategoryAll:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q (expected one of: neutral, chuck, all)", s)
}

func (c Category) String() string {
	return string(c)
}

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageGerman  Language = "de"
	LanguageSpanish Language = "es"
)

func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEnglish, LanguageGerman, LanguageSpanish:
		return Language(s), nil
	}
	return "", fmt.Errorf("unknown language %q (expected one of: en, de, es)", s)
}

func (l Language) String() string {
	return string(l)
}

type Joke struct {
	Text     string
	Category Category
	Language Language
}
