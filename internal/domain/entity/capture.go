package entity

// Screenshot is a resized page capture taken while scraping.
type Screenshot struct {
	Data   []byte
	Format string
	Width  int
	Height int
}
