package domain

// WordEntry is a catalog word with its translation
type WordEntry struct {
	Source string `yaml:"en"`
	Target string `yaml:"ru"`
}
