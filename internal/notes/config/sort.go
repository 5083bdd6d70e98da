package config

// SortConfig язык сравнения заголовков (BCP 47). "und" означает корневую коллацию.
type SortConfig struct {
	Locale string `yaml:"locale" env:"NOTES_SORT_LOCALE" env-default:"und"`
}
