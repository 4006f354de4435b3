package cldr

// TranslationProvider is the translation-catalog collaborator. It reports
// the locale names a translation backend knows about and its configured
// default. Implementations may return POSIX-style names ("en_US.UTF-8");
// consumers normalize them to hyphen form before use.
type TranslationProvider interface {
	KnownLocaleNames() []string
	DefaultLocale() string
}

// TranslationProviderFunc adapters allow bare functions to act as a provider
// that only contributes locale names.
type TranslationProviderFunc func() []string

func (fn TranslationProviderFunc) KnownLocaleNames() []string {
	return fn()
}

func (fn TranslationProviderFunc) DefaultLocale() string {
	return ""
}
