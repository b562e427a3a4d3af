package locale

// Pick returns the text matching the request language, defaulting to Italian.
func Pick(language, english, italian string) string {
	if NormalizeLanguage(language) == LanguageEnglish {
		if english != "" {
			return english
		}
		return italian
	}
	if italian != "" {
		return italian
	}
	return english
}
