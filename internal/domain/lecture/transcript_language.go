package lecture

// TranscriptLanguage describes a caption track offered for a video.
type TranscriptLanguage struct {
	LanguageName          string `json:"languageName"`
	LanguageCode          string `json:"languageCode"`
	LanguageNameInEnglish string `json:"languageNameInEnglish"`
}
