package googlegeo

// Language selects the language of reply text. The catalog is the fixed list
// of short codes the API supports.
type Language string

const (
	Arabic              Language = "ar"
	Bulgarian           Language = "bg"
	Bengali             Language = "bn"
	Catalan             Language = "ca"
	Czech               Language = "cs"
	Danish              Language = "da"
	German              Language = "de"
	Greek               Language = "el"
	English             Language = "en"
	EnglishAustralian   Language = "en-AU"
	EnglishGreatBritain Language = "en-GB"
	Spanish             Language = "es"
	Basque              Language = "eu"
	Farsi               Language = "fa"
	Finnish             Language = "fi"
	Filipino            Language = "fil"
	French              Language = "fr"
	Galician            Language = "gl"
	Gujarati            Language = "gu"
	Hindi               Language = "hi"
	Croatian            Language = "hr"
	Hungarian           Language = "hu"
	Indonesian          Language = "id"
	Italian             Language = "it"
	Hebrew              Language = "iw"
	Japanese            Language = "ja"
	Kannada             Language = "kn"
	Korean              Language = "ko"
	Lithuanian          Language = "lt"
	Latvian             Language = "lv"
	Malayalam           Language = "ml"
	Marathi             Language = "mr"
	Dutch               Language = "nl"
	Norwegian           Language = "no"
	Polish              Language = "pl"
	Portuguese          Language = "pt"
	PortugueseBrazil    Language = "pt-BR"
	PortuguesePortugal  Language = "pt-PT"
	Romanian            Language = "ro"
	Russian             Language = "ru"
	Slovak              Language = "sk"
	Slovenian           Language = "sl"
	Serbian             Language = "sr"
	Swedish             Language = "sv"
	Tamil               Language = "ta"
	Telugu              Language = "te"
	Thai                Language = "th"
	Tagalog             Language = "tl"
	Turkish             Language = "tr"
	Ukrainian           Language = "uk"
	Vietnamese          Language = "vi"
	ChineseSimplified   Language = "zh-CN"
	ChineseTraditional  Language = "zh-TW"
)

func (l Language) tag() string { return string(l) }
