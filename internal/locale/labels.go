package locale

// CollectionLabels 是集合页面上的导航文案。
type CollectionLabels struct {
	Title       string `json:"title"`
	ReadMore    string `json:"readMore"`
	PrevPage    string `json:"prevPage"`
	NextPage    string `json:"nextPage"`
	TOC         string `json:"toc"`
	BackToList  string `json:"backToList"`
	NextEntry   string `json:"nextEntry"`
	PrevEntry   string `json:"prevEntry"`
	Recommended string `json:"recommended"`
}

var italianLabels = map[string]CollectionLabels{
	"blog": {
		Title: "Articoli", ReadMore: "Leggi di più", PrevPage: "Precedente", NextPage: "Successivo",
		TOC: "In questa pagina", BackToList: "Torna agli Articoli",
		NextEntry: "Articolo Successivo", PrevEntry: "Articolo Precedente", Recommended: "CONSIGLIATO",
	},
	"education": {
		Title: "Formazione", ReadMore: "Leggi di più", PrevPage: "Precedente", NextPage: "Successivo",
		TOC: "In questa pagina", BackToList: "Torna alla Formazione",
		NextEntry: "Appunto Successivo", PrevEntry: "Appunto Precedente", Recommended: "CONSIGLIATO",
	},
	"projects": {
		Title: "Progetti", ReadMore: "Leggi di più", PrevPage: "Precedente", NextPage: "Successivo",
		TOC: "In questa pagina", BackToList: "Torna ai Progetti",
		NextEntry: "Progetto Successivo", PrevEntry: "Progetto Precedente", Recommended: "CONSIGLIATO",
	},
}

var englishLabels = map[string]CollectionLabels{
	"blog": {
		Title: "Posts", ReadMore: "Read more", PrevPage: "Previous", NextPage: "Next",
		TOC: "On this page", BackToList: "Back to Posts",
		NextEntry: "Next Post", PrevEntry: "Previous Post", Recommended: "RECOMMENDED",
	},
	"education": {
		Title: "Education", ReadMore: "Read more", PrevPage: "Previous", NextPage: "Next",
		TOC: "On this page", BackToList: "Back to Education",
		NextEntry: "Next Note", PrevEntry: "Previous Note", Recommended: "RECOMMENDED",
	},
	"projects": {
		Title: "Projects", ReadMore: "Read more", PrevPage: "Previous", NextPage: "Next",
		TOC: "On this page", BackToList: "Back to Projects",
		NextEntry: "Next Project", PrevEntry: "Previous Project", Recommended: "RECOMMENDED",
	},
}

// LabelsFor returns the UI labels of a collection. Unknown collections get
// the blog labels.
func LabelsFor(language, collection string) CollectionLabels {
	table := italianLabels
	if NormalizeLanguage(language) == LanguageEnglish {
		table = englishLabels
	}
	if labels, ok := table[collection]; ok {
		return labels
	}
	return table["blog"]
}
