package abbrev

import "sync"

// Built-in tables for Russian text with a handful of common English forms.
var (
	defaultInitials = []string{
		"дж", "вл", "вяч", "вс", "мих", "ник", "конст", "влад", "ал", "ст",
		"ed", "chas", "geo", "thos", "wm",
	}

	defaultHead = []string{
		// addresses and places
		"г", "гг", "ул", "пр", "просп", "пл", "пер", "наб", "ш", "б-р", "д", "кв", "корп",
		"стр", "оф", "обл", "р-н", "пос", "дер", "с", "пгт", "ж-д",
		// titles and ranks
		"тов", "гр", "акад", "проф", "доц", "канд", "зав", "зам", "ген", "полк", "подп",
		"лейт", "кап", "ст-на", "мл", "г-н", "г-жа", "им", "св",
		// references inside a document
		"рис", "табл", "гл", "разд", "п", "пп", "ч", "т", "вып", "изд", "илл", "прил",
		"no", "mr", "mrs", "ms", "dr", "prof", "st", "fig", "vol", "ch", "sec", "gen", "col",
	}

	defaultTail = []string{
		// money and counts
		"руб", "коп", "тыс", "млн", "млрд", "трлн", "долл", "шт", "экз", "чел",
		// units
		"см", "мм", "км", "кг", "мг", "мин", "сек", "куб", "га",
		// enumerations and eras
		"др", "пр", "вв", "гг", "лл", "сс",
		"etc", "inc", "ltd", "co", "corp", "jr", "sr", "bros",
	}

	defaultOther = []string{
		"ср", "напр", "прим", "ред", "сост", "англ", "лат", "фр", "нем", "греч",
		"букв", "устар", "разг", "вкл", "искл", "мн", "ед", "род", "дат", "вин",
		"тв", "предл", "сокр", "межд", "нар", "перен", "спец", "тел", "факс",
		"рус", "укр", "франц", "итал", "исп", "кит", "яп", "арх", "вост", "зап",
		"сев", "юж", "отд", "дол", "кор", "кн", "об", "ст-ва",
		"approx", "cf", "vs", "viz", "dept", "est", "misc",
	}

	defaultHeadPair = []string{
		"т.е", "т.к", "т.н", "т.о", "и.о", "в.о", "н.р", "к.т", "д.т",
		"e.g", "i.e",
	}

	defaultTailPair = []string{
		"т.д", "т.п", "н.э", "у.е", "с.г", "р.х", "п.м", "к.м",
		"a.m", "p.m",
	}

	defaultOtherPair = []string{
		"т.ч", "ж.д", "с.ш", "ю.ш", "в.д", "з.д", "с.х", "л.с", "ч.л", "д.ф", "т.г",
		"n.b", "p.s",
	}
)

// DefaultEntries returns a fresh copy of the built-in table contents.
func DefaultEntries() map[Class][]string {
	cp := func(s []string) []string { return append([]string(nil), s...) }
	return map[Class][]string{
		Initials:  cp(defaultInitials),
		Head:      cp(defaultHead),
		Tail:      cp(defaultTail),
		Other:     cp(defaultOther),
		HeadPair:  cp(defaultHeadPair),
		TailPair:  cp(defaultTailPair),
		OtherPair: cp(defaultOtherPair),
	}
}

var defaultTables = sync.OnceValue(func() *Tables {
	return MustNewTables(DefaultEntries())
})

// Default returns the shared built-in tables. They are built on first use
// and never modified afterwards.
func Default() *Tables {
	return defaultTables()
}
