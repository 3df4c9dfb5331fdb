package parser

import (
	"strings"

	"github.com/pietersz/kassabon/constants"
)

type categoryKeyword struct {
	keyword  string
	category constants.ProductCategory
}

// categoryKeywords is scanned in declaration order; the first keyword
// occurring as a substring of the lower-cased product name wins, so a
// broad keyword declared early shadows anything after it. Keep the
// entries non-conflicting.
var categoryKeywords = []categoryKeyword{
	{"sla", constants.Groente},
	{"tomaat", constants.Groente},
	{"tomaten", constants.Groente},
	{"komkommer", constants.Groente},
	{"paprika", constants.Groente},
	{"ui", constants.Groente},
	{"uien", constants.Groente},
	{"wortel", constants.Groente},
	{"aardappel", constants.Groente},
	{"aardappelen", constants.Groente},
	{"broccoli", constants.Groente},
	{"bloemkool", constants.Groente},
	{"spinazie", constants.Groente},
	{"prei", constants.Groente},
	{"champignon", constants.Groente},
	{"champignons", constants.Groente},
	{"courgette", constants.Groente},
	{"boerenkool", constants.Groente},
	{"andijvie", constants.Groente},
	{"witlof", constants.Groente},

	{"appel", constants.Fruit},
	{"banaan", constants.Fruit},
	{"bananen", constants.Fruit},
	{"peer", constants.Fruit},
	{"sinaasappel", constants.Fruit},
	{"druiven", constants.Fruit},
	{"citroen", constants.Fruit},
	{"aardbei", constants.Fruit},

	{"kip", constants.Vlees},
	{"kipfilet", constants.Vlees},
	{"gehakt", constants.Vlees},
	{"rookworst", constants.Vlees},
	{"spek", constants.Vlees},
	{"ham", constants.Vlees},
	{"worst", constants.Vlees},
	{"biefstuk", constants.Vlees},

	{"zalm", constants.Vis},
	{"tilapia", constants.Vis},
	{"garnalen", constants.Vis},
	{"vis", constants.Vis},
	{"schelvis", constants.Vis},

	{"melk", constants.Zuivel},
	{"kaas", constants.Zuivel},
	{"yoghurt", constants.Zuivel},
	{"boter", constants.Zuivel},
	{"ei", constants.Zuivel},
	{"eieren", constants.Zuivel},
	{"room", constants.Zuivel},
	{"kwark", constants.Zuivel},

	{"brood", constants.Brood},
	{"croissant", constants.Brood},
	{"pita", constants.Brood},
	{"wrap", constants.Brood},
	{"tortilla", constants.Brood},

	{"cola", constants.Dranken},
	{"sap", constants.Dranken},
	{"water", constants.Dranken},
	{"bier", constants.Dranken},
	{"wijn", constants.Dranken},
	{"thee", constants.Dranken},
	{"koffie", constants.Dranken},

	{"spaghetti", constants.Pasta},
	{"macaroni", constants.Pasta},
	{"penne", constants.Pasta},
	{"pasta", constants.Pasta},
	{"noodles", constants.Pasta},

	{"rijst", constants.Rijst},
	{"basmati", constants.Rijst},

	{"blik", constants.Conserven},
	{"tomatensaus", constants.Conserven},
	{"bonen", constants.Conserven},
	{"kokosmelk", constants.Conserven},

	{"peper", constants.Kruiden},
	{"zout", constants.Kruiden},
	{"kerrie", constants.Kruiden},
	{"ketjap", constants.Kruiden},
	{"sambal", constants.Kruiden},
	{"kruiden", constants.Kruiden},

	{"chips", constants.Snacks},
	{"noten", constants.Snacks},
	{"koek", constants.Snacks},
	{"chocola", constants.Snacks},
	{"snoep", constants.Snacks},

	{"diepvries", constants.Diepvries},

	{"schoonmaak", constants.Huishouden},
	{"afwasmiddel", constants.Huishouden},
	{"toiletpapier", constants.Huishouden},
	{"wc", constants.Huishouden},
	{"wasmiddel", constants.Huishouden},
}

// Categorize maps a product name to its category by substring keyword
// lookup. Substring matching is deliberately permissive so abbreviated
// or OCR-mangled names ("AH MELK LV") still hit their keyword.
func Categorize(name string) constants.ProductCategory {
	lower := strings.ToLower(name)
	for _, kw := range categoryKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.category
		}
	}
	return constants.Overig
}
