// Package locale holds the user-visible strings of the lookup tool.
package locale

import (
	"fmt"
	"strings"
)

// Messages is one complete message catalogue.
type Messages struct {
	Welcome       string
	PromptInput   string
	EmptyInput    string
	Fetching      string // %s is the lookup input
	FetchError    string
	AskAnother    string
	Goodbye       string
	FetchedIn     string // %s is the request duration
	Affirmative   []string
	AllTime       SectionLabels
	Day           SectionLabels
	LastTx        SectionLabels
	FeeUnit       string
	PubkeyLabel   string
	ResolvedLabel string
}

// SectionLabels names a statistics section and its rows, in display order.
type SectionLabels struct {
	Title  string
	Fields []string
}

var catalogues = map[string]Messages{
	"en": {
		Welcome:     "Welcome to Hemi Network Statistics Extractor!",
		PromptInput: "Enter the pubkey or BTC address to lookup: ",
		EmptyInput:  "Pubkey cannot be empty.",
		Fetching:    "Fetching data for: %s",
		FetchError:  "Error fetching data:",
		AskAnother:  "Would you like to lookup another pubkey? (Y/N): ",
		Goodbye:     "Goodbye!",
		FetchedIn:   "fetched in %s",
		Affirmative: []string{"y", "yes"},
		AllTime: SectionLabels{
			Title:  "All-Time Statistics",
			Fields: []string{"Total PoP Txs", "Total Keystones Mined", "Total PoP Fees"},
		},
		Day: SectionLabels{
			Title:  "24-Hour Statistics",
			Fields: []string{"PoP Txs", "Unique Keystones Mined", "PoP Fees", "Avg PoP Fee Rate"},
		},
		LastTx: SectionLabels{
			Title:  "Last PoP Transaction",
			Fields: []string{"Hemi Keystone #", "Fee", "Fee Rate", "BTC Block #", "Timestamp"},
		},
		FeeUnit:       "BTC",
		PubkeyLabel:   "Pubkey",
		ResolvedLabel: "resolved from",
	},
	"fr": {
		Welcome:     "Bienvenue dans l'extracteur de statistiques du réseau Hemi !",
		PromptInput: "Entrez la pubkey ou l'adresse BTC à rechercher : ",
		EmptyInput:  "La pubkey ne peut pas être vide.",
		Fetching:    "Récupération des données pour : %s",
		FetchError:  "Erreur lors de la récupération des données :",
		AskAnother:  "Voulez-vous rechercher une autre pubkey ? (O/N) : ",
		Goodbye:     "Au revoir !",
		FetchedIn:   "récupéré en %s",
		Affirmative: []string{"o", "oui", "y", "yes"},
		AllTime: SectionLabels{
			Title:  "Statistiques globales",
			Fields: []string{"Total des transactions PoP", "Total des keystones minés", "Total des frais PoP"},
		},
		Day: SectionLabels{
			Title:  "Statistiques sur 24 heures",
			Fields: []string{"Transactions PoP", "Keystones uniques minés", "Frais PoP", "Taux de frais PoP moyen"},
		},
		LastTx: SectionLabels{
			Title:  "Dernière transaction PoP",
			Fields: []string{"Keystone Hemi n°", "Frais", "Taux de frais", "Bloc BTC n°", "Horodatage"},
		},
		FeeUnit:       "BTC",
		PubkeyLabel:   "Pubkey",
		ResolvedLabel: "résolue depuis",
	},
}

// Get returns the catalogue for a language code such as "en" or "fr-FR".
func Get(lang string) (Messages, error) {
	code := strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	m, ok := catalogues[code]
	if !ok {
		return Messages{}, fmt.Errorf("unsupported locale %q", lang)
	}
	return m, nil
}

// IsAffirmative reports whether a prompt answer means "yes".
func (m Messages) IsAffirmative(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	for _, y := range m.Affirmative {
		if a == y {
			return true
		}
	}
	return false
}
